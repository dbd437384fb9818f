package tracking

import "context"

type Service struct {
	submissions  TestSubmissionRepository
	moods        MoodGrooveRepository
	chats        ChatLogRepository
	breathing    BreathingRepository
	interactions InteractionRepository
	facial       FacialAnalysisRepository
}

func NewService(
	submissions TestSubmissionRepository,
	moods MoodGrooveRepository,
	chats ChatLogRepository,
	breathing BreathingRepository,
	interactions InteractionRepository,
	facial FacialAnalysisRepository,
) *Service {
	return &Service{
		submissions:  submissions,
		moods:        moods,
		chats:        chats,
		breathing:    breathing,
		interactions: interactions,
		facial:       facial,
	}
}

func (s *Service) CreateTestSubmission(ctx context.Context, req TestSubmissionRequest) (*TestSubmission, error) {
	sub := &TestSubmission{
		UserID:   req.UserID,
		TestType: req.TestType,
		Score:    *req.Score,
		Severity: req.Severity,
		Answers:  req.Answers,
	}
	if err := s.submissions.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *Service) ListTestSubmissions(ctx context.Context, userID string) ([]*TestSubmission, error) {
	return s.submissions.ListByUser(ctx, userID)
}

func (s *Service) CreateMoodGroove(ctx context.Context, req MoodGrooveRequest) (*MoodGrooveResult, error) {
	m := &MoodGrooveResult{
		UserID:       req.UserID,
		UserEmail:    req.UserEmail,
		DominantMood: req.DominantMood,
		Confidence:   *req.Confidence,
		Depression:   *req.Depression,
		Anxiety:      *req.Anxiety,
		Expressions:  req.Expressions,
	}
	if err := s.moods.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) ListMoodGroovesByUser(ctx context.Context, userID string) ([]*MoodGrooveResult, error) {
	return s.moods.ListByUser(ctx, userID)
}

func (s *Service) ListMoodGroovesByEmail(ctx context.Context, email string) ([]*MoodGrooveResult, error) {
	return s.moods.ListByEmail(ctx, email)
}

func (s *Service) CreateChatLog(ctx context.Context, req ChatLogRequest) (*ChatLog, error) {
	l := &ChatLog{UserID: req.UserID, Message: req.Message, Sender: req.Sender}
	if err := s.chats.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) CreateBreathingLog(ctx context.Context, req BreathingExerciseRequest) (*BreathingExerciseLog, error) {
	l := &BreathingExerciseLog{
		UserID:          req.UserID,
		ExerciseName:    req.ExerciseName,
		DurationSeconds: *req.DurationSeconds,
	}
	if err := s.breathing.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) ListBreathingLogs(ctx context.Context, userID string) ([]*BreathingExerciseLog, error) {
	return s.breathing.ListByUser(ctx, userID)
}

func (s *Service) CreateInteraction(ctx context.Context, req InteractionRequest) (*UserInteraction, error) {
	i := &UserInteraction{
		UserID:          req.UserID,
		InteractionType: req.InteractionType,
		Details:         req.Details,
	}
	if err := s.interactions.Create(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *Service) CreateFacialSession(ctx context.Context, req FacialAnalysisRequest) (*FacialAnalysisSession, error) {
	fs := &FacialAnalysisSession{
		UserEmail:        req.UserEmail,
		SessionStartTime: req.SessionStartTime,
		SessionEndTime:   req.SessionEndTime,
		TotalDetections:  *req.TotalDetections,
		DominantMood:     req.DominantMood,
		AvgConfidence:    *req.AvgConfidence,
		AvgDepression:    *req.AvgDepression,
		AvgAnxiety:       *req.AvgAnxiety,
		MoodDistribution: req.MoodDistribution,
		RawData:          req.RawData,
	}
	if err := s.facial.Create(ctx, fs); err != nil {
		return nil, err
	}
	return fs, nil
}

// FacialReport returns every session recorded for an email plus the count.
func (s *Service) FacialReport(ctx context.Context, email string) (*FacialAnalysisReport, error) {
	sessions, err := s.facial.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &FacialAnalysisReport{Sessions: sessions, TotalSessions: len(sessions)}, nil
}
