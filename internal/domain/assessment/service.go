package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/calmnest/calmnest/internal/platform/db"
)

// defaultSessionData seeds the progress blob of a fresh session.
const defaultSessionData = `{"started": true, "steps_completed": []}`

type Service struct {
	assessments AssessmentRepository
	sessions    SessionRepository
	pool        *pgxpool.Pool
	classifier  Classifier
}

func NewService(assessments AssessmentRepository, sessions SessionRepository, pool *pgxpool.Pool) *Service {
	return &Service{
		assessments: assessments,
		sessions:    sessions,
		pool:        pool,
		classifier:  CallerProvided{},
	}
}

// SetClassifier swaps the finalization classifier. The default persists
// caller-supplied labels verbatim.
func (s *Service) SetClassifier(c Classifier) {
	s.classifier = c
}

// inTx wraps fn in one transaction when a pool is attached. Tests run the
// service against mock repositories with no pool.
func (s *Service) inTx(ctx context.Context, fn func(context.Context) error) error {
	if s.pool == nil {
		return fn(ctx)
	}
	return db.RunInTx(ctx, s.pool, fn)
}

// Start creates a new assessment attempt: the aggregate and its paired
// session row are inserted in one transaction, so either both exist or
// neither does.
func (s *Service) Start(ctx context.Context, userID string) (*StartResult, error) {
	a := &ComprehensiveAssessment{
		SessionID: uuid.NewString(),
		UserID:    userID,
		Status:    StatusInProgress,
		StartedAt: time.Now().UTC(),
	}
	sess := &Session{
		SessionID:   a.SessionID,
		UserID:      userID,
		CurrentStep: StepIntroduction,
		SessionData: json.RawMessage(defaultSessionData),
	}
	err := s.inTx(ctx, func(ctx context.Context) error {
		if err := s.assessments.Create(ctx, a); err != nil {
			return err
		}
		return s.sessions.Create(ctx, sess)
	})
	if err != nil {
		return nil, err
	}
	return &StartResult{SessionID: a.SessionID, AssessmentID: a.ID}, nil
}

// Get returns the aggregate with its paired session. A missing session row
// degrades to the defined default; only a missing aggregate is an error.
func (s *Service) Get(ctx context.Context, sessionID string) (*Detail, error) {
	a, err := s.assessments.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sess, err := s.sessions.GetBySessionID(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		sess = &Session{
			SessionID:   sessionID,
			UserID:      a.UserID,
			CurrentStep: StepIntroduction,
			SessionData: json.RawMessage(`{}`),
		}
	}
	return &Detail{Assessment: a, Session: sess}, nil
}

// UpdateStep replaces whichever of current_step / session_data the caller
// supplied and refreshes last_activity. Supplying session_data overwrites
// the whole blob.
func (s *Service) UpdateStep(ctx context.Context, sessionID string, req StepUpdateRequest) error {
	return s.sessions.UpdateStep(ctx, sessionID, req.CurrentStep, req.SessionData)
}

func (s *Service) SavePHQ9(ctx context.Context, sessionID string, req PHQ9Request) error {
	return s.assessments.SetPHQ9(ctx, sessionID, *req.Score, req.Severity, req.Answers)
}

func (s *Service) SaveGAD7(ctx context.Context, sessionID string, req GAD7Request) error {
	return s.assessments.SetGAD7(ctx, sessionID, *req.Score, req.Severity, req.Answers)
}

func (s *Service) SaveMoodGroove(ctx context.Context, sessionID string, req MoodGrooveRequest) error {
	return s.assessments.SetMoodGroove(ctx, sessionID, req.DominantMood, req.Confidence, req.Depression, req.Anxiety, req.Expressions)
}

func (s *Service) SaveAdditional(ctx context.Context, sessionID string, req AdditionalRequest) error {
	return s.assessments.SetAdditional(ctx, sessionID, req)
}

// Complete finalizes the aggregate: status becomes completed, completed_at is
// stamped, and the classifier's output is recorded. Calling it again simply
// overwrites; concurrent finalizations race last-write-wins.
func (s *Service) Complete(ctx context.Context, sessionID string, req CompleteRequest) error {
	a, err := s.assessments.GetBySessionID(ctx, sessionID)
	if err != nil {
		return err
	}
	cl := s.classifier.Classify(a, req)
	return s.assessments.Complete(ctx, sessionID, cl.OverallSeverity, cl.RiskLevel, cl.AnalysisPrompt, cl.Recommendations)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]*Summary, error) {
	return s.assessments.ListByUser(ctx, userID)
}
