package tracking

import "context"

type TestSubmissionRepository interface {
	Create(ctx context.Context, s *TestSubmission) error
	ListByUser(ctx context.Context, userID string) ([]*TestSubmission, error)
}

type MoodGrooveRepository interface {
	Create(ctx context.Context, r *MoodGrooveResult) error
	ListByUser(ctx context.Context, userID string) ([]*MoodGrooveResult, error)
	ListByEmail(ctx context.Context, email string) ([]*MoodGrooveResult, error)
}

type ChatLogRepository interface {
	Create(ctx context.Context, l *ChatLog) error
}

type BreathingRepository interface {
	Create(ctx context.Context, l *BreathingExerciseLog) error
	ListByUser(ctx context.Context, userID string) ([]*BreathingExerciseLog, error)
}

type InteractionRepository interface {
	Create(ctx context.Context, i *UserInteraction) error
}

type FacialAnalysisRepository interface {
	Create(ctx context.Context, s *FacialAnalysisSession) error
	ListByEmail(ctx context.Context, email string) ([]*FacialAnalysisSession, error)
}
