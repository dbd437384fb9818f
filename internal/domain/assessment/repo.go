package assessment

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned when no aggregate or session matches a session_id.
var ErrNotFound = errors.New("not found")

// AssessmentRepository persists comprehensive assessment aggregates. Writers
// overwrite their kind-specific columns unconditionally and report ErrNotFound
// when the aggregate does not exist.
type AssessmentRepository interface {
	Create(ctx context.Context, a *ComprehensiveAssessment) error
	GetBySessionID(ctx context.Context, sessionID string) (*ComprehensiveAssessment, error)
	ListByUser(ctx context.Context, userID string) ([]*Summary, error)
	SetPHQ9(ctx context.Context, sessionID string, score int, severity string, answers json.RawMessage) error
	SetGAD7(ctx context.Context, sessionID string, score int, severity string, answers json.RawMessage) error
	SetMoodGroove(ctx context.Context, sessionID string, mood string, confidence *float64, depression, anxiety *float64, expressions json.RawMessage) error
	SetAdditional(ctx context.Context, sessionID string, req AdditionalRequest) error
	Complete(ctx context.Context, sessionID string, overallSeverity, riskLevel, analysisPrompt *string, recommendations json.RawMessage) error
}

// SessionRepository persists the progress-tracking session rows.
type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	GetBySessionID(ctx context.Context, sessionID string) (*Session, error)
	UpdateStep(ctx context.Context, sessionID string, currentStep *string, sessionData json.RawMessage) error
}
