package assessment

import (
	"encoding/json"
	"time"
)

// Assessment aggregate statuses. "abandoned" is a declared terminal state
// that no operation currently assigns; a future reaper may use it.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusAbandoned  = "abandoned"
)

// StepIntroduction is the initial current_step of a new session.
const StepIntroduction = "introduction"

// ComprehensiveAssessment maps to the comprehensive_assessment table. Every
// sub-assessment field is independently nullable; unset fields serialize as
// explicit JSON nulls so clients can distinguish "not taken" from "omitted".
type ComprehensiveAssessment struct {
	ID          int64      `db:"id" json:"id"`
	SessionID   string     `db:"session_id" json:"session_id"`
	UserID      string     `db:"user_id" json:"user_id"`
	Status      string     `db:"status" json:"status"`
	StartedAt   time.Time  `db:"started_at" json:"started_at"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at"`

	PHQ9Score    *int            `db:"phq9_score" json:"phq9_score"`
	PHQ9Severity *string         `db:"phq9_severity" json:"phq9_severity"`
	PHQ9Answers  json.RawMessage `db:"phq9_answers" json:"phq9_answers"`

	GAD7Score    *int            `db:"gad7_score" json:"gad7_score"`
	GAD7Severity *string         `db:"gad7_severity" json:"gad7_severity"`
	GAD7Answers  json.RawMessage `db:"gad7_answers" json:"gad7_answers"`

	DominantMood    *string         `db:"dominant_mood" json:"dominant_mood"`
	MoodConfidence  *float64        `db:"mood_confidence" json:"mood_confidence"`
	DepressionScore *float64        `db:"depression_score" json:"depression_score"`
	AnxietyScore    *float64        `db:"anxiety_score" json:"anxiety_score"`
	Expressions     json.RawMessage `db:"expressions" json:"expressions"`

	ResilienceScore      *int            `db:"resilience_score" json:"resilience_score"`
	ResilienceAnswers    json.RawMessage `db:"resilience_answers" json:"resilience_answers"`
	StressScore          *int            `db:"stress_score" json:"stress_score"`
	StressAnswers        json.RawMessage `db:"stress_answers" json:"stress_answers"`
	SleepQualityScore    *int            `db:"sleep_quality_score" json:"sleep_quality_score"`
	SleepQualityAnswers  json.RawMessage `db:"sleep_quality_answers" json:"sleep_quality_answers"`
	SocialSupportScore   *int            `db:"social_support_score" json:"social_support_score"`
	SocialSupportAnswers json.RawMessage `db:"social_support_answers" json:"social_support_answers"`

	OverallSeverity *string         `db:"overall_severity" json:"overall_severity"`
	RiskLevel       *string         `db:"risk_level" json:"risk_level"`
	AnalysisPrompt  *string         `db:"analysis_prompt" json:"analysis_prompt"`
	Recommendations json.RawMessage `db:"recommendations" json:"recommendations"`
}

// Session maps to the assessment_session table: the lightweight progress
// record paired with an aggregate by session_id. There is no foreign key
// between the two; the read path tolerates a missing session row.
type Session struct {
	ID           int64           `db:"id" json:"id"`
	SessionID    string          `db:"session_id" json:"session_id"`
	UserID       string          `db:"user_id" json:"user_id"`
	CurrentStep  string          `db:"current_step" json:"current_step"`
	SessionData  json.RawMessage `db:"session_data" json:"session_data"`
	LastActivity *time.Time      `db:"last_activity" json:"last_activity"`
}

// Summary is the per-user listing projection of an aggregate.
type Summary struct {
	ID              int64      `db:"id" json:"id"`
	SessionID       string     `db:"session_id" json:"session_id"`
	Status          string     `db:"status" json:"status"`
	StartedAt       time.Time  `db:"started_at" json:"started_at"`
	CompletedAt     *time.Time `db:"completed_at" json:"completed_at"`
	PHQ9Score       *int       `db:"phq9_score" json:"phq9_score"`
	GAD7Score       *int       `db:"gad7_score" json:"gad7_score"`
	OverallSeverity *string    `db:"overall_severity" json:"overall_severity"`
	RiskLevel       *string    `db:"risk_level" json:"risk_level"`
}

// Detail is the GET response shape: the aggregate plus its paired session.
type Detail struct {
	Assessment *ComprehensiveAssessment `json:"assessment"`
	Session    *Session                 `json:"session"`
}

// StartResult is returned when a new assessment attempt is created.
type StartResult struct {
	SessionID    string `json:"session_id"`
	AssessmentID int64  `json:"assessment_id"`
}

// -- Request payloads --

type StartRequest struct {
	UserID string `json:"userId" validate:"required"`
}

type PHQ9Request struct {
	Score    *int            `json:"score" validate:"required,min=0,max=27"`
	Severity string          `json:"severity" validate:"required"`
	Answers  json.RawMessage `json:"answers" validate:"required"`
}

type GAD7Request struct {
	Score    *int            `json:"score" validate:"required,min=0,max=21"`
	Severity string          `json:"severity" validate:"required"`
	Answers  json.RawMessage `json:"answers" validate:"required"`
}

type MoodGrooveRequest struct {
	DominantMood string          `json:"dominantMood" validate:"required"`
	Confidence   *float64        `json:"confidence" validate:"required,gte=0,lte=1"`
	Depression   *float64        `json:"depression"`
	Anxiety      *float64        `json:"anxiety"`
	Expressions  json.RawMessage `json:"expressions"`
}

// SubScore is one resilience/stress/sleep-quality/social-support section.
type SubScore struct {
	Score   *int            `json:"score" validate:"required"`
	Answers json.RawMessage `json:"answers"`
}

// AdditionalRequest carries any subset of the four extra sub-assessments;
// each present section is written independently.
type AdditionalRequest struct {
	Resilience    *SubScore `json:"resilience" validate:"omitempty"`
	Stress        *SubScore `json:"stress" validate:"omitempty"`
	SleepQuality  *SubScore `json:"sleep_quality" validate:"omitempty"`
	SocialSupport *SubScore `json:"social_support" validate:"omitempty"`
}

// Empty reports whether no section is present.
func (r AdditionalRequest) Empty() bool {
	return r.Resilience == nil && r.Stress == nil && r.SleepQuality == nil && r.SocialSupport == nil
}

type StepUpdateRequest struct {
	CurrentStep *string         `json:"current_step"`
	SessionData json.RawMessage `json:"session_data"`
}

type CompleteRequest struct {
	OverallSeverity *string         `json:"overall_severity"`
	RiskLevel       *string         `json:"risk_level"`
	AnalysisPrompt  *string         `json:"analysis_prompt"`
	Recommendations json.RawMessage `json:"recommendations"`
}
