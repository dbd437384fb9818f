package tracking

import (
	"encoding/json"
	"time"
)

// TestSubmission maps to the test_submission table: one completed
// standalone questionnaire (PHQ-9, GAD-7, ...) outside the comprehensive
// assessment flow.
type TestSubmission struct {
	ID        int64           `db:"id" json:"id"`
	UserID    string          `db:"user_id" json:"user_id"`
	TestType  string          `db:"test_type" json:"test_type"`
	Score     int             `db:"score" json:"score"`
	Severity  string          `db:"severity" json:"severity"`
	Answers   json.RawMessage `db:"answers" json:"answers"`
	Timestamp time.Time       `db:"timestamp" json:"timestamp"`
}

// MoodGrooveResult maps to the mood_groove_result table: one snapshot from
// the camera-based mood detector.
type MoodGrooveResult struct {
	ID           int64           `db:"id" json:"id"`
	UserID       string          `db:"user_id" json:"user_id"`
	UserEmail    *string         `db:"user_email" json:"user_email"`
	DominantMood string          `db:"dominant_mood" json:"dominant_mood"`
	Confidence   float64         `db:"confidence" json:"confidence"`
	Depression   float64         `db:"depression" json:"depression"`
	Anxiety      float64         `db:"anxiety" json:"anxiety"`
	Expressions  json.RawMessage `db:"expressions" json:"expressions"`
	Timestamp    time.Time       `db:"timestamp" json:"timestamp"`
}

// ChatLog maps to the chat_log table.
type ChatLog struct {
	ID        int64     `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Message   string    `db:"message" json:"message"`
	Sender    string    `db:"sender" json:"sender"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
}

// BreathingExerciseLog maps to the breathing_exercise_log table.
type BreathingExerciseLog struct {
	ID              int64     `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"user_id"`
	ExerciseName    string    `db:"exercise_name" json:"exercise_name"`
	DurationSeconds int       `db:"duration_seconds" json:"duration_seconds"`
	Timestamp       time.Time `db:"timestamp" json:"timestamp"`
}

// UserInteraction maps to the user_interaction table: page views, clicks
// and similar client events.
type UserInteraction struct {
	ID              int64           `db:"id" json:"id"`
	UserID          string          `db:"user_id" json:"user_id"`
	InteractionType string          `db:"interaction_type" json:"interaction_type"`
	Details         json.RawMessage `db:"details" json:"details"`
	Timestamp       time.Time       `db:"timestamp" json:"timestamp"`
}

// FacialAnalysisSession maps to the facial_analysis_session table: one
// aggregated camera session, keyed by email rather than user id.
type FacialAnalysisSession struct {
	ID               int64           `db:"id" json:"id"`
	UserEmail        string          `db:"user_email" json:"user_email"`
	SessionStartTime time.Time       `db:"session_start_time" json:"session_start_time"`
	SessionEndTime   time.Time       `db:"session_end_time" json:"session_end_time"`
	TotalDetections  int             `db:"total_detections" json:"total_detections"`
	DominantMood     string          `db:"dominant_mood" json:"dominant_mood"`
	AvgConfidence    float64         `db:"avg_confidence" json:"avg_confidence"`
	AvgDepression    float64         `db:"avg_depression" json:"avg_depression"`
	AvgAnxiety       float64         `db:"avg_anxiety" json:"avg_anxiety"`
	MoodDistribution json.RawMessage `db:"mood_distribution" json:"mood_distribution"`
	RawData          json.RawMessage `db:"raw_data" json:"raw_data"`
	Timestamp        time.Time       `db:"timestamp" json:"timestamp"`
}

// -- Request payloads (wire names follow the existing clients) --

type TestSubmissionRequest struct {
	UserID   string          `json:"userId" validate:"required"`
	TestType string          `json:"test_type" validate:"required"`
	Score    *int            `json:"score" validate:"required"`
	Severity string          `json:"severity" validate:"required"`
	Answers  json.RawMessage `json:"answers" validate:"required"`
}

type MoodGrooveRequest struct {
	UserID       string          `json:"userId" validate:"required"`
	UserEmail    *string         `json:"userEmail"`
	DominantMood string          `json:"dominantMood" validate:"required"`
	Confidence   *float64        `json:"confidence" validate:"required"`
	Depression   *float64        `json:"depression" validate:"required"`
	Anxiety      *float64        `json:"anxiety" validate:"required"`
	Expressions  json.RawMessage `json:"expressions" validate:"required"`
}

type ChatLogRequest struct {
	UserID  string `json:"userId" validate:"required"`
	Message string `json:"message" validate:"required"`
	Sender  string `json:"sender" validate:"required"`
}

type BreathingExerciseRequest struct {
	UserID          string `json:"userId" validate:"required"`
	ExerciseName    string `json:"exercise_name" validate:"required"`
	DurationSeconds *int   `json:"duration_seconds" validate:"required"`
}

type InteractionRequest struct {
	UserID          string          `json:"userId" validate:"required"`
	InteractionType string          `json:"interaction_type" validate:"required"`
	Details         json.RawMessage `json:"details"`
}

type FacialAnalysisRequest struct {
	UserEmail        string          `json:"userEmail" validate:"required,email"`
	SessionStartTime time.Time       `json:"sessionStartTime" validate:"required"`
	SessionEndTime   time.Time       `json:"sessionEndTime" validate:"required"`
	TotalDetections  *int            `json:"totalDetections" validate:"required"`
	DominantMood     string          `json:"dominantMood" validate:"required"`
	AvgConfidence    *float64        `json:"avgConfidence" validate:"required"`
	AvgDepression    *float64        `json:"avgDepression" validate:"required"`
	AvgAnxiety       *float64        `json:"avgAnxiety" validate:"required"`
	MoodDistribution json.RawMessage `json:"moodDistribution" validate:"required"`
	RawData          json.RawMessage `json:"rawData" validate:"required"`
}

// FacialAnalysisReport is the per-email listing response.
type FacialAnalysisReport struct {
	Sessions      []*FacialAnalysisSession `json:"facial_analysis_sessions"`
	TotalSessions int                      `json:"total_sessions"`
}
