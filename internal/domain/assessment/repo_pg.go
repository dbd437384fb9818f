package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/calmnest/calmnest/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// =========== Assessment Repository ===========

type assessmentRepoPG struct{ pool *pgxpool.Pool }

func NewAssessmentRepoPG(pool *pgxpool.Pool) AssessmentRepository {
	return &assessmentRepoPG{pool: pool}
}

func (r *assessmentRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const assessmentCols = `id, session_id, user_id, status, started_at, completed_at,
	phq9_score, phq9_severity, phq9_answers,
	gad7_score, gad7_severity, gad7_answers,
	dominant_mood, mood_confidence, depression_score, anxiety_score, expressions,
	resilience_score, resilience_answers, stress_score, stress_answers,
	sleep_quality_score, sleep_quality_answers, social_support_score, social_support_answers,
	overall_severity, risk_level, analysis_prompt, recommendations`

func scanAssessment(row pgx.Row) (*ComprehensiveAssessment, error) {
	var a ComprehensiveAssessment
	err := row.Scan(&a.ID, &a.SessionID, &a.UserID, &a.Status, &a.StartedAt, &a.CompletedAt,
		&a.PHQ9Score, &a.PHQ9Severity, &a.PHQ9Answers,
		&a.GAD7Score, &a.GAD7Severity, &a.GAD7Answers,
		&a.DominantMood, &a.MoodConfidence, &a.DepressionScore, &a.AnxietyScore, &a.Expressions,
		&a.ResilienceScore, &a.ResilienceAnswers, &a.StressScore, &a.StressAnswers,
		&a.SleepQualityScore, &a.SleepQualityAnswers, &a.SocialSupportScore, &a.SocialSupportAnswers,
		&a.OverallSeverity, &a.RiskLevel, &a.AnalysisPrompt, &a.Recommendations)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assessmentRepoPG) Create(ctx context.Context, a *ComprehensiveAssessment) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO comprehensive_assessment (session_id, user_id, status, started_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		a.SessionID, a.UserID, a.Status, a.StartedAt).Scan(&a.ID)
}

func (r *assessmentRepoPG) GetBySessionID(ctx context.Context, sessionID string) (*ComprehensiveAssessment, error) {
	a, err := scanAssessment(r.conn(ctx).QueryRow(ctx,
		`SELECT `+assessmentCols+` FROM comprehensive_assessment WHERE session_id = $1`, sessionID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

const summaryCols = `id, session_id, status, started_at, completed_at,
	phq9_score, gad7_score, overall_severity, risk_level`

func (r *assessmentRepoPG) ListByUser(ctx context.Context, userID string) ([]*Summary, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+summaryCols+` FROM comprehensive_assessment WHERE user_id = $1 ORDER BY started_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*Summary{}
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.SessionID, &s.Status, &s.StartedAt, &s.CompletedAt,
			&s.PHQ9Score, &s.GAD7Score, &s.OverallSeverity, &s.RiskLevel); err != nil {
			return nil, err
		}
		items = append(items, &s)
	}
	return items, rows.Err()
}

// exec runs an UPDATE keyed by session_id and maps zero affected rows to
// ErrNotFound so writers never create rows as a side effect.
func (r *assessmentRepoPG) exec(ctx context.Context, sql string, args ...interface{}) error {
	tag, err := r.conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *assessmentRepoPG) SetPHQ9(ctx context.Context, sessionID string, score int, severity string, answers json.RawMessage) error {
	return r.exec(ctx, `
		UPDATE comprehensive_assessment
		SET phq9_score = $2, phq9_severity = $3, phq9_answers = $4
		WHERE session_id = $1`,
		sessionID, score, severity, answers)
}

func (r *assessmentRepoPG) SetGAD7(ctx context.Context, sessionID string, score int, severity string, answers json.RawMessage) error {
	return r.exec(ctx, `
		UPDATE comprehensive_assessment
		SET gad7_score = $2, gad7_severity = $3, gad7_answers = $4
		WHERE session_id = $1`,
		sessionID, score, severity, answers)
}

func (r *assessmentRepoPG) SetMoodGroove(ctx context.Context, sessionID string, mood string, confidence *float64, depression, anxiety *float64, expressions json.RawMessage) error {
	return r.exec(ctx, `
		UPDATE comprehensive_assessment
		SET dominant_mood = $2, mood_confidence = $3, depression_score = $4, anxiety_score = $5, expressions = $6
		WHERE session_id = $1`,
		sessionID, mood, confidence, depression, anxiety, expressions)
}

func (r *assessmentRepoPG) SetAdditional(ctx context.Context, sessionID string, req AdditionalRequest) error {
	sets := ""
	var args []interface{}
	args = append(args, sessionID)
	idx := 2

	add := func(scoreCol, answersCol string, sub *SubScore) {
		if sub == nil {
			return
		}
		if sets != "" {
			sets += ", "
		}
		sets += fmt.Sprintf("%s = $%d, %s = $%d", scoreCol, idx, answersCol, idx+1)
		args = append(args, sub.Score, sub.Answers)
		idx += 2
	}
	add("resilience_score", "resilience_answers", req.Resilience)
	add("stress_score", "stress_answers", req.Stress)
	add("sleep_quality_score", "sleep_quality_answers", req.SleepQuality)
	add("social_support_score", "social_support_answers", req.SocialSupport)

	if sets == "" {
		return nil
	}
	return r.exec(ctx, `UPDATE comprehensive_assessment SET `+sets+` WHERE session_id = $1`, args...)
}

func (r *assessmentRepoPG) Complete(ctx context.Context, sessionID string, overallSeverity, riskLevel, analysisPrompt *string, recommendations json.RawMessage) error {
	return r.exec(ctx, `
		UPDATE comprehensive_assessment
		SET status = 'completed', completed_at = NOW(),
			overall_severity = $2, risk_level = $3, analysis_prompt = $4, recommendations = $5
		WHERE session_id = $1`,
		sessionID, overallSeverity, riskLevel, analysisPrompt, recommendations)
}

// =========== Session Repository ===========

type sessionRepoPG struct{ pool *pgxpool.Pool }

func NewSessionRepoPG(pool *pgxpool.Pool) SessionRepository {
	return &sessionRepoPG{pool: pool}
}

func (r *sessionRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const sessionCols = `id, session_id, user_id, current_step, session_data, last_activity`

func (r *sessionRepoPG) Create(ctx context.Context, s *Session) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO assessment_session (session_id, user_id, current_step, session_data, last_activity)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id`,
		s.SessionID, s.UserID, s.CurrentStep, s.SessionData).Scan(&s.ID)
}

func (r *sessionRepoPG) GetBySessionID(ctx context.Context, sessionID string) (*Session, error) {
	// session_id carries no uniqueness constraint; take the first match.
	var s Session
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT `+sessionCols+` FROM assessment_session WHERE session_id = $1 LIMIT 1`, sessionID).
		Scan(&s.ID, &s.SessionID, &s.UserID, &s.CurrentStep, &s.SessionData, &s.LastActivity)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepoPG) UpdateStep(ctx context.Context, sessionID string, currentStep *string, sessionData json.RawMessage) error {
	sets := "last_activity = NOW()"
	var args []interface{}
	args = append(args, sessionID)
	idx := 2
	if currentStep != nil {
		sets += fmt.Sprintf(", current_step = $%d", idx)
		args = append(args, *currentStep)
		idx++
	}
	if sessionData != nil {
		sets += fmt.Sprintf(", session_data = $%d", idx)
		args = append(args, sessionData)
	}
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE assessment_session SET `+sets+` WHERE session_id = $1`, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
