package tracking

import (
	"context"

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

func conn(ctx context.Context, pool *pgxpool.Pool) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return pool
}

// =========== Test Submission Repository ===========

type testSubmissionRepoPG struct{ pool *pgxpool.Pool }

func NewTestSubmissionRepoPG(pool *pgxpool.Pool) TestSubmissionRepository {
	return &testSubmissionRepoPG{pool: pool}
}

func (r *testSubmissionRepoPG) Create(ctx context.Context, s *TestSubmission) error {
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO test_submission (user_id, test_type, score, severity, answers)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, timestamp`,
		s.UserID, s.TestType, s.Score, s.Severity, s.Answers).Scan(&s.ID, &s.Timestamp)
}

func (r *testSubmissionRepoPG) ListByUser(ctx context.Context, userID string) ([]*TestSubmission, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT id, user_id, test_type, score, severity, answers, timestamp
		FROM test_submission WHERE user_id = $1 ORDER BY timestamp DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*TestSubmission{}
	for rows.Next() {
		var s TestSubmission
		if err := rows.Scan(&s.ID, &s.UserID, &s.TestType, &s.Score, &s.Severity, &s.Answers, &s.Timestamp); err != nil {
			return nil, err
		}
		items = append(items, &s)
	}
	return items, rows.Err()
}

// =========== Mood Groove Repository ===========

type moodGrooveRepoPG struct{ pool *pgxpool.Pool }

func NewMoodGrooveRepoPG(pool *pgxpool.Pool) MoodGrooveRepository {
	return &moodGrooveRepoPG{pool: pool}
}

const moodGrooveCols = `id, user_id, user_email, dominant_mood, confidence, depression, anxiety, expressions, timestamp`

func scanMoodGroove(row pgx.Row) (*MoodGrooveResult, error) {
	var m MoodGrooveResult
	err := row.Scan(&m.ID, &m.UserID, &m.UserEmail, &m.DominantMood, &m.Confidence, &m.Depression, &m.Anxiety, &m.Expressions, &m.Timestamp)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *moodGrooveRepoPG) Create(ctx context.Context, m *MoodGrooveResult) error {
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO mood_groove_result (user_id, user_email, dominant_mood, confidence, depression, anxiety, expressions)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, timestamp`,
		m.UserID, m.UserEmail, m.DominantMood, m.Confidence, m.Depression, m.Anxiety, m.Expressions).Scan(&m.ID, &m.Timestamp)
}

func (r *moodGrooveRepoPG) list(ctx context.Context, where string, arg interface{}) ([]*MoodGrooveResult, error) {
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT `+moodGrooveCols+` FROM mood_groove_result WHERE `+where+` ORDER BY timestamp DESC`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*MoodGrooveResult{}
	for rows.Next() {
		m, err := scanMoodGroove(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *moodGrooveRepoPG) ListByUser(ctx context.Context, userID string) ([]*MoodGrooveResult, error) {
	return r.list(ctx, "user_id = $1", userID)
}

func (r *moodGrooveRepoPG) ListByEmail(ctx context.Context, email string) ([]*MoodGrooveResult, error) {
	return r.list(ctx, "user_email = $1", email)
}

// =========== Chat Log Repository ===========

type chatLogRepoPG struct{ pool *pgxpool.Pool }

func NewChatLogRepoPG(pool *pgxpool.Pool) ChatLogRepository {
	return &chatLogRepoPG{pool: pool}
}

func (r *chatLogRepoPG) Create(ctx context.Context, l *ChatLog) error {
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO chat_log (user_id, message, sender)
		VALUES ($1, $2, $3)
		RETURNING id, timestamp`,
		l.UserID, l.Message, l.Sender).Scan(&l.ID, &l.Timestamp)
}

// =========== Breathing Exercise Repository ===========

type breathingRepoPG struct{ pool *pgxpool.Pool }

func NewBreathingRepoPG(pool *pgxpool.Pool) BreathingRepository {
	return &breathingRepoPG{pool: pool}
}

func (r *breathingRepoPG) Create(ctx context.Context, l *BreathingExerciseLog) error {
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO breathing_exercise_log (user_id, exercise_name, duration_seconds)
		VALUES ($1, $2, $3)
		RETURNING id, timestamp`,
		l.UserID, l.ExerciseName, l.DurationSeconds).Scan(&l.ID, &l.Timestamp)
}

func (r *breathingRepoPG) ListByUser(ctx context.Context, userID string) ([]*BreathingExerciseLog, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT id, user_id, exercise_name, duration_seconds, timestamp
		FROM breathing_exercise_log WHERE user_id = $1 ORDER BY timestamp DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*BreathingExerciseLog{}
	for rows.Next() {
		var l BreathingExerciseLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.ExerciseName, &l.DurationSeconds, &l.Timestamp); err != nil {
			return nil, err
		}
		items = append(items, &l)
	}
	return items, rows.Err()
}

// =========== Interaction Repository ===========

type interactionRepoPG struct{ pool *pgxpool.Pool }

func NewInteractionRepoPG(pool *pgxpool.Pool) InteractionRepository {
	return &interactionRepoPG{pool: pool}
}

func (r *interactionRepoPG) Create(ctx context.Context, i *UserInteraction) error {
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO user_interaction (user_id, interaction_type, details)
		VALUES ($1, $2, $3)
		RETURNING id, timestamp`,
		i.UserID, i.InteractionType, i.Details).Scan(&i.ID, &i.Timestamp)
}

// =========== Facial Analysis Repository ===========

type facialAnalysisRepoPG struct{ pool *pgxpool.Pool }

func NewFacialAnalysisRepoPG(pool *pgxpool.Pool) FacialAnalysisRepository {
	return &facialAnalysisRepoPG{pool: pool}
}

const facialCols = `id, user_email, session_start_time, session_end_time, total_detections,
	dominant_mood, avg_confidence, avg_depression, avg_anxiety, mood_distribution, raw_data, timestamp`

func (r *facialAnalysisRepoPG) Create(ctx context.Context, s *FacialAnalysisSession) error {
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO facial_analysis_session (user_email, session_start_time, session_end_time,
			total_detections, dominant_mood, avg_confidence, avg_depression, avg_anxiety,
			mood_distribution, raw_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, timestamp`,
		s.UserEmail, s.SessionStartTime, s.SessionEndTime, s.TotalDetections, s.DominantMood,
		s.AvgConfidence, s.AvgDepression, s.AvgAnxiety, s.MoodDistribution, s.RawData).Scan(&s.ID, &s.Timestamp)
}

func (r *facialAnalysisRepoPG) ListByEmail(ctx context.Context, email string) ([]*FacialAnalysisSession, error) {
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT `+facialCols+` FROM facial_analysis_session WHERE user_email = $1 ORDER BY timestamp DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*FacialAnalysisSession{}
	for rows.Next() {
		var s FacialAnalysisSession
		if err := rows.Scan(&s.ID, &s.UserEmail, &s.SessionStartTime, &s.SessionEndTime, &s.TotalDetections,
			&s.DominantMood, &s.AvgConfidence, &s.AvgDepression, &s.AvgAnxiety,
			&s.MoodDistribution, &s.RawData, &s.Timestamp); err != nil {
			return nil, err
		}
		items = append(items, &s)
	}
	return items, rows.Err()
}
