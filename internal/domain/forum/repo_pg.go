package forum

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

// =========== Post Repository ===========

type postRepoPG struct{ pool *pgxpool.Pool }

func NewPostRepoPG(pool *pgxpool.Pool) PostRepository {
	return &postRepoPG{pool: pool}
}

func (r *postRepoPG) Create(ctx context.Context, p *Post) error {
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO forum_post (user_id, title, content, author, is_approved)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, timestamp`,
		p.UserID, p.Title, p.Content, p.Author, p.IsApproved).Scan(&p.ID, &p.Timestamp)
}

func (r *postRepoPG) ListApproved(ctx context.Context, limit, offset int) ([]*Post, int, error) {
	var total int
	if err := conn(ctx, r.pool).QueryRow(ctx,
		`SELECT COUNT(*) FROM forum_post WHERE is_approved = TRUE`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT id, user_id, title, content, author, is_approved, timestamp
		FROM forum_post WHERE is_approved = TRUE
		ORDER BY timestamp DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items := []*Post{}
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Content, &p.Author, &p.IsApproved, &p.Timestamp); err != nil {
			return nil, 0, err
		}
		items = append(items, &p)
	}
	return items, total, rows.Err()
}

// =========== Feedback Repository ===========

type feedbackRepoPG struct{ pool *pgxpool.Pool }

func NewFeedbackRepoPG(pool *pgxpool.Pool) FeedbackRepository {
	return &feedbackRepoPG{pool: pool}
}

func (r *feedbackRepoPG) Create(ctx context.Context, f *Feedback) error {
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO feedback (user_id, feedback_text, rating, is_featured)
		VALUES ($1, $2, $3, $4)
		RETURNING id, timestamp`,
		f.UserID, f.FeedbackText, f.Rating, f.IsFeatured).Scan(&f.ID, &f.Timestamp)
}

func (r *feedbackRepoPG) ListFeatured(ctx context.Context, limit, offset int) ([]*Feedback, int, error) {
	var total int
	if err := conn(ctx, r.pool).QueryRow(ctx,
		`SELECT COUNT(*) FROM feedback WHERE is_featured = TRUE`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT id, user_id, feedback_text, rating, is_featured, timestamp
		FROM feedback WHERE is_featured = TRUE
		ORDER BY timestamp DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items := []*Feedback{}
	for rows.Next() {
		var f Feedback
		if err := rows.Scan(&f.ID, &f.UserID, &f.FeedbackText, &f.Rating, &f.IsFeatured, &f.Timestamp); err != nil {
			return nil, 0, err
		}
		items = append(items, &f)
	}
	return items, total, rows.Err()
}
