package forum

import "time"

// Post maps to the forum_post table. New posts are approved on creation;
// the is_approved flag stays for a future moderation flow.
type Post struct {
	ID         int64     `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"user_id"`
	Title      string    `db:"title" json:"title"`
	Content    string    `db:"content" json:"content"`
	Author     string    `db:"author" json:"author"`
	IsApproved bool      `db:"is_approved" json:"is_approved"`
	Timestamp  time.Time `db:"timestamp" json:"timestamp"`
}

// Feedback maps to the feedback table. New feedback is featured on creation.
type Feedback struct {
	ID           int64     `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"user_id"`
	FeedbackText string    `db:"feedback_text" json:"feedback_text"`
	Rating       *int      `db:"rating" json:"rating"`
	IsFeatured   bool      `db:"is_featured" json:"is_featured"`
	Timestamp    time.Time `db:"timestamp" json:"timestamp"`
}

type PostRequest struct {
	UserID  string `json:"userId" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Author  string `json:"author" validate:"required"`
}

type FeedbackRequest struct {
	UserID       string `json:"userId" validate:"required"`
	FeedbackText string `json:"feedback_text" validate:"required"`
	Rating       *int   `json:"rating" validate:"omitempty,min=1,max=5"`
}
