package forum

import "context"

type PostRepository interface {
	Create(ctx context.Context, p *Post) error
	ListApproved(ctx context.Context, limit, offset int) ([]*Post, int, error)
}

type FeedbackRepository interface {
	Create(ctx context.Context, f *Feedback) error
	ListFeatured(ctx context.Context, limit, offset int) ([]*Feedback, int, error)
}
