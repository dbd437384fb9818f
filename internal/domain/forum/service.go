package forum

import "context"

type Service struct {
	posts     PostRepository
	feedbacks FeedbackRepository
}

func NewService(posts PostRepository, feedbacks FeedbackRepository) *Service {
	return &Service{posts: posts, feedbacks: feedbacks}
}

// CreatePost stores a new post, approved immediately.
func (s *Service) CreatePost(ctx context.Context, req PostRequest) (*Post, error) {
	p := &Post{
		UserID:     req.UserID,
		Title:      req.Title,
		Content:    req.Content,
		Author:     req.Author,
		IsApproved: true,
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListPosts(ctx context.Context, limit, offset int) ([]*Post, int, error) {
	return s.posts.ListApproved(ctx, limit, offset)
}

// CreateFeedback stores new feedback, featured immediately.
func (s *Service) CreateFeedback(ctx context.Context, req FeedbackRequest) (*Feedback, error) {
	f := &Feedback{
		UserID:       req.UserID,
		FeedbackText: req.FeedbackText,
		Rating:       req.Rating,
		IsFeatured:   true,
	}
	if err := s.feedbacks.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) ListFeedback(ctx context.Context, limit, offset int) ([]*Feedback, int, error) {
	return s.feedbacks.ListFeatured(ctx, limit, offset)
}
