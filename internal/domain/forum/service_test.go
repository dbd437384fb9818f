package forum

import (
	"context"
	"testing"
	"time"
)

type mockPostRepo struct{ records []*Post }

func (m *mockPostRepo) Create(_ context.Context, p *Post) error {
	p.ID = int64(len(m.records) + 1)
	p.Timestamp = time.Now()
	m.records = append(m.records, p)
	return nil
}

func (m *mockPostRepo) ListApproved(_ context.Context, limit, offset int) ([]*Post, int, error) {
	approved := []*Post{}
	for _, p := range m.records {
		if p.IsApproved {
			approved = append(approved, p)
		}
	}
	total := len(approved)
	if offset >= total {
		return []*Post{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return approved[offset:end], total, nil
}

type mockFeedbackRepo struct{ records []*Feedback }

func (m *mockFeedbackRepo) Create(_ context.Context, f *Feedback) error {
	f.ID = int64(len(m.records) + 1)
	f.Timestamp = time.Now()
	m.records = append(m.records, f)
	return nil
}

func (m *mockFeedbackRepo) ListFeatured(_ context.Context, limit, offset int) ([]*Feedback, int, error) {
	featured := []*Feedback{}
	for _, f := range m.records {
		if f.IsFeatured {
			featured = append(featured, f)
		}
	}
	return featured, len(featured), nil
}

func newTestService() (*Service, *mockPostRepo, *mockFeedbackRepo) {
	posts := &mockPostRepo{}
	feedbacks := &mockFeedbackRepo{}
	return NewService(posts, feedbacks), posts, feedbacks
}

func TestCreatePost_AutoApproved(t *testing.T) {
	svc, _, _ := newTestService()
	p, err := svc.CreatePost(context.Background(), PostRequest{
		UserID: "u1", Title: "sleep tips", Content: "what works for you?", Author: "asha",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.IsApproved {
		t.Error("expected new post to be approved")
	}
}

func TestListPosts_OnlyApproved(t *testing.T) {
	svc, posts, _ := newTestService()
	svc.CreatePost(context.Background(), PostRequest{UserID: "u1", Title: "a", Content: "b", Author: "c"})
	posts.records = append(posts.records, &Post{ID: 99, UserID: "u2", Title: "pending", IsApproved: false})

	items, total, err := svc.ListPosts(context.Background(), 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Errorf("expected 1 approved post, got %d (total %d)", len(items), total)
	}
}

func TestCreateFeedback_AutoFeatured(t *testing.T) {
	svc, _, _ := newTestService()
	rating := 5
	f, err := svc.CreateFeedback(context.Background(), FeedbackRequest{
		UserID: "u1", FeedbackText: "really helpful", Rating: &rating,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.IsFeatured {
		t.Error("expected new feedback to be featured")
	}
}

func TestCreateFeedback_RatingOptional(t *testing.T) {
	svc, _, _ := newTestService()
	f, err := svc.CreateFeedback(context.Background(), FeedbackRequest{
		UserID: "u1", FeedbackText: "no stars given",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Rating != nil {
		t.Error("expected nil rating preserved")
	}
}
