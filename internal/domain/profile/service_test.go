package profile

import (
	"context"
	"testing"
	"time"
)

type mockRepo struct {
	records map[string]*Profile
}

func newMockRepo() *mockRepo {
	return &mockRepo{records: make(map[string]*Profile)}
}

func (m *mockRepo) GetByID(_ context.Context, id string) (*Profile, error) {
	p, ok := m.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *mockRepo) GetByEmail(_ context.Context, email string) (*Profile, error) {
	for _, p := range m.records {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepo) Insert(_ context.Context, p *Profile) error {
	if _, ok := m.records[p.ID]; ok {
		return ErrConflict
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	m.records[p.ID] = p
	return nil
}

func (m *mockRepo) Update(_ context.Context, p *Profile) error {
	existing, ok := m.records[p.ID]
	if !ok {
		return ErrNotFound
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now()
	m.records[p.ID] = p
	return nil
}

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

func TestUpsert_CreatesWhenAbsent(t *testing.T) {
	svc := NewService(newMockRepo())
	res, err := svc.Upsert(context.Background(), "u1", UpsertRequest{
		Email: "u1@example.com", FullName: strPtr("Asha Rao"), Age: intPtr(29),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Created {
		t.Error("expected created=true for a new profile")
	}
	if res.Profile.Email != "u1@example.com" {
		t.Errorf("email mismatch: %s", res.Profile.Email)
	}
}

func TestUpsert_UpdatesWhenPresent(t *testing.T) {
	svc := NewService(newMockRepo())
	svc.Upsert(context.Background(), "u1", UpsertRequest{Email: "old@example.com"})

	res, err := svc.Upsert(context.Background(), "u1", UpsertRequest{Email: "new@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Created {
		t.Error("expected created=false for an existing profile")
	}
	if res.Profile.Email != "new@example.com" {
		t.Errorf("expected updated email, got %s", res.Profile.Email)
	}
}

// racingRepo reports the profile missing on the existence check but rejects
// the insert, as happens when a concurrent request creates the row in between.
type racingRepo struct {
	*mockRepo
	checked bool
}

func (r *racingRepo) GetByID(ctx context.Context, id string) (*Profile, error) {
	if !r.checked {
		r.checked = true
		return nil, ErrNotFound
	}
	return r.mockRepo.GetByID(ctx, id)
}

func (r *racingRepo) Insert(_ context.Context, p *Profile) error {
	r.mockRepo.records[p.ID] = &Profile{ID: p.ID, Email: "raced@example.com"}
	return ErrConflict
}

func TestUpsert_ConflictFallsThroughToUpdate(t *testing.T) {
	svc := NewService(&racingRepo{mockRepo: newMockRepo()})

	res, err := svc.Upsert(context.Background(), "u1", UpsertRequest{Email: "final@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Created {
		t.Error("expected update path")
	}
	if res.Profile.Email != "final@example.com" {
		t.Errorf("expected final email, got %s", res.Profile.Email)
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())
	_, err := svc.Get(context.Background(), "missing")
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetByEmail(t *testing.T) {
	svc := NewService(newMockRepo())
	svc.Upsert(context.Background(), "u1", UpsertRequest{Email: "u1@example.com"})
	p, err := svc.GetByEmail(context.Background(), "u1@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "u1" {
		t.Errorf("expected u1, got %s", p.ID)
	}
}
