package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/calmnest/calmnest/internal/domain/assessment"
	"github.com/calmnest/calmnest/internal/domain/profile"
	"github.com/calmnest/calmnest/internal/domain/tracking"
)

type mockTracking struct {
	submissions []*tracking.TestSubmission
	moodsByUser []*tracking.MoodGrooveResult
	moodsByMail []*tracking.MoodGrooveResult
	breathing   []*tracking.BreathingExerciseLog
	facial      []*tracking.FacialAnalysisSession

	failSubmissions bool
	failMoodsByMail bool
	failFacial      bool
}

func (m *mockTracking) ListTestSubmissions(_ context.Context, _ string) ([]*tracking.TestSubmission, error) {
	if m.failSubmissions {
		return nil, errors.New("boom")
	}
	return m.submissions, nil
}

func (m *mockTracking) ListMoodGroovesByUser(_ context.Context, _ string) ([]*tracking.MoodGrooveResult, error) {
	return m.moodsByUser, nil
}

func (m *mockTracking) ListMoodGroovesByEmail(_ context.Context, _ string) ([]*tracking.MoodGrooveResult, error) {
	if m.failMoodsByMail {
		return nil, errors.New("boom")
	}
	return m.moodsByMail, nil
}

func (m *mockTracking) ListBreathingLogs(_ context.Context, _ string) ([]*tracking.BreathingExerciseLog, error) {
	return m.breathing, nil
}

func (m *mockTracking) FacialReport(_ context.Context, _ string) (*tracking.FacialAnalysisReport, error) {
	if m.failFacial {
		return nil, errors.New("boom")
	}
	return &tracking.FacialAnalysisReport{Sessions: m.facial, TotalSessions: len(m.facial)}, nil
}

type mockAssessments struct {
	items []*assessment.Summary
}

func (m *mockAssessments) ListByUser(_ context.Context, _ string) ([]*assessment.Summary, error) {
	return m.items, nil
}

type mockProfiles struct {
	byID    map[string]*profile.Profile
	byEmail map[string]*profile.Profile
}

func (m *mockProfiles) Get(_ context.Context, id string) (*profile.Profile, error) {
	if p, ok := m.byID[id]; ok {
		return p, nil
	}
	return nil, profile.ErrNotFound
}

func (m *mockProfiles) GetByEmail(_ context.Context, email string) (*profile.Profile, error) {
	if p, ok := m.byEmail[email]; ok {
		return p, nil
	}
	return nil, profile.ErrNotFound
}

func newTestService() (*Service, *mockTracking, *mockAssessments, *mockProfiles) {
	trk := &mockTracking{}
	asm := &mockAssessments{}
	prf := &mockProfiles{byID: map[string]*profile.Profile{}, byEmail: map[string]*profile.Profile{}}
	return NewService(trk, asm, prf, zerolog.Nop()), trk, asm, prf
}

func mood(id int64, dominant string) *tracking.MoodGrooveResult {
	return &tracking.MoodGrooveResult{ID: id, DominantMood: dominant}
}

func TestUnified_Counts(t *testing.T) {
	svc, trk, asm, prf := newTestService()
	trk.submissions = []*tracking.TestSubmission{{ID: 1}, {ID: 2}}
	trk.facial = []*tracking.FacialAnalysisSession{{ID: 1}}
	asm.items = []*assessment.Summary{{ID: 1}, {ID: 2}, {ID: 3}}
	prf.byID["u1"] = &profile.Profile{ID: "u1", Email: "u1@example.com"}

	out, err := svc.Unified(context.Background(), "u1", "u1@example.com")
	if err != nil {
		t.Fatalf("Unified: %v", err)
	}
	if out.TestCount != 2 {
		t.Errorf("test count = %d, want 2", out.TestCount)
	}
	if out.ComprehensiveCount != 3 {
		t.Errorf("assessment count = %d, want 3", out.ComprehensiveCount)
	}
	if out.TotalSessions != 1 {
		t.Errorf("total sessions = %d, want 1", out.TotalSessions)
	}
	if out.UserProfile == nil || out.UserProfile.ID != "u1" {
		t.Errorf("user profile = %+v, want u1", out.UserProfile)
	}
}

func TestUnified_MoodDedupLastWriteWins(t *testing.T) {
	svc, trk, _, _ := newTestService()
	trk.moodsByUser = []*tracking.MoodGrooveResult{mood(1, "calm"), mood(2, "sad")}
	trk.moodsByMail = []*tracking.MoodGrooveResult{mood(2, "happy"), mood(3, "neutral")}

	out, err := svc.Unified(context.Background(), "u1", "u1@example.com")
	if err != nil {
		t.Fatalf("Unified: %v", err)
	}
	if len(out.MoodGrooveResults) != 3 {
		t.Fatalf("moods = %d, want 3", len(out.MoodGrooveResults))
	}
	// id 2 appears in both fetches; the email copy supersedes the user copy
	// in place, so order stays 1, 2, 3.
	got := out.MoodGrooveResults
	if got[0].ID != 1 || got[1].ID != 2 || got[2].ID != 3 {
		t.Fatalf("mood order = %d,%d,%d, want 1,2,3", got[0].ID, got[1].ID, got[2].ID)
	}
	if got[1].DominantMood != "happy" {
		t.Errorf("duplicate mood = %q, want the later copy %q", got[1].DominantMood, "happy")
	}
}

func TestUnified_SubFetchFailureDegradesToEmpty(t *testing.T) {
	svc, trk, _, _ := newTestService()
	trk.failSubmissions = true
	trk.failFacial = true
	trk.moodsByUser = []*tracking.MoodGrooveResult{mood(1, "calm")}

	out, err := svc.Unified(context.Background(), "u1", "u1@example.com")
	if err != nil {
		t.Fatalf("Unified: %v", err)
	}
	if len(out.TestSubmissions) != 0 || out.TestCount != 0 {
		t.Errorf("submissions should be empty on fetch failure, got %d", len(out.TestSubmissions))
	}
	if len(out.FacialAnalysisSessions) != 0 || out.TotalSessions != 0 {
		t.Errorf("facial sessions should be empty on fetch failure")
	}
	if len(out.MoodGrooveResults) != 1 {
		t.Errorf("healthy fetches should still populate, got %d moods", len(out.MoodGrooveResults))
	}
}

func TestUnified_MoodEmailFetchFailureKeepsUserMoods(t *testing.T) {
	svc, trk, _, _ := newTestService()
	trk.moodsByUser = []*tracking.MoodGrooveResult{mood(1, "calm")}
	trk.failMoodsByMail = true

	out, err := svc.Unified(context.Background(), "u1", "u1@example.com")
	if err != nil {
		t.Fatalf("Unified: %v", err)
	}
	if len(out.MoodGrooveResults) != 1 {
		t.Fatalf("moods = %d, want 1", len(out.MoodGrooveResults))
	}
}

func TestUnified_MissingProfileIsNull(t *testing.T) {
	svc, _, _, _ := newTestService()

	out, err := svc.Unified(context.Background(), "nobody", "nobody@example.com")
	if err != nil {
		t.Fatalf("Unified: %v", err)
	}
	if out.UserProfile != nil {
		t.Errorf("user profile = %+v, want nil", out.UserProfile)
	}
}

func TestOverallByUser(t *testing.T) {
	svc, trk, _, _ := newTestService()
	trk.submissions = []*tracking.TestSubmission{{ID: 1}}
	trk.moodsByUser = []*tracking.MoodGrooveResult{mood(1, "calm"), mood(2, "sad")}
	trk.breathing = []*tracking.BreathingExerciseLog{{ID: 1}}

	out, err := svc.OverallByUser(context.Background(), "u1", nil)
	if err != nil {
		t.Fatalf("OverallByUser: %v", err)
	}
	if out.TestCount != 1 {
		t.Errorf("test count = %d, want 1", out.TestCount)
	}
	if len(out.MoodGrooveResults) != 2 || len(out.BreathingExercises) != 1 {
		t.Errorf("moods = %d, breathing = %d", len(out.MoodGrooveResults), len(out.BreathingExercises))
	}
}

func TestOverallByUser_DateFilterRestrictsSubmissions(t *testing.T) {
	svc, trk, _, _ := newTestService()
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	trk.submissions = []*tracking.TestSubmission{
		{ID: 1, Timestamp: day.Add(9 * time.Hour)},
		{ID: 2, Timestamp: day.Add(23 * time.Hour)},
		{ID: 3, Timestamp: day.AddDate(0, 0, -1)},
	}
	trk.moodsByUser = []*tracking.MoodGrooveResult{mood(1, "calm")}

	out, err := svc.OverallByUser(context.Background(), "u1", &day)
	if err != nil {
		t.Fatalf("OverallByUser: %v", err)
	}
	if len(out.TestSubmissions) != 2 || out.TestCount != 2 {
		t.Fatalf("submissions = %d, test_count = %d, want 2 on the requested day", len(out.TestSubmissions), out.TestCount)
	}
	// the filter applies to submissions only
	if len(out.MoodGrooveResults) != 1 {
		t.Errorf("moods = %d, want 1 (unfiltered)", len(out.MoodGrooveResults))
	}
}

func TestUnifiedByEmail_ResolvesProfile(t *testing.T) {
	svc, trk, _, prf := newTestService()
	prf.byEmail["u1@example.com"] = &profile.Profile{ID: "u1", Email: "u1@example.com"}
	prf.byID["u1"] = prf.byEmail["u1@example.com"]
	trk.submissions = []*tracking.TestSubmission{{ID: 1}}

	out, err := svc.UnifiedByEmail(context.Background(), "u1@example.com")
	if err != nil {
		t.Fatalf("UnifiedByEmail: %v", err)
	}
	if out.UserProfile == nil || out.UserProfile.ID != "u1" {
		t.Fatalf("user profile = %+v, want u1", out.UserProfile)
	}
	if out.TestCount != 1 {
		t.Errorf("test count = %d, want 1", out.TestCount)
	}
}

func TestUnifiedByEmail_UnknownEmailReturnsEmptyShape(t *testing.T) {
	svc, trk, _, _ := newTestService()
	trk.submissions = []*tracking.TestSubmission{{ID: 1}}

	out, err := svc.UnifiedByEmail(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("UnifiedByEmail: %v", err)
	}
	if out.UserProfile != nil {
		t.Errorf("user profile = %+v, want nil", out.UserProfile)
	}
	if len(out.TestSubmissions) != 0 || out.TestCount != 0 {
		t.Errorf("expected empty collections for unknown email")
	}
}
