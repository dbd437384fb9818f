// Package dashboard assembles per-user read-side views over the other
// domains. It performs no writes and no derived computation; every sub-fetch
// failure degrades to an empty collection rather than failing the response.
package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/calmnest/calmnest/internal/domain/assessment"
	"github.com/calmnest/calmnest/internal/domain/profile"
	"github.com/calmnest/calmnest/internal/domain/tracking"
)

// TrackingSource is the slice of the tracking service the dashboard reads.
type TrackingSource interface {
	ListTestSubmissions(ctx context.Context, userID string) ([]*tracking.TestSubmission, error)
	ListMoodGroovesByUser(ctx context.Context, userID string) ([]*tracking.MoodGrooveResult, error)
	ListMoodGroovesByEmail(ctx context.Context, email string) ([]*tracking.MoodGrooveResult, error)
	ListBreathingLogs(ctx context.Context, userID string) ([]*tracking.BreathingExerciseLog, error)
	FacialReport(ctx context.Context, email string) (*tracking.FacialAnalysisReport, error)
}

type AssessmentSource interface {
	ListByUser(ctx context.Context, userID string) ([]*assessment.Summary, error)
}

type ProfileSource interface {
	Get(ctx context.Context, id string) (*profile.Profile, error)
	GetByEmail(ctx context.Context, email string) (*profile.Profile, error)
}

// Unified is the aggregated per-user view.
type Unified struct {
	TestSubmissions          []*tracking.TestSubmission        `json:"test_submissions"`
	MoodGrooveResults        []*tracking.MoodGrooveResult      `json:"mood_groove_results"`
	BreathingExercises       []*tracking.BreathingExerciseLog  `json:"breathing_exercises"`
	FacialAnalysisSessions   []*tracking.FacialAnalysisSession `json:"facial_analysis_sessions"`
	ComprehensiveAssessments []*assessment.Summary             `json:"comprehensive_assessments"`
	TestCount                int                               `json:"test_count"`
	ComprehensiveCount       int                               `json:"comprehensive_assessments_count"`
	TotalSessions            int                               `json:"total_sessions"`
	UserProfile              *profile.Profile                  `json:"user_profile"`
}

// Overall is the lighter per-user view without facial or assessment data.
type Overall struct {
	TestSubmissions    []*tracking.TestSubmission       `json:"test_submissions"`
	MoodGrooveResults  []*tracking.MoodGrooveResult     `json:"mood_groove_results"`
	BreathingExercises []*tracking.BreathingExerciseLog `json:"breathing_exercises"`
	TestCount          int                              `json:"test_count"`
}

type Service struct {
	trackings   TrackingSource
	assessments AssessmentSource
	profiles    ProfileSource
	log         zerolog.Logger
}

func NewService(trackings TrackingSource, assessments AssessmentSource, profiles ProfileSource, log zerolog.Logger) *Service {
	return &Service{trackings: trackings, assessments: assessments, profiles: profiles, log: log}
}

// Unified fans out to every per-user collection. Each fetch degrades
// independently: a failed lookup contributes an empty list, never an error.
func (s *Service) Unified(ctx context.Context, userID, email string) (*Unified, error) {
	out := &Unified{
		TestSubmissions:          []*tracking.TestSubmission{},
		MoodGrooveResults:        []*tracking.MoodGrooveResult{},
		BreathingExercises:       []*tracking.BreathingExerciseLog{},
		FacialAnalysisSessions:   []*tracking.FacialAnalysisSession{},
		ComprehensiveAssessments: []*assessment.Summary{},
	}

	if subs, err := s.trackings.ListTestSubmissions(ctx, userID); err != nil {
		s.log.Warn().Err(err).Msg("test submissions fetch failed")
	} else {
		out.TestSubmissions = subs
	}

	out.MoodGrooveResults = s.moodsDeduped(ctx, userID, email)

	if logs, err := s.trackings.ListBreathingLogs(ctx, userID); err != nil {
		s.log.Warn().Err(err).Msg("breathing logs fetch failed")
	} else {
		out.BreathingExercises = logs
	}

	if report, err := s.trackings.FacialReport(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("facial report fetch failed")
	} else {
		out.FacialAnalysisSessions = report.Sessions
		out.TotalSessions = report.TotalSessions
	}

	if items, err := s.assessments.ListByUser(ctx, userID); err != nil {
		s.log.Warn().Err(err).Msg("assessments fetch failed")
	} else {
		out.ComprehensiveAssessments = items
	}

	if p, err := s.profiles.Get(ctx, userID); err != nil {
		if !errors.Is(err, profile.ErrNotFound) {
			s.log.Warn().Err(err).Msg("profile fetch failed")
		}
	} else {
		out.UserProfile = p
	}

	out.TestCount = len(out.TestSubmissions)
	out.ComprehensiveCount = len(out.ComprehensiveAssessments)
	return out, nil
}

// moodsDeduped merges mood results fetched by user id and by email.
// Duplicates share an id; the email fetch silently supersedes the earlier
// entry (last write wins), and a failed email lookup is swallowed.
func (s *Service) moodsDeduped(ctx context.Context, userID, email string) []*tracking.MoodGrooveResult {
	merged := []*tracking.MoodGrooveResult{}
	index := map[int64]int{}

	byUser, err := s.trackings.ListMoodGroovesByUser(ctx, userID)
	if err != nil {
		s.log.Warn().Err(err).Msg("mood results by user fetch failed")
		byUser = nil
	}
	for _, m := range byUser {
		index[m.ID] = len(merged)
		merged = append(merged, m)
	}

	byEmail, err := s.trackings.ListMoodGroovesByEmail(ctx, email)
	if err != nil {
		s.log.Warn().Err(err).Msg("mood results by email fetch failed")
		byEmail = nil
	}
	for _, m := range byEmail {
		if i, ok := index[m.ID]; ok {
			merged[i] = m
			continue
		}
		index[m.ID] = len(merged)
		merged = append(merged, m)
	}
	return merged
}

// OverallByUser is the lighter view keyed by user id only. A non-nil day
// restricts test submissions (and test_count) to that calendar day; mood
// results and breathing logs are never filtered.
func (s *Service) OverallByUser(ctx context.Context, userID string, day *time.Time) (*Overall, error) {
	out := &Overall{
		TestSubmissions:    []*tracking.TestSubmission{},
		MoodGrooveResults:  []*tracking.MoodGrooveResult{},
		BreathingExercises: []*tracking.BreathingExerciseLog{},
	}

	if subs, err := s.trackings.ListTestSubmissions(ctx, userID); err != nil {
		s.log.Warn().Err(err).Msg("test submissions fetch failed")
	} else {
		if day != nil {
			subs = submissionsOnDay(subs, *day)
		}
		out.TestSubmissions = subs
	}
	if moods, err := s.trackings.ListMoodGroovesByUser(ctx, userID); err != nil {
		s.log.Warn().Err(err).Msg("mood results fetch failed")
	} else {
		out.MoodGrooveResults = moods
	}
	if logs, err := s.trackings.ListBreathingLogs(ctx, userID); err != nil {
		s.log.Warn().Err(err).Msg("breathing logs fetch failed")
	} else {
		out.BreathingExercises = logs
	}

	out.TestCount = len(out.TestSubmissions)
	return out, nil
}

func submissionsOnDay(subs []*tracking.TestSubmission, day time.Time) []*tracking.TestSubmission {
	y, m, d := day.Date()
	filtered := []*tracking.TestSubmission{}
	for _, sub := range subs {
		sy, sm, sd := sub.Timestamp.Date()
		if sy == y && sm == m && sd == d {
			filtered = append(filtered, sub)
		}
	}
	return filtered
}

// UnifiedByEmail resolves the profile by email first. A missing profile
// yields the empty shape with user_profile null rather than an error.
func (s *Service) UnifiedByEmail(ctx context.Context, email string) (*Unified, error) {
	p, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, profile.ErrNotFound) {
			s.log.Warn().Err(err).Msg("profile by email fetch failed")
		}
		return &Unified{
			TestSubmissions:          []*tracking.TestSubmission{},
			MoodGrooveResults:        []*tracking.MoodGrooveResult{},
			BreathingExercises:       []*tracking.BreathingExerciseLog{},
			FacialAnalysisSessions:   []*tracking.FacialAnalysisSession{},
			ComprehensiveAssessments: []*assessment.Summary{},
		}, nil
	}
	return s.Unified(ctx, p.ID, email)
}
