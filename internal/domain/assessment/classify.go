package assessment

import "encoding/json"

// Classification holds the derived fields written at finalization.
type Classification struct {
	OverallSeverity *string
	RiskLevel       *string
	AnalysisPrompt  *string
	Recommendations json.RawMessage
}

// Classifier decides the derived classification recorded when an assessment
// is completed. The aggregate passed in reflects state before finalization.
type Classifier interface {
	Classify(a *ComprehensiveAssessment, req CompleteRequest) Classification
}

// CallerProvided persists whatever the caller asserts, verbatim. This is the
// default: classification happens client-side and the server only records it.
type CallerProvided struct{}

func (CallerProvided) Classify(_ *ComprehensiveAssessment, req CompleteRequest) Classification {
	return Classification{
		OverallSeverity: req.OverallSeverity,
		RiskLevel:       req.RiskLevel,
		AnalysisPrompt:  req.AnalysisPrompt,
		Recommendations: req.Recommendations,
	}
}

// RuleBased derives severity and risk from the stored PHQ-9 and GAD-7 scores
// using the standard clinical cutoffs, ignoring caller-supplied labels. The
// free-text prompt and recommendations still come from the caller. Selected
// via CLASSIFIER=rules; never the default.
type RuleBased struct{}

func (RuleBased) Classify(a *ComprehensiveAssessment, req CompleteRequest) Classification {
	phq := -1
	if a.PHQ9Score != nil {
		phq = *a.PHQ9Score
	}
	gad := -1
	if a.GAD7Score != nil {
		gad = *a.GAD7Score
	}

	severity := maxSeverity(phq9Severity(phq), gad7Severity(gad))
	risk := riskLevel(phq, gad)

	return Classification{
		OverallSeverity: &severity,
		RiskLevel:       &risk,
		AnalysisPrompt:  req.AnalysisPrompt,
		Recommendations: req.Recommendations,
	}
}

func phq9Severity(score int) string {
	switch {
	case score < 0:
		return ""
	case score <= 4:
		return "Minimal"
	case score <= 9:
		return "Mild"
	case score <= 14:
		return "Moderate"
	case score <= 19:
		return "Moderately Severe"
	default:
		return "Severe"
	}
}

func gad7Severity(score int) string {
	switch {
	case score < 0:
		return ""
	case score <= 4:
		return "Minimal"
	case score <= 9:
		return "Mild"
	case score <= 14:
		return "Moderate"
	default:
		return "Severe"
	}
}

var severityRank = map[string]int{
	"":                  0,
	"Minimal":           1,
	"Mild":              2,
	"Moderate":          3,
	"Moderately Severe": 4,
	"Severe":            5,
}

func maxSeverity(a, b string) string {
	if severityRank[b] > severityRank[a] {
		return b
	}
	if a == "" {
		return "Minimal"
	}
	return a
}

func riskLevel(phq, gad int) string {
	switch {
	case phq >= 15 && gad >= 10:
		return "high"
	case phq >= 10 || gad >= 10:
		return "medium"
	default:
		return "low"
	}
}
