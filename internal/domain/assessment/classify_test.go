package assessment

import (
	"encoding/json"
	"testing"
)

func TestCallerProvided_PersistsVerbatim(t *testing.T) {
	req := CompleteRequest{
		OverallSeverity: strPtr("Severe"),
		RiskLevel:       strPtr("high"),
		AnalysisPrompt:  strPtr("patient reports low mood"),
		Recommendations: json.RawMessage(`{"next":"therapy"}`),
	}
	cl := CallerProvided{}.Classify(&ComprehensiveAssessment{}, req)
	if *cl.OverallSeverity != "Severe" || *cl.RiskLevel != "high" {
		t.Error("expected caller labels to pass through unchanged")
	}
	if *cl.AnalysisPrompt != "patient reports low mood" {
		t.Error("expected analysis prompt to pass through")
	}
}

func TestCallerProvided_NilFieldsStayNil(t *testing.T) {
	cl := CallerProvided{}.Classify(&ComprehensiveAssessment{}, CompleteRequest{})
	if cl.OverallSeverity != nil || cl.RiskLevel != nil {
		t.Error("expected absent fields to stay nil")
	}
}

func TestRuleBased_Cutoffs(t *testing.T) {
	tests := []struct {
		name         string
		phq, gad     int
		wantSeverity string
		wantRisk     string
	}{
		{"minimal both", 2, 3, "Minimal", "low"},
		{"mild phq", 7, 2, "Mild", "low"},
		{"moderate gad", 3, 12, "Moderate", "medium"},
		{"moderately severe phq alone", 16, 4, "Moderately Severe", "medium"},
		{"high risk combination", 16, 11, "Moderately Severe", "high"},
		{"severe both", 24, 19, "Severe", "high"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &ComprehensiveAssessment{PHQ9Score: intPtr(tt.phq), GAD7Score: intPtr(tt.gad)}
			cl := RuleBased{}.Classify(a, CompleteRequest{})
			if *cl.OverallSeverity != tt.wantSeverity {
				t.Errorf("severity = %s, want %s", *cl.OverallSeverity, tt.wantSeverity)
			}
			if *cl.RiskLevel != tt.wantRisk {
				t.Errorf("risk = %s, want %s", *cl.RiskLevel, tt.wantRisk)
			}
		})
	}
}

func TestRuleBased_MissingScores(t *testing.T) {
	cl := RuleBased{}.Classify(&ComprehensiveAssessment{}, CompleteRequest{})
	if *cl.OverallSeverity != "Minimal" {
		t.Errorf("expected Minimal for absent scores, got %s", *cl.OverallSeverity)
	}
	if *cl.RiskLevel != "low" {
		t.Errorf("expected low risk for absent scores, got %s", *cl.RiskLevel)
	}
}

func TestRuleBased_KeepsCallerPromptAndRecommendations(t *testing.T) {
	a := &ComprehensiveAssessment{PHQ9Score: intPtr(5)}
	req := CompleteRequest{
		AnalysisPrompt:  strPtr("context"),
		Recommendations: json.RawMessage(`["walk"]`),
	}
	cl := RuleBased{}.Classify(a, req)
	if cl.AnalysisPrompt == nil || *cl.AnalysisPrompt != "context" {
		t.Error("expected caller prompt preserved")
	}
	if string(cl.Recommendations) != `["walk"]` {
		t.Error("expected caller recommendations preserved")
	}
}
