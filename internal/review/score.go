package review

import "lintora.co/server/internal/model"

var fullReviewWeights = map[model.Severity]int{
	model.SeverityCritical: 20,
	model.SeverityHigh:     10,
	model.SeverityMedium:   5,
	model.SeverityLow:      2,
	model.SeverityInfo:     0,
}

// Incremental reviews see fewer issues, so each one costs more.
var incrementalWeights = map[model.Severity]int{
	model.SeverityCritical: 25,
	model.SeverityHigh:     15,
	model.SeverityMedium:   8,
	model.SeverityLow:      3,
	model.SeverityInfo:     0,
}

// maxPenalty caps the total deduction before subtracting from 100.
const maxPenalty = 100

// Score computes the 0-100 quality score for a full review. Deterministic
// and order-independent over the finding set.
func Score(findings []model.Finding) int {
	return score(findings, fullReviewWeights)
}

// ScoreIncremental computes the score for a diff-scoped review with the
// harsher per-issue penalties.
func ScoreIncremental(findings []model.Finding) int {
	return score(findings, incrementalWeights)
}

func score(findings []model.Finding, weights map[model.Severity]int) int {
	penalty := 0
	for _, f := range findings {
		penalty += weights[f.Severity]
	}
	if penalty > maxPenalty {
		penalty = maxPenalty
	}
	return 100 - penalty
}

// Summarize counts findings per severity and attaches the given score.
func Summarize(findings []model.Finding, overallScore int) model.Summary {
	s := model.Summary{
		TotalFindings: len(findings),
		OverallScore:  overallScore,
	}
	for _, f := range findings {
		switch f.Severity {
		case model.SeverityCritical:
			s.Critical++
		case model.SeverityHigh:
			s.High++
		case model.SeverityMedium:
			s.Medium++
		case model.SeverityLow:
			s.Low++
		case model.SeverityInfo:
			s.Info++
		}
	}
	return s
}

// BuildSuggestions splits finding recommendations into the three derived
// lists the response carries.
func BuildSuggestions(findings []model.Finding) model.Suggestions {
	var s model.Suggestions
	for _, f := range findings {
		switch f.Type {
		case model.AnalysisDocumentation:
			s.Documentation = append(s.Documentation, f.Recommendation)
		case model.AnalysisTesting:
			s.Tests = append(s.Tests, f.Recommendation)
		case model.AnalysisQuality, model.AnalysisArchitecture:
			s.Refactoring = append(s.Refactoring, f.Recommendation)
		}
	}
	return s
}
