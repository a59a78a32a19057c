package review

import "lintora.co/server/internal/model"

// effortMatrix is total over severity × analysis type; every cell holds a
// literal estimate, so lookups never need a fallback.
var effortMatrix = map[model.Severity]map[model.AnalysisType]model.EffortEstimate{
	model.SeverityCritical: {
		model.AnalysisSecurity:      {Time: "2-4 hours", Difficulty: model.DifficultyHard},
		model.AnalysisQuality:       {Time: "1-2 hours", Difficulty: model.DifficultyMedium},
		model.AnalysisPerformance:   {Time: "2-3 hours", Difficulty: model.DifficultyHard},
		model.AnalysisArchitecture:  {Time: "4-8 hours", Difficulty: model.DifficultyHard},
		model.AnalysisTesting:       {Time: "1-2 hours", Difficulty: model.DifficultyMedium},
		model.AnalysisDocumentation: {Time: "30 minutes", Difficulty: model.DifficultyEasy},
	},
	model.SeverityHigh: {
		model.AnalysisSecurity:      {Time: "1-2 hours", Difficulty: model.DifficultyMedium},
		model.AnalysisQuality:       {Time: "45-90 minutes", Difficulty: model.DifficultyMedium},
		model.AnalysisPerformance:   {Time: "1-2 hours", Difficulty: model.DifficultyMedium},
		model.AnalysisArchitecture:  {Time: "2-4 hours", Difficulty: model.DifficultyHard},
		model.AnalysisTesting:       {Time: "45 minutes", Difficulty: model.DifficultyMedium},
		model.AnalysisDocumentation: {Time: "20 minutes", Difficulty: model.DifficultyEasy},
	},
	model.SeverityMedium: {
		model.AnalysisSecurity:      {Time: "30-60 minutes", Difficulty: model.DifficultyMedium},
		model.AnalysisQuality:       {Time: "30 minutes", Difficulty: model.DifficultyEasy},
		model.AnalysisPerformance:   {Time: "45 minutes", Difficulty: model.DifficultyMedium},
		model.AnalysisArchitecture:  {Time: "1-2 hours", Difficulty: model.DifficultyMedium},
		model.AnalysisTesting:       {Time: "30 minutes", Difficulty: model.DifficultyEasy},
		model.AnalysisDocumentation: {Time: "15 minutes", Difficulty: model.DifficultyEasy},
	},
	model.SeverityLow: {
		model.AnalysisSecurity:      {Time: "15-30 minutes", Difficulty: model.DifficultyEasy},
		model.AnalysisQuality:       {Time: "15 minutes", Difficulty: model.DifficultyEasy},
		model.AnalysisPerformance:   {Time: "20 minutes", Difficulty: model.DifficultyEasy},
		model.AnalysisArchitecture:  {Time: "30 minutes", Difficulty: model.DifficultyEasy},
		model.AnalysisTesting:       {Time: "20 minutes", Difficulty: model.DifficultyEasy},
		model.AnalysisDocumentation: {Time: "10 minutes", Difficulty: model.DifficultyEasy},
	},
	model.SeverityInfo: {
		model.AnalysisSecurity:      {Time: "5 minutes", Difficulty: model.DifficultyEasy},
		model.AnalysisQuality:       {Time: "5 minutes", Difficulty: model.DifficultyEasy},
		model.AnalysisPerformance:   {Time: "5 minutes", Difficulty: model.DifficultyEasy},
		model.AnalysisArchitecture:  {Time: "10 minutes", Difficulty: model.DifficultyEasy},
		model.AnalysisTesting:       {Time: "10 minutes", Difficulty: model.DifficultyEasy},
		model.AnalysisDocumentation: {Time: "5 minutes", Difficulty: model.DifficultyEasy},
	},
}

// EstimateEffort returns the remediation estimate for a severity/type pair.
func EstimateEffort(severity model.Severity, t model.AnalysisType) model.EffortEstimate {
	return effortMatrix[severity][t]
}
