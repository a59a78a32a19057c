package model

// AnalysisType is the category of review a finding belongs to.
type AnalysisType string

const (
	AnalysisSecurity      AnalysisType = "security"
	AnalysisQuality       AnalysisType = "quality"
	AnalysisPerformance   AnalysisType = "performance"
	AnalysisArchitecture  AnalysisType = "architecture"
	AnalysisTesting       AnalysisType = "testing"
	AnalysisDocumentation AnalysisType = "documentation"
)

// AllAnalysisTypes lists every category, in the order reviews run them.
var AllAnalysisTypes = []AnalysisType{
	AnalysisSecurity,
	AnalysisQuality,
	AnalysisPerformance,
	AnalysisArchitecture,
	AnalysisTesting,
	AnalysisDocumentation,
}

func ValidAnalysisType(t AnalysisType) bool {
	switch t {
	case AnalysisSecurity, AnalysisQuality, AnalysisPerformance,
		AnalysisArchitecture, AnalysisTesting, AnalysisDocumentation:
		return true
	}
	return false
}

// Severity orders findings by decreasing urgency.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// EffortEstimate is a rough remediation cost for one finding.
type EffortEstimate struct {
	Time       string     `json:"time"`
	Difficulty Difficulty `json:"difficulty"`
}

// Finding is one structured issue extracted from the model's reply.
// Immutable once emitted by the parser; auto-fix generation produces a
// separate artifact, never a mutation.
type Finding struct {
	ID               int64          `json:"id,string"`
	Type             AnalysisType   `json:"type"`
	Severity         Severity       `json:"severity"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	LineStart        int            `json:"lineStart,omitempty"`
	LineEnd          int            `json:"lineEnd,omitempty"`
	Recommendation   string         `json:"recommendation"`
	AutoFixAvailable bool           `json:"autoFixAvailable"`
	EffortEstimate   EffortEstimate `json:"effortEstimate"`
}

// Summary aggregates finding counts and the overall score for one review.
type Summary struct {
	TotalFindings int `json:"totalFindings"`
	Critical      int `json:"critical"`
	High          int `json:"high"`
	Medium        int `json:"medium"`
	Low           int `json:"low"`
	Info          int `json:"info"`
	OverallScore  int `json:"overallScore"`
}

// Suggestions are recommendation lists split by finding type.
type Suggestions struct {
	Documentation []string `json:"documentation,omitempty"`
	Tests         []string `json:"tests,omitempty"`
	Refactoring   []string `json:"refactoring,omitempty"`
}

type Metrics struct {
	TokensUsed   int     `json:"tokensUsed"`
	AnalysisTime int64   `json:"analysisTime"` // milliseconds
	CostEstimate float64 `json:"costEstimate,omitempty"`
}

// AnalysisResult is the aggregate of one review. Created once per request,
// returned to the caller, never persisted verbatim.
type AnalysisResult struct {
	Summary     Summary     `json:"summary"`
	Findings    []Finding   `json:"findings"`
	Suggestions Suggestions `json:"suggestions"`
	Metrics     Metrics     `json:"metrics"`
	Timestamp   string      `json:"timestamp"`
}
