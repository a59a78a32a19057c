package model

import "time"

// ReviewRecord is the shrunk usage row persisted after a successful review.
// Findings themselves are never stored, only the aggregate numbers.
type ReviewRecord struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Language     string    `json:"language"`
	Filename     *string   `json:"filename,omitempty"`
	CodeSize     int       `json:"code_size"`
	Findings     int       `json:"findings"`
	OverallScore int       `json:"overall_score"`
	TokensUsed   int       `json:"tokens_used"`
	AnalysisTime int64     `json:"analysis_time"` // milliseconds
	CreatedAt    time.Time `json:"created_at"`
}
