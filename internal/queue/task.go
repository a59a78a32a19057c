package queue

// UsageEvent is one completed review's audit payload, carried over the
// Redis stream from the API server to the worker that persists it.
type UsageEvent struct {
	UserID       int64
	Language     string
	Filename     string
	CodeSize     int
	Findings     int
	OverallScore int
	TokensUsed   int
	AnalysisTime int64 // milliseconds
	TraceID      *string
	Attempt      int
}
