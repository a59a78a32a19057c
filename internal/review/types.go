// Package review implements the code-review core: prompt construction,
// free-text reply parsing, effort estimation, scoring, and the line diff
// behind incremental reviews. Everything here is pure; the LLM call and
// quota bookkeeping live in the service layer.
package review

import "lintora.co/server/internal/model"

// Request describes one full-code review.
type Request struct {
	Code          string
	Language      string
	Filename      string
	AnalysisTypes []model.AnalysisType
	Guidelines    []string
}

// Types returns the requested analysis types, defaulting to all six.
func (r Request) Types() []model.AnalysisType {
	if len(r.AnalysisTypes) == 0 {
		return model.AllAnalysisTypes
	}
	return r.AnalysisTypes
}

// FindingType is the type stamped on parsed findings: the requested type
// when the request names exactly one, quality otherwise (the combined call
// can't attribute findings to a single category).
func (r Request) FindingType() model.AnalysisType {
	if len(r.AnalysisTypes) == 1 {
		return r.AnalysisTypes[0]
	}
	return model.AnalysisQuality
}

// IncrementalRequest describes a review scoped to the changes between two
// versions of the same code.
type IncrementalRequest struct {
	OriginalCode string
	ModifiedCode string
	Language     string
	Filename     string
}
