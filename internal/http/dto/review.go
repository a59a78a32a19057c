package dto

import (
	"lintora.co/server/internal/model"
	"lintora.co/server/internal/review"
)

type ReviewCodeRequest struct {
	Code          string   `json:"code" binding:"required"`
	Language      string   `json:"language,omitempty" binding:"omitempty,max=64"`
	Filename      string   `json:"filename,omitempty" binding:"omitempty,max=255"`
	AnalysisTypes []string `json:"analysisTypes,omitempty"`
	Guidelines    []string `json:"guidelines,omitempty"`
}

func (r ReviewCodeRequest) ToRequest() review.Request {
	types := make([]model.AnalysisType, 0, len(r.AnalysisTypes))
	for _, t := range r.AnalysisTypes {
		types = append(types, model.AnalysisType(t))
	}
	return review.Request{
		Code:          r.Code,
		Language:      r.Language,
		Filename:      r.Filename,
		AnalysisTypes: types,
		Guidelines:    r.Guidelines,
	}
}

type IncrementalReviewRequest struct {
	OriginalCode string `json:"originalCode" binding:"required"`
	ModifiedCode string `json:"modifiedCode" binding:"required"`
	Language     string `json:"language,omitempty" binding:"omitempty,max=64"`
	Filename     string `json:"filename,omitempty" binding:"omitempty,max=255"`
}

func (r IncrementalReviewRequest) ToRequest() review.IncrementalRequest {
	return review.IncrementalRequest{
		OriginalCode: r.OriginalCode,
		ModifiedCode: r.ModifiedCode,
		Language:     r.Language,
		Filename:     r.Filename,
	}
}

type FixRequest struct {
	Code     string        `json:"code" binding:"required"`
	Language string        `json:"language,omitempty" binding:"omitempty,max=64"`
	Finding  model.Finding `json:"finding" binding:"required"`
}

type CompleteFixRequest struct {
	Code     string          `json:"code" binding:"required"`
	Language string          `json:"language" binding:"required,max=64"`
	Findings []model.Finding `json:"findings" binding:"required,min=1"`
}

// ReviewResponse pairs the analysis with the caller's ledger after the
// review was charged, so clients can show remaining quota without a
// second request.
type ReviewResponse struct {
	*model.AnalysisResult
	Subscription SubscriptionResponse `json:"subscription"`
}

type FixResponse struct {
	FixedCode string `json:"fixedCode"`
}

type ReviewHistoryResponse struct {
	Reviews []model.ReviewRecord `json:"reviews"`
}
