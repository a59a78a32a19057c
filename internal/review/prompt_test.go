package review_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"lintora.co/server/internal/model"
	"lintora.co/server/internal/review"
)

var _ = Describe("BuildPrompts", func() {
	It("includes every analysis type by default", func() {
		sys, _ := review.BuildPrompts(review.Request{Code: "x", Language: "go"})

		Expect(sys).To(ContainSubstring("security"))
		Expect(sys).To(ContainSubstring("performance"))
		Expect(sys).To(ContainSubstring("documentation"))
	})

	It("embeds numbered code in the user prompt", func() {
		_, user := review.BuildPrompts(review.Request{
			Code:     "a\nb",
			Language: "go",
		})

		Expect(user).To(ContainSubstring("1| a"))
		Expect(user).To(ContainSubstring("2| b"))
		Expect(user).To(ContainSubstring("go"))
	})

	It("appends project guidelines when provided", func() {
		sys, _ := review.BuildPrompts(review.Request{
			Code:       "x",
			Language:   "go",
			Guidelines: []string{"no global state"},
		})

		Expect(sys).To(ContainSubstring("no global state"))
	})
})

var _ = Describe("BuildIncrementalPrompts", func() {
	It("embeds the diff and the modified code", func() {
		_, user := review.BuildIncrementalPrompts(review.IncrementalRequest{
			OriginalCode: "a",
			ModifiedCode: "b",
			Language:     "go",
			Filename:     "main.go",
		}, "- 1: a\n+ 1: b")

		Expect(user).To(ContainSubstring("- 1: a"))
		Expect(user).To(ContainSubstring("main.go"))
	})
})

var _ = Describe("Request", func() {
	Describe("Types", func() {
		It("defaults to all six analysis types", func() {
			Expect(review.Request{}.Types()).To(Equal(model.AllAnalysisTypes))
		})

		It("keeps an explicit selection", func() {
			req := review.Request{AnalysisTypes: []model.AnalysisType{model.AnalysisSecurity}}
			Expect(req.Types()).To(ConsistOf(model.AnalysisSecurity))
		})
	})

	Describe("FindingType", func() {
		It("uses the requested type when exactly one is named", func() {
			req := review.Request{AnalysisTypes: []model.AnalysisType{model.AnalysisTesting}}
			Expect(req.FindingType()).To(Equal(model.AnalysisTesting))
		})

		It("falls back to quality for combined reviews", func() {
			Expect(review.Request{}.FindingType()).To(Equal(model.AnalysisQuality))

			req := review.Request{AnalysisTypes: []model.AnalysisType{
				model.AnalysisSecurity, model.AnalysisTesting,
			}}
			Expect(req.FindingType()).To(Equal(model.AnalysisQuality))
		})
	})
})
