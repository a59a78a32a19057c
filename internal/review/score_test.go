package review_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"lintora.co/server/internal/model"
	"lintora.co/server/internal/review"
)

func withSeverities(severities ...model.Severity) []model.Finding {
	findings := make([]model.Finding, len(severities))
	for i, s := range severities {
		findings[i] = model.Finding{Severity: s, Type: model.AnalysisQuality}
	}
	return findings
}

var _ = Describe("Score", func() {
	It("returns 100 for no findings", func() {
		Expect(review.Score(nil)).To(Equal(100))
	})

	It("deducts the full-review weight per severity", func() {
		Expect(review.Score(withSeverities(model.SeverityCritical))).To(Equal(80))
		Expect(review.Score(withSeverities(model.SeverityHigh))).To(Equal(90))
		Expect(review.Score(withSeverities(model.SeverityMedium))).To(Equal(95))
		Expect(review.Score(withSeverities(model.SeverityLow))).To(Equal(98))
		Expect(review.Score(withSeverities(model.SeverityInfo))).To(Equal(100))
	})

	It("sums deductions across findings", func() {
		findings := withSeverities(model.SeverityCritical, model.SeverityHigh, model.SeverityMedium)
		Expect(review.Score(findings)).To(Equal(65))
	})

	It("never goes below zero", func() {
		findings := withSeverities(
			model.SeverityCritical, model.SeverityCritical, model.SeverityCritical,
			model.SeverityCritical, model.SeverityCritical, model.SeverityCritical,
		)
		Expect(review.Score(findings)).To(Equal(0))
	})

	It("is order-independent", func() {
		a := withSeverities(model.SeverityLow, model.SeverityCritical, model.SeverityHigh)
		b := withSeverities(model.SeverityHigh, model.SeverityLow, model.SeverityCritical)
		Expect(review.Score(a)).To(Equal(review.Score(b)))
	})
})

var _ = Describe("ScoreIncremental", func() {
	It("uses the harsher incremental weights", func() {
		Expect(review.ScoreIncremental(withSeverities(model.SeverityCritical))).To(Equal(75))
		Expect(review.ScoreIncremental(withSeverities(model.SeverityHigh))).To(Equal(85))
		Expect(review.ScoreIncremental(withSeverities(model.SeverityMedium))).To(Equal(92))
		Expect(review.ScoreIncremental(withSeverities(model.SeverityLow))).To(Equal(97))
		Expect(review.ScoreIncremental(withSeverities(model.SeverityInfo))).To(Equal(100))
	})

	It("clamps at zero like the full score", func() {
		findings := withSeverities(
			model.SeverityCritical, model.SeverityCritical,
			model.SeverityCritical, model.SeverityCritical, model.SeverityCritical,
		)
		Expect(review.ScoreIncremental(findings)).To(Equal(0))
	})
})

var _ = Describe("Summarize", func() {
	It("counts findings per severity", func() {
		findings := withSeverities(
			model.SeverityCritical, model.SeverityHigh, model.SeverityHigh,
			model.SeverityMedium, model.SeverityLow, model.SeverityInfo,
		)

		summary := review.Summarize(findings, 42)

		Expect(summary.TotalFindings).To(Equal(6))
		Expect(summary.Critical).To(Equal(1))
		Expect(summary.High).To(Equal(2))
		Expect(summary.Medium).To(Equal(1))
		Expect(summary.Low).To(Equal(1))
		Expect(summary.Info).To(Equal(1))
		Expect(summary.OverallScore).To(Equal(42))
	})

	It("handles the empty set", func() {
		summary := review.Summarize(nil, 100)
		Expect(summary.TotalFindings).To(BeZero())
		Expect(summary.OverallScore).To(Equal(100))
	})
})

var _ = Describe("BuildSuggestions", func() {
	It("splits recommendations by finding type", func() {
		findings := []model.Finding{
			{Type: model.AnalysisDocumentation, Recommendation: "write a doc comment"},
			{Type: model.AnalysisTesting, Recommendation: "add a unit test"},
			{Type: model.AnalysisQuality, Recommendation: "extract a function"},
			{Type: model.AnalysisArchitecture, Recommendation: "split the package"},
			{Type: model.AnalysisSecurity, Recommendation: "sanitize input"},
		}

		s := review.BuildSuggestions(findings)

		Expect(s.Documentation).To(ConsistOf("write a doc comment"))
		Expect(s.Tests).To(ConsistOf("add a unit test"))
		Expect(s.Refactoring).To(ConsistOf("extract a function", "split the package"))
	})
})
