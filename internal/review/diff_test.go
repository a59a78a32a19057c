package review_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"lintora.co/server/internal/review"
)

var _ = Describe("Diff", func() {
	It("returns empty for identical inputs", func() {
		code := "a\nb\nc"
		Expect(review.Diff(code, code)).To(BeEmpty())
	})

	It("emits a remove/add pair for a changed line", func() {
		out := review.Diff("a\nb\nc", "a\nx\nc")
		Expect(out).To(Equal("- 2: b\n+ 2: x"))
	})

	It("emits additions for appended lines", func() {
		out := review.Diff("a", "a\nb")
		Expect(out).To(Equal("+ 2: b"))
	})

	It("emits removals for trailing deletions", func() {
		out := review.Diff("a\nb", "a")
		Expect(out).To(Equal("- 2: b"))
	})

	It("compares strictly by line index", func() {
		// Inserting a line at the top shifts everything; no alignment is attempted.
		out := review.Diff("b\nc", "a\nb\nc")
		Expect(out).To(Equal("- 1: b\n+ 1: a\n- 2: c\n+ 2: b\n+ 3: c"))
	})
})

var _ = Describe("NumberLines", func() {
	It("prefixes each line with its 1-based number", func() {
		Expect(review.NumberLines("a\nb")).To(Equal("1| a\n2| b"))
	})
})

var _ = Describe("StripCodeFences", func() {
	It("removes a fenced block with a language tag", func() {
		Expect(review.StripCodeFences("```go\nx := 1\n```")).To(Equal("x := 1"))
	})

	It("leaves unfenced text alone", func() {
		Expect(review.StripCodeFences("x := 1")).To(Equal("x := 1"))
	})
})
