package queue_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"

	"lintora.co/server/internal/queue"
)

func usageMessage(values map[string]any) redis.XMessage {
	return redis.XMessage{ID: "1700000000000-0", Values: values}
}

var _ = Describe("ParseMessage", func() {
	It("parses a complete usage event", func() {
		msg, err := queue.ParseMessage(usageMessage(map[string]any{
			"user_id":       "101",
			"language":      "go",
			"filename":      "main.go",
			"code_size":     "512",
			"findings":      "3",
			"overall_score": "65",
			"tokens_used":   "150",
			"analysis_time": "3200",
			"trace_id":      "abc123",
			"attempt":       "2",
		}))

		Expect(err).NotTo(HaveOccurred())
		Expect(msg.ID).To(Equal("1700000000000-0"))
		Expect(msg.Event.UserID).To(Equal(int64(101)))
		Expect(msg.Event.Language).To(Equal("go"))
		Expect(msg.Event.Filename).To(Equal("main.go"))
		Expect(msg.Event.CodeSize).To(Equal(512))
		Expect(msg.Event.Findings).To(Equal(3))
		Expect(msg.Event.OverallScore).To(Equal(65))
		Expect(msg.Event.TokensUsed).To(Equal(150))
		Expect(msg.Event.AnalysisTime).To(Equal(int64(3200)))
		Expect(msg.Event.TraceID).NotTo(BeNil())
		Expect(*msg.Event.TraceID).To(Equal("abc123"))
		Expect(msg.Attempt).To(Equal(2))
	})

	It("defaults attempt to 1 and tolerates missing optional fields", func() {
		msg, err := queue.ParseMessage(usageMessage(map[string]any{
			"user_id":       "101",
			"language":      "python",
			"code_size":     "10",
			"findings":      "0",
			"overall_score": "100",
			"tokens_used":   "40",
		}))

		Expect(err).NotTo(HaveOccurred())
		Expect(msg.Attempt).To(Equal(1))
		Expect(msg.Event.Filename).To(BeEmpty())
		Expect(msg.Event.TraceID).To(BeNil())
		Expect(msg.Event.AnalysisTime).To(BeZero())
	})

	It("rejects a message without a user", func() {
		_, err := queue.ParseMessage(usageMessage(map[string]any{
			"language":      "go",
			"code_size":     "10",
			"findings":      "0",
			"overall_score": "100",
			"tokens_used":   "40",
		}))

		Expect(err).To(MatchError(ContainSubstring("user_id")))
	})

	It("rejects non-numeric counters", func() {
		_, err := queue.ParseMessage(usageMessage(map[string]any{
			"user_id":       "101",
			"language":      "go",
			"code_size":     "lots",
			"findings":      "0",
			"overall_score": "100",
			"tokens_used":   "40",
		}))

		Expect(err).To(MatchError(ContainSubstring("code_size")))
	})
})
