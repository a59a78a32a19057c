package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lintora.co/server/common/llm"
)

type HealthHandler struct {
	llmClient llm.Client
}

func NewHealthHandler(llmClient llm.Client) *HealthHandler {
	return &HealthHandler{llmClient: llmClient}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// LLMHealth probes the model provider. Separate from the liveness check so
// load balancers never depend on a third party.
func (h *HealthHandler) LLMHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	start := time.Now()
	if err := h.llmClient.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"model":  h.llmClient.Model(),
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"model":      h.llmClient.Model(),
		"latency_ms": time.Since(start).Milliseconds(),
	})
}
