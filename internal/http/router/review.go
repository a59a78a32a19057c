package router

import (
	"github.com/gin-gonic/gin"

	"lintora.co/server/internal/http/handler"
	"lintora.co/server/internal/http/middleware"
	"lintora.co/server/internal/service"
)

func ReviewRouter(rg *gin.RouterGroup, h *handler.ReviewHandler, subscriptions service.SubscriptionService) {
	quota := middleware.RequireQuota(subscriptions)

	rg.POST("/code", quota, h.ReviewCode)
	rg.POST("/file", quota, h.ReviewFile)
	rg.POST("/incremental", quota, h.ReviewIncremental)

	// Fix generation works on findings the account already paid for.
	rg.POST("/fix", h.Fix)
	rg.POST("/complete-fix", h.CompleteFix)
}
