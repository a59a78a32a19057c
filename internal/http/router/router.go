package router

import (
	"github.com/gin-gonic/gin"

	"lintora.co/server/common/llm"
	"lintora.co/server/internal/http/handler"
	"lintora.co/server/internal/http/middleware"
	"lintora.co/server/internal/service"
)

type RouterConfig struct {
	DashboardURL string
	IsProduction bool
	MaxFileSize  int64
}

func SetupRoutes(router *gin.Engine, services *service.Services, llmClient llm.Client, cfg RouterConfig) {
	healthHandler := handler.NewHealthHandler(llmClient)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/llm", healthHandler.LLMHealth)

	authHandler := handler.NewAuthHandler(services.Auth(), cfg.DashboardURL, cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler, services.Auth())

	accountHandler := handler.NewAccountHandler(services.Subscriptions())
	// Pricing is public so the marketing page can render plans.
	router.GET("/api/v1/pricing", accountHandler.Pricing)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RequireAuth(services.Auth()))
	{
		v1.GET("/me", accountHandler.Me)
		v1.POST("/subscription/upgrade", accountHandler.Upgrade)

		reviewHandler := handler.NewReviewHandler(services.Reviews(), services.History(), cfg.MaxFileSize)
		v1.GET("/reviews", reviewHandler.History)
		ReviewRouter(v1.Group("/review"), reviewHandler, services.Subscriptions())
	}
}
