package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"lintora.co/server/internal/http/dto"
	"lintora.co/server/internal/http/middleware"
	"lintora.co/server/internal/model"
	"lintora.co/server/internal/service"
)

type AccountHandler struct {
	subscriptionService service.SubscriptionService
}

func NewAccountHandler(subscriptionService service.SubscriptionService) *AccountHandler {
	return &AccountHandler{subscriptionService: subscriptionService}
}

func (h *AccountHandler) Me(c *gin.Context) {
	user := middleware.GetUser(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *AccountHandler) Upgrade(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.UpgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plan must be pro or enterprise"})
		return
	}

	user := middleware.GetUser(ctx)
	sub, err := h.subscriptionService.Upgrade(ctx, user, model.Plan(req.Plan))
	if err != nil {
		if errors.Is(err, service.ErrInvalidPlan) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan"})
			return
		}
		slog.ErrorContext(ctx, "failed to upgrade subscription", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upgrade subscription"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSubscriptionResponse(*sub))
}

func (h *AccountHandler) Pricing(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PricingResponse{Plans: h.subscriptionService.Plans()})
}
