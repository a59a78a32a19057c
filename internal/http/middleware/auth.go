package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lintora.co/server/internal/model"
	"lintora.co/server/internal/service"
)

type contextKey string

const (
	sessionCookieName              = "lintora_session"
	sessionIDHeader                = "X-Session-ID"
	userContextKey      contextKey = "user"
	sessionIDContextKey contextKey = "session_id"
)

// RequireAuth resolves the session cookie (or X-Session-ID header for API
// clients) into a user and attaches it to the request context.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := getSessionID(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		user, err := authService.ValidateSession(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrUserNotFound) {
				clearSessionCookie(c)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to validate session"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), userContextKey, user)
		ctx = context.WithValue(ctx, sessionIDContextKey, sessionID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireQuota rejects review requests from accounts that have exhausted
// their plan. Must run after RequireAuth.
func RequireQuota(subscriptions service.SubscriptionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetUser(c.Request.Context())
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		if err := subscriptions.CheckQuota(user); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":       "review quota exceeded",
				"plan":        user.Subscription.Plan,
				"reviewsUsed": user.Subscription.ReviewsUsed,
				"reviewsLeft": user.Subscription.ReviewsLeft,
			})
			return
		}

		c.Next()
	}
}

func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

func GetSessionID(ctx context.Context) int64 {
	sessionID, _ := ctx.Value(sessionIDContextKey).(int64)
	return sessionID
}

func getSessionID(c *gin.Context) (int64, error) {
	if cookie, err := c.Cookie(sessionCookieName); err == nil {
		return strconv.ParseInt(cookie, 10, 64)
	}
	header := c.GetHeader(sessionIDHeader)
	if header == "" {
		return 0, http.ErrNoCookie
	}
	return strconv.ParseInt(header, 10, 64)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(
		sessionCookieName,
		"",
		-1,
		"/",
		"",
		false,
		true,
	)
}
