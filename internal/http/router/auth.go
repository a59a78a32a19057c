package router

import (
	"github.com/gin-gonic/gin"

	"lintora.co/server/internal/http/handler"
	"lintora.co/server/internal/http/middleware"
	"lintora.co/server/internal/service"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler, authService service.AuthService) {
	rg.GET("/login", h.Login)
	rg.GET("/callback", h.Callback)
	rg.POST("/logout", middleware.RequireAuth(authService), h.Logout)
}
