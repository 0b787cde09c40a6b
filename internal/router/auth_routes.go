package router

import (
	authhandler "auto-vitrine-server/internal/modules/auth/handler"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, authLimiter gin.HandlerFunc, h *authhandler.Handler) {
	api.POST("/login", authLimiter, h.Login)
	api.POST("/register", authLimiter, h.Register)

	api.GET("/register", h.GetRegisterState)
}
