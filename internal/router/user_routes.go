package router

import (
	"auto-vitrine-server/internal/middleware"
	engagementhandler "auto-vitrine-server/internal/modules/engagement/handler"
	userhandler "auto-vitrine-server/internal/modules/user/handler"

	"github.com/gin-gonic/gin"
)

func registerUserRoutes(api *gin.RouterGroup, userHandler *userhandler.Handler, engagementHandler *engagementhandler.Handler) {
	userGroup := api.Group("/user")
	userGroup.Use(middleware.JWTAuth())
	userGroup.Use(middleware.UserStatusCheck())

	userGroup.GET("/profile", userHandler.GetProfile)
	userGroup.PATCH("/profile", userHandler.UpdateProfile)
	userGroup.PATCH("/password", userHandler.ChangePassword)

	userGroup.POST("/favorites/:listingID", engagementHandler.ToggleFavorite)
	userGroup.GET("/favorites", engagementHandler.GetFavorites)
	userGroup.GET("/history", engagementHandler.GetHistory)
	userGroup.DELETE("/history", engagementHandler.ClearHistory)

	userGroup.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong with auth"})
	})
}
