package router

import (
	"auto-vitrine-server/internal/middleware"
	cataloghandler "auto-vitrine-server/internal/modules/catalog/handler"
	settingshandler "auto-vitrine-server/internal/modules/settings/handler"
	storehandler "auto-vitrine-server/internal/modules/store/handler"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(api *gin.RouterGroup, catalogHandler *cataloghandler.Handler, storeHandler *storehandler.Handler, settingsHandler *settingshandler.Handler) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.JWTAuth())
	adminGroup.Use(middleware.UserStatusCheck())
	adminGroup.Use(middleware.AdminCheck())

	adminGroup.GET("/stats", storeHandler.GetStats)

	adminGroup.GET("/settings", settingsHandler.GetSettings)
	adminGroup.PATCH("/settings", settingsHandler.UpdateSettings)

	adminGroup.POST("/brands", catalogHandler.CreateBrand)
	adminGroup.PATCH("/brands/:id", catalogHandler.UpdateBrand)
	adminGroup.DELETE("/brands/:id", catalogHandler.DeleteBrand)

	adminGroup.POST("/models", catalogHandler.CreateModel)
	adminGroup.PATCH("/models/:id", catalogHandler.UpdateModel)
	adminGroup.DELETE("/models/:id", catalogHandler.DeleteModel)

	adminGroup.POST("/trims", catalogHandler.CreateTrim)
	adminGroup.PATCH("/trims/:id", catalogHandler.UpdateTrim)
	adminGroup.DELETE("/trims/:id", catalogHandler.DeleteTrim)

	adminGroup.POST("/categories", catalogHandler.CreateCategory)
	adminGroup.PATCH("/categories/:id", catalogHandler.UpdateCategory)
	adminGroup.DELETE("/categories/:id", catalogHandler.DeleteCategory)

	adminGroup.POST("/cities", catalogHandler.CreateCity)
	adminGroup.PATCH("/cities/:id", catalogHandler.UpdateCity)
	adminGroup.DELETE("/cities/:id", catalogHandler.DeleteCity)

	adminGroup.PATCH("/stores/:id/quota", storeHandler.UpdateStoreQuota)
	adminGroup.DELETE("/stores/:id", storeHandler.DeleteStore)
}
