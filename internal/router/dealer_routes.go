package router

import (
	"auto-vitrine-server/internal/consts"
	"auto-vitrine-server/internal/middleware"
	listinghandler "auto-vitrine-server/internal/modules/listing/handler"
	storehandler "auto-vitrine-server/internal/modules/store/handler"
	"auto-vitrine-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

func registerDealerRoutes(api *gin.RouterGroup, storeHandler *storehandler.Handler, listingHandler *listinghandler.Handler, appService *service.AppService) {
	dealerGroup := api.Group("/dealer")
	dealerGroup.Use(middleware.JWTAuth())
	dealerGroup.Use(middleware.UserStatusCheck())

	// 上传限流：读取配置
	uploadLimiter := middleware.RateLimitMiddleware(appService, consts.ConfigRateLimitUploadRPS, consts.ConfigRateLimitUploadBurst)
	uploadBodyLimit := middleware.UploadBodyLimitMiddleware(appService)

	dealerGroup.GET("/stores", storeHandler.GetMyStores)
	dealerGroup.POST("/stores", storeHandler.CreateStore)
	dealerGroup.PATCH("/stores/:id", storeHandler.UpdateMyStore)
	dealerGroup.POST("/stores/:id/logo", uploadBodyLimit, uploadLimiter, storeHandler.UploadStoreLogo)

	dealerGroup.POST("/stores/:id/listings", uploadBodyLimit, uploadLimiter, listingHandler.CreateListing)
	dealerGroup.PATCH("/listings/:id", uploadBodyLimit, uploadLimiter, listingHandler.UpdateListing)
	dealerGroup.DELETE("/listings/:id", listingHandler.DeleteListing)
	dealerGroup.POST("/listings/:id/photos", uploadBodyLimit, uploadLimiter, listingHandler.AddPhotos)
	dealerGroup.DELETE("/photos/:id", listingHandler.DeletePhoto)
}
