package router

import (
	"auto-vitrine-server/internal/middleware"
	"auto-vitrine-server/internal/modules"

	"github.com/gin-gonic/gin"
)

func registerPublicRoutes(api *gin.RouterGroup, appModules *modules.AppModules) {
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong from gin"})
	})
	api.GET("/webinfo", appModules.Settings.Handler.GetWebInfo)
	api.GET("/photo_prefix", appModules.Settings.Handler.GetPhotoPrefix)
	api.GET("/default_listing_quota", appModules.Settings.Handler.GetDefaultListingQuota)

	api.GET("/home", appModules.Listing.Handler.GetHome)
	api.GET("/listings", appModules.Listing.Handler.GetListings)
	// 详情页可匿名访问；登录用户额外记录浏览历史
	api.GET("/listings/:id", middleware.OptionalJWTAuth(), appModules.Listing.Handler.GetListingDetail)

	api.GET("/brands", appModules.Catalog.Handler.GetBrands)
	api.GET("/models", appModules.Catalog.Handler.GetModels)
	api.GET("/trims", appModules.Catalog.Handler.GetTrims)
	api.GET("/categories", appModules.Catalog.Handler.GetCategories)
	api.GET("/cities", appModules.Catalog.Handler.GetCities)

	api.GET("/stores", appModules.Store.Handler.GetStores)
	api.GET("/stores/:id", appModules.Store.Handler.GetStoreDetail)
}
