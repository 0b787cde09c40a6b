package router

import (
	"auto-vitrine-server/internal/consts"
	"auto-vitrine-server/internal/middleware"
	"auto-vitrine-server/internal/modules"
	"auto-vitrine-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

type Router struct {
	modules *modules.AppModules
	service *service.AppService
}

func NewRouter(appModules *modules.AppModules, appService *service.AppService) *Router {
	return &Router{
		modules: appModules,
		service: appService,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	// 注册全局安全标头中间件
	r.Use(middleware.SecurityHeaders())

	api := r.Group("/api")
	// 应用请求体大小限制中间件
	api.Use(middleware.BodyLimitMiddleware(rt.service))

	// 认证限流：读取配置（在多个域路由中复用同一个实例，保持行为一致）
	authLimiter := middleware.RateLimitMiddleware(rt.service, consts.ConfigRateLimitAuthRPS, consts.ConfigRateLimitAuthBurst)

	registerPublicRoutes(api, rt.modules)
	registerAuthRoutes(api, authLimiter, rt.modules.Auth.Handler)
	registerUserRoutes(api, rt.modules.User.Handler, rt.modules.Engagement.Handler)
	registerDealerRoutes(api, rt.modules.Store.Handler, rt.modules.Listing.Handler, rt.service)
	registerAdminRoutes(api, rt.modules.Catalog.Handler, rt.modules.Store.Handler, rt.modules.Settings.Handler)
}
