package modules

import (
	"auto-vitrine-server/internal/modules/auth"
	authrepo "auto-vitrine-server/internal/modules/auth/repo"
	"auto-vitrine-server/internal/modules/catalog"
	catalogrepo "auto-vitrine-server/internal/modules/catalog/repo"
	"auto-vitrine-server/internal/modules/engagement"
	engagementrepo "auto-vitrine-server/internal/modules/engagement/repo"
	"auto-vitrine-server/internal/modules/listing"
	listingrepo "auto-vitrine-server/internal/modules/listing/repo"
	"auto-vitrine-server/internal/modules/settings"
	settingsrepo "auto-vitrine-server/internal/modules/settings/repo"
	"auto-vitrine-server/internal/modules/store"
	storerepo "auto-vitrine-server/internal/modules/store/repo"
	"auto-vitrine-server/internal/modules/user"
	userrepo "auto-vitrine-server/internal/modules/user/repo"
	platformservice "auto-vitrine-server/internal/platform/service"
)

type AppModules struct {
	Auth       *auth.Module
	User       *user.Module
	Catalog    *catalog.Module
	Store      *store.Module
	Listing    *listing.Module
	Engagement *engagement.Module
	Settings   *settings.Module
}

func New(
	appService *platformservice.AppService,
	authUserStore authrepo.UserStore,
	userStore userrepo.UserStore,
	catalogStore catalogrepo.CatalogStore,
	storeStore storerepo.StoreStore,
	listingStore listingrepo.ListingStore,
	engagementStore engagementrepo.EngagementStore,
	settingStore settingsrepo.SettingStore,
) *AppModules {
	engagementModule := engagement.New(appService, engagementStore)
	// 车辆详情页由互动模块记录登录用户的浏览历史
	listingModule := listing.New(appService, listingStore, storeStore, catalogStore, engagementModule.Service)

	return &AppModules{
		Auth:       auth.New(appService, authUserStore),
		User:       user.New(appService, userStore),
		Catalog:    catalog.New(appService, catalogStore),
		Store:      store.New(appService, storeStore),
		Listing:    listingModule,
		Engagement: engagementModule,
		Settings:   settings.New(appService, settingStore),
	}
}
