package settings

import (
	"auto-vitrine-server/internal/modules/settings/handler"
	"auto-vitrine-server/internal/modules/settings/repo"
	"auto-vitrine-server/internal/modules/settings/service"
	platformservice "auto-vitrine-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, settingStore repo.SettingStore) *Module {
	moduleService := service.New(appService, settingStore)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
