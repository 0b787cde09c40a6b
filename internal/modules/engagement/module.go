package engagement

import (
	"auto-vitrine-server/internal/modules/engagement/handler"
	"auto-vitrine-server/internal/modules/engagement/repo"
	"auto-vitrine-server/internal/modules/engagement/service"
	platformservice "auto-vitrine-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, engagementStore repo.EngagementStore) *Module {
	moduleService := service.New(appService, engagementStore)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
