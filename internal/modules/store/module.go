package store

import (
	"auto-vitrine-server/internal/modules/store/handler"
	"auto-vitrine-server/internal/modules/store/repo"
	"auto-vitrine-server/internal/modules/store/service"
	platformservice "auto-vitrine-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, storeStore repo.StoreStore) *Module {
	moduleService := service.New(appService, storeStore)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
