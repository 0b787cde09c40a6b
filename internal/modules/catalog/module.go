package catalog

import (
	"auto-vitrine-server/internal/modules/catalog/handler"
	"auto-vitrine-server/internal/modules/catalog/repo"
	"auto-vitrine-server/internal/modules/catalog/service"
	platformservice "auto-vitrine-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, catalogStore repo.CatalogStore) *Module {
	moduleService := service.New(appService, catalogStore)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
