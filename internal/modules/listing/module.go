package listing

import (
	"auto-vitrine-server/internal/modules/listing/handler"
	"auto-vitrine-server/internal/modules/listing/repo"
	"auto-vitrine-server/internal/modules/listing/service"
	platformservice "auto-vitrine-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(
	appService *platformservice.AppService,
	listingStore repo.ListingStore,
	storeStore repo.StoreStore,
	catalogStore repo.CatalogStore,
	viewRecorder handler.ViewRecorder,
) *Module {
	moduleService := service.New(appService, listingStore, storeStore, catalogStore)
	moduleHandler := handler.New(moduleService, viewRecorder)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
