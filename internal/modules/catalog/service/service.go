package service

import (
	"auto-vitrine-server/internal/modules/catalog/repo"
	platformservice "auto-vitrine-server/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	catalogStore repo.CatalogStore
}

func New(appService *platformservice.AppService, catalogStore repo.CatalogStore) *Service {
	return &Service{
		AppService:   appService,
		catalogStore: catalogStore,
	}
}
