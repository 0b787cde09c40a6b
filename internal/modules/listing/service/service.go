package service

import (
	"auto-vitrine-server/internal/modules/listing/repo"
	platformservice "auto-vitrine-server/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	listingStore repo.ListingStore
	storeStore   repo.StoreStore
	catalogStore repo.CatalogStore
}

func New(
	appService *platformservice.AppService,
	listingStore repo.ListingStore,
	storeStore repo.StoreStore,
	catalogStore repo.CatalogStore,
) *Service {
	return &Service{
		AppService:   appService,
		listingStore: listingStore,
		storeStore:   storeStore,
		catalogStore: catalogStore,
	}
}
