package service

import (
	"auto-vitrine-server/internal/modules/store/repo"
	platformservice "auto-vitrine-server/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	storeStore repo.StoreStore
}

func New(appService *platformservice.AppService, storeStore repo.StoreStore) *Service {
	return &Service{
		AppService: appService,
		storeStore: storeStore,
	}
}
