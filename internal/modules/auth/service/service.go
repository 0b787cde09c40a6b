package service

import (
	"auto-vitrine-server/internal/modules/auth/repo"
	platformservice "auto-vitrine-server/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	userStore repo.UserStore
}

func New(appService *platformservice.AppService, userStore repo.UserStore) *Service {
	return &Service{
		AppService: appService,
		userStore:  userStore,
	}
}
