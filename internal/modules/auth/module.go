package auth

import (
	"auto-vitrine-server/internal/modules/auth/handler"
	"auto-vitrine-server/internal/modules/auth/repo"
	"auto-vitrine-server/internal/modules/auth/service"
	platformservice "auto-vitrine-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, userStore repo.UserStore) *Module {
	moduleService := service.New(appService, userStore)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
