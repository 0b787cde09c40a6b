package user

import (
	"auto-vitrine-server/internal/modules/user/handler"
	"auto-vitrine-server/internal/modules/user/repo"
	"auto-vitrine-server/internal/modules/user/service"
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
