package service

import (
	"auto-vitrine-server/internal/modules/engagement/repo"
	platformservice "auto-vitrine-server/internal/platform/service"
)

// historyLimit 浏览历史最多保留返回的条数
const historyLimit = 50

type Service struct {
	*platformservice.AppService
	engagementStore repo.EngagementStore
}

func New(appService *platformservice.AppService, engagementStore repo.EngagementStore) *Service {
	return &Service{
		AppService:      appService,
		engagementStore: engagementStore,
	}
}
