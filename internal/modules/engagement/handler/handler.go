package handler

import engagementservice "auto-vitrine-server/internal/modules/engagement/service"

type Handler struct {
	engagementService *engagementservice.Service
}

func New(engagementService *engagementservice.Service) *Handler {
	return &Handler{engagementService: engagementService}
}
