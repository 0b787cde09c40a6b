package handler

import catalogservice "auto-vitrine-server/internal/modules/catalog/service"

type Handler struct {
	catalogService *catalogservice.Service
}

func New(catalogService *catalogservice.Service) *Handler {
	return &Handler{catalogService: catalogService}
}
