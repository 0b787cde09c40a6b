package handler

import storeservice "auto-vitrine-server/internal/modules/store/service"

type Handler struct {
	storeService *storeservice.Service
}

func New(storeService *storeservice.Service) *Handler {
	return &Handler{storeService: storeService}
}
