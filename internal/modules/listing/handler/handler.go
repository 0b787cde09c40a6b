package handler

import listingservice "auto-vitrine-server/internal/modules/listing/service"

// ViewRecorder 登录用户访问详情时记录浏览历史，由互动模块实现
type ViewRecorder interface {
	RecordView(userID uint, listingID uint, clientIP string) error
}

type Handler struct {
	listingService *listingservice.Service
	viewRecorder   ViewRecorder
}

func New(listingService *listingservice.Service, viewRecorder ViewRecorder) *Handler {
	return &Handler{
		listingService: listingService,
		viewRecorder:   viewRecorder,
	}
}
