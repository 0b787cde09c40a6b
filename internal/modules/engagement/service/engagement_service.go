package service

import (
	"log"
	"time"

	"auto-vitrine-server/internal/model"
	platformservice "auto-vitrine-server/internal/platform/service"
)

// ToggleFavorite 切换收藏，返回切换后是否已收藏；重复调用互为逆操作
func (s *Service) ToggleFavorite(userID uint, listingID uint) (bool, error) {
	exists, err := s.engagementStore.ListingExists(listingID)
	if err != nil {
		log.Printf("Check listing error: %v", err)
		return false, platformservice.NewInternalError("查询车辆失败")
	}
	if !exists {
		return false, platformservice.NewNotFoundError("车辆不存在")
	}

	favorited, err := s.engagementStore.ToggleFavorite(userID, listingID)
	if err != nil {
		log.Printf("Toggle favorite error: %v", err)
		return false, platformservice.NewInternalError("收藏操作失败")
	}
	return favorited, nil
}

func (s *Service) Favorites(userID uint) ([]model.Listing, error) {
	listings, err := s.engagementStore.ListFavorites(userID)
	if err != nil {
		log.Printf("List favorites error: %v", err)
		return nil, platformservice.NewInternalError("获取收藏列表失败")
	}
	return listings, nil
}

// RecordView 记录登录用户的浏览：同一车辆只保留一行，刷新时间与 IP
func (s *Service) RecordView(userID uint, listingID uint, clientIP string) error {
	record := model.ViewRecord{
		UserID:    userID,
		ListingID: listingID,
		ViewedAt:  time.Now(),
		ClientIP:  clientIP,
	}
	return s.engagementStore.UpsertView(&record)
}

// History 浏览历史，最多 50 条，最近浏览在前
func (s *Service) History(userID uint) ([]model.ViewRecord, error) {
	records, err := s.engagementStore.History(userID, historyLimit)
	if err != nil {
		log.Printf("List history error: %v", err)
		return nil, platformservice.NewInternalError("获取浏览历史失败")
	}
	return records, nil
}

func (s *Service) ClearHistory(userID uint) error {
	if err := s.engagementStore.ClearHistory(userID); err != nil {
		log.Printf("Clear history error: %v", err)
		return platformservice.NewInternalError("清空浏览历史失败")
	}
	return nil
}
