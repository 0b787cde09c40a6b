package service

import (
	"errors"
	"log"

	moduledto "auto-vitrine-server/internal/modules/store/dto"
	platformservice "auto-vitrine-server/internal/platform/service"

	"gorm.io/gorm"
)

// 后台门店管理：配额调整、删除门店、平台统计

// AdminSetQuota 设置门店配额；quota 为 nil 表示恢复跟随默认配额
func (s *Service) AdminSetQuota(storeID uint, quota *uint) error {
	if _, err := s.storeStore.FindByID(storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError("门店不存在")
		}
		return platformservice.NewInternalError("查询门店失败")
	}
	if err := s.storeStore.UpdateQuota(storeID, quota); err != nil {
		log.Printf("Update quota error: %v", err)
		return platformservice.NewInternalError("更新配额失败")
	}
	return nil
}

func (s *Service) AdminDeleteStore(storeID uint) error {
	if _, err := s.storeStore.FindByID(storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError("门店不存在")
		}
		return platformservice.NewInternalError("查询门店失败")
	}
	if err := s.storeStore.DeleteCascade(storeID); err != nil {
		log.Printf("Delete store cascade error: %v", err)
		return platformservice.NewInternalError("删除门店失败")
	}
	return nil
}

func (s *Service) AdminStats() (*moduledto.StatsResponse, error) {
	users, err := s.storeStore.CountUsers()
	if err != nil {
		return nil, platformservice.NewInternalError("统计用户失败")
	}
	stores, err := s.storeStore.CountStores()
	if err != nil {
		return nil, platformservice.NewInternalError("统计门店失败")
	}
	listings, err := s.storeStore.CountListings()
	if err != nil {
		return nil, platformservice.NewInternalError("统计车辆失败")
	}
	views, err := s.storeStore.SumListingViews()
	if err != nil {
		return nil, platformservice.NewInternalError("统计浏览量失败")
	}

	return &moduledto.StatsResponse{
		Users:    users,
		Stores:   stores,
		Listings: listings,
		Views:    views,
	}, nil
}
