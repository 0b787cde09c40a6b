package service

import (
	"errors"
	"log"

	"auto-vitrine-server/internal/model"
	"auto-vitrine-server/internal/modules/listing/repo"
	platformservice "auto-vitrine-server/internal/platform/service"

	"gorm.io/gorm"
)

// 前台浏览

func (s *Service) Browse(params repo.ListListingsParams) ([]model.Listing, int64, error) {
	return s.listingStore.List(params)
}

// Detail 车辆详情；每次访问无条件递增原始浏览计数
func (s *Service) Detail(id uint) (*model.Listing, error) {
	listing, err := s.listingStore.FindDetail(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("车辆不存在")
		}
		log.Printf("Find listing error: %v", err)
		return nil, platformservice.NewInternalError("查询车辆失败")
	}

	if err := s.listingStore.IncrementViews(listing.ID); err != nil {
		// 计数失败不影响详情返回
		log.Printf("Increment views error: %v", err)
	} else {
		listing.Views++
	}

	return listing, nil
}

// Home 首页数据：最新上架车辆与品牌列表
func (s *Service) Home(latestCount int) ([]model.Listing, []model.Brand, error) {
	listings, err := s.listingStore.Latest(latestCount)
	if err != nil {
		return nil, nil, err
	}
	brands, err := s.catalogStore.ListBrands()
	if err != nil {
		return nil, nil, err
	}
	return listings, brands, nil
}
