package service

import (
	"errors"
	"log"
	"strings"

	"auto-vitrine-server/internal/model"
	moduledto "auto-vitrine-server/internal/modules/store/dto"
	platformservice "auto-vitrine-server/internal/platform/service"

	"gorm.io/gorm"
)

// 前台门店浏览

func (s *Service) PublicStores(cityID *uint) ([]model.Store, error) {
	return s.storeStore.ListPublic(cityID)
}

func (s *Service) StoreDetail(id uint) (*model.Store, error) {
	store, err := s.storeStore.FindWithListings(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("门店不存在")
		}
		log.Printf("Find store error: %v", err)
		return nil, platformservice.NewInternalError("查询门店失败")
	}
	return store, nil
}

// 商家侧门店管理

func (s *Service) OwnStores(userID uint) ([]model.Store, error) {
	return s.storeStore.ListByUserID(userID)
}

func (s *Service) CreateStore(userID uint, req moduledto.CreateStoreRequest) (*model.Store, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, platformservice.NewValidationError("门店名称不能为空")
	}

	store := model.Store{
		UserID:    userID,
		Name:      name,
		Address:   req.Address,
		Phone:     req.Phone,
		Whatsapp:  req.Whatsapp,
		Instagram: req.Instagram,
		Facebook:  req.Facebook,
		Site:      req.Site,
		MapsURL:   req.MapsURL,
		CityID:    req.CityID,
	}
	if err := s.storeStore.Create(&store); err != nil {
		log.Printf("Create store error: %v", err)
		return nil, platformservice.NewInternalError("创建门店失败")
	}
	return &store, nil
}

// GetOwnedStore 查询门店并校验归属；非本人门店返回 forbidden
func (s *Service) GetOwnedStore(storeID uint, userID uint) (*model.Store, error) {
	store, err := s.storeStore.FindByID(storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("门店不存在")
		}
		log.Printf("Find store error: %v", err)
		return nil, platformservice.NewInternalError("查询门店失败")
	}
	if store.UserID != userID {
		return nil, platformservice.NewForbiddenError("无权操作该门店")
	}
	return store, nil
}

func (s *Service) UpdateStore(storeID uint, userID uint, req moduledto.UpdateStoreRequest) (*model.Store, error) {
	store, err := s.GetOwnedStore(storeID, userID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		store.Name = name
	}
	if req.Address != nil {
		store.Address = *req.Address
	}
	if req.Phone != nil {
		store.Phone = *req.Phone
	}
	if req.Whatsapp != nil {
		store.Whatsapp = *req.Whatsapp
	}
	if req.Instagram != nil {
		store.Instagram = *req.Instagram
	}
	if req.Facebook != nil {
		store.Facebook = *req.Facebook
	}
	if req.Site != nil {
		store.Site = *req.Site
	}
	if req.MapsURL != nil {
		store.MapsURL = *req.MapsURL
	}
	if req.CityID != nil {
		store.CityID = req.CityID
	}

	if err := s.storeStore.Update(store); err != nil {
		log.Printf("Update store error: %v", err)
		return nil, platformservice.NewInternalError("更新门店失败")
	}
	return store, nil
}
