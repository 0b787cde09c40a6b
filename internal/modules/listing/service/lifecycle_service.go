package service

import (
	"errors"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"auto-vitrine-server/internal/consts"
	"auto-vitrine-server/internal/model"
	moduledto "auto-vitrine-server/internal/modules/listing/dto"
	"auto-vitrine-server/internal/modules/listing/repo"
	platformservice "auto-vitrine-server/internal/platform/service"

	"gorm.io/gorm"
)

// 车辆生命周期：创建 / 编辑 / 删除 / 照片追加与删除
// 所有写路径要么全部生效要么全部回滚，图片文件随数据库结果同步清理

// defaultQuota 运行时默认配额，未配置或非法时回退 10
func (s *Service) defaultQuota() uint {
	quota := s.GetInt(consts.ConfigDefaultListingQuota)
	if quota <= 0 {
		return 10
	}
	return uint(quota)
}

// GetOwnedListing 查询车辆并校验归属；非本人门店的车辆返回 forbidden
func (s *Service) GetOwnedListing(listingID uint, userID uint) (*model.Listing, error) {
	listing, err := s.listingStore.FindByID(listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("车辆不存在")
		}
		log.Printf("Find listing error: %v", err)
		return nil, platformservice.NewInternalError("查询车辆失败")
	}

	store, err := s.storeStore.FindByID(listing.StoreID)
	if err != nil {
		log.Printf("Find store error: %v", err)
		return nil, platformservice.NewInternalError("查询门店失败")
	}
	if store.UserID != userID {
		return nil, platformservice.NewForbiddenError("无权操作该车辆")
	}
	return listing, nil
}

// CreateListing 发布车辆：
// 配额判断 → 必须有主图 → 整批图片校验（聚合失败原因）→ 落盘 → 原子入库。
// 附加图超过上限的部分静默忽略；配额在插入事务内复核，竞态下也不会超卖。
func (s *Service) CreateListing(storeID uint, userID uint, input moduledto.CreateListingInput) (*model.Listing, error) {
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

	// 先做一次快速配额检查，提前给出友好提示；权威判定在插入事务内
	quota := s.defaultQuota()
	if store.ListingQuota != nil {
		quota = *store.ListingQuota
	}
	count, err := s.listingStore.CountByStore(store.ID)
	if err != nil {
		log.Printf("Count listings error: %v", err)
		return nil, platformservice.NewInternalError("查询车辆数失败")
	}
	if count >= int64(quota) {
		return nil, platformservice.NewForbiddenErrorf("门店车辆配额已满（%d/%d），无法继续发布", count, quota)
	}

	listing := model.Listing{StoreID: store.ID}
	if err := s.applyForm(&listing, input.Form); err != nil {
		return nil, err
	}

	if input.Principal == nil {
		return nil, platformservice.NewValidationError("必须上传主图")
	}

	// 附加图超出上限的部分静默忽略
	extras := input.Extras
	if len(extras) > consts.MaxExtraPhotos {
		extras = extras[:consts.MaxExtraPhotos]
	}

	batch := append([]*multipart.FileHeader{input.Principal}, extras...)
	photos, err := s.validatePhotoBatch(batch)
	if err != nil {
		return nil, err
	}

	relPaths, err := s.savePhotoFiles(photos)
	if err != nil {
		return nil, err
	}
	listing.PrincipalPhoto = relPaths[0]
	extraPaths := relPaths[1:]

	if err := s.listingStore.CreateWithQuota(&listing, extraPaths, s.defaultQuota()); err != nil {
		removePhotoFiles(relPaths...)
		var quotaErr *repo.QuotaExceededError
		if errors.As(err, &quotaErr) {
			return nil, platformservice.NewForbiddenErrorf(
				"门店车辆配额已满（%d/%d），无法继续发布", quotaErr.Used, quotaErr.Quota)
		}
		log.Printf("Create listing DB error: %v", err)
		return nil, platformservice.NewInternalError("系统错误: 数据库记录失败")
	}

	return &listing, nil
}

// UpdateListing 编辑车辆：
// 归属校验 → 未上传新主图时保留原主图 → 新附加图先按剩余容量整批判定 →
// 整批图片校验 → 落盘 → 字段与照片原子入库。不带任何图片的编辑不动现有照片。
func (s *Service) UpdateListing(listingID uint, userID uint, input moduledto.UpdateListingInput) (*model.Listing, error) {
	listing, err := s.GetOwnedListing(listingID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.applyUpdateForm(listing, input.Form); err != nil {
		return nil, err
	}

	remaining := consts.MaxExtraPhotos - len(listing.Photos)
	if remaining < 0 {
		remaining = 0
	}
	if len(input.Extras) > remaining {
		return nil, platformservice.NewValidationErrorf(
			"附加照片最多 %d 张，还可追加 %d 张", consts.MaxExtraPhotos, remaining)
	}

	var batch []*multipart.FileHeader
	if input.Principal != nil {
		batch = append(batch, input.Principal)
	}
	batch = append(batch, input.Extras...)

	var relPaths []string
	if len(batch) > 0 {
		photos, err := s.validatePhotoBatch(batch)
		if err != nil {
			return nil, err
		}
		relPaths, err = s.savePhotoFiles(photos)
		if err != nil {
			return nil, err
		}
	}

	oldPrincipal := ""
	extraPaths := relPaths
	if input.Principal != nil {
		oldPrincipal = listing.PrincipalPhoto
		listing.PrincipalPhoto = relPaths[0]
		extraPaths = relPaths[1:]
	}

	if err := s.listingStore.UpdateWithPhotos(listing, extraPaths, consts.MaxExtraPhotos); err != nil {
		removePhotoFiles(relPaths...)
		var capacityErr *repo.PhotoCapacityError
		if errors.As(err, &capacityErr) {
			return nil, platformservice.NewValidationErrorf(
				"附加照片最多 %d 张，还可追加 %d 张", consts.MaxExtraPhotos, capacityErr.Remaining)
		}
		log.Printf("Update listing DB error: %v", err)
		return nil, platformservice.NewInternalError("系统错误: 数据库记录失败")
	}

	if oldPrincipal != "" {
		removePhotoFiles(oldPrincipal)
	}

	updated, err := s.listingStore.FindByID(listing.ID)
	if err != nil {
		return listing, nil
	}
	return updated, nil
}

// DeleteListing 删除车辆及其照片/收藏/浏览记录，随后清理磁盘文件
func (s *Service) DeleteListing(listingID uint, userID uint) error {
	listing, err := s.GetOwnedListing(listingID, userID)
	if err != nil {
		return err
	}

	files := make([]string, 0, len(listing.Photos)+1)
	files = append(files, listing.PrincipalPhoto)
	for _, photo := range listing.Photos {
		files = append(files, photo.Image)
	}

	if err := s.listingStore.DeleteCascade(listing.ID); err != nil {
		log.Printf("Delete listing cascade error: %v", err)
		return platformservice.NewInternalError("删除车辆失败")
	}

	removePhotoFiles(files...)
	return nil
}

// AddPhotos 追加附加照片：容量整批判定 → 图片校验 → 落盘 → 原子入库
func (s *Service) AddPhotos(listingID uint, userID uint, files []*multipart.FileHeader) ([]string, error) {
	listing, err := s.GetOwnedListing(listingID, userID)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, platformservice.NewValidationError("请选择要上传的照片")
	}

	remaining := consts.MaxExtraPhotos - len(listing.Photos)
	if remaining < 0 {
		remaining = 0
	}
	if len(files) > remaining {
		return nil, platformservice.NewValidationErrorf(
			"附加照片最多 %d 张，还可追加 %d 张", consts.MaxExtraPhotos, remaining)
	}

	photos, err := s.validatePhotoBatch(files)
	if err != nil {
		return nil, err
	}
	relPaths, err := s.savePhotoFiles(photos)
	if err != nil {
		return nil, err
	}

	if err := s.listingStore.AppendPhotos(listing.ID, relPaths, consts.MaxExtraPhotos); err != nil {
		removePhotoFiles(relPaths...)
		var capacityErr *repo.PhotoCapacityError
		if errors.As(err, &capacityErr) {
			return nil, platformservice.NewValidationErrorf(
				"附加照片最多 %d 张，还可追加 %d 张", consts.MaxExtraPhotos, capacityErr.Remaining)
		}
		log.Printf("Append photos DB error: %v", err)
		return nil, platformservice.NewInternalError("系统错误: 数据库记录失败")
	}

	return relPaths, nil
}

// DeletePhoto 删除单张附加照片，归属沿 照片→车辆→门店 校验；删除不做容量复核
func (s *Service) DeletePhoto(photoID uint, userID uint) error {
	photo, err := s.listingStore.FindPhotoWithListing(photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError("照片不存在")
		}
		log.Printf("Find photo error: %v", err)
		return platformservice.NewInternalError("查询照片失败")
	}
	if photo.Listing.Store.UserID != userID {
		return platformservice.NewForbiddenError("无权操作该照片")
	}

	if err := s.listingStore.DeletePhoto(photo.ID); err != nil {
		log.Printf("Delete photo error: %v", err)
		return platformservice.NewInternalError("删除照片失败")
	}

	removePhotoFiles(photo.Image)
	return nil
}

// applyForm 创建表单校验与赋值
func (s *Service) applyForm(listing *model.Listing, form moduledto.ListingForm) error {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return platformservice.NewValidationError("车辆名称不能为空")
	}
	listing.Name = name

	currentYear := time.Now().Year()
	if form.Year < 1900 || form.Year > currentYear+1 {
		return platformservice.NewValidationError("年份不合法")
	}
	listing.Year = form.Year

	if form.Price <= 0 {
		return platformservice.NewValidationError("价格必须大于 0")
	}
	listing.Price = form.Price
	listing.Km = form.Km
	listing.Color = strings.TrimSpace(form.Color)
	listing.Description = form.Description
	listing.Featured = form.Featured

	if form.Doors > 0 {
		listing.Doors = form.Doors
	}
	if form.Fuel != "" {
		if !model.ValidFuel(model.Fuel(form.Fuel)) {
			return platformservice.NewValidationError("燃料类型不合法")
		}
		listing.Fuel = model.Fuel(form.Fuel)
	}
	if form.Transmission != "" {
		if !model.ValidTransmission(model.Transmission(form.Transmission)) {
			return platformservice.NewValidationError("变速箱类型不合法")
		}
		listing.Transmission = model.Transmission(form.Transmission)
	}

	return s.applyCatalogRefs(listing, form.BrandID, form.ModelID, form.TrimID, form.CategoryID)
}

// applyUpdateForm 编辑表单校验与赋值，未提交字段保持不变
func (s *Service) applyUpdateForm(listing *model.Listing, form moduledto.ListingUpdateForm) error {
	if form.Name != nil {
		name := strings.TrimSpace(*form.Name)
		if name == "" {
			return platformservice.NewValidationError("车辆名称不能为空")
		}
		listing.Name = name
	}
	if form.Year != nil {
		currentYear := time.Now().Year()
		if *form.Year < 1900 || *form.Year > currentYear+1 {
			return platformservice.NewValidationError("年份不合法")
		}
		listing.Year = *form.Year
	}
	if form.Price != nil {
		if *form.Price <= 0 {
			return platformservice.NewValidationError("价格必须大于 0")
		}
		listing.Price = *form.Price
	}
	if form.Km != nil {
		listing.Km = *form.Km
	}
	if form.Color != nil {
		listing.Color = strings.TrimSpace(*form.Color)
	}
	if form.Doors != nil && *form.Doors > 0 {
		listing.Doors = *form.Doors
	}
	if form.Fuel != nil {
		if !model.ValidFuel(model.Fuel(*form.Fuel)) {
			return platformservice.NewValidationError("燃料类型不合法")
		}
		listing.Fuel = model.Fuel(*form.Fuel)
	}
	if form.Transmission != nil {
		if !model.ValidTransmission(model.Transmission(*form.Transmission)) {
			return platformservice.NewValidationError("变速箱类型不合法")
		}
		listing.Transmission = model.Transmission(*form.Transmission)
	}
	if form.Description != nil {
		listing.Description = *form.Description
	}
	if form.Featured != nil {
		listing.Featured = *form.Featured
	}

	brandID := listing.BrandID
	if form.BrandID != nil {
		brandID = *form.BrandID
	}
	modelID := listing.ModelID
	if form.ModelID != nil {
		modelID = form.ModelID
	}
	trimID := listing.TrimID
	if form.TrimID != nil {
		trimID = form.TrimID
	}
	categoryID := listing.CategoryID
	if form.CategoryID != nil {
		categoryID = form.CategoryID
	}
	return s.applyCatalogRefs(listing, brandID, modelID, trimID, categoryID)
}

// applyCatalogRefs 校验并写入目录引用：
// 品牌必填；车型必须属于品牌；版本必须属于车型；类别可选。
// 品牌变化导致车型/版本不再匹配时直接拒绝，避免悬挂引用。
func (s *Service) applyCatalogRefs(listing *model.Listing, brandID uint, modelID, trimID, categoryID *uint) error {
	if brandID == 0 {
		return platformservice.NewValidationError("必须选择品牌")
	}
	if _, err := s.catalogStore.FindBrandByID(brandID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewValidationError("品牌不存在")
		}
		return platformservice.NewInternalError("查询品牌失败")
	}
	listing.BrandID = brandID

	if modelID != nil {
		vm, err := s.catalogStore.FindModelByID(*modelID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return platformservice.NewValidationError("车型不存在")
			}
			return platformservice.NewInternalError("查询车型失败")
		}
		if vm.BrandID != brandID {
			return platformservice.NewValidationError("车型不属于所选品牌")
		}
	}
	listing.ModelID = modelID

	if trimID != nil {
		if modelID == nil {
			return platformservice.NewValidationError("选择版本前必须先选择车型")
		}
		trim, err := s.catalogStore.FindTrimByID(*trimID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return platformservice.NewValidationError("版本不存在")
			}
			return platformservice.NewInternalError("查询版本失败")
		}
		if trim.ModelID != *modelID {
			return platformservice.NewValidationError("版本不属于所选车型")
		}
	}
	listing.TrimID = trimID

	if categoryID != nil {
		if _, err := s.catalogStore.FindCategoryByID(*categoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return platformservice.NewValidationError("类别不存在")
			}
			return platformservice.NewInternalError("查询类别失败")
		}
	}
	listing.CategoryID = categoryID

	return nil
}
