package repo

import (
	"auto-vitrine-server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListingRepository struct {
	db *gorm.DB
}

func (r *ListingRepository) FindByID(id uint) (*model.Listing, error) {
	var listing model.Listing
	if err := r.db.Preload("Photos").First(&listing, id).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *ListingRepository) FindDetail(id uint) (*model.Listing, error) {
	var listing model.Listing
	err := r.db.Preload("Photos").
		Preload("Brand").
		Preload("Model").
		Preload("Trim").
		Preload("Category").
		Preload("Store").
		Preload("Store.City").
		First(&listing, id).Error
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *ListingRepository) List(params ListListingsParams) ([]model.Listing, int64, error) {
	var listings []model.Listing
	var total int64

	query := r.db.Model(&model.Listing{})
	if params.BrandID != nil {
		query = query.Where("listings.brand_id = ?", *params.BrandID)
	}
	if params.StoreID != nil {
		query = query.Where("listings.store_id = ?", *params.StoreID)
	}
	if params.CityID != nil {
		query = query.Joins("JOIN stores ON stores.id = listings.store_id").
			Where("stores.city_id = ?", *params.CityID)
	}
	if params.PriceMin != nil {
		query = query.Where("listings.price >= ?", *params.PriceMin)
	}
	if params.PriceMax != nil {
		query = query.Where("listings.price <= ?", *params.PriceMax)
	}
	if params.YearMin != nil {
		query = query.Where("listings.year >= ?", *params.YearMin)
	}
	if params.YearMax != nil {
		query = query.Where("listings.year <= ?", *params.YearMax)
	}
	if params.Busca != "" {
		query = query.Where("listings.name LIKE ?", "%"+params.Busca+"%")
	}
	if params.Fuel != "" {
		query = query.Where("listings.fuel = ?", params.Fuel)
	}
	if params.Trans != "" {
		query = query.Where("listings.transmission = ?", params.Trans)
	}
	if params.Doors != nil {
		query = query.Where("listings.doors = ?", *params.Doors)
	}
	if params.Featured != nil {
		query = query.Where("listings.featured = ?", *params.Featured)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Photos").Preload("Brand").
		Order("listings.created_at desc").
		Offset(params.Offset).Limit(params.Limit).
		Find(&listings).Error
	if err != nil {
		return nil, 0, err
	}

	return listings, total, nil
}

func (r *ListingRepository) Latest(limit int) ([]model.Listing, error) {
	var listings []model.Listing
	err := r.db.Preload("Photos").Preload("Brand").
		Order("created_at desc").Limit(limit).Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *ListingRepository) CountByStore(storeID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Listing{}).Where("store_id = ?", storeID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// lockForUpdate 对查询加行级更新锁。
// SQLite 不支持 FOR UPDATE，依赖其单写事务串行化，直接返回原查询。
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// CreateWithQuota 在单个事务内完成配额判定与写入：
// 先对门店行加更新锁，串行化同店并发创建，再统计在售车辆数与配额比较。
// 配额已满返回 QuotaExceededError（errors.Is 匹配 ErrQuotaExceeded），
// 事务回滚，不会产生任何写入。
func (r *ListingRepository) CreateWithQuota(listing *model.Listing, extraPhotos []string, defaultQuota uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var store model.Store
		if err := lockForUpdate(tx).
			First(&store, listing.StoreID).Error; err != nil {
			return err
		}

		quota := defaultQuota
		if store.ListingQuota != nil {
			quota = *store.ListingQuota
		}

		var count int64
		if err := tx.Model(&model.Listing{}).Where("store_id = ?", store.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(quota) {
			return &QuotaExceededError{Used: count, Quota: quota}
		}

		if err := tx.Create(listing).Error; err != nil {
			return err
		}

		for _, image := range extraPhotos {
			photo := model.Photo{ListingID: listing.ID, Image: image}
			if err := tx.Create(&photo).Error; err != nil {
				return err
			}
			listing.Photos = append(listing.Photos, photo)
		}
		return nil
	})
}

// UpdateWithPhotos 在单个事务内保存车辆字段并追加新附加照片。
// 追加前对车辆行加更新锁并复核容量；整批超出时返回 PhotoCapacityError，
// 字段修改与照片一并回滚。newExtras 为空时退化为纯字段保存。
func (r *ListingRepository) UpdateWithPhotos(listing *model.Listing, newExtras []string, maxExtra int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(newExtras) > 0 {
			var locked model.Listing
			if err := lockForUpdate(tx).
				First(&locked, listing.ID).Error; err != nil {
				return err
			}

			var count int64
			if err := tx.Model(&model.Photo{}).Where("listing_id = ?", listing.ID).
				Count(&count).Error; err != nil {
				return err
			}
			remaining := maxExtra - int(count)
			if remaining < 0 {
				remaining = 0
			}
			if len(newExtras) > remaining {
				return &PhotoCapacityError{Remaining: remaining}
			}
		}

		if err := tx.Omit("Photos").Save(listing).Error; err != nil {
			return err
		}

		for _, image := range newExtras {
			if err := tx.Create(&model.Photo{ListingID: listing.ID, Image: image}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// AppendPhotos 在单个事务内完成容量判定与追加：
// 先对车辆行加更新锁，再统计现有附加照片数。
// 整批超出容量时返回 PhotoCapacityError，一张也不会写入。
func (r *ListingRepository) AppendPhotos(listingID uint, images []string, maxExtra int) error {
	if len(images) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		var listing model.Listing
		if err := lockForUpdate(tx).
			First(&listing, listingID).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.Photo{}).Where("listing_id = ?", listingID).
			Count(&count).Error; err != nil {
			return err
		}

		remaining := maxExtra - int(count)
		if remaining < 0 {
			remaining = 0
		}
		if len(images) > remaining {
			return &PhotoCapacityError{Remaining: remaining}
		}

		for _, image := range images {
			if err := tx.Create(&model.Photo{ListingID: listingID, Image: image}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteCascade 删除车辆及其照片/收藏/浏览记录，单事务完成
func (r *ListingRepository) DeleteCascade(listingID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("listing_id = ?", listingID).Delete(&model.Photo{}).Error; err != nil {
			return err
		}
		if err := tx.Where("listing_id = ?", listingID).Delete(&model.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("listing_id = ?", listingID).Delete(&model.ViewRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Listing{}, listingID).Error
	})
}

func (r *ListingRepository) FindPhotoWithListing(photoID uint) (*model.Photo, error) {
	var photo model.Photo
	if err := r.db.Preload("Listing").Preload("Listing.Store").First(&photo, photoID).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *ListingRepository) DeletePhoto(photoID uint) error {
	return r.db.Delete(&model.Photo{}, photoID).Error
}

// IncrementViews 原始浏览计数，每次详情访问无条件 +1
func (r *ListingRepository) IncrementViews(listingID uint) error {
	return r.db.Model(&model.Listing{}).Where("id = ?", listingID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}
