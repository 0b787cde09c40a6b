package repo

import (
	"auto-vitrine-server/internal/model"

	"gorm.io/gorm"
)

type StoreRepository struct {
	db *gorm.DB
}

func (r *StoreRepository) FindByID(id uint) (*model.Store, error) {
	var store model.Store
	if err := r.db.Preload("City").First(&store, id).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *StoreRepository) FindWithListings(id uint) (*model.Store, error) {
	var store model.Store
	err := r.db.Preload("City").
		Preload("Listings", func(db *gorm.DB) *gorm.DB {
			return db.Order("listings.created_at desc")
		}).
		Preload("Listings.Photos").
		Preload("Listings.Brand").
		First(&store, id).Error
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *StoreRepository) ListPublic(cityID *uint) ([]model.Store, error) {
	var stores []model.Store
	query := r.db.Preload("City").Order("name asc")
	if cityID != nil {
		query = query.Where("city_id = ?", *cityID)
	}
	if err := query.Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *StoreRepository) ListByUserID(userID uint) ([]model.Store, error) {
	var stores []model.Store
	err := r.db.Preload("City").
		Preload("Listings", func(db *gorm.DB) *gorm.DB {
			return db.Order("listings.created_at desc")
		}).
		Preload("Listings.Photos").
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&stores).Error
	if err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *StoreRepository) Create(store *model.Store) error {
	return r.db.Create(store).Error
}

func (r *StoreRepository) Update(store *model.Store) error {
	return r.db.Save(store).Error
}

func (r *StoreRepository) UpdateLogo(storeID uint, logo string) error {
	return r.db.Model(&model.Store{}).Where("id = ?", storeID).
		Update("logo", logo).Error
}

// UpdateQuota quota 传 nil 表示恢复为跟随运行时默认配额
func (r *StoreRepository) UpdateQuota(storeID uint, quota *uint) error {
	return r.db.Model(&model.Store{}).Where("id = ?", storeID).
		Update("listing_quota", quota).Error
}

// DeleteCascade 删除门店及名下车辆（含照片/收藏/浏览记录），单事务完成
func (r *StoreRepository) DeleteCascade(storeID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var listingIDs []uint
		if err := tx.Model(&model.Listing{}).Where("store_id = ?", storeID).
			Pluck("id", &listingIDs).Error; err != nil {
			return err
		}
		if len(listingIDs) > 0 {
			if err := tx.Where("listing_id IN ?", listingIDs).Delete(&model.Photo{}).Error; err != nil {
				return err
			}
			if err := tx.Where("listing_id IN ?", listingIDs).Delete(&model.Favorite{}).Error; err != nil {
				return err
			}
			if err := tx.Where("listing_id IN ?", listingIDs).Delete(&model.ViewRecord{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", listingIDs).Delete(&model.Listing{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.Store{}, storeID).Error
	})
}

func (r *StoreRepository) CountUsers() (int64, error) {
	var count int64
	if err := r.db.Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *StoreRepository) CountStores() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Store{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *StoreRepository) CountListings() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Listing{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *StoreRepository) SumListingViews() (int64, error) {
	var total int64
	if err := r.db.Model(&model.Listing{}).Select("COALESCE(SUM(views), 0)").Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
