package repo

import (
	"errors"

	"auto-vitrine-server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EngagementRepository struct {
	db *gorm.DB
}

// ToggleFavorite 在事务内查找并删除/创建，保证重复调用互为逆操作
func (r *EngagementRepository) ToggleFavorite(userID uint, listingID uint) (bool, error) {
	var favorited bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var favorite model.Favorite
		err := tx.Where("user_id = ? AND listing_id = ?", userID, listingID).
			First(&favorite).Error
		if err == nil {
			favorited = false
			return tx.Delete(&favorite).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		favorited = true
		return tx.Create(&model.Favorite{UserID: userID, ListingID: listingID}).Error
	})
	return favorited, err
}

func (r *EngagementRepository) ListFavorites(userID uint) ([]model.Listing, error) {
	var listings []model.Listing
	err := r.db.Joins("JOIN favorites ON favorites.listing_id = listings.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at desc").
		Preload("Photos").Preload("Brand").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// UpsertView 依赖 (user_id, listing_id) 唯一索引：
// 冲突时只刷新 viewed_at 与 client_ip，不产生新行
func (r *EngagementRepository) UpsertView(record *model.ViewRecord) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "listing_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"viewed_at", "client_ip"}),
	}).Create(record).Error
}

func (r *EngagementRepository) History(userID uint, limit int) ([]model.ViewRecord, error) {
	var records []model.ViewRecord
	err := r.db.Where("user_id = ?", userID).
		Order("viewed_at desc").
		Limit(limit).
		Preload("Listing").Preload("Listing.Photos").Preload("Listing.Brand").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *EngagementRepository) ClearHistory(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.ViewRecord{}).Error
}

func (r *EngagementRepository) ListingExists(listingID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Listing{}).Where("id = ?", listingID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
