package repo

import "gorm.io/gorm"

func NewListingRepository(db *gorm.DB) ListingStore {
	return &ListingRepository{db: db}
}
