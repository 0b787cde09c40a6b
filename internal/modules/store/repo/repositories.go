package repo

import "gorm.io/gorm"

func NewStoreRepository(db *gorm.DB) StoreStore {
	return &StoreRepository{db: db}
}
