package repo

import "gorm.io/gorm"

func NewCatalogRepository(db *gorm.DB) CatalogStore {
	return &CatalogRepository{db: db}
}
