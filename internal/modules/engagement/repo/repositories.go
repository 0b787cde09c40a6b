package repo

import "gorm.io/gorm"

func NewEngagementRepository(db *gorm.DB) EngagementStore {
	return &EngagementRepository{db: db}
}
