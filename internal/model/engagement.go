package model

import "time"

// Favorite 收藏，(user, listing) 唯一，重复操作为切换语义
type Favorite struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	UserID    uint    `json:"user_id" gorm:"not null;uniqueIndex:idx_favorites_user_listing"`
	User      User    `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
	ListingID uint    `json:"listing_id" gorm:"not null;uniqueIndex:idx_favorites_user_listing"`
	Listing   Listing `gorm:"foreignKey:ListingID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time
}

// ViewRecord 浏览历史
// 每个 (user, listing) 至多一行，重复浏览只刷新 ViewedAt 与 ClientIP
type ViewRecord struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_view_records_user_listing;index:idx_view_records_user_viewed,priority:1"`
	User      User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
	ListingID uint      `json:"listing_id" gorm:"not null;uniqueIndex:idx_view_records_user_listing"`
	Listing   Listing   `gorm:"foreignKey:ListingID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
	ViewedAt  time.Time `json:"viewed_at" gorm:"not null;index:idx_view_records_user_viewed,priority:2,sort:desc"`
	ClientIP  string    `json:"client_ip" gorm:"size:45"`
}
