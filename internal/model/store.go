package model

import "time"

// City 城市，供门店归属与前台筛选使用
type City struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"size:100;unique;not null"`
	State string `json:"state" gorm:"size:2;not null"`
}

// Store 商家门店（多租户主体），名下车辆受 ListingQuota 限制
type Store struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    uint   `json:"user_id" gorm:"not null;index"`
	User      User   `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
	Name      string `json:"name" gorm:"size:100;not null"`
	Address   string `json:"address" gorm:"size:255"`
	Phone     string `json:"phone" gorm:"size:20"`
	Whatsapp  string `json:"whatsapp" gorm:"size:20"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Site      string `json:"site"`
	MapsURL   string `json:"maps_url"`
	Logo      string `json:"logo"`
	CityID    *uint  `json:"city_id" gorm:"index"`
	City      *City  `gorm:"foreignKey:CityID;references:ID" json:"city,omitempty"`
	// ListingQuota 为空时回退到运行时配置 default_listing_quota
	ListingQuota *uint     `json:"listing_quota"`
	Listings     []Listing `json:"-"`
}
