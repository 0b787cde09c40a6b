package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
	Username  string         `json:"username" gorm:"unique;not null"`
	Password  string         `json:"-" gorm:"not null"`
	Email     string         `json:"email" gorm:"unique;index;size:255"`
	Admin     bool           `json:"admin" gorm:"not null"`
	Status    int            `json:"status" gorm:"default:1"` // 1: 正常, 2: 封禁, 3: 软删除(停用)
	Stores    []Store        `json:"-"`
}

// Profile 用户扩展资料，注册时与 User 在同一事务内创建
type Profile struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	UserID    uint   `json:"user_id" gorm:"not null;uniqueIndex"`
	User      User   `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
	Phone     string `json:"phone" gorm:"size:20"`
	Photo     string `json:"photo"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
