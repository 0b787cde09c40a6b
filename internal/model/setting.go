package model

// Setting 数据库内的运行时配置项，带内存缓存（见 platform/service）
type Setting struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Key       string `json:"key" gorm:"size:64;uniqueIndex;not null"`
	Value     string `json:"value"`
	Category  string `json:"category" gorm:"size:32"`
	Desc      string `json:"desc"`
	Sensitive bool   `json:"sensitive" gorm:"default:false"`
}
