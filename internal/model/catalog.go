package model

// 三级车辆分类树：Brand → VehicleModel → Trim
// 删除上级节点时由仓储层在事务内显式级联删除子树

// Category 车辆类别（轿车/摩托等）
type Category struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"size:50;unique;not null"`
	Image string `json:"image"`
}

// Brand 品牌（Toyota、Honda 等）
type Brand struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:50;unique;not null"`
	Logo string `json:"logo"`
}

// VehicleModel 车型（Corolla、HB20 等），(brand, name) 唯一
type VehicleModel struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	BrandID uint   `json:"brand_id" gorm:"not null;uniqueIndex:idx_models_brand_name"`
	Brand   Brand  `gorm:"foreignKey:BrandID;references:ID" json:"-"`
	Name    string `json:"name" gorm:"size:100;not null;uniqueIndex:idx_models_brand_name"`
}

func (VehicleModel) TableName() string {
	return "vehicle_models"
}

// Trim 版本（GLI、XEI、EXL 等），只属于一个车型
type Trim struct {
	ID      uint         `json:"id" gorm:"primaryKey"`
	ModelID uint         `json:"model_id" gorm:"not null;index"`
	Model   VehicleModel `gorm:"foreignKey:ModelID;references:ID" json:"-"`
	Name    string       `json:"name" gorm:"size:100;not null"`
}
