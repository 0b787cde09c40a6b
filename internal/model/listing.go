package model

import "time"

// Fuel 燃料类型
type Fuel string

const (
	FuelGasoline Fuel = "gasoline"
	FuelEthanol  Fuel = "ethanol"
	FuelFlex     Fuel = "flex"
	FuelDiesel   Fuel = "diesel"
	FuelElectric Fuel = "electric"
	FuelHybrid   Fuel = "hybrid"
)

// Transmission 变速箱类型
type Transmission string

const (
	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
	TransmissionCVT       Transmission = "cvt"
	TransmissionAutomated Transmission = "automated"
)

// ValidFuel 校验燃料取值是否合法
func ValidFuel(f Fuel) bool {
	switch f {
	case FuelGasoline, FuelEthanol, FuelFlex, FuelDiesel, FuelElectric, FuelHybrid:
		return true
	}
	return false
}

// ValidTransmission 校验变速箱取值是否合法
func ValidTransmission(t Transmission) bool {
	switch t {
	case TransmissionManual, TransmissionAutomatic, TransmissionCVT, TransmissionAutomated:
		return true
	}
	return false
}

// Listing 在售车辆
// 持久化后的车辆必须始终带有主图（PrincipalPhoto 非空）
type Listing struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	StoreID uint  `json:"store_id" gorm:"not null;index"`
	Store   Store `gorm:"foreignKey:StoreID;references:ID" json:"-"`

	CategoryID *uint         `json:"category_id"`
	Category   *Category     `gorm:"foreignKey:CategoryID;references:ID" json:"category,omitempty"`
	BrandID    uint          `json:"brand_id" gorm:"not null;index"`
	Brand      Brand         `gorm:"foreignKey:BrandID;references:ID" json:"brand"`
	ModelID    *uint         `json:"model_id"`
	Model      *VehicleModel `gorm:"foreignKey:ModelID;references:ID" json:"model,omitempty"`
	TrimID     *uint         `json:"trim_id"`
	Trim       *Trim         `gorm:"foreignKey:TrimID;references:ID" json:"trim,omitempty"`

	Name         string       `json:"name" gorm:"size:100;not null"`
	Year         int          `json:"year" gorm:"not null"`
	Price        float64      `json:"price" gorm:"type:decimal(10,2);not null;index"`
	Km           uint         `json:"km" gorm:"default:0"`
	Color        string       `json:"color" gorm:"size:40"`
	Doors        uint8        `json:"doors" gorm:"default:4"`
	Fuel         Fuel         `json:"fuel" gorm:"size:20;default:'flex'"`
	Transmission Transmission `json:"transmission" gorm:"size:20;default:'manual'"`
	Description  string       `json:"description" gorm:"type:text"`

	PrincipalPhoto string `json:"principal_photo" gorm:"not null"`
	Photos         []Photo `json:"photos,omitempty"`

	Views    int  `json:"views" gorm:"default:0"`
	Featured bool `json:"featured" gorm:"default:false"`
}

// Photo 车辆附加照片，每辆车最多 consts.MaxExtraPhotos 张
type Photo struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	ListingID uint    `json:"listing_id" gorm:"not null;index"`
	Listing   Listing `gorm:"foreignKey:ListingID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
	Image     string  `json:"image" gorm:"not null"`
	CreatedAt time.Time
}
