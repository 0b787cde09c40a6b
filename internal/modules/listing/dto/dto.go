package dto

import "mime/multipart"

// ListingForm 创建车辆的表单字段（multipart，图片另行提取）
type ListingForm struct {
	Name         string  `form:"name"`
	Year         int     `form:"year"`
	Price        float64 `form:"price"`
	Km           uint    `form:"km"`
	Color        string  `form:"color"`
	Doors        uint8   `form:"doors"`
	Fuel         string  `form:"fuel"`
	Transmission string  `form:"transmission"`
	Description  string  `form:"description"`
	BrandID      uint    `form:"brand_id"`
	ModelID      *uint   `form:"model_id"`
	TrimID       *uint   `form:"trim_id"`
	CategoryID   *uint   `form:"category_id"`
	Featured     bool    `form:"featured"`
}

// ListingUpdateForm 编辑车辆的表单字段，未提交的字段保持不变
type ListingUpdateForm struct {
	Name         *string  `form:"name"`
	Year         *int     `form:"year"`
	Price        *float64 `form:"price"`
	Km           *uint    `form:"km"`
	Color        *string  `form:"color"`
	Doors        *uint8   `form:"doors"`
	Fuel         *string  `form:"fuel"`
	Transmission *string  `form:"transmission"`
	Description  *string  `form:"description"`
	BrandID      *uint    `form:"brand_id"`
	ModelID      *uint    `form:"model_id"`
	TrimID       *uint    `form:"trim_id"`
	CategoryID   *uint    `form:"category_id"`
	Featured     *bool    `form:"featured"`
}

type CreateListingInput struct {
	Form      ListingForm
	Principal *multipart.FileHeader
	Extras    []*multipart.FileHeader
}

type UpdateListingInput struct {
	Form      ListingUpdateForm
	Principal *multipart.FileHeader
	Extras    []*multipart.FileHeader
}
