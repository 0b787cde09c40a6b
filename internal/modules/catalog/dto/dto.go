package dto

// OptionItem 级联下拉选项
type OptionItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CreateBrandRequest struct {
	Name string `json:"name" binding:"required"`
	Logo string `json:"logo"`
}

type UpdateBrandRequest struct {
	Name string `json:"name"`
	Logo *string `json:"logo"`
}

type CreateModelRequest struct {
	BrandID uint   `json:"brand_id" binding:"required"`
	Name    string `json:"name" binding:"required"`
}

type UpdateModelRequest struct {
	BrandID *uint  `json:"brand_id"`
	Name    string `json:"name"`
}

type CreateTrimRequest struct {
	ModelID uint   `json:"model_id" binding:"required"`
	Name    string `json:"name" binding:"required"`
}

type UpdateTrimRequest struct {
	ModelID *uint  `json:"model_id"`
	Name    string `json:"name"`
}

type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Image string `json:"image"`
}

type UpdateCategoryRequest struct {
	Name  string  `json:"name"`
	Image *string `json:"image"`
}

type CreateCityRequest struct {
	Name  string `json:"name" binding:"required"`
	State string `json:"state" binding:"required"`
}

type UpdateCityRequest struct {
	Name  string `json:"name"`
	State string `json:"state"`
}
