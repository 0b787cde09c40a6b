package service

import "auto-vitrine-server/internal/model"

// 前台级联查询：未知/非法上级 id 一律返回空列表，不返回错误
// 下拉框在上级未选中时本来就应该为空

func (s *Service) ListBrands() ([]model.Brand, error) {
	return s.catalogStore.ListBrands()
}

func (s *Service) ListCategories() ([]model.Category, error) {
	return s.catalogStore.ListCategories()
}

func (s *Service) ListCities() ([]model.City, error) {
	return s.catalogStore.ListCities()
}

// ModelOptions 返回品牌下的车型选项。
// explicitBrandID 为本次请求显式提交的品牌；即便其下没有车型也以它为准。
// 只有完全未提交时才回退 fallbackBrandID（编辑表单中车辆已保存的品牌）。
func (s *Service) ModelOptions(explicitBrandID, fallbackBrandID *uint) ([]model.VehicleModel, error) {
	brandID := explicitBrandID
	if brandID == nil {
		brandID = fallbackBrandID
	}
	if brandID == nil {
		return []model.VehicleModel{}, nil
	}
	return s.catalogStore.ModelsForBrand(*brandID)
}

// TrimOptions 返回车型下的版本选项，回退规则与 ModelOptions 一致。
func (s *Service) TrimOptions(explicitModelID, fallbackModelID *uint) ([]model.Trim, error) {
	modelID := explicitModelID
	if modelID == nil {
		modelID = fallbackModelID
	}
	if modelID == nil {
		return []model.Trim{}, nil
	}
	return s.catalogStore.TrimsForModel(*modelID)
}

// ListingParentRefs 查询车辆已保存的品牌/车型引用；车辆不存在时 found 为 false
func (s *Service) ListingParentRefs(listingID uint) (uint, *uint, bool, error) {
	return s.catalogStore.ListingParentRefs(listingID)
}
