package repo

import "auto-vitrine-server/internal/model"

// CatalogStore 目录数据访问接口：品牌/车型/版本三级树、类别与城市
type CatalogStore interface {
	ListBrands() ([]model.Brand, error)
	ListCategories() ([]model.Category, error)
	ListCities() ([]model.City, error)
	ModelsForBrand(brandID uint) ([]model.VehicleModel, error)
	TrimsForModel(modelID uint) ([]model.Trim, error)
	ListingParentRefs(listingID uint) (brandID uint, modelID *uint, found bool, err error)

	FindBrandByID(id uint) (*model.Brand, error)
	FindBrandByName(name string) (*model.Brand, error)
	FindModelByID(id uint) (*model.VehicleModel, error)
	FindModelByBrandAndName(brandID uint, name string) (*model.VehicleModel, error)
	FindTrimByID(id uint) (*model.Trim, error)
	FindCategoryByID(id uint) (*model.Category, error)
	FindCategoryByName(name string) (*model.Category, error)
	FindCityByID(id uint) (*model.City, error)
	FindCityByName(name string) (*model.City, error)

	CreateBrand(brand *model.Brand) error
	UpdateBrand(brand *model.Brand) error
	DeleteBrandCascade(brandID uint) error

	CreateModel(vm *model.VehicleModel) error
	UpdateModel(vm *model.VehicleModel) error
	DeleteModelCascade(modelID uint) error

	CreateTrim(trim *model.Trim) error
	UpdateTrim(trim *model.Trim) error
	DeleteTrimCascade(trimID uint) error

	CreateCategory(category *model.Category) error
	UpdateCategory(category *model.Category) error
	DeleteCategoryCascade(categoryID uint) error

	CreateCity(city *model.City) error
	UpdateCity(city *model.City) error
	DeleteCityCascade(cityID uint) error
}
