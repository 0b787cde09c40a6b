package repo

import (
	"errors"

	"auto-vitrine-server/internal/model"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	db *gorm.DB
}

func (r *CatalogRepository) ListBrands() ([]model.Brand, error) {
	var brands []model.Brand
	if err := r.db.Order("name asc").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *CatalogRepository) ListCategories() ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CatalogRepository) ListCities() ([]model.City, error) {
	var cities []model.City
	if err := r.db.Order("name asc").Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

// ModelsForBrand 按名称排序返回品牌下的车型；品牌不存在时返回空列表而非错误
func (r *CatalogRepository) ModelsForBrand(brandID uint) ([]model.VehicleModel, error) {
	var models []model.VehicleModel
	if err := r.db.Where("brand_id = ?", brandID).Order("name asc").Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

// TrimsForModel 按名称排序返回车型下的版本；车型不存在时返回空列表而非错误
func (r *CatalogRepository) TrimsForModel(modelID uint) ([]model.Trim, error) {
	var trims []model.Trim
	if err := r.db.Where("model_id = ?", modelID).Order("name asc").Find(&trims).Error; err != nil {
		return nil, err
	}
	return trims, nil
}

// ListingParentRefs 查询车辆已保存的品牌/车型引用，用于编辑表单的级联回退
func (r *CatalogRepository) ListingParentRefs(listingID uint) (uint, *uint, bool, error) {
	var listing model.Listing
	err := r.db.Select("brand_id", "model_id").First(&listing, listingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil, false, nil
		}
		return 0, nil, false, err
	}
	return listing.BrandID, listing.ModelID, true, nil
}

func (r *CatalogRepository) FindBrandByID(id uint) (*model.Brand, error) {
	var brand model.Brand
	if err := r.db.First(&brand, id).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *CatalogRepository) FindBrandByName(name string) (*model.Brand, error) {
	var brand model.Brand
	if err := r.db.Where("name = ?", name).First(&brand).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *CatalogRepository) FindModelByID(id uint) (*model.VehicleModel, error) {
	var vm model.VehicleModel
	if err := r.db.First(&vm, id).Error; err != nil {
		return nil, err
	}
	return &vm, nil
}

func (r *CatalogRepository) FindModelByBrandAndName(brandID uint, name string) (*model.VehicleModel, error) {
	var vm model.VehicleModel
	if err := r.db.Where("brand_id = ? AND name = ?", brandID, name).First(&vm).Error; err != nil {
		return nil, err
	}
	return &vm, nil
}

func (r *CatalogRepository) FindTrimByID(id uint) (*model.Trim, error) {
	var trim model.Trim
	if err := r.db.First(&trim, id).Error; err != nil {
		return nil, err
	}
	return &trim, nil
}

func (r *CatalogRepository) FindCategoryByID(id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CatalogRepository) FindCategoryByName(name string) (*model.Category, error) {
	var category model.Category
	if err := r.db.Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CatalogRepository) FindCityByID(id uint) (*model.City, error) {
	var city model.City
	if err := r.db.First(&city, id).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *CatalogRepository) FindCityByName(name string) (*model.City, error) {
	var city model.City
	if err := r.db.Where("name = ?", name).First(&city).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *CatalogRepository) CreateBrand(brand *model.Brand) error {
	return r.db.Create(brand).Error
}

func (r *CatalogRepository) UpdateBrand(brand *model.Brand) error {
	return r.db.Save(brand).Error
}

// DeleteBrandCascade 删除品牌及其整个子树：版本、车型，以及名下车辆（含照片/收藏/浏览记录）
// 全部在单个事务内显式完成，不依赖数据库外键行为
func (r *CatalogRepository) DeleteBrandCascade(brandID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var listingIDs []uint
		if err := tx.Model(&model.Listing{}).Where("brand_id = ?", brandID).
			Pluck("id", &listingIDs).Error; err != nil {
			return err
		}
		if err := deleteListingsCascade(tx, listingIDs); err != nil {
			return err
		}

		var modelIDs []uint
		if err := tx.Model(&model.VehicleModel{}).Where("brand_id = ?", brandID).
			Pluck("id", &modelIDs).Error; err != nil {
			return err
		}
		if len(modelIDs) > 0 {
			if err := tx.Where("model_id IN ?", modelIDs).Delete(&model.Trim{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", modelIDs).Delete(&model.VehicleModel{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&model.Brand{}, brandID).Error
	})
}

func (r *CatalogRepository) CreateModel(vm *model.VehicleModel) error {
	return r.db.Create(vm).Error
}

func (r *CatalogRepository) UpdateModel(vm *model.VehicleModel) error {
	return r.db.Save(vm).Error
}

// DeleteModelCascade 删除车型与其版本；引用该车型的车辆保留，model_id/trim_id 置空
func (r *CatalogRepository) DeleteModelCascade(modelID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Listing{}).Where("model_id = ?", modelID).
			Updates(map[string]interface{}{"model_id": nil, "trim_id": nil}).Error; err != nil {
			return err
		}
		if err := tx.Where("model_id = ?", modelID).Delete(&model.Trim{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.VehicleModel{}, modelID).Error
	})
}

func (r *CatalogRepository) CreateTrim(trim *model.Trim) error {
	return r.db.Create(trim).Error
}

func (r *CatalogRepository) UpdateTrim(trim *model.Trim) error {
	return r.db.Save(trim).Error
}

// DeleteTrimCascade 删除版本；引用该版本的车辆保留，trim_id 置空
func (r *CatalogRepository) DeleteTrimCascade(trimID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Listing{}).Where("trim_id = ?", trimID).
			Update("trim_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Trim{}, trimID).Error
	})
}

func (r *CatalogRepository) CreateCategory(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *CatalogRepository) UpdateCategory(category *model.Category) error {
	return r.db.Save(category).Error
}

// DeleteCategoryCascade 删除类别；引用该类别的车辆保留，category_id 置空
func (r *CatalogRepository) DeleteCategoryCascade(categoryID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Listing{}).Where("category_id = ?", categoryID).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Category{}, categoryID).Error
	})
}

func (r *CatalogRepository) CreateCity(city *model.City) error {
	return r.db.Create(city).Error
}

func (r *CatalogRepository) UpdateCity(city *model.City) error {
	return r.db.Save(city).Error
}

// DeleteCityCascade 删除城市；归属该城市的门店保留，city_id 置空
func (r *CatalogRepository) DeleteCityCascade(cityID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Store{}).Where("city_id = ?", cityID).
			Update("city_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.City{}, cityID).Error
	})
}

// deleteListingsCascade 在事务内删除一批车辆及其照片/收藏/浏览记录
func deleteListingsCascade(tx *gorm.DB, listingIDs []uint) error {
	if len(listingIDs) == 0 {
		return nil
	}
	if err := tx.Where("listing_id IN ?", listingIDs).Delete(&model.Photo{}).Error; err != nil {
		return err
	}
	if err := tx.Where("listing_id IN ?", listingIDs).Delete(&model.Favorite{}).Error; err != nil {
		return err
	}
	if err := tx.Where("listing_id IN ?", listingIDs).Delete(&model.ViewRecord{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", listingIDs).Delete(&model.Listing{}).Error
}
