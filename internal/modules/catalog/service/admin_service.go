package service

import (
	"errors"
	"log"
	"strings"

	"auto-vitrine-server/internal/model"
	moduledto "auto-vitrine-server/internal/modules/catalog/dto"
	platformservice "auto-vitrine-server/internal/platform/service"

	"gorm.io/gorm"
)

// 后台目录维护：品牌/车型/版本/类别/城市的增删改
// 删除操作的级联语义由仓储层在事务内完成

func (s *Service) CreateBrand(req moduledto.CreateBrandRequest) (*model.Brand, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, platformservice.NewValidationError("品牌名称不能为空")
	}

	if _, err := s.catalogStore.FindBrandByName(name); err == nil {
		return nil, platformservice.NewConflictError("品牌已存在")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Find brand by name error: %v", err)
		return nil, platformservice.NewInternalError("查询品牌失败")
	}

	brand := model.Brand{Name: name, Logo: req.Logo}
	if err := s.catalogStore.CreateBrand(&brand); err != nil {
		log.Printf("Create brand error: %v", err)
		return nil, platformservice.NewInternalError("创建品牌失败")
	}
	return &brand, nil
}

func (s *Service) UpdateBrand(id uint, req moduledto.UpdateBrandRequest) (*model.Brand, error) {
	brand, err := s.catalogStore.FindBrandByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("品牌不存在")
		}
		return nil, platformservice.NewInternalError("查询品牌失败")
	}

	if name := strings.TrimSpace(req.Name); name != "" && name != brand.Name {
		if existing, findErr := s.catalogStore.FindBrandByName(name); findErr == nil && existing.ID != id {
			return nil, platformservice.NewConflictError("品牌已存在")
		}
		brand.Name = name
	}
	if req.Logo != nil {
		brand.Logo = *req.Logo
	}

	if err := s.catalogStore.UpdateBrand(brand); err != nil {
		log.Printf("Update brand error: %v", err)
		return nil, platformservice.NewInternalError("更新品牌失败")
	}
	return brand, nil
}

func (s *Service) DeleteBrand(id uint) error {
	if _, err := s.catalogStore.FindBrandByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError("品牌不存在")
		}
		return platformservice.NewInternalError("查询品牌失败")
	}
	if err := s.catalogStore.DeleteBrandCascade(id); err != nil {
		log.Printf("Delete brand cascade error: %v", err)
		return platformservice.NewInternalError("删除品牌失败")
	}
	return nil
}

func (s *Service) CreateModel(req moduledto.CreateModelRequest) (*model.VehicleModel, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, platformservice.NewValidationError("车型名称不能为空")
	}

	if _, err := s.catalogStore.FindBrandByID(req.BrandID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewValidationError("所属品牌不存在")
		}
		return nil, platformservice.NewInternalError("查询品牌失败")
	}

	if _, err := s.catalogStore.FindModelByBrandAndName(req.BrandID, name); err == nil {
		return nil, platformservice.NewConflictError("该品牌下已有同名车型")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, platformservice.NewInternalError("查询车型失败")
	}

	vm := model.VehicleModel{BrandID: req.BrandID, Name: name}
	if err := s.catalogStore.CreateModel(&vm); err != nil {
		log.Printf("Create model error: %v", err)
		return nil, platformservice.NewInternalError("创建车型失败")
	}
	return &vm, nil
}

func (s *Service) UpdateModel(id uint, req moduledto.UpdateModelRequest) (*model.VehicleModel, error) {
	vm, err := s.catalogStore.FindModelByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("车型不存在")
		}
		return nil, platformservice.NewInternalError("查询车型失败")
	}

	if req.BrandID != nil {
		if _, findErr := s.catalogStore.FindBrandByID(*req.BrandID); findErr != nil {
			return nil, platformservice.NewValidationError("所属品牌不存在")
		}
		vm.BrandID = *req.BrandID
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		vm.Name = name
	}

	if existing, findErr := s.catalogStore.FindModelByBrandAndName(vm.BrandID, vm.Name); findErr == nil && existing.ID != id {
		return nil, platformservice.NewConflictError("该品牌下已有同名车型")
	}

	if err := s.catalogStore.UpdateModel(vm); err != nil {
		log.Printf("Update model error: %v", err)
		return nil, platformservice.NewInternalError("更新车型失败")
	}
	return vm, nil
}

func (s *Service) DeleteModel(id uint) error {
	if _, err := s.catalogStore.FindModelByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError("车型不存在")
		}
		return platformservice.NewInternalError("查询车型失败")
	}
	if err := s.catalogStore.DeleteModelCascade(id); err != nil {
		log.Printf("Delete model cascade error: %v", err)
		return platformservice.NewInternalError("删除车型失败")
	}
	return nil
}

func (s *Service) CreateTrim(req moduledto.CreateTrimRequest) (*model.Trim, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, platformservice.NewValidationError("版本名称不能为空")
	}

	if _, err := s.catalogStore.FindModelByID(req.ModelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewValidationError("所属车型不存在")
		}
		return nil, platformservice.NewInternalError("查询车型失败")
	}

	trim := model.Trim{ModelID: req.ModelID, Name: name}
	if err := s.catalogStore.CreateTrim(&trim); err != nil {
		log.Printf("Create trim error: %v", err)
		return nil, platformservice.NewInternalError("创建版本失败")
	}
	return &trim, nil
}

func (s *Service) UpdateTrim(id uint, req moduledto.UpdateTrimRequest) (*model.Trim, error) {
	trim, err := s.catalogStore.FindTrimByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("版本不存在")
		}
		return nil, platformservice.NewInternalError("查询版本失败")
	}

	if req.ModelID != nil {
		if _, findErr := s.catalogStore.FindModelByID(*req.ModelID); findErr != nil {
			return nil, platformservice.NewValidationError("所属车型不存在")
		}
		trim.ModelID = *req.ModelID
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		trim.Name = name
	}

	if err := s.catalogStore.UpdateTrim(trim); err != nil {
		log.Printf("Update trim error: %v", err)
		return nil, platformservice.NewInternalError("更新版本失败")
	}
	return trim, nil
}

func (s *Service) DeleteTrim(id uint) error {
	if _, err := s.catalogStore.FindTrimByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError("版本不存在")
		}
		return platformservice.NewInternalError("查询版本失败")
	}
	if err := s.catalogStore.DeleteTrimCascade(id); err != nil {
		log.Printf("Delete trim cascade error: %v", err)
		return platformservice.NewInternalError("删除版本失败")
	}
	return nil
}

func (s *Service) CreateCategory(req moduledto.CreateCategoryRequest) (*model.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, platformservice.NewValidationError("类别名称不能为空")
	}

	if _, err := s.catalogStore.FindCategoryByName(name); err == nil {
		return nil, platformservice.NewConflictError("类别已存在")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, platformservice.NewInternalError("查询类别失败")
	}

	category := model.Category{Name: name, Image: req.Image}
	if err := s.catalogStore.CreateCategory(&category); err != nil {
		log.Printf("Create category error: %v", err)
		return nil, platformservice.NewInternalError("创建类别失败")
	}
	return &category, nil
}

func (s *Service) UpdateCategory(id uint, req moduledto.UpdateCategoryRequest) (*model.Category, error) {
	category, err := s.catalogStore.FindCategoryByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("类别不存在")
		}
		return nil, platformservice.NewInternalError("查询类别失败")
	}

	if name := strings.TrimSpace(req.Name); name != "" && name != category.Name {
		if existing, findErr := s.catalogStore.FindCategoryByName(name); findErr == nil && existing.ID != id {
			return nil, platformservice.NewConflictError("类别已存在")
		}
		category.Name = name
	}
	if req.Image != nil {
		category.Image = *req.Image
	}

	if err := s.catalogStore.UpdateCategory(category); err != nil {
		log.Printf("Update category error: %v", err)
		return nil, platformservice.NewInternalError("更新类别失败")
	}
	return category, nil
}

func (s *Service) DeleteCategory(id uint) error {
	if _, err := s.catalogStore.FindCategoryByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError("类别不存在")
		}
		return platformservice.NewInternalError("查询类别失败")
	}
	if err := s.catalogStore.DeleteCategoryCascade(id); err != nil {
		log.Printf("Delete category cascade error: %v", err)
		return platformservice.NewInternalError("删除类别失败")
	}
	return nil
}

func (s *Service) CreateCity(req moduledto.CreateCityRequest) (*model.City, error) {
	name := strings.TrimSpace(req.Name)
	state := strings.ToUpper(strings.TrimSpace(req.State))
	if name == "" {
		return nil, platformservice.NewValidationError("城市名称不能为空")
	}
	if len(state) != 2 {
		return nil, platformservice.NewValidationError("州/省缩写必须为两位字母")
	}

	if _, err := s.catalogStore.FindCityByName(name); err == nil {
		return nil, platformservice.NewConflictError("城市已存在")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, platformservice.NewInternalError("查询城市失败")
	}

	city := model.City{Name: name, State: state}
	if err := s.catalogStore.CreateCity(&city); err != nil {
		log.Printf("Create city error: %v", err)
		return nil, platformservice.NewInternalError("创建城市失败")
	}
	return &city, nil
}

func (s *Service) UpdateCity(id uint, req moduledto.UpdateCityRequest) (*model.City, error) {
	city, err := s.catalogStore.FindCityByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("城市不存在")
		}
		return nil, platformservice.NewInternalError("查询城市失败")
	}

	if name := strings.TrimSpace(req.Name); name != "" && name != city.Name {
		if existing, findErr := s.catalogStore.FindCityByName(name); findErr == nil && existing.ID != id {
			return nil, platformservice.NewConflictError("城市已存在")
		}
		city.Name = name
	}
	if state := strings.ToUpper(strings.TrimSpace(req.State)); state != "" {
		if len(state) != 2 {
			return nil, platformservice.NewValidationError("州/省缩写必须为两位字母")
		}
		city.State = state
	}

	if err := s.catalogStore.UpdateCity(city); err != nil {
		log.Printf("Update city error: %v", err)
		return nil, platformservice.NewInternalError("更新城市失败")
	}
	return city, nil
}

func (s *Service) DeleteCity(id uint) error {
	if _, err := s.catalogStore.FindCityByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError("城市不存在")
		}
		return platformservice.NewInternalError("查询城市失败")
	}
	if err := s.catalogStore.DeleteCityCascade(id); err != nil {
		log.Printf("Delete city cascade error: %v", err)
		return platformservice.NewInternalError("删除城市失败")
	}
	return nil
}
