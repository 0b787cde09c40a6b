package service

import (
	"testing"

	"auto-vitrine-server/internal/model"
	catalogrepo "auto-vitrine-server/internal/modules/catalog/repo"
	modulerepo "auto-vitrine-server/internal/modules/listing/repo"
	settingsrepo "auto-vitrine-server/internal/modules/settings/repo"
	storerepo "auto-vitrine-server/internal/modules/store/repo"
	platformservice "auto-vitrine-server/internal/platform/service"
	"auto-vitrine-server/internal/testutils"

	"gorm.io/gorm"
)

var (
	testService *Service
	testStore   modulerepo.ListingStore
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	testStore = modulerepo.NewListingRepository(gdb)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	appService := platformservice.NewAppService(settingStore)
	testService = New(appService, testStore, storerepo.NewStoreRepository(gdb), catalogrepo.NewCatalogRepository(gdb))
	testService.ClearCache()
	return gdb
}

type fixture struct {
	Owner *model.User
	Other *model.User
	Store *model.Store
	Brand *model.Brand
}

// createFixture 创建门店车主、另一个用户、门店与品牌
func createFixture(t *testing.T, gdb *gorm.DB, quota *uint) *fixture {
	t.Helper()

	owner := model.User{Username: "owner", Password: "x", Email: "owner@test.local"}
	other := model.User{Username: "other", Password: "x", Email: "other@test.local"}
	if err := gdb.Create(&owner).Error; err != nil {
		t.Fatalf("create owner: %v", err)
	}
	if err := gdb.Create(&other).Error; err != nil {
		t.Fatalf("create other: %v", err)
	}

	store := model.Store{UserID: owner.ID, Name: "Loja Teste", ListingQuota: quota}
	if err := gdb.Create(&store).Error; err != nil {
		t.Fatalf("create store: %v", err)
	}
	brand := model.Brand{Name: "Toyota"}
	if err := gdb.Create(&brand).Error; err != nil {
		t.Fatalf("create brand: %v", err)
	}

	return &fixture{Owner: &owner, Other: &other, Store: &store, Brand: &brand}
}

// createListingRow 直接写入一辆车，绕过上传校验
func createListingRow(t *testing.T, gdb *gorm.DB, f *fixture, name string) *model.Listing {
	t.Helper()
	listing := model.Listing{
		StoreID:        f.Store.ID,
		BrandID:        f.Brand.ID,
		Name:           name,
		Year:           2021,
		Price:          68000,
		PrincipalPhoto: "2024/01/01/" + name + ".jpg",
	}
	if err := gdb.Create(&listing).Error; err != nil {
		t.Fatalf("create listing: %v", err)
	}
	return &listing
}
