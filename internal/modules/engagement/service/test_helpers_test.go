package service

import (
	"testing"

	"auto-vitrine-server/internal/model"
	modulerepo "auto-vitrine-server/internal/modules/engagement/repo"
	settingsrepo "auto-vitrine-server/internal/modules/settings/repo"
	platformservice "auto-vitrine-server/internal/platform/service"
	"auto-vitrine-server/internal/testutils"

	"gorm.io/gorm"
)

var testService *Service

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	engagementStore := modulerepo.NewEngagementRepository(gdb)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	appService := platformservice.NewAppService(settingStore)
	testService = New(appService, engagementStore)
	testService.ClearCache()
	return gdb
}

// createTestListing 创建一辆可被收藏/浏览的车辆及其依赖的用户、门店与品牌
func createTestListing(t *testing.T, gdb *gorm.DB, name string) *model.Listing {
	t.Helper()

	user := model.User{Username: "dealer_" + name, Password: "x", Email: name + "@test.local"}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	store := model.Store{UserID: user.ID, Name: "Store " + name}
	if err := gdb.Create(&store).Error; err != nil {
		t.Fatalf("create store: %v", err)
	}
	brand := model.Brand{Name: "Brand " + name}
	if err := gdb.Create(&brand).Error; err != nil {
		t.Fatalf("create brand: %v", err)
	}
	listing := model.Listing{
		StoreID:        store.ID,
		BrandID:        brand.ID,
		Name:           name,
		Year:           2020,
		Price:          50000,
		PrincipalPhoto: "2024/01/01/" + name + ".jpg",
	}
	if err := gdb.Create(&listing).Error; err != nil {
		t.Fatalf("create listing: %v", err)
	}
	return &listing
}

// createTestViewer 创建一个用于收藏/浏览的普通用户
func createTestViewer(t *testing.T, gdb *gorm.DB, username string) *model.User {
	t.Helper()
	user := model.User{Username: username, Password: "x", Email: username + "@test.local"}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("create viewer: %v", err)
	}
	return &user
}
