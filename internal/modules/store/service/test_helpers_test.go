package service

import (
	"testing"

	"auto-vitrine-server/internal/model"
	settingsrepo "auto-vitrine-server/internal/modules/settings/repo"
	modulerepo "auto-vitrine-server/internal/modules/store/repo"
	platformservice "auto-vitrine-server/internal/platform/service"
	"auto-vitrine-server/internal/testutils"

	"gorm.io/gorm"
)

var testService *Service

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	storeStore := modulerepo.NewStoreRepository(gdb)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	appService := platformservice.NewAppService(settingStore)
	testService = New(appService, storeStore)
	testService.ClearCache()
	return gdb
}

func createTestUser(t *testing.T, gdb *gorm.DB, username string) *model.User {
	t.Helper()
	user := model.User{Username: username, Password: "x", Email: username + "@test.local"}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &user
}
