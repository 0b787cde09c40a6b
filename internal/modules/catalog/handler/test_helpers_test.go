package handler

import (
	"testing"

	modulerepo "auto-vitrine-server/internal/modules/catalog/repo"
	catalogservice "auto-vitrine-server/internal/modules/catalog/service"
	settingsrepo "auto-vitrine-server/internal/modules/settings/repo"
	platformservice "auto-vitrine-server/internal/platform/service"
	"auto-vitrine-server/internal/testutils"

	"gorm.io/gorm"
)

var testHandler *Handler

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	catalogStore := modulerepo.NewCatalogRepository(gdb)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	appService := platformservice.NewAppService(settingStore)
	testService := catalogservice.New(appService, catalogStore)
	testHandler = New(testService)
	testService.ClearCache()
	return gdb
}
