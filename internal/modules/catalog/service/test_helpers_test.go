package service

import (
	"testing"

	modulerepo "auto-vitrine-server/internal/modules/catalog/repo"
	settingsrepo "auto-vitrine-server/internal/modules/settings/repo"
	platformservice "auto-vitrine-server/internal/platform/service"
	"auto-vitrine-server/internal/testutils"

	"gorm.io/gorm"
)

var testService *Service

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	catalogStore := modulerepo.NewCatalogRepository(gdb)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	appService := platformservice.NewAppService(settingStore)
	testService = New(appService, catalogStore)
	testService.ClearCache()
	return gdb
}
