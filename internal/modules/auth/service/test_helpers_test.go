package service

import (
	"testing"

	modulerepo "auto-vitrine-server/internal/modules/auth/repo"
	settingsrepo "auto-vitrine-server/internal/modules/settings/repo"
	platformservice "auto-vitrine-server/internal/platform/service"
	"auto-vitrine-server/internal/testutils"

	"gorm.io/gorm"
)

var testService *Service

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	userStore := modulerepo.NewUserRepository(gdb)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	appService := platformservice.NewAppService(settingStore)
	testService = New(appService, userStore)
	testService.ClearCache()
	return gdb
}
