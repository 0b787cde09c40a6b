package service

import (
	"testing"

	"auto-vitrine-server/internal/model"
	settingsrepo "auto-vitrine-server/internal/modules/settings/repo"
	modulerepo "auto-vitrine-server/internal/modules/user/repo"
	platformservice "auto-vitrine-server/internal/platform/service"
	"auto-vitrine-server/internal/testutils"

	"golang.org/x/crypto/bcrypt"
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

// createTestUser 创建用户，密码以 bcrypt 哈希存储；withProfile 控制是否建资料行
func createTestUser(t *testing.T, gdb *gorm.DB, username, password string, withProfile bool) *model.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := model.User{Username: username, Password: string(hashed), Email: username + "@test.local"}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	if withProfile {
		profile := model.Profile{UserID: user.ID, Phone: "11988887777"}
		if err := gdb.Create(&profile).Error; err != nil {
			t.Fatalf("create profile: %v", err)
		}
	}
	return &user
}
