package service

import (
	"testing"

	"auto-vitrine-server/internal/consts"
	"auto-vitrine-server/internal/model"
	moduledto "auto-vitrine-server/internal/modules/settings/dto"
	platformservice "auto-vitrine-server/internal/platform/service"
)

func assertSettingsServiceErrorCode(t *testing.T, err error, code platformservice.ErrorCode) {
	t.Helper()
	serviceErr, ok := platformservice.AsServiceError(err)
	if !ok {
		t.Fatalf("期望 ServiceError，实际为: %v", err)
	}
	if serviceErr.Code != code {
		t.Fatalf("期望错误码 %q，实际为 %q", code, serviceErr.Code)
	}
}

// 测试内容：验证默认车辆配额缺省为 10，且跟随后台修改。
func TestDefaultListingQuota_DefaultAndOverride(t *testing.T) {
	gdb := setupTestDB(t)

	if got := testService.DefaultListingQuota(); got != 10 {
		t.Fatalf("期望默认配额 10，实际为 %d", got)
	}

	if err := gdb.Model(&model.Setting{}).
		Where("key = ?", consts.ConfigDefaultListingQuota).
		Update("value", "25").Error; err != nil {
		t.Fatalf("update setting: %v", err)
	}
	testService.ClearCache()

	if got := testService.DefaultListingQuota(); got != 25 {
		t.Fatalf("期望配额 25，实际为 %d", got)
	}
}

// 测试内容：验证管理员读取设置时敏感字段会被掩码。
func TestAdminListSettings_MasksSensitive(t *testing.T) {
	gdb := setupTestDB(t)

	_ = gdb.Create(&model.Setting{Key: "k1", Value: "v1", Sensitive: false}).Error
	_ = gdb.Create(&model.Setting{Key: "k2", Value: "secret", Sensitive: true}).Error

	settings, err := testService.AdminListSettings()
	if err != nil {
		t.Fatalf("AdminListSettings: %v", err)
	}

	values := map[string]string{}
	for _, s := range settings {
		values[s.Key] = s.Value
	}
	if values["k1"] != "v1" {
		t.Fatalf("期望 k1=v1，实际为 %q", values["k1"])
	}
	if values["k2"] != maskedSettingValue {
		t.Fatalf("期望敏感值被掩码，实际为 %q", values["k2"])
	}
}

// 测试内容：验证更新设置时敏感掩码值不会覆盖真实敏感值。
func TestAdminUpdateSettings_MaskedSensitiveIgnored(t *testing.T) {
	gdb := setupTestDB(t)

	_ = gdb.Create(&model.Setting{Key: "s1", Value: "secret", Sensitive: true}).Error
	_ = gdb.Create(&model.Setting{Key: "n1", Value: "old", Sensitive: false}).Error

	err := testService.AdminUpdateSettings([]moduledto.UpdateSettingRequest{
		{Key: "s1", Value: maskedSettingValue},
		{Key: "n1", Value: "new"},
	})
	if err != nil {
		t.Fatalf("AdminUpdateSettings: %v", err)
	}

	var s1, n1 model.Setting
	_ = gdb.Where("key = ?", "s1").First(&s1).Error
	_ = gdb.Where("key = ?", "n1").First(&n1).Error
	if s1.Value != "secret" {
		t.Fatalf("期望敏感值保持不变，实际为 %q", s1.Value)
	}
	if n1.Value != "new" {
		t.Fatalf("期望普通值被更新，实际为 %q", n1.Value)
	}
}

// 测试内容：验证关键数值配置的取值校验。
func TestAdminUpdateSettings_ValueValidation(t *testing.T) {
	setupTestDB(t)

	err := testService.AdminUpdateSettings([]moduledto.UpdateSettingRequest{
		{Key: consts.ConfigDefaultListingQuota, Value: "-1"},
	})
	assertSettingsServiceErrorCode(t, err, platformservice.ErrorCodeValidation)

	err = testService.AdminUpdateSettings([]moduledto.UpdateSettingRequest{
		{Key: consts.ConfigMaxUploadSize, Value: "0"},
	})
	assertSettingsServiceErrorCode(t, err, platformservice.ErrorCodeValidation)

	err = testService.AdminUpdateSettings([]moduledto.UpdateSettingRequest{
		{Key: "", Value: "x"},
	})
	assertSettingsServiceErrorCode(t, err, platformservice.ErrorCodeValidation)
}
