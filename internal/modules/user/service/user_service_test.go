package service

import (
	"testing"

	"auto-vitrine-server/internal/model"
	moduledto "auto-vitrine-server/internal/modules/user/dto"
	platformservice "auto-vitrine-server/internal/platform/service"
)

func assertUserServiceErrorCode(t *testing.T, err error, code platformservice.ErrorCode) {
	t.Helper()
	serviceErr, ok := platformservice.AsServiceError(err)
	if !ok {
		t.Fatalf("期望 ServiceError，实际为: %v", err)
	}
	if serviceErr.Code != code {
		t.Fatalf("期望错误码 %q，实际为 %q", code, serviceErr.Code)
	}
}

// 测试内容：验证资料行缺失时按空资料返回而非报错。
func TestProfile_MissingProfileRowTolerated(t *testing.T) {
	gdb := setupTestDB(t)
	user := createTestUser(t, gdb, "legacy", "passw0rd1", false)

	profile, err := testService.Profile(user.ID)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if profile.Username != "legacy" {
		t.Fatalf("期望用户名 legacy，实际为 %q", profile.Username)
	}
	if profile.Phone != "" || profile.Photo != "" {
		t.Fatalf("期望空资料字段，实际为 phone=%q photo=%q", profile.Phone, profile.Photo)
	}
}

// 测试内容：验证更新资料时缺失的资料行会被补建。
func TestUpdateProfile_RecreatesMissingRow(t *testing.T) {
	gdb := setupTestDB(t)
	user := createTestUser(t, gdb, "legacy2", "passw0rd1", false)

	phone := " 11911112222 "
	profile, err := testService.UpdateProfile(user.ID, moduledto.UpdateProfileRequest{Phone: &phone})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if profile.Phone != "11911112222" {
		t.Fatalf("期望电话去除空白后保存，实际为 %q", profile.Phone)
	}

	var row model.Profile
	if err := gdb.Where("user_id = ?", user.ID).First(&row).Error; err != nil {
		t.Fatalf("期望资料行被补建: %v", err)
	}
}

// 测试内容：验证更新资料只修改提交的字段。
func TestUpdateProfile_PartialPatch(t *testing.T) {
	gdb := setupTestDB(t)
	user := createTestUser(t, gdb, "dealer", "passw0rd1", true)

	photo := "avatars/1.png"
	profile, err := testService.UpdateProfile(user.ID, moduledto.UpdateProfileRequest{Photo: &photo})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if profile.Photo != photo {
		t.Fatalf("期望头像更新，实际为 %q", profile.Photo)
	}
	if profile.Phone != "11988887777" {
		t.Fatalf("期望电话保持不变，实际为 %q", profile.Phone)
	}
}

// 测试内容：验证修改密码需要正确的旧密码且新密码需满足强度要求。
func TestChangePassword_Flow(t *testing.T) {
	gdb := setupTestDB(t)
	user := createTestUser(t, gdb, "dealer2", "passw0rd1", true)

	err := testService.ChangePassword(user.ID, "wrongpass", "newpassw0rd")
	assertUserServiceErrorCode(t, err, platformservice.ErrorCodeUnauthorized)

	err = testService.ChangePassword(user.ID, "passw0rd1", "short")
	assertUserServiceErrorCode(t, err, platformservice.ErrorCodeValidation)

	if err := testService.ChangePassword(user.ID, "passw0rd1", "newpassw0rd1"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	// 旧密码不再可用
	err = testService.ChangePassword(user.ID, "passw0rd1", "anotherpass1")
	assertUserServiceErrorCode(t, err, platformservice.ErrorCodeUnauthorized)
}
