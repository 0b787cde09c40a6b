package service

import (
	"testing"

	"auto-vitrine-server/internal/consts"
	"auto-vitrine-server/internal/model"
	platformservice "auto-vitrine-server/internal/platform/service"
)

func assertAuthServiceErrorCode(t *testing.T, err error, code platformservice.ErrorCode) {
	t.Helper()
	serviceErr, ok := platformservice.AsServiceError(err)
	if !ok {
		t.Fatalf("期望 ServiceError，实际为: %v", err)
	}
	if serviceErr.Code != code {
		t.Fatalf("期望错误码 %q，实际为 %q", code, serviceErr.Code)
	}
}

// 测试内容：验证注册成功后可以用同一凭据登录，且资料行同事务创建。
func TestRegisterThenLogin_Succeeds(t *testing.T) {
	gdb := setupTestDB(t)

	if err := testService.RegisterUser("dealer01", "passw0rd1", "dealer01@test.local", "11999990000"); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}

	var user model.User
	if err := gdb.Where("username = ?", "dealer01").First(&user).Error; err != nil {
		t.Fatalf("find user: %v", err)
	}
	if user.Password == "passw0rd1" {
		t.Fatalf("期望密码被哈希存储")
	}
	var profile model.Profile
	if err := gdb.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		t.Fatalf("期望注册时创建资料行: %v", err)
	}
	if profile.Phone != "11999990000" {
		t.Fatalf("期望电话写入资料，实际为 %q", profile.Phone)
	}

	token, err := testService.LoginUser("dealer01", "passw0rd1")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}
	if token == "" {
		t.Fatalf("期望返回非空 token")
	}
}

// 测试内容：验证重复用户名与重复邮箱注册返回冲突错误。
func TestRegisterUser_DuplicateRejected(t *testing.T) {
	setupTestDB(t)

	if err := testService.RegisterUser("dealer02", "passw0rd1", "dealer02@test.local", ""); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}

	err := testService.RegisterUser("dealer02", "passw0rd1", "other@test.local", "")
	assertAuthServiceErrorCode(t, err, platformservice.ErrorCodeConflict)

	err = testService.RegisterUser("dealer03", "passw0rd1", "dealer02@test.local", "")
	assertAuthServiceErrorCode(t, err, platformservice.ErrorCodeConflict)
}

// 测试内容：验证弱密码与非法邮箱被拒绝。
func TestRegisterUser_ValidationRejected(t *testing.T) {
	setupTestDB(t)

	err := testService.RegisterUser("dealer04", "short", "dealer04@test.local", "")
	assertAuthServiceErrorCode(t, err, platformservice.ErrorCodeValidation)

	err = testService.RegisterUser("dealer04", "passw0rd1", "not-an-email", "")
	assertAuthServiceErrorCode(t, err, platformservice.ErrorCodeValidation)
}

// 测试内容：验证关闭注册开关后拒绝注册。
func TestRegisterUser_DisabledByConfig(t *testing.T) {
	gdb := setupTestDB(t)

	if err := gdb.Create(&model.Setting{Key: consts.ConfigAllowRegister, Value: "false"}).Error; err != nil {
		t.Fatalf("create setting: %v", err)
	}
	testService.ClearCache()

	err := testService.RegisterUser("dealer05", "passw0rd1", "dealer05@test.local", "")
	assertAuthServiceErrorCode(t, err, platformservice.ErrorCodeForbidden)
}

// 测试内容：验证错误密码与不存在用户都返回相同的未授权错误。
func TestLoginUser_BadCredentialsUnauthorized(t *testing.T) {
	setupTestDB(t)

	if err := testService.RegisterUser("dealer06", "passw0rd1", "dealer06@test.local", ""); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}

	_, err := testService.LoginUser("dealer06", "wrongpass1")
	assertAuthServiceErrorCode(t, err, platformservice.ErrorCodeUnauthorized)

	_, err = testService.LoginUser("ghost", "whatever1")
	assertAuthServiceErrorCode(t, err, platformservice.ErrorCodeUnauthorized)
}

// 测试内容：验证被封禁账号即使密码正确也无法登录。
func TestLoginUser_BannedForbidden(t *testing.T) {
	gdb := setupTestDB(t)

	if err := testService.RegisterUser("dealer07", "passw0rd1", "dealer07@test.local", ""); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if err := gdb.Model(&model.User{}).Where("username = ?", "dealer07").
		Update("status", 2).Error; err != nil {
		t.Fatalf("ban user: %v", err)
	}

	_, err := testService.LoginUser("dealer07", "passw0rd1")
	assertAuthServiceErrorCode(t, err, platformservice.ErrorCodeForbidden)
}
