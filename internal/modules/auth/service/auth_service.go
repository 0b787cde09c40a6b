package service

import (
	"errors"
	"log"
	"net/mail"
	"strings"
	"time"

	"auto-vitrine-server/internal/config"
	"auto-vitrine-server/internal/consts"
	"auto-vitrine-server/internal/model"
	platformservice "auto-vitrine-server/internal/platform/service"
	"auto-vitrine-server/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegisterUser 注册新用户：
// 校验用户名/密码/邮箱 → 唯一性检查 → 用户与资料同一事务写入
func (s *Service) RegisterUser(username, password, email, phone string) error {
	if !s.GetBool(consts.ConfigAllowRegister) {
		return platformservice.NewForbiddenError("当前未开放注册")
	}

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if valid, msg := utils.ValidateUsername(username); !valid {
		return platformservice.NewValidationError(msg)
	}
	if valid, msg := utils.ValidatePassword(password); !valid {
		return platformservice.NewValidationError(msg)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return platformservice.NewValidationError("邮箱格式不正确")
	}

	if _, err := s.userStore.FindByUsername(username); err == nil {
		return platformservice.NewConflictError("用户名已被占用")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Find user error: %v", err)
		return platformservice.NewInternalError("查询用户失败")
	}
	if _, err := s.userStore.FindByEmail(email); err == nil {
		return platformservice.NewConflictError("邮箱已被占用")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Find user error: %v", err)
		return platformservice.NewInternalError("查询用户失败")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Hash password error: %v", err)
		return platformservice.NewInternalError("注册失败，请稍后重试")
	}

	user := model.User{
		Username: username,
		Password: string(hashed),
		Email:    email,
		Status:   1,
	}
	profile := model.Profile{Phone: strings.TrimSpace(phone)}

	if err := s.userStore.CreateWithProfile(&user, &profile); err != nil {
		log.Printf("Create user error: %v", err)
		return platformservice.NewInternalError("注册失败，请稍后重试")
	}
	return nil
}

// LoginUser 登录校验，成功返回 JWT
func (s *Service) LoginUser(username, password string) (string, error) {
	user, err := s.userStore.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", platformservice.NewUnauthorizedError("用户名或密码错误")
		}
		log.Printf("Find user error: %v", err)
		return "", platformservice.NewInternalError("登录失败，请稍后重试")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", platformservice.NewUnauthorizedError("用户名或密码错误")
	}

	if user.Status == 2 {
		return "", platformservice.NewForbiddenError("账号已被封禁")
	}
	if user.Status == 3 {
		return "", platformservice.NewForbiddenError("账号已停用")
	}

	cfg := config.Get()
	duration := time.Duration(cfg.JWT.ExpirationHours) * time.Hour
	if duration <= 0 {
		duration = 24 * time.Hour
	}

	token, err := utils.GenerateLoginToken(user.ID, user.Username, user.Admin, duration)
	if err != nil {
		log.Printf("Generate token error: %v", err)
		return "", platformservice.NewInternalError("登录失败，请稍后重试")
	}
	return token, nil
}

// RegisterEnabled 前台查询是否开放注册
func (s *Service) RegisterEnabled() bool {
	return s.GetBool(consts.ConfigAllowRegister)
}
