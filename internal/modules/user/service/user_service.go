package service

import (
	"errors"
	"log"
	"strings"

	"auto-vitrine-server/internal/model"
	moduledto "auto-vitrine-server/internal/modules/user/dto"
	platformservice "auto-vitrine-server/internal/platform/service"
	"auto-vitrine-server/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func (s *Service) Profile(userID uint) (*moduledto.ProfileResponse, error) {
	user, err := s.userStore.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("用户不存在")
		}
		log.Printf("Find user error: %v", err)
		return nil, platformservice.NewInternalError("查询用户失败")
	}

	resp := moduledto.ProfileResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Admin:    user.Admin,
	}

	// 资料行缺失时按空资料返回，不视为错误
	if profile, err := s.userStore.FindProfileByUserID(userID); err == nil {
		resp.Phone = profile.Phone
		resp.Photo = profile.Photo
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Find profile error: %v", err)
		return nil, platformservice.NewInternalError("查询资料失败")
	}

	return &resp, nil
}

func (s *Service) UpdateProfile(userID uint, req moduledto.UpdateProfileRequest) (*moduledto.ProfileResponse, error) {
	profile, err := s.userStore.FindProfileByUserID(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Find profile error: %v", err)
			return nil, platformservice.NewInternalError("查询资料失败")
		}
		// 老账号可能没有资料行，此时补建
		profile = nil
	}

	if profile == nil {
		profile = &model.Profile{UserID: userID}
	}

	if req.Phone != nil {
		profile.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Photo != nil {
		profile.Photo = *req.Photo
	}

	if err := s.userStore.SaveProfile(profile); err != nil {
		log.Printf("Save profile error: %v", err)
		return nil, platformservice.NewInternalError("保存资料失败")
	}

	return s.Profile(userID)
}

// ChangePassword 修改密码，需先校验旧密码
func (s *Service) ChangePassword(userID uint, oldPassword, newPassword string) error {
	user, err := s.userStore.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError("用户不存在")
		}
		log.Printf("Find user error: %v", err)
		return platformservice.NewInternalError("查询用户失败")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return platformservice.NewUnauthorizedError("旧密码错误")
	}

	if valid, msg := utils.ValidatePassword(newPassword); !valid {
		return platformservice.NewValidationError(msg)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Hash password error: %v", err)
		return platformservice.NewInternalError("修改密码失败")
	}
	user.Password = string(hashed)

	if err := s.userStore.SaveUser(user); err != nil {
		log.Printf("Save user error: %v", err)
		return platformservice.NewInternalError("修改密码失败")
	}
	return nil
}
