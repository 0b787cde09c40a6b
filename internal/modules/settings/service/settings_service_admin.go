package service

import (
	"strconv"
	"strings"

	"auto-vitrine-server/internal/consts"
	"auto-vitrine-server/internal/model"
	moduledto "auto-vitrine-server/internal/modules/settings/dto"
	settingsrepo "auto-vitrine-server/internal/modules/settings/repo"
	platformservice "auto-vitrine-server/internal/platform/service"
)

// AdminListSettings 获取全部系统设置。
func (s *Service) AdminListSettings() ([]model.Setting, error) {
	settings, err := s.settingStore.FindAll()
	if err != nil {
		return nil, platformservice.NewInternalError("获取配置失败")
	}

	sortSettingsForAdmin(settings)
	maskSensitiveSettings(settings)
	return settings, nil
}

// AdminUpdateSettings 批量更新系统设置，并在成功后清理配置缓存。
func (s *Service) AdminUpdateSettings(items []moduledto.UpdateSettingRequest) error {
	for _, item := range items {
		if err := validateSettingUpdate(item); err != nil {
			return err
		}
	}

	repoItems := make([]settingsrepo.UpdateSettingItem, 0, len(items))
	for _, item := range items {
		repoItems = append(repoItems, settingsrepo.UpdateSettingItem{
			Key:   item.Key,
			Value: item.Value,
		})
	}

	if err := s.settingStore.UpdateSettings(repoItems, maskedSettingValue); err != nil {
		return platformservice.NewInternalError("更新失败")
	}

	s.ClearCache()
	return nil
}

func validateSettingUpdate(item moduledto.UpdateSettingRequest) error {
	if strings.TrimSpace(item.Key) == "" {
		return platformservice.NewValidationError("配置键不能为空")
	}

	switch item.Key {
	case consts.ConfigDefaultListingQuota:
		quota, err := strconv.Atoi(strings.TrimSpace(item.Value))
		if err != nil || quota < 0 {
			return platformservice.NewValidationError("默认车辆配额必须为非负整数")
		}
	case consts.ConfigMaxUploadSize:
		size, err := strconv.Atoi(strings.TrimSpace(item.Value))
		if err != nil || size <= 0 {
			return platformservice.NewValidationError("上传大小限制必须为正整数（单位：MB）")
		}
	}

	return nil
}
