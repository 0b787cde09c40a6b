package service

import (
	"strconv"
	"sync"

	"auto-vitrine-server/internal/consts"
	"auto-vitrine-server/internal/model"
	settingsrepo "auto-vitrine-server/internal/modules/settings/repo"
)

const DefaultValueNotFound = "||__NOT_FOUND__||"

// DefaultSettings 运行时配置的默认定义，初始化时写入数据库并清理遗留键
var DefaultSettings = []model.Setting{
	{Key: consts.ConfigSiteName, Value: "Auto Vitrine", Category: "site", Desc: "站点名称"},
	{Key: consts.ConfigSiteDescription, Value: "Vitrine de veículos multi-loja", Category: "site", Desc: "站点描述"},
	{Key: consts.ConfigSiteLogo, Value: "", Category: "site", Desc: "站点Logo URL"},
	{Key: consts.ConfigAllowRegister, Value: "true", Category: "site", Desc: "是否开放注册 (true/false)"},
	{Key: consts.ConfigDefaultListingQuota, Value: "10", Category: "listing", Desc: "商家默认车辆配额（未单独配置时生效）"},
	{Key: consts.ConfigMaxUploadSize, Value: "10", Category: "upload", Desc: "单个文件最大大小 (MB)"},
	{Key: consts.ConfigAllowFileExtensions, Value: ".jpg,.jpeg,.png,.gif", Category: "upload", Desc: "允许上传的文件扩展名"},
	{Key: consts.ConfigRateLimitEnabled, Value: "true", Category: "rate_limit", Desc: "是否开启接口限流"},
	{Key: consts.ConfigRateLimitAuthRPS, Value: "0.5", Category: "rate_limit", Desc: "认证接口每秒请求限制 (RPS)"},
	{Key: consts.ConfigRateLimitAuthBurst, Value: "2", Category: "rate_limit", Desc: "认证接口突发请求限制"},
	{Key: consts.ConfigRateLimitUploadRPS, Value: "1.0", Category: "rate_limit", Desc: "上传接口每秒请求限制 (RPS)"},
	{Key: consts.ConfigRateLimitUploadBurst, Value: "5", Category: "rate_limit", Desc: "上传接口突发请求限制"},
	{Key: consts.ConfigMaxRequestBodySize, Value: "2", Category: "server", Desc: "非文件上传接口最大请求体限制 (MB)"},
	{Key: consts.ConfigStaticCacheControl, Value: "public, max-age=31536000", Category: "server", Desc: "静态资源缓存设置 (Cache-Control)"},
}

// AppService 聚合各模块共享的平台能力：数据库配置读取（带内存缓存）
type AppService struct {
	settingStore  settingsrepo.SettingStore
	settingsCache sync.Map
}

func NewAppService(settingStore settingsrepo.SettingStore) *AppService {
	return &AppService{settingStore: settingStore}
}

func (s *AppService) ClearCache() {
	s.settingsCache.Range(func(key, value interface{}) bool {
		s.settingsCache.Delete(key)
		return true
	})
}

// InitializeSettings 写入默认配置并清理不在默认集合内的遗留键
func (s *AppService) InitializeSettings() error {
	if err := s.settingStore.InitializeDefaults(DefaultSettings); err != nil {
		return err
	}

	allowedKeys := make([]string, 0, len(DefaultSettings))
	for _, def := range DefaultSettings {
		allowedKeys = append(allowedKeys, def.Key)
	}
	if err := s.settingStore.DeleteNotInKeys(allowedKeys); err != nil {
		return err
	}

	s.ClearCache()
	return nil
}

func (s *AppService) GetString(key string) string {
	if val, ok := s.settingsCache.Load(key); ok {
		strVal, ok := val.(string)
		if !ok {
			s.settingsCache.Delete(key)
		} else {
			if strVal == DefaultValueNotFound {
				return ""
			}
			return strVal
		}
	}

	setting, err := s.settingStore.FindByKey(key)
	if err != nil {
		// 数据库没查到，尝试查找默认配置
		for _, def := range DefaultSettings {
			if def.Key == key {
				// 写回数据库并缓存 (忽略并发写入导致的唯一键冲突)
				newSetting := def
				_ = s.settingStore.Create(&newSetting)

				s.settingsCache.Store(key, newSetting.Value)
				return newSetting.Value
			}
		}

		// 没查到，往缓存里存 DefaultValueNotFound 标记
		s.settingsCache.Store(key, DefaultValueNotFound)
		return ""
	}

	s.settingsCache.Store(key, setting.Value)
	return setting.Value
}

func (s *AppService) GetInt(key string) int {
	valStr := s.GetString(key)
	if valStr == "" {
		return 0
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetInt64(key string) int64 {
	valStr := s.GetString(key)
	if valStr == "" {
		return 0
	}

	val, err := strconv.ParseInt(valStr, 10, 64)
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetFloat64(key string) float64 {
	valStr := s.GetString(key)
	if valStr == "" {
		return 0
	}

	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetBool(key string) bool {
	valStr := s.GetString(key)
	if valStr == "" {
		return false
	}

	// ParseBool 支持 "1", "t", "T", "true", "TRUE", "True"
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		return false
	}
	return val
}
