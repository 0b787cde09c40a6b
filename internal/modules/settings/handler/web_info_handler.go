package handler

import (
	"net/http"

	"auto-vitrine-server/internal/config"
	"auto-vitrine-server/internal/consts"
	moduledto "auto-vitrine-server/internal/modules/settings/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetWebInfo(c *gin.Context) {
	// 只获取前台展示用的公共配置项
	allowKeys := []string{
		consts.ConfigSiteName,
		consts.ConfigSiteDescription,
		consts.ConfigSiteLogo,
	}

	var response []moduledto.WebInfoResponse
	for _, key := range allowKeys {
		val := h.settingsService.GetString(key)
		response = append(response, moduledto.WebInfoResponse{
			Key:   key,
			Value: val,
		})
	}
	c.JSON(http.StatusOK, response)
}

func (h *Handler) GetPhotoPrefix(c *gin.Context) {
	cfg := config.Get()
	c.JSON(http.StatusOK, gin.H{
		"photo_prefix": cfg.Upload.PhotoURLPrefix,
	})
}

func (h *Handler) GetDefaultListingQuota(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"default_listing_quota": h.settingsService.DefaultListingQuota(),
	})
}
