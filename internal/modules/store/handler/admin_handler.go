package handler

import (
	"net/http"

	moduledto "auto-vitrine-server/internal/modules/store/dto"

	"github.com/gin-gonic/gin"
)

// UpdateStoreQuota 调整门店配额，quota 为 null 时恢复默认
func (h *Handler) UpdateStoreQuota(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}
	var req moduledto.UpdateQuotaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}
	if err := h.storeService.AdminSetQuota(id, req.Quota); err != nil {
		writeServiceError(c, err, "更新配额失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "更新成功"})
}

func (h *Handler) DeleteStore(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}
	if err := h.storeService.AdminDeleteStore(id); err != nil {
		writeServiceError(c, err, "删除门店失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.storeService.AdminStats()
	if err != nil {
		writeServiceError(c, err, "获取统计失败")
		return
	}
	c.JSON(http.StatusOK, stats)
}
