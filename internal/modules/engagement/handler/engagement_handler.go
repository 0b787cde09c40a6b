package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func currentUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户信息"})
		return 0, false
	}
	uid, ok := userID.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "无效的用户ID类型"})
		return 0, false
	}
	return uid, true
}

// ToggleFavorite 收藏/取消收藏，返回切换后状态
func (h *Handler) ToggleFavorite(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	listingID, err := strconv.ParseUint(c.Param("listingID"), 10, 64)
	if err != nil || listingID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "listingID 参数错误"})
		return
	}

	favorited, svcErr := h.engagementService.ToggleFavorite(uid, uint(listingID))
	if svcErr != nil {
		writeServiceError(c, svcErr, "收藏操作失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorited": favorited})
}

func (h *Handler) GetFavorites(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	listings, err := h.engagementService.Favorites(uid)
	if err != nil {
		writeServiceError(c, err, "获取收藏列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": listings})
}

// GetHistory 浏览历史，最多 50 条、最近在前
func (h *Handler) GetHistory(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	records, err := h.engagementService.History(uid)
	if err != nil {
		writeServiceError(c, err, "获取浏览历史失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": records})
}

func (h *Handler) ClearHistory(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.engagementService.ClearHistory(uid); err != nil {
		writeServiceError(c, err, "清空浏览历史失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "已清空"})
}
