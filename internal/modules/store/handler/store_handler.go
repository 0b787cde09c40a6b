package handler

import (
	"net/http"
	"strconv"

	moduledto "auto-vitrine-server/internal/modules/store/dto"

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

func parsePathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id 参数错误"})
		return 0, false
	}
	return uint(id), true
}

// GetStores 前台门店列表，?city=<id> 可按城市筛选（非法值忽略）
func (h *Handler) GetStores(c *gin.Context) {
	var cityID *uint
	if raw := c.Query("city"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 64); err == nil && parsed > 0 {
			id := uint(parsed)
			cityID = &id
		}
	}

	stores, err := h.storeService.PublicStores(cityID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取门店列表失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stores": stores})
}

// GetStoreDetail 前台门店详情，附带在售车辆
func (h *Handler) GetStoreDetail(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}
	store, err := h.storeService.StoreDetail(id)
	if err != nil {
		writeServiceError(c, err, "获取门店失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"store": store, "listings": store.Listings})
}

// GetMyStores 商家名下门店（含车辆与照片）
func (h *Handler) GetMyStores(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	stores, err := h.storeService.OwnStores(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取门店列表失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stores": stores})
}

func (h *Handler) CreateStore(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	var req moduledto.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}
	store, err := h.storeService.CreateStore(uid, req)
	if err != nil {
		writeServiceError(c, err, "创建门店失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "创建成功", "store": store})
}

func (h *Handler) UpdateMyStore(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parsePathID(c)
	if !ok {
		return
	}
	var req moduledto.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}
	store, err := h.storeService.UpdateStore(id, uid, req)
	if err != nil {
		writeServiceError(c, err, "更新门店失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "更新成功", "store": store})
}

// UploadStoreLogo 上传/更换门店 Logo
func (h *Handler) UploadStoreLogo(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请选择文件"})
		return
	}

	url, err := h.storeService.UpdateStoreLogo(id, uid, file)
	if err != nil {
		writeServiceError(c, err, "上传失败，请稍后重试")
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "上传成功", "url": url})
}
