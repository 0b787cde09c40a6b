package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	moduledto "auto-vitrine-server/internal/modules/listing/dto"

	"github.com/gin-gonic/gin"
)

// 商家侧车辆管理接口（multipart 表单，字段与图片同请求提交）

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

func parsePathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " 参数错误"})
		return 0, false
	}
	return uint(id), true
}

// extraPhotoFiles 提取 photos 字段的全部文件
func extraPhotoFiles(c *gin.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["photos"]
}

// CreateListing 发布车辆：主图字段 principal，附加图字段 photos（可多张）
func (h *Handler) CreateListing(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	storeID, ok := parsePathID(c, "id")
	if !ok {
		return
	}

	var form moduledto.ListingForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	input := moduledto.CreateListingInput{Form: form, Extras: extraPhotoFiles(c)}
	if principal, err := c.FormFile("principal"); err == nil {
		input.Principal = principal
	}

	listing, err := h.listingService.CreateListing(storeID, uid, input)
	if err != nil {
		writeServiceError(c, err, "发布车辆失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "发布成功", "listing": listing})
}

func (h *Handler) UpdateListing(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parsePathID(c, "id")
	if !ok {
		return
	}

	var form moduledto.ListingUpdateForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	input := moduledto.UpdateListingInput{Form: form, Extras: extraPhotoFiles(c)}
	if principal, err := c.FormFile("principal"); err == nil {
		input.Principal = principal
	}

	listing, err := h.listingService.UpdateListing(id, uid, input)
	if err != nil {
		writeServiceError(c, err, "更新车辆失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "更新成功", "listing": listing})
}

func (h *Handler) DeleteListing(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parsePathID(c, "id")
	if !ok {
		return
	}
	if err := h.listingService.DeleteListing(id, uid); err != nil {
		writeServiceError(c, err, "删除车辆失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// AddPhotos 追加附加照片，字段 photos（可多张）
func (h *Handler) AddPhotos(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parsePathID(c, "id")
	if !ok {
		return
	}

	files := extraPhotoFiles(c)
	paths, err := h.listingService.AddPhotos(id, uid, files)
	if err != nil {
		writeServiceError(c, err, "上传照片失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "上传成功", "photos": paths})
}

func (h *Handler) DeletePhoto(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parsePathID(c, "id")
	if !ok {
		return
	}
	if err := h.listingService.DeletePhoto(id, uid); err != nil {
		writeServiceError(c, err, "删除照片失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}
