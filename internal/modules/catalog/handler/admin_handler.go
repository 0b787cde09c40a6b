package handler

import (
	"net/http"
	"strconv"

	moduledto "auto-vitrine-server/internal/modules/catalog/dto"

	"github.com/gin-gonic/gin"
)

// 后台目录维护接口，统一要求路径参数 id 合法

func parsePathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id 参数错误"})
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) CreateBrand(c *gin.Context) {
	var req moduledto.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}
	brand, err := h.catalogService.CreateBrand(req)
	if err != nil {
		writeServiceError(c, err, "创建品牌失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "创建成功", "brand": brand})
}

func (h *Handler) UpdateBrand(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}
	var req moduledto.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}
	brand, err := h.catalogService.UpdateBrand(id, req)
	if err != nil {
		writeServiceError(c, err, "更新品牌失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "更新成功", "brand": brand})
}

func (h *Handler) DeleteBrand(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}
	if err := h.catalogService.DeleteBrand(id); err != nil {
		writeServiceError(c, err, "删除品牌失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

func (h *Handler) CreateModel(c *gin.Context) {
	var req moduledto.CreateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}
	vm, err := h.catalogService.CreateModel(req)
	if err != nil {
		writeServiceError(c, err, "创建车型失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "创建成功", "model": vm})
}

func (h *Handler) UpdateModel(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}
	var req moduledto.UpdateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}
	vm, err := h.catalogService.UpdateModel(id, req)
	if err != nil {
		writeServiceError(c, err, "更新车型失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "更新成功", "model": vm})
}

func (h *Handler) DeleteModel(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}
	if err := h.catalogService.DeleteModel(id); err != nil {
		writeServiceError(c, err, "删除车型失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

func (h *Handler) CreateTrim(c *gin.Context) {
	var req moduledto.CreateTrimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}
	trim, err := h.catalogService.CreateTrim(req)
	if err != nil {
		writeServiceError(c, err, "创建版本失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "创建成功", "trim": trim})
}

func (h *Handler) UpdateTrim(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}
	var req moduledto.UpdateTrimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}
	trim, err := h.catalogService.UpdateTrim(id, req)
	if err != nil {
		writeServiceError(c, err, "更新版本失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "更新成功", "trim": trim})
}

func (h *Handler) DeleteTrim(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}
	if err := h.catalogService.DeleteTrim(id); err != nil {
		writeServiceError(c, err, "删除版本失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req moduledto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}
	category, err := h.catalogService.CreateCategory(req)
	if err != nil {
		writeServiceError(c, err, "创建类别失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "创建成功", "category": category})
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}
	var req moduledto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}
	category, err := h.catalogService.UpdateCategory(id, req)
	if err != nil {
		writeServiceError(c, err, "更新类别失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "更新成功", "category": category})
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}
	if err := h.catalogService.DeleteCategory(id); err != nil {
		writeServiceError(c, err, "删除类别失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

func (h *Handler) CreateCity(c *gin.Context) {
	var req moduledto.CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}
	city, err := h.catalogService.CreateCity(req)
	if err != nil {
		writeServiceError(c, err, "创建城市失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "创建成功", "city": city})
}

func (h *Handler) UpdateCity(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}
	var req moduledto.UpdateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}
	city, err := h.catalogService.UpdateCity(id, req)
	if err != nil {
		writeServiceError(c, err, "更新城市失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "更新成功", "city": city})
}

func (h *Handler) DeleteCity(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}
	if err := h.catalogService.DeleteCity(id); err != nil {
		writeServiceError(c, err, "删除城市失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}
