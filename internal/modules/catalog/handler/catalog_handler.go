package handler

import (
	"net/http"
	"strconv"

	moduledto "auto-vitrine-server/internal/modules/catalog/dto"

	"github.com/gin-gonic/gin"
)

// parseOptionalUint 宽松解析 id 参数：缺失、非数字或为 0 时返回 nil
// 级联下拉接口对非法入参的语义是“空列表”而不是报错
func parseOptionalUint(raw string) *uint {
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return nil
	}
	id := uint(parsed)
	return &id
}

func (h *Handler) GetBrands(c *gin.Context) {
	brands, err := h.catalogService.ListBrands()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取品牌列表失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"brands": brands})
}

func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取类别列表失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *Handler) GetCities(c *gin.Context) {
	cities, err := h.catalogService.ListCities()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取城市列表失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

// GetModels 品牌下的车型选项
// ?brand=<id> 显式指定品牌；?listing=<id> 编辑场景下回退到车辆已保存的品牌
func (h *Handler) GetModels(c *gin.Context) {
	explicitBrandID := parseOptionalUint(c.Query("brand"))

	var fallbackBrandID *uint
	if explicitBrandID == nil {
		if listingID := parseOptionalUint(c.Query("listing")); listingID != nil {
			brandID, _, found, err := h.catalogService.ListingParentRefs(*listingID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "获取车型列表失败"})
				return
			}
			if found {
				fallbackBrandID = &brandID
			}
		}
	}

	models, err := h.catalogService.ModelOptions(explicitBrandID, fallbackBrandID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取车型列表失败"})
		return
	}

	items := make([]moduledto.OptionItem, 0, len(models))
	for _, m := range models {
		items = append(items, moduledto.OptionItem{ID: m.ID, Name: m.Name})
	}
	c.JSON(http.StatusOK, gin.H{"models": items})
}

// GetTrims 车型下的版本选项
// ?model=<id> 显式指定车型；?listing=<id> 编辑场景下回退到车辆已保存的车型
func (h *Handler) GetTrims(c *gin.Context) {
	explicitModelID := parseOptionalUint(c.Query("model"))

	var fallbackModelID *uint
	if explicitModelID == nil {
		if listingID := parseOptionalUint(c.Query("listing")); listingID != nil {
			_, modelID, found, err := h.catalogService.ListingParentRefs(*listingID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "获取版本列表失败"})
				return
			}
			if found {
				fallbackModelID = modelID
			}
		}
	}

	trims, err := h.catalogService.TrimOptions(explicitModelID, fallbackModelID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取版本列表失败"})
		return
	}

	items := make([]moduledto.OptionItem, 0, len(trims))
	for _, t := range trims {
		items = append(items, moduledto.OptionItem{ID: t.ID, Name: t.Name})
	}
	c.JSON(http.StatusOK, gin.H{"trims": items})
}
