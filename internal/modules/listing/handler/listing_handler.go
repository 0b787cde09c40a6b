package handler

import (
	"log"
	"net/http"
	"strconv"

	"auto-vitrine-server/internal/model"
	"auto-vitrine-server/internal/modules/listing/repo"

	"github.com/gin-gonic/gin"
)

// 前台浏览接口
// 所有筛选参数宽松解析：缺失或非法的值直接忽略，不报错

func queryUint(c *gin.Context, key string) *uint {
	raw := c.Query(key)
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

func queryFloat(c *gin.Context, key string) *float64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil || parsed < 0 {
		return nil
	}
	return &parsed
}

func queryInt(c *gin.Context, key string) *int {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &parsed
}

func (h *Handler) GetListings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "12"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 12
	}

	params := repo.ListListingsParams{
		BrandID:  queryUint(c, "brand"),
		CityID:   queryUint(c, "city"),
		StoreID:  queryUint(c, "store"),
		PriceMin: queryFloat(c, "price_min"),
		PriceMax: queryFloat(c, "price_max"),
		YearMin:  queryInt(c, "year_min"),
		YearMax:  queryInt(c, "year_max"),
		Busca:    c.Query("busca"),
		Offset:   (page - 1) * pageSize,
		Limit:    pageSize,
	}

	if fuel := c.Query("fuel"); fuel != "" && model.ValidFuel(model.Fuel(fuel)) {
		params.Fuel = fuel
	}
	if trans := c.Query("transmission"); trans != "" && model.ValidTransmission(model.Transmission(trans)) {
		params.Trans = trans
	}
	if raw := c.Query("doors"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 8); err == nil && parsed > 0 {
			doors := uint8(parsed)
			params.Doors = &doors
		}
	}
	if raw := c.Query("featured"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			params.Featured = &parsed
		}
	}

	listings, total, err := h.listingService.Browse(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取车辆列表失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"list":      listings,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetListingDetail 车辆详情。
// 浏览计数无条件递增；登录用户额外记录浏览历史（匿名访问不记录）。
func (h *Handler) GetListingDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id 参数错误"})
		return
	}

	listing, svcErr := h.listingService.Detail(uint(id))
	if svcErr != nil {
		writeServiceError(c, svcErr, "获取车辆失败")
		return
	}

	if userID, exists := c.Get("id"); exists {
		if uid, ok := userID.(uint); ok {
			if err := h.viewRecorder.RecordView(uid, listing.ID, c.ClientIP()); err != nil {
				// 历史记录失败不影响详情返回
				log.Printf("Record view error: %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"listing": listing})
}

// GetHome 首页：最新 6 辆车与品牌列表
func (h *Handler) GetHome(c *gin.Context) {
	listings, brands, err := h.listingService.Home(6)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取首页数据失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"latest": listings,
		"brands": brands,
	})
}
