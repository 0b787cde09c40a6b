package handler

import (
	"net/http"

	moduledto "auto-vitrine-server/internal/modules/auth/dto"
	"auto-vitrine-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Login(c *gin.Context) {
	var req moduledto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	token, err := h.authService.LoginUser(req.Username, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "登录失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"message": "登录成功",
	})
}

func (h *Handler) Register(c *gin.Context) {
	var req moduledto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	if err := h.authService.RegisterUser(req.Username, req.Password, req.Email, req.Phone); err != nil {
		httpx.WriteServiceError(c, err, "注册失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "注册成功"})
}

// GetRegisterState 前台查询是否开放注册
func (h *Handler) GetRegisterState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"allow_register": h.authService.RegisterEnabled()})
}
