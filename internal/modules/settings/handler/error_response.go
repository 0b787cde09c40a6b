package handler

import (
	"auto-vitrine-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

func writeServiceError(c *gin.Context, err error, fallbackMessage string) {
	httpx.WriteServiceError(c, err, fallbackMessage)
}
