package handlers

import (
	"github.com/yaodan-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetStatus 返回当前状态提示（无提示时 data 为 null）
func (h *Handler) GetStatus(c *gin.Context) {
	response.Success(c, h.StatusService.Current())
}
