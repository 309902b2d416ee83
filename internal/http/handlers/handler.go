package handlers

import (
	"github.com/yaodan-next/internal/http/response"
	"github.com/yaodan-next/internal/logger"
	"github.com/yaodan-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// Handler 接口处理器入口
type Handler struct {
	*provider.Container
}

// New 创建处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func respondError(c *gin.Context, code int, msg string, err error) {
	if err != nil {
		logger.Warnw("handler_error", "path", c.FullPath(), "error", err)
	}
	response.Error(c, code, msg)
}
