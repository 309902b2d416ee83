package handlers

import (
	"github.com/yaodan-next/internal/http/response"
	"github.com/yaodan-next/internal/models"

	"github.com/gin-gonic/gin"
)

type storeProfileRequest struct {
	ContactPhone string `json:"contact_phone"`
}

// GetConfig 返回门店信息
func (h *Handler) GetConfig(c *gin.Context) {
	response.Success(c, h.StoreProfileService.Get())
}

// UpdateConfig 保存门店信息
func (h *Handler) UpdateConfig(c *gin.Context) {
	var req storeProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	profile := h.StoreProfileService.Update(models.StoreProfile{
		ContactPhone: req.ContactPhone,
	})
	response.Success(c, profile)
}
