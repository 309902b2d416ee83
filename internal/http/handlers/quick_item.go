package handlers

import (
	"github.com/yaodan-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

type quickItemRequest struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// ListQuickItems 返回常用药品列表
func (h *Handler) ListQuickItems(c *gin.Context) {
	response.Success(c, h.QuickItemService.List())
}

// AddQuickItem 追加常用药品
func (h *Handler) AddQuickItem(c *gin.Context) {
	var req quickItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	items, err := h.QuickItemService.Add(req.Name, req.Unit)
	if err != nil {
		respondQuickItemError(c, err)
		return
	}
	response.Success(c, items)
}

// RemoveQuickItem 按位置删除常用药品，越界时不做修改
func (h *Handler) RemoveQuickItem(c *gin.Context) {
	index, ok := parseIndexParam(c)
	if !ok {
		return
	}
	response.Success(c, h.QuickItemService.Remove(index))
}
