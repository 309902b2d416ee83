package handlers

import (
	"strconv"

	"github.com/yaodan-next/internal/constants"
	"github.com/yaodan-next/internal/http/response"
	"github.com/yaodan-next/internal/models"
	"github.com/yaodan-next/internal/service"

	"github.com/gin-gonic/gin"
)

type orderItemRequest struct {
	Name  string       `json:"name"`
	Qty   float64      `json:"qty"`
	Unit  string       `json:"unit"`
	Price models.Money `json:"price"`
}

type orderRequest struct {
	Items           []orderItemRequest `json:"items"`
	ShippingFee     models.Money       `json:"shipping_fee"`
	Discount        models.Money       `json:"discount"`
	PatientName     string             `json:"patient_name"`
	CustomerPhone   string             `json:"customer_phone"`
	ShippingAddress string             `json:"shipping_address"`
	PaymentChannel  string             `json:"payment_channel"`
	PaymentStatus   string             `json:"payment_status"`
}

func (r orderRequest) toComposeInput() service.ComposeInput {
	items := make([]models.OrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, models.OrderItem{
			Name:  item.Name,
			Qty:   item.Qty,
			Unit:  item.Unit,
			Price: item.Price,
		})
	}
	return service.ComposeInput{
		Items:           items,
		ShippingFee:     r.ShippingFee,
		Discount:        r.Discount,
		PatientName:     r.PatientName,
		CustomerPhone:   r.CustomerPhone,
		ShippingAddress: r.ShippingAddress,
		PaymentChannel:  r.PaymentChannel,
		PaymentStatus:   r.PaymentStatus,
	}
}

// PreviewOrder 试算应付合计（不做校验）
func (h *Handler) PreviewOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	input := req.toComposeInput()
	total := h.ComposerService.ComputeTotal(input.Items, input.ShippingFee, input.Discount)
	response.Success(c, gin.H{"total": total})
}

// ComposeOrder 校验并生成药单文案
func (h *Handler) ComposeOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	profile := h.StoreProfileService.Get()
	message, total, err := h.ComposerService.Compose(req.toComposeInput(), profile)
	if err != nil {
		h.StatusService.Publish(constants.StatusLevelError, composeErrorMessage(err))
		respondComposeError(c, err)
		return
	}

	h.StatusService.Publish(constants.StatusLevelSuccess, "药单已生成")
	response.Success(c, gin.H{
		"message": message,
		"total":   total,
	})
}

// CreateOrder 校验并把当前表单存入历史
func (h *Handler) CreateOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	snapshot, history, err := h.HistoryService.SaveOrder(req.toComposeInput())
	if err != nil {
		h.StatusService.Publish(constants.StatusLevelError, composeErrorMessage(err))
		respondComposeError(c, err)
		return
	}

	h.StatusService.Publish(constants.StatusLevelSuccess, "订单已保存")
	response.Success(c, gin.H{
		"order":   snapshot,
		"history": history,
	})
}

// ListOrders 返回历史订单列表（最新在前）
func (h *Handler) ListOrders(c *gin.Context) {
	response.Success(c, h.HistoryService.List())
}

// GetOrder 读取历史订单，药品行带全新临时行ID
func (h *Handler) GetOrder(c *gin.Context) {
	index, ok := parseIndexParam(c)
	if !ok {
		return
	}
	snapshot, editItems, err := h.HistoryService.Load(index)
	if err != nil {
		respondHistoryError(c, err)
		return
	}
	response.Success(c, gin.H{
		"order": snapshot,
		"items": editItems,
	})
}

// DeleteOrder 按位置删除历史订单，越界时不做修改
func (h *Handler) DeleteOrder(c *gin.Context) {
	index, ok := parseIndexParam(c)
	if !ok {
		return
	}
	response.Success(c, h.HistoryService.Delete(index))
}

func parseIndexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "无效的序号", err)
		return 0, false
	}
	return index, true
}
