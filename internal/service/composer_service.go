package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaodan-next/internal/constants"
	"github.com/yaodan-next/internal/models"

	"github.com/shopspring/decimal"
)

// 文案固定段落
const (
	messageHeader    = "【药单确认】"
	messageSeparator = "--------------------"

	closingBankUnpaid = "请按合计金额转账，转账后回复凭证以便发货。"
	closingBankPaid   = "已收到付款，我们会尽快为您安排发货，谢谢惠顾。"
	closingCOD        = "货到付款订单请保持电话畅通，签收时请当面核对药品。"
)

// ComposeInput 文案生成入参（与表单字段一一对应）
type ComposeInput struct {
	Items           []models.OrderItem
	ShippingFee     models.Money
	Discount        models.Money
	PatientName     string
	CustomerPhone   string
	ShippingAddress string
	PaymentChannel  string
	PaymentStatus   string
}

// ComposerService 药单文案生成
type ComposerService struct{}

// NewComposerService 创建文案生成服务
func NewComposerService() *ComposerService {
	return &ComposerService{}
}

// qualifies 判断药品行是否计入合计与文案（名称非空且数量大于 0）
func qualifies(item models.OrderItem) bool {
	return strings.TrimSpace(item.Name) != "" && item.Qty > 0
}

// ComputeTotal 计算应付合计：有效行金额求和，加运费减优惠，下限为 0
func (s *ComposerService) ComputeTotal(items []models.OrderItem, fee, discount models.Money) models.Money {
	total := decimal.Zero
	for _, item := range items {
		if !qualifies(item) {
			continue
		}
		total = total.Add(item.Price.Mul(decimal.NewFromFloat(item.Qty)))
	}
	total = total.Add(fee.Decimal).Sub(discount.Decimal)
	if total.IsNegative() {
		total = decimal.Zero
	}
	return models.NewMoneyFromDecimal(total)
}

// ValidateForCompose 生成前校验，按固定顺序返回第一个失败项
func (s *ComposerService) ValidateForCompose(items []models.OrderItem, patientName, shippingAddress, customerPhone string) error {
	hasValid := false
	for _, item := range items {
		if qualifies(item) {
			hasValid = true
			break
		}
	}
	if !hasValid {
		return ErrNoValidItems
	}
	if strings.TrimSpace(patientName) == "" {
		return ErrPatientNameRequired
	}
	if strings.TrimSpace(shippingAddress) == "" {
		return ErrShippingAddressRequired
	}
	if strings.TrimSpace(customerPhone) == "" {
		return ErrCustomerPhoneRequired
	}
	return nil
}

// Compose 校验后生成完整文案，返回文案与应付合计
func (s *ComposerService) Compose(input ComposeInput, profile models.StoreProfile) (string, models.Money, error) {
	if err := s.ValidateForCompose(input.Items, input.PatientName, input.ShippingAddress, input.CustomerPhone); err != nil {
		return "", models.Money{}, err
	}

	total := s.ComputeTotal(input.Items, input.ShippingFee, input.Discount)
	subtotal := s.ComputeTotal(input.Items, models.Money{}, models.Money{})

	lines := make([]string, 0, len(input.Items)+16)
	lines = append(lines, messageHeader, messageSeparator)

	for _, item := range input.Items {
		if !qualifies(item) {
			continue
		}
		lines = append(lines, itemLine(item))
	}
	lines = append(lines, messageSeparator)

	lines = append(lines, "小计："+subtotal.Text())
	if input.ShippingFee.IsPositive() {
		lines = append(lines, "运费："+input.ShippingFee.Text())
	}
	if input.Discount.IsPositive() {
		lines = append(lines, "优惠：-"+input.Discount.Text())
	}
	lines = append(lines, "合计："+total.Text(), messageSeparator)

	lines = append(lines,
		"患者："+strings.TrimSpace(input.PatientName),
		"电话："+strings.TrimSpace(input.CustomerPhone),
		"地址："+strings.TrimSpace(input.ShippingAddress),
	)

	if payment := paymentLines(input.PaymentChannel, input.PaymentStatus); len(payment) > 0 {
		lines = append(lines, messageSeparator)
		lines = append(lines, payment...)
	}

	if closing := closingLine(input.PaymentChannel, input.PaymentStatus); closing != "" {
		lines = append(lines, closing)
	}
	if phone := strings.TrimSpace(profile.ContactPhone); phone != "" {
		lines = append(lines, "如有疑问请联系门店："+phone)
	}

	return joinLines(lines), total, nil
}

// itemLine 生成单个药品行：名称 ×数量 单位（单价/单位）
func itemLine(item models.OrderItem) string {
	name := strings.TrimSpace(item.Name)
	qty := strconv.FormatFloat(item.Qty, 'f', -1, 64)
	unit := strings.TrimSpace(item.Unit)
	if unit == "" {
		return fmt.Sprintf("%s ×%s（%s）", name, qty, item.Price.Text())
	}
	return fmt.Sprintf("%s ×%s %s（%s/%s）", name, qty, unit, item.Price.Text(), unit)
}

func paymentLines(channel, status string) []string {
	lines := make([]string, 0, 2)
	if label := paymentChannelLabel(channel); label != "" {
		lines = append(lines, "付款方式："+label)
	}
	if label := paymentStatusLabel(status); label != "" {
		lines = append(lines, "付款状态："+label)
	}
	return lines
}

func paymentChannelLabel(channel string) string {
	switch strings.TrimSpace(channel) {
	case constants.PaymentChannelBankTransfer:
		return "银行转账"
	case constants.PaymentChannelCOD:
		return "货到付款"
	case "":
		return ""
	default:
		return strings.TrimSpace(channel)
	}
}

func paymentStatusLabel(status string) string {
	switch strings.TrimSpace(status) {
	case constants.PaymentStatusPaid:
		return "已付款"
	case constants.PaymentStatusUnpaid:
		return "未付款"
	case "":
		return ""
	default:
		return strings.TrimSpace(status)
	}
}

// closingLine 按付款方式与状态返回结束语；货到付款不区分状态
func closingLine(channel, status string) string {
	switch strings.TrimSpace(channel) {
	case constants.PaymentChannelBankTransfer:
		if strings.TrimSpace(status) == constants.PaymentStatusPaid {
			return closingBankPaid
		}
		return closingBankUnpaid
	case constants.PaymentChannelCOD:
		return closingCOD
	default:
		return ""
	}
}

// joinLines 去掉空行后用换行符拼接
func joinLines(lines []string) string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return strings.Join(out, "\n")
}
