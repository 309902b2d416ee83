package models

import (
	"time"
)

// OrderItem 订单药品行（持久化形态，不带行ID）
type OrderItem struct {
	Name  string  `json:"name"`  // 药品名称
	Qty   float64 `json:"qty"`   // 数量
	Unit  string  `json:"unit"`  // 单位（盒/瓶/支…）
	Price Money   `json:"price"` // 单价
}

// EditItem 编辑中的药品行（临时行ID仅在会话内有效，不落库）
type EditItem struct {
	ID string `json:"id"` // 临时行ID（uuid）
	OrderItem
}

// QuickItem 常用药品（有序，允许重复）
type QuickItem struct {
	Name string `json:"name"` // 药品名称
	Unit string `json:"unit"` // 默认单位
}

// StoreProfile 门店信息
type StoreProfile struct {
	ContactPhone string `json:"contact_phone"` // 门店联系电话
}

// OrderSnapshot 历史订单快照（CreatedAt 兼作排序与标识；FinalPrice 保存时冻结，不再重算）
type OrderSnapshot struct {
	CreatedAt       time.Time   `json:"created_at"`
	PatientName     string      `json:"patient_name"`
	CustomerPhone   string      `json:"customer_phone"`
	ShippingAddress string      `json:"shipping_address"`
	ShippingFee     Money       `json:"shipping_fee"`
	Discount        Money       `json:"discount"`
	PaymentChannel  string      `json:"payment_channel"`
	PaymentStatus   string      `json:"payment_status"`
	Items           []OrderItem `json:"items"`
	FinalPrice      Money       `json:"final_price"`
}
