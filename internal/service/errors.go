package service

import "errors"

// 业务错误定义，供 handler 层做错误映射
var (
	ErrNoValidItems            = errors.New("order has no valid items")
	ErrPatientNameRequired     = errors.New("patient name required")
	ErrShippingAddressRequired = errors.New("shipping address required")
	ErrCustomerPhoneRequired   = errors.New("customer phone required")
	ErrOrderNotFound           = errors.New("order not found")
	ErrQuickItemNameRequired   = errors.New("quick item name required")
)
