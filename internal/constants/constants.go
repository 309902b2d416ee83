package constants

// 存储记录键常量
const (
	RecordKeyQuickItems   = "quick_items"
	RecordKeyOrderHistory = "order_history"
	RecordKeyStoreProfile = "store_profile"
)

// 历史记录上限常量
const (
	OrderHistoryMaxEntries = 10
)

// 付款方式常量
const (
	PaymentChannelBankTransfer = "bank_transfer"
	PaymentChannelCOD          = "cod"
)

// 付款状态常量
const (
	PaymentStatusPaid   = "paid"
	PaymentStatusUnpaid = "unpaid"
)

// 状态提示级别常量
const (
	StatusLevelSuccess = "success"
	StatusLevelError   = "error"
)

// 队列常量
const (
	QueueDefault         = "default"
	TaskStatusClear      = "status:timeout_clear"
	TaskHistoryPrune     = "order_history:prune"
	HistoryPruneInterval = 600
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "yd"
)
