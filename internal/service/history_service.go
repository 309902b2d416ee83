package service

import (
	"strings"
	"time"

	"github.com/yaodan-next/internal/constants"
	"github.com/yaodan-next/internal/logger"
	"github.com/yaodan-next/internal/models"

	"github.com/google/uuid"
)

// HistoryService 历史订单维护。列表按保存时间倒序，最新在前，
// 超出上限时淘汰最旧的一条。
type HistoryService struct {
	store      *RecordStore
	composer   *ComposerService
	maxEntries int
}

// NewHistoryService 创建历史订单服务
func NewHistoryService(store *RecordStore, composer *ComposerService, maxEntries int) *HistoryService {
	if maxEntries <= 0 {
		maxEntries = constants.OrderHistoryMaxEntries
	}
	return &HistoryService{
		store:      store,
		composer:   composer,
		maxEntries: maxEntries,
	}
}

// List 返回历史订单列表（读不到时为空列表）
func (s *HistoryService) List() []models.OrderSnapshot {
	history := make([]models.OrderSnapshot, 0)
	s.store.Load(constants.RecordKeyOrderHistory, &history)
	return history
}

// SaveOrder 校验后冻结快照写入历史：置顶新单并裁剪到上限
func (s *HistoryService) SaveOrder(input ComposeInput) (*models.OrderSnapshot, []models.OrderSnapshot, error) {
	if err := s.composer.ValidateForCompose(input.Items, input.PatientName, input.ShippingAddress, input.CustomerPhone); err != nil {
		return nil, nil, err
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		if !qualifies(item) {
			continue
		}
		item.Name = strings.TrimSpace(item.Name)
		item.Unit = strings.TrimSpace(item.Unit)
		items = append(items, item)
	}

	snapshot := models.OrderSnapshot{
		CreatedAt:       time.Now(),
		PatientName:     strings.TrimSpace(input.PatientName),
		CustomerPhone:   strings.TrimSpace(input.CustomerPhone),
		ShippingAddress: strings.TrimSpace(input.ShippingAddress),
		ShippingFee:     input.ShippingFee,
		Discount:        input.Discount,
		PaymentChannel:  strings.TrimSpace(input.PaymentChannel),
		PaymentStatus:   strings.TrimSpace(input.PaymentStatus),
		Items:           items,
		FinalPrice:      s.composer.ComputeTotal(input.Items, input.ShippingFee, input.Discount),
	}

	history := append([]models.OrderSnapshot{snapshot}, s.List()...)
	if len(history) > s.maxEntries {
		history = history[:s.maxEntries]
	}
	s.store.Save(constants.RecordKeyOrderHistory, history)
	return &snapshot, history, nil
}

// Delete 按位置删除历史订单，位置越界时不做任何修改
func (s *HistoryService) Delete(index int) []models.OrderSnapshot {
	history := s.List()
	if index < 0 || index >= len(history) {
		return history
	}
	history = append(history[:index], history[index+1:]...)
	s.store.Save(constants.RecordKeyOrderHistory, history)
	return history
}

// Load 读取指定历史订单：快照原样返回，药品行重新生成临时行ID
func (s *HistoryService) Load(index int) (*models.OrderSnapshot, []models.EditItem, error) {
	history := s.List()
	if index < 0 || index >= len(history) {
		return nil, nil, ErrOrderNotFound
	}
	snapshot := history[index]
	editItems := make([]models.EditItem, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		editItems = append(editItems, models.EditItem{
			ID:        uuid.NewString(),
			OrderItem: item,
		})
	}
	return &snapshot, editItems, nil
}

// Prune 重新断言历史上限（记录被外部改写时兜底），返回删除条数
func (s *HistoryService) Prune() int {
	history := s.List()
	if len(history) <= s.maxEntries {
		return 0
	}
	removed := len(history) - s.maxEntries
	history = history[:s.maxEntries]
	s.store.Save(constants.RecordKeyOrderHistory, history)
	logger.Infow("order_history_pruned", "removed", removed, "max_entries", s.maxEntries)
	return removed
}
