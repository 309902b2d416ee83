package service

import (
	"strings"

	"github.com/yaodan-next/internal/constants"
	"github.com/yaodan-next/internal/models"
)

// QuickItemService 常用药品列表维护
type QuickItemService struct {
	store *RecordStore
}

// NewQuickItemService 创建常用药品服务
func NewQuickItemService(store *RecordStore) *QuickItemService {
	return &QuickItemService{store: store}
}

// List 返回常用药品列表（读不到时为空列表）
func (s *QuickItemService) List() []models.QuickItem {
	items := make([]models.QuickItem, 0)
	s.store.Load(constants.RecordKeyQuickItems, &items)
	return items
}

// Add 追加常用药品（允许重复，保持加入顺序）
func (s *QuickItemService) Add(name, unit string) ([]models.QuickItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrQuickItemNameRequired
	}
	items := s.List()
	items = append(items, models.QuickItem{
		Name: name,
		Unit: strings.TrimSpace(unit),
	})
	s.store.Save(constants.RecordKeyQuickItems, items)
	return items, nil
}

// Remove 按位置删除常用药品，位置越界时不做任何修改
func (s *QuickItemService) Remove(index int) []models.QuickItem {
	items := s.List()
	if index < 0 || index >= len(items) {
		return items
	}
	items = append(items[:index], items[index+1:]...)
	s.store.Save(constants.RecordKeyQuickItems, items)
	return items
}
