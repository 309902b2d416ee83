package service

import (
	"strings"

	"github.com/yaodan-next/internal/constants"
	"github.com/yaodan-next/internal/models"
)

// StoreProfileService 门店信息维护
type StoreProfileService struct {
	store    *RecordStore
	defaults models.StoreProfile
}

// NewStoreProfileService 创建门店信息服务
func NewStoreProfileService(store *RecordStore, defaults models.StoreProfile) *StoreProfileService {
	return &StoreProfileService{store: store, defaults: defaults}
}

// Get 返回门店信息，缺失字段以默认值补齐
func (s *StoreProfileService) Get() models.StoreProfile {
	profile := models.StoreProfile{}
	s.store.Load(constants.RecordKeyStoreProfile, &profile)
	if strings.TrimSpace(profile.ContactPhone) == "" {
		profile.ContactPhone = strings.TrimSpace(s.defaults.ContactPhone)
	}
	return profile
}

// Update 保存门店信息并返回保存后的内容
func (s *StoreProfileService) Update(profile models.StoreProfile) models.StoreProfile {
	profile.ContactPhone = strings.TrimSpace(profile.ContactPhone)
	s.store.Save(constants.RecordKeyStoreProfile, profile)
	return profile
}
