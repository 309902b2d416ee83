package repository

import (
	"errors"

	"github.com/yaodan-next/internal/models"

	"gorm.io/gorm"
)

// RecordRepository 存储记录数据访问接口
type RecordRepository interface {
	GetByKey(key string) (*models.Record, error)
	Upsert(key string, value models.RawJSON) (*models.Record, error)
}

// GormRecordRepository GORM 实现
type GormRecordRepository struct {
	db *gorm.DB
}

// NewRecordRepository 创建存储记录仓库
func NewRecordRepository(db *gorm.DB) *GormRecordRepository {
	return &GormRecordRepository{db: db}
}

// GetByKey 获取记录
func (r *GormRecordRepository) GetByKey(key string) (*models.Record, error) {
	var record models.Record
	if err := r.db.Where("key = ?", key).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// Upsert 更新或创建记录
func (r *GormRecordRepository) Upsert(key string, value models.RawJSON) (*models.Record, error) {
	record, err := r.GetByKey(key)
	if err != nil {
		return nil, err
	}
	if record == nil {
		record = &models.Record{
			Key:       key,
			ValueJSON: value,
		}
		if err := r.db.Create(record).Error; err != nil {
			return nil, err
		}
		return record, nil
	}

	record.ValueJSON = value
	if err := r.db.Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}
