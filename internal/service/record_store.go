package service

import (
	"encoding/json"
	"reflect"

	"github.com/yaodan-next/internal/logger"
	"github.com/yaodan-next/internal/models"
	"github.com/yaodan-next/internal/repository"
)

// RecordStore 本地存储适配层。读写都不向上抛错：
// 读不到或解析失败时保留调用方准备好的默认值，写失败时只记日志。
type RecordStore struct {
	recordRepo repository.RecordRepository
}

// NewRecordStore 创建存储适配层
func NewRecordStore(recordRepo repository.RecordRepository) *RecordStore {
	return &RecordStore{recordRepo: recordRepo}
}

// Load 读取记录并解析到 dest，成功返回 true；失败时不修改 dest
func (s *RecordStore) Load(key string, dest interface{}) bool {
	if s == nil || s.recordRepo == nil {
		return false
	}
	target := reflect.ValueOf(dest)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		logger.Warnw("record_dest_invalid", "key", key)
		return false
	}
	record, err := s.recordRepo.GetByKey(key)
	if err != nil {
		logger.Warnw("record_load_failed", "key", key, "error", err)
		return false
	}
	if record == nil || len(record.ValueJSON) == 0 {
		logger.Debugw("record_load_missing", "key", key)
		return false
	}
	// 先解码到临时值再回填，形状不匹配的记录不会改动 dest
	fresh := reflect.New(target.Elem().Type())
	if err := json.Unmarshal(record.ValueJSON, fresh.Interface()); err != nil {
		logger.Warnw("record_decode_failed", "key", key, "error", err)
		return false
	}
	target.Elem().Set(fresh.Elem())
	return true
}

// Save 序列化并写入记录，失败时只记日志
func (s *RecordStore) Save(key string, value interface{}) {
	if s == nil || s.recordRepo == nil {
		return
	}
	body, err := json.Marshal(value)
	if err != nil {
		logger.Warnw("record_encode_failed", "key", key, "error", err)
		return
	}
	if _, err := s.recordRepo.Upsert(key, models.RawJSON(body)); err != nil {
		logger.Warnw("record_save_failed", "key", key, "error", err)
	}
}
