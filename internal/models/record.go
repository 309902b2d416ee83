package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Record 本地存储记录表（键 -> JSON 文档）
type Record struct {
	Key       string    `gorm:"primarykey" json:"key"`  // 记录键
	ValueJSON RawJSON   `gorm:"type:json" json:"value"` // 记录内容
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (Record) TableName() string {
	return "records"
}

// RawJSON 原样存取的 JSON 列类型（对象或数组均可）
type RawJSON json.RawMessage

// Value 用于数据库写入
func (j RawJSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return "null", nil
	}
	return string(j), nil
}

// Scan 用于数据库读取
func (j *RawJSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*j = append((*j)[0:0], v...)
		return nil
	case string:
		*j = RawJSON(v)
		return nil
	default:
		return errors.New("unsupported json column type")
	}
}

// MarshalJSON 原样输出
func (j RawJSON) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

// UnmarshalJSON 原样保存
func (j *RawJSON) UnmarshalJSON(data []byte) error {
	*j = append((*j)[0:0], data...)
	return nil
}
