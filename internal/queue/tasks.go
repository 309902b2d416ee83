package queue

import (
	"encoding/json"

	"github.com/yaodan-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskStatusClear 状态提示超时清除任务
	TaskStatusClear = constants.TaskStatusClear
	// TaskHistoryPrune 历史订单裁剪任务
	TaskHistoryPrune = constants.TaskHistoryPrune
)

// StatusClearPayload 状态提示清除任务载荷
type StatusClearPayload struct {
	Token int64 `json:"token"`
}

// HistoryPrunePayload 历史订单裁剪任务载荷
type HistoryPrunePayload struct {
	Reason string `json:"reason,omitempty"`
}

// NewStatusClearTask 创建状态提示清除任务
func NewStatusClearTask(payload StatusClearPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskStatusClear, body), nil
}

// NewHistoryPruneTask 创建历史订单裁剪任务
func NewHistoryPruneTask(payload HistoryPrunePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskHistoryPrune, body), nil
}
