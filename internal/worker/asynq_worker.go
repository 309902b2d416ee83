package worker

import (
	"context"
	"encoding/json"

	"github.com/yaodan-next/internal/logger"
	"github.com/yaodan-next/internal/provider"
	"github.com/yaodan-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskStatusClear, c.handleStatusClear)
	mux.HandleFunc(queue.TaskHistoryPrune, c.handleHistoryPrune)
}

func (c *Consumer) handleStatusClear(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_status_clear_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.StatusClearPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_status_clear_unmarshal_failed", "error", err)
		return err
	}
	if payload.Token <= 0 {
		logger.Debugw("worker_status_clear_skip_invalid_payload", "token", payload.Token)
		return nil
	}
	if c.StatusService == nil {
		logger.Warnw("worker_status_clear_skip_status_service_nil", "token", payload.Token)
		return nil
	}
	if !c.StatusService.ClearIfCurrent(payload.Token) {
		logger.Debugw("worker_status_clear_skip_stale_token", "token", payload.Token)
	}
	return nil
}

func (c *Consumer) handleHistoryPrune(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_history_prune_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.HistoryPrunePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_history_prune_unmarshal_failed", "error", err)
		return err
	}
	if c.HistoryService == nil {
		logger.Warnw("worker_history_prune_skip_history_service_nil")
		return nil
	}
	removed := c.HistoryService.Prune()
	if removed > 0 {
		logger.Infow("worker_history_prune_done", "removed", removed, "reason", payload.Reason)
	}
	return nil
}
