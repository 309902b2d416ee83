package service

import (
	"sync"
	"time"

	"github.com/yaodan-next/internal/logger"
	"github.com/yaodan-next/internal/queue"
)

// Status 当前状态提示
type Status struct {
	Token   int64     `json:"token"`
	Level   string    `json:"level"`
	Message string    `json:"message"`
	SetAt   time.Time `json:"set_at"`
}

// StatusService 状态提示。每次发布递增 token，延迟清除任务带着
// 发布时的 token 回来，只有 token 仍是当前值时才真正清除，
// 旧任务不会覆盖更新的提示。
type StatusService struct {
	mu         sync.Mutex
	current    *Status
	token      int64
	queue      *queue.Client
	clearDelay time.Duration
}

// NewStatusService 创建状态提示服务
func NewStatusService(queueClient *queue.Client, clearDelay time.Duration) *StatusService {
	if clearDelay <= 0 {
		clearDelay = 3 * time.Second
	}
	return &StatusService{
		queue:      queueClient,
		clearDelay: clearDelay,
	}
}

// Publish 发布新提示并调度延迟清除，返回本次提示的 token
func (s *StatusService) Publish(level, message string) int64 {
	s.mu.Lock()
	s.token++
	token := s.token
	s.current = &Status{
		Token:   token,
		Level:   level,
		Message: message,
		SetAt:   time.Now(),
	}
	s.mu.Unlock()

	s.scheduleClear(token)
	return token
}

// Current 返回当前提示，无提示时返回 nil
func (s *StatusService) Current() *Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	snapshot := *s.current
	return &snapshot
}

// ClearIfCurrent 清除提示；token 已过期时不动当前提示
func (s *StatusService) ClearIfCurrent(token int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil || s.current.Token != token {
		return false
	}
	s.current = nil
	return true
}

// scheduleClear 优先走队列的延迟任务，队列不可用时退回进程内定时器
func (s *StatusService) scheduleClear(token int64) {
	if s.queue.Enabled() {
		err := s.queue.EnqueueStatusClear(queue.StatusClearPayload{Token: token}, s.clearDelay)
		if err == nil {
			return
		}
		logger.Warnw("status_clear_enqueue_failed", "token", token, "error", err)
	}
	time.AfterFunc(s.clearDelay, func() {
		s.ClearIfCurrent(token)
	})
}
