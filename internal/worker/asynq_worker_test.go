package worker

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/yaodan-next/internal/constants"
	"github.com/yaodan-next/internal/models"
	"github.com/yaodan-next/internal/provider"
	"github.com/yaodan-next/internal/queue"
	"github.com/yaodan-next/internal/service"
)

type memoryRecordRepo struct {
	data map[string]models.RawJSON
}

func newMemoryRecordRepo() *memoryRecordRepo {
	return &memoryRecordRepo{data: make(map[string]models.RawJSON)}
}

func (r *memoryRecordRepo) GetByKey(key string) (*models.Record, error) {
	value, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	return &models.Record{Key: key, ValueJSON: value}, nil
}

func (r *memoryRecordRepo) Upsert(key string, value models.RawJSON) (*models.Record, error) {
	r.data[key] = value
	return &models.Record{Key: key, ValueJSON: value}, nil
}

func newTestConsumer(repo *memoryRecordRepo) *Consumer {
	store := service.NewRecordStore(repo)
	composer := service.NewComposerService()
	return NewConsumer(&provider.Container{
		RecordStore:    store,
		HistoryService: service.NewHistoryService(store, composer, 10),
		StatusService:  service.NewStatusService(nil, time.Hour),
	})
}

func TestHandleStatusClearMatchingToken(t *testing.T) {
	consumer := newTestConsumer(newMemoryRecordRepo())

	token := consumer.StatusService.Publish(constants.StatusLevelSuccess, "药单已生成")
	task, err := queue.NewStatusClearTask(queue.StatusClearPayload{Token: token})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}

	if err := consumer.handleStatusClear(context.Background(), task); err != nil {
		t.Fatalf("handleStatusClear failed: %v", err)
	}
	if consumer.StatusService.Current() != nil {
		t.Fatalf("status should be cleared for matching token")
	}
}

func TestHandleStatusClearStaleToken(t *testing.T) {
	consumer := newTestConsumer(newMemoryRecordRepo())

	stale := consumer.StatusService.Publish(constants.StatusLevelSuccess, "第一条")
	consumer.StatusService.Publish(constants.StatusLevelError, "第二条")

	task, err := queue.NewStatusClearTask(queue.StatusClearPayload{Token: stale})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleStatusClear(context.Background(), task); err != nil {
		t.Fatalf("handleStatusClear failed: %v", err)
	}

	current := consumer.StatusService.Current()
	if current == nil || current.Message != "第二条" {
		t.Fatalf("stale token should not clear newer status, got %+v", current)
	}
}

func TestHandleHistoryPruneOversizedHistory(t *testing.T) {
	repo := newMemoryRecordRepo()
	consumer := newTestConsumer(repo)

	history := make([]models.OrderSnapshot, 13)
	for i := range history {
		history[i] = models.OrderSnapshot{PatientName: "患者", CreatedAt: time.Now()}
	}
	raw, err := json.Marshal(history)
	if err != nil {
		t.Fatalf("marshal history failed: %v", err)
	}
	repo.data[constants.RecordKeyOrderHistory] = models.RawJSON(raw)

	task, err := queue.NewHistoryPruneTask(queue.HistoryPrunePayload{Reason: "test"})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleHistoryPrune(context.Background(), task); err != nil {
		t.Fatalf("handleHistoryPrune failed: %v", err)
	}

	if got := len(consumer.HistoryService.List()); got != 10 {
		t.Fatalf("history length after prune want 10 got %d", got)
	}
}
