package service

import (
	"testing"
	"time"

	"github.com/yaodan-next/internal/constants"
)

func TestStatusPublishAndCurrent(t *testing.T) {
	svc := NewStatusService(nil, time.Hour)

	token := svc.Publish(constants.StatusLevelSuccess, "药单已生成")
	current := svc.Current()
	if current == nil {
		t.Fatalf("expected current status after publish")
	}
	if current.Token != token || current.Level != constants.StatusLevelSuccess || current.Message != "药单已生成" {
		t.Fatalf("unexpected current status: %+v", current)
	}
}

func TestStatusTokensIncrease(t *testing.T) {
	svc := NewStatusService(nil, time.Hour)

	first := svc.Publish(constants.StatusLevelSuccess, "第一条")
	second := svc.Publish(constants.StatusLevelError, "第二条")
	if second <= first {
		t.Fatalf("tokens should increase: first=%d second=%d", first, second)
	}
}

func TestStaleClearDoesNotWipeNewerStatus(t *testing.T) {
	svc := NewStatusService(nil, time.Hour)

	stale := svc.Publish(constants.StatusLevelSuccess, "旧提示")
	svc.Publish(constants.StatusLevelError, "新提示")

	if svc.ClearIfCurrent(stale) {
		t.Fatalf("stale token should not clear")
	}
	current := svc.Current()
	if current == nil || current.Message != "新提示" {
		t.Fatalf("newer status should survive stale clear: %+v", current)
	}
}

func TestClearIfCurrentMatchingToken(t *testing.T) {
	svc := NewStatusService(nil, time.Hour)

	token := svc.Publish(constants.StatusLevelSuccess, "提示")
	if !svc.ClearIfCurrent(token) {
		t.Fatalf("matching token should clear")
	}
	if svc.Current() != nil {
		t.Fatalf("status should be empty after clear")
	}
	if svc.ClearIfCurrent(token) {
		t.Fatalf("second clear with same token should be no-op")
	}
}
