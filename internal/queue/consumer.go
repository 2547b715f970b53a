package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gorm.io/gorm"

	"OnShift/internal/cache"
	"OnShift/internal/model"
	"OnShift/storage/database"
	"OnShift/storage/mq"
)

// StartAllConsumers 启动所有消费者，阻塞直到 ctx 取消
func StartAllConsumers(ctx context.Context) error {
	return mq.Consume(ctx, mq.ConsumeOptions{
		Queue:         mq.AttendanceAuditQueue,
		ConsumerTag:   "attendance-audit-worker",
		PrefetchCount: 10,
		Handler:       handleAttendanceEvent,
	})
}

// handleAttendanceEvent 消费考勤事件，落审计表。
// Redis SETNX 做幂等标记，event_id 唯一索引兜底，两层都过才算重复。
func handleAttendanceEvent(body []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var message model.AttendanceEventMessage
	if err := json.Unmarshal(body, &message); err != nil {
		// 消息格式坏了重试也没用，直接吞掉
		hlog.Errorf("Failed to unmarshal attendance event, dropping: %v", err)
		return nil
	}

	acquired, err := cache.TryMarkMessageProcessing(ctx, message.MessageID, 0)
	if err != nil {
		return fmt.Errorf("failed to check message dedup: %w", err)
	}
	if !acquired {
		hlog.Infof("Skipping duplicate attendance event: message_id=%s", message.MessageID)
		return nil
	}

	occurredAt, err := time.Parse(time.RFC3339, message.OccurredAt)
	if err != nil {
		hlog.Errorf("Invalid occurred_at in attendance event, dropping: message_id=%s, error=%v",
			message.MessageID, err)
		return nil
	}

	event := &model.AttendanceEvent{
		EventID:    message.MessageID,
		UserID:     message.UserID,
		RecordID:   message.RecordID,
		Action:     message.Action,
		OccurredAt: occurredAt,
	}

	if err := database.DB().WithContext(ctx).Create(event).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			hlog.Infof("Attendance event already persisted: event_id=%s", message.MessageID)
			return nil
		}
		// 失败解除标记，让 requeue 后能重试
		if unmarkErr := cache.UnmarkMessageProcessing(ctx, message.MessageID); unmarkErr != nil {
			hlog.Errorf("Failed to unmark message: message_id=%s, error=%v", message.MessageID, unmarkErr)
		}
		return fmt.Errorf("failed to persist attendance event: %w", err)
	}

	if err := cache.MarkMessageProcessed(ctx, message.MessageID, 0); err != nil {
		hlog.Warnf("Failed to mark message processed: message_id=%s, error=%v", message.MessageID, err)
	}

	hlog.Infof("Persisted attendance event: event_id=%s, user_id=%d, action=%s",
		message.MessageID, message.UserID, message.Action)
	return nil
}
