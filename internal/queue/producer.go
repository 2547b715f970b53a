package queue

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"

	"OnShift/internal/model"
	"OnShift/storage/mq"
)

// PublishAttendanceEvent 打卡成功后发布考勤事件，worker 异步落审计表。
// 发布失败只记日志不回滚，打卡结果以数据库为准。
func PublishAttendanceEvent(ctx context.Context, userID, recordID int64, action model.ToggleAction, occurredAt time.Time) {
	message := model.AttendanceEventMessage{
		MessageID:  uuid.New().String(),
		UserID:     userID,
		RecordID:   recordID,
		Action:     string(action),
		OccurredAt: occurredAt.UTC().Format(time.RFC3339),
	}

	if err := mq.PublishMessage(mq.AttendanceExchange, mq.AttendanceEventRoutingKey, message); err != nil {
		hlog.CtxErrorf(ctx, "Failed to publish attendance event: message_id=%s, user_id=%d, error=%v",
			message.MessageID, userID, err)
		return
	}

	hlog.CtxDebugf(ctx, "Published attendance event: message_id=%s, user_id=%d, action=%s",
		message.MessageID, userID, message.Action)
}
