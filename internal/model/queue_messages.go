package model

// AttendanceEventMessage 打卡事件消息，toggle 成功后投递
type AttendanceEventMessage struct {
	MessageID  string `json:"message_id"` // 消息唯一ID，用于幂等性检查
	UserID     int64  `json:"user_id"`
	RecordID   int64  `json:"record_id"`
	Action     string `json:"action"`      // check_in / check_out
	OccurredAt string `json:"occurred_at"` // RFC3339
}
