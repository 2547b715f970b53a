package model

import "time"

// AttendanceEvent 打卡审计流水，由 worker 从队列落库
type AttendanceEvent struct {
	BaseModel
	EventID    string    `gorm:"uniqueIndex;type:varchar(64);not null" json:"event_id"`
	UserID     int64     `gorm:"not null;index" json:"user_id"`
	RecordID   int64     `gorm:"not null" json:"record_id"`
	Action     string    `gorm:"type:varchar(16);not null" json:"action"` // check_in / check_out
	OccurredAt time.Time `gorm:"type:timestamptz;not null" json:"occurred_at"`
}

// TableName 指定表名
func (AttendanceEvent) TableName() string {
	return "attendance_events"
}
