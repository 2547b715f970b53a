package model

import (
	"math"
	"time"
)

// ToggleAction 打卡动作枚举
type ToggleAction string

const (
	ActionCheckIn  ToggleAction = "check_in"
	ActionCheckOut ToggleAction = "check_out"
)

// ValidAction 校验动作取值
func ValidAction(a string) bool {
	return a == string(ActionCheckIn) || a == string(ActionCheckOut)
}

// Attendance 考勤区间模型，一行一个在岗区间
//
// 不变式：
//   - 每个用户最多一条 is_present = true 的记录（迁移时建了部分唯一索引兜底）
//   - is_present 和 check_out 永远在同一条 UPDATE 里一起写，
//     对外的状态一律从 check_out 是否为空推导
type Attendance struct {
	BaseModel
	UserID   int64      `gorm:"not null;index:idx_attendances_user_checkin" json:"user_id"`
	CheckIn  time.Time  `gorm:"type:timestamptz;not null;index:idx_attendances_user_checkin" json:"check_in"`
	CheckOut *time.Time `gorm:"type:timestamptz" json:"check_out,omitempty"`
	// 冗余标记列，供部分唯一索引和 open-interval 查询使用
	IsPresent bool `gorm:"not null;default:true" json:"is_present"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (Attendance) TableName() string {
	return "attendances"
}

// Open 是否还在岗
func (a *Attendance) Open() bool {
	return a.CheckOut == nil
}

// DurationHours 在岗时长（小时，两位小数）；未下班返回 nil
func (a *Attendance) DurationHours() *float64 {
	if a.CheckOut == nil {
		return nil
	}
	hours := a.CheckOut.Sub(a.CheckIn).Hours()
	rounded := math.Round(hours*100) / 100
	return &rounded
}

// DurationOrZero 聚合用的 null-safe 时长，未下班按 0 计
func (a *Attendance) DurationOrZero() float64 {
	if d := a.DurationHours(); d != nil {
		return *d
	}
	return 0
}
