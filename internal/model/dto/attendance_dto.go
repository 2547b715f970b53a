package dto

import "time"

// ========== Attendance 相关 DTO ==========

// ToggleRequest 打卡请求
type ToggleRequest struct {
	Action string `json:"action" binding:"required"` // check_in / check_out
}

// AttendanceItem 单条考勤区间
type AttendanceItem struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	FullName      string     `json:"full_name,omitempty"`
	CheckIn       time.Time  `json:"check_in"`
	CheckOut      *time.Time `json:"check_out,omitempty"`
	DurationHours *float64   `json:"duration_hours,omitempty"` // 未下班为 null
	Present       bool       `json:"present"`
}

// ToggleData 打卡响应
type ToggleData struct {
	Action string         `json:"action"`
	Record AttendanceItem `json:"record"`
}

// DashboardData 首页数据，按角色裁剪可见范围
type DashboardData struct {
	CurrentTime   time.Time        `json:"current_time"`
	Role          string           `json:"role"`
	OpenIntervals []AttendanceItem `json:"open_intervals"`
	Recent        []AttendanceItem `json:"recent"`
}
