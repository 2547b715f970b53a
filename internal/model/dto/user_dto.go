package dto

// ========== User 相关 DTO ==========

// UserItem 员工基础信息
type UserItem struct {
	ID       string `json:"id"` // public_id，字符串格式
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Position string `json:"position"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

// UserDetailData 员工详情（管理员视图）：全部考勤记录 + 当月统计
type UserDetailData struct {
	User        UserItem         `json:"user"`
	Records     []AttendanceItem `json:"records"`
	MonthTotals MonthTotals      `json:"month_totals"`
}

// MonthTotals 当月统计，月份按服务时区切
type MonthTotals struct {
	Month      string  `json:"month"` // "2006-01"
	TotalHours float64 `json:"total_hours"`
	TotalDays  int     `json:"total_days"`
}

// UserListData 员工列表（报表筛选用）
type UserListData struct {
	Users []UserItem `json:"users"`
}
