package dto

// ========== Report 相关 DTO ==========

// ReportFilter 报表筛选条件，全部可选
type ReportFilter struct {
	StartDate string `query:"start_date"` // ISO date，含当天
	EndDate   string `query:"end_date"`   // ISO date，含当天
	UserID    string `query:"user_id"`    // public_id
}

// UserReport 单个员工的聚合结果
type UserReport struct {
	User       UserItem         `json:"user"`
	TotalHours float64          `json:"total_hours"`
	TotalDays  int              `json:"total_days"`
	Records    []AttendanceItem `json:"records"`
}

// ReportData 报表响应，分组按首次出现顺序排列
type ReportData struct {
	Filter ReportFilter  `json:"filter"`
	Groups []*UserReport `json:"groups"`
}
