package utils

import (
	"time"
)

// ParseISODate 解析 ISO 日期（YYYY-MM-DD），按给定时区解释
func ParseISODate(dateStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, loc)
}

// StartOfDay 当天零点
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// StartOfMonth 当月一号零点，"本月统计"按这个切
func StartOfMonth(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
}

// EndOfDayExclusive 次日零点，区间查询用 [start, end)
func EndOfDayExclusive(t time.Time, loc *time.Location) time.Time {
	return StartOfDay(t, loc).AddDate(0, 0, 1)
}
