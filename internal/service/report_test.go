package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"OnShift/internal/model"
)

func makeRecord(id, userID int64, user *model.User, checkIn time.Time, hours float64) *model.Attendance {
	rec := &model.Attendance{
		BaseModel: model.BaseModel{ID: id},
		UserID:    userID,
		CheckIn:   checkIn,
		User:      user,
		IsPresent: true,
	}
	if hours > 0 {
		out := checkIn.Add(time.Duration(hours * float64(time.Hour)))
		rec.CheckOut = &out
		rec.IsPresent = false
	}
	return rec
}

func TestAggregateByUserGroupsInFirstSeenOrder(t *testing.T) {
	alice := &model.User{PublicID: 101, FullName: "Alice"}
	bob := &model.User{PublicID: 102, FullName: "Bob"}

	day := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	records := []*model.Attendance{
		makeRecord(1, 1, alice, day, 8),
		makeRecord(2, 2, bob, day.Add(time.Hour), 4),
		makeRecord(3, 1, alice, day.AddDate(0, 0, 1), 6),
	}

	groups := AggregateByUser(records)

	require.Len(t, groups, 2)
	assert.Equal(t, "Alice", groups[0].User.FullName)
	assert.Equal(t, "Bob", groups[1].User.FullName)

	assert.Equal(t, 14.0, groups[0].TotalHours)
	assert.Equal(t, 2, groups[0].TotalDays)
	assert.Len(t, groups[0].Records, 2)

	assert.Equal(t, 4.0, groups[1].TotalHours)
	assert.Equal(t, 1, groups[1].TotalDays)
}

func TestAggregateByUserOpenIntervalCountsZeroHours(t *testing.T) {
	alice := &model.User{PublicID: 101, FullName: "Alice"}

	day := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	records := []*model.Attendance{
		makeRecord(1, 1, alice, day, 8),
		makeRecord(2, 1, alice, day.AddDate(0, 0, 1), 0), // 还没下班
	}

	groups := AggregateByUser(records)

	require.Len(t, groups, 1)
	assert.Equal(t, 8.0, groups[0].TotalHours)
	// 未下班的区间时长按 0 计，但仍然占一条
	assert.Equal(t, 2, groups[0].TotalDays)
	require.Len(t, groups[0].Records, 2)
	assert.Nil(t, groups[0].Records[1].DurationHours)
	assert.True(t, groups[0].Records[1].Present)
}

func TestAggregateByUserTotalDaysIsRecordCount(t *testing.T) {
	alice := &model.User{PublicID: 101, FullName: "Alice"}

	day := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	records := []*model.Attendance{
		makeRecord(1, 1, alice, day, 4),
		makeRecord(2, 1, alice, day.Add(6*time.Hour), 3), // 同一天第二段也算一条
	}

	groups := AggregateByUser(records)

	require.Len(t, groups, 1)
	assert.Equal(t, 7.0, groups[0].TotalHours)
	assert.Equal(t, 2, groups[0].TotalDays)
}

func TestAggregateByUserEmptyInput(t *testing.T) {
	groups := AggregateByUser(nil)
	assert.Empty(t, groups)
}

func TestAggregateByUserRoundsTotals(t *testing.T) {
	alice := &model.User{PublicID: 101, FullName: "Alice"}

	day := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	records := []*model.Attendance{
		makeRecord(1, 1, alice, day, 7.0/3.0), // 2.3333... 小时
		makeRecord(2, 1, alice, day.AddDate(0, 0, 1), 7.0/3.0),
	}

	groups := AggregateByUser(records)

	require.Len(t, groups, 1)
	// 单条 2.33，两条合计也保留两位
	assert.Equal(t, 4.66, groups[0].TotalHours)
}

func TestAggregateByUserIdempotent(t *testing.T) {
	alice := &model.User{PublicID: 101, FullName: "Alice"}
	day := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	records := []*model.Attendance{
		makeRecord(1, 1, alice, day, 8),
	}

	first := AggregateByUser(records)
	second := AggregateByUser(records)

	assert.Equal(t, first, second)
}

func TestAggregateByUserNineToFiveThirty(t *testing.T) {
	alice := &model.User{PublicID: 101, FullName: "Alice"}
	checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	records := []*model.Attendance{
		makeRecord(1, 1, alice, checkIn, 8.5), // 09:00 -> 17:30
	}

	groups := AggregateByUser(records)

	require.Len(t, groups, 1)
	assert.Equal(t, 8.5, groups[0].TotalHours)
	require.NotNil(t, groups[0].Records[0].DurationHours)
	assert.Equal(t, 8.5, *groups[0].Records[0].DurationHours)
}
