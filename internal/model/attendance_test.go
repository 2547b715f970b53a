package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceOpen(t *testing.T) {
	now := time.Now().UTC()

	open := &Attendance{CheckIn: now, CheckOut: nil, IsPresent: true}
	assert.True(t, open.Open())

	out := now.Add(8 * time.Hour)
	closed := &Attendance{CheckIn: now, CheckOut: &out, IsPresent: false}
	assert.False(t, closed.Open())
}

func TestDurationHoursOpenIntervalIsNil(t *testing.T) {
	record := &Attendance{CheckIn: time.Now().UTC(), IsPresent: true}

	assert.Nil(t, record.DurationHours())
	assert.Equal(t, 0.0, record.DurationOrZero())
}

func TestDurationHoursClosedInterval(t *testing.T) {
	checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(8*time.Hour + 30*time.Minute)

	record := &Attendance{CheckIn: checkIn, CheckOut: &checkOut}

	hours := record.DurationHours()
	require.NotNil(t, hours)
	assert.Equal(t, 8.5, *hours)
	assert.Equal(t, 8.5, record.DurationOrZero())
}

func TestDurationHoursRounding(t *testing.T) {
	checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	// 7 小时 20 分 = 7.333... 小时，保留两位
	checkOut := checkIn.Add(7*time.Hour + 20*time.Minute)

	record := &Attendance{CheckIn: checkIn, CheckOut: &checkOut}

	hours := record.DurationHours()
	require.NotNil(t, hours)
	assert.Equal(t, 7.33, *hours)
}

func TestValidAction(t *testing.T) {
	assert.True(t, ValidAction("check_in"))
	assert.True(t, ValidAction("check_out"))
	assert.False(t, ValidAction(""))
	assert.False(t, ValidAction("checkin"))
	assert.False(t, ValidAction("toggle"))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole("admin"))
	assert.True(t, ValidRole("worker"))
	assert.False(t, ValidRole("manager"))
	assert.False(t, ValidRole(""))
}
