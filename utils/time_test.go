package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODate(t *testing.T) {
	got, err := ParseISODate("2026-03-02", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseISODate("02/03/2026", time.UTC)
	assert.Error(t, err)

	_, err = ParseISODate("", time.UTC)
	assert.Error(t, err)
}

func TestParseISODateHonorsLocation(t *testing.T) {
	shanghai, err := time.LoadLocation("Asia/Shanghai")
	require.NoError(t, err)

	got, err := ParseISODate("2026-03-02", shanghai)
	require.NoError(t, err)
	assert.Equal(t, shanghai, got.Location())
	// 上海零点是 UTC 前一天 16 点
	assert.Equal(t, time.Date(2026, 3, 1, 16, 0, 0, 0, time.UTC), got.UTC())
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2026, 3, 2, 15, 42, 7, 123, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), StartOfDay(ts, time.UTC))
}

func TestStartOfMonth(t *testing.T) {
	ts := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(ts, time.UTC))
}

func TestEndOfDayExclusive(t *testing.T) {
	ts := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), EndOfDayExclusive(ts, time.UTC))

	// 月末翻页
	eom := time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), EndOfDayExclusive(eom, time.UTC))
}

func TestValidateUsername(t *testing.T) {
	assert.True(t, ValidateUsername("alice"))
	assert.True(t, ValidateUsername("bob.li-01_x"))

	assert.False(t, ValidateUsername("ab")) // 太短
	assert.False(t, ValidateUsername("has space"))
	assert.False(t, ValidateUsername("带中文"))
	assert.False(t, ValidateUsername(""))
	assert.False(t, ValidateUsername(strings.Repeat("a", 65))) // 太长
}
