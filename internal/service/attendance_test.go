package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"OnShift/internal/model"
	"OnShift/pkg/errors"
)

func TestValidateToggle(t *testing.T) {
	// 合法转移
	assert.NoError(t, ValidateToggle(model.ActionCheckIn, false))
	assert.NoError(t, ValidateToggle(model.ActionCheckOut, true))

	// 状态对不上
	assert.Equal(t, errors.AlreadyCheckedIn, ValidateToggle(model.ActionCheckIn, true))
	assert.Equal(t, errors.NotCheckedIn, ValidateToggle(model.ActionCheckOut, false))

	// 非法动作，不看状态
	assert.Equal(t, errors.InvalidAction, ValidateToggle("", false))
	assert.Equal(t, errors.InvalidAction, ValidateToggle("toggle", true))
}
