package handler

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/app"

	"OnShift/internal/middleware"
	"OnShift/internal/model/dto"
	"OnShift/internal/service"
	"OnShift/pkg/response"
)

// Toggle 打卡（上班/下班）
// POST /v1/attendance/check-in-out
func Toggle(ctx context.Context, c *app.RequestContext) {
	userID, ok := middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, fmt.Errorf("user ID not found in context"))
		return
	}

	var req dto.ToggleRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	attendanceService := service.Attendance()
	result, err := attendanceService.Toggle(ctx, userID, req.Action)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// Dashboard 首页数据，按角色裁剪可见范围
// GET /v1/dashboard
func Dashboard(ctx context.Context, c *app.RequestContext) {
	userID, ok := middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, fmt.Errorf("user ID not found in context"))
		return
	}
	role, _ := middleware.GetUserRole(ctx, c)

	attendanceService := service.Attendance()
	result, err := attendanceService.Dashboard(ctx, userID, role)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
