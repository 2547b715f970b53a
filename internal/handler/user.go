package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"OnShift/internal/service"
	"OnShift/pkg/response"
)

// GetUserDetail 员工详情，管理员专用
// GET /v1/users/:user_id
func GetUserDetail(ctx context.Context, c *app.RequestContext) {
	userID := c.Param("user_id")

	userService := service.User()
	result, err := userService.GetUserDetail(ctx, userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// ListUsers 员工列表，报表筛选下拉用
// GET /v1/users
func ListUsers(ctx context.Context, c *app.RequestContext) {
	userService := service.User()
	result, err := userService.ListWorkers(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
