package middleware

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"OnShift/internal/model"
	"OnShift/pkg/errors"
	"OnShift/pkg/response"
)

// RequireRole 角色门禁，挂在 AuthMiddleware 之后。
// 角色来自 JWT claims，不回表。
func RequireRole(roles ...model.Role) app.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[string(r)] = struct{}{}
	}

	return func(ctx context.Context, c *app.RequestContext) {
		role, ok := GetUserRole(ctx, c)
		if !ok {
			c.Abort()
			response.Error(ctx, c, errors.Unauthorized)
			return
		}

		if _, ok := allowed[role]; !ok {
			c.Abort()
			response.Error(ctx, c, errors.PermissionDenied)
			return
		}

		c.Next(ctx)
	}
}

// RequireAdmin 管理端路由专用
func RequireAdmin() app.HandlerFunc {
	return RequireRole(model.RoleAdmin)
}

// RequireWorker 打卡接口只对员工开放
func RequireWorker() app.HandlerFunc {
	return RequireRole(model.RoleWorker)
}
