package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"OnShift/config"
	"OnShift/internal/handler"
	"OnShift/internal/middleware"
)

func Register(h *server.Hertz) {

	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.RequestIDMiddleware())
	h.Use(middleware.CORSMiddleware())
	h.Use(middleware.OpenTelemetryMiddleware())
	if config.Cfg.CSRFEnabled {
		// 浏览器端部署才打开，API 客户端走 Bearer token
		h.Use(middleware.CSRFMiddleware())
	}

	v1 := h.Group("/v1")

	// 认证相关路由
	auth := v1.Group("/auth")
	auth.Use(middleware.AuthRateLimitMiddleware()) // 认证接口限流
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", handler.Login)
		auth.POST("/refresh", handler.RefreshToken)
		auth.POST("/logout", handler.Logout)
	}

	// 首页，登录即可访问
	dashboard := v1.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware())
	{
		dashboard.GET("", handler.Dashboard)
	}

	// 打卡路由，只对员工开放
	attendance := v1.Group("/attendance")
	attendance.Use(middleware.AuthMiddleware(), middleware.RequireWorker())
	{
		attendance.POST("/check-in-out", middleware.ToggleRateLimitMiddleware(), handler.Toggle)
	}

	// 管理端路由
	users := v1.Group("/users")
	users.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		users.GET("", handler.ListUsers)
		users.GET("/:user_id", handler.GetUserDetail)
	}

	reports := v1.Group("/reports")
	reports.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		reports.GET("", handler.GetReport)
	}
}
