package middleware

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/cloudwego/hertz/pkg/app"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"OnShift/config"
	"OnShift/pkg/errors"
	"OnShift/pkg/logger"
	"OnShift/pkg/response"
)

// RecoverMiddleware 捕获 handler panic，记日志并返回 500
func RecoverMiddleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		defer func() {
			if err := recover(); err != nil {
				handlePanic(ctx, c, err)
			}
		}()

		c.Next(ctx)
	}
}

func handlePanic(ctx context.Context, c *app.RequestContext, err interface{}) {
	stack := debug.Stack()

	logger.Logger.Error("Panic recovered",
		zap.Any("error", err),
		zap.String("method", string(c.Method())),
		zap.String("path", string(c.Path())),
		zap.String("client_ip", c.ClientIP()),
		zap.ByteString("stack", stack),
	)

	// 把异常挂到当前 span 上，方便在 trace 里定位
	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetStatus(codes.Error, "panic recovered")
		span.RecordError(fmt.Errorf("panic: %v", err))
	}

	errDef := errors.Definition{
		Code:    "INTERNAL_SERVER_ERROR",
		Message: "Internal server error",
	}
	if !config.Cfg.IsProduction() {
		// 开发环境直接把 panic 内容带回去
		errDef.Message = fmt.Sprintf("Internal error: %v", err)
	}

	c.AbortWithStatus(http.StatusInternalServerError)
	response.Error(ctx, c, errDef)
}
