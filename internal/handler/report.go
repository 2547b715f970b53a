package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"OnShift/internal/model/dto"
	"OnShift/internal/service"
	"OnShift/pkg/response"
)

// GetReport 考勤报表，管理员专用
// GET /v1/reports?start_date=&end_date=&user_id=
func GetReport(ctx context.Context, c *app.RequestContext) {
	var filter dto.ReportFilter
	if err := c.BindAndValidate(&filter); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	reportService := service.Report()
	result, err := reportService.BuildReport(ctx, filter)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
