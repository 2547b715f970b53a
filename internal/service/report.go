package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"OnShift/config"
	"OnShift/internal/model"
	"OnShift/internal/model/dto"
	"OnShift/pkg/errors"
	"OnShift/pkg/metrics"
	"OnShift/storage/database"
	"OnShift/utils"
)

var (
	reportService *ReportService
	reportOnce    sync.Once
)

func Report() *ReportService {
	reportOnce.Do(func() {
		reportService = &ReportService{}
	})
	return reportService
}

type ReportService struct{}

// BuildReport 按日期范围和可选员工聚合考勤。
// 日期闭区间按 check_in 落在 [start, end] 内算，时区用 REPORT_TIMEZONE。
// 报表是纯读流量，走读副本。
func (s *ReportService) BuildReport(ctx context.Context, filter dto.ReportFilter) (*dto.ReportData, error) {
	started := time.Now()
	defer func() {
		metrics.RecordReportQuery(ctx, time.Since(started).Seconds())
	}()

	loc := config.Cfg.ReportLocation()

	query := database.DB().WithContext(ctx).
		Clauses(dbresolver.Read).
		Preload("User").
		Model(&model.Attendance{})

	if filter.StartDate != "" {
		start, err := utils.ParseISODate(filter.StartDate, loc)
		if err != nil {
			return nil, errors.InvalidDate
		}
		query = query.Where("check_in >= ?", start)
	}

	if filter.EndDate != "" {
		end, err := utils.ParseISODate(filter.EndDate, loc)
		if err != nil {
			return nil, errors.InvalidDate
		}
		// 含当天，右边界取次日零点开区间
		query = query.Where("check_in < ?", utils.EndOfDayExclusive(end, loc))
	}

	if filter.UserID != "" {
		publicID, err := strconv.ParseInt(filter.UserID, 10, 64)
		if err != nil {
			return nil, errors.InvalidUserID
		}
		var user model.User
		if err := database.DB().WithContext(ctx).
			Where("public_id = ?", publicID).First(&user).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, errors.UserNotFound
			}
			return nil, fmt.Errorf("failed to query user: %w", err)
		}
		query = query.Where("user_id = ?", user.ID)
	}

	var records []*model.Attendance
	if err := query.Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}

	return &dto.ReportData{
		Filter: filter,
		Groups: AggregateByUser(records),
	}, nil
}

// AggregateByUser 把考勤记录按员工分组聚合。
// 纯函数，不碰数据库。分组顺序按记录里首次出现的顺序，
// total_days 按记录条数算（一条记录一个出勤段），
// 未下班的区间计入条数但时长按 0 算。
func AggregateByUser(records []*model.Attendance) []*dto.UserReport {
	groups := make([]*dto.UserReport, 0)
	index := make(map[int64]*dto.UserReport)

	for _, rec := range records {
		report, ok := index[rec.UserID]
		if !ok {
			report = &dto.UserReport{
				Records: []dto.AttendanceItem{},
			}
			if rec.User != nil {
				report.User = UserToItem(rec.User)
			}
			index[rec.UserID] = report
			groups = append(groups, report)
		}

		report.Records = append(report.Records, AttendanceToItem(rec, rec.User))
		report.TotalHours += rec.DurationOrZero()
	}

	for _, report := range index {
		report.TotalDays = len(report.Records)
		report.TotalHours = roundHours(report.TotalHours)
	}

	return groups
}

// roundHours 合计保留两位小数，避免浮点累加的尾数
func roundHours(hours float64) float64 {
	return math.Round(hours*100) / 100
}
