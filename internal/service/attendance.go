package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"OnShift/config"
	"OnShift/internal/cache"
	"OnShift/internal/model"
	"OnShift/internal/model/dto"
	"OnShift/internal/queue"
	"OnShift/pkg/errors"
	"OnShift/pkg/logger"
	"OnShift/pkg/metrics"
	"OnShift/storage/database"
)

var (
	attendanceService *AttendanceService
	attendanceOnce    sync.Once
)

func Attendance() *AttendanceService {
	attendanceOnce.Do(func() {
		attendanceService = &AttendanceService{}
	})
	return attendanceService
}

type AttendanceService struct{}

// Toggle 打卡。必须显式带 action，和当前状态对不上就报错，
// 不做"自动翻转"，防止双击把人签出去。
//
// 并发控制三层：Redis 按用户加锁、关区间走条件 UPDATE、
// DB 部分唯一索引兜底。
func (s *AttendanceService) Toggle(ctx context.Context, userIDStr string, action string) (*dto.ToggleData, error) {
	if !model.ValidAction(action) {
		metrics.RecordToggleRejected(ctx, errors.InvalidAction.Code)
		return nil, errors.InvalidAction
	}

	publicID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return nil, errors.InvalidUserID
	}

	db := database.DB().WithContext(ctx)

	var user model.User
	if err := db.Where("public_id = ?", publicID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.UserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if !user.Active {
		return nil, errors.UserInactive
	}
	// 管理员不打卡，只看
	if user.Role != model.RoleWorker {
		metrics.RecordToggleRejected(ctx, errors.PermissionDenied.Code)
		return nil, errors.PermissionDenied
	}

	lockTTL := time.Duration(config.Cfg.ToggleLockTTLSeconds) * time.Second
	acquired, err := cache.TryToggleLock(ctx, user.ID, lockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire toggle lock: %w", err)
	}
	if !acquired {
		metrics.RecordToggleRejected(ctx, errors.ToggleInProgress.Code)
		return nil, errors.ToggleInProgress
	}
	defer func() {
		if err := cache.ReleaseToggleLock(ctx, user.ID); err != nil {
			logger.Logger.Warn("Failed to release toggle lock",
				zap.Int64("user_id", user.ID), zap.Error(err))
		}
	}()

	openRecord, err := s.findOpenRecord(ctx, db, user.ID)
	if err != nil {
		return nil, err
	}

	if err := ValidateToggle(model.ToggleAction(action), openRecord != nil); err != nil {
		if def, ok := err.(errors.Definition); ok {
			metrics.RecordToggleRejected(ctx, def.Code)
		}
		return nil, err
	}

	now := time.Now().UTC()

	if model.ToggleAction(action) == model.ActionCheckIn {
		return s.openInterval(ctx, db, &user, now)
	}
	return s.closeInterval(ctx, db, &user, openRecord, now)
}

// ValidateToggle 校验动作和当前状态是否匹配。
// 纯函数：非法组合只报错，不产生任何写入。
func ValidateToggle(action model.ToggleAction, hasOpenInterval bool) error {
	switch action {
	case model.ActionCheckIn:
		if hasOpenInterval {
			return errors.AlreadyCheckedIn
		}
	case model.ActionCheckOut:
		if !hasOpenInterval {
			return errors.NotCheckedIn
		}
	default:
		return errors.InvalidAction
	}
	return nil
}

// findOpenRecord 先查 Redis 索引，miss 了回表并回填
func (s *AttendanceService) findOpenRecord(ctx context.Context, db *gorm.DB, userID int64) (*model.Attendance, error) {
	recordID, found, err := cache.GetOpenRecordID(ctx, userID)
	if err != nil {
		logger.Logger.Warn("Presence cache lookup failed, falling back to database",
			zap.Int64("user_id", userID), zap.Error(err))
		found = false
	}

	if found {
		if recordID == 0 {
			return nil, nil // 负缓存，确认不在岗
		}
		var record model.Attendance
		if err := db.Where("id = ? AND is_present = true", recordID).First(&record).Error; err == nil {
			return &record, nil
		}
		// 缓存指向的记录已经关了，当 miss 处理
	}

	var record model.Attendance
	err = db.Where("user_id = ? AND is_present = true", userID).First(&record).Error
	if err == gorm.ErrRecordNotFound {
		if cacheErr := cache.MarkAbsent(ctx, userID); cacheErr != nil {
			logger.Logger.Warn("Failed to backfill presence cache", zap.Error(cacheErr))
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query open interval: %w", err)
	}

	if cacheErr := cache.MarkPresent(ctx, userID, record.ID); cacheErr != nil {
		logger.Logger.Warn("Failed to backfill presence cache", zap.Error(cacheErr))
	}
	return &record, nil
}

func (s *AttendanceService) openInterval(ctx context.Context, db *gorm.DB, user *model.User, now time.Time) (*dto.ToggleData, error) {
	record := &model.Attendance{
		UserID:    user.ID,
		CheckIn:   now,
		CheckOut:  nil,
		IsPresent: true,
	}

	if err := db.Create(record).Error; err != nil {
		if err == gorm.ErrDuplicatedKey {
			// 并发请求抢先开了区间，部分唯一索引拦下来的
			if cacheErr := cache.InvalidatePresence(ctx, user.ID); cacheErr != nil {
				logger.Logger.Warn("Failed to invalidate presence cache", zap.Error(cacheErr))
			}
			metrics.RecordToggleRejected(ctx, errors.AlreadyCheckedIn.Code)
			return nil, errors.AlreadyCheckedIn
		}
		return nil, fmt.Errorf("failed to create attendance record: %w", err)
	}

	if err := cache.MarkPresent(ctx, user.ID, record.ID); err != nil {
		logger.Logger.Warn("Failed to update presence cache", zap.Error(err))
	}

	metrics.RecordCheckIn(ctx)
	queue.PublishAttendanceEvent(ctx, user.ID, record.ID, model.ActionCheckIn, now)

	logger.Logger.Info("User checked in",
		zap.Int64("public_id", user.PublicID),
		zap.Int64("record_id", record.ID),
	)

	return &dto.ToggleData{
		Action: string(model.ActionCheckIn),
		Record: AttendanceToItem(record, user),
	}, nil
}

func (s *AttendanceService) closeInterval(ctx context.Context, db *gorm.DB, user *model.User, record *model.Attendance, now time.Time) (*dto.ToggleData, error) {
	// check_out 和 is_present 同一条 UPDATE 写入，
	// 条件带 is_present = true，并发关同一条只有一个能成
	result := db.Model(&model.Attendance{}).
		Where("id = ? AND is_present = true", record.ID).
		Updates(map[string]interface{}{
			"check_out":  now,
			"is_present": false,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to close attendance record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// 别的请求先关了
		if cacheErr := cache.InvalidatePresence(ctx, user.ID); cacheErr != nil {
			logger.Logger.Warn("Failed to invalidate presence cache", zap.Error(cacheErr))
		}
		metrics.RecordToggleRejected(ctx, errors.NotCheckedIn.Code)
		return nil, errors.NotCheckedIn
	}

	record.CheckOut = &now
	record.IsPresent = false

	if err := cache.MarkAbsent(ctx, user.ID); err != nil {
		logger.Logger.Warn("Failed to update presence cache", zap.Error(err))
	}

	metrics.RecordCheckOut(ctx)
	queue.PublishAttendanceEvent(ctx, user.ID, record.ID, model.ActionCheckOut, now)

	logger.Logger.Info("User checked out",
		zap.Int64("public_id", user.PublicID),
		zap.Int64("record_id", record.ID),
		zap.Float64("hours", record.DurationOrZero()),
	)

	return &dto.ToggleData{
		Action: string(model.ActionCheckOut),
		Record: AttendanceToItem(record, user),
	}, nil
}

// Dashboard 首页数据。管理员看全员，员工只看自己。
func (s *AttendanceService) Dashboard(ctx context.Context, userIDStr string, role string) (*dto.DashboardData, error) {
	publicID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return nil, errors.InvalidUserID
	}

	db := database.DB().WithContext(ctx)

	var user model.User
	if err := db.Where("public_id = ?", publicID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.UserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	data := &dto.DashboardData{
		CurrentTime:   time.Now().UTC(),
		Role:          role,
		OpenIntervals: []dto.AttendanceItem{},
		Recent:        []dto.AttendanceItem{},
	}

	limit := config.Cfg.DashboardRecentLimit

	var open, recent []*model.Attendance
	if role == string(model.RoleAdmin) {
		if err := db.Preload("User").Where("is_present = true").
			Order("check_in DESC").Find(&open).Error; err != nil {
			return nil, fmt.Errorf("failed to query open intervals: %w", err)
		}
		if err := db.Preload("User").
			Order("check_in DESC").Limit(limit).Find(&recent).Error; err != nil {
			return nil, fmt.Errorf("failed to query recent records: %w", err)
		}
	} else {
		if err := db.Where("user_id = ? AND is_present = true", user.ID).
			Order("check_in DESC").Find(&open).Error; err != nil {
			return nil, fmt.Errorf("failed to query open intervals: %w", err)
		}
		if err := db.Where("user_id = ?", user.ID).
			Order("check_in DESC").Limit(limit).Find(&recent).Error; err != nil {
			return nil, fmt.Errorf("failed to query recent records: %w", err)
		}
	}

	for _, rec := range open {
		data.OpenIntervals = append(data.OpenIntervals, s.toItem(rec, &user, role))
	}
	for _, rec := range recent {
		data.Recent = append(data.Recent, s.toItem(rec, &user, role))
	}

	return data, nil
}

func (s *AttendanceService) toItem(rec *model.Attendance, self *model.User, role string) dto.AttendanceItem {
	if role == string(model.RoleAdmin) {
		return AttendanceToItem(rec, rec.User)
	}
	return AttendanceToItem(rec, self)
}
