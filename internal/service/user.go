package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"gorm.io/gorm"

	"OnShift/config"
	"OnShift/internal/model"
	"OnShift/internal/model/dto"
	"OnShift/pkg/errors"
	"OnShift/storage/database"
	"OnShift/utils"
)

var (
	userService *UserService
	userOnce    sync.Once
)

func User() *UserService {
	userOnce.Do(func() {
		userService = &UserService{}
	})
	return userService
}

type UserService struct{}

// GetUserDetail 员工详情，管理员视图。
// 返回全部考勤记录加当月合计，月份按服务时区切。
func (s *UserService) GetUserDetail(ctx context.Context, userIDStr string) (*dto.UserDetailData, error) {
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

	var records []*model.Attendance
	if err := db.Where("user_id = ?", user.ID).
		Order("check_in DESC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}

	loc := config.Cfg.ReportLocation()
	now := time.Now().In(loc)
	monthStart := utils.StartOfMonth(now, loc)

	totals := dto.MonthTotals{Month: monthStart.Format("2006-01")}

	items := make([]dto.AttendanceItem, 0, len(records))
	for _, rec := range records {
		items = append(items, AttendanceToItem(rec, &user))

		// 当月合计只认本月开始的区间，未下班的按 0 计，天数按记录条数算
		if rec.CheckIn.Before(monthStart) {
			continue
		}
		totals.TotalHours += rec.DurationOrZero()
		totals.TotalDays++
	}
	totals.TotalHours = roundHours(totals.TotalHours)

	item := UserToItem(&user)
	return &dto.UserDetailData{
		User:        item,
		Records:     items,
		MonthTotals: totals,
	}, nil
}

// ListWorkers 员工列表，报表筛选下拉用
func (s *UserService) ListWorkers(ctx context.Context) (*dto.UserListData, error) {
	var users []*model.User
	if err := database.DB().WithContext(ctx).
		Where("role = ? AND active = true", model.RoleWorker).
		Order("full_name ASC").
		Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	items := make([]dto.UserItem, 0, len(users))
	for _, u := range users {
		items = append(items, UserToItem(u))
	}

	return &dto.UserListData{Users: items}, nil
}

// UserToItem model -> DTO，对外只暴露 public_id
func UserToItem(u *model.User) dto.UserItem {
	return dto.UserItem{
		ID:       strconv.FormatInt(u.PublicID, 10),
		Username: u.Username,
		FullName: u.FullName,
		Position: u.Position,
		Role:     string(u.Role),
		Active:   u.Active,
	}
}

// AttendanceToItem model -> DTO，user 可为 nil（不带姓名）
func AttendanceToItem(a *model.Attendance, u *model.User) dto.AttendanceItem {
	item := dto.AttendanceItem{
		ID:            strconv.FormatInt(a.ID, 10),
		CheckIn:       a.CheckIn,
		CheckOut:      a.CheckOut,
		DurationHours: a.DurationHours(),
		Present:       a.Open(),
	}
	if u != nil {
		item.UserID = strconv.FormatInt(u.PublicID, 10)
		item.FullName = u.FullName
	}
	return item
}
