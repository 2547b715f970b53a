package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"OnShift/internal/model"
	"OnShift/pkg/logger"
)

// Migrate 运行数据库迁移，创建所有表
func Migrate() error {
	db := DB()
	if db == nil {
		return gorm.ErrInvalidDB
	}

	logger.Logger.Info("Starting database migration...")

	err := db.AutoMigrate(
		&model.User{},
		&model.Attendance{},
		&model.AttendanceEvent{},
	)
	if err != nil {
		logger.Logger.Error("Database migration failed", zap.Error(err))
		return err
	}

	// 部分唯一索引：每个用户最多一条 open interval
	// AutoMigrate 表达不了 WHERE 条件，这里补一条裸 SQL
	err = db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_attendances_open_per_user
		 ON attendances (user_id) WHERE is_present AND deleted_at IS NULL`,
	).Error
	if err != nil {
		logger.Logger.Error("Failed to create open-interval index", zap.Error(err))
		return err
	}

	logger.Logger.Info("Database migration completed successfully")
	return nil
}
