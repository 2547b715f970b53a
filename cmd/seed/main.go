package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"OnShift/config"
	"OnShift/internal/model"
	"OnShift/pkg/logger"
	"OnShift/pkg/snowflake"
	"OnShift/storage/database"
	"OnShift/utils"
)

// 初始化演示数据：一个管理员加几个员工账号。
// 已存在的用户名直接跳过，重复执行安全。
func main() {
	config.MustValidate()

	logger.Init()
	defer logger.Sync()

	if err := database.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize database", zap.Error(err))
	}

	if err := snowflake.Init(config.Cfg.SnowflakeMachineID, config.Cfg.SnowflakeDataCenter); err != nil {
		logger.Logger.Fatal("Failed to initialize snowflake", zap.Error(err))
	}

	seeds := []struct {
		Username string
		Password string
		FullName string
		Position string
		Role     model.Role
	}{
		{"admin", envOr("SEED_ADMIN_PASSWORD", "admin123"), "Administrator", "Manager", model.RoleAdmin},
		{"alice", "password123", "Alice Zhang", "Engineer", model.RoleWorker},
		{"bob", "password123", "Bob Li", "Designer", model.RoleWorker},
		{"carol", "password123", "Carol Wang", "Support", model.RoleWorker},
	}

	db := database.DB()
	created := 0

	for _, seed := range seeds {
		var existing model.User
		err := db.Where("username = ?", seed.Username).First(&existing).Error
		if err == nil {
			logger.Logger.Info("User already exists, skipping",
				zap.String("username", seed.Username))
			continue
		}
		if err != gorm.ErrRecordNotFound {
			logger.Logger.Fatal("Failed to query user", zap.Error(err))
		}

		passwordHash, err := utils.HashPassword(seed.Password)
		if err != nil {
			logger.Logger.Fatal("Failed to hash password", zap.Error(err))
		}

		publicID, err := snowflake.NextID()
		if err != nil {
			logger.Logger.Fatal("Failed to generate user ID", zap.Error(err))
		}

		user := &model.User{
			PublicID:     publicID,
			Username:     seed.Username,
			PasswordHash: passwordHash,
			FullName:     seed.FullName,
			Position:     seed.Position,
			Role:         seed.Role,
			Active:       true,
		}

		if err := db.Create(user).Error; err != nil {
			logger.Logger.Fatal("Failed to create user",
				zap.String("username", seed.Username), zap.Error(err))
		}

		created++
		logger.Logger.Info("Seed user created",
			zap.String("username", seed.Username),
			zap.String("role", string(seed.Role)),
			zap.Int64("public_id", publicID),
		)
	}

	fmt.Printf("Seed completed, %d user(s) created\n", created)
	os.Exit(0)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
