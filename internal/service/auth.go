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
	"OnShift/pkg/errors"
	"OnShift/pkg/logger"
	"OnShift/pkg/snowflake"
	"OnShift/pkg/token"
	"OnShift/storage/database"
	"OnShift/utils"
)

var (
	authService *AuthService
	authOnce    sync.Once
)

func Auth() *AuthService {
	authOnce.Do(func() {
		authService = &AuthService{}
	})
	return authService
}

type AuthService struct{}

// Register 自助注册，默认 worker 角色。
// admin 账号走 seed 或由管理员手工提权。
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthData, error) {
	if !utils.ValidateUsername(req.Username) {
		return nil, errors.ValidationFailed
	}
	if len(req.Password) < config.Cfg.PasswordMinLength {
		return nil, errors.ValidationFailed
	}

	db := database.DB().WithContext(ctx)

	var count int64
	if err := db.Model(&model.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if count > 0 {
		return nil, errors.UsernameTaken
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	publicID, err := snowflake.NextID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	user := &model.User{
		PublicID:     publicID,
		Username:     req.Username,
		PasswordHash: passwordHash,
		FullName:     req.FullName,
		Position:     req.Position,
		Role:         model.RoleWorker,
		Active:       true,
	}

	if err := db.Create(user).Error; err != nil {
		// 并发注册同名时唯一索引兜底
		if err == gorm.ErrDuplicatedKey {
			return nil, errors.UsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Logger.Info("New user registered",
		zap.Int64("public_id", publicID),
		zap.String("username", user.Username),
	)

	return s.issueTokens(user)
}

// Login 用户名密码登录
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthData, error) {
	db := database.DB().WithContext(ctx)

	var user model.User
	if err := db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			// 用户不存在时也走一次 bcrypt，不给计时侧信道留口子
			utils.CheckPassword("$2a$10$invalidinvalidinvalidinvalidinvalidinvalidinvalidinva", req.Password)
			return nil, errors.InvalidCredentials
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return nil, errors.InvalidCredentials
	}

	if !user.Active {
		return nil, errors.UserInactive
	}

	logger.Logger.Info("User logged in",
		zap.Int64("public_id", user.PublicID),
		zap.String("role", string(user.Role)),
	)

	return s.issueTokens(&user)
}

// Refresh 用 refresh token 换新的 token 对
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenData, error) {
	revoked, err := cache.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		// Redis 故障时放行到签名校验，黑名单只影响已登出的 token
		logger.Logger.Warn("Failed to check token denylist", zap.Error(err))
	}
	if revoked {
		return nil, errors.Unauthorized
	}

	userID, role, err := token.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Unauthorized
	}

	// 账号可能在 token 有效期内被停用，刷新时回表确认
	publicID, parseErr := strconv.ParseInt(userID, 10, 64)
	if parseErr != nil {
		return nil, errors.Unauthorized
	}
	var user model.User
	if err := database.DB().WithContext(ctx).Where("public_id = ?", publicID).First(&user).Error; err != nil {
		return nil, errors.Unauthorized
	}
	if !user.Active {
		return nil, errors.UserInactive
	}
	role = string(user.Role)

	accessToken, newRefreshToken, expiresIn, err := token.GenerateTokenPair(userID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	// 旧 refresh token 作废，防止拿着老票无限续
	ttl := time.Duration(config.Cfg.JWTRefreshDays) * 24 * time.Hour
	if err := cache.RevokeRefreshToken(ctx, refreshToken, ttl); err != nil {
		logger.Logger.Warn("Failed to revoke old refresh token", zap.Error(err))
	}

	return &dto.TokenData{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		ExpiresIn:    expiresIn,
		TokenType:    "Bearer",
	}, nil
}

// Logout 拉黑 refresh token，access token 等自然过期
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	ttl := time.Duration(config.Cfg.JWTRefreshDays) * 24 * time.Hour
	if err := cache.RevokeRefreshToken(ctx, refreshToken, ttl); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

func (s *AuthService) issueTokens(user *model.User) (*dto.AuthData, error) {
	userIDStr := strconv.FormatInt(user.PublicID, 10)

	accessToken, refreshToken, expiresIn, err := token.GenerateTokenPair(userIDStr, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.AuthData{
		User: UserToItem(user),
		Token: dto.TokenData{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			ExpiresIn:    expiresIn,
			TokenType:    "Bearer",
		},
	}, nil
}
