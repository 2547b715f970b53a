package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"OnShift/storage/redis"
)

// refresh token 黑名单。登出后 token 本身还没过期，
// 只存哈希，TTL 对齐 token 剩余有效期，到期自动清。

const revokedTokenPrefix = "token:revoked"

func tokenKey(refreshToken string) string {
	sum := sha256.Sum256([]byte(refreshToken))
	return redis.Key(revokedTokenPrefix, hex.EncodeToString(sum[:]))
}

// RevokeRefreshToken 登出时拉黑
func RevokeRefreshToken(ctx context.Context, refreshToken string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // 已过期，不用拉黑
	}
	if err := redis.Client().Set(ctx, tokenKey(refreshToken), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// IsRefreshTokenRevoked 刷新前检查
func IsRefreshTokenRevoked(ctx context.Context, refreshToken string) (bool, error) {
	result, err := redis.Client().Exists(ctx, tokenKey(refreshToken)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}
	return result > 0, nil
}
