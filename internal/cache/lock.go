package cache

import (
	"context"
	"fmt"
	"time"

	"OnShift/storage/redis"
)

// 打卡互斥锁。toggle 是 read-check-then-write，重复提交会绕过状态检查，
// SetNX 按用户加锁把并发请求串起来，DB 的部分唯一索引是最后一道兜底。

const toggleLockPrefix = "lock:toggle"

func TryToggleLock(ctx context.Context, userID int64, ttl time.Duration) (bool, error) {
	key := redis.Key(toggleLockPrefix, fmt.Sprintf("%d", userID))

	result, err := redis.Client().SetNX(ctx, key, 1, ttl).Result()
	if err != nil {
		return false, err
	}

	return result, nil
}

func ReleaseToggleLock(ctx context.Context, userID int64) error {
	key := redis.Key(toggleLockPrefix, fmt.Sprintf("%d", userID))

	return redis.Client().Del(ctx, key).Err()
}
