package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"OnShift/storage/redis"
)

// user -> 当前 open interval 的 record id 索引。
// dashboard 和 toggle 都先打这里，miss 了才回表。
// 值 0 表示确认不在岗（负缓存）。

const (
	presencePrefix = "presence:open"

	presenceTTL = 12 * time.Hour
)

// GetOpenRecordID 返回 (recordID, found, err)；recordID 为 0 表示确认无 open interval
func GetOpenRecordID(ctx context.Context, userID int64) (int64, bool, error) {
	key := redis.Key(presencePrefix, fmt.Sprintf("%d", userID))

	val, err := redis.Client().Get(ctx, key).Result()
	if err == goredis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get presence cache: %w", err)
	}

	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt presence cache value %q: %w", val, err)
	}
	return id, true, nil
}

// MarkPresent 打卡成功后写入索引
func MarkPresent(ctx context.Context, userID, recordID int64) error {
	key := redis.Key(presencePrefix, fmt.Sprintf("%d", userID))
	return redis.Client().Set(ctx, key, strconv.FormatInt(recordID, 10), presenceTTL).Err()
}

// MarkAbsent 下班后写负缓存
func MarkAbsent(ctx context.Context, userID int64) error {
	key := redis.Key(presencePrefix, fmt.Sprintf("%d", userID))
	return redis.Client().Set(ctx, key, "0", presenceTTL).Err()
}

// InvalidatePresence 状态不确定时直接删 key，下次回表
func InvalidatePresence(ctx context.Context, userID int64) error {
	key := redis.Key(presencePrefix, fmt.Sprintf("%d", userID))
	return redis.Client().Del(ctx, key).Err()
}
