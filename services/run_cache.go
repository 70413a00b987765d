package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const lastRunTTL = 24 * time.Hour

func lastRunKey(propertyID uint) string {
	return fmt.Sprintf("pricing:last_run:%d", propertyID)
}

// SaveLastRun lưu kết quả lần chạy gần nhất của một chỗ ở vào Redis
func SaveLastRun(ctx context.Context, rdb *redis.Client, result *PropertyRunResult) error {
	b, _ := json.Marshal(result)
	return rdb.Set(ctx, lastRunKey(result.PropertyID), b, lastRunTTL).Err()
}

// GetLastRun lấy kết quả lần chạy gần nhất của một chỗ ở từ Redis
func GetLastRun(ctx context.Context, rdb *redis.Client, propertyID uint) (*PropertyRunResult, error) {
	val, err := rdb.Get(ctx, lastRunKey(propertyID)).Result()
	if err != nil {
		return nil, err
	}
	var result PropertyRunResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ClearLastRun xóa kết quả đã cache của một chỗ ở
func ClearLastRun(ctx context.Context, rdb *redis.Client, propertyID uint) error {
	return rdb.Del(ctx, lastRunKey(propertyID)).Err()
}
