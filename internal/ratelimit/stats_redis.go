package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// StatsEvent 一次限流决策事件
type StatsEvent struct {
	ClientID string
	Allowed  bool
	Path     string
	At       time.Time
}

// StatsRecorder 限流决策的统计落点，实现必须是尽力而为：
// 记录失败不能影响请求放行。
type StatsRecorder interface {
	Record(ctx context.Context, ev StatsEvent) error
}

// RedisStatsRecorder 把限流决策写入Redis的统计记录器
//
// 累计计数不过期，分钟桶和按客户端的键带TTL，避免键无限增长。
type RedisStatsRecorder struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStatsRecorder 创建Redis统计记录器
func NewRedisStatsRecorder(rdb *redis.Client) *RedisStatsRecorder {
	return &RedisStatsRecorder{
		rdb:    rdb,
		prefix: "ratelimit:stats",
		ttl:    24 * time.Hour,
	}
}

// Record 记录一次限流决策
func (r *RedisStatsRecorder) Record(ctx context.Context, ev StatsEvent) error {
	if r == nil || r.rdb == nil {
		return nil
	}

	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}

	field := "denied"
	if ev.Allowed {
		field = "allowed"
	}

	pipe := r.rdb.Pipeline()
	pipe.HIncrBy(ctx, r.prefix+":total", field, 1)

	// 分钟桶，便于观察近期的放行/拒绝趋势
	bucketKey := r.prefix + ":minute:" + at.UTC().Format("200601021504")
	pipe.HIncrBy(ctx, bucketKey, field, 1)
	pipe.Expire(ctx, bucketKey, r.ttl)

	if ev.ClientID != "" {
		clientKey := r.prefix + ":client:" + ev.ClientID
		pipe.HIncrBy(ctx, clientKey, field, 1)
		pipe.Expire(ctx, clientKey, r.ttl)
	}

	_, err := pipe.Exec(ctx)
	return err
}
