package constants

import (
	"time"

	"github.com/deananwomack-code/outlaw-legal-ai/internal/config"
)

var (
	// 缓存相关
	DefaultCacheTTL = time.Hour // 缓存默认过期时间
	MaxCacheSize    = 1000      // 最大缓存条目数

	// 限流相关
	RateLimitMaxRequests  = 100 // 窗口内最大请求数
	RateLimitWindowSecond = 60  // 滑动窗口长度（秒）

	// 法规API相关
	StatuteAPITimeout = 3 * time.Second // 外部法规API超时时间，超时后回退本地数据
	StatuteAPIRate    = 5.0             // 对外部法规API的每秒请求上限
	StatuteAPIBurst   = 10              // 对外部法规API的突发请求上限
	MaxStatuteResults = 3               // 每次查询最多保留的法规条目数
	MaxStatuteTitle   = 90              // 法规标题最大长度

	// 请求校验相关
	MinFactsLength = 20 // 案情描述最小长度
	MaxBatchCases  = 10 // 批量分析单次最大案件数
)

// UpdateFromConfig 从配置更新常量
func UpdateFromConfig(cfg *config.Config) {
	if cfg.Cache.MaxSize > 0 {
		MaxCacheSize = cfg.Cache.MaxSize
	}
	if cfg.Cache.DefaultTTL > 0 {
		DefaultCacheTTL = cfg.Cache.DefaultTTL
	}
	if cfg.RateLimit.MaxRequests > 0 {
		RateLimitMaxRequests = cfg.RateLimit.MaxRequests
	}
	if cfg.RateLimit.WindowSeconds > 0 {
		RateLimitWindowSecond = cfg.RateLimit.WindowSeconds
	}
	if cfg.StatuteAPI.Timeout > 0 {
		StatuteAPITimeout = cfg.StatuteAPI.Timeout
	}
}
