package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config 服务配置，全部来自环境变量
type Config struct {
	Server     ServerConfig
	Cache      CacheConfig
	RateLimit  RateLimitConfig
	StatuteAPI StatuteAPIConfig
	Redis      RedisConfig
	Archive    ArchiveConfig
}

// ServerConfig HTTP服务配置
type ServerConfig struct {
	Addr string // 监听地址
}

// CacheConfig 缓存配置
type CacheConfig struct {
	MaxSize    int           // 最大缓存条目数
	DefaultTTL time.Duration // 默认过期时间
}

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	MaxRequests   int // 窗口内最大请求数
	WindowSeconds int // 滑动窗口长度（秒）
}

// StatuteAPIConfig 外部法规API配置
type StatuteAPIConfig struct {
	BaseURL string        // API基础地址
	Timeout time.Duration // 请求超时时间
}

// RedisConfig 限流统计用Redis配置，Addr为空时禁用
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// ArchiveConfig 报告S3归档配置，不完整时禁用
type ArchiveConfig struct {
	Endpoint        string
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
	Prefix          string // 对象键前缀
}

// Load 从环境变量加载配置
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Addr: getEnvDefault("LISTEN_ADDR", ":8080"),
		},
		Cache: CacheConfig{
			MaxSize:    getEnvInt("CACHE_MAX_SIZE", 1000),
			DefaultTTL: time.Duration(getEnvInt("CACHE_TTL_SECONDS", 3600)) * time.Second,
		},
		RateLimit: RateLimitConfig{
			MaxRequests:   getEnvInt("RATE_LIMIT_MAX_REQUESTS", 100),
			WindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		},
		StatuteAPI: StatuteAPIConfig{
			BaseURL: getEnvDefault("STATUTE_API_BASE_URL", "https://api.govinfo.gov"),
			Timeout: time.Duration(getEnvInt("STATUTE_API_TIMEOUT_SECONDS", 3)) * time.Second,
		},
		Redis: RedisConfig{
			Addr:     getEnvDefault("REDIS_ADDR", ""),
			Password: getEnvDefault("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Archive: ArchiveConfig{
			Endpoint:        getEnvDefault("ARCHIVE_S3_ENDPOINT", ""),
			Bucket:          getEnvDefault("ARCHIVE_S3_BUCKET", ""),
			Region:          getEnvDefault("ARCHIVE_S3_REGION", "us-east-1"),
			AccessKeyID:     getEnvDefault("ARCHIVE_S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnvDefault("ARCHIVE_S3_SECRET_ACCESS_KEY", ""),
			UsePathStyle:    getEnvBool("ARCHIVE_S3_USE_PATH_STYLE", false),
			Prefix:          getEnvDefault("ARCHIVE_S3_PREFIX", "reports"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置，非法的容量/窗口在启动时直接拒绝
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("listen address is required")
	}
	if c.Cache.MaxSize <= 0 {
		return fmt.Errorf("cache max size must be greater than zero")
	}
	if c.Cache.DefaultTTL <= 0 {
		return fmt.Errorf("cache ttl must be greater than zero")
	}
	if c.RateLimit.MaxRequests <= 0 {
		return fmt.Errorf("rate limit max requests must be greater than zero")
	}
	if c.RateLimit.WindowSeconds <= 0 {
		return fmt.Errorf("rate limit window must be greater than zero")
	}
	if c.StatuteAPI.BaseURL == "" {
		return fmt.Errorf("statute api base url is required")
	}
	if c.StatuteAPI.Timeout <= 0 {
		return fmt.Errorf("statute api timeout must be greater than zero")
	}
	return nil
}

// ArchiveEnabled 检查归档配置是否完整
func (c *Config) ArchiveEnabled() bool {
	a := c.Archive
	return a.Bucket != "" && a.AccessKeyID != "" && a.SecretAccessKey != "" && a.Region != ""
}

// getEnvDefault 获取环境变量，如果不存在则返回默认值
func getEnvDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt 获取整型环境变量
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvBool 获取布尔型环境变量
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}
