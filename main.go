package main

import (
	"compress/gzip"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/deananwomack-code/outlaw-legal-ai/internal/archive"
	"github.com/deananwomack-code/outlaw-legal-ai/internal/cache"
	"github.com/deananwomack-code/outlaw-legal-ai/internal/compression"
	"github.com/deananwomack-code/outlaw-legal-ai/internal/config"
	"github.com/deananwomack-code/outlaw-legal-ai/internal/constants"
	"github.com/deananwomack-code/outlaw-legal-ai/internal/handler"
	"github.com/deananwomack-code/outlaw-legal-ai/internal/legal"
	"github.com/deananwomack-code/outlaw-legal-ai/internal/metrics"
	"github.com/deananwomack-code/outlaw-legal-ai/internal/middleware"
	"github.com/deananwomack-code/outlaw-legal-ai/internal/ratelimit"
)

// Route 定义路由结构
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

func main() {
	// 加载.env（不存在时忽略）
	if err := godotenv.Load(); err == nil {
		log.Println("[Config] 已加载 .env 文件")
	}

	// 加载并校验配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config:", err)
	}

	// 更新常量配置
	constants.UpdateFromConfig(cfg)

	// 创建共享缓存（进程级单例，显式传入各使用方）
	reportCache, err := cache.New(cfg.Cache.MaxSize, cfg.Cache.DefaultTTL)
	if err != nil {
		log.Fatal("Error creating cache:", err)
	}

	// 创建限流器
	limiter, err := ratelimit.New(cfg.RateLimit.MaxRequests, cfg.RateLimit.WindowSeconds)
	if err != nil {
		log.Fatal("Error creating rate limiter:", err)
	}

	// 可选的Redis限流统计
	var statsRecorder ratelimit.StatsRecorder
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		statsRecorder = ratelimit.NewRedisStatsRecorder(rdb)
		log.Printf("[RateLimit] 限流统计已启用: %s", cfg.Redis.Addr)
	}

	// 创建分析引擎
	statuteClient := legal.NewStatuteClient(cfg.StatuteAPI.BaseURL, cfg.StatuteAPI.Timeout, reportCache)
	engine := legal.NewEngine(statuteClient)

	// 可选的报告S3归档
	archiver := archive.NewArchiver(cfg)

	// 指标收集器
	collector := metrics.NewCollector()

	// 创建处理器
	legalHandler := handler.NewLegalSupportHandler(engine, archiver)
	batchHandler := handler.NewBatchHandler(engine)
	systemHandler := handler.NewSystemHandler(reportCache, collector)
	cacheAdmin := handler.NewCacheAdminHandler(reportCache)
	rateLimitAdmin := handler.NewRateLimitAdminHandler(limiter)

	// 定义API路由
	routes := []Route{
		{http.MethodGet, "/", systemHandler.Root},
		{http.MethodGet, "/api", systemHandler.APIInfo},
		{http.MethodGet, "/health", systemHandler.Health},
		{http.MethodGet, "/jurisdictions", systemHandler.Jurisdictions},
		{http.MethodGet, "/analytics", systemHandler.Analytics},
		{http.MethodPost, "/legal-support", legalHandler.ServeHTTP},
		{http.MethodPost, "/legal-support/batch", batchHandler.ServeHTTP},
		{http.MethodGet, "/cache/stats", cacheAdmin.GetStats},
		{http.MethodDelete, "/cache", cacheAdmin.Clear},
		{http.MethodGet, "/rate-limit/stats", rateLimitAdmin.GetStats},
		{http.MethodDelete, "/rate-limit/reset", rateLimitAdmin.Reset},
	}

	// 创建主处理器
	mainHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, route := range routes {
			if r.URL.Path == route.Pattern && r.Method == route.Method {
				route.Handler(w, r)
				return
			}
		}
		http.NotFound(w, r)
	})

	// 构建中间件链（由内向外：限流 → 指标 → 压缩 → CORS）
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(limiter, statsRecorder)
	compManager := compression.NewManager(compression.Config{
		GzipLevel:   gzip.DefaultCompression,
		BrotliLevel: brotli.DefaultCompression,
	})

	var chained http.Handler = mainHandler
	chained = rateLimitMiddleware.Handler(chained)
	chained = middleware.MetricsMiddleware(collector)(chained)
	chained = middleware.CompressionMiddleware(compManager)(chained)
	chained = middleware.CORSMiddleware(chained)

	// 创建服务器
	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: chained,
	}

	// 优雅关闭
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Error during server shutdown: %v\n", err)
		}
	}()

	// 启动服务器
	log.Printf("Starting Outlaw Legal AI server on %s", cfg.Server.Addr)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal("Error starting server:", err)
	}
}
