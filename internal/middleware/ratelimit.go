package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/woodchen-ink/go-web-utils/iputil"

	"github.com/deananwomack-code/outlaw-legal-ai/internal/ratelimit"
)

// RateLimitMiddleware 限流中间件
type RateLimitMiddleware struct {
	limiter *ratelimit.Limiter
	stats   ratelimit.StatsRecorder
}

// NewRateLimitMiddleware 创建限流中间件，stats可为nil
func NewRateLimitMiddleware(limiter *ratelimit.Limiter, stats ratelimit.StatsRecorder) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		stats:   stats,
	}
}

// isLimitedPath 判断路径是否受限流约束
//
// 只有分析类接口消耗实际算力，系统/管理接口不限流。
func isLimitedPath(path string) bool {
	return strings.HasPrefix(path, "/legal-support")
}

// Handler 限流处理
//
// 客户端标识为请求来源IP。超限时返回429，并通过Retry-After告知
// 建议等待时间；放行时附带剩余额度头。统计记录是尽力而为的，
// 失败不影响请求处理。
func (rm *RateLimitMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isLimitedPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		clientIP := iputil.GetClientIP(r)
		allowed, remaining, retryAfter := rm.limiter.IsAllowed(clientIP)

		if rm.stats != nil {
			go func(ev ratelimit.StatsEvent) {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				if err := rm.stats.Record(ctx, ev); err != nil {
					log.Printf("[RateLimit] 统计记录失败: %v", err)
				}
			}(ratelimit.StatsEvent{
				ClientID: clientIP,
				Allowed:  allowed,
				Path:     r.URL.Path,
				At:       time.Now(),
			})
		}

		stats := rm.limiter.GetStats()
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(stats.MaxRequests))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			log.Printf("[RateLimit] 请求超限: %s", clientIP)
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprintf(w, `{"error":"Rate limit exceeded. Try again in %d seconds.","retry_after_seconds":%d}`, retryAfter, retryAfter)
			return
		}

		next.ServeHTTP(w, r)
	})
}
