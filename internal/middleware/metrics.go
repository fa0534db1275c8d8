package middleware

import (
	"net/http"
	"time"

	"github.com/deananwomack-code/outlaw-legal-ai/internal/metrics"
)

// statusWrapper 响应包装器，用于捕获状态码
type statusWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (sw *statusWrapper) WriteHeader(code int) {
	sw.statusCode = code
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWrapper) Write(b []byte) (int, error) {
	if sw.statusCode == 0 {
		sw.statusCode = http.StatusOK
	}
	return sw.ResponseWriter.Write(b)
}

// MetricsMiddleware 请求指标中间件
func MetricsMiddleware(collector *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapper := &statusWrapper{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapper, r)

			collector.Record(wrapper.statusCode, time.Since(start))
		})
	}
}
