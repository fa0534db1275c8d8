package handler

import (
	"log"
	"net/http"

	"github.com/deananwomack-code/outlaw-legal-ai/internal/ratelimit"
)

// RateLimitAdminHandler 限流管理接口
type RateLimitAdminHandler struct {
	limiter *ratelimit.Limiter
}

// NewRateLimitAdminHandler 创建限流管理处理器
func NewRateLimitAdminHandler(limiter *ratelimit.Limiter) *RateLimitAdminHandler {
	return &RateLimitAdminHandler{limiter: limiter}
}

// GetStats 处理 GET /rate-limit/stats
func (h *RateLimitAdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"stats":  h.limiter.GetStats(),
	})
}

// Reset 处理 DELETE /rate-limit/reset?client_id=
//
// 带client_id只重置该客户端，否则重置所有客户端。
func (h *RateLimitAdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	clientID := r.URL.Query().Get("client_id")

	var message string
	if clientID != "" {
		h.limiter.Reset(clientID)
		message = "Rate limit reset for " + clientID
		log.Printf("[RateLimit] 已重置客户端限流: %s", clientID)
	} else {
		h.limiter.ResetAll()
		message = "Rate limit reset for all clients"
		log.Printf("[RateLimit] 已重置所有客户端限流")
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": message,
	})
}
