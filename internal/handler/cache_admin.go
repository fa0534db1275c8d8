package handler

import (
	"log"
	"net/http"

	"github.com/deananwomack-code/outlaw-legal-ai/internal/cache"
)

// CacheAdminHandler 缓存管理接口
type CacheAdminHandler struct {
	cache *cache.Cache
}

// NewCacheAdminHandler 创建缓存管理处理器
func NewCacheAdminHandler(c *cache.Cache) *CacheAdminHandler {
	return &CacheAdminHandler{cache: c}
}

// GetStats 处理 GET /cache/stats
func (h *CacheAdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"stats":  h.cache.GetStats(),
	})
}

// Clear 处理 DELETE /cache
func (h *CacheAdminHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.cache.Clear()
	log.Printf("[Cache] 缓存已通过API清空")
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Cache cleared successfully",
	})
}
