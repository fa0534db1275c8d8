package handler

import (
	"net/http"

	"github.com/deananwomack-code/outlaw-legal-ai/internal/cache"
	"github.com/deananwomack-code/outlaw-legal-ai/internal/constants"
	"github.com/deananwomack-code/outlaw-legal-ai/internal/legal"
	"github.com/deananwomack-code/outlaw-legal-ai/internal/metrics"
)

// SystemHandler 系统信息接口
type SystemHandler struct {
	cache     *cache.Cache
	collector *metrics.Collector
}

// NewSystemHandler 创建系统信息处理器
func NewSystemHandler(c *cache.Cache, collector *metrics.Collector) *SystemHandler {
	return &SystemHandler{
		cache:     c,
		collector: collector,
	}
}

// Root 处理 GET /
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to Outlaw Legal AI API",
		"usage":   "POST /legal-support with JSON body",
	})
}

// APIInfo 处理 GET /api
func (h *SystemHandler) APIInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":        "Outlaw Legal AI",
		"version":     "1.0.0",
		"description": "Automated legal-support and analysis engine",
		"endpoints": map[string]string{
			"legal_analysis": "POST /legal-support",
			"batch_analysis": "POST /legal-support/batch",
			"health":         "GET /health",
		},
		"supported_outputs": []string{"json", "pdf", "html", "markdown", "text"},
		"min_facts_length":  constants.MinFactsLength,
	})
}

// Health 处理 GET /health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "outlaw-legal-ai",
	})
}

// Jurisdictions 处理 GET /jurisdictions
func (h *SystemHandler) Jurisdictions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"jurisdictions": legal.SupportedJurisdictions(),
	})
}

// Analytics 处理 GET /analytics
func (h *SystemHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	summary := h.collector.GetSummary()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total_requests": summary.TotalRequests,
		"metrics":        summary,
		"cache_stats":    h.cache.GetStats(),
		"uptime_seconds": summary.UptimeSeconds,
	})
}
