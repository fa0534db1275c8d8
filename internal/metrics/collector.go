package metrics

import (
	"time"

	"go.uber.org/atomic"
)

// Collector 请求指标收集器
//
// 只保留轻量的进程内计数，不做持久化。
type Collector struct {
	startTime time.Time

	totalRequests  atomic.Int64
	errorRequests  atomic.Int64
	status2xx      atomic.Int64
	status4xx      atomic.Int64
	status5xx      atomic.Int64
	totalLatencyNs atomic.Int64
}

// Summary 指标汇总
type Summary struct {
	TotalRequests int64   `json:"total_requests"`
	ErrorRequests int64   `json:"error_requests"`
	Status2xx     int64   `json:"status_2xx"`
	Status4xx     int64   `json:"status_4xx"`
	Status5xx     int64   `json:"status_5xx"`
	AvgLatencyMs  float64 `json:"avg_latency_ms"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// NewCollector 创建指标收集器
func NewCollector() *Collector {
	return &Collector{startTime: time.Now()}
}

// Record 记录一次请求
func (c *Collector) Record(statusCode int, latency time.Duration) {
	c.totalRequests.Inc()
	c.totalLatencyNs.Add(latency.Nanoseconds())

	switch {
	case statusCode >= 500:
		c.status5xx.Inc()
		c.errorRequests.Inc()
	case statusCode >= 400:
		c.status4xx.Inc()
		c.errorRequests.Inc()
	case statusCode >= 200 && statusCode < 300:
		c.status2xx.Inc()
	}
}

// GetSummary 获取指标汇总
func (c *Collector) GetSummary() Summary {
	total := c.totalRequests.Load()
	avgMs := 0.0
	if total > 0 {
		avgMs = float64(c.totalLatencyNs.Load()) / float64(total) / float64(time.Millisecond)
	}

	return Summary{
		TotalRequests: total,
		ErrorRequests: c.errorRequests.Load(),
		Status2xx:     c.status2xx.Load(),
		Status4xx:     c.status4xx.Load(),
		Status5xx:     c.status5xx.Load(),
		AvgLatencyMs:  avgMs,
		UptimeSeconds: time.Since(c.startTime).Seconds(),
	}
}
