package ratelimit

import (
	"fmt"
	"sync"
	"time"
)

// Stats 限流器统计信息
//
// TrackedClients统计有时间戳记录的客户端数，包含窗口外尚未被惰性清理的记录。
type Stats struct {
	TrackedClients int `json:"tracked_clients"`
	MaxRequests    int `json:"max_requests"`
	WindowSeconds  int `json:"window_seconds"`
}

// Limiter 基于滑动窗口的内存限流器
//
// 按客户端标识（通常是IP）记录精确的请求时间戳，窗口边界没有固定桶的
// 突发伪影。过期时间戳在每次访问时惰性清理，没有后台任务；客户端记录
// 只会被Reset主动删除。IsAllowed是"检查-追加"复合操作，整体持锁执行。
type Limiter struct {
	mu          sync.Mutex
	requests    map[string][]time.Time
	maxRequests int
	window      time.Duration
}

// New 创建限流器，maxRequests和windowSeconds都必须大于0
func New(maxRequests, windowSeconds int) (*Limiter, error) {
	if maxRequests <= 0 {
		return nil, fmt.Errorf("max requests must be greater than zero, got %d", maxRequests)
	}
	if windowSeconds <= 0 {
		return nil, fmt.Errorf("window seconds must be greater than zero, got %d", windowSeconds)
	}

	return &Limiter{
		requests:    make(map[string][]time.Time),
		maxRequests: maxRequests,
		window:      time.Duration(windowSeconds) * time.Second,
	}, nil
}

// IsAllowed 检查客户端的请求是否放行
//
// 返回(是否放行, 窗口内剩余额度, 建议重试等待秒数)。拒绝不是错误，
// 而是正常的否定结果，由HTTP层转换为429响应。重试秒数为窗口内最旧
// 请求滑出窗口所需时间向上取整，最小为1。
func (l *Limiter) IsAllowed(clientID string) (bool, int, int) {
	now := time.Now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	// 惰性清理窗口外的时间戳
	timestamps := l.requests[clientID]
	pruned := timestamps[:0]
	for _, ts := range timestamps {
		if ts.After(cutoff) {
			pruned = append(pruned, ts)
		}
	}
	l.requests[clientID] = pruned

	if len(pruned) >= l.maxRequests {
		oldest := pruned[0]
		for _, ts := range pruned[1:] {
			if ts.Before(oldest) {
				oldest = ts
			}
		}
		retryAfter := int(oldest.Add(l.window).Sub(now).Seconds()) + 1
		if retryAfter < 1 {
			retryAfter = 1
		}
		return false, 0, retryAfter
	}

	l.requests[clientID] = append(pruned, now)
	remaining := l.maxRequests - len(pruned) - 1
	return true, remaining, 0
}

// Reset 清除指定客户端的请求记录，下次请求从全新窗口开始
func (l *Limiter) Reset(clientID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.requests, clientID)
}

// ResetAll 清除所有客户端的请求记录
func (l *Limiter) ResetAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.requests = make(map[string][]time.Time)
}

// GetStats 获取限流器统计信息
func (l *Limiter) GetStats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Stats{
		TrackedClients: len(l.requests),
		MaxRequests:    l.maxRequests,
		WindowSeconds:  int(l.window.Seconds()),
	}
}
