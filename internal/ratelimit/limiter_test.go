package ratelimit

import (
	"sync"
	"testing"
	"time"
)

func newTestLimiter(t *testing.T, maxRequests, windowSeconds int) *Limiter {
	t.Helper()
	l, err := New(maxRequests, windowSeconds)
	if err != nil {
		t.Fatal("Failed to create limiter:", err)
	}
	return l
}

func TestLimiterAllowsWithinLimit(t *testing.T) {
	l := newTestLimiter(t, 5, 10)

	for i := 0; i < 5; i++ {
		allowed, remaining, _ := l.IsAllowed("client1")
		if !allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
		if remaining < 0 {
			t.Errorf("remaining = %d, want >= 0", remaining)
		}
	}
}

func TestLimiterBlocksOverLimit(t *testing.T) {
	l := newTestLimiter(t, 3, 10)

	// 1. 前3次放行，剩余额度依次递减
	wantRemaining := []int{2, 1, 0}
	for i, want := range wantRemaining {
		allowed, remaining, retryAfter := l.IsAllowed("client1")
		if !allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
		if remaining != want {
			t.Errorf("request %d remaining = %d, want %d", i+1, remaining, want)
		}
		if retryAfter != 0 {
			t.Errorf("allowed request should have retryAfter 0, got %d", retryAfter)
		}
	}

	// 2. 第4次被拒绝，带重试等待时间
	allowed, remaining, retryAfter := l.IsAllowed("client1")
	if allowed {
		t.Error("4th request should be blocked")
	}
	if remaining != 0 {
		t.Errorf("blocked request remaining = %d, want 0", remaining)
	}
	if retryAfter <= 0 {
		t.Errorf("retryAfter = %d, want > 0", retryAfter)
	}
	if retryAfter > 11 {
		t.Errorf("retryAfter = %d, should not exceed window + 1", retryAfter)
	}
}

func TestLimiterTracksClientsIndependently(t *testing.T) {
	l := newTestLimiter(t, 2, 10)

	// client1用完额度
	l.IsAllowed("client1")
	l.IsAllowed("client1")
	if allowed, _, _ := l.IsAllowed("client1"); allowed {
		t.Error("client1 should be blocked")
	}

	// client2不受影响
	if allowed, _, _ := l.IsAllowed("client2"); !allowed {
		t.Error("client2 should be allowed")
	}
}

func TestLimiterWindowExpiration(t *testing.T) {
	l := newTestLimiter(t, 2, 1)

	// 1. 用完额度
	l.IsAllowed("client1")
	l.IsAllowed("client1")
	if allowed, _, _ := l.IsAllowed("client1"); allowed {
		t.Fatal("client1 should be blocked")
	}

	// 2. 等待窗口滑过后恢复
	time.Sleep(1100 * time.Millisecond)
	if allowed, _, _ := l.IsAllowed("client1"); !allowed {
		t.Error("client1 should be allowed after the window expires")
	}
}

func TestLimiterResetSpecificClient(t *testing.T) {
	l := newTestLimiter(t, 2, 10)

	l.IsAllowed("client1")
	l.IsAllowed("client1")
	l.IsAllowed("client2")
	l.IsAllowed("client2")

	// 只重置client1
	l.Reset("client1")

	if allowed, _, _ := l.IsAllowed("client1"); !allowed {
		t.Error("client1 should be allowed after reset")
	}
	if allowed, _, _ := l.IsAllowed("client2"); allowed {
		t.Error("client2 should remain blocked")
	}
}

func TestLimiterResetAll(t *testing.T) {
	l := newTestLimiter(t, 1, 10)

	l.IsAllowed("client1")
	l.IsAllowed("client2")

	l.ResetAll()

	if allowed, _, _ := l.IsAllowed("client1"); !allowed {
		t.Error("client1 should be allowed after ResetAll")
	}
	if allowed, _, _ := l.IsAllowed("client2"); !allowed {
		t.Error("client2 should be allowed after ResetAll")
	}
}

func TestLimiterStats(t *testing.T) {
	l := newTestLimiter(t, 10, 60)

	l.IsAllowed("client1")
	l.IsAllowed("client2")

	stats := l.GetStats()
	if stats.TrackedClients != 2 {
		t.Errorf("TrackedClients = %d, want 2", stats.TrackedClients)
	}
	if stats.MaxRequests != 10 {
		t.Errorf("MaxRequests = %d, want 10", stats.MaxRequests)
	}
	if stats.WindowSeconds != 60 {
		t.Errorf("WindowSeconds = %d, want 60", stats.WindowSeconds)
	}
}

func TestLimiterInvalidConfig(t *testing.T) {
	if _, err := New(0, 60); err == nil {
		t.Error("New should reject max requests of zero")
	}
	if _, err := New(100, 0); err == nil {
		t.Error("New should reject window of zero")
	}
	if _, err := New(-1, -1); err == nil {
		t.Error("New should reject negative values")
	}
}

func TestLimiterConcurrentAccess(t *testing.T) {
	l := newTestLimiter(t, 50, 10)

	// 并发请求不应超计或漏计（配合-race检测）
	var wg sync.WaitGroup
	allowedCount := make([]int, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				if allowed, _, _ := l.IsAllowed("shared"); allowed {
					allowedCount[n]++
				}
			}
		}(i)
	}
	wg.Wait()

	total := 0
	for _, n := range allowedCount {
		total += n
	}
	if total != 50 {
		t.Errorf("allowed %d requests, want exactly 50", total)
	}
}
