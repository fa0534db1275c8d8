package cache

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

func newTestCache(t *testing.T, maxSize int) *Cache {
	t.Helper()
	c, err := New(maxSize, time.Hour)
	if err != nil {
		t.Fatal("Failed to create cache:", err)
	}
	return c
}

func TestCacheGetMissing(t *testing.T) {
	c := newTestCache(t, 10)

	// 未写入的键应该未命中
	if _, ok := c.Get("missing"); ok {
		t.Error("Get should miss for a key that was never set")
	}
}

func TestCacheSetGet(t *testing.T) {
	c := newTestCache(t, 10)

	c.Set("k1", "v1", time.Minute)

	value, ok := c.Get("k1")
	if !ok {
		t.Fatal("Get should hit immediately after Set")
	}
	if value.(string) != "v1" {
		t.Errorf("Get returned %v, want v1", value)
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	c := newTestCache(t, 10)

	// 1. 写入一个50ms过期的条目
	c.Set("k1", "v1", 50*time.Millisecond)

	// 2. 立即读取应该命中
	if _, ok := c.Get("k1"); !ok {
		t.Error("Get should hit before TTL expires")
	}

	// 3. 等待过期后读取应该未命中，且条目被惰性删除
	time.Sleep(80 * time.Millisecond)
	if _, ok := c.Get("k1"); ok {
		t.Error("Get should miss after TTL expires")
	}
	if c.Size() != 0 {
		t.Errorf("expired entry should be removed on access, size = %d", c.Size())
	}
}

func TestCacheSizeCountsExpired(t *testing.T) {
	c := newTestCache(t, 10)

	// 过期但未被读取的条目仍占用存储，Size反映存储占用而非存活数量
	c.Set("k1", "v1", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if c.Size() != 1 {
		t.Errorf("Size should count expired-but-unread entries, got %d", c.Size())
	}
}

func TestCacheLRUEviction(t *testing.T) {
	c := newTestCache(t, 3)

	// 1. 依次写入k1..k4，容量为3
	c.Set("k1", 1, time.Minute)
	c.Set("k2", 2, time.Minute)
	c.Set("k3", 3, time.Minute)
	c.Set("k4", 4, time.Minute)

	// 2. 最旧的k1应被淘汰，其余保留
	if _, ok := c.Get("k1"); ok {
		t.Error("k1 should have been evicted")
	}
	for _, key := range []string{"k2", "k3", "k4"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("%s should still be cached", key)
		}
	}
}

func TestCacheGetPromotesLRU(t *testing.T) {
	c := newTestCache(t, 3)

	c.Set("k1", 1, time.Minute)
	c.Set("k2", 2, time.Minute)
	c.Set("k3", 3, time.Minute)

	// 读取k1把它提升为最近使用，下次淘汰的应该是k2
	c.Get("k1")
	c.Set("k4", 4, time.Minute)

	if _, ok := c.Get("k2"); ok {
		t.Error("k2 should have been evicted after k1 was promoted")
	}
	if _, ok := c.Get("k1"); !ok {
		t.Error("k1 should survive eviction after being read")
	}
}

func TestCacheSetPromotesExisting(t *testing.T) {
	c := newTestCache(t, 3)

	c.Set("k1", 1, time.Minute)
	c.Set("k2", 2, time.Minute)
	c.Set("k3", 3, time.Minute)

	// 重写k1把它提升为最近使用
	c.Set("k1", 10, time.Minute)
	c.Set("k4", 4, time.Minute)

	if _, ok := c.Get("k2"); ok {
		t.Error("k2 should have been evicted")
	}
	value, ok := c.Get("k1")
	if !ok {
		t.Fatal("k1 should survive eviction after being rewritten")
	}
	if value.(int) != 10 {
		t.Errorf("k1 = %v, want 10", value)
	}
}

func TestCacheClear(t *testing.T) {
	c := newTestCache(t, 10)

	c.Set("k1", 1, time.Minute)
	c.Set("k2", 2, time.Minute)

	c.Clear()
	if c.Size() != 0 {
		t.Errorf("Size after Clear = %d, want 0", c.Size())
	}
	if _, ok := c.Get("k1"); ok {
		t.Error("Get should miss after Clear")
	}

	// Clear可重复调用
	c.Clear()
}

func TestCacheStats(t *testing.T) {
	c := newTestCache(t, 5)

	c.Set("k1", 1, time.Minute)
	c.Set("k2", 2, time.Minute)

	stats := c.GetStats()
	if stats.Size != 2 {
		t.Errorf("stats.Size = %d, want 2", stats.Size)
	}
	if stats.MaxSize != 5 {
		t.Errorf("stats.MaxSize = %d, want 5", stats.MaxSize)
	}
}

func TestCacheGetOrCompute(t *testing.T) {
	c := newTestCache(t, 10)
	calls := 0

	compute := func() (interface{}, error) {
		calls++
		return "computed", nil
	}

	// 1. 第一次调用执行compute并缓存
	value, err := c.GetOrCompute("k1", time.Minute, compute)
	if err != nil {
		t.Fatal("GetOrCompute returned error:", err)
	}
	if value.(string) != "computed" {
		t.Errorf("value = %v, want computed", value)
	}

	// 2. 第二次调用命中缓存，compute不再执行
	if _, err := c.GetOrCompute("k1", time.Minute, compute); err != nil {
		t.Fatal("GetOrCompute returned error:", err)
	}
	if calls != 1 {
		t.Errorf("compute ran %d times, want 1", calls)
	}
}

func TestCacheGetOrComputeError(t *testing.T) {
	c := newTestCache(t, 10)

	wantErr := errors.New("lookup failed")
	_, err := c.GetOrCompute("k1", time.Minute, func() (interface{}, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("GetOrCompute error = %v, want %v", err, wantErr)
	}

	// 失败的结果不应被缓存
	if c.Size() != 0 {
		t.Errorf("failed compute should not be cached, size = %d", c.Size())
	}
}

func TestCacheInvalidConfig(t *testing.T) {
	if _, err := New(0, time.Hour); err == nil {
		t.Error("New should reject max size of zero")
	}
	if _, err := New(-1, time.Hour); err == nil {
		t.Error("New should reject negative max size")
	}
	if _, err := New(10, -time.Second); err == nil {
		t.Error("New should reject negative default ttl")
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := newTestCache(t, 100)

	// 并发读写不应破坏内部状态（配合-race检测）
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("k%d", j%20)
				c.Set(key, n, time.Minute)
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	if size := c.Size(); size > 20 {
		t.Errorf("size = %d, want at most 20", size)
	}
}
