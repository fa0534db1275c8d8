package cache

import (
	"container/list"
	"fmt"
	"sync"
	"time"
)

// cacheEntry 缓存条目，带过期时间
type cacheEntry struct {
	key       string
	value     interface{}
	expiresAt time.Time
}

// Stats 缓存统计信息
type Stats struct {
	Size    int `json:"size"`
	MaxSize int `json:"max_size"`
}

// Cache 带TTL和LRU淘汰的内存缓存
//
// items和accessOrder始终保持一致：accessOrder中的元素与items中的键一一对应，
// 链表头部为最久未使用，尾部为最近使用。所有操作都是"检查-修改"复合操作，
// 必须整体持锁执行。
type Cache struct {
	mu          sync.Mutex
	items       map[string]*list.Element
	accessOrder *list.List // 元素值为*cacheEntry
	maxSize     int
	defaultTTL  time.Duration
}

// New 创建缓存，maxSize必须大于0
func New(maxSize int, defaultTTL time.Duration) (*Cache, error) {
	if maxSize <= 0 {
		return nil, fmt.Errorf("cache max size must be greater than zero, got %d", maxSize)
	}
	if defaultTTL <= 0 {
		return nil, fmt.Errorf("cache default ttl must be greater than zero, got %v", defaultTTL)
	}

	return &Cache{
		items:       make(map[string]*list.Element),
		accessOrder: list.New(),
		maxSize:     maxSize,
		defaultTTL:  defaultTTL,
	}, nil
}

// Get 获取未过期的缓存值
//
// 过期检查是惰性的：只在读取时发现过期才删除条目，没有后台清理。
// 命中时条目被提升为最近使用。未命中不是错误，返回ok=false。
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, exists := c.items[key]
	if !exists {
		return nil, false
	}

	entry := el.Value.(*cacheEntry)
	if time.Now().After(entry.expiresAt) {
		// 删除过期条目及其访问顺序记录
		c.accessOrder.Remove(el)
		delete(c.items, key)
		return nil, false
	}

	c.accessOrder.MoveToBack(el)
	return entry.value, true
}

// Set 写入缓存值
//
// 写入前如果已达容量上限，淘汰访问顺序最旧的一个条目（链表头部）。
// ttl小于等于0时使用默认TTL。写入/更新的键被提升为最近使用。
func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) >= c.maxSize {
		c.evictOldest()
	}

	expiresAt := time.Now().Add(ttl)

	if el, exists := c.items[key]; exists {
		entry := el.Value.(*cacheEntry)
		entry.value = value
		entry.expiresAt = expiresAt
		c.accessOrder.MoveToBack(el)
		return
	}

	el := c.accessOrder.PushBack(&cacheEntry{
		key:       key,
		value:     value,
		expiresAt: expiresAt,
	})
	c.items[key] = el
}

// evictOldest 淘汰访问顺序最旧的条目，调用方必须持锁
func (c *Cache) evictOldest() {
	front := c.accessOrder.Front()
	if front == nil {
		return
	}
	entry := front.Value.(*cacheEntry)
	c.accessOrder.Remove(front)
	delete(c.items, entry.key)
}

// Clear 清空所有缓存条目，可重复调用
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.accessOrder.Init()
}

// Size 当前条目数
//
// 注意：包含已过期但尚未被惰性清理的条目，反映的是存储占用而非"存活"数量。
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// GetStats 获取缓存统计信息
func (c *Cache) GetStats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Size:    len(c.items),
		MaxSize: c.maxSize,
	}
}

// GetOrCompute 查缓存，未命中时执行compute并缓存结果
//
// compute在锁外执行，外部调用（如法规API请求）不会阻塞其他缓存操作。
// compute返回错误时不缓存任何结果。
func (c *Cache) GetOrCompute(key string, ttl time.Duration, compute func() (interface{}, error)) (interface{}, error) {
	if value, ok := c.Get(key); ok {
		return value, nil
	}

	value, err := compute()
	if err != nil {
		return nil, err
	}

	c.Set(key, value, ttl)
	return value, nil
}
