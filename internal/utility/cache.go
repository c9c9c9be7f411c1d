package utility

import (
	"sync"
	"time"
)

type cacheEntry struct {
	value     interface{}
	expiresAt time.Time
}

// Cache là struct để quản lý cache trong bộ nhớ có TTL theo từng entry.
// Get kiểm tra hạn ngay lúc đọc, goroutine cleanup chỉ dọn các entry đã
// hết hạn để map không phình ra theo thời gian.
type Cache struct {
	items    map[string]cacheEntry
	mu       sync.RWMutex
	ttl      time.Duration
	cleanup  time.Duration
	stopChan chan struct{}
}

// NewCache tạo một instance mới của Cache. ttl <= 0 nghĩa là entry không hết hạn.
func NewCache(ttl, cleanup time.Duration) *Cache {
	cache := &Cache{
		items:    make(map[string]cacheEntry),
		ttl:      ttl,
		cleanup:  cleanup,
		stopChan: make(chan struct{}),
	}
	go cache.cleanupLoop()
	return cache
}

// Set lưu giá trị vào cache với hạn tính từ thời điểm set
func (c *Cache) Set(key string, value interface{}) {
	entry := cacheEntry{value: value}
	if c.ttl > 0 {
		entry.expiresAt = time.Now().Add(c.ttl)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = entry
}

// Get lấy giá trị từ cache, entry đã quá hạn được coi như không tồn tại
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, exists := c.items[key]
	if !exists {
		return nil, false
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.value, true
}

// Delete xóa một key khỏi cache (ví dụ khi logout để vô hiệu token ngay)
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Stop dừng goroutine dọn dẹp
func (c *Cache) Stop() {
	close(c.stopChan)
}

// cleanupLoop dọn các entry đã hết hạn theo chu kỳ
func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for k, entry := range c.items {
				if !entry.expiresAt.IsZero() && now.After(entry.expiresAt) {
					delete(c.items, k)
				}
			}
			c.mu.Unlock()
		case <-c.stopChan:
			return
		}
	}
}
