// Package utility - Test cache trong bộ nhớ.
package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetGetDelete(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)
	defer cache.Stop()

	cache.Set("token:abc", "user-1")
	value, exists := cache.Get("token:abc")
	assert.True(t, exists)
	assert.Equal(t, "user-1", value)

	cache.Delete("token:abc")
	_, exists = cache.Get("token:abc")
	assert.False(t, exists)
}

func TestCache_GetKhongTraEntryQuaHan(t *testing.T) {
	// Cleanup để rất xa: Get phải tự kiểm tra hạn chứ không dựa vào sweep
	cache := NewCache(10*time.Millisecond, time.Hour)
	defer cache.Stop()

	cache.Set("token:abc", "user-1")
	time.Sleep(100 * time.Millisecond)

	_, exists := cache.Get("token:abc")
	assert.False(t, exists)
}

func TestCache_EntryConHanVanSongQuaSweep(t *testing.T) {
	cache := NewCache(time.Minute, 20*time.Millisecond)
	defer cache.Stop()

	cache.Set("a", 1)

	// Qua vài chu kỳ cleanup, entry chưa hết hạn phải còn nguyên
	time.Sleep(80 * time.Millisecond)
	value, exists := cache.Get("a")
	assert.True(t, exists)
	assert.Equal(t, 1, value)
}

func TestCache_CleanupDonEntryHetHan(t *testing.T) {
	cache := NewCache(10*time.Millisecond, 20*time.Millisecond)
	defer cache.Stop()

	cache.Set("a", 1)

	assert.Eventually(t, func() bool {
		_, exists := cache.Get("a")
		return !exists
	}, time.Second, 10*time.Millisecond)
}
