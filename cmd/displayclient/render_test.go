// Test các hàm format thuần của màn hình kiosk.
package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotationDots(t *testing.T) {
	assert.Equal(t, "● ○ ○", rotationDots(3, 0))
	assert.Equal(t, "○ ● ○", rotationDots(3, 1))
	assert.Equal(t, "●", rotationDots(1, 0))
}

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "Phở", stripANSI(ansiBold+"Phở"+ansiReset))
	assert.Equal(t, "abc", stripANSI("abc"))
}

func TestMenuItemKey_ThayDoiKhiDanhSachDoi(t *testing.T) {
	state := &DisplayState{Menu: &Menu{Items: []Item{{ID: "a"}, {ID: "b"}}}}
	key1 := menuItemKey(state)

	state.Menu.Items = append(state.Menu.Items, Item{ID: "c"})
	key2 := menuItemKey(state)
	assert.NotEqual(t, key1, key2)

	// Không có menu thì key rỗng
	assert.Equal(t, "", menuItemKey(&DisplayState{}))
}
