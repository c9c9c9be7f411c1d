// Test trạng thái xoay của kiosk khi nhận state mới qua refresh.
package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func stateWithItems(ids ...string) *DisplayState {
	items := make([]Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, Item{ID: id, Name: "Món " + id})
	}
	return &DisplayState{
		Display: Display{ID: "disp-1", Name: "Quầy 1"},
		Menu:    &Menu{ID: "menu-1", Name: "Thực đơn sáng", Items: items},
	}
}

func TestKioskView_DoiDanhSachMonResetChuKyXoay(t *testing.T) {
	resets := 0
	view := newKioskView(stateWithItems("a", "b", "c"), func() { resets++ })

	// Đã xoay dở chừng qua vài tick
	view.tick()
	view.tick()
	assert.Equal(t, 2, view.rotation)

	// Danh sách món đổi: quay về món đầu và tính lại chu kỳ 5 giây từ đầu
	view.applyState(stateWithItems("a", "b", "c", "d"))
	assert.Equal(t, 0, view.rotation)
	assert.Equal(t, 1, resets)
}

func TestKioskView_RefreshCungDanhSachGiuNguyenViTri(t *testing.T) {
	resets := 0
	view := newKioskView(stateWithItems("a", "b", "c"), func() { resets++ })

	view.tick()
	// Refresh không đổi món (vd chỉ đổi giá): giữ vị trí xoay, không reset timer
	view.applyState(stateWithItems("a", "b", "c"))
	assert.Equal(t, 1, view.rotation)
	assert.Equal(t, 0, resets)
}

func TestKioskView_GoMenuResetVeIdle(t *testing.T) {
	resets := 0
	view := newKioskView(stateWithItems("a", "b"), func() { resets++ })
	view.tick()

	// Menu bị gỡ gán: itemKey về rỗng, chu kỳ xoay reset
	unassigned := stateWithItems()
	unassigned.Menu = nil
	view.applyState(unassigned)
	assert.Equal(t, 0, view.rotation)
	assert.Equal(t, 1, resets)
}
