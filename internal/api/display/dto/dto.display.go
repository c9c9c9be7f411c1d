// Package displaydto chứa các cấu trúc input/output cho domain display.
package displaydto

import (
	displaymodels "menu_board/internal/api/display/models"
	menudto "menu_board/internal/api/menu/dto"
)

// DisplayCreateInput dữ liệu đầu vào khi tạo màn hình mới
type DisplayCreateInput struct {
	Name string `json:"name" validate:"required,no_xss" maxLength:"100"`
}

// DisplayUpdateInput dữ liệu đầu vào khi cập nhật màn hình
type DisplayUpdateInput struct {
	Name string `json:"name" validate:"omitempty,no_xss" maxLength:"100"`
}

// AssignMenuInput dữ liệu gán thực đơn cho màn hình. MenuID rỗng = gỡ gán.
type AssignMenuInput struct {
	MenuID string `json:"menuId" validate:"omitempty,len=24,hexadecimal"`
}

// PairInput dữ liệu ghép nối kiosk với màn hình
type PairInput struct {
	PairingCode string `json:"pairingCode" validate:"required,pairing_code"`
}

// DisplayState trạng thái đầy đủ màn hình trả cho kiosk: màn hình + thực đơn đã populate
type DisplayState struct {
	Display displaymodels.Display `json:"display"`
	Menu    *menudto.MenuDetail   `json:"menu,omitempty"`
}
