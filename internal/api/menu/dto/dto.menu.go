package menudto

import (
	itemmodels "menu_board/internal/api/item/models"
	menumodels "menu_board/internal/api/menu/models"
)

// MenuCreateInput đầu vào tạo thực đơn.
type MenuCreateInput struct {
	Name        string   `json:"name" validate:"required,no_xss" maxLength:"200"`
	Description string   `json:"description" validate:"omitempty,no_xss" maxLength:"1000"`
	ItemIDs     []string `json:"itemIds" validate:"omitempty,dive,len=24,hexadecimal"`
}

// MenuUpdateInput đầu vào cập nhật thực đơn. Field nil = không đổi;
// Description rỗng = xóa mô tả; ItemIDs mảng rỗng = xóa hết món khỏi menu.
type MenuUpdateInput struct {
	Name        string    `json:"name" validate:"omitempty,no_xss" maxLength:"200"`
	Description *string   `json:"description" validate:"omitempty,no_xss" maxLength:"1000"`
	ItemIDs     *[]string `json:"itemIds" validate:"omitempty,dive,len=24,hexadecimal"`
}

// MenuDetail là menu kèm danh sách món được populate theo đúng thứ tự lưu.
type MenuDetail struct {
	menumodels.Menu `bson:",inline"`
	Items           []itemmodels.Item `json:"items"`
}
