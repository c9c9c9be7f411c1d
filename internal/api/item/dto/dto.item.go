package itemdto

// ItemCreateInput đầu vào tạo món ăn.
type ItemCreateInput struct {
	Name        string  `json:"name" validate:"required,no_xss" maxLength:"200"`
	Description string  `json:"description" validate:"omitempty,no_xss" maxLength:"1000"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"omitempty,no_xss" maxLength:"100"`
	ImageURL    string  `json:"imageUrl" validate:"omitempty,url"`
}

// ItemUpdateInput đầu vào cập nhật món ăn. Field không gửi lên (nil) sẽ không bị
// cập nhật; field text optional gửi chuỗi rỗng nghĩa là xóa giá trị cũ.
type ItemUpdateInput struct {
	Name        string   `json:"name" validate:"omitempty,no_xss" maxLength:"200"`
	Description *string  `json:"description" validate:"omitempty,no_xss" maxLength:"1000"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Category    *string  `json:"category" validate:"omitempty,no_xss" maxLength:"100"`
	ImageURL    *string  `json:"imageUrl" validate:"omitempty,url"`
	IsAvailable *bool    `json:"isAvailable"`
}
