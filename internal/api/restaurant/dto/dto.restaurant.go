package restaurantdto

// RestaurantCreateInput đầu vào tạo nhà hàng (CRUD).
type RestaurantCreateInput struct {
	Name        string `json:"name" validate:"required,no_xss" maxLength:"200"`
	Description string `json:"description" validate:"omitempty,no_xss" maxLength:"1000"`
	Address     string `json:"address" validate:"omitempty,no_xss" maxLength:"500"`
	Phone       string `json:"phone" validate:"omitempty" maxLength:"20"`
}

// RestaurantUpdateInput đầu vào cập nhật nhà hàng. Field nil = không đổi;
// field text optional gửi chuỗi rỗng nghĩa là xóa giá trị cũ.
type RestaurantUpdateInput struct {
	Name        string  `json:"name" validate:"omitempty,no_xss" maxLength:"200"`
	Description *string `json:"description" validate:"omitempty,no_xss" maxLength:"1000"`
	Address     *string `json:"address" validate:"omitempty,no_xss" maxLength:"500"`
	Phone       *string `json:"phone" validate:"omitempty" maxLength:"20"`
}
