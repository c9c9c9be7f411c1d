package authdto

// UserRegisterInput đầu vào đăng ký tài khoản chủ nhà hàng.
// Tạo đồng thời user và nhà hàng đầu tiên của user.
type UserRegisterInput struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,strong_password"`
	Name           string `json:"name" validate:"required,no_xss" maxLength:"100"`
	RestaurantName string `json:"restaurantName" validate:"required,no_xss" maxLength:"200"`
}

// UserLoginInput đầu vào đăng nhập.
type UserLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserCreateInput đầu vào tạo người dùng (CRUD).
type UserCreateInput struct {
	Name  string `json:"name" validate:"required,no_xss"`
	Email string `json:"email" validate:"required,email"`
}

// UserChangeInfoInput đầu vào thay đổi thông tin người dùng.
type UserChangeInfoInput struct {
	Name string `json:"name" validate:"omitempty,no_xss"`
}

// LoginResult kết quả đăng nhập/đăng ký trả về cho client.
type LoginResult struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}
