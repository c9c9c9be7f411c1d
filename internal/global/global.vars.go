package global

import (
	"menu_board/config"
	"menu_board/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users       string // Tên collection cho người dùng
	Restaurants string // Tên collection cho nhà hàng
	Items       string // Tên collection cho món ăn
	Menus       string // Tên collection cho thực đơn
	Displays    string // Tên collection cho màn hình hiển thị
	Schedules   string // Tên collection cho lịch chiếu thực đơn
}

// Các biến toàn cục
var Validate *validator.Validate                                            // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                           // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                              // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
