// Package models - model thực đơn (Menu) thuộc domain menu.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Menu định nghĩa mô hình thực đơn của một nhà hàng.
// ItemIDs là danh sách món CÓ THỨ TỰ - thứ tự lưu trong mảng chính là thứ tự hiển thị.
// Mọi vị trí/kích thước per-item của editor là state tạm trên client, không lưu ở đây.
// Xóa menu: các màn hình đang gán menu này được gỡ gán, lịch chiếu tham chiếu bị xóa (cascade ở domain service).
type Menu struct {
	_Relationships struct{}             `relationship:"collection:displays,field:menuId,cascade:true|collection:schedules,field:menuId,cascade:true"`
	ID             primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	RestaurantID   primitive.ObjectID   `json:"restaurantId" bson:"restaurantId" index:"single"`
	Name           string               `json:"name" bson:"name"`
	Description    string               `json:"description,omitempty" bson:"description,omitempty"`
	ItemIDs        []primitive.ObjectID `json:"itemIds" bson:"itemIds"`
	CreatedAt      int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64                `json:"updatedAt" bson:"updatedAt"`
}
