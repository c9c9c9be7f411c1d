// Package models - model màn hình hiển thị (Display) thuộc domain display.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DisplayMedia media gán cho màn hình (ảnh hoặc video chiếu kèm menu).
type DisplayMedia struct {
	URL  string `json:"url" bson:"url"`
	Type string `json:"type" bson:"type"` // "image" hoặc "video"
}

// Display định nghĩa mô hình màn hình kiosk của một nhà hàng.
// PairingCode là mã 6 ký tự chữ hoa + số, sinh phía server, unique toàn hệ thống.
// Regenerate mã sẽ vô hiệu mã cũ và gỡ ghép nối màn hình (isPaired = false).
// Xóa màn hình: lịch chiếu tham chiếu bị xóa theo (cascade ở domain service).
type Display struct {
	_Relationships struct{}            `relationship:"collection:schedules,field:displayId,cascade:true"`
	ID             primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	RestaurantID   primitive.ObjectID  `json:"restaurantId" bson:"restaurantId" index:"single"`
	Name           string              `json:"name" bson:"name"`
	PairingCode    string              `json:"pairingCode" bson:"pairingCode" index:"unique"`
	IsPaired       bool                `json:"isPaired" bson:"isPaired"`
	PairedAt       int64               `json:"pairedAt,omitempty" bson:"pairedAt,omitempty"`
	MenuID         *primitive.ObjectID `json:"menuId,omitempty" bson:"menuId,omitempty"`
	Media          *DisplayMedia       `json:"media,omitempty" bson:"media,omitempty"`
	CreatedAt      int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64               `json:"updatedAt" bson:"updatedAt"`
}
