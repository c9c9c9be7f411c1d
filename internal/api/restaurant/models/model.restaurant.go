// Package models - model nhà hàng (Restaurant), ranh giới tenant của toàn hệ thống.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Restaurant định nghĩa mô hình nhà hàng.
// Mọi entity khác (item, menu, display, schedule) đều mang restaurantId trỏ về đây.
type Restaurant struct {
	_Relationships struct{}           `relationship:"collection:items,field:restaurantId,message:Không thể xóa nhà hàng vì còn %d món ăn. Vui lòng xóa các món trước.|collection:menus,field:restaurantId,message:Không thể xóa nhà hàng vì còn %d menu. Vui lòng xóa các menu trước.|collection:displays,field:restaurantId,message:Không thể xóa nhà hàng vì còn %d màn hình. Vui lòng xóa các màn hình trước."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	Address        string             `json:"address,omitempty" bson:"address,omitempty"`
	Phone          string             `json:"phone,omitempty" bson:"phone,omitempty"`
	OwnerID        primitive.ObjectID `json:"ownerId" bson:"ownerId" index:"unique"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// RestaurantStats số liệu tổng quan của một nhà hàng.
// ActiveDisplays là số màn hình đã ghép nối (isPaired = true).
type RestaurantStats struct {
	TotalMenus     int64 `json:"totalMenus"`
	TotalItems     int64 `json:"totalItems"`
	TotalDisplays  int64 `json:"totalDisplays"`
	ActiveDisplays int64 `json:"activeDisplays"`
}
