// Package models - model món ăn (Item) thuộc domain item.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item định nghĩa mô hình món ăn của một nhà hàng.
// Giá lưu float64, client render 2 chữ số thập phân.
// Xóa món là hard delete; món đang nằm trong menu thì không được xóa.
type Item struct {
	_Relationships struct{}           `relationship:"collection:menus,field:itemIds,message:Không thể xóa món vì món đang nằm trong %d menu. Vui lòng gỡ món khỏi các menu trước."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	RestaurantID   primitive.ObjectID `json:"restaurantId" bson:"restaurantId" index:"single"`
	Name           string             `json:"name" bson:"name"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	Price          float64            `json:"price" bson:"price"`
	ImageURL       string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Category       string             `json:"category,omitempty" bson:"category,omitempty"`
	IsAvailable    bool               `json:"isAvailable" bson:"isAvailable" default:"true"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
