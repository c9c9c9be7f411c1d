// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User định nghĩa mô hình người dùng (chủ nhà hàng).
// Token chứa token xác thực mới nhất của người dùng, được cập nhật mỗi lần login.
// Mỗi user sở hữu đúng một nhà hàng (RestaurantID).
type User struct {
	_Relationships struct{}           `relationship:"collection:restaurants,field:ownerId,message:Không thể xóa user vì user đang sở hữu %d nhà hàng. Vui lòng xóa nhà hàng trước."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Email          string             `json:"email" bson:"email" index:"unique"`
	Password       string             `json:"-" bson:"password,omitempty"`
	Salt           string             `json:"-" bson:"salt,omitempty"`
	Token          string             `json:"token,omitempty" bson:"token,omitempty"`
	RestaurantID   primitive.ObjectID `json:"restaurantId,omitempty" bson:"restaurantId,omitempty"`
	IsBlock        bool               `json:"-" bson:"isBlock"`
	BlockNote      string             `json:"-" bson:"blockNote,omitempty"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
