// Package models định nghĩa model lịch chiếu thực đơn theo khung giờ.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Schedule lịch tự động gán thực đơn cho màn hình theo thứ trong tuần và khung giờ.
// DayOfWeek: 0 = Chủ nhật ... 6 = Thứ bảy. StartTime/EndTime dạng "HH:MM" 24 giờ.
type Schedule struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RestaurantID primitive.ObjectID `json:"restaurantId" bson:"restaurantId" index:"single"`
	DisplayID    primitive.ObjectID `json:"displayId" bson:"displayId" index:"compound:display_day"`
	MenuID       primitive.ObjectID `json:"menuId" bson:"menuId"`
	DayOfWeek    int                `json:"dayOfWeek" bson:"dayOfWeek" index:"compound:display_day"`
	StartTime    string             `json:"startTime" bson:"startTime"`
	EndTime      string             `json:"endTime" bson:"endTime"`
	IsActive     bool               `json:"isActive" bson:"isActive" default:"true"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
