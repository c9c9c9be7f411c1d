// Package scheduledto chứa các cấu trúc input cho domain schedule.
package scheduledto

// ScheduleCreateInput dữ liệu đầu vào khi tạo lịch chiếu.
// DisplayID/MenuID là chuỗi hex, được transform sang ObjectID khi map vào model.
type ScheduleCreateInput struct {
	DisplayID string `json:"displayId" validate:"required,len=24,hexadecimal" transform:"str_objectid"`
	MenuID    string `json:"menuId" validate:"required,len=24,hexadecimal" transform:"str_objectid"`
	DayOfWeek int    `json:"dayOfWeek" validate:"min=0,max=6"`
	StartTime string `json:"startTime" validate:"required,time_hhmm"`
	EndTime   string `json:"endTime" validate:"required,time_hhmm"`
}

// ScheduleUpdateInput dữ liệu đầu vào khi cập nhật lịch chiếu (partial update)
type ScheduleUpdateInput struct {
	DisplayID string `json:"displayId" validate:"omitempty,len=24,hexadecimal" transform:"str_objectid,optional"`
	MenuID    string `json:"menuId" validate:"omitempty,len=24,hexadecimal" transform:"str_objectid,optional"`
	DayOfWeek *int   `json:"dayOfWeek" validate:"omitempty,min=0,max=6"`
	StartTime string `json:"startTime" validate:"omitempty,time_hhmm"`
	EndTime   string `json:"endTime" validate:"omitempty,time_hhmm"`
	IsActive  *bool  `json:"isActive"`
}
