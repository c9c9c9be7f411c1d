package schedulehdl

import (
	"fmt"

	basehdl "menu_board/internal/api/base/handler"
	basesvc "menu_board/internal/api/base/service"
	scheduledto "menu_board/internal/api/schedule/dto"
	models "menu_board/internal/api/schedule/models"
	schedulesvc "menu_board/internal/api/schedule/service"
	"menu_board/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScheduleHandler xử lý các request liên quan đến lịch chiếu
type ScheduleHandler struct {
	*basehdl.BaseHandler[models.Schedule, scheduledto.ScheduleCreateInput, scheduledto.ScheduleUpdateInput]
	scheduleService *schedulesvc.ScheduleService
}

// NewScheduleHandler tạo instance mới của ScheduleHandler
func NewScheduleHandler() (*ScheduleHandler, error) {
	scheduleService, err := schedulesvc.NewScheduleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Schedule, scheduledto.ScheduleCreateInput, scheduledto.ScheduleUpdateInput](scheduleService)
	return &ScheduleHandler{
		BaseHandler:     baseHandler,
		scheduleService: scheduleService,
	}, nil
}

func restaurantIDFromParam(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id), common.StatusBadRequest, err)
	}
	restID := c.Locals("restaurant_id")
	if restID == nil || restID.(string) != objID.Hex() {
		return primitive.NilObjectID, common.ErrWrongRestaurant
	}
	return objID, nil
}

func (h *ScheduleHandler) scheduleIDFromParam(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id), common.StatusBadRequest, err)
	}
	if err := h.ValidateRestaurantAccess(c, id); err != nil {
		return primitive.NilObjectID, err
	}
	return objID, nil
}

// HandleCreateForRestaurant tạo lịch chiếu mới cho nhà hàng
func (h *ScheduleHandler) HandleCreateForRestaurant(c fiber.Ctx) error {
	restaurantID, err := restaurantIDFromParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input scheduledto.ScheduleCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := schedulesvc.ValidateTimeWindow(input.StartTime, input.EndTime); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	displayID, _ := primitive.ObjectIDFromHex(input.DisplayID)
	menuID, _ := primitive.ObjectIDFromHex(input.MenuID)
	if err := h.scheduleService.ValidateOwnership(c.Context(), restaurantID, displayID, menuID); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	schedule := models.Schedule{
		RestaurantID: restaurantID,
		DisplayID:    displayID,
		MenuID:       menuID,
		DayOfWeek:    input.DayOfWeek,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		IsActive:     true,
	}
	created, err := h.scheduleService.BaseServiceMongoImpl.InsertOne(c.Context(), schedule)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, created, nil)
	return nil
}

// HandleListForRestaurant liệt kê lịch chiếu của nhà hàng
func (h *ScheduleHandler) HandleListForRestaurant(c fiber.Ctx) error {
	restaurantID, err := restaurantIDFromParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	schedules, err := h.scheduleService.BaseServiceMongoImpl.Find(c.Context(), bson.M{"restaurantId": restaurantID}, nil)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, schedules, nil)
	return nil
}

// HandleUpdate cập nhật lịch chiếu (partial update)
func (h *ScheduleHandler) HandleUpdate(c fiber.Ctx) error {
	scheduleID, err := h.scheduleIDFromParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input scheduledto.ScheduleUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	existing, err := h.scheduleService.BaseServiceMongoImpl.FindOneById(c.Context(), scheduleID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	set := make(map[string]interface{})
	displayID := existing.DisplayID
	menuID := existing.MenuID
	startTime := existing.StartTime
	endTime := existing.EndTime
	if input.DisplayID != "" {
		displayID, _ = primitive.ObjectIDFromHex(input.DisplayID)
		set["displayId"] = displayID
	}
	if input.MenuID != "" {
		menuID, _ = primitive.ObjectIDFromHex(input.MenuID)
		set["menuId"] = menuID
	}
	if input.DayOfWeek != nil {
		if *input.DayOfWeek < 0 || *input.DayOfWeek > 6 {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "dayOfWeek phải trong khoảng 0-6", common.StatusBadRequest, nil))
			return nil
		}
		set["dayOfWeek"] = *input.DayOfWeek
	}
	if input.StartTime != "" {
		startTime = input.StartTime
		set["startTime"] = startTime
	}
	if input.EndTime != "" {
		endTime = input.EndTime
		set["endTime"] = endTime
	}
	if input.IsActive != nil {
		set["isActive"] = *input.IsActive
	}
	if len(set) == 0 {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Không có dữ liệu nào để cập nhật", common.StatusBadRequest, nil))
		return nil
	}

	if err := schedulesvc.ValidateTimeWindow(startTime, endTime); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if input.DisplayID != "" || input.MenuID != "" {
		if err := h.scheduleService.ValidateOwnership(c.Context(), existing.RestaurantID, displayID, menuID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
	}

	updated, err := h.scheduleService.BaseServiceMongoImpl.UpdateById(c.Context(), scheduleID, &basesvc.UpdateData{Set: set})
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, updated, nil)
	return nil
}

// HandleDelete xóa lịch chiếu
func (h *ScheduleHandler) HandleDelete(c fiber.Ctx) error {
	scheduleID, err := h.scheduleIDFromParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.scheduleService.BaseServiceMongoImpl.DeleteById(c.Context(), scheduleID)
	h.HandleResponse(c, nil, err)
	return nil
}
