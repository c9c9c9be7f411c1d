package restauranthdl

import (
	"fmt"

	basehdl "menu_board/internal/api/base/handler"
	restaurantdto "menu_board/internal/api/restaurant/dto"
	models "menu_board/internal/api/restaurant/models"
	restaurantsvc "menu_board/internal/api/restaurant/service"
	basesvc "menu_board/internal/api/base/service"
	"menu_board/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RestaurantHandler xử lý các request liên quan đến nhà hàng
type RestaurantHandler struct {
	*basehdl.BaseHandler[models.Restaurant, restaurantdto.RestaurantCreateInput, restaurantdto.RestaurantUpdateInput]
	restaurantService *restaurantsvc.RestaurantService
}

// NewRestaurantHandler tạo instance mới của RestaurantHandler
func NewRestaurantHandler() (*RestaurantHandler, error) {
	restaurantService, err := restaurantsvc.NewRestaurantService()
	if err != nil {
		return nil, fmt.Errorf("failed to create restaurant service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Restaurant, restaurantdto.RestaurantCreateInput, restaurantdto.RestaurantUpdateInput](restaurantService)
	return &RestaurantHandler{
		BaseHandler:       baseHandler,
		restaurantService: restaurantService,
	}, nil
}

// ownRestaurantID parse :id và kiểm tra nó đúng là nhà hàng của user đang đăng nhập.
func (h *RestaurantHandler) ownRestaurantID(c fiber.Ctx) (primitive.ObjectID, error) {
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

// HandleMyRestaurant lấy nhà hàng của user đang đăng nhập
func (h *RestaurantHandler) HandleMyRestaurant(c fiber.Ctx) error {
	userID := c.Locals("user_id")
	if userID == nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil))
		return nil
	}
	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err))
		return nil
	}
	restaurant, err := h.restaurantService.GetByOwner(c.Context(), objID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, restaurant, nil)
	return nil
}

// HandleGetById lấy nhà hàng theo id (chỉ nhà hàng của chính user)
func (h *RestaurantHandler) HandleGetById(c fiber.Ctx) error {
	objID, err := h.ownRestaurantID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	restaurant, err := h.restaurantService.BaseServiceMongoImpl.FindOneById(c.Context(), objID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, restaurant, nil)
	return nil
}

// updateSetFromInput gom các field client có gửi lên thành map $set.
// Field text optional là con trỏ: nil = không đổi, chuỗi rỗng = xóa giá trị cũ.
func updateSetFromInput(input *restaurantdto.RestaurantUpdateInput) map[string]interface{} {
	set := make(map[string]interface{})
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Address != nil {
		set["address"] = *input.Address
	}
	if input.Phone != nil {
		set["phone"] = *input.Phone
	}
	return set
}

// HandleUpdate cập nhật thông tin nhà hàng
func (h *RestaurantHandler) HandleUpdate(c fiber.Ctx) error {
	objID, err := h.ownRestaurantID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input restaurantdto.RestaurantUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	set := updateSetFromInput(&input)
	if len(set) == 0 {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Không có dữ liệu nào để cập nhật", common.StatusBadRequest, nil))
		return nil
	}

	updated, err := h.restaurantService.BaseServiceMongoImpl.UpdateById(c.Context(), objID, &basesvc.UpdateData{Set: set})
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, updated, nil)
	return nil
}

// HandleStats thống kê tổng quan của nhà hàng
func (h *RestaurantHandler) HandleStats(c fiber.Ctx) error {
	objID, err := h.ownRestaurantID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	stats, err := h.restaurantService.GetStats(c.Context(), objID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, stats, nil)
	return nil
}
