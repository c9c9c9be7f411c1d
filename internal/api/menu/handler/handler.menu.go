package menuhdl

import (
	"fmt"

	basehdl "menu_board/internal/api/base/handler"
	basesvc "menu_board/internal/api/base/service"
	menudto "menu_board/internal/api/menu/dto"
	models "menu_board/internal/api/menu/models"
	menusvc "menu_board/internal/api/menu/service"
	"menu_board/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuHandler xử lý các request liên quan đến thực đơn
type MenuHandler struct {
	*basehdl.BaseHandler[models.Menu, menudto.MenuCreateInput, menudto.MenuUpdateInput]
	menuService *menusvc.MenuService
}

// NewMenuHandler tạo instance mới của MenuHandler
func NewMenuHandler() (*MenuHandler, error) {
	menuService, err := menusvc.NewMenuService()
	if err != nil {
		return nil, fmt.Errorf("failed to create menu service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Menu, menudto.MenuCreateInput, menudto.MenuUpdateInput](menuService)
	return &MenuHandler{
		BaseHandler: baseHandler,
		menuService: menuService,
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

func (h *MenuHandler) menuIDFromParam(c fiber.Ctx) (primitive.ObjectID, error) {
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

// HandleCreateForRestaurant tạo thực đơn mới cho nhà hàng
func (h *MenuHandler) HandleCreateForRestaurant(c fiber.Ctx) error {
	restaurantID, err := restaurantIDFromParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input menudto.MenuCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	itemIDs, err := h.menuService.ValidateItemIDs(c.Context(), restaurantID, input.ItemIDs)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	menu := models.Menu{
		RestaurantID: restaurantID,
		Name:         input.Name,
		Description:  input.Description,
		ItemIDs:      itemIDs,
	}
	created, err := h.menuService.BaseServiceMongoImpl.InsertOne(c.Context(), menu)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, created, nil)
	return nil
}

// HandleListForRestaurant liệt kê thực đơn của nhà hàng
func (h *MenuHandler) HandleListForRestaurant(c fiber.Ctx) error {
	restaurantID, err := restaurantIDFromParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	menus, err := h.menuService.BaseServiceMongoImpl.Find(c.Context(), bson.M{"restaurantId": restaurantID}, nil)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, menus, nil)
	return nil
}

// HandleGetDetail lấy thực đơn kèm danh sách món populate theo thứ tự lưu
func (h *MenuHandler) HandleGetDetail(c fiber.Ctx) error {
	menuID, err := h.menuIDFromParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	detail, err := h.menuService.GetDetail(c.Context(), menuID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, detail, nil)
	return nil
}

// updateSetFromInput gom name/description client có gửi lên thành map $set.
// Description là con trỏ: nil = không đổi, chuỗi rỗng = xóa mô tả.
func updateSetFromInput(input *menudto.MenuUpdateInput) map[string]interface{} {
	set := make(map[string]interface{})
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	return set
}

// HandleUpdate cập nhật thực đơn. Gửi itemIds là ghi đè toàn bộ danh sách món (có thứ tự).
func (h *MenuHandler) HandleUpdate(c fiber.Ctx) error {
	menuID, err := h.menuIDFromParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input menudto.MenuUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	set := updateSetFromInput(&input)
	if input.ItemIDs != nil {
		menu, err := h.menuService.BaseServiceMongoImpl.FindOneById(c.Context(), menuID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		itemIDs, err := h.menuService.ValidateItemIDs(c.Context(), menu.RestaurantID, *input.ItemIDs)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		set["itemIds"] = itemIDs
	}
	if len(set) == 0 {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Không có dữ liệu nào để cập nhật", common.StatusBadRequest, nil))
		return nil
	}

	updated, err := h.menuService.BaseServiceMongoImpl.UpdateById(c.Context(), menuID, &basesvc.UpdateData{Set: set})
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, updated, nil)
	return nil
}

// HandleDelete xóa thực đơn, gỡ gán trên màn hình và xóa lịch chiếu tham chiếu
func (h *MenuHandler) HandleDelete(c fiber.Ctx) error {
	menuID, err := h.menuIDFromParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.menuService.Delete(c.Context(), menuID)
	h.HandleResponse(c, nil, err)
	return nil
}
