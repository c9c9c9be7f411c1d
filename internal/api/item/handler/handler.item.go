package itemhdl

import (
	"fmt"

	basehdl "menu_board/internal/api/base/handler"
	basesvc "menu_board/internal/api/base/service"
	itemdto "menu_board/internal/api/item/dto"
	models "menu_board/internal/api/item/models"
	itemsvc "menu_board/internal/api/item/service"
	"menu_board/internal/common"
	"menu_board/internal/global"
	"menu_board/internal/storage"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ItemHandler xử lý các request liên quan đến món ăn
type ItemHandler struct {
	*basehdl.BaseHandler[models.Item, itemdto.ItemCreateInput, itemdto.ItemUpdateInput]
	itemService *itemsvc.ItemService
}

// NewItemHandler tạo instance mới của ItemHandler
func NewItemHandler() (*ItemHandler, error) {
	itemService, err := itemsvc.NewItemService()
	if err != nil {
		return nil, fmt.Errorf("failed to create item service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Item, itemdto.ItemCreateInput, itemdto.ItemUpdateInput](itemService)
	return &ItemHandler{
		BaseHandler: baseHandler,
		itemService: itemService,
	}, nil
}

// restaurantIDFromParam parse :id (restaurant) và kiểm tra đúng nhà hàng của user.
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

// itemIDFromParam parse :id (item) và kiểm tra món thuộc nhà hàng của user.
func (h *ItemHandler) itemIDFromParam(c fiber.Ctx) (primitive.ObjectID, error) {
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

// HandleCreateForRestaurant tạo món mới cho nhà hàng
func (h *ItemHandler) HandleCreateForRestaurant(c fiber.Ctx) error {
	restaurantID, err := restaurantIDFromParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input itemdto.ItemCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	item := models.Item{
		RestaurantID: restaurantID,
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		Category:     input.Category,
		ImageURL:     input.ImageURL,
		IsAvailable:  true,
	}
	created, err := h.itemService.BaseServiceMongoImpl.InsertOne(c.Context(), item)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, created, nil)
	return nil
}

// HandleListForRestaurant liệt kê món của nhà hàng
func (h *ItemHandler) HandleListForRestaurant(c fiber.Ctx) error {
	restaurantID, err := restaurantIDFromParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	items, err := h.itemService.BaseServiceMongoImpl.Find(c.Context(), bson.M{"restaurantId": restaurantID}, nil)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, items, nil)
	return nil
}

// updateSetFromInput gom các field client có gửi lên thành map $set.
// Field text optional là con trỏ: nil = không đổi, chuỗi rỗng = xóa giá trị cũ.
func updateSetFromInput(input *itemdto.ItemUpdateInput) map[string]interface{} {
	set := make(map[string]interface{})
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Price != nil {
		set["price"] = *input.Price
	}
	if input.Category != nil {
		set["category"] = *input.Category
	}
	if input.ImageURL != nil {
		set["imageUrl"] = *input.ImageURL
	}
	if input.IsAvailable != nil {
		set["isAvailable"] = *input.IsAvailable
	}
	return set
}

// HandleUpdate cập nhật món ăn (partial update)
func (h *ItemHandler) HandleUpdate(c fiber.Ctx) error {
	itemID, err := h.itemIDFromParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input itemdto.ItemUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	set := updateSetFromInput(&input)
	if len(set) == 0 {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Không có dữ liệu nào để cập nhật", common.StatusBadRequest, nil))
		return nil
	}

	updated, err := h.itemService.BaseServiceMongoImpl.UpdateById(c.Context(), itemID, &basesvc.UpdateData{Set: set})
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, updated, nil)
	return nil
}

// HandleToggleAvailability đảo trạng thái còn/hết món
func (h *ItemHandler) HandleToggleAvailability(c fiber.Ctx) error {
	itemID, err := h.itemIDFromParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	updated, err := h.itemService.ToggleAvailability(c.Context(), itemID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, updated, nil)
	return nil
}

// HandleDelete xóa món ăn (hard delete; món đang nằm trong menu sẽ bị chặn)
func (h *ItemHandler) HandleDelete(c fiber.Ctx) error {
	itemID, err := h.itemIDFromParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.itemService.BaseServiceMongoImpl.DeleteById(c.Context(), itemID)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleUploadImage upload ảnh cho món (multipart field "image")
func (h *ItemHandler) HandleUploadImage(c fiber.Ctx) error {
	itemID, err := h.itemIDFromParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeUpload, "Thiếu file upload (field 'image')", common.StatusBadRequest, err))
		return nil
	}

	mediaType, err := storage.DetectMediaType(fileHeader)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if mediaType != storage.MediaTypeImage {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeUpload, "File phải là ảnh", common.StatusBadRequest, nil))
		return nil
	}

	cfg := global.MongoDB_ServerConfig
	fileName, err := storage.SaveUploadedFile(fileHeader, cfg.UploadDir)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	// Xóa ảnh cũ (nếu có) trước khi gán ảnh mới
	if existing, findErr := h.itemService.BaseServiceMongoImpl.FindOneById(c.Context(), itemID); findErr == nil && existing.ImageURL != "" {
		storage.RemoveByURL(existing.ImageURL, cfg.UploadDir)
	}

	updated, err := h.itemService.SetImageURL(c.Context(), itemID, storage.PublicURL(cfg.PublicBaseURL, fileName))
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, updated, nil)
	return nil
}
