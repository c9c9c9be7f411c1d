package displayhdl

import (
	"fmt"

	basehdl "menu_board/internal/api/base/handler"
	basesvc "menu_board/internal/api/base/service"
	displaydto "menu_board/internal/api/display/dto"
	models "menu_board/internal/api/display/models"
	displaysvc "menu_board/internal/api/display/service"
	"menu_board/internal/common"
	"menu_board/internal/global"
	"menu_board/internal/logger"
	"menu_board/internal/storage"

	"github.com/gofiber/fiber/v3"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DisplayHandler xử lý các request liên quan đến màn hình
type DisplayHandler struct {
	*basehdl.BaseHandler[models.Display, displaydto.DisplayCreateInput, displaydto.DisplayUpdateInput]
	displayService *displaysvc.DisplayService
}

// NewDisplayHandler tạo instance mới của DisplayHandler
func NewDisplayHandler() (*DisplayHandler, error) {
	displayService, err := displaysvc.NewDisplayService()
	if err != nil {
		return nil, fmt.Errorf("failed to create display service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Display, displaydto.DisplayCreateInput, displaydto.DisplayUpdateInput](displayService)
	return &DisplayHandler{
		BaseHandler:    baseHandler,
		displayService: displayService,
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

func (h *DisplayHandler) displayIDFromParam(c fiber.Ctx) (primitive.ObjectID, error) {
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

// HandleCreateForRestaurant tạo màn hình mới với mã ghép nối tự sinh
func (h *DisplayHandler) HandleCreateForRestaurant(c fiber.Ctx) error {
	restaurantID, err := restaurantIDFromParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input displaydto.DisplayCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	created, err := h.displayService.Create(c.Context(), restaurantID, input.Name)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, created, nil)
	return nil
}

// HandleListForRestaurant liệt kê màn hình của nhà hàng
func (h *DisplayHandler) HandleListForRestaurant(c fiber.Ctx) error {
	restaurantID, err := restaurantIDFromParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	displays, err := h.displayService.BaseServiceMongoImpl.Find(c.Context(), bson.M{"restaurantId": restaurantID}, nil)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, displays, nil)
	return nil
}

// HandleGetByID lấy thông tin một màn hình
func (h *DisplayHandler) HandleGetByID(c fiber.Ctx) error {
	displayID, err := h.displayIDFromParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	display, err := h.displayService.BaseServiceMongoImpl.FindOneById(c.Context(), displayID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, display, nil)
	return nil
}

// HandleUpdate cập nhật thông tin màn hình
func (h *DisplayHandler) HandleUpdate(c fiber.Ctx) error {
	displayID, err := h.displayIDFromParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input displaydto.DisplayUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	set := make(map[string]interface{})
	if input.Name != "" {
		set["name"] = input.Name
	}
	if len(set) == 0 {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Không có dữ liệu nào để cập nhật", common.StatusBadRequest, nil))
		return nil
	}

	updated, err := h.displayService.BaseServiceMongoImpl.UpdateById(c.Context(), displayID, &basesvc.UpdateData{Set: set})
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, updated, nil)
	return nil
}

// HandleDelete xóa màn hình cùng lịch chiếu của nó
func (h *DisplayHandler) HandleDelete(c fiber.Ctx) error {
	displayID, err := h.displayIDFromParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.displayService.Delete(c.Context(), displayID)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleRegenerateCode cấp mã ghép nối mới, kiosk đang kết nối phải ghép lại
func (h *DisplayHandler) HandleRegenerateCode(c fiber.Ctx) error {
	displayID, err := h.displayIDFromParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	updated, err := h.displayService.RegenerateCode(c.Context(), displayID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	logger.LogPairing("regenerate_code", displayID.Hex(), c, nil)
	h.HandleResponse(c, updated, nil)
	return nil
}

// HandleAssignMenu gán (hoặc gỡ) thực đơn cho màn hình
func (h *DisplayHandler) HandleAssignMenu(c fiber.Ctx) error {
	displayID, err := h.displayIDFromParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input displaydto.AssignMenuInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	updated, err := h.displayService.AssignMenu(c.Context(), displayID, input.MenuID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, updated, nil)
	return nil
}

// HandleUploadMedia upload media màn chờ cho màn hình (multipart field "media", ảnh hoặc video)
func (h *DisplayHandler) HandleUploadMedia(c fiber.Ctx) error {
	displayID, err := h.displayIDFromParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	fileHeader, err := c.FormFile("media")
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeUpload, "Thiếu file upload (field 'media')", common.StatusBadRequest, err))
		return nil
	}

	mediaType, err := storage.DetectMediaType(fileHeader)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	cfg := global.MongoDB_ServerConfig
	fileName, err := storage.SaveUploadedFile(fileHeader, cfg.UploadDir)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	// Xóa media cũ (nếu có) trước khi gán media mới
	if existing, findErr := h.displayService.BaseServiceMongoImpl.FindOneById(c.Context(), displayID); findErr == nil && existing.Media != nil {
		storage.RemoveByURL(existing.Media.URL, cfg.UploadDir)
	}

	media := models.DisplayMedia{
		URL:  storage.PublicURL(cfg.PublicBaseURL, fileName),
		Type: mediaType,
	}
	updated, err := h.displayService.SetMedia(c.Context(), displayID, media)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, updated, nil)
	return nil
}

// HandleClearMedia gỡ media màn chờ của màn hình và xóa file trên đĩa
func (h *DisplayHandler) HandleClearMedia(c fiber.Ctx) error {
	displayID, err := h.displayIDFromParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	cfg := global.MongoDB_ServerConfig
	if existing, findErr := h.displayService.BaseServiceMongoImpl.FindOneById(c.Context(), displayID); findErr == nil && existing.Media != nil {
		storage.RemoveByURL(existing.Media.URL, cfg.UploadDir)
	}

	updated, err := h.displayService.ClearMedia(c.Context(), displayID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, updated, nil)
	return nil
}

// HandlePairingQR trả ảnh PNG mã QR chứa link ghép nối của màn hình
func (h *DisplayHandler) HandlePairingQR(c fiber.Ctx) error {
	displayID, err := h.displayIDFromParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	display, err := h.displayService.BaseServiceMongoImpl.FindOneById(c.Context(), displayID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	content := display.PairingCode
	if frontendURL := global.MongoDB_ServerConfig.FrontendURL; frontendURL != "" {
		content = fmt.Sprintf("%s/pair?code=%s", frontendURL, display.PairingCode)
	}
	png, err := qrcode.Encode(content, qrcode.Medium, 256)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeInternalServer, "Không thể tạo mã QR", common.StatusInternalServerError, err))
		return nil
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// HandlePair kiosk ghép nối với màn hình qua mã (route public, không cần đăng nhập)
func (h *DisplayHandler) HandlePair(c fiber.Ctx) error {
	var input displaydto.PairInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	state, err := h.displayService.Pair(c.Context(), input.PairingCode)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	logger.LogPairing("pair", state.Display.ID.Hex(), c, nil)
	h.HandleResponse(c, state, nil)
	return nil
}

// HandleGetByCode kiosk lấy trạng thái màn hình theo mã đã ghép (route public)
func (h *DisplayHandler) HandleGetByCode(c fiber.Ctx) error {
	state, err := h.displayService.GetStateByCode(c.Context(), c.Params("code"))
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, state, nil)
	return nil
}
