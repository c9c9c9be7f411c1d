// Package displaysvc - service màn hình: ghép nối kiosk, gán thực đơn, media chờ.
package displaysvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	basesvc "menu_board/internal/api/base/service"
	displaydto "menu_board/internal/api/display/dto"
	models "menu_board/internal/api/display/models"
	"menu_board/internal/api/events"
	menusvc "menu_board/internal/api/menu/service"
	"menu_board/internal/common"
	"menu_board/internal/global"
	"menu_board/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	pairingCodeLength      = 6
	pairingCodeMaxAttempts = 5
)

// DisplayService là cấu trúc chứa các phương thức liên quan đến màn hình
type DisplayService struct {
	*basesvc.BaseServiceMongoImpl[models.Display]
	menuService        *menusvc.MenuService
	scheduleCollection *mongo.Collection
}

// NewDisplayService tạo mới DisplayService
func NewDisplayService() (*DisplayService, error) {
	displayCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Displays)
	if !exist {
		return nil, fmt.Errorf("failed to get displays collection: %v", common.ErrNotFound)
	}
	scheduleCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Schedules)
	if !exist {
		return nil, fmt.Errorf("failed to get schedules collection: %v", common.ErrNotFound)
	}
	menuService, err := menusvc.NewMenuService()
	if err != nil {
		return nil, fmt.Errorf("failed to create menu service: %v", err)
	}

	return &DisplayService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Display](displayCollection),
		menuService:          menuService,
		scheduleCollection:   scheduleCollection,
	}, nil
}

// generateUniqueCode sinh mã ghép nối chưa tồn tại trong collection displays.
func (s *DisplayService) generateUniqueCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < pairingCodeMaxAttempts; attempt++ {
		code, err := utility.GeneratePairingCode(pairingCodeLength)
		if err != nil {
			return "", common.NewError(common.ErrCodeInternalServer, "Không thể sinh mã ghép nối", common.StatusInternalServerError, err)
		}
		exists, err := s.BaseServiceMongoImpl.DocumentExists(ctx, bson.M{"pairingCode": code})
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", common.NewError(common.ErrCodeInternalServer, "Không thể sinh mã ghép nối duy nhất sau nhiều lần thử", common.StatusInternalServerError, nil)
}

// Create tạo màn hình mới với mã ghép nối duy nhất, trạng thái chưa ghép nối.
func (s *DisplayService) Create(ctx context.Context, restaurantID primitive.ObjectID, name string) (*models.Display, error) {
	code, err := s.generateUniqueCode(ctx)
	if err != nil {
		return nil, err
	}

	display := models.Display{
		RestaurantID: restaurantID,
		Name:         name,
		PairingCode:  code,
		IsPaired:     false,
	}
	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, display)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// RegenerateCode cấp mã ghép nối mới và vô hiệu kết nối cũ (kiosk phải ghép lại).
func (s *DisplayService) RegenerateCode(ctx context.Context, displayID primitive.ObjectID) (*models.Display, error) {
	code, err := s.generateUniqueCode(ctx)
	if err != nil {
		return nil, err
	}

	updateData := &basesvc.UpdateData{
		Set:   map[string]interface{}{"pairingCode": code, "isPaired": false},
		Unset: map[string]interface{}{"pairedAt": ""},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, displayID, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Pair ghép nối kiosk với màn hình qua mã. Trả về trạng thái đầy đủ để kiosk render ngay.
func (s *DisplayService) Pair(ctx context.Context, code string) (*displaydto.DisplayState, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	display, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"pairingCode": code}, nil)
	if err != nil {
		if customErr, ok := err.(*common.Error); ok && customErr.StatusCode == common.StatusNotFound {
			return nil, common.ErrPairingCodeInvalid
		}
		return nil, err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"isPaired": true, "pairedAt": time.Now().UnixMilli()},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, display.ID, updateData)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"displayId":   updated.ID.Hex(),
		"pairingCode": code,
	}).Info("Kiosk đã ghép nối với màn hình")

	events.EmitDataChanged(ctx, events.DataChangeEvent{
		CollectionName: global.MongoDB_ColNames.Displays,
		Operation:      events.OpUpdate,
		EventName:      events.EventDisplayPaired,
		Document:       updated,
	})
	return s.stateFor(ctx, updated)
}

// GetStateByCode lấy trạng thái màn hình theo mã ghép nối (kiosk gọi sau khi đã ghép).
func (s *DisplayService) GetStateByCode(ctx context.Context, code string) (*displaydto.DisplayState, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	display, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"pairingCode": code}, nil)
	if err != nil {
		if customErr, ok := err.(*common.Error); ok && customErr.StatusCode == common.StatusNotFound {
			return nil, common.ErrPairingCodeInvalid
		}
		return nil, err
	}
	return s.stateFor(ctx, display)
}

// stateFor gom màn hình + thực đơn (populate món) thành DisplayState.
func (s *DisplayService) stateFor(ctx context.Context, display models.Display) (*displaydto.DisplayState, error) {
	state := &displaydto.DisplayState{Display: display}
	if display.MenuID != nil {
		detail, err := s.menuService.GetDetail(ctx, *display.MenuID)
		if err != nil {
			// Thực đơn gán cho màn hình không còn tồn tại: kiosk hiển thị màn chờ
			if customErr, ok := err.(*common.Error); ok && customErr.StatusCode == common.StatusNotFound {
				return state, nil
			}
			return nil, err
		}
		state.Menu = detail
	}
	return state, nil
}

// AssignMenu gán thực đơn cho màn hình (menuIDHex rỗng = gỡ gán).
// Thực đơn phải thuộc cùng nhà hàng với màn hình.
func (s *DisplayService) AssignMenu(ctx context.Context, displayID primitive.ObjectID, menuIDHex string) (*models.Display, error) {
	display, err := s.BaseServiceMongoImpl.FindOneById(ctx, displayID)
	if err != nil {
		return nil, err
	}

	var updateData *basesvc.UpdateData
	if menuIDHex == "" {
		updateData = &basesvc.UpdateData{
			Unset: map[string]interface{}{"menuId": ""},
		}
	} else {
		menuID, err := primitive.ObjectIDFromHex(menuIDHex)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("Menu ID '%s' không đúng định dạng MongoDB ObjectID", menuIDHex), common.StatusBadRequest, err)
		}
		menu, err := s.menuService.BaseServiceMongoImpl.FindOneById(ctx, menuID)
		if err != nil {
			return nil, err
		}
		if menu.RestaurantID != display.RestaurantID {
			return nil, common.ErrWrongRestaurant
		}
		updateData = &basesvc.UpdateData{
			Set: map[string]interface{}{"menuId": menuID},
		}
	}

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, displayID, updateData)
	if err != nil {
		return nil, err
	}

	events.EmitDataChanged(ctx, events.DataChangeEvent{
		CollectionName: global.MongoDB_ColNames.Displays,
		Operation:      events.OpUpdate,
		EventName:      events.EventMenuAssigned,
		Document:       updated,
	})
	return &updated, nil
}

// SetMedia cập nhật media màn chờ (ảnh hoặc video) của màn hình.
func (s *DisplayService) SetMedia(ctx context.Context, displayID primitive.ObjectID, media models.DisplayMedia) (*models.Display, error) {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"media": media},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, displayID, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ClearMedia gỡ media màn chờ của màn hình.
func (s *DisplayService) ClearMedia(ctx context.Context, displayID primitive.ObjectID) (*models.Display, error) {
	updateData := &basesvc.UpdateData{
		Unset: map[string]interface{}{"media": ""},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, displayID, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete xóa màn hình và toàn bộ lịch chiếu tham chiếu đến nó.
func (s *DisplayService) Delete(ctx context.Context, displayID primitive.ObjectID) error {
	if _, err := s.scheduleCollection.DeleteMany(ctx, bson.M{"displayId": displayID}); err != nil {
		return common.NewError(common.ErrCodeDatabaseQuery, common.MsgDatabaseError, common.StatusInternalServerError, err)
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, displayID)
}
