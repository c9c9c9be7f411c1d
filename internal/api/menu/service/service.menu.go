// Package menusvc - service thực đơn: validate món, populate, cascade khi xóa.
package menusvc

import (
	"context"
	"fmt"

	basesvc "menu_board/internal/api/base/service"
	displaymodels "menu_board/internal/api/display/models"
	"menu_board/internal/api/events"
	itemmodels "menu_board/internal/api/item/models"
	menudto "menu_board/internal/api/menu/dto"
	models "menu_board/internal/api/menu/models"
	"menu_board/internal/common"
	"menu_board/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MenuService là cấu trúc chứa các phương thức liên quan đến thực đơn
type MenuService struct {
	*basesvc.BaseServiceMongoImpl[models.Menu]
	itemService        *basesvc.BaseServiceMongoImpl[itemmodels.Item]
	displayService     *basesvc.BaseServiceMongoImpl[displaymodels.Display]
	scheduleCollection *mongo.Collection
}

// NewMenuService tạo mới MenuService
func NewMenuService() (*MenuService, error) {
	menuCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Menus)
	if !exist {
		return nil, fmt.Errorf("failed to get menus collection: %v", common.ErrNotFound)
	}
	itemCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Items)
	if !exist {
		return nil, fmt.Errorf("failed to get items collection: %v", common.ErrNotFound)
	}
	displayCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Displays)
	if !exist {
		return nil, fmt.Errorf("failed to get displays collection: %v", common.ErrNotFound)
	}
	scheduleCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Schedules)
	if !exist {
		return nil, fmt.Errorf("failed to get schedules collection: %v", common.ErrNotFound)
	}

	return &MenuService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Menu](menuCollection),
		itemService:          basesvc.NewBaseServiceMongo[itemmodels.Item](itemCollection),
		displayService:       basesvc.NewBaseServiceMongo[displaymodels.Display](displayCollection),
		scheduleCollection:   scheduleCollection,
	}, nil
}

// ValidateItemIDs parse danh sách hex ID và kiểm tra tất cả món tồn tại, thuộc đúng nhà hàng.
// Danh sách món của menu là tập có thứ tự: ID trùng bị loại, giữ lần xuất hiện đầu tiên.
func (s *MenuService) ValidateItemIDs(ctx context.Context, restaurantID primitive.ObjectID, hexIDs []string) ([]primitive.ObjectID, error) {
	itemIDs, err := parseItemIDs(hexIDs)
	if err != nil {
		return nil, err
	}
	if len(itemIDs) == 0 {
		return itemIDs, nil
	}

	count, err := s.itemService.CountDocuments(ctx, bson.M{
		"_id":          bson.M{"$in": itemIDs},
		"restaurantId": restaurantID,
	})
	if err != nil {
		return nil, err
	}
	if count != int64(len(itemIDs)) {
		return nil, common.NewError(common.ErrCodeValidationInput, "Danh sách món chứa ID không tồn tại hoặc không thuộc nhà hàng của bạn", common.StatusBadRequest, nil)
	}

	return itemIDs, nil
}

// parseItemIDs chuyển danh sách hex sang ObjectID, loại ID trùng theo thứ tự xuất hiện.
func parseItemIDs(hexIDs []string) ([]primitive.ObjectID, error) {
	itemIDs := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, hexID := range hexIDs {
		objID, err := primitive.ObjectIDFromHex(hexID)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("Item ID '%s' không đúng định dạng MongoDB ObjectID", hexID), common.StatusBadRequest, err)
		}
		itemIDs = append(itemIDs, objID)
	}
	return uniqueIDs(itemIDs), nil
}

// GetDetail lấy menu kèm danh sách món populate theo đúng thứ tự trong ItemIDs.
func (s *MenuService) GetDetail(ctx context.Context, menuID primitive.ObjectID) (*menudto.MenuDetail, error) {
	menu, err := s.BaseServiceMongoImpl.FindOneById(ctx, menuID)
	if err != nil {
		return nil, err
	}
	items, err := s.PopulateItems(ctx, menu.ItemIDs)
	if err != nil {
		return nil, err
	}
	return &menudto.MenuDetail{Menu: menu, Items: items}, nil
}

// PopulateItems lấy các item theo danh sách ID, trả về theo đúng thứ tự của danh sách.
// Item đã bị xóa (ID mồ côi trong menu) bị bỏ qua.
func (s *MenuService) PopulateItems(ctx context.Context, itemIDs []primitive.ObjectID) ([]itemmodels.Item, error) {
	if len(itemIDs) == 0 {
		return []itemmodels.Item{}, nil
	}

	found, err := s.itemService.FindManyByIds(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	// Mongo trả về không theo thứ tự $in, sắp lại theo thứ tự lưu trong menu
	byID := make(map[primitive.ObjectID]itemmodels.Item, len(found))
	for _, item := range found {
		byID[item.ID] = item
	}
	ordered := make([]itemmodels.Item, 0, len(itemIDs))
	for _, id := range itemIDs {
		if item, ok := byID[id]; ok {
			ordered = append(ordered, item)
		}
	}
	return ordered, nil
}

// Delete xóa menu và cascade: gỡ gán trên các màn hình, xóa lịch chiếu tham chiếu.
func (s *MenuService) Delete(ctx context.Context, menuID primitive.ObjectID) error {
	// Lấy danh sách màn hình đang gán menu này trước khi gỡ, để báo cho từng màn hình
	affected, err := s.displayService.Find(ctx, bson.M{"menuId": menuID}, nil)
	if err != nil {
		return err
	}

	if len(affected) > 0 {
		result, err := s.displayService.Collection().UpdateMany(ctx,
			bson.M{"menuId": menuID},
			bson.M{"$unset": bson.M{"menuId": ""}},
		)
		if err != nil {
			return common.ConvertMongoError(err)
		}
		logrus.WithFields(logrus.Fields{
			"menu_id":  menuID.Hex(),
			"displays": result.ModifiedCount,
		}).Info("Delete menu: Đã gỡ gán menu khỏi các màn hình")

		for i := range affected {
			affected[i].MenuID = nil
			events.EmitDataChanged(ctx, events.DataChangeEvent{
				CollectionName: global.MongoDB_ColNames.Displays,
				Operation:      events.OpUpdate,
				EventName:      events.EventMenuAssigned,
				Document:       affected[i],
			})
		}
	}

	// Xóa lịch chiếu tham chiếu menu này
	if _, err := s.scheduleCollection.DeleteMany(ctx, bson.M{"menuId": menuID}); err != nil {
		return common.ConvertMongoError(err)
	}

	return s.BaseServiceMongoImpl.DeleteById(ctx, menuID)
}

func uniqueIDs(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
