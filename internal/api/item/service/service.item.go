// Package itemsvc - service món ăn: toggle trạng thái, cập nhật ảnh.
package itemsvc

import (
	"context"
	"fmt"

	basesvc "menu_board/internal/api/base/service"
	"menu_board/internal/api/events"
	models "menu_board/internal/api/item/models"
	"menu_board/internal/common"
	"menu_board/internal/global"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ItemService là cấu trúc chứa các phương thức liên quan đến món ăn
type ItemService struct {
	*basesvc.BaseServiceMongoImpl[models.Item]
}

// NewItemService tạo mới ItemService
func NewItemService() (*ItemService, error) {
	itemCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Items)
	if !exist {
		return nil, fmt.Errorf("failed to get items collection: %v", common.ErrNotFound)
	}

	return &ItemService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Item](itemCollection),
	}, nil
}

// ToggleAvailability đảo trạng thái còn/hết của món và phát event riêng cho realtime.
func (s *ItemService) ToggleAvailability(ctx context.Context, itemID primitive.ObjectID) (*models.Item, error) {
	item, err := s.BaseServiceMongoImpl.FindOneById(ctx, itemID)
	if err != nil {
		return nil, err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"isAvailable": !item.IsAvailable},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, itemID, updateData)
	if err != nil {
		return nil, err
	}

	events.EmitDataChanged(ctx, events.DataChangeEvent{
		CollectionName: global.MongoDB_ColNames.Items,
		Operation:      events.OpUpdate,
		EventName:      events.EventItemAvailabilityChanged,
		Document:       updated,
	})
	return &updated, nil
}

// SetImageURL cập nhật URL ảnh của món sau khi upload thành công.
func (s *ItemService) SetImageURL(ctx context.Context, itemID primitive.ObjectID, imageURL string) (*models.Item, error) {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"imageUrl": imageURL},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, itemID, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
