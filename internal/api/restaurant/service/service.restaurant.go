// Package restaurantsvc - service nhà hàng: truy vấn theo owner và thống kê.
package restaurantsvc

import (
	"context"
	"fmt"

	basesvc "menu_board/internal/api/base/service"
	models "menu_board/internal/api/restaurant/models"
	"menu_board/internal/common"
	"menu_board/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RestaurantService là cấu trúc chứa các phương thức liên quan đến nhà hàng
type RestaurantService struct {
	*basesvc.BaseServiceMongoImpl[models.Restaurant]
	itemCollection    *mongo.Collection
	menuCollection    *mongo.Collection
	displayCollection *mongo.Collection
}

// NewRestaurantService tạo mới RestaurantService
func NewRestaurantService() (*RestaurantService, error) {
	restaurantCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Restaurants)
	if !exist {
		return nil, fmt.Errorf("failed to get restaurants collection: %v", common.ErrNotFound)
	}
	itemCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Items)
	if !exist {
		return nil, fmt.Errorf("failed to get items collection: %v", common.ErrNotFound)
	}
	menuCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Menus)
	if !exist {
		return nil, fmt.Errorf("failed to get menus collection: %v", common.ErrNotFound)
	}
	displayCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Displays)
	if !exist {
		return nil, fmt.Errorf("failed to get displays collection: %v", common.ErrNotFound)
	}

	return &RestaurantService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Restaurant](restaurantCollection),
		itemCollection:       itemCollection,
		menuCollection:       menuCollection,
		displayCollection:    displayCollection,
	}, nil
}

// GetByOwner lấy nhà hàng của một user (mỗi user sở hữu đúng một nhà hàng).
func (s *RestaurantService) GetByOwner(ctx context.Context, ownerID primitive.ObjectID) (*models.Restaurant, error) {
	restaurant, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"ownerId": ownerID}, nil)
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// GetStats thống kê tổng quan của nhà hàng: số menu, món, màn hình và màn hình đã ghép nối.
func (s *RestaurantService) GetStats(ctx context.Context, restaurantID primitive.ObjectID) (*models.RestaurantStats, error) {
	filter := bson.M{"restaurantId": restaurantID}

	totalItems, err := s.itemCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	totalMenus, err := s.menuCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	totalDisplays, err := s.displayCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	activeDisplays, err := s.displayCollection.CountDocuments(ctx, bson.M{"restaurantId": restaurantID, "isPaired": true})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return &models.RestaurantStats{
		TotalMenus:     totalMenus,
		TotalItems:     totalItems,
		TotalDisplays:  totalDisplays,
		ActiveDisplays: activeDisplays,
	}, nil
}
