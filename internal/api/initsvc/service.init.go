// Package initsvc chứa InitService dùng để khởi tạo dữ liệu mẫu khi chạy INITMODE.
// Tách ra package riêng để tránh import cycle giữa các service domain.
package initsvc

import (
	"context"
	"fmt"

	authdto "menu_board/internal/api/auth/dto"
	authsvc "menu_board/internal/api/auth/service"
	displaysvc "menu_board/internal/api/display/service"
	itemmodels "menu_board/internal/api/item/models"
	itemsvc "menu_board/internal/api/item/service"
	menumodels "menu_board/internal/api/menu/models"
	menusvc "menu_board/internal/api/menu/service"
	"menu_board/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// demoEmail tài khoản demo được tạo khi chạy INITMODE.
const demoEmail = "demo@menuboard.local"

// InitService là cấu trúc chứa các phương thức khởi tạo dữ liệu mẫu cho hệ thống
type InitService struct {
	userService    *authsvc.UserService       // Service xử lý người dùng
	itemService    *itemsvc.ItemService       // Service xử lý món ăn
	menuService    *menusvc.MenuService       // Service xử lý thực đơn
	displayService *displaysvc.DisplayService // Service xử lý màn hình
}

// NewInitService tạo mới InitService
func NewInitService() (*InitService, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	itemService, err := itemsvc.NewItemService()
	if err != nil {
		return nil, fmt.Errorf("failed to create item service: %v", err)
	}
	menuService, err := menusvc.NewMenuService()
	if err != nil {
		return nil, fmt.Errorf("failed to create menu service: %v", err)
	}
	displayService, err := displaysvc.NewDisplayService()
	if err != nil {
		return nil, fmt.Errorf("failed to create display service: %v", err)
	}

	return &InitService{
		userService:    userService,
		itemService:    itemService,
		menuService:    menuService,
		displayService: displayService,
	}, nil
}

// InitSampleData tạo tài khoản demo kèm nhà hàng, món, thực đơn và màn hình mẫu.
// Idempotent: nếu tài khoản demo đã tồn tại thì bỏ qua.
func (s *InitService) InitSampleData(ctx context.Context) error {
	log := logger.GetAppLogger()

	exists, err := s.userService.DocumentExists(ctx, bson.M{"email": demoEmail})
	if err != nil {
		return err
	}
	if exists {
		log.Info("🔄 [INIT] Dữ liệu mẫu đã tồn tại, bỏ qua")
		return nil
	}

	user, err := s.userService.Register(ctx, &authdto.UserRegisterInput{
		Email:          demoEmail,
		Password:       "Demo@12345",
		Name:           "Demo Owner",
		RestaurantName: "Quán Demo",
	})
	if err != nil {
		return fmt.Errorf("failed to create demo user: %w", err)
	}
	restaurantID := user.RestaurantID
	log.Infof("✅ [INIT] Đã tạo tài khoản demo %s (restaurant %s)", demoEmail, restaurantID.Hex())

	sampleItems := []itemmodels.Item{
		{RestaurantID: restaurantID, Name: "Phở bò", Description: "Phở bò truyền thống", Price: 8.50, Category: "Món chính", IsAvailable: true},
		{RestaurantID: restaurantID, Name: "Bún chả", Description: "Bún chả than hoa", Price: 7.00, Category: "Món chính", IsAvailable: true},
		{RestaurantID: restaurantID, Name: "Gỏi cuốn", Description: "Gỏi cuốn tôm thịt", Price: 4.50, Category: "Khai vị", IsAvailable: true},
		{RestaurantID: restaurantID, Name: "Cà phê sữa đá", Description: "", Price: 3.00, Category: "Đồ uống", IsAvailable: true},
	}
	itemIDs := make([]primitive.ObjectID, 0, len(sampleItems))
	for _, item := range sampleItems {
		created, err := s.itemService.InsertOne(ctx, item)
		if err != nil {
			return fmt.Errorf("failed to create sample item %q: %w", item.Name, err)
		}
		itemIDs = append(itemIDs, created.ID)
	}

	menu, err := s.menuService.InsertOne(ctx, menumodels.Menu{
		RestaurantID: restaurantID,
		Name:         "Thực đơn cả ngày",
		Description:  "Thực đơn mặc định",
		ItemIDs:      itemIDs,
	})
	if err != nil {
		return fmt.Errorf("failed to create sample menu: %w", err)
	}

	display, err := s.displayService.Create(ctx, restaurantID, "Màn hình quầy")
	if err != nil {
		return fmt.Errorf("failed to create sample display: %w", err)
	}
	if _, err := s.displayService.AssignMenu(ctx, display.ID, menu.ID.Hex()); err != nil {
		return fmt.Errorf("failed to assign sample menu: %w", err)
	}

	log.Infof("✅ [INIT] Dữ liệu mẫu: %d món, thực đơn %s, màn hình %s (mã ghép nối %s)",
		len(itemIDs), menu.ID.Hex(), display.ID.Hex(), display.PairingCode)
	return nil
}
