// Package authsvc - service người dùng (User): đăng ký, đăng nhập, đăng xuất.
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	authdto "menu_board/internal/api/auth/dto"
	models "menu_board/internal/api/auth/models"
	basesvc "menu_board/internal/api/base/service"
	"menu_board/internal/api/middleware"
	restaurantmodels "menu_board/internal/api/restaurant/models"
	"menu_board/internal/common"
	"menu_board/internal/global"
	"menu_board/internal/utility"

	"github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
	restaurantService *basesvc.BaseServiceMongoImpl[restaurantmodels.Restaurant]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	restaurantCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Restaurants)
	if !exist {
		return nil, fmt.Errorf("failed to get restaurants collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
		restaurantService:    basesvc.NewBaseServiceMongo[restaurantmodels.Restaurant](restaurantCollection),
	}, nil
}

// Register đăng ký tài khoản mới: tạo user, tạo nhà hàng đầu tiên rồi phát hành token.
// Email đã tồn tại sẽ trả lỗi conflict (unique index trên email).
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput) (*models.User, error) {
	// Kiểm tra email đã tồn tại chưa để trả lỗi rõ ràng thay vì lỗi duplicate index
	if exists, err := s.BaseServiceMongoImpl.DocumentExists(ctx, bson.M{"email": input.Email}); err != nil {
		return nil, err
	} else if exists {
		return nil, common.NewError(common.ErrCodeBusinessOperation, "Email đã được đăng ký", common.StatusConflict, nil)
	}

	hash, err := utility.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.BaseServiceMongoImpl.InsertOne(ctx, models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hash,
	})
	if err != nil {
		return nil, err
	}

	restaurant, err := s.restaurantService.InsertOne(ctx, restaurantmodels.Restaurant{
		Name:    input.RestaurantName,
		OwnerID: user.ID,
	})
	if err != nil {
		// Nhà hàng tạo thất bại thì gỡ user vừa tạo để không để lại tài khoản mồ côi
		if delErr := s.BaseServiceMongoImpl.DeleteById(ctx, user.ID); delErr != nil {
			logrus.WithError(delErr).Error("Register: Không thể rollback user sau khi tạo nhà hàng thất bại")
		}
		return nil, err
	}

	updated, err := s.issueToken(ctx, user.ID, restaurant.ID)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": updated.ID.Hex(), "email": updated.Email}).Info("Register: Đăng ký thành công")
	return updated, nil
}

// Login đăng nhập bằng email + mật khẩu, phát hành token mới.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utility.ComparePassword(user.Password, input.Password); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if user.IsBlock {
		return nil, common.NewError(common.ErrCodeAuth, "Tài khoản đã bị khóa: "+user.BlockNote, common.StatusForbidden, nil)
	}

	updated, err := s.issueToken(ctx, user.ID, user.RestaurantID)
	if err != nil {
		return nil, err
	}
	// Token cũ đã bị thay thế, gỡ khỏi cache xác thực để không dùng lại được
	middleware.GetAuthManager().InvalidateToken(user.Token)

	logrus.WithFields(logrus.Fields{"user_id": updated.ID.Hex(), "email": updated.Email}).Info("Login: Đăng nhập thành công")
	return updated, nil
}

// Logout đăng xuất: xóa token đã lưu trên user và gỡ khỏi cache xác thực
// để token hết hiệu lực ngay, không phải chờ hết TTL.
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	updateData := &basesvc.UpdateData{
		Unset: map[string]interface{}{"token": ""},
	}
	if _, err := s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData); err != nil {
		return err
	}

	middleware.GetAuthManager().InvalidateToken(user.Token)
	return nil
}

// GetRestaurant lấy nhà hàng của user (populate cho response login/profile).
func (s *UserService) GetRestaurant(ctx context.Context, restaurantID primitive.ObjectID) (*restaurantmodels.Restaurant, error) {
	restaurant, err := s.restaurantService.FindOneById(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// issueToken mint JWT mới, lưu vào user record (kèm restaurantId) và trả về user đã cập nhật.
func (s *UserService) issueToken(ctx context.Context, userID primitive.ObjectID, restaurantID primitive.ObjectID) (*models.User, error) {
	rdNumber := rand.Intn(100)
	currentTime := time.Now().Unix()
	tokenMap, err := utility.CreateToken(global.MongoDB_ServerConfig.JwtSecret, userID.Hex(), strconv.FormatInt(currentTime, 16), strconv.Itoa(rdNumber))
	if err != nil {
		return nil, err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token":        tokenMap["token"],
			"restaurantId": restaurantID,
		},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": userID.Hex(), "error": err.Error()}).Error("issueToken: Lỗi khi cập nhật token vào user")
		return nil, err
	}
	return &updated, nil
}
