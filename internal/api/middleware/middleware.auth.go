package middleware

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	models "menu_board/internal/api/auth/models"
	basesvc "menu_board/internal/api/base/service"
	"menu_board/internal/common"
	"menu_board/internal/global"
	"menu_board/internal/logger"
	"menu_board/internal/utility"
)

// AuthManager quản lý xác thực người dùng
type AuthManager struct {
	UserCRUD *basesvc.BaseServiceMongoImpl[models.User]
	Cache    *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &AuthManager{
		UserCRUD: basesvc.NewBaseServiceMongo[models.User](userCollection),
		// Cache user theo token 1 phút để giảm query DB trên các request liên tiếp
		Cache: utility.NewCache(1*time.Minute, 5*time.Minute),
	}, nil
}

// ResolveToken tìm user theo token (cache trước, DB sau).
// Dùng trong AuthMiddleware và khi xác thực kết nối realtime qua query param.
func (am *AuthManager) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	cacheKey := "auth_token:" + token
	if cached, found := am.Cache.Get(cacheKey); found {
		user := cached.(models.User)
		return &user, nil
	}

	user, err := am.UserCRUD.FindOne(ctx, bson.M{"token": token}, nil)
	if err != nil {
		return nil, err
	}

	am.Cache.Set(cacheKey, user)
	return &user, nil
}

// InvalidateToken gỡ token khỏi cache để vô hiệu ngay lập tức,
// gọi khi logout hoặc khi token cũ bị thay bằng token mới lúc login.
func (am *AuthManager) InvalidateToken(token string) {
	if token == "" {
		return
	}
	am.Cache.Delete("auth_token:" + token)
}

// AuthMiddleware middleware xác thực cho Fiber.
// Resolve Bearer token bằng cách tra DB (token được lưu trên user record khi login),
// từ chối user bị block, rồi lưu user_id và restaurant_id vào request locals.
func AuthMiddleware() fiber.Handler {
	// Sử dụng singleton instance của AuthManager
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		token := parts[1]

		user, err := authManager.ResolveToken(context.Background(), token)
		if err != nil {
			// Chỉ log khi không tìm thấy token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Token not found in database")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Kiểm tra token còn parse được không (secret đổi thì token cũ mất hiệu lực)
		if _, err := utility.ParseToken(global.MongoDB_ServerConfig.JwtSecret, token); err != nil {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Kiểm tra user có bị block không
		if user.IsBlock {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản đã bị khóa: "+user.BlockNote,
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu thông tin user và nhà hàng vào context
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", *user)
		if !user.RestaurantID.IsZero() {
			c.Locals("restaurant_id", user.RestaurantID.Hex())
		}

		return c.Next()
	}
}
