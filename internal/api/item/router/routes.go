// Package router đăng ký các route thuộc domain item.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	itemhdl "menu_board/internal/api/item/handler"
	"menu_board/internal/api/middleware"
	apirouter "menu_board/internal/api/router"
)

// Register đăng ký các route món ăn lên v1: REST surface + CRUD generic.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	itemHandler, err := itemhdl.NewItemHandler()
	if err != nil {
		return fmt.Errorf("failed to create item handler: %w", err)
	}
	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/items", "POST", "/restaurants/:id", []fiber.Handler{authMiddleware}, itemHandler.HandleCreateForRestaurant)
	apirouter.RegisterRouteWithMiddleware(v1, "/items", "GET", "/restaurants/:id", []fiber.Handler{authMiddleware}, itemHandler.HandleListForRestaurant)
	apirouter.RegisterRouteWithMiddleware(v1, "/items", "PATCH", "/:id/toggle", []fiber.Handler{authMiddleware}, itemHandler.HandleToggleAvailability)
	apirouter.RegisterRouteWithMiddleware(v1, "/items", "POST", "/:id/upload-image", []fiber.Handler{authMiddleware}, itemHandler.HandleUploadImage)
	apirouter.RegisterRouteWithMiddleware(v1, "/items", "PUT", "/:id", []fiber.Handler{authMiddleware}, itemHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/items", "DELETE", "/:id", []fiber.Handler{authMiddleware}, itemHandler.HandleDelete)

	// CRUD generic (filter/sort/pagination), tự scope theo nhà hàng của user
	r.RegisterCRUDRoutes(v1, "/item", itemHandler, apirouter.ReadWriteConfig)
	return nil
}
