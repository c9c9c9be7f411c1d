// Package router đăng ký các route thuộc domain menu.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	menuhdl "menu_board/internal/api/menu/handler"
	"menu_board/internal/api/middleware"
	apirouter "menu_board/internal/api/router"
)

// Register đăng ký các route thực đơn lên v1: REST surface + CRUD generic.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	menuHandler, err := menuhdl.NewMenuHandler()
	if err != nil {
		return fmt.Errorf("failed to create menu handler: %w", err)
	}
	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/menus", "POST", "/restaurants/:id", []fiber.Handler{authMiddleware}, menuHandler.HandleCreateForRestaurant)
	apirouter.RegisterRouteWithMiddleware(v1, "/menus", "GET", "/restaurants/:id", []fiber.Handler{authMiddleware}, menuHandler.HandleListForRestaurant)
	apirouter.RegisterRouteWithMiddleware(v1, "/menus", "GET", "/:id", []fiber.Handler{authMiddleware}, menuHandler.HandleGetDetail)
	apirouter.RegisterRouteWithMiddleware(v1, "/menus", "PUT", "/:id", []fiber.Handler{authMiddleware}, menuHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/menus", "DELETE", "/:id", []fiber.Handler{authMiddleware}, menuHandler.HandleDelete)

	// CRUD generic (filter/sort/pagination), tự scope theo nhà hàng của user
	r.RegisterCRUDRoutes(v1, "/menu", menuHandler, apirouter.ReadWriteConfig)
	return nil
}
