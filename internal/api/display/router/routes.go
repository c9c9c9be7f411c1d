// Package router đăng ký các route thuộc domain display, gồm cả route public cho kiosk.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	displayhdl "menu_board/internal/api/display/handler"
	"menu_board/internal/api/middleware"
	apirouter "menu_board/internal/api/router"
)

// Register đăng ký các route màn hình lên v1: REST surface + route kiosk public + CRUD generic.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	displayHandler, err := displayhdl.NewDisplayHandler()
	if err != nil {
		return fmt.Errorf("failed to create display handler: %w", err)
	}

	// Route public cho kiosk: ghép nối và lấy trạng thái theo mã, không cần đăng nhập
	v1.Post("/displays/pair", displayHandler.HandlePair)
	v1.Get("/displays/pair/:code", displayHandler.HandleGetByCode)

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/displays", "POST", "/restaurants/:id", []fiber.Handler{authMiddleware}, displayHandler.HandleCreateForRestaurant)
	apirouter.RegisterRouteWithMiddleware(v1, "/displays", "GET", "/restaurants/:id", []fiber.Handler{authMiddleware}, displayHandler.HandleListForRestaurant)
	apirouter.RegisterRouteWithMiddleware(v1, "/displays", "PATCH", "/:id/regenerate-pairing-code", []fiber.Handler{authMiddleware}, displayHandler.HandleRegenerateCode)
	apirouter.RegisterRouteWithMiddleware(v1, "/displays", "PATCH", "/:id/assign-menu", []fiber.Handler{authMiddleware}, displayHandler.HandleAssignMenu)
	apirouter.RegisterRouteWithMiddleware(v1, "/displays", "POST", "/:id/upload-media", []fiber.Handler{authMiddleware}, displayHandler.HandleUploadMedia)
	apirouter.RegisterRouteWithMiddleware(v1, "/displays", "DELETE", "/:id/media", []fiber.Handler{authMiddleware}, displayHandler.HandleClearMedia)
	apirouter.RegisterRouteWithMiddleware(v1, "/displays", "GET", "/:id/pairing-qr", []fiber.Handler{authMiddleware}, displayHandler.HandlePairingQR)
	apirouter.RegisterRouteWithMiddleware(v1, "/displays", "GET", "/:id", []fiber.Handler{authMiddleware}, displayHandler.HandleGetByID)
	apirouter.RegisterRouteWithMiddleware(v1, "/displays", "PUT", "/:id", []fiber.Handler{authMiddleware}, displayHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/displays", "DELETE", "/:id", []fiber.Handler{authMiddleware}, displayHandler.HandleDelete)

	// CRUD generic (filter/sort/pagination), tự scope theo nhà hàng của user
	r.RegisterCRUDRoutes(v1, "/display", displayHandler, apirouter.ReadWriteConfig)
	return nil
}
