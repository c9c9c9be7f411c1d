// Package router đăng ký các route thuộc domain restaurant.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"menu_board/internal/api/middleware"
	restauranthdl "menu_board/internal/api/restaurant/handler"
	apirouter "menu_board/internal/api/router"
)

// Register đăng ký các route nhà hàng lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	restaurantHandler, err := restauranthdl.NewRestaurantHandler()
	if err != nil {
		return fmt.Errorf("failed to create restaurant handler: %w", err)
	}
	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/restaurants", "GET", "/my/restaurant", []fiber.Handler{authMiddleware}, restaurantHandler.HandleMyRestaurant)
	apirouter.RegisterRouteWithMiddleware(v1, "/restaurants", "GET", "/:id/stats", []fiber.Handler{authMiddleware}, restaurantHandler.HandleStats)
	apirouter.RegisterRouteWithMiddleware(v1, "/restaurants", "GET", "/:id", []fiber.Handler{authMiddleware}, restaurantHandler.HandleGetById)
	apirouter.RegisterRouteWithMiddleware(v1, "/restaurants", "PUT", "/:id", []fiber.Handler{authMiddleware}, restaurantHandler.HandleUpdate)
	return nil
}
