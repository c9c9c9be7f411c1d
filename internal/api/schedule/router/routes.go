// Package router đăng ký các route thuộc domain schedule.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"menu_board/internal/api/middleware"
	apirouter "menu_board/internal/api/router"
	schedulehdl "menu_board/internal/api/schedule/handler"
)

// Register đăng ký các route lịch chiếu lên v1: REST surface + CRUD generic.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	scheduleHandler, err := schedulehdl.NewScheduleHandler()
	if err != nil {
		return fmt.Errorf("failed to create schedule handler: %w", err)
	}
	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/schedules", "POST", "/restaurants/:id", []fiber.Handler{authMiddleware}, scheduleHandler.HandleCreateForRestaurant)
	apirouter.RegisterRouteWithMiddleware(v1, "/schedules", "GET", "/restaurants/:id", []fiber.Handler{authMiddleware}, scheduleHandler.HandleListForRestaurant)
	apirouter.RegisterRouteWithMiddleware(v1, "/schedules", "PUT", "/:id", []fiber.Handler{authMiddleware}, scheduleHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/schedules", "DELETE", "/:id", []fiber.Handler{authMiddleware}, scheduleHandler.HandleDelete)

	// CRUD generic (filter/sort/pagination), tự scope theo nhà hàng của user
	r.RegisterCRUDRoutes(v1, "/schedule", scheduleHandler, apirouter.ReadWriteConfig)
	return nil
}
