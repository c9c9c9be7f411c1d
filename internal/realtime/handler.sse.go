package realtime

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/valyala/fasthttp"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "menu_board/internal/api/base/service"
	displaymodels "menu_board/internal/api/display/models"
	"menu_board/internal/api/middleware"
	"menu_board/internal/common"
	"menu_board/internal/global"
)

// heartbeatInterval chu kỳ gửi comment ping giữ kết nối SSE qua proxy.
const heartbeatInterval = 15 * time.Second

// HandleEvents trả về handler SSE tại GET /events.
// Client xác định room qua query param (chọn một trong ba):
//   - token=<jwt>: admin dashboard, nhận mọi event của nhà hàng
//   - displayId=<id>: kiosk đã ghép nối, nhận event của màn hình và của nhà hàng
//   - pairingCode=<code>: kiosk đang chờ ghép nối, nhận event display-paired
func HandleEvents(hub *Hub) fiber.Handler {
	return func(c fiber.Ctx) error {
		rooms, err := resolveRooms(c)
		if err != nil {
			middleware.HandleErrorResponse(c, err)
			return nil
		}

		c.Set(fiber.HeaderContentType, "text/event-stream")
		c.Set(fiber.HeaderCacheControl, "no-cache")
		c.Set(fiber.HeaderConnection, "keep-alive")
		// Tắt buffering của reverse proxy (nginx) để event đến client ngay
		c.Set("X-Accel-Buffering", "no")

		sub := hub.Subscribe(rooms...)
		c.RequestCtx().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
			defer hub.Unsubscribe(sub)

			fmt.Fprint(w, "retry: 3000\n\n")
			if err := w.Flush(); err != nil {
				return
			}

			heartbeat := time.NewTicker(heartbeatInterval)
			defer heartbeat.Stop()

			for {
				select {
				case e, ok := <-sub.C:
					if !ok {
						return
					}
					data, err := json.Marshal(e.Data)
					if err != nil {
						continue
					}
					fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.Name, data)
					if err := w.Flush(); err != nil {
						return
					}
				case <-heartbeat.C:
					fmt.Fprint(w, ": ping\n\n")
					if err := w.Flush(); err != nil {
						return
					}
				}
			}
		}))
		return nil
	}
}

// resolveRooms xác định các room subscriber được nghe dựa trên query param.
func resolveRooms(c fiber.Ctx) ([]string, error) {
	if token := c.Query("token"); token != "" {
		user, err := middleware.GetAuthManager().ResolveToken(context.Background(), token)
		if err != nil {
			return nil, common.ErrTokenInvalid
		}
		if user.IsBlock {
			return nil, common.ErrUserBlocked
		}
		if user.RestaurantID.IsZero() {
			return nil, common.NewError(common.ErrCodeAuth, "Tài khoản chưa gắn với nhà hàng nào", common.StatusForbidden, nil)
		}
		return []string{RestaurantRoom(user.RestaurantID)}, nil
	}

	if displayIDHex := c.Query("displayId"); displayIDHex != "" {
		displayID, err := primitive.ObjectIDFromHex(displayIDHex)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("displayId '%s' không đúng định dạng MongoDB ObjectID", displayIDHex), common.StatusBadRequest, err)
		}
		displayCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Displays)
		if !exist {
			return nil, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, nil)
		}
		displayCRUD := basesvc.NewBaseServiceMongo[displaymodels.Display](displayCollection)
		display, err := displayCRUD.FindOneById(context.Background(), displayID)
		if err != nil {
			return nil, err
		}
		return []string{DisplayRoom(display.ID), RestaurantRoom(display.RestaurantID)}, nil
	}

	if code := c.Query("pairingCode"); code != "" {
		code = strings.ToUpper(strings.TrimSpace(code))
		return []string{PairingRoom(code)}, nil
	}

	return nil, common.NewError(common.ErrCodeValidationInput, "Thiếu tham số: cần token, displayId hoặc pairingCode", common.StatusBadRequest, nil)
}

// RegisterRoutes đăng ký route SSE lên v1.
func RegisterRoutes(v1 fiber.Router, hub *Hub) {
	v1.Get("/events", HandleEvents(hub))
}
