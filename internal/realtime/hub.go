// Package realtime cung cấp hub pub/sub trong process cho các event đẩy xuống client
// (admin dashboard và kiosk màn hình) qua Server-Sent Events, với fanout Redis tùy chọn
// khi chạy nhiều instance.
package realtime

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"menu_board/internal/logger"
)

// subscriberBufferSize số event tối đa buffer cho mỗi subscriber.
// Subscriber tiêu thụ chậm hơn buffer sẽ bị drop event (không block publisher).
const subscriberBufferSize = 16

// Event là một event realtime đẩy xuống client.
type Event struct {
	Name string      `json:"name"`
	Data interface{} `json:"data"`
}

// Subscriber là một kết nối đang lắng nghe một hoặc nhiều room.
type Subscriber struct {
	Rooms []string
	C     chan Event
}

// Fanout đẩy event sang các instance khác (ví dụ qua Redis pub/sub).
type Fanout interface {
	Publish(room string, e Event)
}

// Hub quản lý các room và subscriber. Room được định danh bằng chuỗi:
// "restaurant:<id>", "display:<id>", "pairing:<code>".
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[*Subscriber]struct{}
	fanout Fanout
}

var (
	hubInstance *Hub
	hubOnce     sync.Once
)

// GetHub trả về instance duy nhất của Hub (singleton pattern)
func GetHub() *Hub {
	hubOnce.Do(func() {
		hubInstance = &Hub{
			rooms: make(map[string]map[*Subscriber]struct{}),
		}
	})
	return hubInstance
}

// SetFanout gắn fanout liên instance. Gọi khi init nếu có cấu hình Redis.
func (h *Hub) SetFanout(f Fanout) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fanout = f
}

// Subscribe đăng ký một subscriber mới vào các room. Gọi Unsubscribe khi kết nối đóng.
func (h *Hub) Subscribe(rooms ...string) *Subscriber {
	sub := &Subscriber{
		Rooms: rooms,
		C:     make(chan Event, subscriberBufferSize),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, room := range rooms {
		if h.rooms[room] == nil {
			h.rooms[room] = make(map[*Subscriber]struct{})
		}
		h.rooms[room][sub] = struct{}{}
	}
	return sub
}

// Unsubscribe gỡ subscriber khỏi tất cả room của nó và đóng channel.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, room := range sub.Rooms {
		if subs, ok := h.rooms[room]; ok {
			delete(subs, sub)
			if len(subs) == 0 {
				delete(h.rooms, room)
			}
		}
	}
	close(sub.C)
}

// Publish phát event tới mọi subscriber trong room, và fanout sang instance khác nếu có.
func (h *Hub) Publish(room string, e Event) {
	h.deliver(room, e)

	h.mu.RLock()
	fanout := h.fanout
	h.mu.RUnlock()
	if fanout != nil {
		fanout.Publish(room, e)
	}
}

// deliver phát event tới subscriber local trong room. Subscriber đầy buffer bị drop event.
func (h *Hub) deliver(room string, e Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.rooms[room] {
		select {
		case sub.C <- e:
		default:
			logger.GetAppLogger().WithFields(map[string]interface{}{
				"room":  room,
				"event": e.Name,
			}).Warn("📡 [REALTIME] Subscriber tiêu thụ chậm, drop event")
		}
	}
}

// SubscriberCount trả về số subscriber đang lắng nghe room (dùng cho health/debug).
func (h *Hub) SubscriberCount(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// RestaurantRoom room của toàn bộ client thuộc một nhà hàng (admin dashboard).
func RestaurantRoom(id primitive.ObjectID) string {
	return "restaurant:" + id.Hex()
}

// DisplayRoom room của một màn hình cụ thể (kiosk đã ghép nối).
func DisplayRoom(id primitive.ObjectID) string {
	return "display:" + id.Hex()
}

// PairingRoom room theo mã ghép nối, cho kiosk đang chờ xác nhận ghép.
func PairingRoom(code string) string {
	return "pairing:" + code
}
