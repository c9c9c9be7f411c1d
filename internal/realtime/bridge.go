package realtime

import (
	"context"

	displaymodels "menu_board/internal/api/display/models"
	"menu_board/internal/api/events"
	"menu_board/internal/global"
)

// RegisterBridge nối tầng event CRUD vào hub realtime.
// Mỗi thay đổi dữ liệu được map sang tên event client và publish vào các room liên quan:
//   - room nhà hàng: mọi thay đổi thuộc nhà hàng đó (admin dashboard + kiosk cùng nhà hàng)
//   - room màn hình + room mã ghép nối: thay đổi trên chính màn hình đó
func RegisterBridge(hub *Hub) {
	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		name := e.EventName
		if name == "" {
			name = eventNameFor(e.CollectionName, e.Operation)
		}
		if name == "" {
			return
		}

		event := Event{Name: name, Data: e.Document}

		if restID := events.GetRestaurantIDFromDocument(e.Document); !restID.IsZero() {
			hub.Publish(RestaurantRoom(restID), event)
		}

		if display, ok := displayDocument(e.Document); ok {
			hub.Publish(DisplayRoom(display.ID), event)
			if display.PairingCode != "" {
				hub.Publish(PairingRoom(display.PairingCode), event)
			}
		}
	})
}

// eventNameFor suy ra tên event client từ collection + operation.
// Trả về chuỗi rỗng cho các thay đổi không cần đẩy realtime (users, schedules).
func eventNameFor(collectionName, operation string) string {
	switch collectionName {
	case global.MongoDB_ColNames.Items:
		switch operation {
		case events.OpInsert:
			return events.EventItemCreated
		case events.OpUpdate, events.OpUpsert:
			return events.EventItemUpdated
		case events.OpDelete:
			return events.EventItemDeleted
		}
	case global.MongoDB_ColNames.Menus:
		switch operation {
		case events.OpInsert:
			return events.EventMenuCreated
		case events.OpUpdate, events.OpUpsert:
			return events.EventMenuUpdated
		case events.OpDelete:
			return events.EventMenuDeleted
		}
	case global.MongoDB_ColNames.Displays:
		switch operation {
		case events.OpInsert:
			return events.EventDisplayCreated
		// Màn hình bị xóa cũng đẩy display-updated: kiosk refetch và quay về màn ghép nối
		case events.OpUpdate, events.OpUpsert, events.OpDelete:
			return events.EventDisplayUpdated
		}
	case global.MongoDB_ColNames.Restaurants:
		switch operation {
		case events.OpUpdate, events.OpUpsert:
			return events.EventRestaurantUpdated
		}
	}
	return ""
}

// displayDocument trả về document dạng Display nếu event thuộc collection displays.
func displayDocument(doc interface{}) (*displaymodels.Display, bool) {
	switch v := doc.(type) {
	case displaymodels.Display:
		return &v, true
	case *displaymodels.Display:
		return v, v != nil
	default:
		return nil, false
	}
}
