// Package realtime - Test map collection + operation sang tên event client.
package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	displaymodels "menu_board/internal/api/display/models"
	"menu_board/internal/api/events"
	"menu_board/internal/global"
)

func setTestColNames() {
	global.MongoDB_ColNames = global.MongoDB_CollectionName{
		Users:       "users",
		Restaurants: "restaurants",
		Items:       "items",
		Menus:       "menus",
		Displays:    "displays",
		Schedules:   "schedules",
	}
}

func TestEventNameFor(t *testing.T) {
	setTestColNames()

	cases := []struct {
		collection string
		operation  string
		expected   string
	}{
		{"items", events.OpInsert, events.EventItemCreated},
		{"items", events.OpUpdate, events.EventItemUpdated},
		{"items", events.OpUpsert, events.EventItemUpdated},
		{"items", events.OpDelete, events.EventItemDeleted},
		{"menus", events.OpInsert, events.EventMenuCreated},
		{"menus", events.OpUpdate, events.EventMenuUpdated},
		{"menus", events.OpDelete, events.EventMenuDeleted},
		{"displays", events.OpInsert, events.EventDisplayCreated},
		{"displays", events.OpUpdate, events.EventDisplayUpdated},
		// Xóa màn hình cũng đẩy display-updated để kiosk refetch và quay về màn ghép nối
		{"displays", events.OpDelete, events.EventDisplayUpdated},
		{"restaurants", events.OpUpdate, events.EventRestaurantUpdated},
		// users và schedules không đẩy realtime
		{"users", events.OpUpdate, ""},
		{"schedules", events.OpInsert, ""},
		{"restaurants", events.OpInsert, ""},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, eventNameFor(c.collection, c.operation),
			"collection=%s operation=%s", c.collection, c.operation)
	}
}

func TestDisplayDocument(t *testing.T) {
	id := primitive.NewObjectID()
	display := displaymodels.Display{ID: id, PairingCode: "ABC123"}

	// Nhận cả value lẫn pointer
	got, ok := displayDocument(display)
	assert.True(t, ok)
	assert.Equal(t, id, got.ID)

	got, ok = displayDocument(&display)
	assert.True(t, ok)
	assert.Equal(t, "ABC123", got.PairingCode)

	_, ok = displayDocument("không phải display")
	assert.False(t, ok)

	var nilDisplay *displaymodels.Display
	_, ok = displayDocument(nilDisplay)
	assert.False(t, ok)
}
