// Package realtime - Test hub pub/sub: subscribe, publish, drop khi buffer đầy.
package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestHub() *Hub {
	return &Hub{rooms: make(map[string]map[*Subscriber]struct{})}
}

func TestHub_SubscribePublish(t *testing.T) {
	hub := newTestHub()
	sub := hub.Subscribe("restaurant:abc")
	defer hub.Unsubscribe(sub)

	hub.Publish("restaurant:abc", Event{Name: "menu-updated", Data: "x"})

	e := <-sub.C
	assert.Equal(t, "menu-updated", e.Name)
	assert.Equal(t, "x", e.Data)
}

func TestHub_PublishRoomKhac_KhongNhan(t *testing.T) {
	hub := newTestHub()
	sub := hub.Subscribe("restaurant:abc")
	defer hub.Unsubscribe(sub)

	hub.Publish("restaurant:xyz", Event{Name: "menu-updated"})

	select {
	case e := <-sub.C:
		t.Fatalf("không được nhận event từ room khác, nhận: %s", e.Name)
	default:
	}
}

func TestHub_SubscribeNhieuRoom(t *testing.T) {
	hub := newTestHub()
	sub := hub.Subscribe("display:d1", "restaurant:r1")
	defer hub.Unsubscribe(sub)

	hub.Publish("display:d1", Event{Name: "display-updated"})
	hub.Publish("restaurant:r1", Event{Name: "item-updated"})

	assert.Equal(t, "display-updated", (<-sub.C).Name)
	assert.Equal(t, "item-updated", (<-sub.C).Name)
}

func TestHub_Unsubscribe_DongChannelVaDonRoom(t *testing.T) {
	hub := newTestHub()
	sub := hub.Subscribe("restaurant:abc")

	assert.Equal(t, 1, hub.SubscriberCount("restaurant:abc"))
	hub.Unsubscribe(sub)
	assert.Equal(t, 0, hub.SubscriberCount("restaurant:abc"))

	// Channel phải được đóng
	_, open := <-sub.C
	assert.False(t, open)

	// Room rỗng phải bị xóa khỏi map
	hub.mu.RLock()
	_, exists := hub.rooms["restaurant:abc"]
	hub.mu.RUnlock()
	assert.False(t, exists)
}

func TestHub_SubscriberCham_BiDropEvent(t *testing.T) {
	hub := newTestHub()
	sub := hub.Subscribe("restaurant:abc")
	defer hub.Unsubscribe(sub)

	// Đẩy quá buffer: publisher không được block, event thừa bị drop
	for i := 0; i < subscriberBufferSize+10; i++ {
		hub.Publish("restaurant:abc", Event{Name: "item-updated"})
	}
	assert.Len(t, sub.C, subscriberBufferSize)
}

func TestHub_Fanout_DuocGoiKhiPublish(t *testing.T) {
	hub := newTestHub()
	fanout := &captureFanout{}
	hub.SetFanout(fanout)

	hub.Publish("restaurant:abc", Event{Name: "menu-assigned"})

	assert.Len(t, fanout.published, 1)
	assert.Equal(t, "restaurant:abc", fanout.published[0].room)
	assert.Equal(t, "menu-assigned", fanout.published[0].event.Name)
}

func TestRoomHelpers(t *testing.T) {
	id, _ := primitive.ObjectIDFromHex("507f1f77bcf86cd799439011")
	assert.Equal(t, "restaurant:507f1f77bcf86cd799439011", RestaurantRoom(id))
	assert.Equal(t, "display:507f1f77bcf86cd799439011", DisplayRoom(id))
	assert.Equal(t, "pairing:ABC123", PairingRoom("ABC123"))
}

type captureFanout struct {
	published []struct {
		room  string
		event Event
	}
}

func (f *captureFanout) Publish(room string, e Event) {
	f.published = append(f.published, struct {
		room  string
		event Event
	}{room, e})
}
