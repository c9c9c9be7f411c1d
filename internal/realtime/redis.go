package realtime

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"menu_board/internal/logger"
)

// redisChannel kênh pub/sub dùng chung giữa các instance.
const redisChannel = "menu_board:realtime"

// redisEnvelope gói event khi fanout qua Redis.
// Origin để instance nhận biết và bỏ qua message do chính mình publish.
type redisEnvelope struct {
	Origin string          `json:"origin"`
	Room   string          `json:"room"`
	Name   string          `json:"name"`
	Data   json.RawMessage `json:"data"`
}

// RedisFanout fanout event realtime qua Redis pub/sub khi chạy nhiều instance API.
type RedisFanout struct {
	client     *redis.Client
	hub        *Hub
	instanceID string
}

// NewRedisFanout tạo fanout Redis và kiểm tra kết nối.
func NewRedisFanout(ctx context.Context, addr, password string, db int, hub *Hub) (*RedisFanout, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisFanout{
		client:     client,
		hub:        hub,
		instanceID: uuid.New().String(),
	}, nil
}

// Publish đẩy event sang các instance khác qua Redis.
func (f *RedisFanout) Publish(room string, e Event) {
	data, err := json.Marshal(e.Data)
	if err != nil {
		logger.GetAppLogger().WithError(err).Warn("📡 [REALTIME] Không thể marshal event data cho Redis fanout")
		return
	}
	payload, err := json.Marshal(redisEnvelope{
		Origin: f.instanceID,
		Room:   room,
		Name:   e.Name,
		Data:   data,
	})
	if err != nil {
		return
	}
	if err := f.client.Publish(context.Background(), redisChannel, payload).Err(); err != nil {
		logger.GetAppLogger().WithError(err).Warn("📡 [REALTIME] Publish Redis thất bại")
	}
}

// Start lắng nghe kênh Redis và phát lại event của instance khác vào hub local.
// Chạy trong goroutine riêng, dừng khi ctx bị cancel.
func (f *RedisFanout) Start(ctx context.Context) {
	log := logger.GetAppLogger()
	pubsub := f.client.Subscribe(ctx, redisChannel)
	defer pubsub.Close()

	log.WithFields(map[string]interface{}{
		"channel": redisChannel,
	}).Info("📡 [REALTIME] Redis fanout đang lắng nghe")

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			log.Info("📡 [REALTIME] Redis fanout stopped")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var envelope redisEnvelope
			if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
				log.WithError(err).Warn("📡 [REALTIME] Message Redis không hợp lệ, bỏ qua")
				continue
			}
			if envelope.Origin == f.instanceID {
				continue
			}
			var data interface{}
			if len(envelope.Data) > 0 {
				_ = json.Unmarshal(envelope.Data, &data)
			}
			f.hub.deliver(envelope.Room, Event{Name: envelope.Name, Data: data})
		}
	}
}
