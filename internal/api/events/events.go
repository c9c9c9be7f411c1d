// Package events cung cấp cơ chế event trung tâm khi dữ liệu thay đổi qua CRUD.
// Các service CRUD không cần override từng method: BaseServiceMongoImpl tự động phát event.
// Logic phản ứng (đẩy realtime cho admin và màn hình, cache invalidation, ...) đăng ký qua OnDataChanged.
package events

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OpInsert, OpUpdate, OpUpsert, OpDelete là các loại thao tác CRUD.
const (
	OpInsert = "insert"
	OpUpdate = "update"
	OpUpsert = "upsert"
	OpDelete = "delete"
)

// Tên các event realtime đẩy xuống client (admin và màn hình).
// Bridge realtime suy ra tên từ collection + operation; các thao tác nghiệp vụ
// đặc biệt (toggle món, ghép nối màn hình, gán menu) set EventName trực tiếp.
const (
	EventMenuCreated             = "menu-created"
	EventMenuUpdated             = "menu-updated"
	EventMenuDeleted             = "menu-deleted"
	EventItemCreated             = "item-created"
	EventItemUpdated             = "item-updated"
	EventItemDeleted             = "item-deleted"
	EventItemAvailabilityChanged = "item-availability-changed"
	EventDisplayCreated          = "display-created"
	EventDisplayUpdated          = "display-updated"
	EventDisplayPaired           = "display-paired"
	EventMenuAssigned            = "menu-assigned"
	EventRestaurantUpdated       = "restaurant-updated"
)

// DataChangeEvent mô tả sự kiện thay đổi dữ liệu.
// Document là bản ghi sau khi thay đổi (với delete là bản ghi trước khi xóa, nếu có).
// EventName (optional) ghi đè tên event realtime suy ra từ collection + operation.
type DataChangeEvent struct {
	CollectionName string
	Operation      string
	EventName      string
	Document       interface{}
}

// DataChangeHandler xử lý sự kiện thay đổi dữ liệu.
type DataChangeHandler func(ctx context.Context, e DataChangeEvent)

var (
	handlers   []DataChangeHandler
	handlersMu sync.RWMutex
)

// OnDataChanged đăng ký handler. Gọi khi init (ví dụ từ realtime hub).
func OnDataChanged(h DataChangeHandler) {
	handlersMu.Lock()
	defer handlersMu.Unlock()
	handlers = append(handlers, h)
}

// EmitDataChanged phát sự kiện. Gọi từ BaseServiceMongoImpl sau mỗi CRUD thành công.
// Mỗi handler chạy trong goroutine riêng, panic được recover để không ảnh hưởng handler khác.
func EmitDataChanged(ctx context.Context, e DataChangeEvent) {
	handlersMu.RLock()
	list := make([]DataChangeHandler, len(handlers))
	copy(list, handlers)
	handlersMu.RUnlock()

	for _, h := range list {
		go func(fn DataChangeHandler) {
			defer func() {
				if r := recover(); r != nil {
					// Logger có thể chưa init khi event chạy sớm
					_ = r
				}
			}()
			fn(ctx, e)
		}(h)
	}
}

// GetRestaurantIDFromDocument lấy restaurantId từ document (dùng reflection).
// Trả về zero ObjectID nếu document không có field RestaurantID.
func GetRestaurantIDFromDocument(doc interface{}) primitive.ObjectID {
	return getObjectIDField(doc, "RestaurantID")
}

// GetIDFromDocument lấy _id từ document (dùng reflection).
func GetIDFromDocument(doc interface{}) primitive.ObjectID {
	return getObjectIDField(doc, "ID")
}

func getObjectIDField(doc interface{}, fieldName string) primitive.ObjectID {
	if doc == nil {
		return primitive.NilObjectID
	}
	val := reflect.ValueOf(doc)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return primitive.NilObjectID
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return primitive.NilObjectID
	}
	f := val.FieldByName(fieldName)
	if !f.IsValid() {
		return primitive.NilObjectID
	}
	switch f.Kind() {
	case reflect.Array, reflect.Struct:
		// primitive.ObjectID là [12]byte
		if obj, ok := f.Interface().(primitive.ObjectID); ok {
			return obj
		}
		return primitive.NilObjectID
	case reflect.Ptr:
		if f.IsNil() {
			return primitive.NilObjectID
		}
		if ptr, ok := f.Interface().(*primitive.ObjectID); ok && ptr != nil {
			return *ptr
		}
		return primitive.NilObjectID
	default:
		return primitive.NilObjectID
	}
}
