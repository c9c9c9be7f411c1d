// Package menusvc - Test khử trùng lặp danh sách ID item trong menu.
package menusvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUniqueIDs_GiuThuTuXuatHienDau(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()

	out := uniqueIDs([]primitive.ObjectID{a, b, a, c, b})
	assert.Equal(t, []primitive.ObjectID{a, b, c}, out)
}

func TestUniqueIDs_Rong(t *testing.T) {
	assert.Empty(t, uniqueIDs(nil))
	assert.Empty(t, uniqueIDs([]primitive.ObjectID{}))
}

func TestParseItemIDs_LoaiIDTrungTruocKhiLuu(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	// Client gửi trùng ID: danh sách lưu vào menu phải đã khử trùng, giữ thứ tự
	out, err := parseItemIDs([]string{a.Hex(), b.Hex(), a.Hex()})
	assert.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{a, b}, out)
}

func TestParseItemIDs_HexSaiDinhDang(t *testing.T) {
	_, err := parseItemIDs([]string{"khong-phai-objectid"})
	assert.Error(t, err)
}

func TestParseItemIDs_Rong(t *testing.T) {
	out, err := parseItemIDs(nil)
	assert.NoError(t, err)
	assert.Empty(t, out)
}
