// Package basesvc - Test ToUpdateData và cơ chế default tag khi insert.
package basesvc

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestToUpdateData_DaLaUpdateData(t *testing.T) {
	original := &UpdateData{Set: map[string]interface{}{"name": "x"}}
	result, err := ToUpdateData(original)
	assert.NoError(t, err)
	assert.Same(t, original, result)

	// Value (không phải pointer) cũng được chấp nhận
	result, err = ToUpdateData(UpdateData{Unset: map[string]interface{}{"media": ""}})
	assert.NoError(t, err)
	assert.Contains(t, result.Unset, "media")
}

func TestToUpdateData_MapThuong_WrapTrongSet(t *testing.T) {
	result, err := ToUpdateData(bson.M{"name": "Phở bò", "price": 8.5})
	assert.NoError(t, err)
	assert.Equal(t, "Phở bò", result.Set["name"])
	assert.Nil(t, result.Unset)
}

func TestToUpdateData_MapCoOperator(t *testing.T) {
	result, err := ToUpdateData(bson.M{
		"$set":   map[string]interface{}{"isPaired": true},
		"$unset": map[string]interface{}{"pairedAt": ""},
	})
	assert.NoError(t, err)
	assert.Equal(t, true, result.Set["isPaired"])
	assert.Contains(t, result.Unset, "pairedAt")
}

type defaultTagModel struct {
	Name        string `bson:"name"`
	IsAvailable bool   `bson:"isAvailable" default:"true"`
	SortOrder   int    `bson:"sortOrder" default:"10"`
	Note        string `bson:"note" default:"trống"`
	Skipped     bool   `bson:"-" default:"true"`
}

func TestGetInsertDefaultsFromModelType(t *testing.T) {
	defaults := getInsertDefaultsFromModelType(reflect.TypeOf(defaultTagModel{}))

	assert.Equal(t, true, defaults["isAvailable"])
	assert.Equal(t, int32(10), defaults["sortOrder"])
	assert.Equal(t, "trống", defaults["note"])
	// Field không có bson key thì bỏ qua
	assert.NotContains(t, defaults, "-")
	assert.Len(t, defaults, 3)
}

func TestApplyInsertDefaultsToModel(t *testing.T) {
	m := defaultTagModel{Name: "Phở"}
	applyInsertDefaultsToModel(&m)

	assert.True(t, m.IsAvailable, "field zero phải nhận giá trị default")
	assert.Equal(t, 10, m.SortOrder)
	assert.Equal(t, "trống", m.Note)
}

func TestApplyInsertDefaultsToModel_KhongGhiDeGiaTriDaCo(t *testing.T) {
	m := defaultTagModel{Name: "Phở", SortOrder: 5, Note: "đã có"}
	applyInsertDefaultsToModel(&m)

	assert.Equal(t, 5, m.SortOrder, "giá trị khác zero không được ghi đè")
	assert.Equal(t, "đã có", m.Note)
	assert.True(t, m.IsAvailable)
}

func TestParseDefaultValue(t *testing.T) {
	assert.Equal(t, true, parseDefaultValue("true", reflect.TypeOf(false)))
	assert.Equal(t, int32(7), parseDefaultValue("7", reflect.TypeOf(int(0))))
	assert.Equal(t, int64(7), parseDefaultValue("7", reflect.TypeOf(int64(0))))
	assert.Equal(t, "x", parseDefaultValue("x", reflect.TypeOf("")))
	// Kiểu không hỗ trợ trả nil
	assert.Nil(t, parseDefaultValue("1.5", reflect.TypeOf(float64(0))))
}
