// Package utility - Test parse tag transform và convert giá trị DTO → Model.
package utility

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseTransformTag_TypeDon(t *testing.T) {
	config, err := ParseTransformTag("str_objectid")
	assert.NoError(t, err)
	assert.Equal(t, "str_objectid", config.Type)
	assert.False(t, config.Optional)
	assert.False(t, config.Required)
}

func TestParseTransformTag_Options(t *testing.T) {
	config, err := ParseTransformTag("str_objectid,optional")
	assert.NoError(t, err)
	assert.Equal(t, "str_objectid", config.Type)
	assert.True(t, config.Optional)

	config, err = ParseTransformTag("str_time,format=2006-01-02,required")
	assert.NoError(t, err)
	assert.Equal(t, "str_time", config.Type)
	assert.Equal(t, "2006-01-02", config.Format)
	assert.True(t, config.Required)

	config, err = ParseTransformTag("str_bool,default=true,map=IsActive")
	assert.NoError(t, err)
	assert.Equal(t, "true", config.Default)
	assert.Equal(t, "IsActive", config.MapTo)
}

func TestTransformFieldValue_StrObjectID(t *testing.T) {
	config, _ := ParseTransformTag("str_objectid")
	targetType := reflect.TypeOf(primitive.ObjectID{})

	hex := "507f1f77bcf86cd799439011"
	result, err := TransformFieldValue(hex, config, targetType)
	assert.NoError(t, err)

	objID, ok := result.(primitive.ObjectID)
	assert.True(t, ok)
	assert.Equal(t, hex, objID.Hex())
}

func TestTransformFieldValue_ObjectIDKhongHopLe(t *testing.T) {
	config, _ := ParseTransformTag("str_objectid")
	targetType := reflect.TypeOf(primitive.ObjectID{})

	_, err := TransformFieldValue("không-phải-hex", config, targetType)
	assert.Error(t, err)
}

func TestTransformFieldValue_StringRongVoiOptional(t *testing.T) {
	// String rỗng + optional: bỏ qua, không lỗi
	config, _ := ParseTransformTag("str_objectid,optional")
	targetType := reflect.TypeOf(primitive.ObjectID{})

	result, err := TransformFieldValue("", config, targetType)
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestTransformFieldValue_StringRongVoiRequired(t *testing.T) {
	config, _ := ParseTransformTag("str_objectid,required")
	targetType := reflect.TypeOf(primitive.ObjectID{})

	_, err := TransformFieldValue("", config, targetType)
	assert.Error(t, err)
}

func TestTransformFieldValue_StrTime(t *testing.T) {
	config, _ := ParseTransformTag("str_time,format=2006-01-02")
	targetType := reflect.TypeOf(int64(0))

	result, err := TransformFieldValue("2026-01-15", config, targetType)
	assert.NoError(t, err)

	ts, ok := result.(int64)
	assert.True(t, ok)
	assert.Greater(t, ts, int64(0))
}

func TestTransformFieldValue_StrBool(t *testing.T) {
	config, _ := ParseTransformTag("str_bool")
	targetType := reflect.TypeOf(false)

	result, err := TransformFieldValue("true", config, targetType)
	assert.NoError(t, err)
	assert.Equal(t, true, result)

	result, err = TransformFieldValue("false", config, targetType)
	assert.NoError(t, err)
	assert.Equal(t, false, result)
}

func TestTransformFieldValue_StrNumber(t *testing.T) {
	config, _ := ParseTransformTag("str_number")
	targetType := reflect.TypeOf(float64(0))

	// Số nguyên dạng string → int64
	result, err := TransformFieldValue("42", config, targetType)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), result)

	// Số thập phân dạng string → float64
	result, err = TransformFieldValue("8.5", config, targetType)
	assert.NoError(t, err)
	assert.Equal(t, 8.5, result)
}
