// Package global - Test các custom validator: pairing_code, time_hhmm, strong_password, no_xss.
package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pairingCodeField struct {
	Code string `validate:"pairing_code"`
}

type timeField struct {
	Time string `validate:"time_hhmm"`
}

type passwordField struct {
	Password string `validate:"strong_password"`
}

type nameField struct {
	Name string `validate:"no_xss"`
}

func TestValidatePairingCode(t *testing.T) {
	InitValidator()

	assert.NoError(t, Validate.Struct(pairingCodeField{Code: "ABC123"}))
	assert.NoError(t, Validate.Struct(pairingCodeField{Code: "ZZZZZZ"}))
	// Chữ thường được chấp nhận vì validator tự uppercase trước khi match
	assert.NoError(t, Validate.Struct(pairingCodeField{Code: "abc123"}))

	assert.Error(t, Validate.Struct(pairingCodeField{Code: "ABC12"}), "5 ký tự phải fail")
	assert.Error(t, Validate.Struct(pairingCodeField{Code: "ABC1234"}), "7 ký tự phải fail")
	assert.Error(t, Validate.Struct(pairingCodeField{Code: "ABC-12"}), "ký tự đặc biệt phải fail")
	assert.Error(t, Validate.Struct(pairingCodeField{Code: ""}))
}

func TestValidateTimeHHMM(t *testing.T) {
	InitValidator()

	assert.NoError(t, Validate.Struct(timeField{Time: "00:00"}))
	assert.NoError(t, Validate.Struct(timeField{Time: "08:30"}))
	assert.NoError(t, Validate.Struct(timeField{Time: "23:59"}))

	assert.Error(t, Validate.Struct(timeField{Time: "24:00"}), "giờ 24 phải fail")
	assert.Error(t, Validate.Struct(timeField{Time: "12:60"}), "phút 60 phải fail")
	assert.Error(t, Validate.Struct(timeField{Time: "8:30"}), "thiếu zero-padding phải fail")
	assert.Error(t, Validate.Struct(timeField{Time: "0830"}))
	assert.Error(t, Validate.Struct(timeField{Time: ""}))
}

func TestValidateStrongPassword(t *testing.T) {
	InitValidator()

	assert.NoError(t, Validate.Struct(passwordField{Password: "Demo@12345"}))
	assert.NoError(t, Validate.Struct(passwordField{Password: "abcDEF123"}))

	assert.Error(t, Validate.Struct(passwordField{Password: "Ab1@"}), "dưới 8 ký tự phải fail")
	assert.Error(t, Validate.Struct(passwordField{Password: "abcdefgh"}), "chỉ 1 loại ký tự phải fail")
	assert.Error(t, Validate.Struct(passwordField{Password: "abcdefg1"}), "chỉ 2 loại ký tự phải fail")
}

func TestValidateNoXSS(t *testing.T) {
	InitValidator()

	assert.NoError(t, Validate.Struct(nameField{Name: "Phở bò tái"}))
	assert.NoError(t, Validate.Struct(nameField{Name: "Combo 2 người < 100k"}))

	assert.Error(t, Validate.Struct(nameField{Name: "<script>alert(1)</script>"}))
	assert.Error(t, Validate.Struct(nameField{Name: "a href=javascript:void(0)"}))
	assert.Error(t, Validate.Struct(nameField{Name: "<iframe src=x>"}))
}
