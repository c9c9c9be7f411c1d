// Package utility - Test tạo/parse JWT token và sinh mã ghép nối.
package utility

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateToken_ParseToken_RoundTrip(t *testing.T) {
	secret := "test-secret"
	userID := "507f1f77bcf86cd799439011"

	result, err := CreateToken(secret, userID, "6961963c", "49")
	assert.NoError(t, err)
	assert.NotEmpty(t, result["token"])

	parsed, err := ParseToken(secret, result["token"])
	assert.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestParseToken_SaiSecret(t *testing.T) {
	result, err := CreateToken("secret-a", "507f1f77bcf86cd799439011", "6961963c", "49")
	assert.NoError(t, err)

	// Parse với secret khác phải fail
	_, err = ParseToken("secret-b", result["token"])
	assert.Error(t, err)
}

func TestParseToken_TokenRac(t *testing.T) {
	_, err := ParseToken("secret", "không-phải-jwt")
	assert.Error(t, err)
}

func TestGeneratePairingCode_DoDaiVaCharset(t *testing.T) {
	code, err := GeneratePairingCode(6)
	assert.NoError(t, err)
	assert.Len(t, code, 6)
	for _, c := range code {
		assert.True(t, strings.ContainsRune(pairingCodeCharset, c), "ký tự '%c' không thuộc charset", c)
	}
}

func TestGeneratePairingCode_MacDinh6KyTu(t *testing.T) {
	// n <= 0 phải fallback về 6 ký tự
	code, err := GeneratePairingCode(0)
	assert.NoError(t, err)
	assert.Len(t, code, 6)

	code, err = GeneratePairingCode(-3)
	assert.NoError(t, err)
	assert.Len(t, code, 6)
}

func TestGeneratePairingCode_NgauNhien(t *testing.T) {
	// Hai lần sinh liên tiếp gần như chắc chắn khác nhau
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		code, err := GeneratePairingCode(6)
		assert.NoError(t, err)
		seen[code] = true
	}
	assert.Greater(t, len(seen), 1, "20 lần sinh mã phải cho ra nhiều hơn 1 giá trị")
}
