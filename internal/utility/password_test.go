// Package utility - Test băm và so sánh mật khẩu.
package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_ComparePassword(t *testing.T) {
	hash, err := HashPassword("Demo@12345")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Demo@12345", hash)

	assert.NoError(t, ComparePassword(hash, "Demo@12345"))
}

func TestComparePassword_SaiMatKhau(t *testing.T) {
	hash, err := HashPassword("Demo@12345")
	assert.NoError(t, err)

	assert.Error(t, ComparePassword(hash, "SaiMatKhau1@"))
}
