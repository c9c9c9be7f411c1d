// Package middleware - Test vô hiệu token trong cache xác thực.
package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	models "menu_board/internal/api/auth/models"
	"menu_board/internal/utility"
)

func newTestAuthManager() *AuthManager {
	return &AuthManager{Cache: utility.NewCache(time.Minute, time.Minute)}
}

func TestInvalidateToken_GoTokenKhoiCache(t *testing.T) {
	am := newTestAuthManager()
	defer am.Cache.Stop()

	am.Cache.Set("auth_token:tok-1", models.User{Email: "owner@example.com"})
	am.InvalidateToken("tok-1")

	_, exists := am.Cache.Get("auth_token:tok-1")
	assert.False(t, exists)
}

func TestInvalidateToken_ChiGoDungToken(t *testing.T) {
	am := newTestAuthManager()
	defer am.Cache.Stop()

	am.Cache.Set("auth_token:tok-1", models.User{Email: "a@example.com"})
	am.Cache.Set("auth_token:tok-2", models.User{Email: "b@example.com"})
	am.InvalidateToken("tok-1")

	_, exists := am.Cache.Get("auth_token:tok-2")
	assert.True(t, exists)
}

func TestInvalidateToken_TokenRongKhongLamGi(t *testing.T) {
	am := newTestAuthManager()
	defer am.Cache.Stop()

	am.Cache.Set("auth_token:tok-1", models.User{Email: "a@example.com"})
	am.InvalidateToken("")

	_, exists := am.Cache.Get("auth_token:tok-1")
	assert.True(t, exists)
}
