package utility

import (
	"crypto/rand"
	"math/big"

	"menu_board/internal/common"

	"github.com/dgrijalva/jwt-go"
)

// CreateToken tạo JWT token chứa userId, time và randomNumber.
// Trả về map với key "token" để tiện mở rộng (refresh token sau này).
func CreateToken(secret string, userID string, timeHex string, randomNumber string) (map[string]string, error) {
	claims := jwt.MapClaims{
		"userId":       userID,
		"time":         timeHex,
		"randomNumber": randomNumber,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, common.NewError(common.ErrCodeAuthToken, "Không thể tạo token", common.StatusInternalServerError, err)
	}

	return map[string]string{"token": signed}, nil
}

// ParseToken giải mã JWT token và trả về userId trong claims
func ParseToken(secret string, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", common.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", common.ErrTokenInvalid
	}

	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return "", common.ErrTokenInvalid
	}

	return userID, nil
}

// pairingCodeCharset: chữ hoa và số, đủ dễ đọc để nhập tay trên kiosk
const pairingCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GeneratePairingCode sinh mã ghép nối ngẫu nhiên n ký tự (crypto/rand)
func GeneratePairingCode(n int) (string, error) {
	if n <= 0 {
		n = 6
	}

	code := make([]byte, n)
	max := big.NewInt(int64(len(pairingCodeCharset)))
	for i := range code {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", common.NewError(common.ErrCodeInternalServer, "Không thể sinh mã ghép nối", common.StatusInternalServerError, err)
		}
		code[i] = pairingCodeCharset[idx.Int64()]
	}

	return string(code), nil
}
