package services

import (
	"time"

	"github.com/dgrijalva/jwt-go"

	apperrors "tourism/errors"
)

// Token có hiệu lực 7 ngày kể từ lúc phát hành.
const tokenTTL = 7 * 24 * time.Hour

// ErrInvalidToken trả về cho mọi trường hợp token hỏng, sai chữ ký hoặc
// hết hạn. Không phân biệt lý do để tránh lộ thông tin cho client.
var ErrInvalidToken = apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "invalid token", nil)

var tokenSecret []byte

// TokenClaims là payload của access token
type TokenClaims struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	jwt.StandardClaims
}

// InitTokenSecret nạp secret ký token một lần lúc khởi động.
// Secret rỗng là lỗi cấu hình, caller phải dừng process.
func InitTokenSecret(secret string) error {
	if secret == "" {
		return apperrors.NewAppError(apperrors.ErrCodeMissingSecret, "JWT_SECRET is not set", nil)
	}
	tokenSecret = []byte(secret)
	return nil
}

// GenerateToken phát hành access token chứa {userId, email}
func GenerateToken(userID uint, email string) (string, error) {
	return generateTokenWithTTL(userID, email, tokenTTL)
}

func generateTokenWithTTL(userID uint, email string, ttl time.Duration) (string, error) {
	claims := &TokenClaims{
		UserID: userID,
		Email:  email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tokenSecret)
}

// VerifyToken kiểm tra chữ ký và hạn của token, trả về claims nếu hợp lệ
func VerifyToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return tokenSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
