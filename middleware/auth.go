package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"tourism/response"
	"tourism/services"
)

// Key lưu danh tính đã xác thực trong gin context. Handler phía sau chỉ
// đọc danh tính qua CurrentUserID/CurrentUserEmail, không parse lại header.
const (
	contextUserIDKey = "userID"
	contextEmailKey  = "userEmail"
)

const bearerPrefix = "Bearer "

// AuthMiddleware xử lý authentication theo scheme Bearer.
// Header không đúng scheme bị từ chối, không chấp nhận token trần.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			response.Unauthorized(c, "auth.not_authorized")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)
		claims, err := services.VerifyToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "auth.invalid_token")
			c.Abort()
			return
		}

		c.Set(contextUserIDKey, claims.UserID)
		c.Set(contextEmailKey, claims.Email)
		c.Next()
	}
}

// CurrentUserID lấy ID user đã xác thực từ context
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(contextUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// CurrentUserEmail lấy email user đã xác thực từ context
func CurrentUserEmail(c *gin.Context) (string, bool) {
	v, ok := c.Get(contextEmailKey)
	if !ok {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}
