package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourism/locale/i18n"
)

// LangMiddleware lấy ngôn ngữ từ prefix /:lang/api/v1 và gắn vào context.
// Mã ngôn ngữ không hỗ trợ trả về 404.
func LangMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, ok := i18n.Parse(c.Param("lang"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Invalid language",
			})
			c.Abort()
			return
		}

		c.Set(i18n.ContextKey, lang)
		c.Next()
	}
}
