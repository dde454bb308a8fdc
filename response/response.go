package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourism/locale/i18n"
)

// Mọi endpoint trả về envelope {success, message?, <resource>?, count?}.
// Message key được dịch theo ngôn ngữ của request.

// JSON gắn success vào payload và ghi response
func JSON(c *gin.Context, status int, success bool, payload gin.H) {
	body := gin.H{"success": success}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// OK trả về response thành công 200
func OK(c *gin.Context, payload gin.H) {
	JSON(c, http.StatusOK, true, payload)
}

// Created trả về response thành công 201
func Created(c *gin.Context, payload gin.H) {
	JSON(c, http.StatusCreated, true, payload)
}

// Message dịch message key theo ngôn ngữ của request
func Message(c *gin.Context, key string) string {
	return i18n.T(key, i18n.FromGin(c))
}

func fail(c *gin.Context, status int, key string) {
	JSON(c, status, false, gin.H{"message": Message(c, key)})
}

// BadRequest trả về response lỗi validation 400
func BadRequest(c *gin.Context, key string) {
	fail(c, http.StatusBadRequest, key)
}

// Unauthorized trả về response chưa xác thực 401
func Unauthorized(c *gin.Context, key string) {
	fail(c, http.StatusUnauthorized, key)
}

// Forbidden trả về response không có quyền 403
func Forbidden(c *gin.Context, key string) {
	fail(c, http.StatusForbidden, key)
}

// NotFound trả về response không tìm thấy 404
func NotFound(c *gin.Context, key string) {
	fail(c, http.StatusNotFound, key)
}

// Conflict trả về response xung đột dữ liệu 409
func Conflict(c *gin.Context, key string) {
	fail(c, http.StatusConflict, key)
}

// ServerError trả về response lỗi server 500, không lộ chi tiết lỗi nội bộ
func ServerError(c *gin.Context, key string) {
	fail(c, http.StatusInternalServerError, key)
}
