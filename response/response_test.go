package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism/locale/i18n"
)

func testContext(lang i18n.Lang) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if lang != "" {
		c.Set(i18n.ContextKey, lang)
	}
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestOK_Envelope(t *testing.T) {
	c, w := testContext(i18n.LangRU)
	OK(c, gin.H{"tours": []string{}, "count": 0})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Contains(t, body, "tours")
	assert.Contains(t, body, "count")
}

func TestCreated(t *testing.T) {
	c, w := testContext(i18n.LangRU)
	Created(c, gin.H{"tour": gin.H{"id": 1}})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["success"])
}

func TestFailHelpers_StatusAndLocalization(t *testing.T) {
	tests := []struct {
		name   string
		fn     func(*gin.Context, string)
		status int
	}{
		{"bad request", BadRequest, http.StatusBadRequest},
		{"unauthorized", Unauthorized, http.StatusUnauthorized},
		{"forbidden", Forbidden, http.StatusForbidden},
		{"not found", NotFound, http.StatusNotFound},
		{"conflict", Conflict, http.StatusConflict},
		{"server error", ServerError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext(i18n.LangEN)
			tt.fn(c, "tour.not_found")

			assert.Equal(t, tt.status, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "Tour not found", body["message"])
		})
	}
}

func TestFail_DefaultsToRussian(t *testing.T) {
	c, w := testContext("")
	NotFound(c, "tour.not_found")

	body := decodeBody(t, w)
	assert.Equal(t, "Тур не найден", body["message"])
}
