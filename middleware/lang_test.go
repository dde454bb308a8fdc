package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"tourism/locale/i18n"
)

func setupLangRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/:lang/api/v1/ping", LangMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"lang": string(i18n.FromGin(c))})
	})
	return router
}

func TestLangMiddleware_SupportedLangs(t *testing.T) {
	router := setupLangRouter()

	for _, lang := range []string{"ru", "en", "ky"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/"+lang+"/api/v1/ping", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"lang":"`+lang+`"`)
	}
}

func TestLangMiddleware_UnsupportedLang(t *testing.T) {
	router := setupLangRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/de/api/v1/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid language")
}
