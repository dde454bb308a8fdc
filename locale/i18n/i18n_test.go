package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	for _, code := range []string{"ru", "en", "ky"} {
		lang, ok := Parse(code)
		assert.True(t, ok)
		assert.Equal(t, Lang(code), lang)
	}

	_, ok := Parse("de")
	assert.False(t, ok)
	_, ok = Parse("")
	assert.False(t, ok)
}

func TestT_Translations(t *testing.T) {
	assert.Equal(t, "Тур не найден", T("tour.not_found", LangRU))
	assert.Equal(t, "Tour not found", T("tour.not_found", LangEN))
}

func TestT_FallbackToRussian(t *testing.T) {
	// Catalog tiếng Kyrgyz chưa có bản dịch, phải fallback về tiếng Nga
	assert.Equal(t, T("tour.not_found", LangRU), T("tour.not_found", LangKY))
}

func TestT_UnknownKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "no.such_key", T("no.such_key", LangRU))
	assert.Equal(t, "no.such_key", T("no.such_key", LangKY))
}

func TestCatalogKeysSubsetOfRussian(t *testing.T) {
	// Tiếng Nga là catalog gốc, catalog khác không được có key lạ
	for key := range en {
		_, ok := ru[key]
		assert.True(t, ok, "en has key %q missing from ru", key)
	}
	for key := range ky {
		_, ok := ru[key]
		assert.True(t, ok, "ky has key %q missing from ru", key)
	}
}
