package i18n

import "github.com/gin-gonic/gin"

// Lang là mã ngôn ngữ của request, lấy từ prefix /:lang/api/v1.
type Lang string

const (
	LangRU Lang = "ru"
	LangEN Lang = "en"
	LangKY Lang = "ky"

	// DefaultLang là ngôn ngữ fallback khi thiếu bản dịch.
	DefaultLang = LangRU

	// ContextKey là key lưu ngôn ngữ trong gin context.
	ContextKey = "lang"
)

var catalogs = map[Lang]map[string]string{
	LangRU: ru,
	LangEN: en,
	LangKY: ky,
}

// Parse kiểm tra mã ngôn ngữ có được hỗ trợ không
func Parse(s string) (Lang, bool) {
	lang := Lang(s)
	_, ok := catalogs[lang]
	return lang, ok
}

// T tra cứu message theo key và ngôn ngữ, fallback về tiếng Nga
// rồi về chính key nếu thiếu bản dịch.
func T(key string, lang Lang) string {
	if msg, ok := catalogs[lang][key]; ok {
		return msg
	}
	if msg, ok := catalogs[DefaultLang][key]; ok {
		return msg
	}
	return key
}

// FromGin lấy ngôn ngữ đã được LangMiddleware gắn vào context
func FromGin(c *gin.Context) Lang {
	if v, ok := c.Get(ContextKey); ok {
		if lang, ok := v.(Lang); ok {
			return lang
		}
	}
	return DefaultLang
}
