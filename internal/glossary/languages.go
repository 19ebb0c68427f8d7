package glossary

import "strings"

// Language describes a worker language supported by the site.
type Language struct {
	Code  string `json:"code"`
	Key   string `json:"key"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Languages lists the supported worker languages in display order.
var Languages = []Language{
	{Code: "vi-VN", Key: "vi", Name: "Vietnam", Label: "베트남"},
	{Code: "uz-UZ", Key: "uz", Name: "Uzbek", Label: "우즈벡"},
	{Code: "km-KH", Key: "km", Name: "Cambodia", Label: "캄보디아"},
	{Code: "mn-MN", Key: "mn", Name: "Mongolia", Label: "몽골어"},
	{Code: "en-US", Key: "en", Name: "English", Label: "영어"},
	{Code: "zh-CN", Key: "zh", Name: "Chinese", Label: "중국어"},
	{Code: "th-TH", Key: "th", Name: "Thai", Label: "태국어"},
	{Code: "ru-RU", Key: "ru", Name: "Russian", Label: "러시아어"},
}

// Korean is the manager-side language.
var Korean = Language{Code: "ko-KR", Key: "ko", Name: "Korean", Label: "한국어"}

// LookupLanguage accepts a code ("vi-VN"), a key ("vi") or an English name
// ("Vietnam"), all case-insensitive.
func LookupLanguage(value string) (Language, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Language{}, false
	}
	for _, lang := range Languages {
		if lang.matches(value) {
			return lang, true
		}
	}
	if Korean.matches(value) {
		return Korean, true
	}
	return Language{}, false
}

func (l Language) matches(value string) bool {
	return strings.EqualFold(l.Code, value) ||
		strings.EqualFold(l.Key, value) ||
		strings.EqualFold(l.Name, value)
}

// LanguageKey resolves value to a short key, or returns the lowercased
// prefix before "-" for unknown codes so callers still get a stable key.
func LanguageKey(value string) string {
	if lang, ok := LookupLanguage(value); ok {
		return lang.Key
	}
	value = strings.ToLower(strings.TrimSpace(value))
	if idx := strings.IndexAny(value, "-_"); idx >= 0 {
		value = value[:idx]
	}
	return value
}
