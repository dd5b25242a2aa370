package i18n

import "sync"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dict = map[string]map[string]string{
	"en": {
		"malformed_identifier": "malformed node id",
		"duplicate_field":      "duplicate field",
		"missing_category":     "missing kind",
		"malformed_location":   "malformed source location",
		"invalid_type":         "invalid type",
		"invalid_value":        "invalid value",
		"parse_error":          "parse error",
		"too_deep":             "maximum nesting depth exceeded",
		"truncated":            "truncated",
		"invalid_schema":       "invalid schema",
	},
	"ja": {
		"malformed_identifier": "ノードIDが不正です",
		"duplicate_field":      "フィールドが重複しています",
		"missing_category":     "kind がありません",
		"malformed_location":   "ソース位置が不正です",
		"invalid_type":         "型が不正です",
		"invalid_value":        "値が不正です",
		"parse_error":          "解析エラー",
		"too_deep":             "ネストが深すぎます",
		"truncated":            "打ち切られました",
		"invalid_schema":       "スキーマが不正です",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	if m, ok := dict[t.lang][code]; ok {
		if k := data["key"]; k != "" {
			return m + ": " + k
		}
		return m
	}
	return code
}

var (
	mu                           = sync.RWMutex{}
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
