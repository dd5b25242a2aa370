package clangast

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ResolveStructKey applies the repository-wide rule to resolve a struct field's
// document key.
// Priority: clang:"name" > json tag name > field name with a lower-case first
// letter (Clang keys are lowerCamelCase); "-" disables the field.
func ResolveStructKey(sf reflect.StructField) string {
	if ct := sf.Tag.Get("clang"); ct != "" {
		name, _, _ := strings.Cut(ct, ",")
		if name != "" {
			return name
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if name, _, _ := strings.Cut(jt, ","); name != "" {
			return name
		}
	}
	return lowerFirst(sf.Name)
}

// isRestField reports whether the field is tagged clang:",rest".
func isRestField(sf reflect.StructField) bool {
	ct := sf.Tag.Get("clang")
	_, opts, ok := strings.Cut(ct, ",")
	if !ok {
		return false
	}
	for _, o := range strings.Split(opts, ",") {
		if strings.TrimSpace(o) == "rest" {
			return true
		}
	}
	return false
}

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}
