package namer

import (
	"strings"
	"unicode"
)

// Classify converts a file-path hint into a component-style name: the
// directory part and extension are stripped, and the remaining kebab, snake,
// or slash separated segments are capitalized and concatenated.
//
//	"widgets/nav-bar.comp" -> "NavBar"
//	"user_profile.tmpl"    -> "UserProfile"
func Classify(path string) string {
	base := path
	if idx := strings.LastIndexAny(base, `/\`); idx >= 0 {
		base = base[idx+1:]
	}
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}

	segments := strings.FieldsFunc(base, func(r rune) bool {
		return r == '-' || r == '_' || r == '/'
	})

	var b strings.Builder
	for _, seg := range segments {
		runes := []rune(seg)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}
