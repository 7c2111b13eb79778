package plugin

import (
	"strings"
	"unicode/utf8"
)

// DefaultForbidden holds the characters that can never appear in a name.
const DefaultForbidden = "/"

// FilterInput drops forbidden characters from text inserted into the name
// entry.
func FilterInput(text, forbidden string) string {
	if forbidden == "" || !strings.ContainsAny(text, forbidden) {
		return text
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(forbidden, r) {
			return -1
		}
		return r
	}, text)
}

// SplitExt splits name into base and extension. Leading dots belong to the
// base, so ".bashrc" has no extension.
func SplitExt(name string) (base, ext string) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, ""
	}
	if strings.TrimLeft(name[:i], ".") == "" {
		return name, ""
	}
	return name[:i], name[i:]
}

// BaseNameSelection returns how many leading runes of name make up its base
// name, the part the rename entry pre-selects.
func BaseNameSelection(name string) int {
	base, _ := SplitExt(name)
	return utf8.RuneCountInString(base)
}
