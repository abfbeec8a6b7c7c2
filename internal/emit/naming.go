package emit

import (
	"strings"
	"unicode"
)

// ExportedIdentifier derives an exported Go identifier from a table name.
// Words split on underscores, dashes, dots, and spaces are title-cased and
// joined; a leading digit gets a "T" prefix to keep the result legal.
func ExportedIdentifier(name string) string {
	var b strings.Builder
	for _, part := range strings.FieldsFunc(name, isWordSeparator) {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}

	ident := b.String()
	if ident == "" {
		return "T"
	}
	if unicode.IsDigit(rune(ident[0])) {
		ident = "T" + ident
	}
	return ident
}

func isWordSeparator(r rune) bool {
	switch r {
	case '_', '-', '.', ' ':
		return true
	}
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// FileName derives a generated file name from a table name, keeping only
// characters that are safe across file systems.
func FileName(name string) string {
	lower := strings.ToLower(name)
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, lower)
	return mapped + ".go"
}
