package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Quote double-quotes v, escaping only '"'.  A trailing backslash in v
// cannot be represented.
func Quote(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		if v[i] == '"' {
			b.WriteString(`\"`)
			continue
		}
		b.WriteByte(v[i])
	}
	b.WriteByte('"')
	return b.String()
}

// unquote decodes the body of a quoted string.  Only \" is an escape; any
// other backslash is kept as written.
func unquote(d []byte) string {
	return strings.ReplaceAll(string(d), `\"`, `"`)
}

// IsIdentifier reports whether v scans as a single, possibly dotted,
// identifier, and so may be written without quotes.
func IsIdentifier(v string) bool {
	if v == "" {
		return false
	}
	for _, seg := range strings.Split(v, ".") {
		if !isIdent(seg) {
			return false
		}
		if seg == "true" || seg == "false" {
			return false
		}
	}
	return true
}

func isIdent(seg string) bool {
	if seg == "" {
		return false
	}
	for i, r := range seg {
		if i == 0 {
			if !isIdentStart(r) {
				return false
			}
			continue
		}
		if !isIdentPart(r) {
			return false
		}
	}
	return true
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func identLen(d []byte) int {
	i := 0
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		if i == 0 && !isIdentStart(r) {
			return 0
		}
		if !isIdentPart(r) {
			return i
		}
		i += sz
	}
	return i
}
