// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package toml

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// isBareKeyByte reports whether b may appear in a bare key, per §4.1's
// [A-Za-z0-9_-]+ grammar.
func isBareKeyByte(b byte) bool {
	return b == '_' || b == '-' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// isBareKey reports whether s can be emitted as an unquoted key.
func isBareKey(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isBareKeyByte(s[i]) {
			return false
		}
	}
	return true
}

// quoteKey renders key the way the serializer does: unquoted if it is
// a legal bare key (and non-empty), otherwise as a minimally escaped
// basic string. An empty key is always quoted, per §4.6.
func quoteKey(key string) string {
	if isBareKey(key) {
		return key
	}
	return quoteBasicString(key)
}

// basic escape table for the single-character escapes §4.2 lists.
var basicEscapes = map[byte]byte{
	'b': '\b', 't': '\t', 'n': '\n', 'f': '\f', 'r': '\r',
	'"': '"', '\\': '\\',
}

var basicEscapeFor = map[byte]byte{
	'\b': 'b', '\t': 't', '\n': 'n', '\f': 'f', '\r': 'r',
	'"': '"', '\\': '\\',
}

// quoteBasicString renders s as a double-quoted basic string using
// the default escaping policy from §4.6: control characters and
// non-ASCII control points below 0x20, plus DEL, are escaped with
// \uXXXX (or the named two-character escapes where one exists);
// everything else printable is emitted verbatim.
func quoteBasicString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"' || r == '\\':
			b.WriteByte('\\')
			b.WriteByte(basicEscapeFor[byte(r)])
		case r == '\b' || r == '\t' || r == '\n' || r == '\f' || r == '\r':
			b.WriteByte('\\')
			b.WriteByte(basicEscapeFor[byte(r)])
		case r < 0x20 || r == 0x7f:
			b.WriteString(`\u`)
			b.WriteString(hexPad(uint32(r), 4))
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func hexPad(v uint32, width int) string {
	s := strconv.FormatUint(uint64(v), 16)
	for len(s) < width {
		s = "0" + s
	}
	return strings.ToUpper(s)
}

// decodeUnicodeEscape validates and decodes a \uXXXX or \UXXXXXXXX
// payload (already stripped of the \u/\U marker) into a rune,
// rejecting lone surrogates per §4.2.
func decodeUnicodeEscape(hex string) (rune, bool) {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, false
	}
	r := rune(v)
	if !utf8.ValidRune(r) {
		return 0, false
	}
	return r, true
}
