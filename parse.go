// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package toml

// ParseBytes parses a TOML document from src and returns its root
// table, or the first error encountered.
func ParseBytes(src []byte, mode Mode) (*Table, error) {
	p := newParser(src, mode)
	return p.parse()
}

// ParseString is a convenience wrapper around ParseBytes for callers
// who already have validated UTF-8 text rather than a []byte.
func ParseString(src string, mode Mode) (*Table, error) {
	return ParseBytes([]byte(src), mode)
}
