// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

//go:build !toml_nodatetime

package toml

// datetimeEnabled mirrors the "datetime" compile-time feature from
// the specification. With the default build, the lexer decodes
// datetime literals into structured Datetime values.
const datetimeEnabled = true

// newDatetimeValue builds the Value the lexer emits for a decoded
// datetime literal. lexeme is kept only for the disabled build
// (feature_nodatetime.go); here it is unused.
func newDatetimeValue(lexeme string, d Datetime) Value {
	return d
}
