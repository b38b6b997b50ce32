// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

//go:build toml_nodatetime

package toml

// datetimeEnabled mirrors the "datetime" compile-time feature from
// the specification. When disabled, datetime syntax still lexes and
// parses, but is surfaced as an opaque RawDatetime rather than being
// decoded into calendar/clock fields.
const datetimeEnabled = false

// newDatetimeValue builds the Value the lexer emits for a datetime
// literal. With the feature disabled, the decoded Datetime fields are
// discarded and the lexical form is kept verbatim.
func newDatetimeValue(lexeme string, d Datetime) Value {
	return RawDatetime(lexeme)
}
