// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package toml

import "fmt"

// Position describes a 1-based line/column location within a source
// document, plus its 0-based byte offset.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// ErrorKind enumerates the parse-error categories from §7.
type ErrorKind uint8

const (
	UnexpectedChar ErrorKind = iota
	UnexpectedEOF
	InvalidEscape
	InvalidUnicodeScalar
	InvalidNumber
	NumberOutOfRange
	InvalidDatetime
	InvalidString
	InvalidKey
	DuplicateKey
	RedefinedTable
	TypeConflict
	HeterogeneousArray
	InlineTableExtension
	EmptyBareKey
	TrailingGarbage
	RecursionLimit
)

var errorKindNames = [...]string{
	UnexpectedChar:       "UnexpectedChar",
	UnexpectedEOF:        "UnexpectedEOF",
	InvalidEscape:        "InvalidEscape",
	InvalidUnicodeScalar: "InvalidUnicodeScalar",
	InvalidNumber:        "InvalidNumber",
	NumberOutOfRange:     "NumberOutOfRange",
	InvalidDatetime:      "InvalidDatetime",
	InvalidString:        "InvalidString",
	InvalidKey:           "InvalidKey",
	DuplicateKey:         "DuplicateKey",
	RedefinedTable:       "RedefinedTable",
	TypeConflict:         "TypeConflict",
	HeterogeneousArray:   "HeterogeneousArray",
	InlineTableExtension: "InlineTableExtension",
	EmptyBareKey:         "EmptyBareKey",
	TrailingGarbage:      "TrailingGarbage",
	RecursionLimit:       "RecursionLimit",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return "UnknownError"
}

// ParseError is returned by ParseBytes and ParseString for any
// malformed input. It carries the earliest meaningful source location
// for the error, per §7's policy.
type ParseError struct {
	Position
	Kind ErrorKind
	Path string // dotted key-path context, if any
	Text string
}

func (e *ParseError) Error() string {
	prefix := ""
	if e.Path != "" {
		prefix = e.Path + ": "
	}
	return fmt.Sprintf("%d:%d: %s%s", e.Line, e.Column, prefix, e.Text)
}
