// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package binding

import "fmt"

// BindErrorKind classifies a binding failure, mirroring toml's own
// ErrorKind enum for the parser side.
type BindErrorKind uint8

const (
	WrongType BindErrorKind = iota
	MissingField
	UnknownField
	IntegerOverflow
	Custom
)

func (k BindErrorKind) String() string {
	switch k {
	case WrongType:
		return "WrongType"
	case MissingField:
		return "MissingField"
	case UnknownField:
		return "UnknownField"
	case IntegerOverflow:
		return "IntegerOverflow"
	case Custom:
		return "Custom"
	}
	return "BindErrorKind(?)"
}

// BindError is returned by a Visitor driver, or by Consume/Produce
// themselves, when a value tree cannot be bound to a target shape.
type BindError struct {
	Kind BindErrorKind
	Path string // dotted field path, most specific segment last
	Text string
}

func (e *BindError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Kind, e.Text)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Text)
}

func wrongType(path, text string) *BindError {
	return &BindError{Kind: WrongType, Path: path, Text: text}
}
