// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

// Package binding implements the data-binding contract (C7) that maps
// a parsed *toml.Table onto a caller-chosen data shape, and back.
//
// Two small interfaces carry the whole contract, named after their
// direction rather than after any particular in-memory shape, the
// same way expand.Environ and expand.WriteEnviron split a shell's
// environment into a read side and a write side:
//
//   - Emitter is driven BY the caller's own data shape: the caller
//     calls back into the emit_*/begin_*/end_* methods to describe
//     what it has, and Produce assembles the resulting toml.Value.
//   - Visitor is driven BY the binding package while it walks a
//     toml.Value; Consume calls the driver's visit_* methods so the
//     driver can fold the tree into its own shape.
//
// Neither interface knows about reflection or struct tags: arbitrary
// caller-struct traversal is out of scope (mirrored here, not
// reinvented — a driver that wants struct tags writes its own
// reflect-based Emitter/Visitor, same as a shell frontend wanting
// $HOME lookups writes its own expand.Environ).
package binding

import "github.com/tomlforge/toml"

// Emitter is the producing side of the binding surface: a caller
// drives these methods in the order its own shape dictates, and
// Produce folds the calls into a toml.Value tree.
type Emitter interface {
	EmitBool(v bool)
	EmitI64(v int64)
	EmitF64(v float64)
	EmitStr(v string)
	EmitBytes(v []byte)
	EmitNone()

	BeginSeq()
	EndSeq()

	BeginMap()
	BeginKey(key string)
	EndKey()
	EndMap()
}

// Visitor is the consuming side of the binding surface: Consume
// drives these methods once per toml.Value node, in tree order.
type Visitor interface {
	VisitBool(v bool) error
	VisitI64(v int64) error
	VisitF64(v float64) error
	VisitStr(v string) error
	VisitDatetime(v toml.Datetime) error
	VisitSeq(it SeqIter) error
	VisitMap(it MapIter) error
}

// SeqIter yields the elements of a sequence being visited. Next
// returns false once exhausted.
type SeqIter interface {
	Next() (Value, bool)
}

// MapIter yields the key/value entries of a table being visited, in
// the table's own iteration order. Next returns false once exhausted.
type MapIter interface {
	Next() (string, Value, bool)
}

// Value is the handle a Visitor's iterators offer for a nested
// element: calling Accept drives v against it, the same way the
// top-level Consume does against the root.
type Value interface {
	Accept(v Visitor) error
}
