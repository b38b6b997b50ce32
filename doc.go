// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

// Package toml implements a TOML v1.0 parser and serializer, plus a
// data-binding contract (see the binding subpackage) for mapping
// between the parsed value tree and arbitrary caller-defined data
// shapes.
//
// The package is deliberately flat: the lexer, grammar parser, table
// builder, value model, and serializer all live at the top level
// rather than being split across nested packages, since binary size
// and compile time are the design priorities this library optimizes
// for over feature breadth.
//
// Parsing and serializing are pure, allocation-only operations: no
// I/O is performed internally, and a *Table returned by one of the
// Parse functions owns every String, *Array, and *Table reachable
// from it exclusively — nothing is shared with the input buffer or
// with any other parse.
package toml
