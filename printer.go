// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package toml

import (
	"math"
	"strconv"
	"strings"
)

// serializeTable renders root as canonical TOML text, per §4.6. The
// output is deterministic: the same Value tree always produces the
// same bytes.
func serializeTable(root *Table) string {
	var b strings.Builder
	writeTableBody(&b, root, nil)
	return b.String()
}

// isHeaderChild reports whether v is rendered as a nested [header]
// (a Table) or repeated [[header]] block (an array of tables), as
// opposed to inline on a "key = value" line.
func isHeaderChild(v Value) bool {
	switch vv := v.(type) {
	case *Table:
		return true
	case *Array:
		return vv.headerDefined
	}
	return false
}

func hasScalarKey(t *Table) bool {
	found := false
	t.Range(func(_ string, v Value) bool {
		if !isHeaderChild(v) {
			found = true
			return false
		}
		return true
	})
	return found
}

func hasHeaderChild(t *Table) bool {
	found := false
	t.Range(func(_ string, v Value) bool {
		if isHeaderChild(v) {
			found = true
			return false
		}
		return true
	})
	return found
}

// writeTableBody writes t's entries in insertion order. A header-child
// (nested table or array of tables) that has no scalar sibling after
// it is written as a [header]/[[header]] block, the same as it reads
// in the source. One that does have a later scalar sibling can't use
// that form without pulling the sibling into its scope, so it's
// flattened to dotted keys instead (or, for an array of tables, which
// has no dotted-key form, to an inline array) to keep insertion order
// intact across a serialize/reparse round trip.
func writeTableBody(b *strings.Builder, t *Table, path []string) {
	lastScalarIdx := -1
	for i, e := range t.entries {
		if !isHeaderChild(e.value) {
			lastScalarIdx = i
		}
	}

	var deferredHeaders []tableEntry
	for i, e := range t.entries {
		if !isHeaderChild(e.value) {
			writeAssign(b, e.key, e.value)
			continue
		}
		if i <= lastScalarIdx {
			writeDottedChild(b, []string{e.key}, e.value)
			continue
		}
		deferredHeaders = append(deferredHeaders, e)
	}

	for _, e := range deferredHeaders {
		childPath := append(append([]string{}, path...), e.key)
		switch vv := e.value.(type) {
		case *Table:
			if hasScalarKey(vv) || !hasHeaderChild(vv) {
				b.WriteString("[" + joinPath(childPath) + "]\n")
			}
			writeTableBody(b, vv, childPath)
		case *Array:
			for _, elem := range vv.Elems {
				et, _ := elem.(*Table)
				b.WriteString("[[" + joinPath(childPath) + "]]\n")
				if et != nil {
					writeTableBody(b, et, childPath)
				}
			}
		}
	}
}

// writeDottedChild renders a header-child that must stay scope-
// preserving because a scalar sibling follows it in insertion order.
// childPath is relative to the table whose body is being written. A
// non-empty *Table expands recursively as dotted-key assignments; an
// empty *Table and a headerDefined *Array have no dotted-key
// equivalent, so they fall back to an inline literal.
func writeDottedChild(b *strings.Builder, childPath []string, v Value) {
	vt, ok := v.(*Table)
	if !ok || vt.Len() == 0 {
		b.WriteString(joinPath(childPath))
		b.WriteString(" = ")
		b.WriteString(formatValue(v))
		b.WriteByte('\n')
		return
	}
	for _, e := range vt.entries {
		if sub, ok := e.value.(*Table); ok {
			writeDottedChild(b, append(append([]string{}, childPath...), e.key), sub)
			continue
		}
		b.WriteString(joinPath(append(append([]string{}, childPath...), e.key)))
		b.WriteString(" = ")
		b.WriteString(formatValue(e.value))
		b.WriteByte('\n')
	}
}

func writeAssign(b *strings.Builder, key string, v Value) {
	b.WriteString(quoteKey(key))
	b.WriteString(" = ")
	b.WriteString(formatValue(v))
	b.WriteByte('\n')
}

func joinPath(path []string) string {
	quoted := make([]string, len(path))
	for i, seg := range path {
		quoted[i] = quoteKey(seg)
	}
	return strings.Join(quoted, ".")
}

func formatValue(v Value) string {
	switch vv := v.(type) {
	case String:
		return quoteBasicString(string(vv))
	case Integer:
		return strconv.FormatInt(int64(vv), 10)
	case Float:
		return formatFloat(float64(vv))
	case Boolean:
		if vv {
			return "true"
		}
		return "false"
	case Datetime:
		return vv.String()
	case RawDatetime:
		return string(vv)
	case *Array:
		return formatArray(vv)
	case *Table:
		return formatInlineTable(vv)
	}
	panic("toml: unhandled Value type")
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// inlineSoftCap is the internal threshold past which a string element
// pushes an inline array onto multiple lines, per §4.6's "pure
// formatting decision" note.
const inlineSoftCap = 32

func formatArray(a *Array) string {
	if len(a.Elems) == 0 {
		return "[]"
	}
	parts := make([]string, len(a.Elems))
	multiline := false
	for i, e := range a.Elems {
		parts[i] = formatValue(e)
		switch e.(type) {
		case Datetime, RawDatetime:
			multiline = true
		case String:
			if len(parts[i]) > inlineSoftCap {
				multiline = true
			}
		}
	}
	if multiline {
		return "[\n  " + strings.Join(parts, ",\n  ") + ",\n]"
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatInlineTable(t *Table) string {
	if t.Len() == 0 {
		return "{}"
	}
	parts := make([]string, 0, t.Len())
	t.Range(func(key string, v Value) bool {
		parts = append(parts, quoteKey(key)+" = "+formatValue(v))
		return true
	})
	return "{ " + strings.Join(parts, ", ") + " }"
}
