// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package toml

import "fmt"

// The table builder (C4) applies the three parser events — Assign,
// StdHeader, AotHeader — to a growing value tree under TOML's merge
// rules. It is expressed here as a handful of free functions operating
// on *Table rather than as a standalone type, since every event is
// ultimately "walk a key path from some starting table, then do one
// thing to the last segment" and the starting table differs (the
// document's current-table cursor for top-level events, an inline
// table literal's own root while it is still being parsed).

// navigate walks segments from start, creating implicit intermediate
// tables as needed and redirecting through array-of-tables into their
// last element, per §4.4. When viaDotted is true (the path came from a
// dotted key, not a header), every table walked through — created or
// pre-existing — is marked dottedOnly, which later blocks it from
// being adopted by a [header] (see the concrete scenario in spec §8).
func navigate(start *Table, segments []string, pos Position, mode Mode, viaDotted bool) (*Table, error) {
	cur := start
	for _, key := range segments {
		existing, ok := cur.Get(key)
		if !ok {
			child := NewTable()
			if viaDotted {
				child.dottedOnly = true
			}
			cur.Set(key, child)
			cur = child
			continue
		}
		switch v := existing.(type) {
		case *Table:
			if v.closed {
				return nil, builderErr(RedefinedTable, pos, "cannot extend a closed table")
			}
			if viaDotted {
				v.dottedOnly = true
			}
			cur = v
		case *Array:
			if !v.headerDefined || len(v.Elems) == 0 {
				return nil, builderErr(TypeConflict, pos, "key is an array, not a table")
			}
			last, _ := v.Elems[len(v.Elems)-1].(*Table)
			if last == nil || last.closed {
				return nil, builderErr(RedefinedTable, pos, "cannot extend a closed array-of-tables element")
			}
			if viaDotted {
				last.dottedOnly = true
			}
			cur = last
		default:
			return nil, builderErr(TypeConflict, pos, "key already has a non-table value")
		}
	}
	return cur, nil
}

// assignInto applies an Assign(path, value) event rooted at root,
// used both for top-level assignments (root is the current table) and
// for key/value pairs inside an inline table literal (root is that
// literal's own table, while it is still open for construction).
func assignInto(root *Table, path []string, value Value, pos Position, mode Mode) error {
	parent, err := navigate(root, path[:len(path)-1], pos, mode, true)
	if err != nil {
		return err
	}
	if parent.closed {
		return builderErr(RedefinedTable, pos, "cannot extend a closed table")
	}
	last := path[len(path)-1]
	if _, exists := parent.Get(last); exists {
		return builderErr(DuplicateKey, pos, "key %q already defined", last)
	}
	parent.Set(last, value)
	return nil
}

// assign applies an Assign(path, value) event to the document's
// current table.
func (p *parser) assign(path []string, value Value, pos Position) error {
	return assignInto(p.cur, path, value, pos, p.mode)
}

// stdHeader applies a StdHeader(path) event, per §4.4.
func (p *parser) stdHeader(path []string, pos Position) error {
	parent, err := navigate(p.root, path[:len(path)-1], pos, p.mode, false)
	if err != nil {
		return err
	}
	last := path[len(path)-1]
	existing, ok := parent.Get(last)
	if !ok {
		t := NewTable()
		t.defined = true
		t.explicit = true
		parent.Set(last, t)
		p.cur = t
		return nil
	}
	t, isTable := existing.(*Table)
	if !isTable {
		return builderErr(TypeConflict, pos, "key already has a non-table value")
	}
	if t.dottedOnly {
		return builderErr(RedefinedTable, pos, "table was already defined via dotted keys")
	}
	if t.explicit && t.defined {
		return builderErr(RedefinedTable, pos, "table %q redefined", last)
	}
	t.explicit = true
	t.defined = true
	p.cur = t
	return nil
}

// aotHeader applies an AotHeader(path) event, per §4.4.
func (p *parser) aotHeader(path []string, pos Position) error {
	parent, err := navigate(p.root, path[:len(path)-1], pos, p.mode, false)
	if err != nil {
		return err
	}
	last := path[len(path)-1]
	existing, ok := parent.Get(last)
	var arr *Array
	if !ok {
		arr = &Array{headerDefined: true}
		parent.Set(last, arr)
	} else {
		a, isArr := existing.(*Array)
		if !isArr || !a.headerDefined {
			return builderErr(TypeConflict, pos, "key %q is not an array of tables", last)
		}
		arr = a
	}
	if n := len(arr.Elems); n > 0 {
		if t, ok := arr.Elems[n-1].(*Table); ok {
			t.closed = true
		}
	}
	elem := NewTable()
	elem.defined = true
	elem.explicit = true
	arr.Elems = append(arr.Elems, elem)
	p.cur = elem
	return nil
}

// freezeClosed recursively marks t and every Table reachable from it
// (through nested tables and array-of-tables elements) as closed,
// defined, and explicit: the state an inline table literal and
// everything inside it are in the instant its closing brace is
// parsed, since inline tables admit no further extension at all,
// including to their nested structure.
func freezeClosed(t *Table) {
	t.closed = true
	t.defined = true
	t.explicit = true
	t.Range(func(_ string, v Value) bool {
		switch v := v.(type) {
		case *Table:
			freezeClosed(v)
		case *Array:
			for _, e := range v.Elems {
				if sub, ok := e.(*Table); ok {
					freezeClosed(sub)
				}
			}
		}
		return true
	})
}

func builderErr(kind ErrorKind, pos Position, format string, args ...any) error {
	return &ParseError{Position: pos, Kind: kind, Text: fmt.Sprintf(format, args...)}
}
