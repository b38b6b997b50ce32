// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package toml

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"
)

// tableComparer lets go-cmp diff *Table values despite their
// unexported bookkeeping fields, by delegating to Equal the same way
// a hand-written Equal method would; go-cmp recognizes a registered
// Comparer before it ever tries to walk a type's fields.
var tableComparer = cmp.Comparer(func(a, b *Table) bool { return Equal(a, b) })

func TestTableInsertionOrder(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	tbl := NewTable()
	tbl.Set("z", Integer(1))
	tbl.Set("a", Integer(2))
	tbl.Set("m", Integer(3))
	c.Assert(tbl.Keys(), qt.DeepEquals, []string{"z", "a", "m"})

	tbl.Set("a", Integer(99))
	c.Assert(tbl.Keys(), qt.DeepEquals, []string{"z", "a", "m"})
	v, ok := tbl.Get("a")
	c.Assert(ok, qt.IsTrue)
	c.Assert(v, qt.Equals, Value(Integer(99)))
}

func TestEqualFloatBitwise(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	nan := Float(nanValue())
	c.Assert(Equal(nan, nan), qt.IsTrue)
	c.Assert(Equal(Float(0), Float(0)), qt.IsTrue)

	negZero := Float(1 / negInf())
	c.Assert(Equal(Float(0), negZero), qt.IsFalse)
}

func TestEqualStructural(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	a := NewTable()
	a.Set("x", Integer(1))
	a.Set("y", &Array{Elems: []Value{String("a"), String("b")}})

	b := NewTable()
	b.Set("x", Integer(1))
	b.Set("y", &Array{Elems: []Value{String("a"), String("b")}})

	c.Assert(Equal(a, b), qt.IsTrue)

	b.Set("x", Integer(2))
	c.Assert(Equal(a, b), qt.IsFalse)
}

func TestEqualStructuralViaCmp(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	a := NewTable()
	a.Set("x", Integer(1))

	b := NewTable()
	b.Set("x", Integer(1))

	c.Assert(cmp.Diff(a, b, tableComparer), qt.Equals, "")

	b.Set("x", Integer(2))
	c.Assert(cmp.Diff(a, b, tableComparer), qt.Not(qt.Equals), "")
}

func TestKindOf(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	c.Assert(kindOf(String("s")), qt.Equals, "string")
	c.Assert(kindOf(Integer(1)), qt.Equals, "integer")
	c.Assert(kindOf(Float(1.5)), qt.Equals, "float")
	c.Assert(kindOf(Boolean(true)), qt.Equals, "boolean")
	c.Assert(kindOf(&Array{}), qt.Equals, "array")
	c.Assert(kindOf(NewTable()), qt.Equals, "table")
}
