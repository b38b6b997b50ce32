// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package toml

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"
)

func TestBuilderDottedKeyCreatesImplicitTable(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	root, err := ParseString("a.b.c = 1\n", 0)
	c.Assert(err, qt.IsNil)
	a, ok := root.Get("a")
	c.Assert(ok, qt.IsTrue)
	at, ok := a.(*Table)
	c.Assert(ok, qt.IsTrue)
	c.Assert(at.dottedOnly, qt.IsTrue)
}

func TestBuilderHeaderPromotesImplicitAncestor(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	// a is created implicitly as the parent segment of the [a.b]
	// header, then adopted explicitly by its own [a] header: legal,
	// unlike the dotted case in TestParseRejected.
	root, err := ParseString("[a.b]\nx = 1\n[a]\ny = 2\n", 0)
	c.Assert(err, qt.IsNil)
	a, ok := root.Get("a")
	c.Assert(ok, qt.IsTrue)
	at := a.(*Table)
	c.Assert(at.dottedOnly, qt.IsFalse)
	y, ok := at.Get("y")
	c.Assert(ok, qt.IsTrue)
	c.Assert(Equal(y, Integer(2)), qt.IsTrue)

	wantB := NewTable()
	wantB.Set("x", Integer(1))
	want := NewTable()
	want.Set("b", wantB)
	want.Set("y", Integer(2))
	if d := cmp.Diff(want, at, tableComparer); d != "" {
		t.Fatalf("promoted table mismatch (-want +got):\n%s", d)
	}
}

func TestBuilderInlineTableClosedAfterConstruction(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	root, err := ParseString("a = { x = 1 }\n", 0)
	c.Assert(err, qt.IsNil)
	v, ok := root.Get("a")
	c.Assert(ok, qt.IsTrue)
	at := v.(*Table)
	c.Assert(at.closed, qt.IsTrue)

	err = assignInto(at, []string{"y"}, Integer(2), Position{}, 0)
	c.Assert(err, qt.Not(qt.IsNil))
}

func TestBuilderAotElementClosedByNextHeader(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	root, err := ParseString("[[x]]\na=1\n[[x]]\na=2\n", 0)
	c.Assert(err, qt.IsNil)
	xv, _ := root.Get("x")
	arr := xv.(*Array)
	first := arr.Elems[0].(*Table)
	c.Assert(first.closed, qt.IsTrue)
	second := arr.Elems[1].(*Table)
	c.Assert(second.closed, qt.IsFalse)
}
