// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package toml

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"
)

// TestRoundTrip exercises parse(serialize(parse(src))) == parse(src),
// the property from §8: a Value tree produced by parsing, written
// back out, and reparsed yields an Equal tree.
func TestRoundTrip(t *testing.T) {
	t.Parallel()
	srcs := [...]string{
		"a = 1\nb = 2\n",
		"[a]\nx = 1\ny = 2\n",
		"[[x]]\na = 1\n[[x]]\na = 2\n",
		"a = [1, 2, 3]\n",
		"a = { x = 1, y = 2 }\n",
		"a.b.c = 1\n",
		"x = 1\nsub.y = 2\nz = 3\n",
		"s = \"hello world\"\n",
		"f = 1.5\n",
		"dt = 1979-05-27T07:32:00Z\n",
	}
	for _, src := range srcs {
		src := src
		t.Run("", func(t *testing.T) {
			t.Parallel()
			c := qt.New(t)
			root, err := ParseString(src, 0)
			c.Assert(err, qt.IsNil)

			out, err := SerializeToString(root)
			c.Assert(err, qt.IsNil)

			root2, err := ParseString(out, 0)
			c.Assert(err, qt.IsNil)

			if d := cmp.Diff(root, root2, tableComparer); d != "" {
				t.Fatalf("round-trip mismatch (-parsed +reparsed):\n%s", d)
			}
		})
	}
}
