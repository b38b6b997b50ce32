// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package toml

import (
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"
	"golang.org/x/sync/errgroup"
)

// TestConcurrentParsesAreIndependent fans N independent ParseBytes
// calls out over an errgroup, the same way interp.go supervises
// independent concurrent units of work, to demonstrate §5's "multiple
// parsers may run concurrently on independent inputs with no
// coordination" property.
func TestConcurrentParsesAreIndependent(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	const n = 64
	var g errgroup.Group
	results := make([]*Table, n)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			src := fmt.Sprintf("a = %d\n", i)
			root, err := ParseString(src, 0)
			if err != nil {
				return err
			}
			results[i] = root
			return nil
		})
	}
	c.Assert(g.Wait(), qt.IsNil)

	for i, root := range results {
		v, ok := root.Get("a")
		c.Assert(ok, qt.IsTrue)
		c.Assert(Equal(v, Integer(i)), qt.IsTrue)
	}
}
