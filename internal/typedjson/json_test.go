// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package typedjson

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/tomlforge/toml"
)

func TestEncodeScalars(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	out, err := Encode(toml.String("hi"))
	c.Assert(err, qt.IsNil)
	c.Assert(string(out), qt.Equals, `{"type":"string","value":"hi"}`)

	out, err = Encode(toml.Integer(42))
	c.Assert(err, qt.IsNil)
	c.Assert(string(out), qt.Equals, `{"type":"integer","value":"42"}`)

	out, err = Encode(toml.Boolean(true))
	c.Assert(err, qt.IsNil)
	c.Assert(string(out), qt.Equals, `{"type":"bool","value":"true"}`)
}

func TestEncodeTableAndArray(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	root, err := toml.ParseString("a = 1\nb = [1, 2]\n", 0)
	c.Assert(err, qt.IsNil)

	out, err := Encode(root)
	c.Assert(err, qt.IsNil)
	want := `{"a":{"type":"integer","value":"1"},"b":[{"type":"integer","value":"1"},{"type":"integer","value":"2"}]}`
	c.Assert(string(out), qt.Equals, want)
}

func TestEncodeDatetime(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	root, err := toml.ParseString("dt = 1979-05-27T07:32:00Z\n", 0)
	c.Assert(err, qt.IsNil)
	v, _ := root.Get("dt")

	out, err := Encode(v)
	c.Assert(err, qt.IsNil)
	c.Assert(string(out), qt.Equals, `{"type":"datetime","value":"1979-05-27T07:32:00Z"}`)
}
