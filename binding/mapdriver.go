// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package binding

import (
	"fmt"

	"github.com/tomlforge/toml"
)

// FromMap drives an Emitter over m and returns the resulting
// toml.Value, using Go's own dynamic typing as the "external data
// shape" — the reference driver named in §4.7, playing the same role
// FuncEnviron/ListEnviron play as reference Environ implementations
// rather than the only ones a caller may write.
//
// Supported element types: the toml scalar kinds, []byte, []any,
// map[string]any, and nil (emitted as emit_none, which omits the
// entry from its parent table).
func FromMap(m map[string]any) (toml.Value, error) {
	return Produce(func(e Emitter) { driveValue(e, m) })
}

func driveValue(e Emitter, v any) {
	switch vv := v.(type) {
	case nil:
		e.EmitNone()
	case bool:
		e.EmitBool(vv)
	case int:
		e.EmitI64(int64(vv))
	case int64:
		e.EmitI64(vv)
	case float64:
		e.EmitF64(vv)
	case string:
		e.EmitStr(vv)
	case []byte:
		e.EmitBytes(vv)
	case []any:
		e.BeginSeq()
		for _, elem := range vv {
			driveValue(e, elem)
		}
		e.EndSeq()
	case map[string]any:
		e.BeginMap()
		for key, val := range vv {
			e.BeginKey(key)
			driveValue(e, val)
			e.EndKey()
		}
		e.EndMap()
	default:
		e.EmitStr(fmt.Sprintf("%v", vv))
	}
}

// ToMap consumes val into a map[string]any whose nested values are
// map[string]any, []any, or Go scalars, mirroring FromMap's type
// choices. It fails with a WrongType BindError if val's root is not a
// table.
func ToMap(val toml.Value) (map[string]any, error) {
	mc := &mapConsumer{}
	if err := Consume(val, mc); err != nil {
		return nil, err
	}
	m, ok := mc.result.(map[string]any)
	if !ok {
		return nil, wrongType("", "root value is not a table")
	}
	return m, nil
}

// mapConsumer is the reference Visitor that folds any toml.Value tree
// into plain Go values: map[string]any for tables, []any for arrays,
// and the natural Go scalar type otherwise.
type mapConsumer struct {
	result any
}

func (c *mapConsumer) VisitBool(v bool) error    { c.result = v; return nil }
func (c *mapConsumer) VisitI64(v int64) error    { c.result = v; return nil }
func (c *mapConsumer) VisitF64(v float64) error  { c.result = v; return nil }
func (c *mapConsumer) VisitStr(v string) error   { c.result = v; return nil }
func (c *mapConsumer) VisitDatetime(v toml.Datetime) error {
	c.result = v
	return nil
}

func (c *mapConsumer) VisitSeq(it SeqIter) error {
	var out []any
	for {
		elem, ok := it.Next()
		if !ok {
			break
		}
		sub := &mapConsumer{}
		if err := elem.Accept(sub); err != nil {
			return err
		}
		out = append(out, sub.result)
	}
	c.result = out
	return nil
}

func (c *mapConsumer) VisitMap(it MapIter) error {
	out := make(map[string]any)
	for {
		key, val, ok := it.Next()
		if !ok {
			break
		}
		sub := &mapConsumer{}
		if err := val.Accept(sub); err != nil {
			return err
		}
		out[key] = sub.result
	}
	c.result = out
	return nil
}
