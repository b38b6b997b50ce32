// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package binding

import "github.com/tomlforge/toml"

// Consume walks val, driving v's visit_* methods in tree order. It is
// the C7 entry point used by toml.Unmarshal-style generic callers.
func Consume(val toml.Value, v Visitor) error {
	return valueOf(val).Accept(v)
}

// valueAdapter lets a toml.Value satisfy binding.Value without toml
// importing binding (which would invert the module's dependency
// direction for no benefit, since only the binding package needs the
// Accept bridge).
type valueAdapter struct{ v toml.Value }

func valueOf(v toml.Value) Value { return valueAdapter{v} }

func (a valueAdapter) Accept(v Visitor) error {
	switch vv := a.v.(type) {
	case toml.String:
		return v.VisitStr(string(vv))
	case toml.Integer:
		return v.VisitI64(int64(vv))
	case toml.Float:
		return v.VisitF64(float64(vv))
	case toml.Boolean:
		return v.VisitBool(bool(vv))
	case toml.Datetime:
		return v.VisitDatetime(vv)
	case toml.RawDatetime:
		return v.VisitStr(string(vv))
	case *toml.Array:
		return v.VisitSeq(&sliceIter{elems: vv.Elems})
	case *toml.Table:
		return v.VisitMap(&tableIter{t: vv})
	}
	return wrongType("", "unrecognized toml.Value implementation")
}

type sliceIter struct {
	elems []toml.Value
	i     int
}

func (it *sliceIter) Next() (Value, bool) {
	if it.i >= len(it.elems) {
		return nil, false
	}
	v := it.elems[it.i]
	it.i++
	return valueOf(v), true
}

type tableIter struct {
	t    *toml.Table
	keys []string
	i    int
}

func (it *tableIter) Next() (string, Value, bool) {
	if it.keys == nil {
		it.keys = it.t.Keys()
	}
	if it.i >= len(it.keys) {
		return "", nil, false
	}
	key := it.keys[it.i]
	it.i++
	v, _ := it.t.Get(key)
	return key, valueOf(v), true
}

// Produce drives the emit_* calls made by drive against a fresh
// recorder and returns the resulting toml.Value. It is the C7 entry
// point used by toml.Marshal-style generic callers.
func Produce(drive func(Emitter)) (toml.Value, error) {
	rec := &recorder{}
	drive(rec)
	if rec.err != nil {
		return nil, rec.err
	}
	if len(rec.stack) != 0 || rec.done == nil {
		return nil, &BindError{Kind: Custom, Text: "unbalanced begin_seq/begin_map calls"}
	}
	return rec.done, nil
}

// recorder implements Emitter by assembling a single toml.Value out
// of a well-nested emit_*/begin_*/end_* call sequence, the same way a
// JSON encoder's low-level token stream assembles one document.
type recorder struct {
	stack []frame
	done  toml.Value
	err   error
}

type frame struct {
	arr    *toml.Array
	tbl    *toml.Table
	curKey string
	isMap  bool
}

func (r *recorder) emit(v toml.Value) {
	if r.err != nil {
		return
	}
	if len(r.stack) == 0 {
		r.done = v
		return
	}
	top := &r.stack[len(r.stack)-1]
	if top.isMap {
		top.tbl.Set(top.curKey, v)
	} else {
		top.arr.Elems = append(top.arr.Elems, v)
	}
}

func (r *recorder) EmitBool(v bool)    { r.emit(toml.Boolean(v)) }
func (r *recorder) EmitI64(v int64)    { r.emit(toml.Integer(v)) }
func (r *recorder) EmitF64(v float64)  { r.emit(toml.Float(v)) }
func (r *recorder) EmitStr(v string)   { r.emit(toml.String(v)) }
func (r *recorder) EmitBytes(v []byte) {
	elems := make([]toml.Value, len(v))
	for i, b := range v {
		elems[i] = toml.Integer(b)
	}
	r.emit(&toml.Array{Elems: elems})
}
func (r *recorder) EmitNone() {
	if len(r.stack) == 0 {
		return
	}
	top := &r.stack[len(r.stack)-1]
	if top.isMap {
		// omit the key entirely, per §4.7's "optional values absent
		// are omitted from their parent Table".
		return
	}
	r.err = &BindError{Kind: Custom, Text: "emit_none is only valid for a map entry"}
}

func (r *recorder) BeginSeq() {
	r.stack = append(r.stack, frame{arr: &toml.Array{}})
}

func (r *recorder) EndSeq() {
	if len(r.stack) == 0 || r.stack[len(r.stack)-1].isMap {
		r.err = &BindError{Kind: Custom, Text: "end_seq without matching begin_seq"}
		return
	}
	top := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.emit(top.arr)
}

func (r *recorder) BeginMap() {
	r.stack = append(r.stack, frame{tbl: toml.NewTable(), isMap: true})
}

func (r *recorder) BeginKey(key string) {
	if len(r.stack) == 0 || !r.stack[len(r.stack)-1].isMap {
		r.err = &BindError{Kind: Custom, Text: "begin_key outside of begin_map/end_map"}
		return
	}
	r.stack[len(r.stack)-1].curKey = key
}

func (r *recorder) EndKey() {}

func (r *recorder) EndMap() {
	if len(r.stack) == 0 || !r.stack[len(r.stack)-1].isMap {
		r.err = &BindError{Kind: Custom, Text: "end_map without matching begin_map"}
		return
	}
	top := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.emit(top.tbl)
}
