// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

// Package typedjson encodes a toml.Value tree using the TOML
// compliance-suite's typed-JSON convention: scalar leaves are
// rendered as {"type": "...", "value": "..."}, while arrays and
// tables render as plain JSON arrays and objects. This exists only to
// drive the acceptance corpus described in §8 property 5; it is not a
// general-purpose codec and deliberately doesn't attempt the
// teacher's reflect-based two-way AST<->JSON approach, since
// toml.Value is a closed sum type with no position information to
// round-trip.
package typedjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/tomlforge/toml"
)

// Encode renders v using the typed-JSON convention.
func Encode(v toml.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v toml.Value) error {
	switch vv := v.(type) {
	case toml.String:
		return encodeLeaf(buf, "string", string(vv))
	case toml.Integer:
		return encodeLeaf(buf, "integer", fmt.Sprintf("%d", int64(vv)))
	case toml.Float:
		return encodeLeaf(buf, "float", formatFloatJSON(float64(vv)))
	case toml.Boolean:
		value := "false"
		if vv {
			value = "true"
		}
		return encodeLeaf(buf, "bool", value)
	case toml.Datetime:
		return encodeLeaf(buf, datetimeTypeName(vv.Kind), vv.String())
	case toml.RawDatetime:
		return encodeLeaf(buf, "datetime", string(vv))
	case *toml.Array:
		return encodeArray(buf, vv)
	case *toml.Table:
		return encodeTable(buf, vv)
	}
	return fmt.Errorf("typedjson: unhandled toml.Value %T", v)
}

func encodeLeaf(buf *bytes.Buffer, kind, value string) error {
	buf.WriteString(`{"type":`)
	typeJSON, err := json.Marshal(kind)
	if err != nil {
		return err
	}
	buf.Write(typeJSON)
	buf.WriteString(`,"value":`)
	valueJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(valueJSON)
	buf.WriteByte('}')
	return nil
}

func encodeArray(buf *bytes.Buffer, a *toml.Array) error {
	buf.WriteByte('[')
	for i, e := range a.Elems {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeValue(buf, e); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

func encodeTable(buf *bytes.Buffer, t *toml.Table) error {
	buf.WriteByte('{')
	keys := t.Keys()
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		val, _ := t.Get(key)
		if err := encodeValue(buf, val); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func datetimeTypeName(k toml.DatetimeKind) string {
	switch k {
	case toml.OffsetDateTime:
		return "datetime"
	case toml.LocalDateTime:
		return "datetime-local"
	case toml.LocalDate:
		return "date-local"
	case toml.LocalTime:
		return "time-local"
	}
	return "datetime"
}

func formatFloatJSON(f float64) string {
	// Mirrors toml's own formatFloat decisions for nan/inf, since the
	// acceptance corpus expects the same lexical spellings TOML itself
	// uses rather than JSON's (which has none).
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s, err := json.Marshal(f)
	if err != nil {
		return fmt.Sprintf("%v", f)
	}
	return string(s)
}

// SortedKeys is exposed for tests that need to compare two typed-JSON
// encodings irrespective of the underlying map iteration order used
// to build an expected-output fixture.
func SortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
