// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package binding

import "github.com/tomlforge/toml"

// FromBytes parses src and consumes the result into v, the generic
// counterpart to toml.ParseBytes named in §6 ("from_bytes ... generic
// variant that plugs the binding surface between Value and a
// caller-supplied data shape").
func FromBytes(src []byte, mode toml.Mode, v Visitor) error {
	root, err := toml.ParseBytes(src, mode)
	if err != nil {
		return err
	}
	return Consume(root, v)
}

// FromStr is FromBytes for already-validated text.
func FromStr(src string, mode toml.Mode, v Visitor) error {
	return FromBytes([]byte(src), mode, v)
}

// ToString drives e and serializes the resulting value, the generic
// counterpart to toml.SerializeToString.
func ToString(drive func(Emitter)) (string, error) {
	val, err := Produce(drive)
	if err != nil {
		return "", err
	}
	root, ok := val.(*toml.Table)
	if !ok {
		return "", wrongType("", "top-level emitted value must be a table")
	}
	return toml.SerializeToString(root)
}
