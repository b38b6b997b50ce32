// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package toml

// SerializeToString renders root as canonical TOML text.
//
// The output satisfies the round-trip property from §8: for any
// *Table produced by ParseBytes/ParseString, ParseBytes(
// []byte(SerializeToString(root)), mode) yields a value tree Equal to
// root.
func SerializeToString(root *Table) (string, error) {
	if root == nil {
		return "", nil
	}
	return serializeTable(root), nil
}
