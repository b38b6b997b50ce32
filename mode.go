// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package toml

// Mode controls parser behaviour via a set of flags, the same way
// syntax.ParseMode toggles the shell parser's behaviour.
type Mode uint

const (
	// Strict enables the "strict" feature from §6: array elements
	// must share a single dynamic type. It has no effect on the
	// binding package, which performs no integer narrowing of its own
	// and never sees the Mode after parsing.
	Strict Mode = 1 << iota

	// maxDepth bounds inline table/array nesting, per §9's design
	// note and §8 property 7. It is not a Mode bit: every parse is
	// subject to it, there is no legitimate reason to disable a stack
	// safety net.
)

// maxDepth is the nesting bound referenced by RecursionLimit errors.
const maxDepth = 128
