// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package toml

// cursor tracks a byte offset into a source buffer, recording line
// start offsets as it advances so that a Position can be recovered
// lazily for any offset already visited — the same technique
// syntax.File.Lines/Position uses for shell source: only the minimum
// bookkeeping needed for error reporting is kept, and the expensive
// line/column computation happens once, on demand, rather than on
// every advance.
type cursor struct {
	src []byte
	pos int // next unread byte offset

	// lineStarts holds the byte offset of the first character of each
	// line seen so far; lineStarts[0] is always 0.
	lineStarts []int
}

func newCursor(src []byte) *cursor {
	return &cursor{src: src, lineStarts: []int{0}}
}

// peek returns the byte at pos+k without consuming it, or 0 if that
// position is past the end of the input.
func (c *cursor) peek(k int) byte {
	i := c.pos + k
	if i < 0 || i >= len(c.src) {
		return 0
	}
	return c.src[i]
}

// eof reports whether the cursor has consumed the whole buffer.
func (c *cursor) eof() bool { return c.pos >= len(c.src) }

// advance consumes n bytes, recording any newlines crossed. A CRLF
// pair advances the line counter exactly once; a bare CR is not
// treated specially here (lexer-level rules decide whether a bare CR
// is even legal at a given point).
func (c *cursor) advance(n int) {
	for i := 0; i < n && c.pos < len(c.src); i++ {
		b := c.src[c.pos]
		c.pos++
		switch b {
		case '\n':
			c.lineStarts = append(c.lineStarts, c.pos)
		case '\r':
			if c.peek(0) != '\n' {
				// Bare CR: still counts as a line break for position
				// tracking purposes, matching TOML's general
				// CR/LF-both-advance-the-line rule (§4.1). Whether a
				// bare CR is legal at all here is a lexer decision.
				c.lineStarts = append(c.lineStarts, c.pos)
			}
		}
	}
}

// position computes the 1-based line/column and 0-based byte offset
// for a byte offset already visited by advance. Columns count tabs as
// a single character, per §4.1.
func (c *cursor) position(offset int) Position {
	line := searchInts(c.lineStarts, offset)
	col := offset - c.lineStarts[line] + 1
	return Position{Offset: offset, Line: line + 1, Column: col}
}

// searchInts returns the index of the last element of a that is <=
// x, assuming a is sorted ascending. It is the same binary search
// syntax.File.Position uses to map a byte offset to a line number.
func searchInts(a []int, x int) int {
	i, j := 0, len(a)
	for i < j {
		h := i + (j-i)/2
		if a[h] <= x {
			i = h + 1
		} else {
			j = h
		}
	}
	if i == 0 {
		return 0
	}
	return i - 1
}
