// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package toml

import "fmt"

// parser drives the lexer (C1+C2) and table builder (C4) over a
// source buffer, producing a root *Table (C5) or the first error
// encountered. Like syntax.parser, it holds all mutable state in one
// struct and never backtracks beyond the one-character lookahead the
// cursor provides.
type parser struct {
	*cursor

	mode Mode

	root *Table
	cur  *Table

	err error
}

func newParser(src []byte, mode Mode) *parser {
	root := NewTable()
	root.defined = true
	root.explicit = true
	return &parser{
		cursor: newCursor(src),
		mode:   mode,
		root:   root,
		cur:    root,
	}
}

// parse runs the parser to completion and returns the populated root
// table, or the first error encountered.
func (p *parser) parse() (*Table, error) {
	if hasUTF8BOM(p.src) {
		return nil, &ParseError{Position: Position{Line: 1, Column: 1}, Kind: UnexpectedChar, Text: "a leading UTF-8 BOM is not allowed"}
	}
	for {
		p.skipInlineSpace()
		if p.eof() {
			return p.root, nil
		}
		switch b := p.peek(0); {
		case b == '\n':
			p.advance(1)
			continue
		case b == '\r' && p.peek(1) == '\n':
			p.advance(2)
			continue
		case b == '\r':
			return nil, p.errAt(p.pos, InvalidString, "bare carriage return is not allowed")
		case b == '#':
			p.skipComment()
			continue
		case b == '[':
			p.parseHeader()
		default:
			p.parseAssignment()
		}
		if p.err != nil {
			return nil, p.err
		}
		if err := p.expectLineEnd(); err != nil {
			return nil, err
		}
	}
}

func hasUTF8BOM(src []byte) bool {
	return len(src) >= 3 && src[0] == 0xEF && src[1] == 0xBB && src[2] == 0xBF
}

// skipInlineSpace skips spaces and tabs only, never newlines.
func (p *parser) skipInlineSpace() {
	for p.peek(0) == ' ' || p.peek(0) == '\t' {
		p.advance(1)
	}
}

// skipComment consumes a '#' comment up to (but not including) the
// line terminator. Control characters other than tab are rejected.
func (p *parser) skipComment() {
	p.advance(1) // '#'
	for {
		b := p.peek(0)
		if b == 0 && p.eof() {
			return
		}
		if b == '\n' || b == '\r' {
			return
		}
		if (b < 0x20 && b != '\t') || b == 0x7f {
			p.err = p.errAt(p.pos, InvalidString, "control characters are not allowed in comments")
			return
		}
		p.advance(1)
	}
}

// expectLineEnd consumes trailing inline space and an optional
// comment, then requires a newline or EOF, consuming the newline.
func (p *parser) expectLineEnd() error {
	p.skipInlineSpace()
	if p.peek(0) == '#' {
		p.skipComment()
		if p.err != nil {
			return p.err
		}
	}
	switch {
	case p.eof():
		return nil
	case p.peek(0) == '\n':
		p.advance(1)
		return nil
	case p.peek(0) == '\r' && p.peek(1) == '\n':
		p.advance(2)
		return nil
	default:
		return p.errAt(p.pos, TrailingGarbage, "unexpected character after value")
	}
}

// parseKeyPath parses `key ( '.' key )*`, returning the decoded
// segments and the position of its first character.
func (p *parser) parseKeyPath() ([]string, Position, error) {
	startPos := p.position(p.pos)
	var path []string
	for {
		p.skipInlineSpace()
		key, err := p.lexKey()
		if err != nil {
			return nil, startPos, err
		}
		path = append(path, key)
		p.skipInlineSpace()
		if p.peek(0) == '.' {
			p.advance(1)
			continue
		}
		break
	}
	return path, startPos, nil
}

func (p *parser) parseAssignment() {
	path, pos, err := p.parseKeyPath()
	if err != nil {
		p.err = err
		return
	}
	p.skipInlineSpace()
	if p.peek(0) != '=' {
		p.err = p.errAt(p.pos, InvalidKey, "expected '=' after key")
		return
	}
	p.advance(1)
	p.skipInlineSpace()
	val, err := p.lexValue(0)
	if err != nil {
		p.err = err
		return
	}
	if err := p.assign(path, val, pos); err != nil {
		p.err = err
	}
}

func (p *parser) parseHeader() {
	pos := p.position(p.pos)
	aot := p.peek(1) == '['
	if aot {
		p.advance(2)
	} else {
		p.advance(1)
	}
	p.skipInlineSpace()
	path, _, err := p.parseKeyPath()
	if err != nil {
		p.err = err
		return
	}
	p.skipInlineSpace()
	if aot {
		if p.peek(0) != ']' || p.peek(1) != ']' {
			p.err = p.errAt(p.pos, UnexpectedChar, "expected ']]' to close array-of-tables header")
			return
		}
		p.advance(2)
		p.err = p.aotHeader(path, pos)
		return
	}
	if p.peek(0) != ']' {
		p.err = p.errAt(p.pos, UnexpectedChar, "expected ']' to close table header")
		return
	}
	p.advance(1)
	p.err = p.stdHeader(path, pos)
}

// errAt builds a *ParseError anchored at offset.
func (p *parser) errAt(offset int, kind ErrorKind, format string, args ...any) error {
	return &ParseError{Position: p.position(offset), Kind: kind, Text: fmt.Sprintf(format, args...)}
}
