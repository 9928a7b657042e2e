// Package parser turns Aocla source text into a value.Value tree
// (SPEC_FULL.md §6). It is a single recursive-descent pass: Aocla's
// literal syntax needs no separate tokenization stage, so — unlike the
// teacher's lexer+parser+pipeline split — lexing and parsing are folded
// into one package here (see DESIGN.md).
package parser

import (
	"fmt"
	"strconv"

	"github.com/aocla-lang/aocla/internal/value"
)

// Error is a structured parse diagnostic: a message plus a bounded prefix
// of the input that remained when parsing failed (SPEC_FULL.md §6).
type Error struct {
	Msg       string
	Remaining []byte
	Line      int
}

const errPrefixLen = 30

func (e *Error) Error() string {
	rem := e.Remaining
	suffix := ""
	if len(rem) > errPrefixLen {
		rem = rem[:errPrefixLen]
		suffix = "..."
	}
	return fmt.Sprintf("%s: %s%s", e.Msg, rem, suffix)
}

type parser struct {
	src  []byte
	pos  int
	line int
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isSymbolChar implements the symbol character class from SPEC_FULL.md §6:
// letters plus @ $ + - * / = ? % > < _ '
func isSymbolChar(c byte) bool {
	if isAlpha(c) {
		return true
	}
	switch c {
	case '@', '$', '+', '-', '*', '/', '=', '?', '%', '>', '<', '_', '\'':
		return true
	default:
		return false
	}
}

func (p *parser) atEnd() bool { return p.pos >= len(p.src) }
func (p *parser) peek() byte  { return p.src[p.pos] }
func (p *parser) peekAt(n int) byte {
	if p.pos+n >= len(p.src) {
		return 0
	}
	return p.src[p.pos+n]
}

func (p *parser) advance() byte {
	c := p.src[p.pos]
	p.pos++
	if c == '\n' {
		p.line++
	}
	return c
}

// skipSpaceAndComments consumes whitespace and "//" line comments,
// repeating until neither is present (SPEC_FULL.md §6).
func (p *parser) skipSpaceAndComments() {
	for {
		advanced := false
		for !p.atEnd() && isSpace(p.peek()) {
			p.advance()
			advanced = true
		}
		if !p.atEnd() && p.peek() == '/' && p.peekAt(1) == '/' {
			for !p.atEnd() && p.peek() != '\n' {
				p.advance()
			}
			if !p.atEnd() {
				p.advance() // consume the newline itself
			}
			advanced = true
		}
		if !advanced {
			return
		}
	}
}

func (p *parser) errorf(msg string) *Error {
	return &Error{Msg: msg, Remaining: p.src[p.pos:], Line: p.line}
}

// parseOne parses exactly one value starting at the current position,
// which must already be past whitespace/comments.
func (p *parser) parseOne() (*value.Value, error) {
	startLine := p.line
	if p.atEnd() {
		return nil, p.errorf("No object type starts like this")
	}
	c := p.peek()

	switch {
	case c == '\'' && p.peekAt(1) == '(':
		p.advance()
		return p.parseContainer(value.Tuple, true, startLine)
	case c == '(':
		return p.parseContainer(value.Tuple, false, startLine)
	case c == '[':
		return p.parseContainer(value.List, false, startLine)
	case c == '#' && p.peekAt(1) == 't':
		p.advance()
		p.advance()
		v := value.NewBool(true)
		v.Line = startLine
		return v, nil
	case c == '#' && p.peekAt(1) == 'f':
		p.advance()
		p.advance()
		v := value.NewBool(false)
		v.Line = startLine
		return v, nil
	case c == '"':
		return p.parseString(startLine)
	case c == '-' && isDigit(p.peekAt(1)), isDigit(c):
		return p.parseInt(startLine)
	case isSymbolChar(c):
		return p.parseSymbol(startLine)
	default:
		return nil, p.errorf("No object type starts like this")
	}
}

func (p *parser) parseInt(startLine int) (*value.Value, error) {
	buf := make([]byte, 0, 63)
	for !p.atEnd() && len(buf) < 63 && (p.peek() == '-' || isDigit(p.peek())) {
		buf = append(buf, p.advance())
	}
	n, err := strconv.ParseInt(string(buf), 10, 64)
	if err != nil {
		return nil, &Error{Msg: "Invalid integer literal", Remaining: buf, Line: startLine}
	}
	v := value.NewInt(n)
	v.Line = startLine
	return v, nil
}

func (p *parser) parseSymbol(startLine int) (*value.Value, error) {
	start := p.pos
	for !p.atEnd() && isSymbolChar(p.peek()) {
		p.advance()
	}
	raw := p.src[start:p.pos]
	quoted := raw[0] == '\''
	name := raw
	if quoted {
		name = raw[1:]
	}
	v := value.NewSymbol(name, quoted)
	v.Line = startLine
	return v, nil
}

func (p *parser) parseString(startLine int) (*value.Value, error) {
	p.advance() // opening quote
	var buf []byte
	for {
		if p.atEnd() {
			return nil, p.errorf("Quotation marks never closed in string")
		}
		c := p.advance()
		if c == '"' {
			v := value.NewString(buf)
			v.Line = startLine
			return v, nil
		}
		if c == '\\' {
			if p.atEnd() {
				return nil, p.errorf("Quotation marks never closed in string")
			}
			esc := p.advance()
			switch esc {
			case 'n':
				buf = append(buf, '\n')
			case 'r':
				buf = append(buf, '\r')
			case 't':
				buf = append(buf, '\t')
			default:
				buf = append(buf, esc)
			}
			continue
		}
		buf = append(buf, c)
	}
}

// parseContainer parses a List or (quoted) Tuple body. When quoted, the
// leading ' of "'(" has already been consumed by the caller; the opening
// bracket itself is always consumed here.
func (p *parser) parseContainer(t value.Type, quoted bool, startLine int) (*value.Value, error) {
	var closer byte
	if t == value.List {
		closer = ']'
	} else {
		closer = ')'
	}
	p.advance() // opening bracket

	var v *value.Value
	if t == value.List {
		v = value.NewList(0)
	} else {
		v = value.NewTuple(0, quoted)
	}
	v.Line = startLine

	for {
		p.skipSpaceAndComments()
		if p.atEnd() {
			value.Release(v)
			kind := "List"
			if t == value.Tuple {
				kind = "Tuple"
			}
			return nil, p.errorf(kind + " never closed")
		}
		if p.peek() == closer {
			p.advance()
			return v, nil
		}
		elem, err := p.parseOne()
		if err != nil {
			value.Release(v)
			return nil, err
		}
		if t == value.Tuple && (elem.Type != value.Symbol || elem.Len() != 1) {
			value.Release(elem)
			value.Release(v)
			return nil, p.errorf("Tuples can only contain single character symbols")
		}
		v.Append(elem)
	}
}

// ParseObject parses exactly one value from src, returning the unconsumed
// remainder. Leading whitespace/comments before the value are skipped.
func ParseObject(src []byte) (*value.Value, []byte, error) {
	p := &parser{src: src, line: 1}
	p.skipSpaceAndComments()
	v, err := p.parseOne()
	if err != nil {
		return nil, nil, err
	}
	return v, p.src[p.pos:], nil
}

// ParseProgram parses the entirety of src as if it were wrapped in a
// single enclosing List (SPEC_FULL.md §6 File format / REPL line wrapping):
// it reads values until input is exhausted and collects them into a List.
func ParseProgram(src []byte) (*value.Value, error) {
	p := &parser{src: src, line: 1}
	list := value.NewList(0)
	for {
		p.skipSpaceAndComments()
		if p.atEnd() {
			return list, nil
		}
		elem, err := p.parseOne()
		if err != nil {
			value.Release(list)
			return nil, err
		}
		list.Append(elem)
	}
}
