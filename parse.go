package nset

import (
	"strconv"
	"strings"
)

/*
Grammar:

    Set     := '{' WS? (Elem (WS? ',' WS? Elem)*)? WS? '}'
    Elem    := Set | String | Number
    String  := '"' char* '"'
    Number  := '-'? digit+
    WS      := (space | tab | CR | LF)+

Whitespace around the outermost braces is ignored as well.
*/

// Option is a type to configure parsing.
type Option func(parserConfig) parserConfig

type parserConfig struct {
	maxDepth int // 0 = unlimited
}

// MaxDepth is an option to limit the nesting depth of parsed sets, where {} has
// depth 1. Deeper input fails with DepthExceeded. The default is no limit.
//
//     s, err := nset.Parse(text, nset.MaxDepth(32))
//
func MaxDepth(n int) Option {
	return func(conf parserConfig) parserConfig {
		if n < 0 {
			n = 0
		}
		conf.maxDepth = n
		return conf
	}
}

// Parse reads a set in set notation. The whole input (apart from surrounding
// whitespace) must be a single set. Elements are inserted as by Set.Insert,
// so duplicates collapse and input order is not retained.
//
// Parse stops at the first error, which will be of type *ParseError.
func Parse(text string, opts ...Option) (*Set, error) {
	var conf parserConfig
	for _, option := range opts {
		conf = option(conf)
	}
	start, end := trimSpace(text)
	if start == end || text[start] != '{' || text[end-1] != '}' {
		tracer().Debugf("parse: input not enclosed in braces: %q", text)
		return nil, newParseError(MalformedInput, start, "set must start with '{' and end with '}'")
	}
	p := &parser{input: text[:end], pos: start, conf: conf}
	s, err := p.parseSet()
	if err != nil {
		tracer().Debugf("parse: %v", err)
		return nil, err
	}
	p.skipSpace()
	if !p.atEnd() {
		return nil, newParseError(TrailingInput, p.pos, "unexpected trailing characters after '}'")
	}
	return s, nil
}

// MustParse is like Parse but panics if text cannot be parsed. It simplifies
// initialization of sets from literals.
func MustParse(text string) *Set {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}

// --- Parser ----------------------------------------------------------------

// parser is a recursive-descent parser. pos is the cursor into input and is
// advanced by every parse step.
type parser struct {
	input string
	pos   int
	depth int
	conf  parserConfig
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func trimSpace(text string) (start, end int) {
	start, end = 0, len(text)
	for start < end && isSpace(text[start]) {
		start++
	}
	for end > start && isSpace(text[end-1]) {
		end--
	}
	return
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.input)
}

func (p *parser) skipSpace() {
	for !p.atEnd() && isSpace(p.input[p.pos]) {
		p.pos++
	}
}

func (p *parser) eat(c byte) bool {
	if !p.atEnd() && p.input[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

// found describes the character at the cursor for error messages.
func (p *parser) found() string {
	if p.atEnd() {
		return "end of input"
	}
	return strconv.QuoteRune(rune(p.input[p.pos]))
}

// parseSet parses a group of elements. The cursor has to be positioned on '{'.
func (p *parser) parseSet() (*Set, error) {
	open := p.pos
	if !p.eat('{') {
		return nil, newParseError(UnexpectedCharacter, p.pos, "expected '{', found %s", p.found())
	}
	p.depth++
	defer func() { p.depth-- }()
	if p.conf.maxDepth > 0 && p.depth > p.conf.maxDepth {
		return nil, newParseError(DepthExceeded, open, "set nested deeper than %d levels", p.conf.maxDepth)
	}
	tracer().Debugf("parse: group at offset %d, depth %d", open, p.depth)
	s := &Set{}
	p.skipSpace()
	if p.eat('}') {
		return s, nil
	}
	for {
		v, err := p.parseElem()
		if err != nil {
			return nil, err
		}
		s.Insert(v)
		p.skipSpace()
		if p.eat('}') {
			return s, nil
		}
		if !p.eat(',') {
			return nil, newParseError(UnexpectedCharacter, p.pos, "expected ',' or '}', found %s", p.found())
		}
	}
}

func (p *parser) parseElem() (Value, error) {
	p.skipSpace()
	if p.atEnd() {
		return Value{}, newParseError(InvalidToken, p.pos, "expected number, string, or set, found end of input")
	}
	switch p.input[p.pos] {
	case '{':
		s, err := p.parseSet()
		if err != nil {
			return Value{}, err
		}
		return Nested(s), nil
	case '"':
		return p.parseText()
	}
	return p.parseNumber()
}

func (p *parser) parseText() (Value, error) {
	open := p.pos
	p.pos++ // skip opening quote
	n := strings.IndexByte(p.input[p.pos:], '"')
	if n < 0 {
		p.pos = len(p.input)
		return Value{}, newParseError(UnterminatedString, open, "missing closing '\"'")
	}
	text := p.input[p.pos : p.pos+n]
	p.pos += n + 1
	return Text(text), nil
}

func (p *parser) parseNumber() (Value, error) {
	start := p.pos
	p.eat('-')
	digits := p.pos
	for !p.atEnd() && isDigit(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == digits {
		p.pos = start
		return Value{}, newParseError(InvalidToken, start, "expected number, string, or set, found %s", p.found())
	}
	n, err := strconv.ParseInt(p.input[start:p.pos], 10, 64)
	if err != nil {
		return Value{}, newParseError(InvalidToken, start, "integer %s out of range", p.input[start:p.pos])
	}
	return Int(n), nil
}
