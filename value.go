package nset

import (
	"strconv"
	"strings"
)

// Kind is the tag of a Value. The order of kinds is part of the canonical
// order of set elements.
type Kind uint8

const (
	IntegerKind Kind = iota
	TextKind
	SetKind
)

func (k Kind) String() string {
	switch k {
	case IntegerKind:
		return "integer"
	case TextKind:
		return "text"
	case SetKind:
		return "set"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is an element of a Set: an integer, a text, or a nested set.
// Values are immutable; the zero Value is the integer 0.
type Value struct {
	kind Kind
	num  int64
	text string
	set  *Set
}

// Int creates an integer element.
func Int(n int64) Value {
	return Value{kind: IntegerKind, num: n}
}

// Text creates a text element.
func Text(s string) Value {
	return Value{kind: TextKind, text: s}
}

// Nested creates a set-valued element referencing s. The set is shared, not
// copied, and it is frozen: any later attempt to modify s panics. A nil set is
// treated as the empty set.
func Nested(s *Set) Value {
	if s == nil {
		s = &Set{}
	}
	s.freeze()
	return Value{kind: SetKind, set: s}
}

// Kind returns the tag of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNumber is true for integer elements.
func (v Value) IsNumber() bool {
	return v.kind == IntegerKind
}

// IsText is true for text elements.
func (v Value) IsText() bool {
	return v.kind == TextKind
}

// IsSet is true for set-valued elements.
func (v Value) IsSet() bool {
	return v.kind == SetKind
}

// AsInt returns the payload of an integer element.
func (v Value) AsInt() (int64, bool) {
	return v.num, v.kind == IntegerKind
}

// AsText returns the payload of a text element.
func (v Value) AsText() (string, bool) {
	return v.text, v.kind == TextKind
}

// AsSet returns the (frozen) set referenced by a set-valued element.
func (v Value) AsSet() (*Set, bool) {
	if v.kind != SetKind {
		return nil, false
	}
	return v.set, true
}

// Equals compares two values structurally. Values of different kinds are never equal.
func (v Value) Equals(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case IntegerKind:
		return v.num == other.num
	case TextKind:
		return v.text == other.text
	case SetKind:
		return v.set.Equals(other.set)
	}
	assertThat(false, "illegal value kind %d", v.kind)
	return false
}

// String renders v in set notation: integers in decimal, texts enclosed in
// double quotes (without escaping), nested sets as by Set.String.
func (v Value) String() string {
	var b strings.Builder
	v.render(&b)
	return b.String()
}

func (v Value) render(b *strings.Builder) {
	switch v.kind {
	case IntegerKind:
		b.WriteString(strconv.FormatInt(v.num, 10))
	case TextKind:
		b.WriteByte('"')
		b.WriteString(v.text)
		b.WriteByte('"')
	case SetKind:
		b.WriteString(v.set.String())
	default:
		assertThat(false, "illegal value kind %d", v.kind)
	}
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher for dispatching on the kind of v:
//
//     var n int64
//     var s *nset.Set
//     switch m := v.Match(); m {
//     case m.Int(&n):
//         …
//     case m.Set(&s):
//         …
//     }
//
func (v Value) Match() Matcher {
	return &matcher{v: v}
}

// Matcher selects a case in a switch over the kinds of a Value. Every method
// returns the matcher itself if the value is of the requested kind, and nil
// otherwise. On a match the payload is stored in the argument, if non-nil.
type Matcher interface {
	Int(*int64) Matcher
	Text(*string) Matcher
	Set(**Set) Matcher
}

type matcher struct {
	v Value
}

func (m *matcher) Int(n *int64) Matcher {
	if m.v.kind != IntegerKind {
		return nil
	}
	if n != nil {
		*n = m.v.num
	}
	return m
}

func (m *matcher) Text(s *string) Matcher {
	if m.v.kind != TextKind {
		return nil
	}
	if s != nil {
		*s = m.v.text
	}
	return m
}

func (m *matcher) Set(s **Set) Matcher {
	if m.v.kind != SetKind {
		return nil
	}
	if s != nil {
		*s = m.v.set
	}
	return m
}
