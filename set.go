package nset

import (
	"io"
	"sort"
	"strings"
)

// Set is an ordered collection of unique values. An empty instance is usable as
// an empty set, i.e. this is legal:
//
//     var s nset.Set
//     s.Insert(nset.Int(42))
//
// Elements are stored in canonical order (see Compare), and no two elements are
// structurally equal. Every modification re-establishes both properties.
type Set struct {
	elems    []Value // canonical order, no duplicates
	frozen   bool    // set is referenced by a Value and must not change
	rendered bool    // canon is valid; only used for frozen sets
	canon    string
}

// New creates a set from a list of values. Duplicates are dropped.
func New(values ...Value) *Set {
	s := &Set{}
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

// Copy returns a modifiable set with the same elements as s. Nested sets are
// shared between s and the copy.
func (s *Set) Copy() *Set {
	elems := s.values()
	cp := &Set{elems: make([]Value, len(elems))}
	copy(cp.elems, elems)
	return cp
}

// values returns the element slice; nil receivers behave like the empty set.
func (s *Set) values() []Value {
	if s == nil {
		return nil
	}
	return s.elems
}

func (s *Set) freeze() {
	s.frozen = true
}

// IsFrozen is true if s is referenced by a set-valued element and may no longer
// be modified.
func (s *Set) IsFrozen() bool {
	return s != nil && s.frozen
}

func (s *Set) assertMutable(op string) {
	assertThat(s != nil, "attempt to %s on nil set", op)
	if s.frozen {
		tracer().Infof("%s on frozen set %s rejected", op, s)
	}
	assertThat(!s.frozen, "attempt to %s on frozen set; use Copy()", op)
}

// --- API -------------------------------------------------------------------

// Size returns the number of elements in s.
func (s *Set) Size() int {
	return len(s.values())
}

// IsEmpty is true for sets without elements.
func (s *Set) IsEmpty() bool {
	return s.Size() == 0
}

// Insert adds v to s, unless an equal element is already present.
// It returns true if s changed. Insert panics if s is frozen.
func (s *Set) Insert(v Value) bool {
	s.assertMutable("insert")
	i, found := s.search(v)
	if found {
		return false
	}
	s.elems = append(s.elems, Value{})
	copy(s.elems[i+1:], s.elems[i:])
	s.elems[i] = v
	return true
}

// Remove deletes the element equal to v, if present, and returns true if s changed.
// Remove panics if s is frozen.
func (s *Set) Remove(v Value) bool {
	s.assertMutable("remove")
	i, found := s.search(v)
	if !found {
		return false
	}
	s.elems = append(s.elems[:i], s.elems[i+1:]...)
	return true
}

// Contains is true if s holds an element structurally equal to v.
func (s *Set) Contains(v Value) bool {
	_, found := s.search(v)
	return found
}

// search finds the position of v in canonical order. If v is not present, the
// position is the slot where v would have to be inserted.
func (s *Set) search(v Value) (int, bool) {
	elems := s.values()
	i := sort.Search(len(elems), func(i int) bool {
		return Compare(elems[i], v) >= 0 // smallest i with elems[i] ≥ v
	})
	return i, i < len(elems) && elems[i].Equals(v)
}

// Equals is true if s and other hold structurally equal elements.
func (s *Set) Equals(other *Set) bool {
	if s == other {
		return true
	}
	a, b := s.values(), other.values()
	if len(a) != len(b) {
		return false
	}
	for i := range a { // both are in canonical order
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}

// At returns the i-th element in canonical order.
func (s *Set) At(i int) Value {
	elems := s.values()
	assertThat(i >= 0 && i < len(elems), "set index out of bounds: %d with size %d", i, len(elems))
	return elems[i]
}

// Values returns the elements of s in canonical order.
func (s *Set) Values() []Value {
	elems := s.values()
	vals := make([]Value, len(elems))
	copy(vals, elems)
	return vals
}

// Each calls f for every element of s in canonical order, until f returns false.
func (s *Set) Each(f func(Value) bool) {
	for _, v := range s.values() {
		if !f(v) {
			return
		}
	}
}

// Walk visits s and, depth first, every set nested within s. f is called with
// the set and its nesting level, starting at 1 for s itself. If f returns false,
// the sets nested in the current one are skipped.
func (s *Set) Walk(f func(set *Set, level int) bool) {
	s.walk(f, 1)
}

func (s *Set) walk(f func(*Set, int) bool, level int) {
	if !f(s, level) {
		return
	}
	for _, v := range s.values() {
		if v.kind == SetKind {
			v.set.walk(f, level+1)
		}
	}
}

// Depth returns the nesting depth of s. The empty set has depth 1,
// {{}} has depth 2.
func (s *Set) Depth() int {
	depth := 0
	s.Walk(func(_ *Set, level int) bool {
		if level > depth {
			depth = level
		}
		return true
	})
	return depth
}

// --- Rendering -------------------------------------------------------------

// String renders s in set notation, with elements in canonical order separated
// by ", ". The empty set is rendered as "{}".
func (s *Set) String() string {
	if s == nil {
		return "{}"
	}
	if s.frozen && s.rendered {
		return s.canon
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range s.elems {
		if i > 0 {
			b.WriteString(", ")
		}
		v.render(&b)
	}
	b.WriteByte('}')
	if s.frozen {
		s.canon, s.rendered = b.String(), true
		return s.canon
	}
	return b.String()
}

// WriteTo writes the rendered form of s to w.
func (s *Set) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

// MarshalText implements encoding.TextMarshaler.
func (s *Set) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It replaces the elements
// of s with the set parsed from text.
func (s *Set) UnmarshalText(text []byte) error {
	s.assertMutable("unmarshal")
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	s.elems = parsed.elems
	return nil
}
