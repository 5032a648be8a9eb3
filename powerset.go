package nset

import "sort"

// PowerSet returns the set of all subsets of a, including the empty set and a
// itself. Every subset is a nested set; elements of a are shared, not copied.
//
// The result holds 2^n elements for n = a.Size(), so this is practical for
// small sets only.
func PowerSet(a *Set) *Set {
	elems := a.values()
	var subsets []Value
	if len(elems) < 20 {
		subsets = make([]Value, 0, 1<<uint(len(elems)))
	}
	mask := newBitmask(len(elems))
	for {
		// picking from a canonical sequence keeps the subset canonical
		subsets = append(subsets, Nested(&Set{elems: mask.pick(elems)}))
		if !mask.inc() {
			break
		}
	}
	tracer().Debugf("power set of %d elements has %d subsets", len(elems), len(subsets))
	sort.Slice(subsets, func(i, j int) bool {
		return Compare(subsets[i], subsets[j]) < 0
	})
	return &Set{elems: subsets}
}

// PowerSet returns the set of all subsets of s.
func (s *Set) PowerSet() *Set {
	return PowerSet(s)
}

// --- Bitmask ---------------------------------------------------------------

// bitmask is a counter of arbitrary bit width, selecting a subset of n elements.
type bitmask struct {
	words []uint64
	n     int
}

func newBitmask(n int) *bitmask {
	return &bitmask{words: make([]uint64, (n+63)/64), n: n}
}

func (m *bitmask) isSet(i int) bool {
	return m.words[i/64]&(1<<uint(i%64)) != 0
}

// inc advances m to the next subset. It returns false when the counter wraps
// around to the empty subset.
func (m *bitmask) inc() bool {
	for i := 0; i < m.n; i++ {
		w, bit := i/64, uint64(1)<<uint(i%64)
		if m.words[w]&bit == 0 {
			m.words[w] |= bit
			return true
		}
		m.words[w] &^= bit // carry
	}
	return false
}

// pick selects the elements of elems at the positions of m's bits.
func (m *bitmask) pick(elems []Value) []Value {
	var sub []Value
	for i := range elems {
		if m.isSet(i) {
			sub = append(sub, elems[i])
		}
	}
	return sub
}
