package nset

/*
All operations merge the canonical element sequences of their operands, which
are sorted by Compare. Results are therefore canonical without re-sorting.
*/

// Union returns a new set holding the elements of a and b.
func Union(a, b *Set) *Set {
	ae, be := a.values(), b.values()
	out := make([]Value, 0, len(ae)+len(be))
	i, j := 0, 0
	for i < len(ae) && j < len(be) {
		switch c := Compare(ae[i], be[j]); {
		case c < 0:
			out = append(out, ae[i])
			i++
		case c > 0:
			out = append(out, be[j])
			j++
		default:
			out = append(out, ae[i])
			i++
			j++
		}
	}
	out = append(out, ae[i:]...)
	out = append(out, be[j:]...)
	return &Set{elems: out}
}

// Intersection returns a new set holding the elements of a which are also
// contained in b.
func Intersection(a, b *Set) *Set {
	ae, be := a.values(), b.values()
	var out []Value
	i, j := 0, 0
	for i < len(ae) && j < len(be) {
		switch c := Compare(ae[i], be[j]); {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			out = append(out, ae[i])
			i++
			j++
		}
	}
	return &Set{elems: out}
}

// Difference returns a new set holding the elements of a which are not
// contained in b.
func Difference(a, b *Set) *Set {
	ae, be := a.values(), b.values()
	var out []Value
	i, j := 0, 0
	for i < len(ae) && j < len(be) {
		switch c := Compare(ae[i], be[j]); {
		case c < 0:
			out = append(out, ae[i])
			i++
		case c > 0:
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, ae[i:]...)
	return &Set{elems: out}
}

// SubsetOf is true if every element of a is contained in b. The empty set is a
// subset of every set.
func SubsetOf(a, b *Set) bool {
	ae, be := a.values(), b.values()
	if len(ae) > len(be) {
		return false
	}
	j := 0
	for _, v := range ae {
		for j < len(be) && Compare(be[j], v) < 0 {
			j++
		}
		if j == len(be) || !be[j].Equals(v) {
			return false
		}
		j++
	}
	return true
}

// --- Methods ---------------------------------------------------------------

// Union returns a new set holding the elements of s and other.
func (s *Set) Union(other *Set) *Set {
	return Union(s, other)
}

// Intersection returns a new set holding the elements common to s and other.
func (s *Set) Intersection(other *Set) *Set {
	return Intersection(s, other)
}

// Difference returns a new set holding the elements of s not contained in other.
func (s *Set) Difference(other *Set) *Set {
	return Difference(s, other)
}

// SubsetOf is true if every element of s is contained in other.
func (s *Set) SubsetOf(other *Set) bool {
	return SubsetOf(s, other)
}

// UnionWith adds the elements of other to s and returns s.
// It panics if s is frozen.
func (s *Set) UnionWith(other *Set) *Set {
	s.assertMutable("union")
	s.elems = Union(s, other).elems
	return s
}

// IntersectWith removes the elements from s which are not contained in other,
// and returns s. It panics if s is frozen.
func (s *Set) IntersectWith(other *Set) *Set {
	s.assertMutable("intersect")
	s.elems = Intersection(s, other).elems
	return s
}

// DifferenceWith removes the elements of other from s and returns s.
// It panics if s is frozen.
func (s *Set) DifferenceWith(other *Set) *Set {
	s.assertMutable("subtract")
	s.elems = Difference(s, other).elems
	return s
}
