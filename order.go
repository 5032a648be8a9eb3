package nset

import "strings"

// Compare defines the canonical order of set elements. It returns -1, 0 or +1
// depending on whether a sorts before, equal to, or after b:
//
//   - integers < texts < nested sets
//   - integers are ordered numerically
//   - texts are ordered lexicographically (byte-wise)
//   - nested sets are ordered by their rendered text
//
// Rendered texts of different sets coincide only if texts contain double quotes:
// a set holding the single text `a", "b` renders exactly like {"a", "b"}. Such
// ties are broken by comparing the elements of both sets pairwise, so
// Compare(a, b) == 0 if and only if a.Equals(b).
func Compare(a, b Value) int {
	if a.kind != b.kind {
		return cmpInt(int64(a.kind), int64(b.kind))
	}
	switch a.kind {
	case IntegerKind:
		return cmpInt(a.num, b.num)
	case TextKind:
		return strings.Compare(a.text, b.text)
	case SetKind:
		return compareSets(a.set, b.set)
	}
	assertThat(false, "illegal value kind %d", a.kind)
	return 0
}

func compareSets(a, b *Set) int {
	if a == b {
		return 0
	}
	if c := strings.Compare(a.String(), b.String()); c != 0 {
		return c
	}
	ae, be := a.values(), b.values()
	for i := 0; i < len(ae) && i < len(be); i++ {
		if c := Compare(ae[i], be[i]); c != 0 {
			return c
		}
	}
	return cmpInt(int64(len(ae)), int64(len(be)))
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	}
	return 0
}
