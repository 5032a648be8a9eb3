/*
Package nset implements nested sets: mathematical sets whose elements are integers,
texts, or other sets.

Sets are kept in a canonical order at all times. Integers sort before texts, texts
sort before nested sets; integers are ordered numerically, texts lexicographically,
and nested sets by their rendered text. Two sets holding the same elements therefore
have identical storage, regardless of the order in which the elements were inserted,
and render to identical text.

The textual form of a set is

    {}
    {1, 2, 3}
    {-7, "a", {1, {}}}

Parse reads this notation, Set.String writes it, and

    nset.MustParse(s.String()).Equals(s)

holds for every set s whose texts contain no double quotes (the notation has no
escape sequences).

Sharing

Nested sets are shared, not copied. Wrapping a set with Nested freezes it: from
then on it may be embedded in any number of parents, but modifying it panics.
Use Copy to obtain a modifiable set with the same elements. Freezing also makes it
impossible for a set to contain itself, directly or transitively.

Sets are not safe for concurrent modification.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package nset

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nset'.
func tracer() tracing.Trace {
	return tracing.Select("nset")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("nset: "+msg, msgargs...)
		panic(msg)
	}
}
