/*
Package setdbg implements helpers to debug nested sets.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package setdbg

import (
	"fmt"
	"strings"

	"github.com/npillmayer/nset"
	tp "github.com/xlab/treeprint"
)

// Tree outputs the structure of a set as an indented tree. Atoms are leaves,
// every nested set opens a branch:
//
//     Set(size=2, depth=2)
//     .
//     ├── 1
//     └── {2}
//         └── 2
//
func Tree(s *nset.Set) string {
	header := fmt.Sprintf("Set(size=%d, depth=%d)\n", s.Size(), s.Depth())
	printer := tp.New()
	addElements(printer, s)
	return header + printer.String()
}

func addElements(branch tp.Tree, s *nset.Set) {
	s.Each(func(v nset.Value) bool {
		var nested *nset.Set
		switch m := v.Match(); m {
		case m.Set(&nested):
			addElements(branch.AddBranch(nested.String()), nested)
		default:
			branch.AddNode(v.String())
		}
		return true
	})
}

// Outline lists a set and all sets nested within it, one per line, indented by
// nesting level. Sets shared between several parents are listed once per parent.
func Outline(s *nset.Set) string {
	var b strings.Builder
	s.Walk(func(set *nset.Set, level int) bool {
		b.WriteString(strings.Repeat("  ", level-1))
		b.WriteString(set.String())
		b.WriteByte('\n')
		return true
	})
	return b.String()
}
