package outline

import (
	"github.com/pdfweld/pdfweld/core"
)

// Trim filters a forest down to leaves targeting one of the given
// pages, preserving order and grouping. An empty page set trims the
// whole forest away.
//
// A kept leaf has its target rewritten to the matched page's canonical
// reference. A group is kept when its trimmed subtree is non-empty, and
// the sibling entry immediately preceding it (conventionally the
// group's section header) is retained with it unless a leaf was already
// kept at that scan position.
func Trim(forest Forest, pages []core.IndirectRef) Forest {
	var out Forest
	headerAdded := true
	for i, entry := range forest {
		switch e := entry.(type) {
		case Group:
			sub := Trim(Forest(e), pages)
			if len(sub) == 0 {
				continue
			}
			if !headerAdded && i > 0 {
				out = append(out, forest[i-1])
			}
			out = append(out, Group(sub))

		case *Leaf:
			headerAdded = false
			ref, ok := e.Target.Ref().(core.IndirectRef)
			if !ok {
				continue
			}
			for _, page := range pages {
				if ref == page {
					e.Target = RawTarget(page)
					out = append(out, e)
					headerAdded = true
					break
				}
			}
		}
	}
	return out
}
