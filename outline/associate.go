package outline

import (
	"github.com/pdfweld/pdfweld/core"
)

// AdmittedPage pairs a page's identity token with the stable session ID
// it was allocated on admission.
type AdmittedPage struct {
	Ref core.IndirectRef
	ID  int
}

// Associate rewrites every raw leaf target in the forest to a stable
// page ID by matching identity against the batch of pages just
// admitted. Leaves that already carry a resolved target are left
// untouched, so re-walking the accumulated forest after each merge only
// touches the entries that merge contributed.
//
// A raw leaf with no match in the batch is a fatal consistency
// violation: the trimmer already filtered the forest to the admitted
// range, so the error names the bookmark for diagnosis rather than
// dropping it.
func Associate(pages []AdmittedPage, forest Forest) error {
	for _, entry := range forest {
		switch e := entry.(type) {
		case Group:
			if err := Associate(pages, Forest(e)); err != nil {
				return err
			}

		case *Leaf:
			if e.Target.Resolved() {
				continue
			}
			if !associateLeaf(pages, e) {
				return &UnresolvedBookmarkError{Title: e.Dest.Title}
			}
		}
	}
	return nil
}

func associateLeaf(pages []AdmittedPage, leaf *Leaf) bool {
	ref, ok := leaf.Target.Ref().(core.IndirectRef)
	if !ok {
		return false
	}
	for _, page := range pages {
		if page.Ref == ref {
			leaf.Target = IDTarget(page.ID)
			return true
		}
	}
	return false
}
