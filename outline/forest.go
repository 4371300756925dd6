package outline

import (
	"github.com/pdfweld/pdfweld/core"
)

// EntryKind discriminates the two entry variants
type EntryKind int

const (
	KindLeaf EntryKind = iota
	KindGroup
)

// Entry is one node of a bookmark forest: either a *Leaf or a Group
type Entry interface {
	Kind() EntryKind
}

// Forest is an ordered sequence of entries at one nesting level. The
// top-level forest accumulated by a merge session is mutated by every
// merge call and read at write time; it is not safe for concurrent use.
type Forest []Entry

// Leaf is a bookmark pointing at a single page
type Leaf struct {
	Dest   Destination
	Target Target
}

func (l *Leaf) Kind() EntryKind { return KindLeaf }

// Group is a nested sibling sequence, one level below the entry that
// precedes it. Groups nest without bound.
type Group []Entry

func (g Group) Kind() EntryKind { return KindGroup }

// Target identifies the page a leaf points at. A target starts raw,
// holding a reference into the leaf's source document, and is rewritten
// to a stable page ID during association. Merge-point bookmarks are
// created already resolved, carrying the ID of the first admitted page.
type Target struct {
	ref      core.Object
	id       int
	resolved bool
}

// RawTarget returns a target holding a source-document page reference
func RawTarget(ref core.Object) Target {
	return Target{ref: ref}
}

// IDTarget returns a target already resolved to a stable page ID
func IDTarget(id int) Target {
	return Target{id: id, resolved: true}
}

// Resolved reports whether the target has been rewritten to a stable ID
func (t Target) Resolved() bool { return t.resolved }

// ID returns the stable page ID, if the target has been resolved
func (t Target) ID() (int, bool) {
	if !t.resolved {
		return 0, false
	}
	return t.id, true
}

// Ref returns the raw page reference, nil once the target is resolved
func (t Target) Ref() core.Object { return t.ref }
