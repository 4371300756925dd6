// Package outline implements bookmark forests and the merge pipeline
// that relocates them across documents.
//
// A bookmark forest is an ordered sequence of entries: a [Leaf] points
// at a page, a [Group] nests a sibling sequence one level deeper. The
// package converts raw PDF outline trees into forests and carries them
// through three phases:
//
//  1. [Trim] keeps only leaves targeting a selected page set,
//     preserving grouping and section headers.
//  2. [Associate] rewrites each kept leaf's raw page reference to a
//     stable page ID issued when the page was admitted to the merge.
//  3. [Emit] resolves each stable ID back to the page's current
//     position and rebuilds the forest on an output sink.
//
// # Targets
//
// A leaf's [Target] decouples the logical page from its physical
// position. It starts as a raw reference into the source document,
// becomes a stable ID at association, and is only resolved to a
// positional index at emission. Because position is resolved last,
// inserting documents ahead of already-merged ones never invalidates
// existing bookmarks.
//
// # Reading
//
//	forest, err := outline.Read(catalog, resolver)
//
// [Read] flattens the catalog's named destinations ([FlattenNameTree])
// and walks the outline tree's First/Next chains, converting each node
// into a [Destination] via its GoTo action or direct /Dest value.
//
// # Errors
//
// [UnresolvedBookmarkError] (association) and
// [UnexpectedDestinationError] (reading) are fatal and name the
// offending bookmark or value. Emission-time lookup misses are not
// errors: stale leaves are skipped and their children re-parented to
// the nearest surviving ancestor.
package outline
