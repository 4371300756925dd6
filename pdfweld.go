// Package pdfweld merges pages and bookmarks from multiple PDF
// documents into a single output document.
//
// A [Merger] is a stateful session: zero or more merge operations
// followed by exactly one write. Each merge admits a page range from a
// source document at a chosen position and folds the source's outline
// into the session, rewriting every bookmark to a stable page identity
// so that later insertions cannot invalidate it. Write resolves those
// identities back to final positions and rebuilds the outline on the
// output sink.
//
// Basic usage:
//
//	m := pdfweld.New(pdfweld.WithOpener(pdfcpudoc.Opener{}))
//	defer m.Close()
//
//	if err := m.AppendFile("report.pdf", pdfweld.WithBookmark("Report")); err != nil {
//	    // handle error
//	}
//	if err := m.AppendFile("appendix.pdf", pdfweld.WithPages(0, 3)); err != nil {
//	    // handle error
//	}
//	if err := m.Write(sink); err != nil {
//	    // handle error
//	}
//
// Parsing and serialization are not implemented here: sources and
// outputs are reached through the [Document], [Opener], and [Sink]
// capability interfaces, with backends such as the pdfcpudoc and
// memdoc packages supplying concrete implementations.
//
// A Merger is not safe for concurrent use.
package pdfweld

import (
	"github.com/pdfweld/pdfweld/core"
	"github.com/pdfweld/pdfweld/outline"
)

// Document is the reading capability a merge consumes. Page references
// are identity tokens: a page keeps its token for the lifetime of the
// document, and the merge pipeline uses token equality to match
// bookmark targets against pages.
//
// A Document that also implements io.Closer is closed by the session
// when the session itself opened it.
type Document interface {
	// PageCount returns the number of pages in the document
	PageCount() (int, error)

	// Page returns the identity token of the page at index (0-based)
	Page(index int) (core.IndirectRef, error)

	// Outlines returns the document's bookmark forest with raw page
	// targets, or an empty forest if the document has none
	Outlines() (outline.Forest, error)
}

// Opener opens a source document from a path. A Merger needs one only
// when sources are passed by path rather than as open Documents.
type Opener interface {
	Open(source string) (Document, error)
}

// Sink is the writing capability the terminal write drives. Pages are
// added in final sequence order, then outline entries are added with
// resolved positional indexes, then the sink is finalized exactly once.
type Sink interface {
	// AddPage appends the given source page to the output
	AddPage(doc Document, page core.IndirectRef) error

	outline.Sink

	// Finalize completes the output
	Finalize() error
}
