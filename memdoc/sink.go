package memdoc

import (
	"github.com/pdfweld/pdfweld"
	"github.com/pdfweld/pdfweld/core"
	"github.com/pdfweld/pdfweld/outline"
)

// Sink records everything a write sends to it. Outline node handles are
// indexes into Entries, so parent/child nesting can be asserted
// directly.
type Sink struct {
	Pages     []PageWrite
	Entries   []OutlineWrite
	Finalized bool
}

// PageWrite records one added page
type PageWrite struct {
	Doc pdfweld.Document
	Ref core.IndirectRef
}

// OutlineWrite records one added outline entry
type OutlineWrite struct {
	Title     string
	Fit       core.Name
	PageIndex int
	Parent    int // index into Entries, -1 for top level
}

// AddPage implements pdfweld.Sink
func (s *Sink) AddPage(doc pdfweld.Document, page core.IndirectRef) error {
	s.Pages = append(s.Pages, PageWrite{Doc: doc, Ref: page})
	return nil
}

// AddOutline implements outline.Sink
func (s *Sink) AddOutline(dest outline.Destination, pageIndex int, parent outline.Node) (outline.Node, error) {
	p := -1
	if parent != nil {
		p = parent.(int)
	}
	s.Entries = append(s.Entries, OutlineWrite{
		Title:     dest.Title,
		Fit:       dest.Fit,
		PageIndex: pageIndex,
		Parent:    p,
	})
	return len(s.Entries) - 1, nil
}

// Finalize implements pdfweld.Sink
func (s *Sink) Finalize() error {
	s.Finalized = true
	return nil
}
