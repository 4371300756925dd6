package pdfweld

import (
	"fmt"
	"io"

	"github.com/pdfweld/pdfweld/core"
	"github.com/pdfweld/pdfweld/outline"
)

// MergedPage tracks one page admitted into the merge: its source
// document, its identity token within that document, and the stable
// session-wide ID it was allocated on admission. The ID never changes,
// no matter where later merges insert pages.
type MergedPage struct {
	Doc Document
	Ref core.IndirectRef
	ID  int
}

// Merger accumulates pages and bookmarks from source documents and
// writes them out once. See the package documentation for the session
// contract.
type Merger struct {
	opener Opener
	pages  []*MergedPage
	forest outline.Forest
	nextID int
	opened []io.Closer
}

// New creates an empty merge session
func New(opts ...Option) *Merger {
	m := &Merger{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// allocate issues the next stable page ID. IDs are strictly increasing
// for the life of the session and are never reused or recycled, even
// when the owning page is later excluded.
func (m *Merger) allocate() int {
	id := m.nextID
	m.nextID++
	return id
}

// PageCount returns the number of pages currently in the sequence
func (m *Merger) PageCount() int {
	return len(m.pages)
}

// Outlines returns the bookmark forest accumulated so far. The forest
// is the session's working state; callers must treat it as read-only.
func (m *Merger) Outlines() outline.Forest {
	return m.forest
}

// Merge admits pages from doc into the sequence at the given position.
// The page range defaults to the whole document; see WithPages,
// WithBookmark, and WithoutOutline.
//
// Invalid positions and page ranges are rejected before any state is
// mutated. An association failure (unresolved bookmark) is fatal and
// non-atomic: entries this call already added to the session remain in
// place, matching the long-standing behavior of merge tools built on
// this pipeline.
func (m *Merger) Merge(position int, doc Document, opts ...MergeOption) error {
	o := defaultMergeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return m.merge(position, doc, o)
}

// Append admits pages from doc at the end of the sequence
func (m *Merger) Append(doc Document, opts ...MergeOption) error {
	return m.Merge(len(m.pages), doc, opts...)
}

// MergeFile opens the document at path with the session's opener and
// merges it at the given position. The document stays open until Close:
// sinks may read page content lazily at write time.
func (m *Merger) MergeFile(position int, path string, opts ...MergeOption) error {
	if m.opener == nil {
		return ErrNoOpener
	}
	doc, err := m.opener.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	if err := m.Merge(position, doc, opts...); err != nil {
		if c, ok := doc.(io.Closer); ok {
			c.Close()
		}
		return err
	}
	if c, ok := doc.(io.Closer); ok {
		m.opened = append(m.opened, c)
	}
	return nil
}

// AppendFile opens the document at path and appends it to the sequence
func (m *Merger) AppendFile(path string, opts ...MergeOption) error {
	return m.MergeFile(len(m.pages), path, opts...)
}

func (m *Merger) merge(position int, doc Document, o mergeOptions) error {
	count, err := doc.PageCount()
	if err != nil {
		return fmt.Errorf("failed to get page count: %w", err)
	}

	start, end := 0, count
	if o.hasRange {
		start, end = o.start, o.end
	}
	if start < 0 || end < start || end > count {
		return fmt.Errorf("%w: [%d, %d) of %d pages", ErrInvalidPageRange, start, end, count)
	}
	if position < 0 || position > len(m.pages) {
		return fmt.Errorf("%w: %d with %d pages in sequence", ErrInvalidPosition, position, len(m.pages))
	}

	pageRefs := make([]core.IndirectRef, 0, end-start)
	for i := start; i < end; i++ {
		ref, err := doc.Page(i)
		if err != nil {
			return fmt.Errorf("failed to get page %d: %w", i, err)
		}
		pageRefs = append(pageRefs, ref)
	}

	// The merge-point bookmark is created pre-resolved: the next ID to
	// be allocated belongs to the first admitted page.
	var bookmark *outline.Leaf
	if o.bookmark != "" {
		bookmark = &outline.Leaf{
			Dest:   outline.Destination{Title: o.bookmark, Fit: outline.Fit},
			Target: outline.IDTarget(m.nextID),
		}
	}

	var imported outline.Forest
	if o.importOutline {
		raw, err := doc.Outlines()
		if err != nil {
			return fmt.Errorf("failed to read outlines: %w", err)
		}
		imported = outline.Trim(raw, pageRefs)
	}

	if bookmark != nil {
		m.forest = append(m.forest, bookmark, outline.Group(imported))
	} else {
		m.forest = append(m.forest, imported...)
	}

	admitted := make([]*MergedPage, 0, len(pageRefs))
	batch := make([]outline.AdmittedPage, 0, len(pageRefs))
	for _, ref := range pageRefs {
		id := m.allocate()
		admitted = append(admitted, &MergedPage{Doc: doc, Ref: ref, ID: id})
		batch = append(batch, outline.AdmittedPage{Ref: ref, ID: id})
	}

	// Already-associated entries from earlier merges carry resolved
	// targets and are skipped; only this call's entries are matched.
	if err := outline.Associate(batch, m.forest); err != nil {
		return err
	}

	seq := make([]*MergedPage, 0, len(m.pages)+len(admitted))
	seq = append(seq, m.pages[:position]...)
	seq = append(seq, admitted...)
	seq = append(seq, m.pages[position:]...)
	m.pages = seq

	return nil
}

// Write adds every admitted page to the sink in sequence order, emits
// the accumulated bookmark forest once, and finalizes the sink. Source
// documents must remain open until Write returns; sinks may read page
// content lazily. Write does not consume session state, so writing the
// same session to a fresh sink reproduces the same output.
func (m *Merger) Write(sink Sink) error {
	for _, p := range m.pages {
		if err := sink.AddPage(p.Doc, p.Ref); err != nil {
			return fmt.Errorf("failed to add page with id %d: %w", p.ID, err)
		}
	}
	if err := outline.Emit(m.forest, m.locate, sink); err != nil {
		return err
	}
	return sink.Finalize()
}

// locate maps a stable page ID to the page's current position in the
// sequence. Misses are reported, not fatal: the emitter skips them.
func (m *Merger) locate(id int) (int, bool) {
	for i, p := range m.pages {
		if p.ID == id {
			return i, true
		}
	}
	return 0, false
}

// Close releases documents the session opened itself and clears all
// accumulated state. It is idempotent and safe to call without a prior
// Write. Documents passed in already open by the caller are left open.
func (m *Merger) Close() error {
	var firstErr error
	for _, c := range m.opened {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.opened = nil
	m.pages = nil
	m.forest = nil
	return firstErr
}
