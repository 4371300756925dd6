package memdoc

import (
	"testing"

	"github.com/pdfweld/pdfweld/outline"
)

func TestDocumentPages(t *testing.T) {
	doc := New()
	p1 := doc.AddPage()
	p2 := doc.AddPage()

	count, err := doc.PageCount()
	if err != nil {
		t.Fatalf("PageCount: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 pages, got %d", count)
	}

	got, err := doc.Page(0)
	if err != nil {
		t.Fatalf("Page(0): %v", err)
	}
	if got != p1 {
		t.Errorf("Page(0) = %v, want %v", got, p1)
	}
	got, err = doc.Page(1)
	if err != nil {
		t.Fatalf("Page(1): %v", err)
	}
	if got != p2 {
		t.Errorf("Page(1) = %v, want %v", got, p2)
	}

	if _, err := doc.Page(2); err == nil {
		t.Error("expected error for out-of-range page index")
	}
	if _, err := doc.Page(-1); err == nil {
		t.Error("expected error for negative page index")
	}
}

func TestBuildOutlinesRoundTrip(t *testing.T) {
	doc := New()
	p1 := doc.AddPage()
	p2 := doc.AddPage()

	doc.BuildOutlines([]OutlineItem{
		{Title: "Chapter 1", Page: p1, Kids: []OutlineItem{
			{Title: "Section 1.1", Page: p2},
		}},
		{Title: "Chapter 2", Page: p2},
	})

	forest, err := doc.Outlines()
	if err != nil {
		t.Fatalf("Outlines: %v", err)
	}

	// Each parent with children reads back as leaf-then-group.
	if len(forest) != 3 {
		t.Fatalf("expected 3 top-level entries, got %d", len(forest))
	}
	leaf1, ok := forest[0].(*outline.Leaf)
	if !ok {
		t.Fatalf("entry 0 is %T, want *outline.Leaf", forest[0])
	}
	if leaf1.Dest.Title != "Chapter 1" {
		t.Errorf("entry 0 title = %q, want %q", leaf1.Dest.Title, "Chapter 1")
	}
	group, ok := forest[1].(outline.Group)
	if !ok {
		t.Fatalf("entry 1 is %T, want outline.Group", forest[1])
	}
	if len(group) != 1 {
		t.Fatalf("expected 1 child, got %d", len(group))
	}
	child, ok := group[0].(*outline.Leaf)
	if !ok {
		t.Fatalf("child is %T, want *outline.Leaf", group[0])
	}
	if child.Dest.Title != "Section 1.1" {
		t.Errorf("child title = %q, want %q", child.Dest.Title, "Section 1.1")
	}
	leaf2, ok := forest[2].(*outline.Leaf)
	if !ok {
		t.Fatalf("entry 2 is %T, want *outline.Leaf", forest[2])
	}
	if leaf2.Dest.Title != "Chapter 2" {
		t.Errorf("entry 2 title = %q, want %q", leaf2.Dest.Title, "Chapter 2")
	}
}

func TestDocumentNoOutlines(t *testing.T) {
	doc := New()
	doc.AddPage()

	forest, err := doc.Outlines()
	if err != nil {
		t.Fatalf("Outlines: %v", err)
	}
	if len(forest) != 0 {
		t.Errorf("expected empty forest, got %d entries", len(forest))
	}
}

func TestSinkRecordsParents(t *testing.T) {
	var s Sink

	top, err := s.AddOutline(outline.Destination{Title: "Top", Fit: outline.Fit}, 0, nil)
	if err != nil {
		t.Fatalf("AddOutline: %v", err)
	}
	if _, err := s.AddOutline(outline.Destination{Title: "Child", Fit: outline.Fit}, 1, top); err != nil {
		t.Fatalf("AddOutline: %v", err)
	}
	if err := s.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if !s.Finalized {
		t.Error("expected sink to be finalized")
	}
	if len(s.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(s.Entries))
	}
	if s.Entries[0].Parent != -1 {
		t.Errorf("top entry parent = %d, want -1", s.Entries[0].Parent)
	}
	if s.Entries[1].Parent != 0 {
		t.Errorf("child entry parent = %d, want 0", s.Entries[1].Parent)
	}
}
