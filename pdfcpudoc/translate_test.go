package pdfcpudoc

import (
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/pdfweld/pdfweld/core"
	"github.com/pdfweld/pdfweld/outline"
)

func destNamed(title string) outline.Destination {
	return outline.Destination{Title: title, Fit: outline.Fit}
}

func TestFromPDFCPUScalars(t *testing.T) {
	tests := []struct {
		name string
		in   types.Object
		want core.Object
	}{
		{"integer", types.Integer(42), core.Int(42)},
		{"float", types.Float(1.5), core.Real(1.5)},
		{"boolean", types.Boolean(true), core.Bool(true)},
		{"name", types.Name("Fit"), core.Name("Fit")},
		{"string literal", types.StringLiteral("Chapter 1"), core.String("Chapter 1")},
		{"indirect ref", *types.NewIndirectRef(7, 0), core.IndirectRef{Number: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fromPDFCPU(tt.in); got != tt.want {
				t.Errorf("fromPDFCPU(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromPDFCPUContainers(t *testing.T) {
	in := types.Dict{
		"Title": types.StringLiteral("Intro"),
		"Dest":  types.Array{*types.NewIndirectRef(3, 0), types.Name("Fit")},
		"Count": types.Integer(2),
	}

	got, ok := fromPDFCPU(in).(core.Dict)
	if !ok {
		t.Fatalf("expected core.Dict, got %T", fromPDFCPU(in))
	}

	title, ok := got.GetString("Title")
	if !ok {
		t.Fatal("Title is missing or not a string")
	}
	if string(title) != "Intro" {
		t.Errorf("Title = %q, want %q", title, "Intro")
	}

	dest, ok := got.GetArray("Dest")
	if !ok {
		t.Fatal("Dest is missing or not an array")
	}
	if dest.Len() != 2 {
		t.Fatalf("Dest length = %d, want 2", dest.Len())
	}
	// References survive translation unresolved.
	ref, ok := dest.Get(0).(core.IndirectRef)
	if !ok {
		t.Fatalf("Dest[0] is %T, want core.IndirectRef", dest.Get(0))
	}
	if ref.Number != 3 {
		t.Errorf("Dest[0].Number = %d, want 3", ref.Number)
	}

	count, ok := got.GetInt("Count")
	if !ok {
		t.Fatal("Count is missing or not an integer")
	}
	if count != 2 {
		t.Errorf("Count = %d, want 2", count)
	}
}

func TestRunsGrouping(t *testing.T) {
	s := NewSink("out.pdf", nil)
	s.pages = []pageWrite{
		{path: "a.pdf", pageNr: 1},
		{path: "a.pdf", pageNr: 2},
		{path: "b.pdf", pageNr: 1},
		{path: "a.pdf", pageNr: 5},
		{path: "a.pdf", pageNr: 6},
		{path: "a.pdf", pageNr: 8}, // gap breaks the run
	}

	got := s.runs()
	want := []run{
		{path: "a.pdf", from: 1, thru: 2},
		{path: "b.pdf", from: 1, thru: 1},
		{path: "a.pdf", from: 5, thru: 6},
		{path: "a.pdf", from: 8, thru: 8},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d runs, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSinkBookmarkTree(t *testing.T) {
	s := NewSink("out.pdf", nil)
	s.pages = []pageWrite{{path: "a.pdf", pageNr: 1}, {path: "a.pdf", pageNr: 2}}

	top, err := s.AddOutline(destNamed("Chapter"), 0, nil)
	if err != nil {
		t.Fatalf("AddOutline: %v", err)
	}
	if _, err := s.AddOutline(destNamed("Section"), 1, top); err != nil {
		t.Fatalf("AddOutline: %v", err)
	}

	bms := toBookmarks(s.roots)
	if len(bms) != 1 {
		t.Fatalf("expected 1 root bookmark, got %d", len(bms))
	}
	if bms[0].Title != "Chapter" || bms[0].PageFrom != 1 {
		t.Errorf("root = %q page %d, want Chapter page 1", bms[0].Title, bms[0].PageFrom)
	}
	if len(bms[0].Kids) != 1 {
		t.Fatalf("expected 1 kid, got %d", len(bms[0].Kids))
	}
	if bms[0].Kids[0].Title != "Section" || bms[0].Kids[0].PageFrom != 2 {
		t.Errorf("kid = %q page %d, want Section page 2", bms[0].Kids[0].Title, bms[0].Kids[0].PageFrom)
	}
}

func TestSinkRejectsStalePageIndex(t *testing.T) {
	s := NewSink("out.pdf", nil)
	s.pages = []pageWrite{{path: "a.pdf", pageNr: 1}}

	if _, err := s.AddOutline(destNamed("Broken"), 5, nil); err == nil {
		t.Error("expected error for out-of-range page index")
	}
}
