package pdfcpudoc

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdfweld/pdfweld"
	"github.com/pdfweld/pdfweld/core"
	"github.com/pdfweld/pdfweld/outline"
)

// Sink writes a merged PDF file. Pages are collected during the write
// and the output is produced in Finalize: consecutive pages from the
// same source file are trimmed out as a run, the runs are concatenated,
// and the accumulated bookmarks are attached to the result.
type Sink struct {
	outPath string
	conf    *model.Configuration
	pages   []pageWrite
	roots   []*bmNode
}

type pageWrite struct {
	path   string
	pageNr int // 1-based
}

type bmNode struct {
	title  string
	pageNr int // 1-based
	kids   []*bmNode
}

// NewSink creates a sink that writes the merged document to outPath. A
// nil conf uses the pdfcpu defaults.
func NewSink(outPath string, conf *model.Configuration) *Sink {
	if conf == nil {
		conf = model.NewDefaultConfiguration()
	}
	return &Sink{outPath: outPath, conf: conf}
}

// AddPage implements pdfweld.Sink. The document must have been opened
// by this package.
func (s *Sink) AddPage(doc pdfweld.Document, page core.IndirectRef) error {
	d, ok := doc.(*Document)
	if !ok {
		return fmt.Errorf("unsupported document type %T", doc)
	}
	nr, ok := d.pageNumber(page)
	if !ok {
		return fmt.Errorf("object %d is not a page of %s", page.Number, d.Path())
	}
	s.pages = append(s.pages, pageWrite{path: d.Path(), pageNr: nr})
	return nil
}

// AddOutline implements outline.Sink
func (s *Sink) AddOutline(dest outline.Destination, pageIndex int, parent outline.Node) (outline.Node, error) {
	if pageIndex < 0 || pageIndex >= len(s.pages) {
		return nil, fmt.Errorf("outline %q targets page index %d of %d written pages", dest.Title, pageIndex, len(s.pages))
	}
	node := &bmNode{title: dest.Title, pageNr: pageIndex + 1}
	if parent == nil {
		s.roots = append(s.roots, node)
	} else {
		p, ok := parent.(*bmNode)
		if !ok {
			return nil, fmt.Errorf("foreign outline parent %T", parent)
		}
		p.kids = append(p.kids, node)
	}
	return node, nil
}

// Finalize implements pdfweld.Sink
func (s *Sink) Finalize() error {
	if len(s.pages) == 0 {
		return fmt.Errorf("no pages to write")
	}

	dir := filepath.Dir(s.outPath)
	var temps []string
	defer func() {
		for _, t := range temps {
			os.Remove(t)
		}
	}()

	var parts []string
	for _, run := range s.runs() {
		tmp, err := tempName(dir)
		if err != nil {
			return err
		}
		temps = append(temps, tmp)
		sel := []string{fmt.Sprintf("%d-%d", run.from, run.thru)}
		if err := api.TrimFile(run.path, tmp, sel, s.conf); err != nil {
			return fmt.Errorf("failed to trim pages %d-%d of %s: %w", run.from, run.thru, run.path, err)
		}
		parts = append(parts, tmp)
	}

	merged := parts[0]
	if len(parts) > 1 {
		m, err := tempName(dir)
		if err != nil {
			return err
		}
		temps = append(temps, m)
		if err := api.MergeCreateFile(parts, m, false, s.conf); err != nil {
			return fmt.Errorf("failed to merge: %w", err)
		}
		merged = m
	}

	if len(s.roots) > 0 {
		bms := toBookmarks(s.roots)
		if err := api.AddBookmarksFile(merged, s.outPath, bms, true, s.conf); err != nil {
			return fmt.Errorf("failed to add bookmarks: %w", err)
		}
		return nil
	}
	return os.Rename(merged, s.outPath)
}

// run is a maximal stretch of consecutive pages from one source file
type run struct {
	path       string
	from, thru int // 1-based inclusive
}

func (s *Sink) runs() []run {
	var out []run
	for _, p := range s.pages {
		last := len(out) - 1
		if last >= 0 && out[last].path == p.path && out[last].thru+1 == p.pageNr {
			out[last].thru = p.pageNr
			continue
		}
		out = append(out, run{path: p.path, from: p.pageNr, thru: p.pageNr})
	}
	return out
}

func toBookmarks(nodes []*bmNode) []pdfcpu.Bookmark {
	bms := make([]pdfcpu.Bookmark, 0, len(nodes))
	for _, n := range nodes {
		bms = append(bms, pdfcpu.Bookmark{
			Title:    n.title,
			PageFrom: n.pageNr,
			Kids:     toBookmarks(n.kids),
		})
	}
	return bms
}

func tempName(dir string) (string, error) {
	f, err := os.CreateTemp(dir, "pdfweld-*.pdf")
	if err != nil {
		return "", err
	}
	name := f.Name()
	f.Close()
	return name, nil
}
