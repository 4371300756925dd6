package pdfcpudoc

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/pdfweld/pdfweld"
	"github.com/pdfweld/pdfweld/core"
	"github.com/pdfweld/pdfweld/outline"
	"github.com/pdfweld/pdfweld/pages"
)

// Document is a PDF file read through pdfcpu. It implements
// pdfweld.Document and stays open until Close so page content can be
// pulled at write time.
type Document struct {
	path    string
	f       *os.File
	ctx     *model.Context
	pages   []core.IndirectRef
	pageNrs map[core.IndirectRef]int // 1-based page numbers
}

// Opener opens PDF files as merge sources. The zero value is ready to
// use.
type Opener struct {
	// Conf overrides the pdfcpu configuration. Nil means defaults.
	Conf *model.Configuration
}

// Open implements pdfweld.Opener
func (o Opener) Open(source string) (pdfweld.Document, error) {
	return OpenFile(source, o.Conf)
}

// OpenFile reads and validates the PDF at path. A nil conf uses the
// pdfcpu defaults.
func OpenFile(path string, conf *model.Configuration) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if conf == nil {
		conf = model.NewDefaultConfiguration()
	}
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	d := &Document{
		path:    path,
		f:       f,
		ctx:     ctx,
		pageNrs: make(map[core.IndirectRef]int),
	}
	if err := d.collectPages(); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read page tree of %s: %w", path, err)
	}
	return d, nil
}

// collectPages walks the page tree and records every leaf page
// reference in document order.
func (d *Document) collectPages() error {
	catalog, err := d.ctx.Catalog()
	if err != nil {
		return err
	}
	root, found := catalog.Find("Pages")
	if !found {
		return fmt.Errorf("catalog has no page tree")
	}
	refs, err := pages.Collect(fromPDFCPU(root), d)
	if err != nil {
		return err
	}
	d.pages = refs
	for i, ref := range refs {
		d.pageNrs[ref] = i + 1
	}
	return nil
}

// Path returns the file path the document was opened from
func (d *Document) Path() string {
	return d.path
}

// PageCount implements pdfweld.Document
func (d *Document) PageCount() (int, error) {
	return len(d.pages), nil
}

// Page implements pdfweld.Document
func (d *Document) Page(index int) (core.IndirectRef, error) {
	if index < 0 || index >= len(d.pages) {
		return core.IndirectRef{}, fmt.Errorf("page index %d out of range [0, %d)", index, len(d.pages))
	}
	return d.pages[index], nil
}

// pageNumber maps a page reference to its 1-based page number
func (d *Document) pageNumber(ref core.IndirectRef) (int, bool) {
	nr, ok := d.pageNrs[ref]
	return nr, ok
}

// Outlines implements pdfweld.Document
func (d *Document) Outlines() (outline.Forest, error) {
	catalog, err := d.ctx.Catalog()
	if err != nil {
		return nil, err
	}
	dict, ok := fromPDFCPU(catalog).(core.Dict)
	if !ok {
		return nil, fmt.Errorf("catalog is not a dictionary")
	}
	return outline.Read(dict, d)
}

// Resolve follows indirect references against the source file,
// translating the result into the core object model.
func (d *Document) Resolve(obj core.Object) (core.Object, error) {
	ref, ok := obj.(core.IndirectRef)
	if !ok {
		return obj, nil
	}
	ir := types.NewIndirectRef(ref.Number, ref.Generation)
	resolved, err := d.ctx.Dereference(*ir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve object %d: %w", ref.Number, err)
	}
	if resolved == nil {
		return core.Null{}, nil
	}
	return fromPDFCPU(resolved), nil
}

// Close releases the underlying file
func (d *Document) Close() error {
	return d.f.Close()
}
