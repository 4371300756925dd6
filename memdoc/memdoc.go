package memdoc

import (
	"fmt"

	"github.com/pdfweld/pdfweld/core"
	"github.com/pdfweld/pdfweld/outline"
	"github.com/pdfweld/pdfweld/resolver"
)

// Document is an in-memory PDF document: an object table, a catalog,
// and an ordered page list. It implements the pdfweld.Document
// capability and is primarily useful for tests and for synthesizing
// documents programmatically.
type Document struct {
	nextObj int
	objects map[int]core.Object
	catalog core.Dict
	pages   []core.IndirectRef
	res     *resolver.Resolver
}

// New creates an empty document with a bare catalog
func New() *Document {
	d := &Document{
		nextObj: 1,
		objects: make(map[int]core.Object),
		catalog: core.Dict{"Type": core.Name("Catalog")},
	}
	d.res = resolver.New(d)
	return d
}

// GetObject implements resolver.ObjectReader
func (d *Document) GetObject(objNum int) (core.Object, error) {
	obj, ok := d.objects[objNum]
	if !ok {
		return nil, fmt.Errorf("object %d not found", objNum)
	}
	return obj, nil
}

// AddObject stores obj in the object table and returns its reference
func (d *Document) AddObject(obj core.Object) core.IndirectRef {
	ref := core.IndirectRef{Number: d.nextObj}
	d.objects[d.nextObj] = obj
	d.nextObj++
	return ref
}

// AddPage appends a new page to the document and returns its reference
func (d *Document) AddPage() core.IndirectRef {
	ref := d.AddObject(core.Dict{"Type": core.Name("Page")})
	d.pages = append(d.pages, ref)
	return ref
}

// Catalog returns the document catalog for direct manipulation
func (d *Document) Catalog() core.Dict {
	return d.catalog
}

// Resolve follows indirect references against the object table
func (d *Document) Resolve(obj core.Object) (core.Object, error) {
	return d.res.Resolve(obj)
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

// Outlines implements pdfweld.Document
func (d *Document) Outlines() (outline.Forest, error) {
	return outline.Read(d.catalog, d.res)
}

// OutlineItem describes one outline node for BuildOutlines
type OutlineItem struct {
	Title string
	Page  core.IndirectRef
	Kids  []OutlineItem
}

// BuildOutlines installs an outline tree over the catalog, wiring the
// First/Next/Last links the way PDF writers lay them out.
func (d *Document) BuildOutlines(items []OutlineItem) {
	root := core.Dict{"Type": core.Name("Outlines")}
	rootRef := d.AddObject(root)
	d.linkChildren(root, rootRef, items)
	d.catalog.Set("Outlines", rootRef)
}

func (d *Document) linkChildren(parent core.Dict, parentRef core.IndirectRef, items []OutlineItem) {
	var prev core.Dict
	var prevRef core.IndirectRef
	for _, item := range items {
		node := core.Dict{
			"Title":  core.String(item.Title),
			"Dest":   core.Array{item.Page, core.Name("Fit")},
			"Parent": parentRef,
		}
		ref := d.AddObject(node)
		if prev == nil {
			parent.Set("First", ref)
		} else {
			prev.Set("Next", ref)
			node.Set("Prev", prevRef)
		}
		parent.Set("Last", ref)
		if len(item.Kids) > 0 {
			d.linkChildren(node, ref, item.Kids)
		}
		prev, prevRef = node, ref
	}
}
