// Package memdoc provides an in-memory document and sink for the merge
// pipeline.
//
// [Document] holds a PDF object table, catalog, and page list built
// programmatically, and implements the pdfweld.Document capability.
// [Sink] records pages and outline entries as plain slices for
// inspection. Together they let merge behavior be exercised end to end
// without touching files, and give callers a way to feed synthesized
// documents into a merge session.
//
// Building a two-page document with an outline:
//
//	doc := memdoc.New()
//	p1 := doc.AddPage()
//	p2 := doc.AddPage()
//	doc.BuildOutlines([]memdoc.OutlineItem{
//	    {Title: "Chapter 1", Page: p1, Kids: []memdoc.OutlineItem{
//	        {Title: "Section 1.1", Page: p2},
//	    }},
//	})
package memdoc
