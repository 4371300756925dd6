// Package pdfcpudoc backs the merge pipeline with real PDF files via
// the pdfcpu library.
//
// [Document] opens a file with pdfcpu's reader, walks its page tree,
// and exposes pages, outlines, and object resolution through the
// pdfweld.Document capability. [Sink] collects the written page
// sequence and bookmark tree, then produces the output file in
// Finalize by trimming page runs out of their source files, merging
// the runs, and attaching the bookmarks.
//
// Merging two files into one:
//
//	m := pdfweld.New(pdfweld.WithOpener(pdfcpudoc.Opener{}))
//	defer m.Close()
//	if err := m.AppendFile("a.pdf"); err != nil { ... }
//	if err := m.AppendFile("b.pdf", pdfweld.WithBookmark("Appendix")); err != nil { ... }
//	if err := m.Write(pdfcpudoc.NewSink("out.pdf", nil)); err != nil { ... }
package pdfcpudoc
