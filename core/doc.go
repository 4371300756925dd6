// Package core provides the PDF object model used throughout pdfweld.
//
// PDF documents are built from a small set of primitive object types:
// booleans, numbers, strings, names, arrays, dictionaries, and indirect
// references. This package represents each as a Go type implementing the
// [Object] interface, with typed accessors on [Dict] and [Array] for
// the lookups the merge pipeline performs.
//
// # Object Types
//
//	core.Null        - null object
//	core.Bool        - boolean
//	core.Int         - integer
//	core.Real        - real number
//	core.String      - string (raw bytes; see outline.DecodeText)
//	core.Name        - name (e.g. /Fit)
//	core.Array       - ordered collection
//	core.Dict        - key/value dictionary
//	core.IndirectRef - reference to an object stored elsewhere
//
// # Identity
//
// [IndirectRef] is a comparable value type. Within a single document it
// serves as an identity token: the trimmer and associator decide whether
// two objects are "the same page" by comparing reference tokens rather
// than by comparing object contents.
//
// This package deliberately contains no tokenizer or cross-reference
// machinery. Producing core objects from a file on disk is the job of a
// document backend such as the pdfcpudoc package.
package core
