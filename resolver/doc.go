// Package resolver provides PDF indirect reference resolution.
//
// PDF documents use indirect references (e.g., "5 0 R") to refer to
// objects stored elsewhere in the file. This package follows those
// references to their direct objects, handling chains of references and
// detecting circular dependencies.
//
// # Basic Usage
//
// Create a resolver with an object reader and resolve references:
//
//	r := resolver.New(reader)
//	obj, err := r.Resolve(ref)
//
// Direct objects pass through Resolve unchanged, so callers do not need
// to check whether a value is a reference before resolving it.
//
// # Cycle Detection
//
// The resolver detects circular reference chains and returns an error
// rather than looping. The maximum chain length is configurable:
//
//	r := resolver.New(reader, resolver.WithMaxDepth(8))
//
// # Object Reader
//
// The [ObjectReader] interface decouples the resolver from any concrete
// document backend:
//
//	type ObjectReader interface {
//	    GetObject(objNum int) (core.Object, error)
//	}
package resolver
