package resolver

import (
	"fmt"

	"github.com/pdfweld/pdfweld/core"
)

// ObjectReader interface allows the resolver to work with any document backend
type ObjectReader interface {
	GetObject(objNum int) (core.Object, error)
}

// Resolver follows indirect references until a direct object is reached.
// Malformed documents can contain reference chains and cycles, so every
// resolution is bounded and cycle-checked.
type Resolver struct {
	reader   ObjectReader
	maxDepth int
}

// Option configures the resolver
type Option func(*Resolver)

// WithMaxDepth sets the maximum reference chain length (default: 32)
func WithMaxDepth(depth int) Option {
	return func(r *Resolver) {
		r.maxDepth = depth
	}
}

// New creates a resolver backed by the given object reader
func New(reader ObjectReader, opts ...Option) *Resolver {
	r := &Resolver{
		reader:   reader,
		maxDepth: 32,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve returns the direct object behind obj. Direct objects pass
// through unchanged; indirect references are followed, including chains
// of references, with cycle detection.
func (r *Resolver) Resolve(obj core.Object) (core.Object, error) {
	visited := make(map[int]bool)
	depth := 0

	for {
		ref, ok := obj.(core.IndirectRef)
		if !ok {
			return obj, nil
		}

		if visited[ref.Number] {
			return nil, fmt.Errorf("circular reference detected for object %d", ref.Number)
		}
		if depth >= r.maxDepth {
			return nil, fmt.Errorf("maximum reference depth (%d) exceeded", r.maxDepth)
		}
		visited[ref.Number] = true
		depth++

		resolved, err := r.reader.GetObject(ref.Number)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve reference %d %d R: %w", ref.Number, ref.Generation, err)
		}
		obj = resolved
	}
}

// ResolveDict resolves obj and requires the result to be a dictionary
func (r *Resolver) ResolveDict(obj core.Object) (core.Dict, error) {
	resolved, err := r.Resolve(obj)
	if err != nil {
		return nil, err
	}
	dict, ok := resolved.(core.Dict)
	if !ok {
		return nil, fmt.Errorf("expected dictionary, got %v", resolved.Type())
	}
	return dict, nil
}

// ResolveArray resolves obj and requires the result to be an array
func (r *Resolver) ResolveArray(obj core.Object) (core.Array, error) {
	resolved, err := r.Resolve(obj)
	if err != nil {
		return nil, err
	}
	arr, ok := resolved.(core.Array)
	if !ok {
		return nil, fmt.Errorf("expected array, got %v", resolved.Type())
	}
	return arr, nil
}
