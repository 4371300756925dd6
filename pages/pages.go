package pages

import (
	"fmt"

	"github.com/pdfweld/pdfweld/core"
)

// Resolver follows indirect references to their objects
type Resolver interface {
	Resolve(obj core.Object) (core.Object, error)
}

// Collect flattens a page tree into its leaf page references, in
// document order. root is the catalog's /Pages entry. Leaf pages must
// be indirect objects; the reference is the caller's handle on the
// page.
func Collect(root core.Object, r Resolver) ([]core.IndirectRef, error) {
	var refs []core.IndirectRef
	if err := walk(root, r, &refs); err != nil {
		return nil, err
	}
	return refs, nil
}

func walk(node core.Object, r Resolver, refs *[]core.IndirectRef) error {
	ref, isRef := node.(core.IndirectRef)
	resolved, err := r.Resolve(node)
	if err != nil {
		return fmt.Errorf("failed to resolve page tree node: %w", err)
	}

	dict, ok := resolved.(core.Dict)
	if !ok {
		return fmt.Errorf("invalid page tree node type: %T", resolved)
	}

	typeName, ok := dict.GetName("Type")
	if !ok {
		return fmt.Errorf("page tree node missing /Type entry")
	}

	switch typeName {
	case "Pages":
		kidsObj := dict.Get("Kids")
		if kidsObj == nil {
			return fmt.Errorf("Pages node missing /Kids entry")
		}
		kidsResolved, err := r.Resolve(kidsObj)
		if err != nil {
			return fmt.Errorf("failed to resolve /Kids: %w", err)
		}
		kids, ok := kidsResolved.(core.Array)
		if !ok {
			return fmt.Errorf("invalid /Kids type: %T", kidsResolved)
		}
		for i, kid := range kids {
			if err := walk(kid, r, refs); err != nil {
				return fmt.Errorf("kid %d: %w", i, err)
			}
		}

	case "Page":
		if !isRef {
			return fmt.Errorf("page leaf is not an indirect object")
		}
		*refs = append(*refs, ref)

	default:
		return fmt.Errorf("unexpected page tree node type: %s", typeName)
	}

	return nil
}

// Count reads the /Count entry of a page tree node
func Count(root core.Object, r Resolver) (int, error) {
	resolved, err := r.Resolve(root)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve page tree root: %w", err)
	}
	dict, ok := resolved.(core.Dict)
	if !ok {
		return 0, fmt.Errorf("invalid page tree root type: %T", resolved)
	}
	count, ok := dict.GetInt("Count")
	if !ok {
		return 0, fmt.Errorf("page tree missing /Count entry")
	}
	return int(count), nil
}
