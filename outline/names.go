package outline

import (
	"fmt"

	"github.com/pdfweld/pdfweld/core"
)

// FlattenNameTree flattens a destination name tree into a mapping from
// destination name to leaf. A tree node either carries a Kids array of
// child nodes, a Names array of flat (key, value) pairs, or, for
// simplified trees produced by some writers, direct key-to-array
// entries on the node itself. When the same key appears in several
// kids, the later kid wins.
func FlattenNameTree(tree core.Object, r Resolver) (map[string]Leaf, error) {
	out := make(map[string]Leaf)
	if err := flattenNameTree(tree, r, out); err != nil {
		return nil, err
	}
	return out, nil
}

func flattenNameTree(node core.Object, r Resolver, out map[string]Leaf) error {
	obj, err := r.Resolve(node)
	if err != nil {
		return fmt.Errorf("failed to resolve name tree node: %w", err)
	}
	dict, ok := obj.(core.Dict)
	if !ok {
		return nil
	}

	if kidsObj := dict.Get("Kids"); kidsObj != nil {
		resolved, err := r.Resolve(kidsObj)
		if err != nil {
			return fmt.Errorf("failed to resolve name tree kids: %w", err)
		}
		if kids, ok := resolved.(core.Array); ok {
			for _, kid := range kids {
				if err := flattenNameTree(kid, r, out); err != nil {
					return err
				}
			}
		}
	}

	if namesObj := dict.Get("Names"); namesObj != nil {
		resolved, err := r.Resolve(namesObj)
		if err != nil {
			return fmt.Errorf("failed to resolve names array: %w", err)
		}
		if names, ok := resolved.(core.Array); ok {
			for i := 0; i+1 < names.Len(); i += 2 {
				if err := addNamedDest(names.Get(i), names.Get(i+1), r, out); err != nil {
					return err
				}
			}
		}
	}

	// Fallback for malformed trees that map names directly on the node.
	if !dict.Has("Kids") && !dict.Has("Names") {
		for _, key := range dict.Keys() {
			if arr, ok := dict.Get(key).(core.Array); ok && arr.Len() > 0 {
				if page, dest, err := decomposeDest(key, arr); err == nil {
					out[key] = Leaf{Dest: dest, Target: RawTarget(page)}
				}
			}
		}
	}

	return nil
}

// addNamedDest decodes one (key, value) pair from a Names array. The
// value is either a destination array or a dictionary whose D entry
// holds one. Pairs that do not decode to a destination are skipped.
func addNamedDest(keyObj, valObj core.Object, r Resolver, out map[string]Leaf) error {
	resolvedKey, err := r.Resolve(keyObj)
	if err != nil {
		return fmt.Errorf("failed to resolve name tree key: %w", err)
	}
	key, ok := textOf(resolvedKey)
	if !ok {
		return nil
	}

	val, err := r.Resolve(valObj)
	if err != nil {
		return fmt.Errorf("failed to resolve destination for %q: %w", key, err)
	}
	if vd, ok := val.(core.Dict); ok {
		if d := vd.Get("D"); d != nil {
			val, err = r.Resolve(d)
			if err != nil {
				return fmt.Errorf("failed to resolve /D for %q: %w", key, err)
			}
		}
	}

	arr, ok := val.(core.Array)
	if !ok {
		return nil
	}
	page, dest, err := decomposeDest(key, arr)
	if err != nil {
		return nil
	}
	out[key] = Leaf{Dest: dest, Target: RawTarget(page)}
	return nil
}
