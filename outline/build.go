package outline

import (
	"fmt"

	"github.com/pdfweld/pdfweld/core"
)

// Read extracts a document's outline forest given its catalog. Named
// destinations are flattened first so that name-valued outline targets
// can be resolved while the tree is walked. A document without an
// outline yields an empty forest.
func Read(catalog core.Dict, r Resolver) (Forest, error) {
	named, err := namedDestinations(catalog, r)
	if err != nil {
		return nil, err
	}

	outlinesObj := catalog.Get("Outlines")
	if outlinesObj == nil {
		return Forest{}, nil
	}
	resolved, err := r.Resolve(outlinesObj)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve /Outlines: %w", err)
	}
	outlines, ok := resolved.(core.Dict)
	if !ok {
		return Forest{}, nil
	}
	first := outlines.Get("First")
	if first == nil {
		return Forest{}, nil
	}
	return readSiblings(first, named, r)
}

// namedDestinations collects the catalog's named destinations from the
// PDF 1.1 /Dests dictionary or the newer /Names name tree.
func namedDestinations(catalog core.Dict, r Resolver) (map[string]Leaf, error) {
	if dests := catalog.Get("Dests"); dests != nil {
		return FlattenNameTree(dests, r)
	}
	if namesObj := catalog.Get("Names"); namesObj != nil {
		resolved, err := r.Resolve(namesObj)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve /Names: %w", err)
		}
		if names, ok := resolved.(core.Dict); ok {
			if dests := names.Get("Dests"); dests != nil {
				return FlattenNameTree(dests, r)
			}
		}
	}
	return map[string]Leaf{}, nil
}

// readSiblings walks a First/Next sibling chain. A node contributes its
// own leaf followed, when it has children, by a nested group; that
// leaf-then-group pairing is what the trimmer's header retention rule
// relies on.
func readSiblings(node core.Object, named map[string]Leaf, r Resolver) (Forest, error) {
	var forest Forest
	for node != nil {
		resolved, err := r.Resolve(node)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve outline node: %w", err)
		}
		dict, ok := resolved.(core.Dict)
		if !ok {
			break
		}

		leaf, err := buildLeaf(dict, named, r)
		if err != nil {
			return nil, err
		}
		if leaf != nil {
			forest = append(forest, leaf)
		}

		if first := dict.Get("First"); first != nil {
			sub, err := readSiblings(first, named, r)
			if err != nil {
				return nil, err
			}
			if len(sub) > 0 {
				forest = append(forest, Group(sub))
			}
		}

		node = dict.Get("Next")
	}
	return forest, nil
}

// buildLeaf converts one outline node into a leaf. Two node shapes are
// supported: action-based (/A with a GoTo action supplying the
// destination) and direct (/Dest). Both require a /Title. Nodes with an
// unsupported action kind, or without a destination, yield nil without
// error; destinations that are neither arrays nor known names are an
// UnexpectedDestinationError.
func buildLeaf(node core.Dict, named map[string]Leaf, r Resolver) (*Leaf, error) {
	var destObj core.Object
	var title string

	switch {
	case node.Has("A") && node.Has("Title"):
		t, err := nodeTitle(node, r)
		if err != nil {
			return nil, err
		}
		title = t
		resolved, err := r.Resolve(node.Get("A"))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve action for %q: %w", title, err)
		}
		action, ok := resolved.(core.Dict)
		if !ok {
			return nil, nil
		}
		if kind, _ := action.GetName("S"); kind == "GoTo" {
			destObj = action.Get("D")
		}
	case node.Has("Dest") && node.Has("Title"):
		t, err := nodeTitle(node, r)
		if err != nil {
			return nil, err
		}
		title = t
		destObj = node.Get("Dest")
	}

	if destObj == nil {
		return nil, nil
	}

	dest, err := r.Resolve(destObj)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve destination for %q: %w", title, err)
	}

	switch v := dest.(type) {
	case core.Array:
		page, d, err := decomposeDest(title, v)
		if err != nil {
			return nil, err
		}
		return &Leaf{Dest: d, Target: RawTarget(page)}, nil

	case core.String, core.Name:
		name, _ := textOf(v)
		leaf, ok := named[name]
		if !ok {
			return nil, &UnexpectedDestinationError{Value: v}
		}
		// The named destination is shared; clone it and let the node's
		// own title replace the destination name.
		leaf.Dest.Title = title
		leaf.Dest.Args = leaf.Dest.Args.Clone()
		return &leaf, nil

	default:
		return nil, &UnexpectedDestinationError{Value: v}
	}
}

func nodeTitle(node core.Dict, r Resolver) (string, error) {
	resolved, err := r.Resolve(node.Get("Title"))
	if err != nil {
		return "", fmt.Errorf("failed to resolve outline title: %w", err)
	}
	title, _ := textOf(resolved)
	return title, nil
}
