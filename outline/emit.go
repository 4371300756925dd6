package outline

// Node is an opaque handle to an outline entry created by a sink. The
// emitter threads nodes back into subsequent AddOutline calls as
// parents; it never inspects them.
type Node any

// Sink receives resolved outline entries during emission.
type Sink interface {
	// AddOutline adds an outline entry pointing at the page currently at
	// pageIndex, nested under parent (nil for top level), and returns a
	// handle for parenting subsequent entries.
	AddOutline(dest Destination, pageIndex int, parent Node) (Node, error)
}

// Locator maps a stable page ID to the page's current positional index
// in the output sequence. The second result is false when the ID no
// longer resolves to a page.
type Locator func(id int) (index int, ok bool)

// Emit walks the forest once, resolves each leaf's stable ID to the
// page's current position, and adds entries to the sink with correct
// parent chaining.
//
// Each nesting level tracks the most recently added node; a group
// attaches under that node, so nested entries hang off their nearest
// preceding sibling the same way the trimmer paired headers with their
// groups. Leaves whose ID no longer locates a page are skipped
// silently, and their nested groups still attach to the level's last
// valid node. Position is resolved here, not at association time,
// which is what keeps bookmarks correct when later merges insert pages
// ahead of earlier ones.
func Emit(forest Forest, locate Locator, sink Sink) error {
	return emit(forest, locate, sink, nil)
}

func emit(forest Forest, locate Locator, sink Sink, parent Node) error {
	lastAdded := parent
	for _, entry := range forest {
		switch e := entry.(type) {
		case Group:
			if err := emit(Forest(e), locate, sink, lastAdded); err != nil {
				return err
			}

		case *Leaf:
			id, ok := e.Target.ID()
			if !ok {
				continue
			}
			index, ok := locate(id)
			if !ok {
				continue
			}
			node, err := sink.AddOutline(e.Dest, index, parent)
			if err != nil {
				return err
			}
			lastAdded = node
		}
	}
	return nil
}
