package outline

import (
	"fmt"

	"github.com/pdfweld/pdfweld/core"
)

// UnresolvedBookmarkError reports a trimmed bookmark whose target page
// could not be matched among the pages admitted by a merge. The trimmer
// only keeps leaves targeting admitted pages, so hitting this during
// association means the source document is malformed or identity
// comparison between the two phases diverged.
type UnresolvedBookmarkError struct {
	Title string
}

func (e *UnresolvedBookmarkError) Error() string {
	return fmt.Sprintf("unresolved bookmark %q", e.Title)
}

// UnexpectedDestinationError reports an outline destination that is
// neither a well-formed destination array nor a resolvable destination
// name.
type UnexpectedDestinationError struct {
	Value core.Object
}

func (e *UnexpectedDestinationError) Error() string {
	if e.Value == nil {
		return "unexpected destination"
	}
	return fmt.Sprintf("unexpected destination %s", e.Value)
}
