package outline

import (
	"github.com/pdfweld/pdfweld/core"
)

// Resolver is the object resolution capability the outline package
// consumes. Any document backend that can follow indirect references
// satisfies it.
type Resolver interface {
	Resolve(obj core.Object) (core.Object, error)
}

// Fit mode names for destinations (PDF 32000-1, table 151).
const (
	FitXYZ = core.Name("XYZ")
	Fit    = core.Name("Fit")
	FitH   = core.Name("FitH")
	FitV   = core.Name("FitV")
	FitR   = core.Name("FitR")
	FitB   = core.Name("FitB")
	FitBH  = core.Name("FitBH")
	FitBV  = core.Name("FitBV")
)

// Destination describes where a bookmark points: a title, a view fit
// mode, and the fit mode's ordered parameters. The page itself is
// tracked separately as a leaf's [Target]. A Destination is immutable
// once built.
type Destination struct {
	Title string
	Fit   core.Name
	Args  core.Array
}

// decomposeDest splits a destination array [page fit args...] into the
// page target and a Destination carrying the given title.
func decomposeDest(title string, arr core.Array) (core.Object, Destination, error) {
	if arr.Len() < 2 {
		return nil, Destination{}, &UnexpectedDestinationError{Value: arr}
	}
	fit, ok := arr.GetName(1)
	if !ok {
		return nil, Destination{}, &UnexpectedDestinationError{Value: arr}
	}
	return arr.Get(0), Destination{
		Title: title,
		Fit:   fit,
		Args:  core.Array(arr[2:]).Clone(),
	}, nil
}
