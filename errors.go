package pdfweld

import "errors"

var (
	// ErrInvalidPageRange reports a page range that is not a valid
	// [start, end) pair within the source document. It is returned
	// before any session state is touched.
	ErrInvalidPageRange = errors.New("invalid page range")

	// ErrInvalidPosition reports a merge position outside the current
	// page sequence.
	ErrInvalidPosition = errors.New("invalid merge position")

	// ErrNoOpener is returned by MergeFile and AppendFile when the
	// session has no document opener configured.
	ErrNoOpener = errors.New("no document opener configured")
)
