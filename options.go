package pdfweld

// Option configures a Merger
type Option func(*Merger)

// WithOpener sets the opener used by MergeFile and AppendFile
func WithOpener(o Opener) Option {
	return func(m *Merger) {
		m.opener = o
	}
}

// mergeOptions holds per-merge configuration.
type mergeOptions struct {
	bookmark      string
	hasRange      bool
	start, end    int
	importOutline bool
}

func defaultMergeOptions() mergeOptions {
	return mergeOptions{
		importOutline: true, // source outlines are imported unless opted out
	}
}

// MergeOption configures a single merge operation
type MergeOption func(*mergeOptions)

// WithBookmark adds a top-level bookmark with the given title pointing
// at the first admitted page, with the source's own imported outline
// nested beneath it.
func WithBookmark(title string) MergeOption {
	return func(o *mergeOptions) {
		o.bookmark = title
	}
}

// WithPages restricts the merge to pages [start, end) of the source
// (0-based). Without this option the whole document is merged.
func WithPages(start, end int) MergeOption {
	return func(o *mergeOptions) {
		o.hasRange = true
		o.start = start
		o.end = end
	}
}

// WithoutOutline skips importing the source document's outline
func WithoutOutline() MergeOption {
	return func(o *mergeOptions) {
		o.importOutline = false
	}
}
