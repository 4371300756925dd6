package cmd

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdfweld/pdfweld"
	"github.com/pdfweld/pdfweld/pdfcpudoc"
)

var (
	mergeOut       string
	mergeBookmarks bool
	mergeNoOutline bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge file[:pages]...",
	Short: "Merge PDF files into one document",
	Long: `Merge the given PDF files, in order, into a single output document.

Each argument may carry a page selection after a colon, 1-based and
inclusive: "report.pdf:2-5" takes pages 2 through 5, "report.pdf:3"
takes page 3 alone.

Example:
  pdfweld merge -o out.pdf --bookmarks cover.pdf body.pdf:1-10 appendix.pdf`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m := pdfweld.New(pdfweld.WithOpener(pdfcpudoc.Opener{}))
		defer m.Close()

		for _, arg := range args {
			path, opts, err := parseSource(arg)
			if err != nil {
				return err
			}
			if mergeBookmarks {
				title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
				opts = append(opts, pdfweld.WithBookmark(title))
			}
			if mergeNoOutline {
				opts = append(opts, pdfweld.WithoutOutline())
			}
			if err := m.AppendFile(path, opts...); err != nil {
				return err
			}
		}

		if err := m.Write(pdfcpudoc.NewSink(mergeOut, nil)); err != nil {
			return err
		}
		fmt.Printf("wrote %d pages to %s\n", m.PageCount(), mergeOut)
		return nil
	},
}

// pageSelRe matches a trailing page selection like :3 or :2-5
var pageSelRe = regexp.MustCompile(`^(.+):(\d+)(?:-(\d+))?$`)

// parseSource splits an argument into a file path and the merge options
// for its page selection, if any.
func parseSource(arg string) (string, []pdfweld.MergeOption, error) {
	sel := pageSelRe.FindStringSubmatch(arg)
	if sel == nil {
		return arg, nil, nil
	}
	path := sel[1]
	first, err := strconv.Atoi(sel[2])
	if err != nil || first < 1 {
		return "", nil, fmt.Errorf("invalid page selection in %q", arg)
	}
	last := first
	if sel[3] != "" {
		last, err = strconv.Atoi(sel[3])
		if err != nil || last < first {
			return "", nil, fmt.Errorf("invalid page selection in %q", arg)
		}
	}
	return path, []pdfweld.MergeOption{pdfweld.WithPages(first-1, last)}, nil
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeOut, "out", "o", "merged.pdf", "output file path")
	mergeCmd.Flags().BoolVar(&mergeBookmarks, "bookmarks", false, "add a bookmark per input file, titled after the file")
	mergeCmd.Flags().BoolVar(&mergeNoOutline, "no-outline", false, "do not carry over the inputs' own bookmarks")
	rootCmd.AddCommand(mergeCmd)
}
