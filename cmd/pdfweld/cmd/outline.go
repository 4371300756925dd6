package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdfweld/pdfweld/outline"
	"github.com/pdfweld/pdfweld/pdfcpudoc"
)

var outlineCmd = &cobra.Command{
	Use:   "outline file",
	Short: "Print a PDF's bookmark tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := pdfcpudoc.OpenFile(args[0], nil)
		if err != nil {
			return err
		}
		defer doc.Close()

		forest, err := doc.Outlines()
		if err != nil {
			return err
		}
		if len(forest) == 0 {
			fmt.Println("no bookmarks")
			return nil
		}
		printForest(forest, 0)
		return nil
	},
}

func printForest(forest outline.Forest, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, e := range forest {
		switch v := e.(type) {
		case *outline.Leaf:
			fmt.Printf("%s%s\n", indent, v.Dest.Title)
		case outline.Group:
			printForest(outline.Forest(v), depth+1)
		}
	}
}

func init() {
	rootCmd.AddCommand(outlineCmd)
}
