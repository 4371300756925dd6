package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pdfweld",
	Short: "Merge PDF files with their bookmarks",
	Long: `pdfweld joins PDF files into a single document, carrying over the
bookmarks that point into the merged pages and fixing them up to the
pages' new positions.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
