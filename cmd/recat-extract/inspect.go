// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/recat-extract/internal/pdfsource"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [input.pdf]",
	Short: "Report per-page table and word statistics for calibration work",
	Long: `Inspect opens the PDF and reports, per page, how many tables the backend
detects and how many positioned words it extracts. With --words it also
dumps each word with its coordinates, which is the raw material for tuning
the column band edges in a calibration file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().Bool("words", false, "dump words with coordinates")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	pdfPath := defaultInputPDF
	if len(args) > 0 {
		pdfPath = args[0]
	}
	dumpWords, _ := cmd.Flags().GetBool("words")

	doc, err := pdfsource.Open(pdfPath)
	if err != nil {
		return err
	}
	defer doc.Close()

	fmt.Fprintf(os.Stdout, "%s: %d pages\n", pdfPath, doc.PageCount())

	for page := 0; page < doc.PageCount(); page++ {
		tables := doc.Tables(page)
		words := doc.Words(page)

		rows := 0
		for _, t := range tables {
			rows += len(t)
		}
		fmt.Fprintf(os.Stdout, "page %d: %d table(s), %d table row(s), %d word(s)\n",
			page+1, len(tables), rows, len(words))

		if dumpWords {
			for _, w := range words {
				fmt.Fprintf(os.Stdout, "  x0=%7.2f top=%7.2f %q\n", w.X0, w.Top, w.Text)
			}
		}
	}
	return nil
}
