// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract reconstructs aircraft records from the RECAT-EU reference
// table PDF. Two independent strategies exist: Table-Mode consumes
// library-detected table cells, Position-Mode clusters raw positioned words
// into visual rows and buckets them into calibrated column bands.
// Implements: prd001-extraction (R1-R4);
//
//	docs/ARCHITECTURE § Extraction.
package extract

import (
	"fmt"
	"io"

	"github.com/pdiddy/recat-extract/pkg/types"
)

// Word is a positioned word from one page of the document: its text, the
// left edge of its bounding box, and the top edge. Coordinates are in page
// units (points) with the origin at the top-left corner.
type Word struct {
	Text string
	X0   float64
	Top  float64
}

// Source is the slice of the PDF backend the extractor consumes: per-page
// table cells for Table-Mode and positioned words for Position-Mode.
// internal/pdfsource adapts the pdfplumber backend to this interface.
type Source interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// Tables returns the tables detected on a page (0-based), each as
	// ordered rows of possibly empty cell texts.
	Tables(page int) [][][]string

	// Words returns the positioned words on a page (0-based), in no
	// particular order.
	Words(page int) []Word
}

// Run walks the document page by page and reconstructs aircraft records
// with the selected strategy. Records are returned in page order, then
// table/visual-row order within a page. Progress is reported to w.
// Rows that fail validation are skipped silently (R1.4); the only error
// path is an unrecognized mode.
func Run(src Source, mode types.Mode, cal types.Calibration, w io.Writer) ([]types.AircraftRecord, error) {
	n := src.PageCount()
	fmt.Fprintf(w, "Processing %d pages...\n", n)

	var records []types.AircraftRecord
	for page := 0; page < n; page++ {
		switch mode {
		case types.ModeTable:
			for _, table := range src.Tables(page) {
				records = append(records, TableRows(table)...)
			}
		case types.ModePosition:
			records = append(records, PositionRows(src.Words(page), cal)...)
		default:
			return nil, fmt.Errorf("unknown extraction mode %q", mode)
		}
	}
	return records, nil
}
