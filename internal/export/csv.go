// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes reconstructed aircraft records to their output
// targets: CSV for the one-shot conversion, YAML for downstream tooling,
// and SQLite for systems that keep the reference data queryable.
// Implements: prd002-export (R1-R4);
//
//	docs/ARCHITECTURE § Export.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/recat-extract/pkg/types"
)

// CSVHeader is the fixed five-column header of the output file. It is
// written even when no data rows follow.
var CSVHeader = []string{
	"Manufacturer",
	"Model",
	"ICAO Type Designator",
	"ICAO Legacy WTC",
	"RECAT-EU WTC",
}

// WriteCSV writes the header and one line per record to w, returning the
// number of data rows written. Quoting and escaping of embedded delimiters
// follow the standard CSV rules.
// Per prd002-export R1.1-R1.3.
func WriteCSV(w io.Writer, records []types.AircraftRecord) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return 0, fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range records {
		row := []string{r.Manufacturer, r.Model, r.Designator, r.LegacyWTC, r.RecatWTC}
		if err := cw.Write(row); err != nil {
			return 0, fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flushing CSV: %w", err)
	}
	return len(records), nil
}

// WriteCSVFile writes the records to a UTF-8 CSV file at path. Nothing is
// written until extraction has completed, so a mid-run failure leaves no
// partial output behind.
func WriteCSVFile(path string, records []types.AircraftRecord) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", path, err)
	}
	n, err := WriteCSV(f, records)
	if err != nil {
		f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("closing %s: %w", path, err)
	}
	return n, nil
}
