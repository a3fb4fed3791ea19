// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"

	"github.com/pdiddy/recat-extract/pkg/types"
)

// CleanText collapses all runs of whitespace (including newlines from
// multi-line cells) to single spaces and trims the result. Empty input
// stays empty.
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// TableRows reconstructs aircraft records from one library-detected table.
// Rows that do not look like data rows are skipped: too few cells, header
// keywords, or too few non-empty cells after compaction.
// Per prd001-extraction R1.2-R1.4, R2.3.
func TableRows(table [][]string) []types.AircraftRecord {
	var records []types.AircraftRecord
	for _, row := range table {
		rec, ok := tableRow(row)
		if ok {
			records = append(records, rec)
		}
	}
	return records
}

// tableRow classifies a single table row. The table nominally has five
// columns, but the detector sometimes splits or pads them with empty
// cells, so positions are resolved against the compacted cell list: the
// last two cells are the WTC pair, the third from last the designator,
// the first the manufacturer, and whatever sits between is the model.
func tableRow(row []string) (types.AircraftRecord, bool) {
	cells := make([]string, len(row))
	for i, c := range row {
		cells[i] = CleanText(c)
	}

	// Expect at least Manufacturer, Model, Designator plus WTC data.
	if len(cells) < 4 {
		return types.AircraftRecord{}, false
	}

	// Header rows repeat on every page.
	if strings.Contains(strings.ToUpper(cells[0]), "MANUFACTURER") ||
		strings.Contains(strings.ToUpper(strings.Join(cells, "")), "RECAT-EU") {
		return types.AircraftRecord{}, false
	}

	var data []string
	for _, c := range cells {
		if c != "" {
			data = append(data, c)
		}
	}
	if len(data) < 3 {
		return types.AircraftRecord{}, false
	}

	legacy, recat := ClassifyWTC(data[len(data)-2], data[len(data)-1])

	model := data[1]
	if len(data) > 4 {
		model = strings.Join(data[1:len(data)-3], " ")
	}

	return types.AircraftRecord{
		Manufacturer: data[0],
		Model:        model,
		Designator:   data[len(data)-3],
		LegacyWTC:    legacy,
		RecatWTC:     recat,
	}, true
}
