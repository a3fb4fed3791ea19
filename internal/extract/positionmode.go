// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"sort"
	"strings"

	"github.com/pdiddy/recat-extract/pkg/types"
)

// band indices, left to right.
const (
	bandManufacturer = iota
	bandModel
	bandDesignator
	bandLegacy
	bandRecat
	bandCount
)

// PositionRows reconstructs aircraft records from the raw positioned words
// of one page. Words are clustered into visual rows by vertical position,
// bucketed into the calibrated column bands by horizontal position, and
// the resulting rows are validated against the denylist and the WTC value
// checks. Accepted rows come back in top-to-bottom order.
// Per prd001-extraction R3.1-R3.6.
func PositionRows(words []Word, cal types.Calibration) []types.AircraftRecord {
	var records []types.AircraftRecord
	for _, row := range clusterRows(words, cal.RowTolerance) {
		rec, ok := positionRow(row, cal)
		if ok {
			records = append(records, rec)
		}
	}
	return records
}

// clusterRows groups words into visual rows. Words are sorted by top edge;
// a word joins the current row while it sits within tolerance of the row's
// anchor (the topmost word), otherwise it starts a new row. Words within
// each row are ordered left to right.
func clusterRows(words []Word, tolerance float64) [][]Word {
	if len(words) == 0 {
		return nil
	}

	sorted := make([]Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Top < sorted[j].Top
	})

	var rows [][]Word
	current := []Word{sorted[0]}
	anchor := sorted[0].Top
	for _, word := range sorted[1:] {
		if word.Top-anchor > tolerance {
			rows = append(rows, current)
			current = nil
			anchor = word.Top
		}
		current = append(current, word)
	}
	rows = append(rows, current)

	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool {
			return row[i].X0 < row[j].X0
		})
	}
	return rows
}

// bandFor maps a word's left edge to a column band. Band edges are
// inclusive lower bounds: a word exactly on an edge belongs to the band
// to the right of it.
func bandFor(x0 float64, bands types.ColumnBands) int {
	switch {
	case x0 >= bands.Recat:
		return bandRecat
	case x0 >= bands.Legacy:
		return bandLegacy
	case x0 >= bands.Designator:
		return bandDesignator
	case x0 >= bands.Model:
		return bandModel
	}
	return bandManufacturer
}

// positionRow turns one visual row into a record, or rejects it. Each
// field is simply the space-joined words of its band; no cross-column
// disambiguation is needed because the bands isolate the fields
// geometrically. The validation filter is what separates data rows from
// stray body text.
func positionRow(row []Word, cal types.Calibration) (types.AircraftRecord, bool) {
	var fields [bandCount][]string
	for _, word := range row {
		b := bandFor(word.X0, cal.Bands)
		fields[b] = append(fields[b], word.Text)
	}

	rec := types.AircraftRecord{
		Manufacturer: strings.Join(fields[bandManufacturer], " "),
		Model:        strings.Join(fields[bandModel], " "),
		Designator:   strings.Join(fields[bandDesignator], " "),
		LegacyWTC:    strings.Join(fields[bandLegacy], " "),
		RecatWTC:     strings.Join(fields[bandRecat], " "),
	}

	joined := strings.ToUpper(strings.Join([]string{
		rec.Manufacturer, rec.Model, rec.Designator, rec.LegacyWTC, rec.RecatWTC,
	}, " "))
	for _, phrase := range cal.Denylist {
		if strings.Contains(joined, phrase) {
			return types.AircraftRecord{}, false
		}
	}

	if rec.Manufacturer == "" || rec.Model == "" || rec.Designator == "" {
		return types.AircraftRecord{}, false
	}

	// The primary signal that this is a data row: at least one WTC column
	// holds a recognizable category code.
	if !IsRecatValue(rec.RecatWTC) && !IsLegacyValue(rec.LegacyWTC) {
		return types.AircraftRecord{}, false
	}

	return rec, true
}
