// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"reflect"
	"testing"

	"github.com/pdiddy/recat-extract/pkg/types"
)

// airbusRow positions the words of a known-good data row at coordinates
// inside each of the five default bands.
func airbusRow(top float64) []Word {
	return []Word{
		{Text: "Airbus", X0: 57, Top: top},
		{Text: "A380-800", X0: 198, Top: top},
		{Text: "A388", X0: 304, Top: top},
		{Text: "J", X0: 381, Top: top},
		{Text: "CAT-A", X0: 423, Top: top},
	}
}

func TestBandFor(t *testing.T) {
	bands := DefaultCalibration().Bands

	tests := []struct {
		x0   float64
		want int
	}{
		{0, bandManufacturer},
		{57, bandManufacturer},
		{189.9, bandManufacturer},
		{190, bandModel}, // boundary belongs to the higher band
		{294.9, bandModel},
		{295, bandDesignator},
		{304, bandDesignator},
		{370, bandLegacy},
		{409.9, bandLegacy},
		{410, bandRecat},
		{423, bandRecat},
		{1000, bandRecat},
	}
	for _, tt := range tests {
		if got := bandFor(tt.x0, bands); got != tt.want {
			t.Errorf("bandFor(%v) = %d, want %d", tt.x0, got, tt.want)
		}
	}
}

func TestClusterRowsTolerance(t *testing.T) {
	// Words 3 units apart share a visual row; 4 units apart do not.
	merged := clusterRows([]Word{
		{Text: "a", X0: 10, Top: 100},
		{Text: "b", X0: 20, Top: 103},
	}, 3)
	if len(merged) != 1 {
		t.Fatalf("len(rows) = %d, want 1 for tops 3 apart", len(merged))
	}

	split := clusterRows([]Word{
		{Text: "a", X0: 10, Top: 100},
		{Text: "b", X0: 20, Top: 104},
	}, 3)
	if len(split) != 2 {
		t.Fatalf("len(rows) = %d, want 2 for tops 4 apart", len(split))
	}
}

func TestClusterRowsOrdersWords(t *testing.T) {
	// Input order is arbitrary; rows come back top-to-bottom and words
	// within a row left-to-right.
	rows := clusterRows([]Word{
		{Text: "right", X0: 300, Top: 200},
		{Text: "below", X0: 50, Top: 250},
		{Text: "left", X0: 50, Top: 201},
	}, 3)

	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0][0].Text != "left" || rows[0][1].Text != "right" {
		t.Errorf("first row = %q, %q, want left, right", rows[0][0].Text, rows[0][1].Text)
	}
	if rows[1][0].Text != "below" {
		t.Errorf("second row starts with %q, want below", rows[1][0].Text)
	}
}

func TestPositionRowsAcceptsDataRow(t *testing.T) {
	records := PositionRows(airbusRow(120), DefaultCalibration())

	want := []types.AircraftRecord{{
		Manufacturer: "Airbus",
		Model:        "A380-800",
		Designator:   "A388",
		LegacyWTC:    "J",
		RecatWTC:     "CAT-A",
	}}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("records = %+v, want %+v", records, want)
	}
}

func TestPositionRowsRejectsDenylisted(t *testing.T) {
	// Boilerplate rows are dropped regardless of otherwise valid fields.
	words := airbusRow(120)
	words = append(words,
		Word{Text: "EUROPEAN", X0: 60, Top: 300},
		Word{Text: "UNION", X0: 110, Top: 300},
		Word{Text: "AVIATION", X0: 200, Top: 300},
		Word{Text: "B744", X0: 304, Top: 300},
		Word{Text: "H", X0: 381, Top: 300},
		Word{Text: "CAT-B", X0: 423, Top: 300},
	)

	records := PositionRows(words, DefaultCalibration())
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1 (denylisted row dropped)", len(records))
	}
	if records[0].Designator != "A388" {
		t.Errorf("Designator = %q, want A388", records[0].Designator)
	}
}

func TestPositionRowsRejectsMissingFields(t *testing.T) {
	// No word lands in the model band: the row is dropped even though the
	// designator and WTC fields are valid.
	words := []Word{
		{Text: "Airbus", X0: 57, Top: 120},
		{Text: "A388", X0: 304, Top: 120},
		{Text: "J", X0: 381, Top: 120},
		{Text: "CAT-A", X0: 423, Top: 120},
	}

	if records := PositionRows(words, DefaultCalibration()); len(records) != 0 {
		t.Errorf("len(records) = %d, want 0", len(records))
	}
}

func TestPositionRowsRejectsRowsWithoutWTC(t *testing.T) {
	// Stray body text that happens to span all three name bands.
	words := []Word{
		{Text: "The", X0: 57, Top: 120},
		{Text: "following", X0: 198, Top: 120},
		{Text: "table", X0: 304, Top: 120},
		{Text: "lists", X0: 381, Top: 120},
		{Text: "types", X0: 423, Top: 120},
	}

	if records := PositionRows(words, DefaultCalibration()); len(records) != 0 {
		t.Errorf("len(records) = %d, want 0", len(records))
	}
}

func TestPositionRowsAcceptsLegacyOnly(t *testing.T) {
	// A recognizable legacy code alone is enough to accept the row.
	words := []Word{
		{Text: "Cessna", X0: 57, Top: 120},
		{Text: "172", X0: 198, Top: 120},
		{Text: "C172", X0: 304, Top: 120},
		{Text: "L", X0: 381, Top: 120},
	}

	records := PositionRows(words, DefaultCalibration())
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if records[0].LegacyWTC != "L" || records[0].RecatWTC != "" {
		t.Errorf("LegacyWTC, RecatWTC = %q, %q, want L, empty", records[0].LegacyWTC, records[0].RecatWTC)
	}
}

func TestPositionRowsTopToBottomOrder(t *testing.T) {
	var words []Word
	words = append(words, airbusRow(400)...)
	lower := []Word{
		{Text: "Boeing", X0: 57, Top: 100},
		{Text: "747-8", X0: 198, Top: 100},
		{Text: "B748", X0: 304, Top: 100},
		{Text: "H", X0: 381, Top: 100},
		{Text: "CAT-B", X0: 423, Top: 100},
	}
	words = append(words, lower...)

	records := PositionRows(words, DefaultCalibration())
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].Designator != "B748" || records[1].Designator != "A388" {
		t.Errorf("order = %q, %q, want B748 first (smaller top)", records[0].Designator, records[1].Designator)
	}
}

func TestPositionRowsJoinsMultiWordFields(t *testing.T) {
	words := []Word{
		{Text: "British", X0: 57, Top: 120},
		{Text: "Aerospace", X0: 100, Top: 121},
		{Text: "Jetstream", X0: 198, Top: 120},
		{Text: "41", X0: 260, Top: 120},
		{Text: "JS41", X0: 304, Top: 120},
		{Text: "M", X0: 381, Top: 120},
		{Text: "CAT-E", X0: 423, Top: 120},
	}

	records := PositionRows(words, DefaultCalibration())
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if records[0].Manufacturer != "British Aerospace" {
		t.Errorf("Manufacturer = %q, want %q", records[0].Manufacturer, "British Aerospace")
	}
	if records[0].Model != "Jetstream 41" {
		t.Errorf("Model = %q, want %q", records[0].Model, "Jetstream 41")
	}
}
