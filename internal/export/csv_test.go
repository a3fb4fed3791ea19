// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/recat-extract/pkg/types"
)

var sampleRecords = []types.AircraftRecord{
	{Manufacturer: "Airbus", Model: "A380-800", Designator: "A388", LegacyWTC: "J", RecatWTC: "CAT-A"},
	{Manufacturer: "Boeing", Model: "747-8", Designator: "B748", LegacyWTC: "H", RecatWTC: "CAT-B"},
}

func TestWriteCSVHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteCSV(&buf, nil)
	if err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if n != 0 {
		t.Errorf("n = %d, want 0", n)
	}

	want := "Manufacturer,Model,ICAO Type Designator,ICAO Legacy WTC,RECAT-EU WTC\n"
	if buf.String() != want {
		t.Errorf("output = %q, want header line only", buf.String())
	}
}

func TestWriteCSVRecords(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteCSV(&buf, sampleRecords)
	if err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
	if lines[1] != "Airbus,A380-800,A388,J,CAT-A" {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestWriteCSVQuotesEmbeddedDelimiters(t *testing.T) {
	records := []types.AircraftRecord{
		{Manufacturer: "Fairchild, Dornier", Model: "328JET", Designator: "J328", LegacyWTC: "M", RecatWTC: "CAT-E"},
	}

	var buf bytes.Buffer
	if _, err := WriteCSV(&buf, records); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	// The output stays machine-readable through the standard reader.
	rows, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	if err != nil {
		t.Fatalf("reading back CSV: %v", err)
	}
	if rows[1][0] != "Fairchild, Dornier" {
		t.Errorf("manufacturer = %q, want comma preserved", rows[1][0])
	}
}

func TestWriteCSVFileIdempotent(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.csv")
	second := filepath.Join(dir, "second.csv")

	if _, err := WriteCSVFile(first, sampleRecords); err != nil {
		t.Fatalf("WriteCSVFile: %v", err)
	}
	if _, err := WriteCSVFile(second, sampleRecords); err != nil {
		t.Fatalf("WriteCSVFile: %v", err)
	}

	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("same records should produce byte-identical CSV files")
	}
}
