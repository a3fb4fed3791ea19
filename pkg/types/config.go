// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Mode selects the row reconstruction strategy.
// Per prd001-extraction R4.1. The two strategies are independent designs
// for the same document; they share no state.
type Mode string

const (
	// ModeTable reconstructs rows from library-detected table cells.
	ModeTable Mode = "table"

	// ModePosition reconstructs rows from raw word coordinates. This is
	// the more robust strategy and the default.
	ModePosition Mode = "position"
)

// ExportFormat identifies the export output target.
// Per prd002-export R3.1.
type ExportFormat string

const (
	ExportSQLite ExportFormat = "sqlite"
	ExportYAML   ExportFormat = "yaml"
)

// ColumnBands holds the left edges of the model, designator, legacy and
// recat columns in page coordinate units (points). A word belongs to the
// rightmost band whose edge is at or left of the word's own left edge;
// words left of Model belong to the manufacturer band.
// Per prd001-extraction R3.2.
type ColumnBands struct {
	Model      float64 `json:"model" yaml:"model"`
	Designator float64 `json:"designator" yaml:"designator"`
	Legacy     float64 `json:"legacy" yaml:"legacy"`
	Recat      float64 `json:"recat" yaml:"recat"`
}

// Calibration groups the document-specific layout constants used by
// Position-Mode: column band edges, the vertical clustering tolerance, and
// the boilerplate denylist. The defaults match the 2018 RECAT-EU reference
// table layout; other document revisions can be handled by editing a
// calibration file rather than the code.
// Per prd001-extraction R3.1-R3.4.
type Calibration struct {
	// RowTolerance is the maximum vertical distance, in points, between a
	// word and the top of its visual row. Must match the document's line
	// spacing.
	RowTolerance float64 `json:"row_tolerance" yaml:"row_tolerance"`

	// Bands are the column band edges.
	Bands ColumnBands `json:"bands" yaml:"bands"`

	// Denylist holds upper-case substrings that identify boilerplate rows
	// (agency names, page markers, column headers, signature text). A row
	// whose joined text contains any of them is dropped.
	Denylist []string `json:"denylist" yaml:"denylist"`
}
