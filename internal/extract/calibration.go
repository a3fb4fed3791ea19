// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/recat-extract/pkg/types"
)

// DefaultCalibration returns the layout constants calibrated against the
// published RECAT-EU reference table. Operators re-calibrating for another
// document revision should start from `recat-extract calibration init`
// and edit the resulting file.
// Per prd001-extraction R3.1.
func DefaultCalibration() types.Calibration {
	return types.Calibration{
		RowTolerance: 3,
		Bands: types.ColumnBands{
			Model:      190,
			Designator: 295,
			Legacy:     370,
			Recat:      410,
		},
		Denylist: []string{
			"EUROPEAN UNION",
			"AVIATION SAFETY AGENCY",
			"EUROCONTROL",
			"RECAT-EU",
			"WAKE TURBULENCE",
			"MANUFACTURER",
			"TYPE DESIGNATOR",
			"LEGACY WTC",
			"PAGE ",
			"EDITION",
			"DATE OF ISSUE",
			"APPROVED BY",
			"SIGNATURE",
		},
	}
}

// LoadCalibration reads a calibration YAML file and validates it. Denylist
// phrases are upper-cased on load so matching stays case-insensitive
// regardless of how the file was written.
func LoadCalibration(path string) (types.Calibration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Calibration{}, fmt.Errorf("reading calibration file: %w", err)
	}
	var cal types.Calibration
	if err := yaml.Unmarshal(data, &cal); err != nil {
		return types.Calibration{}, fmt.Errorf("parsing calibration file: %w", err)
	}
	if err := ValidateCalibration(cal); err != nil {
		return types.Calibration{}, fmt.Errorf("invalid calibration %s: %w", path, err)
	}
	for i, phrase := range cal.Denylist {
		cal.Denylist[i] = strings.ToUpper(phrase)
	}
	return cal, nil
}

// WriteCalibration saves a calibration to a YAML file.
func WriteCalibration(path string, cal types.Calibration) error {
	data, err := yaml.Marshal(&cal)
	if err != nil {
		return fmt.Errorf("marshaling calibration: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ValidateCalibration checks that the tolerance is positive and the band
// edges are strictly increasing left to right.
func ValidateCalibration(cal types.Calibration) error {
	if cal.RowTolerance <= 0 {
		return fmt.Errorf("row_tolerance must be positive, got %v", cal.RowTolerance)
	}
	b := cal.Bands
	if b.Model <= 0 || b.Designator <= b.Model || b.Legacy <= b.Designator || b.Recat <= b.Legacy {
		return fmt.Errorf("band edges must increase left to right: model=%v designator=%v legacy=%v recat=%v",
			b.Model, b.Designator, b.Legacy, b.Recat)
	}
	return nil
}
