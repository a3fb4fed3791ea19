// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the record and configuration types shared between the
// extraction stages and the CLI.
package types

// AircraftRecord is one row of the RECAT-EU reference table: an aircraft
// type with its legacy and RECAT-EU wake turbulence categories.
// Per prd001-extraction R1.1. All fields are free text; records are built
// once per accepted row and never mutated.
type AircraftRecord struct {
	// Manufacturer is the airframe manufacturer (e.g. "Airbus").
	Manufacturer string `json:"manufacturer" yaml:"manufacturer"`

	// Model is the aircraft model designation (e.g. "A380-800").
	Model string `json:"model" yaml:"model"`

	// Designator is the ICAO type designator (e.g. "A388").
	Designator string `json:"designator" yaml:"designator"`

	// LegacyWTC is the legacy wake turbulence category: L, M, H or J.
	// A trailing "?" marks a value the classifier could not verify.
	LegacyWTC string `json:"legacy_wtc" yaml:"legacy_wtc"`

	// RecatWTC is the RECAT-EU category: CAT-A..CAT-F, Special, TBC or None.
	// A trailing "?" marks a value the classifier could not verify.
	RecatWTC string `json:"recat_wtc" yaml:"recat_wtc"`
}
