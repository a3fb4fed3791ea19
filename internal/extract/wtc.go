// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "strings"

// IsRecatValue reports whether val looks like a RECAT-EU category code:
// CAT-A through CAT-F, or one of the Special/TBC/None markers the table
// uses where no category is assigned. Matching is case-insensitive and
// ignores surrounding whitespace.
// Per prd001-extraction R2.1.
func IsRecatValue(val string) bool {
	v := strings.ToUpper(strings.TrimSpace(val))
	if v == "" {
		return false
	}
	if strings.HasPrefix(v, "CAT-") {
		return true
	}
	switch v {
	case "SPECIAL", "TBC", "NONE":
		return true
	}
	return false
}

// IsLegacyValue reports whether val is a legacy WTC code. Matching is
// strict: exactly L, M, H or J (J is used for the A380 class),
// case-insensitive.
// Per prd001-extraction R2.2.
func IsLegacyValue(val string) bool {
	switch strings.ToUpper(strings.TrimSpace(val)) {
	case "L", "M", "H", "J":
		return true
	}
	return false
}

// ClassifyWTC assigns the two candidate WTC cells of a table row to the
// legacy and RECAT-EU fields. The column order in the source document is
// not stable, so assignment cascades through progressively weaker checks:
//
//  1. exactly one candidate is a RECAT value and the other a legacy value,
//     in either order;
//  2. a candidate contains the literal "CAT-" substring, which only RECAT
//     values do;
//  3. a candidate passes the strict legacy check;
//  4. neither looks standard: keep the raw order (first legacy, second
//     recat) and append "?" to both so downstream review can find them.
//
// Per prd001-extraction R2.3-R2.4.
func ClassifyWTC(wtc1, wtc2 string) (legacy, recat string) {
	switch {
	case IsRecatValue(wtc1) && IsLegacyValue(wtc2):
		return wtc2, wtc1
	case IsLegacyValue(wtc1) && IsRecatValue(wtc2):
		return wtc1, wtc2
	case strings.Contains(wtc1, "CAT-"):
		return wtc2, wtc1
	case strings.Contains(wtc2, "CAT-"):
		return wtc1, wtc2
	case IsLegacyValue(wtc1):
		return wtc1, wtc2
	case IsLegacyValue(wtc2):
		return wtc2, wtc1
	}
	// Neither candidate is recognizable. Flag rather than drop: the row
	// carried something in both cells, and a marked guess is more useful
	// to a reviewer than a silent omission.
	return wtc1 + "?", wtc2 + "?"
}
