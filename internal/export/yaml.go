// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/recat-extract/pkg/types"
)

// WriteYAML writes the records as a YAML list to w.
// Per prd002-export R2.1.
func WriteYAML(w io.Writer, records []types.AircraftRecord) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("marshaling records: %w", err)
	}
	return nil
}

// WriteYAMLFile writes the records as a YAML list to a file at path.
func WriteYAMLFile(path string, records []types.AircraftRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteYAML(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
