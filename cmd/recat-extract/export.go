// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/recat-extract/internal/export"
	"github.com/pdiddy/recat-extract/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export [input.pdf]",
	Short: "Extract the reference table into a SQLite database or YAML file",
	Long: `Export runs the same extraction as convert but writes the records to a
SQLite database (default) or a YAML list, for consumers that join the
reference data against live traffic instead of reading CSV.

A SQLite re-export replaces the previous contents of the aircraft table.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("format", string(types.ExportSQLite), "export format: sqlite or yaml")
	exportCmd.Flags().String("out", "", "output path (default: recat_eu_aircraft.db or recat_eu_aircraft.yaml)")
	exportCmd.Flags().String("mode", string(types.ModePosition), "reconstruction strategy: position or table")
	exportCmd.Flags().String("calibration", "", "layout calibration YAML file (default: built-in)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	pdfPath := defaultInputPDF
	if len(args) > 0 {
		pdfPath = args[0]
	}

	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")

	records, err := extractRecords(cmd, pdfPath)
	if err != nil {
		return err
	}

	switch types.ExportFormat(format) {
	case types.ExportSQLite:
		if out == "" {
			out = "recat_eu_aircraft.db"
		}
		store, err := export.NewStore(out)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Replace(records); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Exported %d aircraft entries to %s\n", len(records), out)
	case types.ExportYAML:
		if out == "" {
			out = "recat_eu_aircraft.yaml"
		}
		if err := export.WriteYAMLFile(out, records); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Exported %d aircraft entries to %s\n", len(records), out)
	default:
		return fmt.Errorf("unsupported format %q: use sqlite or yaml", format)
	}

	return nil
}
