// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/recat-extract/internal/export"
	"github.com/pdiddy/recat-extract/internal/extract"
	"github.com/pdiddy/recat-extract/internal/pdfsource"
	"github.com/pdiddy/recat-extract/pkg/types"
)

const (
	defaultInputPDF  = "recat-eu.pdf"
	defaultOutputCSV = "recat_eu_aircraft.csv"
)

var convertCmd = &cobra.Command{
	Use:   "convert [input.pdf] [output.csv]",
	Short: "Convert the reference PDF to a CSV file",
	Long: `Convert reads the reference PDF, reconstructs the aircraft table rows,
and writes them as CSV. Positional arguments default to recat-eu.pdf and
recat_eu_aircraft.csv in the working directory.

--mode selects the reconstruction strategy: "position" clusters raw words
by coordinates (default, more robust), "table" relies on the backend's
table detection.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("mode", string(types.ModePosition), "reconstruction strategy: position or table")
	convertCmd.Flags().String("calibration", "", "layout calibration YAML file (default: built-in)")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	pdfPath := defaultInputPDF
	csvPath := defaultOutputCSV
	if len(args) > 0 {
		pdfPath = args[0]
	}
	if len(args) > 1 {
		csvPath = args[1]
	}

	records, err := extractRecords(cmd, pdfPath)
	if err != nil {
		return err
	}

	n, err := export.WriteCSVFile(csvPath, records)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Converted %d aircraft entries to %s\n", n, csvPath)
	return nil
}

// extractRecords runs the extraction pipeline shared by convert and
// export: resolve mode and calibration from flags/config, open the PDF,
// reconstruct, close.
func extractRecords(cmd *cobra.Command, pdfPath string) ([]types.AircraftRecord, error) {
	mode, cal, err := extractionSetup(cmd)
	if err != nil {
		return nil, err
	}

	doc, err := pdfsource.Open(pdfPath)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	return extract.Run(doc, mode, cal, os.Stdout)
}

// extractionSetup resolves the strategy and calibration. The calibration
// path falls back from the flag to the config file / environment.
func extractionSetup(cmd *cobra.Command) (types.Mode, types.Calibration, error) {
	modeStr, _ := cmd.Flags().GetString("mode")
	mode := types.Mode(modeStr)
	switch mode {
	case types.ModeTable, types.ModePosition:
	default:
		return "", types.Calibration{}, fmt.Errorf("unknown mode %q: use position or table", modeStr)
	}

	calPath, _ := cmd.Flags().GetString("calibration")
	if calPath == "" {
		calPath = viper.GetString("calibration")
	}
	if calPath == "" {
		return mode, extract.DefaultCalibration(), nil
	}
	cal, err := extract.LoadCalibration(calPath)
	if err != nil {
		return "", types.Calibration{}, err
	}
	return mode, cal, nil
}
