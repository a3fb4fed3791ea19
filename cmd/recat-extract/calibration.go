// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/recat-extract/internal/extract"
)

var calibrationCmd = &cobra.Command{
	Use:   "calibration",
	Short: "Manage layout calibration files",
	Long: `Calibration manages the document-specific layout constants used by
position-mode extraction: column band edges, the vertical row clustering
tolerance, and the boilerplate denylist.`,
}

var calibrationInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the built-in calibration to a YAML file for editing",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCalibrationInit,
}

func runCalibrationInit(cmd *cobra.Command, args []string) error {
	path := "calibration.yaml"
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", path)
	}

	if err := extract.WriteCalibration(path, extract.DefaultCalibration()); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Wrote default calibration to %s\n", path)
	return nil
}

func init() {
	calibrationCmd.AddCommand(calibrationInitCmd)
	rootCmd.AddCommand(calibrationCmd)
}
