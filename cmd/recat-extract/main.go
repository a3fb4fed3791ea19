// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the recat-extract CLI.
// Implements: prd003-cli (command surface).
// See docs/ARCHITECTURE § Command-Line Interface.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the recat-extract CLI.
var rootCmd = &cobra.Command{
	Use:   "recat-extract",
	Short: "Convert the RECAT-EU wake turbulence reference PDF to structured data",
	Long: `recat-extract reads the EUROCONTROL/EASA RECAT-EU wake turbulence reference
table PDF and produces aircraft records (manufacturer, model, ICAO type
designator, legacy WTC, RECAT-EU WTC) as CSV, YAML, or a SQLite database.

Row reconstruction is heuristic and calibrated to the published document
layout; use the calibration and inspect subcommands when adapting the tool
to a revised document.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./recat-extract.yaml or ~/.config/recat-extract/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("recat-extract")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "recat-extract"))
		}
	}

	viper.SetEnvPrefix("RECAT_EXTRACT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
