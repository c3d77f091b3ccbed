package main

import (
	"fmt"
	"os"

	"github.com/hkoenig/stlmeta/internal/characterize"
	"github.com/hkoenig/stlmeta/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stlmeta",
	Short: "STL characterization tool for digital preservation pipelines",
	Long: `stlmeta characterizes STL (Standard Tessellation Language) files before
they are archived. It detects the ASCII or binary encoding, decodes the
triangle data, validates facet winding and coordinate signs, and emits a
fixed-schema XML metadata report for the host pipeline.`,
	Version: version.GetVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Exit code 1 is reserved for malformed STL input; a usage
		// error is not a characterization result.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(characterize.ExitFatal)
	}
}
