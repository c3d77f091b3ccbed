package main

import (
	"fmt"
	"os"

	"github.com/hkoenig/stlmeta/internal/characterize"
	"github.com/spf13/cobra"
)

var (
	fileFullName  string
	configPath    string
	schemaVersion int
	extended      bool
)

var characterizeCmd = &cobra.Command{
	Use:   "characterize [file]",
	Short: "Produce the XML characterization report for an STL file",
	Long: `Characterize one STL file and write the XML metadata report to standard
output. Diagnostics go to standard error. Exit codes: 0 on success, 1 for
a malformed STL file, 255 for an unreadable file or unexpected defect.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runCharacterize,
}

func init() {
	rootCmd.AddCommand(characterizeCmd)

	characterizeCmd.Flags().StringVar(&fileFullName, "file-full-name", "", "Full path of the file to characterize (host pipeline flag form)")
	characterizeCmd.Flags().StringVar(&configPath, "config", "", "Path to the stlmeta config file")
	characterizeCmd.Flags().IntVar(&schemaVersion, "schema", 0, "Report schema revision, 1 or 2 (overrides the config)")
	characterizeCmd.Flags().BoolVar(&extended, "extended", false, "Run the extended isolated-triangle check (overrides the config)")
}

func runCharacterize(cmd *cobra.Command, args []string) {
	path := fileFullName
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: no input file; pass a path or --file-full-name=<path>")
		os.Exit(characterize.ExitFatal)
	}

	cfg, err := characterize.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(characterize.ExitFatal)
	}
	if cmd.Flags().Changed("schema") {
		if schemaVersion != 1 && schemaVersion != 2 {
			fmt.Fprintf(os.Stderr, "Error: unsupported schema revision %d\n", schemaVersion)
			os.Exit(characterize.ExitFatal)
		}
		cfg.SchemaVersion = schemaVersion
	}
	if cmd.Flags().Changed("extended") {
		cfg.ExtendedChecks = extended
	}

	out, err := characterize.RunXML(path, cfg)
	if err != nil {
		characterize.WriteFailureNote(os.Stderr, err)
		os.Exit(characterize.ExitCode(err))
	}

	os.Stdout.Write(out)
}
