package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hkoenig/stlmeta/internal/characterize"
	"github.com/hkoenig/stlmeta/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	watchConfigPath string
	watchDebounce   time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch an ingest directory and characterize arriving STL files",
	Long: `Watch a hot folder and characterize every STL file that is created or
written in it. The XML report is written next to the source file. Each
file is handled independently; one malformed file does not stop the
watcher.`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchConfigPath, "config", "", "Path to the stlmeta config file")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "Quiet interval before a changed file is characterized")
}

func runWatch(cmd *cobra.Command, args []string) {
	dir := args[0]

	cfg, err := characterize.Load(watchConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(characterize.ExitFatal)
	}

	w, err := watcher.New(dir, watchDebounce, func(path string) {
		out, err := characterize.RunXML(path, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error characterizing %s: %v\n", path, err)
			return
		}

		reportPath := path + cfg.ReportSuffix
		if err := os.WriteFile(reportPath, out, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report for %s: %v\n", path, err)
			return
		}
		fmt.Fprintf(os.Stderr, "Characterized %s -> %s\n", path, reportPath)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(characterize.ExitFatal)
	}
	defer w.Close()

	w.Start()
	fmt.Fprintf(os.Stderr, "Watching %s for STL files (Ctrl-C to stop)\n", dir)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}
