package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/pageframe/docdetect/internal/detect"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "docdetect",
	Short:   "Locate document boundaries in photographs",
	Long: `docdetect finds the four corners of a physical document inside a
photograph and reports them in pixel coordinates, ready for perspective
correction by downstream tooling.`,
	Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if os.Getenv("DOCDETECT_LOG_LEVEL") == "debug" {
			verbose = true
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log pipeline stages to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newDetector builds a detector with a stage logger attached when verbose.
func newDetector() *detect.Detector {
	d := &detect.Detector{}
	if verbose {
		d.Observer = detect.ObserverFunc(func(stage string, candidates int) {
			log.Printf("stage %-14s candidates=%d", stage, candidates)
		})
	}
	return d
}
