package main

import (
	"log"
	"os"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Diagnostics go to stderr; stdout carries results only.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
