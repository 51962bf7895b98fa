package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan [paths...]",
	Short: "Detect document boundaries in a batch of images",
	Long: `Scan runs detection over every image file given, expanding directories
one level deep, and prints one JSON result per line to stdout.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScan(args)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(paths []string) error {
	files, err := expandInputs(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no image files found")
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription("scanning"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
	)

	detector := newDetector()
	enc := json.NewEncoder(os.Stdout)
	failures := 0
	for _, path := range files {
		img, err := loadImage(path)
		if err != nil {
			log.Printf("skipping %s: %v", path, err)
			failures++
			bar.Add(1)
			continue
		}

		quad, found := detector.Detect(img)
		result := detectResult{Path: path, Found: found}
		if found {
			result.Corners = quad[:]
		}
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		bar.Add(1)
	}
	fmt.Fprintln(os.Stderr)

	if failures > 0 {
		return fmt.Errorf("%d of %d files could not be read", failures, len(files))
	}
	return nil
}

// expandInputs resolves the given paths to a flat list of image files,
// listing directories one level deep.
func expandInputs(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", path, err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if isImageFile(e.Name()) {
				files = append(files, filepath.Join(path, e.Name()))
			}
		}
	}
	return files, nil
}

func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif":
		return true
	}
	return false
}
