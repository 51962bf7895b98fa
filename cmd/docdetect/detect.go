package main

import (
	"encoding/json"
	"fmt"
	"image"
	"os"

	"github.com/spf13/cobra"

	"github.com/pageframe/docdetect/internal/detect"
)

var detectOpts struct {
	InputPath   string
	JSONOutput  bool
	OverlayPath string
	Fallback    bool
}

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect the document boundary in a single image",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDetect()
	},
}

func init() {
	detectCmd.Flags().StringVarP(&detectOpts.InputPath, "input", "i", "", "Path to image (png, jpeg, gif)")
	detectCmd.Flags().BoolVar(&detectOpts.JSONOutput, "json", false, "Print the result as JSON")
	detectCmd.Flags().StringVar(&detectOpts.OverlayPath, "overlay", "", "Write a copy of the image with the quad outlined")
	detectCmd.Flags().BoolVar(&detectOpts.Fallback, "fallback", false, "On no detection, report a centered inset region instead of failing")
	detectCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(detectCmd)
}

// detectResult is the printable outcome for one image.
type detectResult struct {
	Path    string        `json:"path"`
	Found   bool          `json:"found"`
	Corners []image.Point `json:"corners,omitempty"`
}

func runDetect() error {
	img, err := loadImage(detectOpts.InputPath)
	if err != nil {
		return err
	}

	quad, found := newDetector().Detect(img)
	if !found && detectOpts.Fallback {
		quad = fallbackQuad(img)
	}

	result := detectResult{Path: detectOpts.InputPath, Found: found}
	if found || detectOpts.Fallback {
		result.Corners = quad[:]
	}

	if detectOpts.JSONOutput {
		enc := json.NewEncoder(os.Stdout)
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	} else if result.Corners != nil {
		for _, p := range result.Corners {
			fmt.Printf("%d,%d\n", p.X, p.Y)
		}
	} else {
		fmt.Println("no document found")
	}

	if detectOpts.OverlayPath != "" && result.Corners != nil {
		if err := saveOverlay(img, quad, detectOpts.OverlayPath); err != nil {
			return err
		}
	}
	return nil
}

// fallbackQuad is the caller-side default when nothing was detected: a
// centered rectangle inset by 10% on each side, for the user to adjust.
func fallbackQuad(img image.Image) detect.Quad {
	b := img.Bounds()
	insetX := b.Dx() / 10
	insetY := b.Dy() / 10
	return detect.Quad{
		{X: b.Min.X + insetX, Y: b.Min.Y + insetY},
		{X: b.Max.X - insetX, Y: b.Min.Y + insetY},
		{X: b.Max.X - insetX, Y: b.Max.Y - insetY},
		{X: b.Min.X + insetX, Y: b.Max.Y - insetY},
	}
}
