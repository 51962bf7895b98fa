package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	"github.com/disintegration/imaging"

	"github.com/pageframe/docdetect/internal/detect"
)

// loadImage decodes a PNG, JPEG, or GIF file into memory.
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// saveOverlay writes a copy of the image with the detected quad outlined.
func saveOverlay(img image.Image, quad detect.Quad, path string) error {
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)

	lineColor := color.RGBA{R: 255, A: 255}
	for i := 0; i < 4; i++ {
		p1 := quad[i]
		p2 := quad[(i+1)%4]
		drawLine(out, p1.X, p1.Y, p2.X, p2.Y, lineColor)
	}

	if err := imaging.Save(out, path); err != nil {
		return fmt.Errorf("failed to save overlay: %w", err)
	}
	return nil
}

// drawLine rasterizes a line segment with Bresenham's algorithm.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, clr color.Color) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	errTerm := dx - dy

	bounds := img.Bounds()
	for {
		if x0 >= bounds.Min.X && x0 < bounds.Max.X && y0 >= bounds.Min.Y && y0 < bounds.Max.Y {
			img.Set(x0, y0, clr)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * errTerm
		if e2 > -dy {
			errTerm -= dy
			x0 += sx
		}
		if e2 < dx {
			errTerm += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
