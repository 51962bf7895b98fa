package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/segment"
)

// OtsuLevel computes a binarization threshold for a gray plane by maximizing
// the between-class variance of its intensity histogram (Otsu's method).
// This picks the split between two dominant intensity modes without manual
// tuning; a plane with a single mode degenerates to a threshold near that
// mode, which downstream validation then discards.
func OtsuLevel(g *image.Gray) uint8 {
	var hist [256]int
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	for y := 0; y < h; y++ {
		row := g.Pix[y*g.Stride : y*g.Stride+w]
		for _, v := range row {
			hist[v]++
		}
	}

	total := w * h
	if total == 0 {
		return 0
	}

	sumAll := 0.0
	for i, n := range hist {
		sumAll += float64(i) * float64(n)
	}

	var (
		sumBack    float64
		weightBack int
		bestVar    float64
		best       uint8
	)
	for t := 0; t < 256; t++ {
		weightBack += hist[t]
		if weightBack == 0 {
			continue
		}
		weightFore := total - weightBack
		if weightFore == 0 {
			break
		}
		sumBack += float64(t) * float64(hist[t])
		meanBack := sumBack / float64(weightBack)
		meanFore := (sumAll - sumBack) / float64(weightFore)
		diff := meanBack - meanFore
		between := float64(weightBack) * float64(weightFore) * diff * diff
		if between > bestVar {
			bestVar = between
			best = uint8(t)
		}
	}
	return best
}

// Binarize produces a 0/255 mask from a gray plane: pixels at or above
// level become foreground, or strictly below it when inverted.
func Binarize(g *image.Gray, level uint8, inverted bool) *image.Gray {
	mask := segment.Threshold(g, level)
	if inverted {
		for i, v := range mask.Pix {
			if v == 0 {
				mask.Pix[i] = 255
			} else {
				mask.Pix[i] = 0
			}
		}
	}
	return mask
}

// OtsuBinarize thresholds a plane at its Otsu level in the given polarity.
// The level itself belongs to the background class, so foreground is
// strictly above it.
func OtsuBinarize(g *image.Gray, inverted bool) *image.Gray {
	level := OtsuLevel(g)
	if level < 255 {
		level++
	}
	return Binarize(g, level, inverted)
}
