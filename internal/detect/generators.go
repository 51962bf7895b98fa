package detect

import (
	"image"
	"math"

	"github.com/pageframe/docdetect/internal/imaging"
)

// GeneratorKind identifies one mask-generation strategy. The set is closed;
// the driver iterates all kinds in a fixed order so detection stays
// deterministic.
type GeneratorKind int

const (
	// MultiChannel runs an edge detector plus evenly spaced binary
	// thresholds on each color channel of a lightly blurred image.
	MultiChannel GeneratorKind = iota
	// MorphGradient thresholds the morphological gradient (dilation minus
	// erosion) of the median-blurred grayscale at two structuring sizes.
	MorphGradient
	// Saturation thresholds the blurred HSV saturation plane in both
	// polarities; documents read as low-saturation against colored
	// backgrounds and vice versa.
	Saturation
	// ColorDistance estimates the background color from border pixels and
	// thresholds the per-pixel color distance from that estimate.
	ColorDistance
	// PerceptualEdges runs an edge detector over blurred CIE-Lab channels
	// at three sensitivities and merges the channel results.
	PerceptualEdges
	// ContrastEdges equalizes local contrast before edge detection so
	// boundaries survive in dim or washed-out regions.
	ContrastEdges
)

// Generators returns all strategies in their fixed execution order.
func Generators() []GeneratorKind {
	return []GeneratorKind{
		MultiChannel, MorphGradient, Saturation,
		ColorDistance, PerceptualEdges, ContrastEdges,
	}
}

// String names the strategy for observers and logs.
func (k GeneratorKind) String() string {
	switch k {
	case MultiChannel:
		return "multichannel"
	case MorphGradient:
		return "morphgradient"
	case Saturation:
		return "saturation"
	case ColorDistance:
		return "colordistance"
	case PerceptualEdges:
		return "perceptual"
	case ContrastEdges:
		return "contrast"
	}
	return "unknown"
}

// masks produces the strategy's binary masks from a working image. Masks are
// transient: consumed once by the extractor and discarded.
func (k GeneratorKind) masks(w *imaging.Working) []*image.Gray {
	switch k {
	case MultiChannel:
		return multiChannelMasks(w)
	case MorphGradient:
		return morphGradientMasks(w)
	case Saturation:
		return saturationMasks(w)
	case ColorDistance:
		return colorDistanceMasks(w)
	case PerceptualEdges:
		return perceptualMasks(w)
	case ContrastEdges:
		return contrastMasks(w)
	}
	return nil
}

// multiChannelMasks yields 7 masks per color channel: one Canny pass plus
// six binary thresholds at evenly spaced intensity levels. The pyramid blur
// beforehand knocks out fine texture that would fragment the contours.
func multiChannelMasks(w *imaging.Working) []*image.Gray {
	filtered := imaging.PyramidBlur(w.Image)
	masks := make([]*image.Gray, 0, 21)
	for ch := 0; ch < 3; ch++ {
		plane := imaging.Channel(filtered, ch)
		masks = append(masks, imaging.Dilate(imaging.Canny(plane, 20, 80), 1))
		for l := 1; l <= 6; l++ {
			masks = append(masks, imaging.Binarize(plane, uint8(l*255/7), false))
		}
	}
	return masks
}

func morphGradientMasks(w *imaging.Working) []*image.Gray {
	blurred := imaging.MedianBlur(imaging.Grayscale(w.Image), 3)
	masks := make([]*image.Gray, 0, 2)
	for _, radius := range []float64{1, 2} {
		grad := imaging.MorphGradient(blurred, radius)
		mask := imaging.OtsuBinarize(grad, false)
		masks = append(masks, imaging.Close(mask, 1, 2))
	}
	return masks
}

func saturationMasks(w *imaging.Working) []*image.Gray {
	sat := imaging.GaussianBlur(imaging.SaturationPlane(w.Image), 3)
	level := imaging.OtsuLevel(sat)
	masks := make([]*image.Gray, 0, 2)
	for _, inverted := range []bool{true, false} {
		mask := imaging.Binarize(sat, level, inverted)
		mask = imaging.Close(mask, 4, 3)
		mask = imaging.Open(mask, 2, 1)
		masks = append(masks, mask)
	}
	return masks
}

// colorDistanceMasks assumes the image border is mostly background, samples
// every other border pixel to estimate the background mean color, and
// thresholds each pixel's Euclidean distance from that mean.
func colorDistanceMasks(w *imaging.Working) []*image.Gray {
	img := w.Image
	width, height := w.Width(), w.Height()
	if width < 2 || height < 2 {
		return nil
	}

	var rSum, gSum, bSum float64
	n := 0
	sample := func(x, y int) {
		p := img.Pix[y*img.Stride+x*4:]
		rSum += float64(p[0])
		gSum += float64(p[1])
		bSum += float64(p[2])
		n++
	}
	for x := 0; x < width; x += 2 {
		sample(x, 0)
		sample(x, height-1)
	}
	for y := 1; y < height-1; y += 2 {
		sample(0, y)
		sample(width-1, y)
	}
	rMean := rSum / float64(n)
	gMean := gSum / float64(n)
	bMean := bSum / float64(n)

	dist := make([]float64, width*height)
	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < width; x++ {
			p := row[x*4:]
			dr := float64(p[0]) - rMean
			dg := float64(p[1]) - gMean
			db := float64(p[2]) - bMean
			dist[y*width+x] = math.Sqrt(dr*dr + dg*dg + db*db)
		}
	}

	plane := imaging.NormalizePlane(dist, width, height)
	mask := imaging.OtsuBinarize(plane, false)
	return []*image.Gray{imaging.Close(mask, 4, 3)}
}

func perceptualMasks(w *imaging.Working) []*image.Gray {
	l, a, b := imaging.LabPlanes(w.Image)
	l = imaging.GaussianBlur(l, 2)
	a = imaging.GaussianBlur(a, 2)
	b = imaging.GaussianBlur(b, 2)

	masks := make([]*image.Gray, 0, 3)
	for _, low := range []float64{10, 25, 45} {
		combined := orMasks(
			imaging.Canny(l, low, low*3),
			imaging.Canny(a, low, low*3),
			imaging.Canny(b, low, low*3),
		)
		masks = append(masks, imaging.Dilate(combined, 2))
	}
	return masks
}

func contrastMasks(w *imaging.Working) []*image.Gray {
	enhanced := imaging.EqualizeLocal(imaging.Grayscale(w.Image), 3.0, 8)
	blurred := imaging.GaussianBlur(enhanced, 2)

	masks := make([]*image.Gray, 0, 3)
	for _, low := range []float64{20, 40, 70} {
		edges := imaging.Canny(blurred, low, low*2.5)
		masks = append(masks, imaging.Dilate(edges, 2))
	}
	return masks
}

// orMasks merges binary masks: foreground wherever any input is foreground.
func orMasks(ms ...*image.Gray) *image.Gray {
	out := image.NewGray(ms[0].Bounds())
	for _, m := range ms {
		for i, v := range m.Pix {
			if v != 0 {
				out.Pix[i] = 255
			}
		}
	}
	return out
}
