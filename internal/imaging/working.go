package imaging

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/clone"
	"github.com/disintegration/imaging"
)

// WorkingTarget is the upper bound on the longer side of a working image.
// Detection quality plateaus well below typical camera resolutions, so all
// pipeline work happens at this scale.
const WorkingTarget = 600

// Working is an input image normalized for detection: downscaled so its
// longer side is at most WorkingTarget, converted to a canonical RGBA
// layout, and paired with a precomputed gradient-magnitude map.
//
// A Working exists only for the duration of one detection call. The scale
// factor maps original coordinates into working coordinates (working =
// original * Scale); dividing by it maps a detected quad back out.
type Working struct {
	Image *image.RGBA
	Scale float64
	Grad  *GradientMap
}

// Prepare builds a Working from an arbitrary input image. Images already
// within the size bound are not scaled up. Downscaling uses box resampling,
// which area-averages source pixels and so keeps hard edges unambiguous at
// the working scale.
func Prepare(src image.Image) *Working {
	b := src.Bounds()
	long := b.Dx()
	if b.Dy() > long {
		long = b.Dy()
	}

	scale := 1.0
	var rgba *image.RGBA
	if long > WorkingTarget {
		scale = float64(WorkingTarget) / float64(long)
		w := int(math.Round(float64(b.Dx()) * scale))
		h := int(math.Round(float64(b.Dy()) * scale))
		rgba = clone.AsRGBA(imaging.Resize(src, w, h, imaging.Box))
	} else {
		rgba = clone.AsRGBA(src)
	}

	return &Working{
		Image: rgba,
		Scale: scale,
		Grad:  NewGradientMap(Grayscale(rgba)),
	}
}

// Width returns the working image width in pixels.
func (w *Working) Width() int { return w.Image.Bounds().Dx() }

// Height returns the working image height in pixels.
func (w *Working) Height() int { return w.Image.Bounds().Dy() }

// Area returns the working image area in square pixels.
func (w *Working) Area() float64 { return float64(w.Width() * w.Height()) }

// GradientMap holds the per-pixel gradient magnitude of a grayscale plane.
// It is computed once per detection call and shared read-only by every
// scoring step; nothing may mutate it after construction.
type GradientMap struct {
	width  int
	height int
	mag    []float32
}

// NewGradientMap computes Sobel x/y first derivatives of the plane and
// combines them as the Euclidean magnitude per pixel. Border handling
// replicates edge pixels.
func NewGradientMap(gray *image.Gray) *GradientMap {
	w := gray.Bounds().Dx()
	h := gray.Bounds().Dy()
	m := &GradientMap{width: w, height: h, mag: make([]float32, w*h)}

	at := func(x, y int) float64 {
		if x < 0 {
			x = 0
		} else if x >= w {
			x = w - 1
		}
		if y < 0 {
			y = 0
		} else if y >= h {
			y = h - 1
		}
		return float64(gray.Pix[y*gray.Stride+x])
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gx := -at(x-1, y-1) + at(x+1, y-1) +
				-2*at(x-1, y) + 2*at(x+1, y) +
				-at(x-1, y+1) + at(x+1, y+1)
			gy := -at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1) +
				at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1)
			m.mag[y*w+x] = float32(math.Sqrt(gx*gx + gy*gy))
		}
	}
	return m
}

// Width returns the map width in pixels.
func (m *GradientMap) Width() int { return m.width }

// Height returns the map height in pixels.
func (m *GradientMap) Height() int { return m.height }

// At returns the gradient magnitude at (x, y). Coordinates outside the map
// return zero so samplers can probe freely.
func (m *GradientMap) At(x, y int) float32 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.mag[y*m.width+x]
}
