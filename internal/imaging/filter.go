package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// GaussianBlur smooths a gray plane with a Gaussian kernel of the given
// radius.
func GaussianBlur(g *image.Gray, radius float64) *image.Gray {
	return Grayscale(blur.Gaussian(g, radius))
}

// MedianBlur replaces each pixel with the median of its neighborhood.
// Effective against salt-and-pepper noise while preserving step edges.
func MedianBlur(g *image.Gray, radius float64) *image.Gray {
	return Grayscale(effect.Median(g, radius))
}

// Dilate grows foreground regions of a plane by the given radius.
func Dilate(g *image.Gray, radius float64) *image.Gray {
	return Grayscale(effect.Dilate(g, radius))
}

// Erode shrinks foreground regions of a plane by the given radius.
func Erode(g *image.Gray, radius float64) *image.Gray {
	return Grayscale(effect.Erode(g, radius))
}

// Close performs the given number of dilations followed by the same number
// of erosions, sealing small gaps in a mask without changing region size.
func Close(g *image.Gray, radius float64, iterations int) *image.Gray {
	out := g
	for i := 0; i < iterations; i++ {
		out = Dilate(out, radius)
	}
	for i := 0; i < iterations; i++ {
		out = Erode(out, radius)
	}
	return out
}

// Open performs erosions followed by dilations, removing speckle smaller
// than the structuring radius.
func Open(g *image.Gray, radius float64, iterations int) *image.Gray {
	out := g
	for i := 0; i < iterations; i++ {
		out = Erode(out, radius)
	}
	for i := 0; i < iterations; i++ {
		out = Dilate(out, radius)
	}
	return out
}

// MorphGradient returns dilation minus erosion of a plane. Region interiors
// cancel out, leaving a bright band along intensity boundaries.
func MorphGradient(g *image.Gray, radius float64) *image.Gray {
	dilated := Dilate(g, radius)
	eroded := Erode(g, radius)
	out := image.NewGray(image.Rect(0, 0, g.Bounds().Dx(), g.Bounds().Dy()))
	for i := range out.Pix {
		d := dilated.Pix[i]
		e := eroded.Pix[i]
		if d > e {
			out.Pix[i] = d - e
		}
	}
	return out
}

// PyramidBlur suppresses fine detail by halving the image with box
// resampling and scaling it back up with linear interpolation, the cheap
// equivalent of one pyramid down/up round trip.
func PyramidBlur(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 2 || h < 2 {
		return img
	}
	down := imaging.Resize(img, w/2, h/2, imaging.Box)
	return clone.AsRGBA(imaging.Resize(down, w, h, imaging.Linear))
}
