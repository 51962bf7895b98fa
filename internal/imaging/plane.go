package imaging

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// Grayscale converts an image to a single luminance plane using the
// ITU-R BT.601 weights (0.299 R + 0.587 G + 0.114 B).
func Grayscale(img image.Image) *image.Gray {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))

	if rgba, ok := img.(*image.RGBA); ok {
		for y := 0; y < h; y++ {
			row := rgba.Pix[y*rgba.Stride:]
			for x := 0; x < w; x++ {
				p := row[x*4:]
				out.Pix[y*out.Stride+x] = uint8(0.299*float64(p[0]) + 0.587*float64(p[1]) + 0.114*float64(p[2]))
			}
		}
		return out
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			out.Pix[y*out.Stride+x] = uint8(0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(bl>>8))
		}
	}
	return out
}

// Channel extracts one color channel (0=R, 1=G, 2=B) as a gray plane.
func Channel(img *image.RGBA, ch int) *image.Gray {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			out.Pix[y*out.Stride+x] = row[x*4+ch]
		}
	}
	return out
}

// SaturationPlane converts the image to HSV and returns the saturation
// channel scaled to 0-255. Documents are typically near-achromatic, so
// saturation separates them from colored backgrounds in either polarity.
func SaturationPlane(img *image.RGBA) *image.Gray {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			p := row[x*4:]
			c := colorful.Color{
				R: float64(p[0]) / 255,
				G: float64(p[1]) / 255,
				B: float64(p[2]) / 255,
			}
			_, s, _ := c.Hsv()
			out.Pix[y*out.Stride+x] = uint8(s*255 + 0.5)
		}
	}
	return out
}

// LabPlanes converts the image to CIE-Lab and returns the three channels as
// gray planes. L is scaled from [0,1] to 0-255; the chroma axes a and b are
// centered on 128 so both signs survive quantization.
func LabPlanes(img *image.RGBA) (l, a, bb *image.Gray) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	l = image.NewGray(image.Rect(0, 0, w, h))
	a = image.NewGray(image.Rect(0, 0, w, h))
	bb = image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			p := row[x*4:]
			c := colorful.Color{
				R: float64(p[0]) / 255,
				G: float64(p[1]) / 255,
				B: float64(p[2]) / 255,
			}
			cl, ca, cb := c.Lab()
			i := y*l.Stride + x
			l.Pix[i] = clampByte(cl * 255)
			a.Pix[i] = clampByte(128 + ca*127)
			bb.Pix[i] = clampByte(128 + cb*127)
		}
	}
	return l, a, bb
}

// NormalizePlane rescales a float plane to the full 0-255 range. A constant
// plane maps to all zeros.
func NormalizePlane(values []float64, width, height int) *image.Gray {
	out := image.NewGray(image.Rect(0, 0, width, height))
	if len(values) == 0 {
		return out
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi <= lo {
		return out
	}
	scale := 255 / (hi - lo)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out.Pix[y*out.Stride+x] = uint8((values[y*width+x]-lo)*scale + 0.5)
		}
	}
	return out
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
