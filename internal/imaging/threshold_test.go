package imaging

import (
	"image"
	"testing"
)

// bimodalGray builds an image whose left half is lo and right half hi.
func bimodalGray(width, height int, lo, hi uint8) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := lo
			if x >= width/2 {
				v = hi
			}
			g.Pix[y*g.Stride+x] = v
		}
	}
	return g
}

func TestOtsuLevel_Bimodal(t *testing.T) {
	g := bimodalGray(64, 64, 50, 200)

	level := OtsuLevel(g)
	if level < 50 || level >= 200 {
		t.Errorf("Otsu level %d does not separate the two modes", level)
	}
}

func TestBinarize(t *testing.T) {
	g := bimodalGray(32, 32, 50, 200)

	mask := Binarize(g, 100, false)
	if mask.GrayAt(2, 2).Y != 0 {
		t.Error("dark pixel should be background")
	}
	if mask.GrayAt(30, 2).Y != 255 {
		t.Error("bright pixel should be foreground")
	}

	inv := Binarize(g, 100, true)
	if inv.GrayAt(2, 2).Y != 255 {
		t.Error("inverted mask should flag dark pixels")
	}
	if inv.GrayAt(30, 2).Y != 0 {
		t.Error("inverted mask should drop bright pixels")
	}
}

func TestBinarize_AtLevel(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 4, 1))
	g.Pix[0], g.Pix[1], g.Pix[2], g.Pix[3] = 99, 100, 101, 255

	mask := Binarize(g, 100, false)
	want := []uint8{0, 255, 255, 255}
	for i, w := range want {
		if mask.Pix[i] != w {
			t.Errorf("pixel %d: got %d, want %d", i, mask.Pix[i], w)
		}
	}
}

func TestOtsuBinarize_StrictlyAbove(t *testing.T) {
	g := bimodalGray(64, 64, 50, 200)

	mask := OtsuBinarize(g, false)
	if mask.GrayAt(2, 2).Y != 0 {
		t.Error("lower mode must fall below the Otsu split")
	}
	if mask.GrayAt(62, 2).Y != 255 {
		t.Error("upper mode must sit above the Otsu split")
	}
}
