package imaging

import (
	"image"
	"testing"
)

func countForeground(g *image.Gray) int {
	n := 0
	for _, p := range g.Pix {
		if p != 0 {
			n++
		}
	}
	return n
}

func TestCanny_Uniform(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 50, 50))
	for i := range g.Pix {
		g.Pix[i] = 120
	}

	edges := Canny(g, 20, 80)
	if n := countForeground(edges); n != 0 {
		t.Errorf("uniform image produced %d edge pixels, want 0", n)
	}
}

func TestCanny_Step(t *testing.T) {
	g := bimodalGray(60, 60, 30, 220)

	edges := Canny(g, 20, 80)
	if countForeground(edges) == 0 {
		t.Fatal("step image produced no edge pixels")
	}

	// The edge response must stay within a few pixels of the step; the
	// Gaussian smoothing widens it slightly.
	for y := 5; y < 55; y++ {
		for x := 0; x < 60; x++ {
			if edges.GrayAt(x, y).Y == 0 {
				continue
			}
			if x < 60/2-4 || x > 60/2+4 {
				t.Fatalf("edge pixel at (%d,%d) far from the step", x, y)
			}
		}
	}
}

func TestCanny_WeakEdgesSuppressed(t *testing.T) {
	// A 30->40 step is below the high threshold everywhere.
	g := bimodalGray(60, 60, 30, 40)

	edges := Canny(g, 60, 200)
	if n := countForeground(edges); n != 0 {
		t.Errorf("weak step produced %d edge pixels, want 0", n)
	}
}
