package geometry

import (
	"image"
	"math"
	"testing"
)

func TestArea(t *testing.T) {
	tests := []struct {
		name string
		poly []image.Point
		want float64
	}{
		{"unit square", []image.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, 1},
		{"10x20 rectangle", []image.Point{{0, 0}, {10, 0}, {10, 20}, {0, 20}}, 200},
		{"reversed winding", []image.Point{{0, 20}, {10, 20}, {10, 0}, {0, 0}}, 200},
		{"triangle", []image.Point{{0, 0}, {10, 0}, {0, 10}}, 50},
		{"degenerate", []image.Point{{0, 0}, {5, 5}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Area(tt.poly); got != tt.want {
				t.Errorf("Area: got %.1f, want %.1f", got, tt.want)
			}
		})
	}
}

func TestPerimeter(t *testing.T) {
	square := []image.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if got := Perimeter(square); got != 40 {
		t.Errorf("square perimeter: got %.1f, want 40", got)
	}

	// 3-4-5 triangle closes with the hypotenuse.
	tri := []image.Point{{0, 0}, {3, 0}, {3, 4}}
	if got := Perimeter(tri); math.Abs(got-12) > 1e-9 {
		t.Errorf("triangle perimeter: got %.3f, want 12", got)
	}
}

func TestIsConvex(t *testing.T) {
	tests := []struct {
		name string
		poly []image.Point
		want bool
	}{
		{"square", []image.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, true},
		{"rotated quad", []image.Point{{5, 0}, {10, 5}, {5, 10}, {0, 5}}, true},
		{"concave arrow", []image.Point{{0, 0}, {10, 0}, {5, 5}, {10, 10}}, false},
		{"too few points", []image.Point{{0, 0}, {1, 1}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConvex(tt.poly); got != tt.want {
				t.Errorf("IsConvex: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaxCornerCosine(t *testing.T) {
	// Axis-aligned rectangle: every corner is exactly orthogonal.
	rect := [4]image.Point{{0, 0}, {100, 0}, {100, 50}, {0, 50}}
	if got := MaxCornerCosine(rect); got > 0.01 {
		t.Errorf("rectangle corner cosine: got %.3f, want ~0", got)
	}

	// Heavily sheared quad has at least one sharp corner.
	sheared := [4]image.Point{{0, 0}, {100, 0}, {180, 50}, {80, 50}}
	if got := MaxCornerCosine(sheared); got < 0.4 {
		t.Errorf("sheared quad corner cosine: got %.3f, want >= 0.4", got)
	}
}

func TestOrderCorners(t *testing.T) {
	want := [4]image.Point{{10, 10}, {90, 12}, {92, 88}, {8, 86}}

	// Every rotation of the input must produce the same canonical order.
	perms := [][4]image.Point{
		{want[0], want[1], want[2], want[3]},
		{want[2], want[3], want[0], want[1]},
		{want[3], want[2], want[1], want[0]},
		{want[1], want[3], want[0], want[2]},
	}
	for i, in := range perms {
		got := OrderCorners(in)
		if got != want {
			t.Errorf("permutation %d: got %v, want %v", i, got, want)
		}
	}
}

func TestOrderCorners_SumDiffLaw(t *testing.T) {
	quad := [4]image.Point{{85, 90}, {10, 20}, {5, 95}, {80, 15}}
	got := OrderCorners(quad)

	for i := 1; i < 4; i++ {
		if got[i].X+got[i].Y < got[0].X+got[0].Y {
			t.Errorf("corner %d has smaller x+y than top-left", i)
		}
		if got[i].X+got[i].Y > got[2].X+got[2].Y {
			t.Errorf("corner %d has larger x+y than bottom-right", i)
		}
	}
}
