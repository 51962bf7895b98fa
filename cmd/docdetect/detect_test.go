package main

import (
	"image"
	"image/color"
	"testing"
)

func TestFallbackQuad(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 600, 800))

	quad := fallbackQuad(img)
	want := [4]image.Point{
		{X: 60, Y: 80},
		{X: 540, Y: 80},
		{X: 540, Y: 720},
		{X: 60, Y: 720},
	}
	for i := range want {
		if quad[i] != want[i] {
			t.Errorf("corner %d: got %v, want %v", i, quad[i], want[i])
		}
	}
}

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"page.png", true},
		{"scan.JPG", true},
		{"photo.jpeg", true},
		{"anim.gif", true},
		{"notes.txt", false},
		{"page.png.bak", false},
	}
	for _, tt := range tests {
		if got := isImageFile(tt.name); got != tt.want {
			t.Errorf("isImageFile(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDrawLine(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	red := color.RGBA{R: 255, A: 255}

	drawLine(img, 2, 5, 17, 5, red)
	for x := 2; x <= 17; x++ {
		if img.RGBAAt(x, 5) != red {
			t.Errorf("pixel (%d,5) not drawn", x)
		}
	}

	drawLine(img, 3, 3, 12, 12, red)
	for i := 3; i <= 12; i++ {
		if img.RGBAAt(i, i) != red {
			t.Errorf("diagonal pixel (%d,%d) not drawn", i, i)
		}
	}
}
