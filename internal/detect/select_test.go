package detect

import (
	"testing"
)

func quadAt(x0, y0, x1, y1 int) workingQuad {
	return workingQuad{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	}
}

func TestSelectBest_AreaWeighting(t *testing.T) {
	const imgArea = 1000.0

	// A small candidate with a sharp edge loses to a large candidate with
	// a moderate edge: 260*0.07 = 18.2 against 60*0.40 = 24.0.
	small := candidate{quad: quadAt(10, 10, 20, 17), area: 70, edgeScore: 260}
	large := candidate{quad: quadAt(5, 5, 45, 15), area: 400, edgeScore: 60}

	best := selectBest([]candidate{small, large}, imgArea)
	if best.quad != large.quad {
		t.Errorf("got %v, want the larger candidate", best.quad)
	}

	// Order in the pool must not matter for a strict winner.
	best = selectBest([]candidate{large, small}, imgArea)
	if best.quad != large.quad {
		t.Errorf("got %v, want the larger candidate", best.quad)
	}
}

func TestSelectBest_SharpEdgeOutweighsAreaGap(t *testing.T) {
	const imgArea = 1000.0

	small := candidate{quad: quadAt(10, 10, 20, 17), area: 70, edgeScore: 900}
	large := candidate{quad: quadAt(5, 5, 45, 15), area: 400, edgeScore: 60}

	best := selectBest([]candidate{small, large}, imgArea)
	if best.quad != small.quad {
		t.Errorf("got %v, want the sharper candidate", best.quad)
	}
}

func TestSelectBest_TieKeepsFirst(t *testing.T) {
	const imgArea = 1000.0

	first := candidate{quad: quadAt(0, 0, 10, 10), area: 100, edgeScore: 50}
	second := candidate{quad: quadAt(20, 20, 30, 30), area: 100, edgeScore: 50}

	best := selectBest([]candidate{first, second}, imgArea)
	if best.quad != first.quad {
		t.Errorf("got %v, want the first candidate on a tie", best.quad)
	}
}

func TestMapToOriginal(t *testing.T) {
	q := workingQuad{
		{X: 90, Y: 90},
		{X: 359, Y: 90},
		{X: 359, Y: 509},
		{X: 90, Y: 509},
	}

	got := mapToOriginal(q, 0.75)
	want := Quad{
		{X: 120, Y: 120},
		{X: 479, Y: 120},
		{X: 479, Y: 679},
		{X: 120, Y: 679},
	}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMapToOriginal_ReordersCorners(t *testing.T) {
	// Corners arrive in trace order; the output is always TL, TR, BR, BL.
	q := workingQuad{
		{X: 359, Y: 509},
		{X: 90, Y: 509},
		{X: 90, Y: 90},
		{X: 359, Y: 90},
	}

	got := mapToOriginal(q, 1.0)
	want := Quad{
		{X: 90, Y: 90},
		{X: 359, Y: 90},
		{X: 359, Y: 509},
		{X: 90, Y: 509},
	}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMapToOriginal_Identity(t *testing.T) {
	q := quadAt(10, 20, 110, 220)
	got := mapToOriginal(q, 1.0)
	if got != Quad(q) {
		t.Errorf("got %v, want %v", got, q)
	}
}
