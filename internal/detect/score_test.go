package detect

import (
	"testing"
)

func TestEdgeSupport(t *testing.T) {
	w := testWorking(t)

	// The scene's gray rectangle spans 40..159 x 40..109; a quad tracing
	// its boundary sits on the brightness step.
	aligned := quadAt(40, 40, 159, 109)
	onStep := edgeSupport(aligned, w.Grad)
	if onStep <= 100 {
		t.Errorf("aligned quad scored %.1f, want a strong gradient response", onStep)
	}

	// A quad strictly inside the rectangle samples only flat pixels.
	interior := quadAt(60, 60, 140, 90)
	if s := edgeSupport(interior, w.Grad); s != 0 {
		t.Errorf("interior quad scored %.1f, want 0", s)
	}

	if inner := edgeSupport(quadAt(50, 50, 150, 100), w.Grad); inner >= onStep {
		t.Errorf("offset quad scored %.1f, aligned scored %.1f", inner, onStep)
	}
}

func TestEdgeSupport_SkipsOutOfBounds(t *testing.T) {
	w := testWorking(t)

	// Half the quad hangs outside the image; its out-of-bounds samples
	// must be skipped, and the in-bounds step samples still count.
	straddling := quadAt(-60, 40, 159, 109)
	if s := edgeSupport(straddling, w.Grad); s <= 0 {
		t.Errorf("straddling quad scored %.1f, want > 0", s)
	}

	outside := quadAt(-200, -200, -100, -100)
	if s := edgeSupport(outside, w.Grad); s != 0 {
		t.Errorf("fully out-of-bounds quad scored %.1f, want 0", s)
	}
}

func TestEdgeSupport_ShortEdgesSampled(t *testing.T) {
	w := testWorking(t)

	// A tiny quad on the step still gets minEdgeSamples probes per edge.
	tiny := quadAt(40, 40, 44, 44)
	if s := edgeSupport(tiny, w.Grad); s <= 0 {
		t.Errorf("tiny quad on the step scored %.1f, want > 0", s)
	}
}
