package detect

import (
	"image"
	"math"

	"github.com/pageframe/docdetect/internal/geometry"
	"github.com/pageframe/docdetect/internal/imaging"
)

// Quad is a document boundary as four corners in original-image pixel
// coordinates, ordered top-left, top-right, bottom-right, bottom-left.
type Quad [4]image.Point

// Observer receives progress callbacks from inside a detection call. The
// stage name is a GeneratorKind string for generator stages and "select"
// for the final fusion step; candidates is the cumulative pool size after
// the stage. Implementations must not block; they run on the calling
// goroutine.
type Observer interface {
	StageCompleted(stage string, candidates int)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(stage string, candidates int)

// StageCompleted calls f.
func (f ObserverFunc) StageCompleted(stage string, candidates int) { f(stage, candidates) }

// Detector runs the detection pipeline. The zero value is ready to use;
// set Observer for stage visibility. A Detector holds no state between
// calls and is safe for concurrent use from multiple goroutines.
type Detector struct {
	Observer Observer
}

// Detect locates the document boundary in an image using the package-level
// default Detector.
func Detect(img image.Image) (Quad, bool) {
	var d Detector
	return d.Detect(img)
}

// Detect runs every generator strategy over the working-scale image, pools
// all validated quad candidates, and returns the best one mapped back to
// original-image coordinates. The second return value is false when no
// candidate survived validation, which is the normal outcome for frames
// with no document in view; callers should fall back to a default region
// rather than treat it as an error.
func (d *Detector) Detect(img image.Image) (Quad, bool) {
	w := imaging.Prepare(img)

	pool := make([]candidate, 0, 64)
	for _, kind := range Generators() {
		for _, mask := range kind.masks(w) {
			pool = collectQuads(mask, w, pool)
		}
		d.stageCompleted(kind.String(), len(pool))
	}

	if len(pool) == 0 {
		d.stageCompleted("select", 0)
		return Quad{}, false
	}

	best := selectBest(pool, w.Area())
	d.stageCompleted("select", len(pool))
	return mapToOriginal(best.quad, w.Scale), true
}

// selectBest re-weights every candidate's edge score by its area ratio and
// returns the maximum. The linear area weighting deliberately favors larger
// quads while letting edge quality break near-ties: a small sharp false
// positive only beats a large genuine boundary if its edge strength
// outweighs the full area gap. Ties go to the earliest candidate.
func selectBest(pool []candidate, imgArea float64) candidate {
	best := pool[0]
	bestScore := best.edgeScore * (best.area / imgArea)
	for _, c := range pool[1:] {
		score := c.edgeScore * (c.area / imgArea)
		if score > bestScore {
			best = c
			bestScore = score
		}
	}
	return best
}

// mapToOriginal rescales a working-space quad back to original-image
// coordinates and canonicalizes the corner order. This is the only way a
// working-space point leaves the package.
func mapToOriginal(q workingQuad, scale float64) Quad {
	var pts [4]image.Point
	for i, p := range q {
		pts[i] = image.Point{
			X: int(math.Round(float64(p.X) / scale)),
			Y: int(math.Round(float64(p.Y) / scale)),
		}
	}
	return Quad(geometry.OrderCorners(pts))
}

func (d *Detector) stageCompleted(stage string, candidates int) {
	if d.Observer != nil {
		d.Observer.StageCompleted(stage, candidates)
	}
}
