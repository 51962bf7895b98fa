package detect

import (
	"math"

	"github.com/pageframe/docdetect/internal/imaging"
)

// minEdgeSamples guarantees even very short quad edges are probed densely
// enough to be meaningful.
const minEdgeSamples = 10

// edgeSupport measures how strongly the image's own gradients back a quad's
// boundary. Each of the four edges is sampled at a resolution proportional
// to its length and the gradient magnitude at every in-bounds sample is
// averaged into one scalar. Quads tracing a genuine brightness or color
// discontinuity score high; contours from thresholding artifacts sit on
// flat pixels and score near zero, no matter which strategy produced them.
func edgeSupport(q workingQuad, grad *imaging.GradientMap) float64 {
	total := 0.0
	count := 0
	for i := 0; i < 4; i++ {
		p1 := q[i]
		p2 := q[(i+1)%4]
		length := math.Hypot(float64(p2.X-p1.X), float64(p2.Y-p1.Y))
		samples := int(length)
		if samples < minEdgeSamples {
			samples = minEdgeSamples
		}
		for s := 0; s < samples; s++ {
			t := float64(s) / float64(samples)
			x := int(float64(p1.X) + t*float64(p2.X-p1.X))
			y := int(float64(p1.Y) + t*float64(p2.Y-p1.Y))
			if x < 0 || x >= grad.Width() || y < 0 || y >= grad.Height() {
				continue
			}
			total += float64(grad.At(x, y))
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}
