package geometry

import (
	"image"
	"math"
)

// ApproxPolygon reduces a closed contour to a simpler polygon using the
// Ramer-Douglas-Peucker algorithm. Vertices farther than epsilon from the
// simplified outline are kept; the relative order of surviving vertices is
// preserved.
//
// The closed contour is split at the vertex farthest from the first vertex,
// giving two open chains that are simplified independently. This mirrors how
// polygon approximation is normally done for closed curves and keeps the
// result independent of where the contour tracing happened to start.
func ApproxPolygon(contour []image.Point, epsilon float64) []image.Point {
	n := len(contour)
	if n <= 3 {
		out := make([]image.Point, n)
		copy(out, contour)
		return out
	}

	// Split point: vertex farthest from vertex 0.
	far := 0
	maxDist := 0.0
	for i := 1; i < n; i++ {
		dx := float64(contour[i].X - contour[0].X)
		dy := float64(contour[i].Y - contour[0].Y)
		if d := dx*dx + dy*dy; d > maxDist {
			maxDist = d
			far = i
		}
	}

	keep := make([]bool, n+1)
	keep[0] = true
	keep[far] = true
	simplifyChain(contour, 0, far, epsilon, keep)
	simplifyChain(contour, far, n, epsilon, keep) // index n wraps to vertex 0

	out := make([]image.Point, 0, 8)
	for i := 0; i < n; i++ {
		if keep[i] {
			out = append(out, contour[i])
		}
	}
	return out
}

// simplifyChain marks the vertices of contour[start..end] that survive
// Douglas-Peucker simplification. An end index equal to len(contour) refers
// to vertex 0, closing the polygon. Iterative to keep long noisy contours
// from deepening the call stack.
func simplifyChain(contour []image.Point, start, end int, epsilon float64, keep []bool) {
	type span struct{ a, b int }
	stack := []span{{start, end}}

	at := func(i int) image.Point {
		if i == len(contour) {
			return contour[0]
		}
		return contour[i]
	}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.b-s.a <= 1 {
			continue
		}

		p0 := at(s.a)
		p1 := at(s.b)
		// Line coefficients ax + by + c = 0 through p0-p1.
		a := float64(p1.Y - p0.Y)
		b := float64(p0.X - p1.X)
		c := float64(p0.Y*p1.X - p0.X*p1.Y)
		norm := math.Sqrt(a*a + b*b)
		if norm < 1e-10 {
			norm = 1
		}

		maxDist := 0.0
		maxIdx := s.a
		for i := s.a + 1; i < s.b; i++ {
			p := contour[i]
			d := math.Abs(a*float64(p.X)+b*float64(p.Y)+c) / norm
			if d > maxDist {
				maxDist = d
				maxIdx = i
			}
		}

		if maxDist > epsilon {
			keep[maxIdx] = true
			stack = append(stack, span{s.a, maxIdx}, span{maxIdx, s.b})
		}
	}
}
