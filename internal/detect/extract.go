package detect

import (
	"image"
	"sort"

	"github.com/pageframe/docdetect/internal/geometry"
	"github.com/pageframe/docdetect/internal/imaging"
)

const (
	// borderMargin is the band zeroed on every mask before contour
	// extraction, and the proximity band for the border-corner rule.
	borderMargin = 5

	// maxContours bounds the per-mask work: only the largest contours are
	// examined for quads.
	maxContours = 20

	// minComponent discards connected components too small to ever pass
	// the area ratio check, before any tracing happens.
	minComponent = 30

	minAreaRatio     = 0.05
	maxAreaRatio     = 0.85
	maxBorderCorners = 2
	maxCornerCosine  = 0.4
)

// approxTolerances are the polygon approximation tolerances tried per
// contour, as fractions of the contour perimeter. A tight pass catches
// clean outlines; the loose pass recovers quads whose sides bow slightly.
var approxTolerances = [2]float64{0.02, 0.04}

// workingQuad is a quad in working-image coordinates. It is unexported on
// purpose: working-space points must pass through mapToOriginal before they
// can leave this package, so the two coordinate spaces cannot be mixed.
type workingQuad [4]image.Point

// candidate is one validated quad proposal awaiting selection.
type candidate struct {
	quad      workingQuad
	area      float64
	edgeScore float64
}

// collectQuads extracts quad candidates from one binary mask and appends
// them to the pool. The mask is consumed: its border band is zeroed in
// place to stop contours from spanning the image frame.
func collectQuads(mask *image.Gray, w *imaging.Working, pool []candidate) []candidate {
	zeroBorder(mask, borderMargin)

	contours := outerContours(mask)
	sort.SliceStable(contours, func(i, j int) bool {
		return geometry.Area(contours[i]) > geometry.Area(contours[j])
	})
	if len(contours) > maxContours {
		contours = contours[:maxContours]
	}

	for _, eps := range approxTolerances {
		for _, contour := range contours {
			approx := geometry.ApproxPolygon(contour, eps*geometry.Perimeter(contour))
			if len(approx) != 4 {
				continue
			}
			quad := workingQuad{approx[0], approx[1], approx[2], approx[3]}
			area := geometry.Area(approx)
			if !validQuad(quad, area, w) {
				continue
			}
			pool = append(pool, candidate{
				quad:      quad,
				area:      area,
				edgeScore: edgeSupport(quad, w.Grad),
			})
		}
	}
	return pool
}

// validQuad applies the geometric sanity checks a quad must pass to become
// a candidate: plausible area relative to the image, convexity, at most two
// corners hugging the border, and near-orthogonal corners.
func validQuad(q workingQuad, area float64, w *imaging.Working) bool {
	imgArea := w.Area()
	if area < imgArea*minAreaRatio || area > imgArea*maxAreaRatio {
		return false
	}
	if !geometry.IsConvex(q[:]) {
		return false
	}

	borderCount := 0
	for _, p := range q {
		if p.X <= borderMargin || p.Y <= borderMargin ||
			p.X >= w.Width()-borderMargin-1 || p.Y >= w.Height()-borderMargin-1 {
			borderCount++
		}
	}
	if borderCount > maxBorderCorners {
		return false
	}

	return geometry.MaxCornerCosine([4]image.Point(q)) < maxCornerCosine
}

// zeroBorder clears a band of the given width along all four mask edges.
func zeroBorder(mask *image.Gray, band int) {
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()
	for y := 0; y < h; y++ {
		if y < band || y >= h-band {
			row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
			for i := range row {
				row[i] = 0
			}
			continue
		}
		for x := 0; x < band && x < w; x++ {
			mask.Pix[y*mask.Stride+x] = 0
		}
		for x := w - band; x < w; x++ {
			if x >= 0 {
				mask.Pix[y*mask.Stride+x] = 0
			}
		}
	}
}

// outerContours finds the outer boundary polyline of every foreground
// component in a binary mask. Components are discovered by flood fill in
// scan order, so each boundary trace starts from the component's topmost,
// leftmost pixel; interior holes are never traced.
func outerContours(mask *image.Gray) [][]image.Point {
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()
	visited := make([]bool, w*h)

	var contours [][]image.Point
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask.Pix[y*mask.Stride+x] == 0 || visited[y*w+x] {
				continue
			}
			size := floodFill(mask, visited, x, y)
			if size < minComponent {
				continue
			}
			contour := traceBoundary(mask, x, y)
			if len(contour) >= 4 {
				contours = append(contours, contour)
			}
		}
	}
	return contours
}

// floodFill marks an 8-connected foreground component as visited and
// returns its pixel count. Iterative, and pixels are marked when pushed so
// the stack never exceeds the component size.
func floodFill(mask *image.Gray, visited []bool, startX, startY int) int {
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()

	visited[startY*w+startX] = true
	stack := []image.Point{{X: startX, Y: startY}}
	size := 0
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := p.X+dx, p.Y+dy
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				if visited[ny*w+nx] || mask.Pix[ny*mask.Stride+nx] == 0 {
					continue
				}
				visited[ny*w+nx] = true
				stack = append(stack, image.Point{X: nx, Y: ny})
			}
		}
	}
	return size
}

// boundaryDirs enumerates the 8 neighbors clockwise starting east.
var boundaryDirs = [8]image.Point{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// traceBoundary walks the outer boundary of a component clockwise using
// Moore neighbor tracing. The start pixel must be the component's topmost,
// leftmost pixel. The walk is step-bounded as a hard stop against
// degenerate masks.
func traceBoundary(mask *image.Gray, startX, startY int) []image.Point {
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()
	fg := func(x, y int) bool {
		return x >= 0 && x < w && y >= 0 && y < h && mask.Pix[y*mask.Stride+x] != 0
	}

	start := image.Point{X: startX, Y: startY}
	contour := []image.Point{start}
	cur := start
	dir := 0 // treat the arrival at start as an eastward move

	maxSteps := 2*w*h + 8
	for step := 0; step < maxSteps; step++ {
		found := false
		for i := 0; i < 8; i++ {
			d := (dir + 6 + i) % 8 // resume from the left of the last move
			next := image.Point{X: cur.X + boundaryDirs[d].X, Y: cur.Y + boundaryDirs[d].Y}
			if fg(next.X, next.Y) {
				cur = next
				dir = d
				found = true
				break
			}
		}
		if !found {
			break // isolated pixel
		}
		if cur == start {
			break
		}
		contour = append(contour, cur)
	}
	return contour
}
