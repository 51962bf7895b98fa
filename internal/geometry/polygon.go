package geometry

import (
	"image"
	"math"
)

// Area returns the area enclosed by a closed polygon using the shoelace
// formula. The result is always non-negative regardless of winding order.
func Area(poly []image.Point) float64 {
	n := len(poly)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += float64(poly[i].X*poly[j].Y - poly[j].X*poly[i].Y)
	}
	return math.Abs(sum) / 2
}

// Perimeter returns the closed arc length of the polygon.
func Perimeter(poly []image.Point) float64 {
	n := len(poly)
	if n < 2 {
		return 0
	}
	length := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		dx := float64(poly[j].X - poly[i].X)
		dy := float64(poly[j].Y - poly[i].Y)
		length += math.Sqrt(dx*dx + dy*dy)
	}
	return length
}

// IsConvex reports whether the closed polygon is convex. All cross products
// of consecutive edge pairs must share one sign; a zero cross (collinear
// vertices) does not flip the verdict on its own.
func IsConvex(poly []image.Point) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	sign := 0
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		c := poly[(i+2)%n]
		cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
		if cross == 0 {
			continue
		}
		s := 1
		if cross < 0 {
			s = -1
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			return false
		}
	}
	return true
}

// CornerCosine returns the cosine of the angle at corner p0 formed by the
// rays p0->p1 and p0->p2. Values near zero mean a near-right angle.
func CornerCosine(p1, p2, p0 image.Point) float64 {
	dx1 := float64(p1.X - p0.X)
	dy1 := float64(p1.Y - p0.Y)
	dx2 := float64(p2.X - p0.X)
	dy2 := float64(p2.Y - p0.Y)
	return (dx1*dx2 + dy1*dy2) /
		math.Sqrt((dx1*dx1+dy1*dy1)*(dx2*dx2+dy2*dy2)+1e-10)
}

// MaxCornerCosine returns the largest absolute corner cosine over the four
// corners of a quad. A low maximum means every corner is close to orthogonal.
func MaxCornerCosine(quad [4]image.Point) float64 {
	maxCos := 0.0
	for j := 2; j < 6; j++ {
		c := math.Abs(CornerCosine(quad[j%4], quad[(j-2)%4], quad[(j-1)%4]))
		if c > maxCos {
			maxCos = c
		}
	}
	return maxCos
}

// OrderCorners rearranges the four corners of a quad into canonical order:
// top-left, top-right, bottom-right, bottom-left. The corner with the
// minimum x+y sum is top-left and the maximum is bottom-right; the y-x
// difference separates top-right (minimum) from bottom-left (maximum).
// The ordering is stable under arbitrary input order and moderate rotation.
func OrderCorners(quad [4]image.Point) [4]image.Point {
	sumMin, sumMax := 0, 0
	diffMin, diffMax := 0, 0
	for i := 1; i < 4; i++ {
		if sum(quad[i]) < sum(quad[sumMin]) {
			sumMin = i
		}
		if sum(quad[i]) > sum(quad[sumMax]) {
			sumMax = i
		}
		if diff(quad[i]) < diff(quad[diffMin]) {
			diffMin = i
		}
		if diff(quad[i]) > diff(quad[diffMax]) {
			diffMax = i
		}
	}
	return [4]image.Point{quad[sumMin], quad[diffMin], quad[sumMax], quad[diffMax]}
}

func sum(p image.Point) int  { return p.X + p.Y }
func diff(p image.Point) int { return p.Y - p.X }
