package geometry

import (
	"math"

	"github.com/zooyer/golib/xmath"
	"gonum.org/v1/gonum/spatial/r3"
	"seehuhn.de/go/geom/vec"
)

// Epsilon is the tolerance used when deciding whether two points coincide.
const Epsilon = 1e-9

// SignedArea is the shoelace sum over the implicitly closed ring.
// Counter-clockwise rings are positive.
func SignedArea(ring []vec.Vec2) float64 {
	n := len(ring)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := range n {
		a, b := ring[i], ring[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// PolygonArea is the absolute shoelace area.
func PolygonArea(ring []vec.Vec2) float64 {
	return math.Abs(SignedArea(ring))
}

// TriangleArea goes through PolygonArea so both always agree.
func TriangleArea(a, b, c vec.Vec2) float64 {
	return PolygonArea([]vec.Vec2{a, b, c})
}

// QuadArea goes through PolygonArea so both always agree.
func QuadArea(a, b, c, d vec.Vec2) float64 {
	return PolygonArea([]vec.Vec2{a, b, c, d})
}

// AreaCentroid is the area-weighted centroid of the ring. Rings with zero
// area fall back to the vertex mean.
func AreaCentroid(ring []vec.Vec2) vec.Vec2 {
	area := SignedArea(ring)
	if area == 0 {
		return Centroid2D(ring)
	}
	n := len(ring)
	var cx, cy float64
	for i := range n {
		a, b := ring[i], ring[(i+1)%n]
		f := a.X*b.Y - b.X*a.Y
		cx += (a.X + b.X) * f
		cy += (a.Y + b.Y) * f
	}
	return vec.Vec2{X: cx / (6 * area), Y: cy / (6 * area)}
}

// Perimeter sums consecutive segment lengths, adding the closing segment
// when closed is set.
func Perimeter(points []r3.Vec, closed bool) float64 {
	n := len(points)
	if n < 2 {
		return 0
	}
	var sum float64
	for i := 1; i < n; i++ {
		sum += r3.Norm(r3.Sub(points[i], points[i-1]))
	}
	if closed {
		sum += r3.Norm(r3.Sub(points[0], points[n-1]))
	}
	return sum
}

// Perimeter2D is Perimeter for planar points.
func Perimeter2D(points []vec.Vec2, closed bool) float64 {
	n := len(points)
	if n < 2 {
		return 0
	}
	var sum float64
	for i := 1; i < n; i++ {
		sum += points[i].Sub(points[i-1]).Length()
	}
	if closed {
		sum += points[0].Sub(points[n-1]).Length()
	}
	return sum
}

// Coincident reports whether a and b agree within eps on every axis.
func Coincident(a, b r3.Vec, eps float64) bool {
	return xmath.Equal(a.X, b.X, eps) && xmath.Equal(a.Y, b.Y, eps) && xmath.Equal(a.Z, b.Z, eps)
}

// Coincident2D is Coincident for planar points.
func Coincident2D(a, b vec.Vec2, eps float64) bool {
	return xmath.Equal(a.X, b.X, eps) && xmath.Equal(a.Y, b.Y, eps)
}

// CleanRing drops consecutive duplicates and a trailing point that repeats
// the first one.
func CleanRing(ring []vec.Vec2) []vec.Vec2 {
	out := make([]vec.Vec2, 0, len(ring))
	for _, p := range ring {
		if len(out) > 0 && Coincident2D(out[len(out)-1], p, Epsilon) {
			continue
		}
		out = append(out, p)
	}
	if len(out) > 1 && Coincident2D(out[0], out[len(out)-1], Epsilon) {
		out = out[:len(out)-1]
	}
	return out
}

// Normalize returns the unit vector along v. The zero vector stays zero.
func Normalize(v r3.Vec) r3.Vec {
	n := r3.Norm(v)
	if n == 0 {
		return v
	}
	return r3.Scale(1/n, v)
}

// Cross2D is the z component of the cross product a × b.
func Cross2D(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}
