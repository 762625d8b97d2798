package curve

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// DefaultTolerance is the allowed chordal deviation as a fraction of the radius.
	DefaultTolerance = 0.001
	// DefaultMaxArcSegments caps a full circle.
	DefaultMaxArcSegments = 256
)

// Sweep returns the signed angle travelled from start to end, in (0, 2π]
// counter-clockwise and in [-2π, 0) clockwise. Equal angles mean a full turn.
func Sweep(start, end float64, ccw bool) float64 {
	s := end - start
	if !ccw {
		s = start - end
	}
	s = math.Mod(s, 2*math.Pi)
	if s <= 0 {
		s += 2 * math.Pi
	}
	if !ccw {
		return -s
	}
	return s
}

// Segments returns how many uniform steps over sweep keep the chord within
// tolerance*radius of the arc. The result is in [1, maxSegments].
func Segments(sweep, tolerance float64, maxSegments int) int {
	if maxSegments < 1 {
		maxSegments = DefaultMaxArcSegments
	}
	if !(tolerance > 0 && tolerance < 1) {
		tolerance = DefaultTolerance
	}
	step := 2 * math.Acos(1-tolerance)
	f := math.Ceil(math.Abs(sweep) / step)
	if !(f >= 1) {
		f = 1
	}
	if f > float64(maxSegments) {
		f = float64(maxSegments)
	}
	return int(f)
}

// Arc tessellates the circular arc from start to end (radians) in the given
// winding direction, wrapping through 2π when end < start.
func Arc(center r3.Vec, radius, start, end float64, ccw bool, tolerance float64, maxSegments int) []r3.Vec {
	return ArcSweep(center, radius, start, Sweep(start, end, ccw), tolerance, maxSegments)
}

// ArcSweep tessellates the arc starting at angle start and turning by sweep.
func ArcSweep(center r3.Vec, radius, start, sweep, tolerance float64, maxSegments int) []r3.Vec {
	n := Segments(sweep, tolerance, maxSegments)
	out := make([]r3.Vec, n+1)
	for i := 0; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		out[i] = r3.Vec{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
			Z: center.Z,
		}
	}
	return out
}

// Ellipse tessellates an elliptic arc. major is the major axis endpoint
// relative to center, ratio the minor/major length ratio, start and end the
// parametric angles in radians.
func Ellipse(center, major r3.Vec, ratio, start, end float64, ccw bool, tolerance float64, maxSegments int) []r3.Vec {
	sweep := Sweep(start, end, ccw)
	n := Segments(sweep, tolerance, maxSegments)
	minor := r3.Vec{X: -major.Y * ratio, Y: major.X * ratio}
	out := make([]r3.Vec, n+1)
	for i := 0; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		p := r3.Add(r3.Scale(math.Cos(a), major), r3.Scale(math.Sin(a), minor))
		out[i] = r3.Add(center, p)
	}
	return out
}

// Bulge tessellates a polyline segment with the given bulge (tan of a
// quarter of the included angle; positive bulges turn counter-clockwise).
// The returned points exclude a but include b.
func Bulge(a, b r3.Vec, bulge, tolerance float64, maxSegments int) []r3.Vec {
	if bulge == 0 {
		return []r3.Vec{b}
	}
	chord := r3.Sub(b, a)
	length := math.Hypot(chord.X, chord.Y)
	if length == 0 {
		return []r3.Vec{b}
	}
	theta := 4 * math.Atan(bulge)
	radius := length / (2 * math.Sin(theta/2))
	// 圆心在弦的中垂线上
	mid := r3.Vec{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2, Z: a.Z}
	h := radius * math.Cos(theta/2)
	normal := r3.Vec{X: -chord.Y / length, Y: chord.X / length}
	center := r3.Add(mid, r3.Scale(h, normal))
	start := math.Atan2(a.Y-center.Y, a.X-center.X)
	pts := ArcSweep(center, math.Abs(radius), start, theta, tolerance, maxSegments)
	pts[len(pts)-1] = b
	return pts[1:]
}
