// Package geometry holds the shared point-set math used by every renderer:
// bounds, centroids, polygon area and perimeter, OCS to WCS conversion and
// ring triangulation.
//
// Nothing here guards against NaN or Inf. Invalid coordinates flow through to
// the results so that corruption stays visible downstream.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
	"seehuhn.de/go/geom/vec"
)

// Box is an axis-aligned 3D bounding box.
type Box struct {
	Min, Max r3.Vec
}

// Bounds returns the componentwise min/max of points.
// An empty set yields the degenerate box at the origin.
func Bounds(points []r3.Vec) Box {
	if len(points) == 0 {
		return Box{}
	}
	b := Box{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min = r3.Vec{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)}
		b.Max = r3.Vec{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)}
	}
	return b
}

func (b Box) Center() r3.Vec {
	return r3.Vec{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2, Z: (b.Min.Z + b.Max.Z) / 2}
}

func (b Box) Size() r3.Vec {
	return r3.Sub(b.Max, b.Min)
}

// Union returns the smallest box containing b and o.
func (b Box) Union(o Box) Box {
	return Bounds([]r3.Vec{b.Min, b.Max, o.Min, o.Max})
}

// Corners returns the eight corners of the box.
func (b Box) Corners() [8]r3.Vec {
	return [8]r3.Vec{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
	}
}

// Box2 is an axis-aligned 2D bounding box.
type Box2 struct {
	Min, Max vec.Vec2
}

// Bounds2D is Bounds for planar points.
func Bounds2D(points []vec.Vec2) Box2 {
	if len(points) == 0 {
		return Box2{}
	}
	b := Box2{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min = vec.Vec2{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y)}
		b.Max = vec.Vec2{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y)}
	}
	return b
}

func (b Box2) Center() vec.Vec2 {
	return vec.Vec2{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

func (b Box2) Size() vec.Vec2 {
	return b.Max.Sub(b.Min)
}

// Centroid is the arithmetic mean of points, the origin for an empty set.
func Centroid(points []r3.Vec) r3.Vec {
	if len(points) == 0 {
		return r3.Vec{}
	}
	var sum r3.Vec
	for _, p := range points {
		sum = r3.Add(sum, p)
	}
	return r3.Scale(1/float64(len(points)), sum)
}

// Centroid2D is Centroid for planar points.
func Centroid2D(points []vec.Vec2) vec.Vec2 {
	if len(points) == 0 {
		return vec.Vec2{}
	}
	var sum vec.Vec2
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(points)))
}

// Flatten drops the Z component.
func Flatten(points []r3.Vec) []vec.Vec2 {
	out := make([]vec.Vec2, len(points))
	for i, p := range points {
		out[i] = vec.Vec2{X: p.X, Y: p.Y}
	}
	return out
}

// Lift places planar points at height z.
func Lift(points []vec.Vec2, z float64) []r3.Vec {
	out := make([]r3.Vec, len(points))
	for i, p := range points {
		out[i] = r3.Vec{X: p.X, Y: p.Y, Z: z}
	}
	return out
}
