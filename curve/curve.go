// Package curve samples control-point curves and circular/elliptic arcs into
// point sequences. Every sampler produces a bounded number of points.
package curve

import "gonum.org/v1/gonum/spatial/r3"

// Type tells the client which evaluator the control data is meant for.
type Type string

const (
	// TypeCatmullRom is an interpolating curve through the control points.
	TypeCatmullRom Type = "catmull-rom"
	// TypeNURBS is a rational B-spline driven by degree, knots and weights.
	TypeNURBS Type = "nurbs"
)

// MaxSamples caps the number of points any sampler returns.
const MaxSamples = 4096

// Spline is the control data of a curve.
type Spline struct {
	Degree   int
	Control  []r3.Vec
	Knots    []float64
	Weights  []float64
	Closed   bool
	Periodic bool
}

// Classify reports TypeNURBS when there is one weight per control point and
// at least one of them differs from the others.
func Classify(weights []float64, controlCount int) Type {
	if len(weights) == 0 || len(weights) != controlCount {
		return TypeCatmullRom
	}
	for _, w := range weights[1:] {
		if w != weights[0] {
			return TypeNURBS
		}
	}
	return TypeCatmullRom
}

// Type classifies s.
func (s Spline) Type() Type {
	return Classify(s.Weights, len(s.Control))
}

// Sample evaluates s with the evaluator matching its classification.
// segmentsPerSpan is the number of steps between consecutive control points
// (Catmull-Rom) or per non-empty knot span (NURBS).
func Sample(s Spline, segmentsPerSpan int) ([]r3.Vec, Type) {
	typ := s.Type()
	if typ == TypeNURBS {
		return NURBS(s, segmentsPerSpan), typ
	}
	return CatmullRom(s.Control, s.Closed || s.Periodic, segmentsPerSpan), typ
}

func clampSegments(spans, perSpan int) int {
	if spans < 1 {
		spans = 1
	}
	if perSpan < 1 {
		perSpan = 1
	}
	n := spans * perSpan
	if n > MaxSamples-1 {
		n = MaxSamples - 1
	}
	return n
}
