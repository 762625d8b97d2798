package curve

import "gonum.org/v1/gonum/spatial/r3"

// NURBS samples the rational B-spline described by s. A knot vector of the
// wrong length or with decreasing values is replaced by a clamped uniform
// one; closed or periodic curves without usable knots wrap their first
// Degree control points and use an unclamped uniform vector instead.
func NURBS(s Spline, segmentsPerSpan int) []r3.Vec {
	ctrl := s.Control
	n := len(ctrl)
	if n < 2 {
		return append([]r3.Vec{}, ctrl...)
	}

	p := min(max(s.Degree, 1), n-1)

	weights := s.Weights
	if len(weights) != n {
		weights = make([]float64, n)
		for i := range weights {
			weights[i] = 1
		}
	}

	knots := s.Knots
	if !validKnots(knots, n, p) {
		if s.Closed || s.Periodic {
			ctrl = append(append([]r3.Vec{}, ctrl...), ctrl[:p]...)
			weights = append(append([]float64{}, weights...), weights[:p]...)
			n = len(ctrl)
			knots = uniformKnots(n, p)
		} else {
			knots = clampedKnots(n, p)
		}
	}

	t0, t1 := knots[p], knots[n]
	segments := clampSegments(n-p, segmentsPerSpan)
	out := make([]r3.Vec, segments+1)
	for i := 0; i <= segments; i++ {
		t := t0 + (t1-t0)*float64(i)/float64(segments)
		if i == segments {
			t = t1
		}
		out[i] = evaluate(ctrl, weights, knots, p, t)
	}
	return out
}

func validKnots(knots []float64, n, p int) bool {
	if len(knots) != n+p+1 {
		return false
	}
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			return false
		}
	}
	return knots[n] > knots[p]
}

// clampedKnots repeats the end knots p+1 times so the curve starts and ends
// on its end control points.
func clampedKnots(n, p int) []float64 {
	knots := make([]float64, n+p+1)
	inner := n - p
	for i := range knots {
		switch {
		case i <= p:
			knots[i] = 0
		case i >= n:
			knots[i] = 1
		default:
			knots[i] = float64(i-p) / float64(inner)
		}
	}
	return knots
}

func uniformKnots(n, p int) []float64 {
	knots := make([]float64, n+p+1)
	for i := range knots {
		knots[i] = float64(i)
	}
	return knots
}

// findSpan returns k in [p, n-1] with knots[k] <= t < knots[k+1], the last
// non-empty span for t at the end of the domain.
func findSpan(knots []float64, n, p int, t float64) int {
	k := p
	for k < n-1 && t >= knots[k+1] {
		k++
	}
	return k
}

// basis evaluates the p+1 non-zero B-spline basis functions at t.
func basis(knots []float64, span, p int, t float64) []float64 {
	N := make([]float64, p+1)
	left := make([]float64, p+1)
	right := make([]float64, p+1)
	N[0] = 1
	for j := 1; j <= p; j++ {
		left[j] = t - knots[span+1-j]
		right[j] = knots[span+j] - t
		saved := 0.0
		for r := range j {
			temp := 0.0
			if den := right[r+1] + left[j-r]; den != 0 {
				temp = N[r] / den
			}
			N[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		N[j] = saved
	}
	return N
}

func evaluate(ctrl []r3.Vec, weights, knots []float64, p int, t float64) r3.Vec {
	n := len(ctrl)
	span := findSpan(knots, n, p, t)
	N := basis(knots, span, p, t)

	var num, plain r3.Vec
	var den float64
	for i := 0; i <= p; i++ {
		idx := span - p + i
		w := N[i] * weights[idx]
		num = r3.Add(num, r3.Scale(w, ctrl[idx]))
		plain = r3.Add(plain, r3.Scale(N[i], ctrl[idx]))
		den += w
	}
	if den == 0 {
		return plain
	}
	return r3.Scale(1/den, num)
}
