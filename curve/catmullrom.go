package curve

import "gonum.org/v1/gonum/spatial/r3"

// CatmullRom samples a uniform Catmull-Rom spline passing through every
// point. Open curves duplicate their end points as phantom neighbours;
// closed curves wrap around and end where they started.
func CatmullRom(points []r3.Vec, closed bool, segmentsPerSpan int) []r3.Vec {
	n := len(points)
	if n < 2 {
		return append([]r3.Vec{}, points...)
	}

	spans := n - 1
	if closed {
		spans = n
	}
	at := func(i int) r3.Vec {
		if closed {
			return points[((i%n)+n)%n]
		}
		return points[min(max(i, 0), n-1)]
	}

	per := clampSegments(spans, segmentsPerSpan) / spans
	if per < 1 {
		per = 1
	}

	out := make([]r3.Vec, 0, spans*per+1)
	for s := range spans {
		p0, p1, p2, p3 := at(s-1), at(s), at(s+1), at(s+2)
		for j := range per {
			out = append(out, catmullRom(p0, p1, p2, p3, float64(j)/float64(per)))
		}
	}
	return append(out, at(spans))
}

func catmullRom(p0, p1, p2, p3 r3.Vec, t float64) r3.Vec {
	if t == 0 {
		return p1
	}
	t2 := t * t
	t3 := t2 * t
	// 0.5 * (2P1 + (-P0+P2)t + (2P0-5P1+4P2-P3)t² + (-P0+3P1-3P2+P3)t³)
	c0 := r3.Scale(2, p1)
	c1 := r3.Sub(p2, p0)
	c2 := r3.Add(r3.Sub(r3.Scale(2, p0), r3.Scale(5, p1)), r3.Sub(r3.Scale(4, p2), p3))
	c3 := r3.Add(r3.Sub(r3.Scale(3, p1), p0), r3.Sub(p3, r3.Scale(3, p2)))
	sum := r3.Add(r3.Add(c0, r3.Scale(t, c1)), r3.Add(r3.Scale(t2, c2), r3.Scale(t3, c3)))
	return r3.Scale(0.5, sum)
}
