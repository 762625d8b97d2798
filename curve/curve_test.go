package curve

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func near(a, b r3.Vec, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
		n       int
		want    Type
	}{
		{"absent", nil, 4, TypeCatmullRom},
		{"uniform", []float64{1, 1, 1, 1}, 4, TypeCatmullRom},
		{"uniform non-unit", []float64{2.5, 2.5, 2.5}, 3, TypeCatmullRom},
		{"one differs", []float64{1, 1, 0.5, 1}, 4, TypeNURBS},
		{"count mismatch", []float64{1, 2}, 4, TypeCatmullRom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.weights, tt.n); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCatmullRomPassesThroughPoints(t *testing.T) {
	pts := []r3.Vec{{X: 0}, {X: 1, Y: 2}, {X: 3, Y: -1}, {X: 4, Y: 0}}
	out := CatmullRom(pts, false, 8)
	if len(out) != 3*8+1 {
		t.Fatalf("len = %d", len(out))
	}
	for i, p := range pts {
		if out[i*8] != p {
			t.Errorf("sample %d = %v, want control point %v", i*8, out[i*8], p)
		}
	}
}

func TestCatmullRomClosed(t *testing.T) {
	pts := []r3.Vec{{X: 0}, {X: 1}, {X: 1, Y: 1}}
	out := CatmullRom(pts, true, 4)
	if len(out) != 3*4+1 {
		t.Fatalf("len = %d", len(out))
	}
	if out[0] != out[len(out)-1] {
		t.Errorf("closed curve should end at its start: %v vs %v", out[0], out[len(out)-1])
	}
}

func TestCatmullRomDegenerate(t *testing.T) {
	if got := CatmullRom(nil, false, 8); len(got) != 0 {
		t.Errorf("CatmullRom(nil) = %v", got)
	}
	one := []r3.Vec{{X: 5}}
	if got := CatmullRom(one, false, 8); len(got) != 1 || got[0] != one[0] {
		t.Errorf("CatmullRom(single) = %v", got)
	}
}

func TestNURBSClampedEndpoints(t *testing.T) {
	s := Spline{
		Degree:  3,
		Control: []r3.Vec{{X: 0}, {X: 1, Y: 2}, {X: 3, Y: 2}, {X: 4}},
		Knots:   []float64{0, 0, 0, 0, 1, 1, 1, 1},
		Weights: []float64{1, 2, 2, 1},
	}
	out, typ := Sample(s, 16)
	if typ != TypeNURBS {
		t.Fatalf("type = %v", typ)
	}
	if len(out) != 17 {
		t.Fatalf("len = %d", len(out))
	}
	if !near(out[0], s.Control[0], 1e-12) || !near(out[len(out)-1], s.Control[3], 1e-12) {
		t.Errorf("clamped curve should hit its end points: %v .. %v", out[0], out[len(out)-1])
	}
}

func TestNURBSCircleQuadrant(t *testing.T) {
	// 二次有理贝塞尔表示的四分之一圆
	w := math.Sqrt2 / 2
	s := Spline{
		Degree:  2,
		Control: []r3.Vec{{X: 1}, {X: 1, Y: 1}, {Y: 1}},
		Knots:   []float64{0, 0, 0, 1, 1, 1},
		Weights: []float64{1, w, 1},
	}
	for _, p := range NURBS(s, 32) {
		if r := math.Hypot(p.X, p.Y); math.Abs(r-1) > 1e-12 {
			t.Fatalf("point %v off the unit circle (r=%v)", p, r)
		}
	}
}

func TestNURBSInvalidKnots(t *testing.T) {
	s := Spline{
		Degree:  2,
		Control: []r3.Vec{{X: 0}, {X: 1, Y: 1}, {X: 2}},
		Knots:   []float64{0, 1},
		Weights: []float64{1, 3, 1},
	}
	out := NURBS(s, 4)
	if len(out) != 5 {
		t.Fatalf("len = %d", len(out))
	}
	if !near(out[0], s.Control[0], 1e-12) || !near(out[4], s.Control[2], 1e-12) {
		t.Errorf("generated clamped knots should hit the end points: %v", out)
	}
}

func TestNURBSClosedWraps(t *testing.T) {
	s := Spline{
		Degree:  2,
		Control: []r3.Vec{{X: 0}, {X: 1}, {X: 1, Y: 1}, {Y: 1}},
		Weights: []float64{1, 2, 1, 2},
		Closed:  true,
	}
	out := NURBS(s, 8)
	if !near(out[0], out[len(out)-1], 1e-12) {
		t.Errorf("closed NURBS should end where it starts: %v vs %v", out[0], out[len(out)-1])
	}
}

func TestSweep(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		ccw        bool
		want       float64
	}{
		{"quarter ccw", 0, math.Pi / 2, true, math.Pi / 2},
		{"wrap ccw", 3 * math.Pi / 2, math.Pi / 2, true, math.Pi},
		{"full circle", 0, 2 * math.Pi, true, 2 * math.Pi},
		{"quarter cw", math.Pi / 2, 0, false, -math.Pi / 2},
		{"wrap cw", 0, math.Pi / 2, false, -3 * math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sweep(tt.start, tt.end, tt.ccw); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Sweep() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArcChordalDeviation(t *testing.T) {
	const tol = 0.001
	center := r3.Vec{X: 5, Y: 5}
	pts := Arc(center, 10, 0, math.Pi, true, tol, 1024)
	if !near(pts[0], r3.Vec{X: 15, Y: 5}, 1e-12) || !near(pts[len(pts)-1], r3.Vec{X: -5, Y: 5}, 1e-9) {
		t.Fatalf("end points = %v .. %v", pts[0], pts[len(pts)-1])
	}
	for i := 1; i < len(pts); i++ {
		mid := r3.Scale(0.5, r3.Add(pts[i-1], pts[i]))
		dev := 10 - r3.Norm(r3.Sub(mid, center))
		if dev > tol*10+1e-12 {
			t.Fatalf("segment %d deviates by %v", i, dev)
		}
	}
}

func TestArcWrapAround(t *testing.T) {
	// 起始角 > 终止角，逆时针跨过 0°
	pts := Arc(r3.Vec{}, 1, 3*math.Pi/2, math.Pi/2, true, 0.01, 256)
	for _, p := range pts {
		if p.X < -1e-12 {
			t.Fatalf("ccw arc from 270° to 90° must stay on the right half: %v", p)
		}
	}
}

func TestSegmentsBounded(t *testing.T) {
	if got := Segments(math.NaN(), 0.001, 64); got != 1 {
		t.Errorf("Segments(NaN) = %d", got)
	}
	if got := Segments(2*math.Pi, 1e-12, 64); got != 64 {
		t.Errorf("Segments capped = %d", got)
	}
	if got := Segments(0, 0.001, 64); got != 1 {
		t.Errorf("Segments(0) = %d", got)
	}
}

func TestBulgeSemicircle(t *testing.T) {
	pts := Bulge(r3.Vec{}, r3.Vec{X: 2}, 1, 0.001, 256)
	if pts[len(pts)-1] != (r3.Vec{X: 2}) {
		t.Fatalf("bulge should end at b: %v", pts[len(pts)-1])
	}
	for _, p := range pts {
		if p.Y > 1e-9 {
			t.Fatalf("positive bulge from left to right bows below the chord: %v", p)
		}
		if r := math.Hypot(p.X-1, p.Y); math.Abs(r-1) > 1e-9 {
			t.Fatalf("point %v off the circle", p)
		}
	}
	if got := Bulge(r3.Vec{}, r3.Vec{X: 2}, 0, 0.001, 256); len(got) != 1 {
		t.Errorf("straight segment = %v", got)
	}
}

func TestEllipse(t *testing.T) {
	pts := Ellipse(r3.Vec{}, r3.Vec{X: 4}, 0.5, 0, 2*math.Pi, true, 0.001, 256)
	for _, p := range pts {
		if v := p.X*p.X/16 + p.Y*p.Y/4; math.Abs(v-1) > 1e-9 {
			t.Fatalf("point %v off the ellipse", p)
		}
	}
}
