package entities

import (
	"github.com/zooyer/dxfgeom/core"
)

// 样条标志 (组码 70)
const (
	SplineClosed   = 1
	SplinePeriodic = 2
	SplineRational = 4
	SplinePlanar   = 8
	SplineLinear   = 16
)

type Spline struct {
	BaseEntity
	Flags         int          // 组码 70
	Degree        int          // 组码 71
	Knots         []float64    // 组码 40
	Weights       []float64    // 组码 41
	ControlPoints []core.Point // 组码 10
	FitPoints     []core.Point // 组码 11
	StartTangent  core.Point   // 组码 12
	EndTangent    core.Point   // 组码 13
	HasStartTan   bool
	HasEndTan     bool
	KnotTol       float64 // 组码 42
	ControlTol    float64 // 组码 43
	FitTol        float64 // 组码 44
}

func init() {
	Register("SPLINE", func() Entity {
		return &Spline{BaseEntity: NewBase("SPLINE"), Degree: 3}
	})
}

func (*Spline) Kind() Kind { return KindSpline }

func (s *Spline) Closed() bool   { return s.Flags&SplineClosed != 0 }
func (s *Spline) Periodic() bool { return s.Flags&SplinePeriodic != 0 }
func (s *Spline) Rational() bool { return s.Flags&SplineRational != 0 }

func (s *Spline) Parse(scanner *core.Scanner) error {
	appendAxis := func(points *[]core.Point, code int, v float64) {
		if code < 20 {
			*points = append(*points, core.Point{X: v})
			return
		}
		if n := len(*points); n > 0 {
			core.SetAxis(&(*points)[n-1], code, v)
		}
	}
	parseLoop(scanner, func(tag core.Tag) {
		if s.parseCommon(tag) {
			return
		}
		v := tag.AsFloat()
		switch tag.Code {
		case 70:
			s.Flags = tag.AsInt()
		case 71:
			s.Degree = tag.AsInt()
		case 40:
			s.Knots = append(s.Knots, v)
		case 41:
			s.Weights = append(s.Weights, v)
		case 42:
			s.KnotTol = v
		case 43:
			s.ControlTol = v
		case 44:
			s.FitTol = v
		case 10, 20, 30:
			appendAxis(&s.ControlPoints, tag.Code, v)
		case 11, 21, 31:
			appendAxis(&s.FitPoints, tag.Code, v)
		case 12, 22, 32:
			s.HasStartTan = true
			core.SetAxis(&s.StartTangent, tag.Code, v)
		case 13, 23, 33:
			s.HasEndTan = true
			core.SetAxis(&s.EndTangent, tag.Code, v)
		}
	})
	return scanner.Err()
}
