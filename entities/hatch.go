package entities

import (
	"github.com/zooyer/dxfgeom/core"
)

// EdgeType 对应边界边的组码 72
type EdgeType int

const (
	EdgeLine    EdgeType = 1
	EdgeArc     EdgeType = 2
	EdgeEllipse EdgeType = 3
	EdgeSpline  EdgeType = 4
)

func (t EdgeType) String() string {
	switch t {
	case EdgeLine:
		return "line"
	case EdgeArc:
		return "arc"
	case EdgeEllipse:
		return "ellipse"
	case EdgeSpline:
		return "spline"
	}
	return "unknown"
}

// 边界路径类型标志 (组码 92)
const (
	PathExternal  = 1
	PathPolyline  = 2
	PathDerived   = 4
	PathTextbox   = 8
	PathOutermost = 16
)

// HatchEdge 是边界路径中的一条边，字段按边类型取用
type HatchEdge struct {
	Type EdgeType

	// 直线
	Start, End core.Point

	// 圆弧 / 椭圆弧，角度为角度制
	Center     core.Point
	Radius     float64
	MajorAxis  core.Point // 长轴端点 (相对圆心)
	Ratio      float64    // 短轴 / 长轴
	StartAngle float64
	EndAngle   float64
	CCW        bool

	// 样条
	Degree        int
	Rational      bool
	Periodic      bool
	Knots         []float64
	Weights       []float64
	ControlPoints []core.Point
	FitPoints     []core.Point
}

// HatchVertex 多段线边界的顶点
type HatchVertex struct {
	Point core.Point
	Bulge float64
}

type BoundaryPath struct {
	Flags    int // 组码 92
	HasBulge bool
	Closed   bool
	Vertices []HatchVertex // 多段线边界
	Edges    []HatchEdge   // 普通边界
}

func (p *BoundaryPath) IsPolyline() bool { return p.Flags&PathPolyline != 0 }

func (p *BoundaryPath) IsExternal() bool { return p.Flags&(PathExternal|PathOutermost) != 0 }

// EdgeCount 多段线边界按线段计数
func (p *BoundaryPath) EdgeCount() int {
	if p.IsPolyline() {
		return len(p.Vertices)
	}
	return len(p.Edges)
}

type Hatch struct {
	BaseEntity
	PatternName  string  // 组码 2
	SolidFill    bool    // 组码 70
	Associative  bool    // 组码 71
	Elevation    float64 // 组码 30
	Style        int     // 组码 75
	PatternType  int     // 组码 76
	PatternAngle float64 // 组码 52
	PatternScale float64 // 组码 41
	Double       bool    // 组码 77
	Gradient     bool    // 组码 450
	GradientName string  // 组码 470
	Paths        []BoundaryPath
}

func init() {
	Register("HATCH", func() Entity {
		return &Hatch{BaseEntity: NewBase("HATCH"), PatternScale: 1}
	})
}

func (*Hatch) Kind() Kind { return KindHatch }

const (
	hatchHeader = iota
	hatchPaths
	hatchPattern
)

func (h *Hatch) Parse(scanner *core.Scanner) error {
	var (
		state = hatchHeader
		path  *BoundaryPath
		edge  *HatchEdge
	)

	lastVertex := func() *HatchVertex {
		if path == nil || len(path.Vertices) == 0 {
			return nil
		}
		return &path.Vertices[len(path.Vertices)-1]
	}

	parseLoop(scanner, func(tag core.Tag) {
		switch state {
		case hatchHeader:
			if h.parseCommon(tag) {
				return
			}
			switch tag.Code {
			case 2:
				h.PatternName = tag.AsString()
			case 70:
				h.SolidFill = tag.AsBool()
			case 71:
				h.Associative = tag.AsBool()
			case 30:
				h.Elevation = tag.AsFloat()
			case 91:
				state = hatchPaths
			}

		case hatchPaths:
			switch tag.Code {
			case 92:
				h.Paths = append(h.Paths, BoundaryPath{Flags: tag.AsInt()})
				path, edge = &h.Paths[len(h.Paths)-1], nil
				return
			case 75:
				// 边界数据结束，进入图案部分
				h.Style = tag.AsInt()
				state = hatchPattern
				return
			case 97, 330, 93:
				return
			}
			if path == nil {
				return
			}
			if path.IsPolyline() {
				switch tag.Code {
				case 72:
					path.HasBulge = tag.AsBool()
				case 73:
					path.Closed = tag.AsBool()
				case 10:
					path.Vertices = append(path.Vertices, HatchVertex{Point: core.Point{X: tag.AsFloat()}})
				case 20:
					if v := lastVertex(); v != nil {
						v.Point.Y = tag.AsFloat()
					}
				case 42:
					if v := lastVertex(); v != nil {
						v.Bulge = tag.AsFloat()
					}
				}
				return
			}
			if tag.Code == 72 {
				path.Edges = append(path.Edges, HatchEdge{Type: EdgeType(tag.AsInt()), CCW: true, Ratio: 1})
				edge = &path.Edges[len(path.Edges)-1]
				return
			}
			if edge != nil {
				edge.parse(tag)
			}

		case hatchPattern:
			if h.parseCommon(tag) {
				return
			}
			switch tag.Code {
			case 76:
				h.PatternType = tag.AsInt()
			case 52:
				h.PatternAngle = tag.AsFloat()
			case 41:
				h.PatternScale = tag.AsFloat()
			case 77:
				h.Double = tag.AsBool()
			case 450:
				h.Gradient = tag.AsBool()
			case 470:
				h.GradientName = tag.AsString()
			}
		}
	})
	return scanner.Err()
}

func (e *HatchEdge) parse(tag core.Tag) {
	v := tag.AsFloat()
	switch e.Type {
	case EdgeLine:
		switch tag.Code {
		case 10, 20:
			core.SetAxis(&e.Start, tag.Code, v)
		case 11, 21:
			core.SetAxis(&e.End, tag.Code, v)
		}
	case EdgeArc, EdgeEllipse:
		switch tag.Code {
		case 10, 20:
			core.SetAxis(&e.Center, tag.Code, v)
		case 11, 21:
			core.SetAxis(&e.MajorAxis, tag.Code, v)
		case 40:
			if e.Type == EdgeArc {
				e.Radius = v
			} else {
				e.Ratio = v
			}
		case 50:
			e.StartAngle = v
		case 51:
			e.EndAngle = v
		case 73:
			e.CCW = tag.AsBool()
		}
	case EdgeSpline:
		switch tag.Code {
		case 94:
			e.Degree = tag.AsInt()
		case 73:
			e.Rational = tag.AsBool()
		case 74:
			e.Periodic = tag.AsBool()
		case 40:
			e.Knots = append(e.Knots, v)
		case 42:
			e.Weights = append(e.Weights, v)
		case 10:
			e.ControlPoints = append(e.ControlPoints, core.Point{X: v})
		case 20:
			if n := len(e.ControlPoints); n > 0 {
				e.ControlPoints[n-1].Y = v
			}
		case 11:
			e.FitPoints = append(e.FitPoints, core.Point{X: v})
		case 21:
			if n := len(e.FitPoints); n > 0 {
				e.FitPoints[n-1].Y = v
			}
		}
	}
}
