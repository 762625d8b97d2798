package render

import (
	"github.com/zooyer/dxfgeom/curve"
	"github.com/zooyer/dxfgeom/entities"
	"github.com/zooyer/dxfgeom/geometry"
)

// Spline 按权重分类后采样：权重存在且不全相等走 NURBS，否则 Catmull-Rom。
// 没有控制点时用拟合点做 Catmull-Rom 插值。
func (r *Renderer) Spline(s *entities.Spline) RenderData {
	rd := base(s)

	c := curve.Spline{
		Degree:   s.Degree,
		Control:  s.ControlPoints,
		Knots:    s.Knots,
		Weights:  s.Weights,
		Closed:   s.Closed(),
		Periodic: s.Periodic(),
	}
	if len(c.Control) == 0 && len(s.FitPoints) > 0 {
		c = curve.Spline{Degree: s.Degree, Control: s.FitPoints, Closed: s.Closed()}
	}
	samples, typ := curve.Sample(c, r.opts.SplineSegments)
	if len(samples) == 0 {
		Logger().Debug("spline: no control or fit points", "handle", s.Handle)
	}

	normal := geometry.UnitNormal(s.Normal)
	m := &mesh{}
	for _, p := range samples {
		m.add(p, normal)
	}
	rd.Geometry = m.geometry(PrimitiveLineStrip, rd.Color)
	rd.Material = newMaterial(MaterialLine, rd.Color, SideFront)
	rd.Material.LineWidth = lineWidth(s.LineWeight)
	setBounds(&rd, samples)

	data := &SplineData{
		CurveType:     string(typ),
		Degree:        s.Degree,
		Closed:        s.Closed(),
		Periodic:      s.Periodic(),
		Rational:      s.Rational(),
		Planar:        s.Flags&entities.SplinePlanar != 0,
		Linear:        s.Flags&entities.SplineLinear != 0,
		ControlPoints: v3s(s.ControlPoints),
		FitPoints:     v3s(s.FitPoints),
		Knots:         cloneFloats(s.Knots),
		Weights:       cloneFloats(s.Weights),
		Samples:       v3s(samples),
		Length:        geometry.Perimeter(samples, false),
	}
	if s.HasStartTan {
		t := v3(s.StartTangent)
		data.StartTangent = &t
	}
	if s.HasEndTan {
		t := v3(s.EndTangent)
		data.EndTangent = &t
	}
	rd.Spline = data
	return rd
}

