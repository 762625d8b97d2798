package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
	"seehuhn.de/go/geom/vec"

	"github.com/zooyer/dxfgeom/curve"
	"github.com/zooyer/dxfgeom/entities"
	"github.com/zooyer/dxfgeom/geometry"
)

// Hatch 填充：每条边界展开成一个 OCS 平面环，圆弧、椭圆弧、样条和凸度都离散成点；
// 各环分别剖分后合并到同一个顶点缓冲，高程和法向决定平面位置。
// 存在外边界时孤岛的面积从总面积中扣除。
func (r *Renderer) Hatch(h *entities.Hatch) RenderData {
	rd := base(h)

	rings := make([][]vec.Vec2, len(h.Paths))
	var flat []vec.Vec2
	hasExternal := false
	for i := range h.Paths {
		rings[i] = r.pathRing(&h.Paths[i])
		flat = append(flat, rings[i]...)
		hasExternal = hasExternal || h.Paths[i].IsExternal()
	}
	if len(flat) == 0 {
		Logger().Debug("hatch: no boundary points", "handle", h.Handle, "paths", len(h.Paths))
	}

	// UV 按全部边界的平面范围归一化
	box := geometry.Bounds2D(flat)
	size := box.Size()
	uvOf := func(p vec.Vec2) vec.Vec2 {
		var uv vec.Vec2
		if size.X != 0 {
			uv.X = (p.X - box.Min.X) / size.X
		}
		if size.Y != 0 {
			uv.Y = (p.Y - box.Min.Y) / size.Y
		}
		return uv
	}

	normal := geometry.UnitNormal(h.Normal)
	m := &mesh{}
	data := &HatchData{
		PatternName:  h.PatternName,
		SolidFill:    h.SolidFill,
		Associative:  h.Associative,
		Elevation:    h.Elevation,
		Style:        h.Style,
		PatternType:  h.PatternType,
		PatternAngle: h.PatternAngle,
		PatternScale: h.PatternScale,
		Double:       h.Double,
		Gradient:     h.Gradient,
		GradientName: h.GradientName,
		PathCount:    len(h.Paths),
		EdgeTypes:    []string{},
		Paths:        make([]HatchPathData, len(h.Paths)),
	}

	var (
		net    float64
		moment vec.Vec2
		seen   = map[string]bool{}
	)
	for i, ring := range rings {
		path := &h.Paths[i]
		offset := len(m.points)
		for j, wcs := range geometry.OCSToWCSAll(geometry.Lift(ring, h.Elevation), h.Normal) {
			m.addUV(wcs, normal, uvOf(ring[j]))
		}
		indices, how := r.triangulate(ring)
		for _, idx := range indices {
			m.indices = append(m.indices, offset+idx)
		}

		area := geometry.PolygonArea(ring)
		centroid := geometry.AreaCentroid(ring)
		sign := 1.0
		if hasExternal && !path.IsExternal() {
			sign = -1
		}
		net += sign * area
		moment = moment.Add(centroid.Mul(sign * area))

		types := edgeTypes(path)
		for _, t := range types {
			if !seen[t] {
				seen[t] = true
				data.EdgeTypes = append(data.EdgeTypes, t)
			}
		}
		perimeter := geometry.Perimeter2D(ring, true)
		data.TotalEdges += path.EdgeCount()
		data.Perimeter += perimeter
		data.Paths[i] = HatchPathData{
			Flags:        path.Flags,
			External:     path.IsExternal(),
			Polyline:     path.IsPolyline(),
			EdgeCount:    path.EdgeCount(),
			EdgeTypes:    types,
			VertexOffset: offset,
			VertexCount:  len(ring),
			Area:         area,
			Perimeter:    perimeter,
			Centroid:     v2(centroid),
			Triangulated: string(how),
		}
	}
	data.Area = math.Abs(net)

	material := MaterialPatternFill
	if h.SolidFill {
		material = MaterialSolidFill
	}
	rd.Geometry = m.geometry(PrimitiveTriangles, rd.Color)
	rd.Material = newMaterial(material, rd.Color, SideDouble)
	setBounds(&rd, m.points)

	c := geometry.Centroid2D(flat)
	if net != 0 {
		c = moment.Mul(1 / net)
	}
	setCentroid(&rd, geometry.OCSToWCS(r3.Vec{X: c.X, Y: c.Y, Z: h.Elevation}, h.Normal))

	rd.Hatch = data
	return rd
}

// pathRing 把一条边界展开成去重后的平面环
func (r *Renderer) pathRing(p *entities.BoundaryPath) []vec.Vec2 {
	tol, maxSeg := r.opts.ArcTolerance, r.opts.MaxArcSegments

	var pts []r3.Vec
	if p.IsPolyline() {
		n := len(p.Vertices)
		for i, v := range p.Vertices {
			if i == 0 {
				pts = append(pts, v.Point)
			}
			next := p.Vertices[(i+1)%n].Point
			pts = append(pts, curve.Bulge(v.Point, next, v.Bulge, tol, maxSeg)...)
		}
		return geometry.CleanRing(geometry.Flatten(pts))
	}

	for _, e := range p.Edges {
		switch e.Type {
		case entities.EdgeLine:
			pts = append(pts, e.Start, e.End)
		case entities.EdgeArc:
			start, end := radians(e.StartAngle), radians(e.EndAngle)
			if !e.CCW {
				// 顺时针圆弧的角度按镜像坐标系记录
				start, end = -start, -end
			}
			pts = append(pts, curve.Arc(e.Center, e.Radius, start, end, e.CCW, tol, maxSeg)...)
		case entities.EdgeEllipse:
			start, end := radians(e.StartAngle), radians(e.EndAngle)
			if !e.CCW {
				start, end = -start, -end
			}
			pts = append(pts, curve.Ellipse(e.Center, e.MajorAxis, e.Ratio, start, end, e.CCW, tol, maxSeg)...)
		case entities.EdgeSpline:
			if len(e.ControlPoints) == 0 {
				pts = append(pts, curve.CatmullRom(e.FitPoints, false, r.opts.SplineSegments)...)
				continue
			}
			s := curve.Spline{
				Degree:   e.Degree,
				Control:  e.ControlPoints,
				Knots:    e.Knots,
				Periodic: e.Periodic,
			}
			if e.Rational {
				s.Weights = e.Weights
			}
			samples, _ := curve.Sample(s, r.opts.SplineSegments)
			pts = append(pts, samples...)
		}
	}
	return geometry.CleanRing(geometry.Flatten(pts))
}

func edgeTypes(p *entities.BoundaryPath) []string {
	types := make([]string, 0, p.EdgeCount())
	if p.IsPolyline() {
		for _, v := range p.Vertices {
			if v.Bulge != 0 {
				types = append(types, entities.EdgeArc.String())
			} else {
				types = append(types, entities.EdgeLine.String())
			}
		}
		return types
	}
	for _, e := range p.Edges {
		types = append(types, e.Type.String())
	}
	return types
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
