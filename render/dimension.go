package render

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
	"seehuhn.de/go/geom/vec"

	"github.com/zooyer/dxfgeom/curve"
	"github.com/zooyer/dxfgeom/entities"
	"github.com/zooyer/dxfgeom/geometry"
)

// 组码 70 第 7 位：坐标标注为 X 类型
const ordinateX = 64

// Dimension 画出标注的延伸线、尺寸线或圆弧，并给出测量值和替换后的文字。
// d 为 nil 时返回空记录。
func (r *Renderer) Dimension(d *entities.Dimension) RenderData {
	if d == nil {
		return Empty(entities.KindDimension.String())
	}
	rd := base(d)

	style := d.Style
	scale := style.Scale
	if scale <= 0 {
		scale = 1
	}
	exe := style.ExLimit * scale

	normal := geometry.UnitNormal(d.Normal)
	m := &mesh{}
	line := func(a, b r3.Vec) {
		m.add(a, normal)
		m.add(b, normal)
	}

	data := &DimensionData{
		DimType:      d.DimType.String(),
		StyleName:    style.Name,
		Precision:    style.Precision,
		BlockName:    d.BlockName,
		TextPosition: v3(geometry.OCSToWCS(d.TextMidPoint, d.Normal)),
	}

	var (
		measured       float64
		prefix, suffix string
		angular        bool
	)
	switch d.DimType {
	case entities.DimRotated, entities.DimAligned:
		p13, p14 := d.GetExtensionPoints()
		line(d.MeasureStart, overshoot(d.MeasureStart, p13, exe))
		line(d.MeasureEnd, overshoot(d.MeasureEnd, p14, exe))
		line(p13, p14)
		measured = r3.Norm(r3.Sub(p14, p13))
		data.TextRotation = math.Atan2(p14.Y-p13.Y, p14.X-p13.X)
		if p13 == p14 {
			data.TextRotation = radians(d.Angle)
		}

	case entities.DimAngular, entities.DimAngular3Pt:
		angular = true
		vertex, a, b, at := angularRays(d)
		arc, points := r.angularArc(vertex, a, b, at)
		for i := 1; i < len(points); i++ {
			line(points[i-1], points[i])
		}
		line(a, points[0])
		line(b, points[len(points)-1])
		measured = arc.AngleDegrees
		suffix = "°"
		data.Arc = arc

	case entities.DimRadius:
		line(d.DefPoint, d.Vertex)
		measured = r3.Norm(r3.Sub(d.Vertex, d.DefPoint))
		prefix = "R"

	case entities.DimDiameter:
		line(d.Vertex, d.DefPoint)
		measured = r3.Norm(r3.Sub(d.DefPoint, d.Vertex))
		prefix = "⌀"

	case entities.DimOrdinate:
		line(d.MeasureStart, d.MeasureEnd)
		if d.Flags&ordinateX != 0 {
			measured = math.Abs(d.MeasureStart.X - d.DefPoint.X)
		} else {
			measured = math.Abs(d.MeasureStart.Y - d.DefPoint.Y)
		}

	default:
		Logger().Debug("dimension: unknown type", "handle", d.Handle, "flags", d.Flags)
	}

	// 文件记录的测量值优先；角度标注的组码 42 是弧度，统一用几何计算的角度
	if v := d.GetCleanVal(); v > 0 && !angular {
		measured = v
	}
	data.Measurement = measured
	data.Text = dimensionText(d.Text, prefix+formatMeasure(measured, style.Precision)+suffix)

	rd.Geometry = m.geometry(PrimitiveLines, rd.Color)
	rd.Material = newMaterial(MaterialLine, rd.Color, SideFront)
	rd.Material.LineWidth = lineWidth(d.LineWeight)
	if len(m.points) > 0 {
		setBounds(&rd, m.points)
	} else {
		setBounds(&rd, []r3.Vec{d.DefPoint})
	}
	rd.Dimension = data
	return rd
}

// angularRays 返回角度顶点、两条射线上的点和圆弧位置。
// 两线角度标注的顶点是两条线的交点，射线指向各自离顶点较远的端点；平行时退化到 13 点。
func angularRays(d *entities.Dimension) (vertex, a, b, at r3.Vec) {
	if d.DimType == entities.DimAngular3Pt {
		return d.Vertex, d.MeasureStart, d.MeasureEnd, d.DefPoint
	}

	vertex = d.MeasureStart
	if p, ok := intersect(d.MeasureStart, d.MeasureEnd, d.Vertex, d.DefPoint); ok {
		vertex = p
	}
	a = farther(vertex, d.MeasureStart, d.MeasureEnd)
	b = farther(vertex, d.Vertex, d.DefPoint)
	return vertex, a, b, d.ArcPoint
}

// angularArc 两射线的夹角取 atan2(|a×b|, a·b)，与射线长度无关；
// 圆弧从 a 射线转向 b 射线，半径为顶点到圆弧位置的距离
func (r *Renderer) angularArc(vertex, a, b, at r3.Vec) (*DimensionArc, []r3.Vec) {
	ra, rb := r3.Sub(a, vertex), r3.Sub(b, vertex)
	angle := math.Atan2(r3.Norm(r3.Cross(ra, rb)), r3.Dot(ra, rb))

	radius := r3.Norm(r3.Sub(at, vertex))
	if radius == 0 {
		radius = math.Min(r3.Norm(ra), r3.Norm(rb))
	}

	start := math.Atan2(ra.Y, ra.X)
	sweep := angle
	if geometry.Cross2D(vec.Vec2{X: ra.X, Y: ra.Y}, vec.Vec2{X: rb.X, Y: rb.Y}) < 0 {
		sweep = -angle
	}
	var points []r3.Vec
	if angle > 0 {
		points = curve.ArcSweep(vertex, radius, start, sweep, r.opts.ArcTolerance, r.opts.MaxArcSegments)
	} else {
		points = []r3.Vec{r3.Add(vertex, r3.Scale(radius, geometry.Normalize(ra)))}
	}

	return &DimensionArc{
		Vertex:       v3(vertex),
		Center:       v3(vertex),
		Radius:       radius,
		StartAngle:   start,
		EndAngle:     start + sweep,
		Angle:        angle,
		AngleDegrees: angle * 180 / math.Pi,
		Points:       v3s(points),
	}, points
}

// intersect 求两条直线在 XY 上的交点
func intersect(p1, p2, p3, p4 r3.Vec) (r3.Vec, bool) {
	d1 := vec.Vec2{X: p2.X - p1.X, Y: p2.Y - p1.Y}
	d2 := vec.Vec2{X: p4.X - p3.X, Y: p4.Y - p3.Y}
	den := geometry.Cross2D(d1, d2)
	if den == 0 {
		return r3.Vec{}, false
	}
	t := geometry.Cross2D(vec.Vec2{X: p3.X - p1.X, Y: p3.Y - p1.Y}, d2) / den
	return r3.Vec{X: p1.X + t*d1.X, Y: p1.Y + t*d1.Y, Z: p1.Z}, true
}

func farther(from, a, b r3.Vec) r3.Vec {
	if r3.Norm(r3.Sub(b, from)) > r3.Norm(r3.Sub(a, from)) {
		return b
	}
	return a
}

// overshoot 延伸线从被测点画到转角点，再超出 exe
func overshoot(origin, corner r3.Vec, exe float64) r3.Vec {
	dir := geometry.Normalize(r3.Sub(corner, origin))
	return r3.Add(corner, r3.Scale(exe, dir))
}

func formatMeasure(v float64, precision int) string {
	precision = min(max(precision, 0), 8)
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// dimensionText 空文字或 "<>" 显示测量值，单个空格表示不显示，
// 其余去掉格式码后把 <> 替换成测量值
func dimensionText(text, value string) string {
	switch text {
	case "", "<>":
		return value
	case " ":
		return ""
	}
	return strings.ReplaceAll(entities.CleanText(text), "<>", value)
}
