package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zooyer/dxfgeom/entities"
	"github.com/zooyer/dxfgeom/geometry"
	"github.com/zooyer/dxfgeom/transform"
)

// XLineHalfLength 构造线两端各画出的长度，总长恒为 2 倍
const XLineHalfLength = 1000.0

// XLine 把无限长的构造线画成以基点为中点、固定长度的线段。
// 角度直接取 atan2(dir.y, dir.x)，范围 (-π, π]，不做归一化。
func (r *Renderer) XLine(x *entities.XLine) RenderData {
	rd := base(x)

	dir := geometry.Normalize(x.Direction)
	if dir == (r3.Vec{}) {
		Logger().Debug("xline: zero direction", "handle", x.Handle)
	}
	start := r3.Sub(x.BasePoint, r3.Scale(XLineHalfLength, dir))
	end := r3.Add(x.BasePoint, r3.Scale(XLineHalfLength, dir))
	angle := math.Atan2(dir.Y, dir.X)

	normal := geometry.UnitNormal(x.Normal)
	m := &mesh{}
	m.add(start, normal)
	m.add(end, normal)

	rd.Geometry = m.geometry(PrimitiveLines, rd.Color)
	rd.Material = newMaterial(MaterialLine, rd.Color, SideFront)
	rd.Material.LineWidth = lineWidth(x.LineWeight)
	rd.Transform = transform.New(x.BasePoint, angle, r3.Vec{X: 1, Y: 1, Z: 1})
	setBounds(&rd, m.points)
	setCentroid(&rd, x.BasePoint)

	rd.XLine = &XLineData{
		BasePoint:    v3(x.BasePoint),
		Direction:    v3(dir),
		Start:        v3(start),
		End:          v3(end),
		Angle:        angle,
		AngleDegrees: angle * 180 / math.Pi,
		Length:       2 * XLineHalfLength,
	}
	return rd
}
