package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zooyer/dxfgeom/aci"
	"github.com/zooyer/dxfgeom/entities"
	"github.com/zooyer/dxfgeom/geometry"
)

var justifyNames = [...]string{"top", "zero", "bottom"}

// MLine 多线：每条平行线在每个顶点处沿斜接方向偏移。顶点带有参数表时直接使用
// 文件里记录的偏移距离，否则按样式偏移 × 比例并按对正方式平移。
// 方向和斜接向量原样透传，不重新计算。
func (r *Renderer) MLine(ml *entities.MLine) RenderData {
	rd := base(ml)

	style := ml.Style
	if len(style.Elements) == 0 {
		Logger().Debug("mline: style without elements", "handle", ml.Handle, "style", ml.StyleName)
	}
	shift := justifyShift(ml.Justification, style.Elements)

	normal := geometry.UnitNormal(ml.Normal)
	m := &mesh{}
	elements := make([]MLineElementData, len(style.Elements))
	for j, el := range style.Elements {
		offset := (el.Offset + shift) * ml.Scale
		points := make([]r3.Vec, len(ml.Vertices))
		for i, v := range ml.Vertices {
			d := offset
			if j < len(v.Params) && len(v.Params[j]) > 0 {
				d = v.Params[j][0]
			}
			points[i] = r3.Add(v.Position, r3.Scale(d, v.Miter))
		}

		segments := len(points) - 1
		if ml.Closed() && len(points) > 2 {
			segments = len(points)
		}
		for i := 0; i < segments; i++ {
			m.add(points[i], normal)
			m.add(points[(i+1)%len(points)], normal)
		}

		elements[j] = MLineElementData{
			Offset:   offset,
			Color:    elementColor(el.Color),
			LineType: el.LineType,
			Points:   v3s(points),
		}
	}

	centerline := make([]r3.Vec, len(ml.Vertices))
	vertices := make([]MLineVertexData, len(ml.Vertices))
	for i, v := range ml.Vertices {
		centerline[i] = v.Position
		vertices[i] = MLineVertexData{
			Position:  v3(v.Position),
			Direction: v3(v.Direction),
			Miter:     v3(v.Miter),
		}
	}

	rd.Geometry = m.geometry(PrimitiveLines, rd.Color)
	rd.Material = newMaterial(MaterialLine, rd.Color, SideFront)
	rd.Material.LineWidth = lineWidth(ml.LineWeight)
	if len(m.points) > 0 {
		setBounds(&rd, m.points)
	} else {
		setBounds(&rd, centerline)
	}
	setCentroid(&rd, geometry.Centroid(centerline))

	rd.MLine = &MLineData{
		StyleName:     ml.StyleName,
		Scale:         ml.Scale,
		Justification: alignName(justifyNames[:], ml.Justification),
		Closed:        ml.Closed(),
		VertexCount:   len(ml.Vertices),
		Length:        geometry.Perimeter(centerline, ml.Closed() && len(centerline) > 2),
		FillColor:     elementColor(style.FillColor),
		Elements:      elements,
		Vertices:      vertices,
	}
	return rd
}

// justifyShift 对正方式 top 让最上面的线落在顶点上，bottom 让最下面的线落在顶点上
func justifyShift(justification int, elements []entities.MLineElement) float64 {
	if len(elements) == 0 {
		return 0
	}
	top, bottom := math.Inf(-1), math.Inf(1)
	for _, el := range elements {
		top = math.Max(top, el.Offset)
		bottom = math.Min(bottom, el.Offset)
	}
	switch justification {
	case entities.JustifyTop:
		return -top
	case entities.JustifyBottom:
		return -bottom
	}
	return 0
}

// elementColor 随块、随层都落到索引 256 的占位色
func elementColor(index int) aci.Color {
	if index == aci.ByBlock || index == aci.ByLayer {
		return aci.Resolve(aci.ByLayer)
	}
	return aci.Resolve(index)
}
