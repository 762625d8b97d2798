package render

import (
	"gonum.org/v1/gonum/spatial/r3"
	"seehuhn.de/go/geom/vec"

	"github.com/zooyer/dxfgeom/entities"
	"github.com/zooyer/dxfgeom/geometry"
)

const (
	SolidFlat     = "flat"
	SolidExtruded = "extruded"
)

// 四边形角点在环上的顺序：DXF 的 SOLID 按 Z 字形存储 1-2-3-4，绕一圈是 1-2-4-3
var (
	quadOrder = []int{0, 1, 3, 2}
	quadUV    = []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	triUV     = []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0.5, Y: 1}}
)

// Solid 三角形或四边形填充。每个顶点显式给出位置、法向、颜色和 UV；
// 厚度非零时生成拉伸棱柱 (上下底 + 侧面)。
func (r *Renderer) Solid(s *entities.Solid) RenderData {
	rd := base(s)

	triangle := s.IsTriangle()
	order, uvs := quadOrder, quadUV
	if triangle {
		order, uvs = []int{0, 1, 2}, triUV
	}

	ocs := make([]r3.Vec, len(order))
	for i, idx := range order {
		ocs[i] = s.Corners[idx]
	}
	ring := geometry.Flatten(ocs)
	var area float64
	if triangle {
		area = geometry.TriangleArea(ring[0], ring[1], ring[2])
	} else {
		area = geometry.QuadArea(ring[0], ring[1], ring[2], ring[3])
	}
	perimeter := geometry.Perimeter(ocs, true)

	normal := geometry.UnitNormal(s.Normal)
	corners := geometry.OCSToWCSAll(ocs, s.Normal)

	m := &mesh{}
	for i, p := range corners {
		m.addUV(p, normal, uvs[i])
	}
	m.indices = geometry.Fan(len(corners))

	geometryType := SolidFlat
	if s.Thickness != 0 {
		geometryType = SolidExtruded
		extrude(m, corners, r3.Scale(s.Thickness, normal), normal)
	} else if area == 0 {
		Logger().Debug("solid: degenerate corners", "handle", s.Handle)
	}

	rd.Geometry = m.geometry(PrimitiveTriangles, rd.Color)
	rd.Material = newMaterial(MaterialSolidFill, rd.Color, SideDouble)
	rd.Material.VertexColors = true
	setBounds(&rd, m.points)

	c := geometry.AreaCentroid(ring)
	setCentroid(&rd, geometry.OCSToWCS(r3.Vec{X: c.X, Y: c.Y, Z: ocs[0].Z}, s.Normal))

	rd.Solid = &SolidData{
		Corners:      v3s(corners),
		Triangle:     triangle,
		Area:         area,
		Perimeter:    perimeter,
		Thickness:    s.Thickness,
		Extruded:     s.Thickness != 0,
		GeometryType: geometryType,
	}
	return rd
}

// extrude 在底面之后追加顶面和侧面。底面已经在 m 中占据前 len(ring) 个顶点。
func extrude(m *mesh, ring []r3.Vec, offset, normal r3.Vec) {
	n := len(ring)
	top := make([]r3.Vec, n)
	for i, p := range ring {
		top[i] = r3.Add(p, offset)
	}

	// 底面朝外：法向与拉伸方向相反
	back := r3.Scale(-1, normal)
	if r3.Dot(normal, offset) < 0 {
		back = normal
		normal = r3.Scale(-1, normal)
	}
	for i := 0; i < n; i++ {
		m.normals[i] = back
	}

	// 顶面
	first := len(m.points)
	for i, p := range top {
		m.addUV(p, normal, m.uvs[i])
	}
	for _, idx := range geometry.Fan(n) {
		m.indices = append(m.indices, first+idx)
	}

	// 侧面：每条边 4 个顶点，法向取边与拉伸方向的叉积
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		side := geometry.Normalize(r3.Cross(r3.Sub(ring[j], ring[i]), offset))
		a := m.addUV(ring[i], side, vec.Vec2{X: 0, Y: 0})
		b := m.addUV(ring[j], side, vec.Vec2{X: 1, Y: 0})
		c := m.addUV(top[j], side, vec.Vec2{X: 1, Y: 1})
		d := m.addUV(top[i], side, vec.Vec2{X: 0, Y: 1})
		m.indices = append(m.indices, a, b, c, a, c, d)
	}
}
