package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zooyer/dxfgeom/entities"
	"github.com/zooyer/dxfgeom/geometry"
	"github.com/zooyer/dxfgeom/transform"
	"github.com/zooyer/dxfgeom/utils"
)

// nominalShape 形在局部坐标中占据的单位方块，字形本身交给客户端
var nominalShape = geometry.Box{Max: r3.Vec{X: 1, Y: 1}}

// Shape 形只输出插入点和变换：尺寸与 X 比例进缩放，厚度进 Z 缩放，
// 旋转绕法向，倾斜角斜切局部 Y 轴，整体落在法向对应的 OCS 平面内。
// 包围盒是单位方块经变换后的范围。
func (r *Renderer) Shape(s *entities.Shape) RenderData {
	rd := base(s)

	ax, ay, normal := geometry.ArbitraryAxis(s.Normal)
	insert := geometry.OCSToWCS(s.InsertPoint, s.Normal)
	rotation := s.Rotation * math.Pi / 180
	oblique := s.Oblique * math.Pi / 180

	scaleZ := 1.0
	local := nominalShape
	if s.Thickness != 0 {
		scaleZ = s.Thickness
		local.Max.Z = 1
	}
	scale := r3.Vec{X: s.Size * s.RelativeScale, Y: s.Size, Z: scaleZ}
	rd.Transform = transform.InBasis(insert, ax, ay, normal, rotation, oblique, scale)

	m := &mesh{}
	m.add(insert, normal)
	rd.Geometry = m.geometry(PrimitivePoints, rd.Color)
	rd.Material = newMaterial(MaterialSymbol, rd.Color, SideDouble)

	box := utils.TransformBBox(local, rd.Transform.Matrix)
	setBounds(&rd, []r3.Vec{box.Min, box.Max})
	setCentroid(&rd, insert)

	rd.Shape = &ShapeData{
		Name:          s.Name,
		InsertPoint:   v3(insert),
		Size:          s.Size,
		RelativeScale: s.RelativeScale,
		Rotation:      s.Rotation,
		Oblique:       s.Oblique,
		Thickness:     s.Thickness,
	}
	return rd
}
