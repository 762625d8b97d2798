package render

import (
	"gonum.org/v1/gonum/spatial/r3"
	"seehuhn.de/go/geom/vec"

	"github.com/zooyer/dxfgeom/entities"
	"github.com/zooyer/dxfgeom/geometry"
)

// Wipeout 遮罩区域：矩形或多边形边界，总是以遮罩材质 (双面、顶点色) 输出。
// 裁剪顶点是像素坐标，原点在图像左上角像素的中心，Y 向下。
func (r *Renderer) Wipeout(w *entities.Wipeout) RenderData {
	rd := base(w)

	width, height := w.ImageSize[0], w.ImageSize[1]
	pixels := clipBoundary(w)
	ring := geometry.CleanRing(pixels)

	toWCS := func(p vec.Vec2) r3.Vec {
		u := r3.Scale(p.X+0.5, w.UVector)
		v := r3.Scale(height-p.Y-0.5, w.VVector)
		return r3.Add(w.InsertPoint, r3.Add(u, v))
	}

	normal := geometry.Normalize(r3.Cross(w.UVector, w.VVector))
	if normal == (r3.Vec{}) {
		normal = geometry.UnitNormal(w.Normal)
		Logger().Debug("wipeout: degenerate pixel vectors", "handle", w.Handle)
	}

	m := &mesh{}
	boundary := make([]r3.Vec, len(ring))
	for i, p := range ring {
		boundary[i] = toWCS(p)
		var uv vec.Vec2
		if width != 0 {
			uv.X = (p.X + 0.5) / width
		}
		if height != 0 {
			uv.Y = 1 - (p.Y+0.5)/height
		}
		m.addUV(boundary[i], normal, uv)
	}
	m.indices, _ = r.triangulate(ring)

	rd.Geometry = m.geometry(PrimitiveTriangles, rd.Color)
	rd.Material = newMaterial(MaterialMask, rd.Color, SideDouble)
	rd.Material.VertexColors = true
	rd.Material.DepthWrite = true
	setBounds(&rd, boundary)

	// 像素面积乘以单个像素平行四边形的面积
	pixelArea := r3.Norm(r3.Cross(w.UVector, w.VVector))
	c := geometry.AreaCentroid(ring)
	if len(ring) > 0 {
		setCentroid(&rd, toWCS(c))
	}

	clipType := "rect"
	if w.ClipType == entities.ClipPolygon {
		clipType = "polygon"
	}
	rd.Wipeout = &WipeoutData{
		ClipType:     clipType,
		Clipping:     w.Clipping,
		InsertPoint:  v3(w.InsertPoint),
		UVector:      v3(w.UVector),
		VVector:      v3(w.VVector),
		ImageSize:    Vec2{width, height},
		Boundary:     v3s(boundary),
		Area:         geometry.PolygonArea(ring) * pixelArea,
		Perimeter:    geometry.Perimeter(boundary, true),
		DisplayFlags: w.DisplayFlags,
		Brightness:   w.Brightness,
		Contrast:     w.Contrast,
		Fade:         w.Fade,
	}
	return rd
}

// clipBoundary 返回像素坐标下的边界环。矩形裁剪给出两个对角点，
// 没有裁剪顶点时取整幅图像。
func clipBoundary(w *entities.Wipeout) []vec.Vec2 {
	pts := geometry.Flatten(w.ClipVertices)
	if w.ClipType == entities.ClipPolygon && len(pts) >= 3 {
		return pts
	}

	var a, b vec.Vec2
	if len(pts) >= 2 {
		a, b = pts[0], pts[1]
	} else {
		a = vec.Vec2{X: -0.5, Y: -0.5}
		b = vec.Vec2{X: w.ImageSize[0] - 0.5, Y: w.ImageSize[1] - 0.5}
	}
	return []vec.Vec2{{X: a.X, Y: a.Y}, {X: b.X, Y: a.Y}, {X: b.X, Y: b.Y}, {X: a.X, Y: b.Y}}
}

// triangulate 按选项剖分平面环，返回索引和实际使用的方式
func (r *Renderer) triangulate(ring []vec.Vec2) ([]int, Triangulation) {
	if r.opts.Triangulation == TriangulateFan {
		return geometry.Fan(len(ring)), TriangulateFan
	}
	indices, ok := geometry.EarClip(ring)
	if !ok {
		Logger().Debug("triangulate: ring is not simple, fan fallback", "vertices", len(ring))
		return indices, TriangulateFan
	}
	return indices, TriangulateEarClip
}
