// Package render converts entities into renderer-agnostic RenderData: vertex
// buffers, bounds, centroids, transforms, material hints and a per-kind
// payload. Every renderer is a pure function of the entity and the Renderer's
// options, so a single Renderer may be shared between goroutines.
package render

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
	"seehuhn.de/go/geom/vec"

	"github.com/zooyer/dxfgeom/aci"
	"github.com/zooyer/dxfgeom/entities"
	"github.com/zooyer/dxfgeom/geometry"
	"github.com/zooyer/dxfgeom/transform"
)

var (
	ErrNilEntity   = errors.New("render: nil entity")
	ErrUnknownKind = errors.New("render: unknown entity kind")
)

// Renderer 持有渲染参数，零值不可用，使用 New 创建
type Renderer struct {
	opts Options
}

func New(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

func (r *Renderer) Options() Options { return r.opts }

type renderFunc func(r *Renderer, e entities.Entity) RenderData

// bind 把具体类型的渲染方法包装成按 Kind 分发的函数
func bind[T entities.Entity](fn func(*Renderer, T) RenderData) renderFunc {
	return func(r *Renderer, e entities.Entity) RenderData {
		return fn(r, e.(T))
	}
}

// dispatch 覆盖 entities.Kinds() 的全部种类
var dispatch = map[entities.Kind]renderFunc{
	entities.KindDimension: bind((*Renderer).Dimension),
	entities.KindHatch:     bind((*Renderer).Hatch),
	entities.KindMLine:     bind((*Renderer).MLine),
	entities.KindShape:     bind((*Renderer).Shape),
	entities.KindSolid:     bind((*Renderer).Solid),
	entities.KindSpline:    bind((*Renderer).Spline),
	entities.KindText:      bind((*Renderer).Text),
	entities.KindWipeout:   bind((*Renderer).Wipeout),
	entities.KindXLine:     bind((*Renderer).XLine),
}

// Render 按实体种类选择渲染器。e 为 nil 时返回空记录和 ErrNilEntity。
// 具体类型的 nil 指针只有 *entities.Dimension 会得到空记录，其余种类会 panic。
func (r *Renderer) Render(e entities.Entity) (RenderData, error) {
	if e == nil {
		return Empty(""), ErrNilEntity
	}
	fn, ok := dispatch[e.Kind()]
	if !ok {
		return Empty(""), fmt.Errorf("%w: %v", ErrUnknownKind, e.Kind())
	}
	return fn(r, e), nil
}

var defaultRenderer = New()

// Render 使用默认参数渲染
func Render(e entities.Entity) (RenderData, error) {
	return defaultRenderer.Render(e)
}

// Empty 空实体的哨兵记录
func Empty(kind string) RenderData {
	color := aci.Resolve(aci.ByLayer)
	return RenderData{
		Type:             kind,
		Empty:            true,
		Color:            color,
		CoordinateSystem: CoordWorld,
		Geometry:         (&mesh{}).geometry(PrimitivePoints, color),
		Material:         newMaterial(MaterialLine, color, SideFront),
		Transform:        transform.Identity(),
	}
}

// base 填充所有实体共有的样式字段
func base(e entities.Entity) RenderData {
	b := e.Common()
	kind := e.Kind()
	name, flipY := CoordinateSystem(kind)
	color := aci.ResolveWithTransparency(b.Color, b.Transparency)
	return RenderData{
		Type:             kind.String(),
		Handle:           b.Handle,
		Layer:            b.LayerName,
		LineType:         b.LineType,
		LineWeight:       b.LineWeight,
		Visible:          !b.Invisible,
		Color:            color,
		CoordinateSystem: name,
		FlipY:            flipY,
		Transform:        transform.Identity(),
	}
}

func newMaterial(typ string, c aci.Color, side string) Material {
	return Material{
		Type:        typ,
		Color:       c.Hex,
		Opacity:     c.A,
		Transparent: c.Transparent(),
		DepthTest:   true,
		DepthWrite:  !c.Transparent(),
		Side:        side,
	}
}

// lineWidth 线宽组码是 1/100 mm，负数为随层/随块/默认
func lineWidth(weight int) float64 {
	if weight <= 0 {
		return 1
	}
	return float64(weight) / 100
}

// mesh 累积顶点，最后一次性展开成扁平缓冲
type mesh struct {
	points  []r3.Vec
	normals []r3.Vec
	uvs     []vec.Vec2
	indices []int
}

func (m *mesh) add(p, normal r3.Vec) int {
	m.points = append(m.points, p)
	m.normals = append(m.normals, normal)
	return len(m.points) - 1
}

func (m *mesh) addUV(p, normal r3.Vec, uv vec.Vec2) int {
	m.uvs = append(m.uvs, uv)
	return m.add(p, normal)
}

func (m *mesh) geometry(primitive string, c aci.Color) Geometry {
	n := len(m.points)
	g := Geometry{
		Primitive:   primitive,
		VertexCount: n,
		Positions:   make([]float64, 0, 3*n),
		Normals:     make([]float64, 0, 3*n),
		Colors:      make([]float64, 0, 3*n),
		UVs:         []float64{},
		Indices:     append(make([]int, 0, len(m.indices)), m.indices...),
	}
	rgb := c.Float()
	for i, p := range m.points {
		nv := m.normals[i]
		g.Positions = append(g.Positions, p.X, p.Y, p.Z)
		g.Normals = append(g.Normals, nv.X, nv.Y, nv.Z)
		g.Colors = append(g.Colors, rgb[0], rgb[1], rgb[2])
	}
	if len(m.uvs) == n && n > 0 {
		g.UVs = make([]float64, 0, 2*n)
		for _, uv := range m.uvs {
			g.UVs = append(g.UVs, uv.X, uv.Y)
		}
	}
	return g
}

// setBounds 根据点集填写包围盒，质心取点的平均值
func setBounds(rd *RenderData, points []r3.Vec) {
	box := geometry.Bounds(points)
	rd.Bounds = Bounds{
		Min:    v3(box.Min),
		Max:    v3(box.Max),
		Center: v3(box.Center()),
		Size:   v3(box.Size()),
	}
	box2 := geometry.Bounds2D(geometry.Flatten(points))
	rd.Bounds2D = Bounds2D{
		Min:    v2(box2.Min),
		Max:    v2(box2.Max),
		Center: v2(box2.Center()),
		Size:   v2(box2.Size()),
	}
	setCentroid(rd, geometry.Centroid(points))
}

func setCentroid(rd *RenderData, c r3.Vec) {
	rd.Centroid = v3(c)
	rd.Centroid2D = Vec2{c.X, c.Y}
}

func v3(p r3.Vec) Vec3 { return Vec3{p.X, p.Y, p.Z} }

func v2(p vec.Vec2) Vec2 { return Vec2{p.X, p.Y} }

func v3s(points []r3.Vec) []Vec3 {
	out := make([]Vec3, len(points))
	for i, p := range points {
		out[i] = v3(p)
	}
	return out
}

func cloneFloats(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	return out
}
