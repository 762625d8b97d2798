package render

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
	"gonum.org/v1/gonum/spatial/r3"
	"seehuhn.de/go/geom/vec"

	"github.com/zooyer/dxfgeom/entities"
	"github.com/zooyer/dxfgeom/geometry"
	"github.com/zooyer/dxfgeom/transform"
)

// 多行文字默认行距为 5/3 字高
const lineAdvance = 5.0 / 3

var (
	hAlignNames = [...]string{"left", "center", "right", "aligned", "middle", "fit"}
	vAlignNames = [...]string{"baseline", "bottom", "middle", "top"}
)

func alignName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return names[0]
	}
	return names[i]
}

// Text 用字符宽度估算包围盒：宽 = 字高 × 单字宽度比 × 宽度因子 × 显示列数 (CJK 占 2 列)。
// 上升取 0.8 字高，下降 0.2 字高；对齐方式决定盒子相对锚点的偏移。
func (r *Renderer) Text(t *entities.Text) RenderData {
	rd := base(t)

	content := norm.NFC.String(t.Content)
	lines := strings.Split(content, "\n")
	columns := 0
	for _, line := range lines {
		columns = max(columns, runewidth.StringWidth(line))
	}

	h := t.Height
	ascent, descent := h*AscentRatio, h*DescentRatio
	width := h * r.opts.CharWidthFactor * t.WidthFactor * float64(columns)
	block := ascent + descent + float64(len(lines)-1)*h*lineAdvance*lineSpacing(t)

	rotation := t.Rotation * math.Pi / 180
	anchor := t.InsertPoint
	hAlign, vAlign := t.HAlign, t.VAlign
	if hAlign == entities.HAlignMiddle && vAlign == entities.VAlignBaseline {
		vAlign = entities.VAlignMiddle
	}
	switch {
	case !t.HasAlignPoint || t.Multiline:
	case hAlign == entities.HAlignAligned || hAlign == entities.HAlignFit:
		// 两点对齐：宽度和方向由插入点到对齐点决定
		d := r3.Sub(t.AlignPoint, t.InsertPoint)
		if l := math.Hypot(d.X, d.Y); l > 0 {
			width = l
			rotation = math.Atan2(d.Y, d.X)
		}
	case hAlign != entities.HAlignLeft || vAlign != entities.VAlignBaseline:
		anchor = t.AlignPoint
	}

	// 局部坐标下盒子的左右和上下
	var x0 float64
	switch hAlign {
	case entities.HAlignCenter, entities.HAlignMiddle:
		x0 = -width / 2
	case entities.HAlignRight:
		x0 = -width
	}
	var top float64
	switch vAlign {
	case entities.VAlignBaseline:
		top = ascent
	case entities.VAlignBottom:
		top = block
	case entities.VAlignMiddle:
		top = block / 2
	}
	x1, y0, y1 := x0+width, top-block, top
	if t.MirrorX() {
		x0, x1 = -x1, -x0
	}
	if t.MirrorY() {
		y0, y1 = -y1, -y0
	}

	cos, sin := math.Cos(rotation), math.Sin(rotation)
	tangent := r3.Vec{X: cos, Y: sin}
	binormal := r3.Vec{X: -sin, Y: cos}
	local := []vec.Vec2{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
	normal := geometry.UnitNormal(t.Normal)

	m := &mesh{}
	for i, p := range local {
		ocs := r3.Add(anchor, r3.Add(r3.Scale(p.X, tangent), r3.Scale(p.Y, binormal)))
		m.addUV(geometry.OCSToWCS(ocs, t.Normal), normal, quadUV[i])
	}
	m.indices = geometry.Fan(4)
	if columns == 0 || h == 0 {
		Logger().Debug("text: empty box", "handle", t.Handle)
	}

	rd.Geometry = m.geometry(PrimitiveTriangles, rd.Color)
	rd.Material = newMaterial(MaterialText, rd.Color, SideDouble)

	sx, sy := t.WidthFactor, 1.0
	if t.MirrorX() {
		tangent, sx = r3.Scale(-1, tangent), -sx
	}
	if t.MirrorY() {
		binormal, sy = r3.Scale(-1, binormal), -sy
	}
	anchorWCS := geometry.OCSToWCS(anchor, t.Normal)
	ax, ay, _ := geometry.ArbitraryAxis(t.Normal)
	oblique := t.Oblique * math.Pi / 180
	rd.Transform = transform.InBasis(anchorWCS, ax, ay, normal, rotation, oblique, r3.Vec{X: sx, Y: sy, Z: 1})
	setBounds(&rd, m.points)

	rd.Text = &TextData{
		Content:     content,
		Lines:       lines,
		Columns:     columns,
		Height:      h,
		Width:       width,
		Ascent:      ascent,
		Descent:     descent,
		Rotation:    rotation * 180 / math.Pi,
		WidthFactor: t.WidthFactor,
		Oblique:     t.Oblique,
		Style:       t.StyleName,
		HAlign:      alignName(hAlignNames[:], t.HAlign),
		VAlign:      alignName(vAlignNames[:], vAlign),
		MirrorX:     t.MirrorX(),
		MirrorY:     t.MirrorY(),
		Multiline:   t.Multiline,
		InsertPoint: v3(geometry.OCSToWCS(t.InsertPoint, t.Normal)),
		AlignPoint:  v3(geometry.OCSToWCS(t.AlignPoint, t.Normal)),
		Anchor:      v3(anchorWCS),
		Tangent:     v3(geometry.OCSToWCS(tangent, t.Normal)),
		Binormal:    v3(geometry.OCSToWCS(binormal, t.Normal)),
	}
	return rd
}

func lineSpacing(t *entities.Text) float64 {
	if t.LineSpacing > 0 {
		return t.LineSpacing
	}
	return 1
}
