package entities

import (
	"math"
	"strings"
	"testing"

	"github.com/zooyer/dxfgeom/core"
)

// parse 读取第一个实体，src 以 "0\n<名称>" 开头
func parse(t *testing.T, src string) Entity {
	t.Helper()
	scanner := core.NewScanner(strings.NewReader(src))
	if !scanner.Next() {
		t.Fatalf("读取失败: %v", scanner.Err())
	}
	ent := CreateEntity(scanner.LastTag.Value)
	if ent == nil {
		t.Fatalf("未注册的实体: %s", scanner.LastTag.Value)
	}
	if err := ent.Parse(scanner); err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	return ent
}

func TestKinds(t *testing.T) {
	names := map[Kind]string{}
	for _, k := range Kinds() {
		names[k] = k.String()
	}
	if len(names) != 9 {
		t.Fatalf("期望 9 种实体, 得到 %d", len(names))
	}
	if Kind(0).String() != "UNKNOWN" || Kind(100).String() != "UNKNOWN" {
		t.Error("越界的 Kind 应为 UNKNOWN")
	}
	tests := map[string]Kind{
		"DIMENSION": KindDimension, "HATCH": KindHatch, "MLINE": KindMLine,
		"SHAPE": KindShape, "SOLID": KindSolid, "TRACE": KindSolid,
		"SPLINE": KindSpline, "TEXT": KindText, "MTEXT": KindText,
		"WIPEOUT": KindWipeout, "XLINE": KindXLine,
	}
	for name, kind := range tests {
		ent := CreateEntity(name)
		if ent == nil || ent.Kind() != kind || ent.Type() != name {
			t.Errorf("CreateEntity(%s) = %v", name, ent)
		}
	}
	if CreateEntity("CIRCLE") != nil {
		t.Error("CIRCLE 不应被注册")
	}
}

func TestParseCommon(t *testing.T) {
	ent := parse(t, "0\nXLINE\n5\n2A\n8\nWalls\n6\nDASHED\n62\n3\n370\n25\n440\n33554559\n60\n1\n210\n0\n220\n0\n230\n-1\n10\n1\n20\n2\n30\n0\n11\n0\n21\n1\n31\n0\n0\nEOF\n")
	b := ent.Common()
	if b.Handle != "2A" || b.LayerName != "Walls" || b.LineType != "DASHED" || b.Color != 3 || b.LineWeight != 25 {
		t.Errorf("通用属性不符: %+v", b)
	}
	if !b.Invisible || b.Normal.Z != -1 {
		t.Errorf("可见性或法向不符: %+v", b)
	}
	// 0x0200007F -> alpha 127
	if b.Transparency < 50 || b.Transparency > 51 {
		t.Errorf("透明度 = %v", b.Transparency)
	}
	x := ent.(*XLine)
	if x.BasePoint != (core.Point{X: 1, Y: 2}) || x.Direction != (core.Point{Y: 1}) {
		t.Errorf("XLINE 点不符: %+v", x)
	}
}

func TestParseDefaults(t *testing.T) {
	b := parse(t, "0\nSOLID\n10\n0\n20\n0\n11\n1\n21\n0\n12\n0\n22\n1\n").Common()
	if b.Color != 256 || b.LineType != "BYLAYER" || b.LineWeight != -1 || b.Normal != core.ZAxis {
		t.Errorf("默认值不符: %+v", b)
	}
}

func TestParseSolid(t *testing.T) {
	s := parse(t, "0\nTRACE\n10\n0\n20\n0\n11\n1\n21\n0\n12\n0\n22\n1\n39\n2\n0\nEOF\n").(*Solid)
	if !s.IsTriangle() || s.Corners[3] != s.Corners[2] {
		t.Errorf("缺省第四点应等于第三点: %+v", s.Corners)
	}
	if s.Thickness != 2 || s.Type() != "TRACE" {
		t.Errorf("厚度或类型不符: %+v", s)
	}

	s = parse(t, "0\nSOLID\n10\n0\n20\n0\n11\n1\n21\n0\n12\n0\n22\n1\n13\n1\n23\n1\n").(*Solid)
	if s.IsTriangle() {
		t.Error("四边形被识别成三角形")
	}

	// 第四点与第三点只差浮点误差时仍是三角形
	s.Corners[3] = core.Point{X: 1e-12, Y: 1}
	s.Corners[2] = core.Point{Y: 1}
	if !s.IsTriangle() {
		t.Error("近似重合的第四点应视为三角形")
	}
}

func TestParseSpline(t *testing.T) {
	src := "0\nSPLINE\n70\n5\n71\n2\n40\n0\n40\n0\n40\n0\n40\n1\n40\n1\n40\n1\n" +
		"41\n1\n41\n0.7071\n41\n1\n" +
		"10\n1\n20\n0\n30\n0\n10\n1\n20\n1\n30\n0\n10\n0\n20\n1\n30\n0\n" +
		"11\n5\n21\n6\n12\n1\n22\n0\n0\nEOF\n"
	s := parse(t, src).(*Spline)
	if s.Degree != 2 || len(s.Knots) != 6 || len(s.Weights) != 3 || len(s.ControlPoints) != 3 {
		t.Fatalf("样条数据不符: %+v", s)
	}
	if s.ControlPoints[1] != (core.Point{X: 1, Y: 1}) {
		t.Errorf("控制点 = %v", s.ControlPoints[1])
	}
	if !s.Closed() || s.Periodic() || !s.Rational() {
		t.Errorf("标志位不符: %d", s.Flags)
	}
	if len(s.FitPoints) != 1 || s.FitPoints[0] != (core.Point{X: 5, Y: 6}) {
		t.Errorf("拟合点 = %v", s.FitPoints)
	}
	if !s.HasStartTan || s.HasEndTan || s.StartTangent.X != 1 {
		t.Errorf("切线不符: %+v", s)
	}
}

func TestParseHatch(t *testing.T) {
	src := "0\nHATCH\n8\nH\n2\nSOLID\n70\n1\n71\n0\n30\n2.5\n91\n2\n" +
		// 多段线边界，带一个凸度
		"92\n3\n72\n1\n73\n1\n93\n3\n10\n0\n20\n0\n42\n1\n10\n10\n20\n0\n10\n10\n20\n10\n97\n0\n" +
		// 普通边界：直线 + 圆弧 + 椭圆弧
		"92\n0\n93\n3\n72\n1\n10\n0\n20\n0\n11\n1\n21\n0\n" +
		"72\n2\n10\n0\n20\n0\n40\n1\n50\n0\n51\n90\n73\n0\n" +
		"72\n3\n10\n0\n20\n0\n11\n2\n21\n0\n40\n0.5\n50\n0\n51\n180\n73\n1\n97\n0\n" +
		"75\n1\n76\n1\n52\n45\n41\n2\n77\n1\n450\n0\n0\nEOF\n"
	h := parse(t, src).(*Hatch)
	if !h.SolidFill || h.PatternName != "SOLID" || h.Elevation != 2.5 || h.LayerName != "H" {
		t.Errorf("头部不符: %+v", h)
	}
	if len(h.Paths) != 2 {
		t.Fatalf("边界数 = %d", len(h.Paths))
	}

	p := h.Paths[0]
	if !p.IsPolyline() || !p.IsExternal() || !p.HasBulge || !p.Closed || len(p.Vertices) != 3 {
		t.Fatalf("多段线边界不符: %+v", p)
	}
	if p.Vertices[0].Bulge != 1 || p.Vertices[2].Point != (core.Point{X: 10, Y: 10}) || p.EdgeCount() != 3 {
		t.Errorf("多段线顶点不符: %+v", p.Vertices)
	}

	p = h.Paths[1]
	if p.IsPolyline() || p.IsExternal() || len(p.Edges) != 3 {
		t.Fatalf("普通边界不符: %+v", p)
	}
	if e := p.Edges[0]; e.Type != EdgeLine || e.End != (core.Point{X: 1}) {
		t.Errorf("直线边 = %+v", e)
	}
	if e := p.Edges[1]; e.Type != EdgeArc || e.Radius != 1 || e.EndAngle != 90 || e.CCW {
		t.Errorf("圆弧边 = %+v", e)
	}
	if e := p.Edges[2]; e.Type != EdgeEllipse || e.Ratio != 0.5 || e.MajorAxis.X != 2 || !e.CCW {
		t.Errorf("椭圆边 = %+v", e)
	}

	if h.Style != 1 || h.PatternAngle != 45 || h.PatternScale != 2 || !h.Double || h.Gradient {
		t.Errorf("图案数据不符: %+v", h)
	}
	if EdgeSpline.String() != "spline" || EdgeType(9).String() != "unknown" {
		t.Error("EdgeType.String 不符")
	}
}

func TestParseMLine(t *testing.T) {
	src := "0\nMLINE\n2\nstandard\n40\n2\n70\n1\n71\n3\n73\n2\n10\n0\n20\n0\n30\n0\n" +
		"11\n0\n21\n0\n31\n0\n12\n1\n22\n0\n32\n0\n13\n0\n23\n1\n33\n0\n" +
		"74\n2\n41\n0\n41\n0\n75\n0\n74\n2\n41\n0\n41\n0\n75\n0\n" +
		"11\n10\n21\n0\n31\n0\n12\n1\n22\n0\n32\n0\n13\n0\n23\n1\n33\n0\n" +
		"74\n1\n41\n3\n75\n0\n74\n1\n41\n4\n75\n0\n0\nEOF\n"
	m := parse(t, src).(*MLine)
	if m.StyleName != "STANDARD" || m.Scale != 2 || m.Justification != JustifyZero || !m.Closed() {
		t.Errorf("头部不符: %+v", m)
	}
	if len(m.Vertices) != 2 {
		t.Fatalf("顶点数 = %d", len(m.Vertices))
	}
	v := m.Vertices[1]
	if v.Position.X != 10 || v.Direction.X != 1 || v.Miter.Y != 1 {
		t.Errorf("顶点不符: %+v", v)
	}
	if len(v.Params) != 2 || v.Params[1][0] != 4 || len(v.FillParams) != 2 {
		t.Errorf("参数表不符: %+v", v)
	}
	if len(m.Style.Elements) != 2 || m.Style.Elements[0].Offset != 0.5 {
		t.Errorf("默认样式不符: %+v", m.Style)
	}
}

func TestParseText(t *testing.T) {
	src := "0\nTEXT\n1\n Hello\n10\n1\n20\n2\n11\n5\n21\n2\n40\n2.5\n50\n30\n41\n0.8\n7\nROMANS\n71\n2\n72\n1\n73\n2\n0\nEOF\n"
	tx := parse(t, src).(*Text)
	if tx.Content != " Hello" || tx.Height != 2.5 || tx.Rotation != 30 || tx.WidthFactor != 0.8 {
		t.Errorf("文字不符: %+v", tx)
	}
	if !tx.HasAlignPoint || tx.AlignPoint.X != 5 || tx.HAlign != HAlignCenter || tx.VAlign != VAlignMiddle {
		t.Errorf("对齐不符: %+v", tx)
	}
	if !tx.MirrorX() || tx.MirrorY() || tx.Multiline {
		t.Errorf("镜像不符: %+v", tx)
	}
}

func TestParseMText(t *testing.T) {
	src := "0\nMTEXT\n10\n1\n20\n1\n40\n3\n41\n50\n71\n5\n3\n{\\fArial|b1;First}\\P\n1\nSecond %%d\n11\n0\n21\n1\n31\n0\n0\nEOF\n"
	tx := parse(t, src).(*Text)
	if !tx.Multiline || tx.Type() != "MTEXT" {
		t.Fatalf("应为多行文字: %+v", tx)
	}
	if tx.Content != "First\nSecond °" {
		t.Errorf("内容 = %q", tx.Content)
	}
	if tx.HAlign != HAlignCenter || tx.VAlign != VAlignMiddle {
		t.Errorf("附着点 5 应为居中: %d/%d", tx.HAlign, tx.VAlign)
	}
	if math.Abs(tx.Rotation-90) > 1e-9 || tx.ReferenceWidth != 50 || tx.Height != 3 {
		t.Errorf("旋转或宽度不符: %+v", tx)
	}
}

func TestAttachment(t *testing.T) {
	tests := []struct {
		point, h, v int
	}{
		{1, HAlignLeft, VAlignTop},
		{3, HAlignRight, VAlignTop},
		{4, HAlignLeft, VAlignMiddle},
		{8, HAlignCenter, VAlignBottom},
		{9, HAlignRight, VAlignBottom},
		{0, HAlignLeft, VAlignTop},
	}
	for _, tt := range tests {
		if h, v := attachment(tt.point); h != tt.h || v != tt.v {
			t.Errorf("attachment(%d) = %d/%d, 期望 %d/%d", tt.point, h, v, tt.h, tt.v)
		}
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{`\H2.5x;Big`, "Big"},
		{`{\C1;red} text`, "red text"},
		{`\Lunder\l`, "under"},
		{`A\PB`, "A\nB"},
		{"%%c10 %%p0.1", "⌀10 ±0.1"},
	}
	for _, tt := range tests {
		if got := CleanText(tt.in); got != tt.want {
			t.Errorf("CleanText(%q) = %q, 期望 %q", tt.in, got, tt.want)
		}
	}
}

func TestParseShapeWipeout(t *testing.T) {
	s := parse(t, "0\nSHAPE\n2\nBOX\n10\n3\n20\n4\n40\n2\n50\n45\n51\n10\n39\n1\n").(*Shape)
	if s.Name != "BOX" || s.InsertPoint.Y != 4 || s.Size != 2 || s.Rotation != 45 || s.RelativeScale != 1 || s.Oblique != 10 {
		t.Errorf("SHAPE 不符: %+v", s)
	}

	src := "0\nWIPEOUT\n10\n-0.5\n20\n-0.5\n11\n0.01\n21\n0\n12\n0\n22\n0.01\n13\n100\n23\n200\n" +
		"70\n7\n280\n1\n71\n2\n14\n-0.5\n24\n-0.5\n14\n99.5\n24\n-0.5\n14\n49.5\n24\n199.5\n0\nEOF\n"
	w := parse(t, src).(*Wipeout)
	if w.ImageSize != [2]float64{100, 200} || w.UVector.X != 0.01 || w.VVector.Y != 0.01 {
		t.Errorf("WIPEOUT 不符: %+v", w)
	}
	if w.ClipType != ClipPolygon || len(w.ClipVertices) != 3 || w.ClipVertices[2].Y != 199.5 || !w.Clipping {
		t.Errorf("裁剪边界不符: %+v", w)
	}
}

func TestParseDimension(t *testing.T) {
	src := "0\nDIMENSION\n2\n*D1\n3\niso-25\n70\n33\n42\n10\n1\n<> mm\n" +
		"10\n0\n20\n5\n13\n0\n23\n0\n14\n10\n24\n0\n0\nEOF\n"
	d := parse(t, src).(*Dimension)
	if d.DimType != DimAligned || d.Flags != 33 || d.StyleName != "ISO-25" || d.BlockName != "*D1" {
		t.Errorf("标注头部不符: %+v", d)
	}
	if d.GetCleanVal() != 10 {
		t.Errorf("测量值 = %v", d.GetCleanVal())
	}
	p13, p14 := d.GetExtensionPoints()
	if p13 != (core.Point{Y: 5}) || p14 != (core.Point{X: 10, Y: 5}) {
		t.Errorf("延伸点 = %v %v", p13, p14)
	}
	if d.Style != DefaultDimStyle() {
		t.Errorf("默认样式 = %+v", d.Style)
	}
	if DimAngular3Pt.String() != "angular3pt" || DimType(9).String() != "unknown" {
		t.Error("DimType.String 不符")
	}
}

func TestParseReadError(t *testing.T) {
	names := []string{"DIMENSION", "HATCH", "MLINE", "SHAPE", "SOLID", "SPLINE", "TEXT", "MTEXT", "WIPEOUT", "XLINE"}
	for _, name := range names {
		scanner := core.NewScanner(strings.NewReader("0\n" + name + "\n10\n1\nbad\n2\n"))
		if !scanner.Next() {
			t.Fatalf("读取失败: %v", scanner.Err())
		}
		if err := CreateEntity(name).Parse(scanner); err == nil {
			t.Errorf("%s: 非法组码应当返回错误", name)
		}
	}
}
