package entities

import (
	"math"
	"regexp"
	"strings"

	"github.com/zooyer/dxfgeom/core"
)

// 水平对齐 (组码 72)
const (
	HAlignLeft    = 0
	HAlignCenter  = 1
	HAlignRight   = 2
	HAlignAligned = 3
	HAlignMiddle  = 4
	HAlignFit     = 5
)

// 垂直对齐 (组码 73)
const (
	VAlignBaseline = 0
	VAlignBottom   = 1
	VAlignMiddle   = 2
	VAlignTop      = 3
)

// Text 单行文字；MTEXT 也解析成它，附着点折算成对齐方式
type Text struct {
	BaseEntity
	Content        string     // 组码 1 (MTEXT 为 3 + 1 拼接)
	InsertPoint    core.Point // 组码 10
	AlignPoint     core.Point // 组码 11
	HasAlignPoint  bool
	Height         float64 // 组码 40
	Rotation       float64 // 组码 50，角度制
	WidthFactor    float64 // 组码 41
	Oblique        float64 // 组码 51，角度制
	StyleName      string  // 组码 7
	Generation     int     // 组码 71，2 = X 镜像，4 = Y 镜像
	HAlign         int     // 组码 72
	VAlign         int     // 组码 73
	Thickness      float64 // 组码 39
	Multiline      bool    // 来源于 MTEXT
	ReferenceWidth float64 // MTEXT 组码 41
	LineSpacing    float64 // MTEXT 组码 44
}

func init() {
	Register("TEXT", func() Entity {
		return &Text{BaseEntity: NewBase("TEXT"), WidthFactor: 1, Height: 1, StyleName: "STANDARD"}
	})
	Register("MTEXT", func() Entity {
		return &Text{BaseEntity: NewBase("MTEXT"), WidthFactor: 1, Height: 1, StyleName: "STANDARD", Multiline: true, LineSpacing: 1, VAlign: VAlignTop}
	})
}

func (*Text) Kind() Kind { return KindText }

func (t *Text) MirrorX() bool { return t.Generation&2 != 0 }

func (t *Text) MirrorY() bool { return t.Generation&4 != 0 }

func (t *Text) Parse(scanner *core.Scanner) error {
	if t.Multiline {
		return t.parseMText(scanner)
	}
	parseLoop(scanner, func(tag core.Tag) {
		if t.parseCommon(tag) {
			return
		}
		switch tag.Code {
		case 1:
			t.Content = tag.Value
		case 10, 20, 30:
			core.SetAxis(&t.InsertPoint, tag.Code, tag.AsFloat())
		case 11, 21, 31:
			t.HasAlignPoint = true
			core.SetAxis(&t.AlignPoint, tag.Code, tag.AsFloat())
		case 40:
			t.Height = tag.AsFloat()
		case 50:
			t.Rotation = tag.AsFloat()
		case 41:
			t.WidthFactor = tag.AsFloat()
		case 51:
			t.Oblique = tag.AsFloat()
		case 7:
			t.StyleName = tag.AsString()
		case 71:
			t.Generation = tag.AsInt()
		case 72:
			t.HAlign = tag.AsInt()
		case 73:
			t.VAlign = tag.AsInt()
		case 39:
			t.Thickness = tag.AsFloat()
		}
	})
	return scanner.Err()
}

func (t *Text) parseMText(scanner *core.Scanner) error {
	var (
		chunks    strings.Builder
		direction core.Point
		hasDir    bool
	)
	parseLoop(scanner, func(tag core.Tag) {
		if t.parseCommon(tag) {
			return
		}
		switch tag.Code {
		case 3, 1:
			chunks.WriteString(tag.Value)
		case 10, 20, 30:
			core.SetAxis(&t.InsertPoint, tag.Code, tag.AsFloat())
		case 11, 21, 31:
			hasDir = true
			core.SetAxis(&direction, tag.Code, tag.AsFloat())
		case 40:
			t.Height = tag.AsFloat()
		case 41:
			t.ReferenceWidth = tag.AsFloat()
		case 44:
			t.LineSpacing = tag.AsFloat()
		case 50:
			// MTEXT 的旋转角为弧度
			t.Rotation = tag.AsFloat() * 180 / math.Pi
		case 7:
			t.StyleName = tag.AsString()
		case 71:
			t.HAlign, t.VAlign = attachment(tag.AsInt())
		}
	})
	t.Content = CleanText(chunks.String())
	if hasDir && (direction.X != 0 || direction.Y != 0) {
		// 方向向量优先于旋转角
		t.Rotation = math.Atan2(direction.Y, direction.X) * 180 / math.Pi
	}
	return scanner.Err()
}

// attachment 把 MTEXT 附着点 1..9 (左上..右下) 折算成水平、垂直对齐
func attachment(point int) (h, v int) {
	if point < 1 || point > 9 {
		return HAlignLeft, VAlignTop
	}
	h = []int{HAlignLeft, HAlignCenter, HAlignRight}[(point-1)%3]
	v = []int{VAlignTop, VAlignMiddle, VAlignBottom}[(point-1)/3]
	return h, v
}

var (
	reToggle  = regexp.MustCompile(`\\[LlOoKk]`)
	reSpecial = strings.NewReplacer(
		"%%d", "°", "%%D", "°",
		"%%p", "±", "%%P", "±",
		"%%c", "⌀", "%%C", "⌀",
		"%%%", "%",
		`\~`, " ",
		"{", "", "}", "",
	)
)

// CleanText 去掉 MTEXT 格式码，\P 换成换行，%% 控制码换成对应字符
func CleanText(s string) string {
	s = strings.ReplaceAll(s, `\P`, "\n")
	s = reToggle.ReplaceAllString(s, "")
	s = reFormat.ReplaceAllString(s, "")
	return reSpecial.Replace(s)
}
