package entities

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/zooyer/dxfgeom/core"
)

// DimType 对应组码 70 的低 3 位
type DimType int

const (
	DimRotated DimType = iota
	DimAligned
	DimAngular
	DimDiameter
	DimRadius
	DimAngular3Pt
	DimOrdinate
)

var dimTypeNames = [...]string{"rotated", "aligned", "angular", "diameter", "radius", "angular3pt", "ordinate"}

func (t DimType) String() string {
	if t < 0 || int(t) >= len(dimTypeNames) {
		return "unknown"
	}
	return dimTypeNames[t]
}

// DimStyle 标注样式中渲染用得到的变量
type DimStyle struct {
	Name      string
	Precision int     // 对应组码 271 DIMDEC，显示的小数位数
	ExLimit   float64 // 对应组码 44 DIMEXE，标注线超出延伸线的长度
	Scale     float64 // 对应组码 40 DIMSCALE，全局比例，影响所有标注特征
}

// DefaultDimStyle 是 STANDARD 样式的缺省值
func DefaultDimStyle() DimStyle {
	return DimStyle{Name: "STANDARD", Precision: 4, ExLimit: 0.18, Scale: 1}
}

type Dimension struct {
	BaseEntity
	BlockName         string     // 组码 2
	Flags             int        // 组码 70 原值
	DimType           DimType    // 组码 70 (关键：区分标注类型)
	StyleName         string     // 组码 3 (标注样式名称，用于关联 TABLES)
	ActualMeasurement float64    // 组码 42
	Text              string     // 组码 1
	Angle             float64    // 组码 50，角度制
	TextMidPoint      core.Point // 组码 11 (中间的点)
	DefPoint          core.Point // 组码 10 (标注线起点；角度标注为圆弧位置)
	MeasureStart      core.Point // 组码 13 (被测量的起点)
	MeasureEnd        core.Point // 组码 14 (被测量的终点)
	Vertex            core.Point // 组码 15 (角度顶点 / 半径直径的圆上点)
	ArcPoint          core.Point // 组码 16 (两线角度标注的圆弧位置)
	Style             DimStyle   // 由文档按 StyleName 关联
}

func init() {
	Register("DIMENSION", func() Entity {
		return &Dimension{BaseEntity: NewBase("DIMENSION"), Style: DefaultDimStyle()}
	})
}

func (*Dimension) Kind() Kind { return KindDimension }

func (d *Dimension) Parse(scanner *core.Scanner) error {
	parseLoop(scanner, func(tag core.Tag) {
		if d.parseCommon(tag) {
			return
		}
		switch tag.Code {
		case 2:
			d.BlockName = tag.AsString()
		case 3:
			// 核心：读取标注样式名称
			d.StyleName = strings.ToUpper(tag.AsString())
		case 1:
			d.Text = tag.AsString()
		case 42:
			d.ActualMeasurement = tag.AsFloat()
		case 50:
			d.Angle = tag.AsFloat()
		// 解析核心点坐标
		case 10, 20, 30:
			core.SetAxis(&d.DefPoint, tag.Code, tag.AsFloat())
		case 11, 21, 31:
			core.SetAxis(&d.TextMidPoint, tag.Code, tag.AsFloat())
		case 13, 23, 33:
			core.SetAxis(&d.MeasureStart, tag.Code, tag.AsFloat())
		case 14, 24, 34:
			core.SetAxis(&d.MeasureEnd, tag.Code, tag.AsFloat())
		case 15, 25, 35:
			core.SetAxis(&d.Vertex, tag.Code, tag.AsFloat())
		case 16, 26, 36:
			core.SetAxis(&d.ArcPoint, tag.Code, tag.AsFloat())
		case 70:
			// 组码 70 包含了很多信息，类型只看低 3 位
			d.Flags = tag.AsInt()
			d.DimType = DimType(d.Flags & 0x07)
		}
	})
	return scanner.Err()
}

// GetExtensionPoints 计算标注线上的两个转角点
// 返回：对应 P13 的转角点, 对应 P14 的转角点
func (d *Dimension) GetExtensionPoints() (p13Corner, p14Corner core.Point) {
	// 将角度从角度制转为弧度制；对齐标注沿测量方向
	var v core.Point
	if d.DimType == DimAligned {
		dx, dy := d.MeasureEnd.X-d.MeasureStart.X, d.MeasureEnd.Y-d.MeasureStart.Y
		if l := math.Hypot(dx, dy); l != 0 {
			v = core.Point{X: dx / l, Y: dy / l}
		} else {
			v = core.Point{X: 1}
		}
	} else {
		rad := d.Angle * math.Pi / 180.0
		v = core.Point{X: math.Cos(rad), Y: math.Sin(rad)}
	}

	// 计算 P13 在标注线上的投影
	// 向量 (P13 - P10) 在方向向量 v 上的投影
	dx13 := d.MeasureStart.X - d.DefPoint.X
	dy13 := d.MeasureStart.Y - d.DefPoint.Y
	dot13 := dx13*v.X + dy13*v.Y

	p13Corner = core.Point{
		X: d.DefPoint.X + v.X*dot13,
		Y: d.DefPoint.Y + v.Y*dot13,
		Z: d.DefPoint.Z,
	}

	// 计算 P14 在标注线上的投影
	dx14 := d.MeasureEnd.X - d.DefPoint.X
	dy14 := d.MeasureEnd.Y - d.DefPoint.Y
	dot14 := dx14*v.X + dy14*v.Y

	p14Corner = core.Point{
		X: d.DefPoint.X + v.X*dot14,
		Y: d.DefPoint.Y + v.Y*dot14,
		Z: d.DefPoint.Z,
	}

	return
}

var (
	reFormat = regexp.MustCompile(`\\[A-Za-z][^;\\]*;`)
	reNum    = regexp.MustCompile(`[0-9.]+`)
)

// GetCleanVal 返回组码 42 记录的测量值；没有时从覆盖文字里提取数值，
// 覆盖文字含 <> 时数值来自测量本身，返回 0
func (d *Dimension) GetCleanVal() float64 {
	val := d.ActualMeasurement
	if val <= 0 && d.Text != "" && !strings.Contains(d.Text, "<>") {
		cleanText := reFormat.ReplaceAllString(d.Text, "")
		if match := reNum.FindString(cleanText); match != "" {
			parsed, _ := strconv.ParseFloat(match, 64)
			val = parsed
		}
	}
	return val
}
