package entities

import (
	"strings"

	"github.com/zooyer/dxfgeom/core"
)

// MLine 对正方式 (组码 70)
const (
	JustifyTop    = 0
	JustifyZero   = 1
	JustifyBottom = 2
)

// MLineElement 多线样式中的一条平行线
type MLineElement struct {
	Offset   float64 // 组码 49
	Color    int     // 组码 62
	LineType string  // 组码 6
}

// MLineStyle 对应 OBJECTS 段中的 MLINESTYLE
type MLineStyle struct {
	Name       string
	Flags      int
	FillColor  int
	StartAngle float64 // 组码 51，角度制
	EndAngle   float64 // 组码 52，角度制
	Elements   []MLineElement
}

// DefaultMLineStyle 是 STANDARD 样式：上下各偏移 0.5 的两条线
func DefaultMLineStyle() MLineStyle {
	return MLineStyle{
		Name:       "STANDARD",
		FillColor:  256,
		StartAngle: 90,
		EndAngle:   90,
		Elements: []MLineElement{
			{Offset: 0.5, Color: 256, LineType: "BYLAYER"},
			{Offset: -0.5, Color: 256, LineType: "BYLAYER"},
		},
	}
}

// MLineVertex 多线的一个顶点
type MLineVertex struct {
	Position   core.Point // 组码 11
	Direction  core.Point // 组码 12，该顶点处线段方向
	Miter      core.Point // 组码 13，斜接方向
	Params     [][]float64
	FillParams [][]float64
}

type MLine struct {
	BaseEntity
	StyleName         string     // 组码 2
	Scale             float64    // 组码 40
	Justification     int        // 组码 70
	Flags             int        // 组码 71
	StartPoint        core.Point // 组码 10
	StyleElementCount int        // 组码 73
	Vertices          []MLineVertex
	Style             MLineStyle // 由文档按 StyleName 关联
}

func init() {
	Register("MLINE", func() Entity {
		return &MLine{BaseEntity: NewBase("MLINE"), Scale: 1, Style: DefaultMLineStyle()}
	})
}

func (*MLine) Kind() Kind { return KindMLine }

// Closed 对应标志位 2
func (m *MLine) Closed() bool { return m.Flags&2 != 0 }

func (m *MLine) Parse(scanner *core.Scanner) error {
	var (
		vertex *MLineVertex
		params *[][]float64 // 当前正在填充的参数表
	)
	parseLoop(scanner, func(tag core.Tag) {
		if m.parseCommon(tag) {
			return
		}
		switch tag.Code {
		case 2:
			m.StyleName = strings.ToUpper(tag.AsString())
		case 40:
			m.Scale = tag.AsFloat()
		case 70:
			m.Justification = tag.AsInt()
		case 71:
			m.Flags = tag.AsInt()
		case 73:
			m.StyleElementCount = tag.AsInt()
		case 10, 20, 30:
			core.SetAxis(&m.StartPoint, tag.Code, tag.AsFloat())
		case 11:
			m.Vertices = append(m.Vertices, MLineVertex{Position: core.Point{X: tag.AsFloat()}})
			vertex, params = &m.Vertices[len(m.Vertices)-1], nil
		case 21, 31:
			if vertex != nil {
				core.SetAxis(&vertex.Position, tag.Code, tag.AsFloat())
			}
		case 12, 22, 32:
			if vertex != nil {
				core.SetAxis(&vertex.Direction, tag.Code, tag.AsFloat())
			}
		case 13, 23, 33:
			if vertex != nil {
				core.SetAxis(&vertex.Miter, tag.Code, tag.AsFloat())
			}
		case 74:
			if vertex != nil {
				vertex.Params = append(vertex.Params, make([]float64, 0, tag.AsInt()))
				params = &vertex.Params
			}
		case 75:
			if vertex != nil {
				vertex.FillParams = append(vertex.FillParams, make([]float64, 0, tag.AsInt()))
				params = &vertex.FillParams
			}
		case 41, 42:
			if params != nil && len(*params) > 0 {
				last := len(*params) - 1
				(*params)[last] = append((*params)[last], tag.AsFloat())
			}
		}
	})
	return scanner.Err()
}
