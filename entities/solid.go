package entities

import (
	"github.com/zooyer/dxfgeom/core"
	"github.com/zooyer/dxfgeom/geometry"
)

// Solid 三角形或四边形填充，TRACE 的结构与之相同
type Solid struct {
	BaseEntity
	Corners   [4]core.Point // 组码 10..13
	Thickness float64       // 组码 39
	hasFourth bool
}

func init() {
	for _, name := range []string{"SOLID", "TRACE"} {
		Register(name, func() Entity { return &Solid{BaseEntity: NewBase(name)} })
	}
}

func (*Solid) Kind() Kind { return KindSolid }

// IsTriangle 第四点缺省或与第三点重合时只有三个角
func (s *Solid) IsTriangle() bool {
	return geometry.Coincident(s.Corners[2], s.Corners[3], geometry.Epsilon)
}

func (s *Solid) Parse(scanner *core.Scanner) error {
	parseLoop(scanner, func(tag core.Tag) {
		if s.parseCommon(tag) {
			return
		}
		switch tag.Code {
		case 10, 20, 30:
			core.SetAxis(&s.Corners[0], tag.Code, tag.AsFloat())
		case 11, 21, 31:
			core.SetAxis(&s.Corners[1], tag.Code, tag.AsFloat())
		case 12, 22, 32:
			core.SetAxis(&s.Corners[2], tag.Code, tag.AsFloat())
		case 13, 23, 33:
			s.hasFourth = true
			core.SetAxis(&s.Corners[3], tag.Code, tag.AsFloat())
		case 39:
			s.Thickness = tag.AsFloat()
		}
	})
	if !s.hasFourth {
		s.Corners[3] = s.Corners[2]
	}
	return scanner.Err()
}
