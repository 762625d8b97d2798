package entities

import (
	"github.com/zooyer/dxfgeom/core"
)

// Shape 形文件中的一个形，只保留插入信息
type Shape struct {
	BaseEntity
	Name          string     // 组码 2
	InsertPoint   core.Point // 组码 10
	Size          float64    // 组码 40
	Rotation      float64    // 组码 50，角度制
	RelativeScale float64    // 组码 41，X 方向比例
	Oblique       float64    // 组码 51，角度制
	Thickness     float64    // 组码 39
}

func init() {
	Register("SHAPE", func() Entity {
		return &Shape{BaseEntity: NewBase("SHAPE"), Size: 1, RelativeScale: 1}
	})
}

func (*Shape) Kind() Kind { return KindShape }

func (s *Shape) Parse(scanner *core.Scanner) error {
	parseLoop(scanner, func(tag core.Tag) {
		if s.parseCommon(tag) {
			return
		}
		switch tag.Code {
		case 2:
			s.Name = tag.AsString()
		case 10, 20, 30:
			core.SetAxis(&s.InsertPoint, tag.Code, tag.AsFloat())
		case 40:
			s.Size = tag.AsFloat()
		case 41:
			s.RelativeScale = tag.AsFloat()
		case 50:
			s.Rotation = tag.AsFloat()
		case 51:
			s.Oblique = tag.AsFloat()
		case 39:
			s.Thickness = tag.AsFloat()
		}
	})
	return scanner.Err()
}
