package entities

import (
	"github.com/zooyer/dxfgeom/core"
)

// XLine 构造线：过基点、两端无限延伸
type XLine struct {
	BaseEntity
	BasePoint core.Point // 组码 10
	Direction core.Point // 组码 11，单位方向
}

func init() {
	Register("XLINE", func() Entity {
		return &XLine{BaseEntity: NewBase("XLINE"), Direction: core.Point{X: 1}}
	})
}

func (*XLine) Kind() Kind { return KindXLine }

func (x *XLine) Parse(scanner *core.Scanner) error {
	parseLoop(scanner, func(tag core.Tag) {
		if x.parseCommon(tag) {
			return
		}
		switch tag.Code {
		case 10, 20, 30:
			core.SetAxis(&x.BasePoint, tag.Code, tag.AsFloat())
		case 11, 21, 31:
			core.SetAxis(&x.Direction, tag.Code, tag.AsFloat())
		}
	})
	return scanner.Err()
}
