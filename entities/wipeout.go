package entities

import (
	"github.com/zooyer/dxfgeom/core"
)

// 裁剪边界类型 (组码 71)
const (
	ClipRect    = 1
	ClipPolygon = 2
)

// Wipeout 用背景色遮挡其后内容的区域
type Wipeout struct {
	BaseEntity
	InsertPoint  core.Point   // 组码 10，图像左下角
	UVector      core.Point   // 组码 11，一个像素在 U 方向的向量
	VVector      core.Point   // 组码 12，一个像素在 V 方向的向量
	ImageSize    [2]float64   // 组码 13/23，像素
	DisplayFlags int          // 组码 70
	Clipping     bool         // 组码 280
	Brightness   int          // 组码 281
	Contrast     int          // 组码 282
	Fade         int          // 组码 283
	ClipType     int          // 组码 71
	ClipVertices []core.Point // 组码 14/24，像素坐标
}

func init() {
	Register("WIPEOUT", func() Entity {
		return &Wipeout{BaseEntity: NewBase("WIPEOUT"), ClipType: ClipRect, Brightness: 50, Contrast: 50}
	})
}

func (*Wipeout) Kind() Kind { return KindWipeout }

func (w *Wipeout) Parse(scanner *core.Scanner) error {
	parseLoop(scanner, func(tag core.Tag) {
		if w.parseCommon(tag) {
			return
		}
		v := tag.AsFloat()
		switch tag.Code {
		case 10, 20, 30:
			core.SetAxis(&w.InsertPoint, tag.Code, v)
		case 11, 21, 31:
			core.SetAxis(&w.UVector, tag.Code, v)
		case 12, 22, 32:
			core.SetAxis(&w.VVector, tag.Code, v)
		case 13:
			w.ImageSize[0] = v
		case 23:
			w.ImageSize[1] = v
		case 70:
			w.DisplayFlags = tag.AsInt()
		case 280:
			w.Clipping = tag.AsBool()
		case 281:
			w.Brightness = tag.AsInt()
		case 282:
			w.Contrast = tag.AsInt()
		case 283:
			w.Fade = tag.AsInt()
		case 71:
			w.ClipType = tag.AsInt()
		case 14:
			w.ClipVertices = append(w.ClipVertices, core.Point{X: v})
		case 24:
			if n := len(w.ClipVertices); n > 0 {
				w.ClipVertices[n-1].Y = v
			}
		}
	})
	return scanner.Err()
}
