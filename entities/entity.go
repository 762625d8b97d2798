package entities

import (
	"github.com/zooyer/dxfgeom/aci"
	"github.com/zooyer/dxfgeom/core"
)

// Kind 是实体种类的判别值，集合是封闭的
type Kind int

const (
	KindDimension Kind = iota + 1
	KindHatch
	KindMLine
	KindShape
	KindSolid
	KindSpline
	KindText
	KindWipeout
	KindXLine
)

var kindNames = [...]string{
	KindDimension: "DIMENSION",
	KindHatch:     "HATCH",
	KindMLine:     "MLINE",
	KindShape:     "SHAPE",
	KindSolid:     "SOLID",
	KindSpline:    "SPLINE",
	KindText:      "TEXT",
	KindWipeout:   "WIPEOUT",
	KindXLine:     "XLINE",
}

func (k Kind) String() string {
	if k <= 0 || int(k) >= len(kindNames) {
		return "UNKNOWN"
	}
	return kindNames[k]
}

// Kinds 返回全部实体种类
func Kinds() []Kind {
	return []Kind{
		KindDimension, KindHatch, KindMLine, KindShape, KindSolid,
		KindSpline, KindText, KindWipeout, KindXLine,
	}
}

// Entity 是一切几何实体的接口
type Entity interface {
	// Parse 从当前标签读到下一个组码 0，返回扫描过程中的读取错误
	Parse(scanner *core.Scanner) error
	Kind() Kind
	Type() string
	Layer() string
	Common() *BaseEntity
}

// BaseEntity 存放所有实体通用的属性（图层、线型、线宽、颜色、透明度、可见性、法向）
type BaseEntity struct {
	TypeName     string
	Handle       string
	LayerName    string
	LineType     string
	LineWeight   int     // 组码 370，单位 1/100 mm；-1 随层，-2 随块，-3 默认
	Color        int     // 组码 62，ACI 颜色号；256 随层，0 随块
	Transparency float64 // 组码 440 换算后的透明度百分比
	Invisible    bool    // 组码 60
	Normal       core.Point
}

// NewBase 返回带默认值的通用属性
func NewBase(typeName string) BaseEntity {
	return BaseEntity{
		TypeName:   typeName,
		LineType:   "BYLAYER",
		LineWeight: -1,
		Color:      aci.ByLayer,
		Normal:     core.ZAxis,
	}
}

func (b *BaseEntity) Type() string { return b.TypeName }

func (b *BaseEntity) Layer() string { return b.LayerName }

func (b *BaseEntity) Common() *BaseEntity { return b }

// parseCommon 处理所有实体共有的组码，已处理返回 true
func (b *BaseEntity) parseCommon(tag core.Tag) bool {
	switch tag.Code {
	case 5:
		b.Handle = tag.AsString()
	case 8:
		b.LayerName = tag.AsString()
	case 6:
		b.LineType = tag.AsString()
	case 62:
		b.Color = tag.AsInt()
	case 370:
		b.LineWeight = tag.AsInt()
	case 440:
		b.Transparency = aci.TransparencyFromDXF(tag.AsInt())
	case 60:
		b.Invisible = tag.AsBool()
	case 210, 220, 230:
		core.SetAxis(&b.Normal, tag.Code, tag.AsFloat())
	default:
		return false
	}
	return true
}

// EntityFactory 定义了如何从标签流中创建一个实体
type EntityFactory func() Entity

var registry = map[string]EntityFactory{}

// Register 允许以后动态扩展新的实体类型
func Register(typeName string, factory EntityFactory) {
	registry[typeName] = factory
}

// CreateEntity 根据实体名称生产对应的结构体
func CreateEntity(typeName string) Entity {
	if factory, ok := registry[typeName]; ok {
		return factory()
	}
	return nil
}

// parseLoop 按老规矩逐个组码回调，直到下一个实体 (组码 0) 或 EOF
func parseLoop(scanner *core.Scanner, fn func(tag core.Tag)) {
	for {
		fn(scanner.LastTag)
		if !scanner.Next() || scanner.LastTag.Code == 0 {
			break
		}
	}
}
