package render

import "github.com/zooyer/dxfgeom/entities"

const (
	CoordAutoCAD = "AutoCAD"
	CoordWorld   = "World"
)

type coordinateSystem struct {
	name  string
	flipY bool
}

// 各实体上报的坐标系标签不统一，这里逐个保留，不做归并
var coordinateSystems = map[entities.Kind]coordinateSystem{
	entities.KindDimension: {CoordAutoCAD, true},
	entities.KindHatch:     {CoordAutoCAD, true},
	entities.KindSolid:     {CoordAutoCAD, true},
	entities.KindWipeout:   {CoordAutoCAD, true},
	entities.KindMLine:     {CoordWorld, false},
	entities.KindShape:     {CoordWorld, false},
	entities.KindSpline:    {CoordWorld, false},
	entities.KindText:      {CoordWorld, false},
	entities.KindXLine:     {CoordWorld, false},
}

// CoordinateSystem 返回实体种类上报的坐标系标签以及是否需要翻转 Y 轴
func CoordinateSystem(kind entities.Kind) (name string, flipY bool) {
	cs, ok := coordinateSystems[kind]
	if !ok {
		return CoordWorld, false
	}
	return cs.name, cs.flipY
}
