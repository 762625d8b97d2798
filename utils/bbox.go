package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zooyer/dxfgeom/geometry"
)

// TransformBBox 执行矩阵变换：把局部包围盒的 8 个角点变换到世界坐标后重新求包围盒
// matrix 为列主序 4x4，平移位于 12..14
func TransformBBox(local geometry.Box, matrix [16]float64) geometry.Box {
	m := mgl64.Mat4(matrix)
	corners := local.Corners()
	world := make([]r3.Vec, 0, len(corners))
	for _, p := range corners {
		w := m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
		world = append(world, r3.Vec{X: w[0], Y: w[1], Z: w[2]})
	}
	return geometry.Bounds(world)
}

// MergeBoxes 合并重叠 (或间距小于 gap) 的矩形，只看 XY
func MergeBoxes(boxes []geometry.Box, gap float64) []geometry.Box {
	if len(boxes) < 2 {
		return boxes
	}

	for {
		changed := false
		var merged []geometry.Box
		visited := make([]bool, len(boxes))
		for i := 0; i < len(boxes); i++ {
			if visited[i] {
				continue
			}
			curr := boxes[i]
			visited[i] = true
			for j := i + 1; j < len(boxes); j++ {
				if !visited[j] && !IsSeparate(curr, boxes[j], gap) {
					curr = curr.Union(boxes[j])
					visited[j], changed = true, true
				}
			}
			merged = append(merged, curr)
		}
		boxes = merged
		if !changed {
			break
		}
	}

	return boxes
}

// IsSeparate 判断两个包围盒在 XY 上是否完全分离
func IsSeparate(a, b geometry.Box, gap float64) bool {
	return a.Max.X+gap < b.Min.X || a.Min.X-gap > b.Max.X ||
		a.Max.Y+gap < b.Min.Y || a.Min.Y-gap > b.Max.Y
}

// Extents 所有包围盒的并集，跳过含 NaN 的盒子；没有有效盒子时 ok 为 false
func Extents(boxes []geometry.Box) (ext geometry.Box, ok bool) {
	for _, b := range boxes {
		if hasNaN(b.Min) || hasNaN(b.Max) {
			continue
		}
		if !ok {
			ext, ok = b, true
			continue
		}
		ext = ext.Union(b)
	}
	return ext, ok
}

func hasNaN(p r3.Vec) bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z)
}
