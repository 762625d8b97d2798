package utils

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/zooyer/golib/xmath"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zooyer/dxfgeom/geometry"
)

func box(x0, y0, x1, y1 float64) geometry.Box {
	return geometry.Box{Min: r3.Vec{X: x0, Y: y0}, Max: r3.Vec{X: x1, Y: y1}}
}

func TestTransformBBox(t *testing.T) {
	// 先放大 2 倍，绕 Z 转 90 度，再平移 (10, 0, 0)
	m := mgl64.Translate3D(10, 0, 0).Mul4(mgl64.HomogRotate3DZ(math.Pi / 2)).Mul4(mgl64.Scale3D(2, 2, 1))
	got := TransformBBox(box(0, 0, 1, 1), [16]float64(m))

	want := box(8, 0, 10, 2)
	for _, pair := range [][2]float64{
		{got.Min.X, want.Min.X}, {got.Min.Y, want.Min.Y},
		{got.Max.X, want.Max.X}, {got.Max.Y, want.Max.Y},
	} {
		if !xmath.Equal(pair[0], pair[1], 1e-9) {
			t.Fatalf("TransformBBox = %+v, 期望 %+v", got, want)
		}
	}
}

func TestMergeBoxes(t *testing.T) {
	boxes := []geometry.Box{
		box(0, 0, 1, 1),
		box(0.5, 0.5, 2, 2),
		box(10, 10, 11, 11),
		box(2.05, 0, 3, 1),
	}
	merged := MergeBoxes(boxes, 0.1)
	if len(merged) != 2 {
		t.Fatalf("期望合并成 2 个, 得到 %d: %+v", len(merged), merged)
	}
	if merged[0] != box(0, 0, 3, 2) {
		t.Errorf("第一个簇 = %+v", merged[0])
	}
}

func TestSeparate(t *testing.T) {
	a, b := box(0, 0, 1, 1), box(2, 0, 3, 1)
	if !IsSeparate(a, b, 0.5) || IsSeparate(a, b, 1) {
		t.Error("IsSeparate 的间距判断不符")
	}
}

func TestExtents(t *testing.T) {
	if _, ok := Extents(nil); ok {
		t.Error("空列表不应有范围")
	}
	nan := geometry.Box{Min: r3.Vec{X: math.NaN()}}
	ext, ok := Extents([]geometry.Box{nan, box(0, 0, 1, 1), box(-1, 2, 0, 3)})
	if !ok || ext != box(-1, 0, 1, 3) {
		t.Errorf("Extents = %+v, %v", ext, ok)
	}
}
