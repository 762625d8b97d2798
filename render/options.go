package render

import "github.com/zooyer/dxfgeom/curve"

// Triangulation 选择填充区域的三角剖分方式
type Triangulation string

const (
	// TriangulateEarClip 耳切法，适用于任意简单多边形，自相交时退回扇形
	TriangulateEarClip Triangulation = "earclip"
	// TriangulateFan 以第一个顶点为中心的扇形，只对凸多边形正确
	TriangulateFan Triangulation = "fan"
)

// 文字包围盒的经验比例
const (
	DefaultCharWidthFactor = 0.6
	AscentRatio            = 0.8
	DescentRatio           = 0.2
	DefaultSplineSegments  = 16
)

// Options 渲染参数
type Options struct {
	ArcTolerance    float64 // 弦高误差与半径之比
	MaxArcSegments  int     // 整圆最多的分段数
	SplineSegments  int     // 样条每段的采样数
	CharWidthFactor float64 // 单个字符宽度与字高之比
	Triangulation   Triangulation
}

// Option 修改 Options
//
// 示例：
//
//	r := render.New(render.WithArcTolerance(0.01), render.WithTriangulation(render.TriangulateFan))
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		ArcTolerance:    curve.DefaultTolerance,
		MaxArcSegments:  curve.DefaultMaxArcSegments,
		SplineSegments:  DefaultSplineSegments,
		CharWidthFactor: DefaultCharWidthFactor,
		Triangulation:   TriangulateEarClip,
	}
}

// WithArcTolerance 设置圆弧离散的相对弦高误差，取值 (0, 1)，其他值忽略
func WithArcTolerance(tolerance float64) Option {
	return func(o *Options) {
		if tolerance > 0 && tolerance < 1 {
			o.ArcTolerance = tolerance
		}
	}
}

// WithMaxArcSegments 限制整圆的最大分段数
func WithMaxArcSegments(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxArcSegments = n
		}
	}
}

func WithSplineSegments(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.SplineSegments = n
		}
	}
}

func WithCharWidthFactor(f float64) Option {
	return func(o *Options) {
		if f > 0 {
			o.CharWidthFactor = f
		}
	}
}

func WithTriangulation(t Triangulation) Option {
	return func(o *Options) {
		switch t {
		case TriangulateEarClip, TriangulateFan:
			o.Triangulation = t
		}
	}
}
