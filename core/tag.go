package core

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Tag 代表 DXF 中的一组标签对
type Tag struct {
	Code  int
	Value string
}

// AsFloat 将值转换为 float64
func (t Tag) AsFloat() float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
	return f
}

// AsInt 将值转换为 int
func (t Tag) AsInt() int {
	i, _ := strconv.Atoi(strings.TrimSpace(t.Value))
	return i
}

// AsString 清洗字符串（去除多余空格）
func (t Tag) AsString() string {
	return strings.TrimSpace(t.Value)
}

// AsBool 非零即为真 (组码 70/71 等开关位)
func (t Tag) AsBool() bool {
	return t.AsInt() != 0
}

// Point 代表三维空间中的一个点，直接复用 gonum 的 r3.Vec 以便做向量运算
type Point = r3.Vec

// ZAxis 是默认的拉伸方向 (组码 210/220/230)
var ZAxis = Point{X: 0, Y: 0, Z: 1}

// SetAxis 按组码的十位把坐标分量写入点
// 组码 10/20/30 -> X/Y/Z，11/21/31、210/220/230 同理
func SetAxis(p *Point, code int, value float64) {
	switch (code / 10) % 10 {
	case 1:
		p.X = value
	case 2:
		p.Y = value
	case 3:
		p.Z = value
	}
}
