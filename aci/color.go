// Package aci resolves AutoCAD Color Index numbers to RGB.
//
// Indices 1..255 map through the fixed palette. 0 (ByBlock) and 256 (ByLayer)
// need the containing block or layer to resolve, which this package never has:
// both resolve to a white placeholder and callers that need real inheritance
// must substitute the index before calling Resolve.
package aci

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	ByBlock  = 0
	ByLayer  = 256
	ByEntity = 257
)

// placeholder is used for every index without a palette entry.
var placeholder = [3]uint8{0xFF, 0xFF, 0xFF}

// Color is a resolved colour. A is the opacity in [0,1].
type Color struct {
	Index int     `json:"index"`
	Hex   string  `json:"hex"`
	R     uint8   `json:"r"`
	G     uint8   `json:"g"`
	B     uint8   `json:"b"`
	A     float64 `json:"a"`
}

// Resolve returns the opaque colour for index.
func Resolve(index int) Color {
	return ResolveWithTransparency(index, 0)
}

// ResolveWithTransparency returns the colour for index with opacity
// 1 - percent/100. percent is clamped to [0,100]; NaN passes through.
func ResolveWithTransparency(index int, percent float64) Color {
	rgb := RGB(index)
	return Color{
		Index: index,
		Hex:   Hex(rgb),
		R:     rgb[0],
		G:     rgb[1],
		B:     rgb[2],
		A:     Opacity(percent),
	}
}

// RGB returns the palette entry for index, or the placeholder for sentinels
// and out-of-range values.
func RGB(index int) [3]uint8 {
	if IsSentinel(index) {
		return placeholder
	}
	return palette[index-1]
}

// Hex formats rgb as "#rrggbb".
func Hex(rgb [3]uint8) string {
	return colorful.Color{
		R: float64(rgb[0]) / 255,
		G: float64(rgb[1]) / 255,
		B: float64(rgb[2]) / 255,
	}.Hex()
}

// Opacity converts a transparency percentage to an opacity.
func Opacity(percent float64) float64 {
	switch {
	case percent < 0:
		percent = 0
	case percent > 100:
		percent = 100
	}
	return 1 - percent/100
}

// IsSentinel reports whether index is ByBlock, ByLayer or outside the palette.
func IsSentinel(index int) bool {
	return index < 1 || index > len(palette)
}

// Float returns the colour channels scaled to [0,1], as vertex colour buffers expect.
func (c Color) Float() [3]float64 {
	return [3]float64{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}

// Transparent reports whether the colour is not fully opaque.
func (c Color) Transparent() bool {
	return c.A < 1 || math.IsNaN(c.A)
}

// TransparencyFromDXF converts a group 440 value to a transparency percentage.
// The low byte holds the alpha (0 = fully transparent, 255 = opaque); the
// 0x01000000 flag marks ByBlock and yields 0.
func TransparencyFromDXF(v int) float64 {
	if v&0x02000000 == 0 {
		return 0
	}
	alpha := float64(v & 0xFF)
	return (1 - alpha/255) * 100
}
