package aci

import (
	"math"
	"regexp"
	"testing"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestResolvePalette(t *testing.T) {
	tests := []struct {
		index   int
		hex     string
		r, g, b uint8
	}{
		{1, "#ff0000", 255, 0, 0},
		{2, "#ffff00", 255, 255, 0},
		{3, "#00ff00", 0, 255, 0},
		{5, "#0000ff", 0, 0, 255},
		{7, "#ffffff", 255, 255, 255},
		{8, "#414141", 65, 65, 65},
		{9, "#808080", 128, 128, 128},
		{10, "#ff0000", 255, 0, 0},
		{11, "#ff7f7f", 255, 127, 127},
		{21, "#ff9f7f", 255, 159, 127},
		{22, "#cc3300", 204, 51, 0},
		{140, "#00bfff", 0, 191, 255},
		{250, "#333333", 51, 51, 51},
		{255, "#ffffff", 255, 255, 255},
	}
	for _, tt := range tests {
		c := Resolve(tt.index)
		if c.Hex != tt.hex || c.R != tt.r || c.G != tt.g || c.B != tt.b {
			t.Errorf("Resolve(%d) = %+v, want %s (%d,%d,%d)", tt.index, c, tt.hex, tt.r, tt.g, tt.b)
		}
		if c.Index != tt.index || c.A != 1 {
			t.Errorf("Resolve(%d) index/alpha = %d/%v", tt.index, c.Index, c.A)
		}
	}
}

func TestResolveDeterministic(t *testing.T) {
	for i := 1; i <= 255; i++ {
		a, b := Resolve(i), Resolve(i)
		if a != b {
			t.Fatalf("Resolve(%d) not deterministic: %+v vs %+v", i, a, b)
		}
		if !hexPattern.MatchString(a.Hex) {
			t.Fatalf("Resolve(%d).Hex = %q", i, a.Hex)
		}
		if IsSentinel(i) {
			t.Fatalf("IsSentinel(%d) = true", i)
		}
	}
}

func TestResolveSentinels(t *testing.T) {
	for _, index := range []int{ByBlock, ByLayer, ByEntity, -1, -300, 1000} {
		c := Resolve(index)
		if c.Hex != "#ffffff" {
			t.Errorf("Resolve(%d).Hex = %q, want placeholder", index, c.Hex)
		}
		if c.Index != index {
			t.Errorf("Resolve(%d).Index = %d", index, c.Index)
		}
		if !IsSentinel(index) {
			t.Errorf("IsSentinel(%d) = false", index)
		}
	}
}

func TestOpacity(t *testing.T) {
	tests := []struct {
		percent, want float64
	}{
		{0, 1},
		{25, 0.75},
		{50, 0.5},
		{100, 0},
		{-10, 1},
		{150, 0},
	}
	for _, tt := range tests {
		if got := Opacity(tt.percent); got != tt.want {
			t.Errorf("Opacity(%v) = %v, want %v", tt.percent, got, tt.want)
		}
	}
	if !math.IsNaN(Opacity(math.NaN())) {
		t.Error("Opacity(NaN) should propagate NaN")
	}

	c := ResolveWithTransparency(1, 50)
	if c.A != 0.5 || !c.Transparent() {
		t.Errorf("ResolveWithTransparency(1, 50) = %+v", c)
	}
	if Resolve(1).Transparent() {
		t.Error("opaque colour reported transparent")
	}
}

func TestTransparencyFromDXF(t *testing.T) {
	tests := []struct {
		value int
		want  float64
	}{
		{0x020000FF, 0},
		{0x02000000, 100},
		{0x01000000, 0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := TransparencyFromDXF(tt.value); got != tt.want {
			t.Errorf("TransparencyFromDXF(%#x) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestFloat(t *testing.T) {
	f := Resolve(1).Float()
	if f != [3]float64{1, 0, 0} {
		t.Errorf("Float() = %v", f)
	}
}
