// Package transform composes position, rotation and scale into the
// column-major 4x4 matrix layout consumed by the viewer: the linear block
// occupies indices 0-2, 4-6 and 8-10, the translation 12-14, and index 15 is 1.
package transform

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform is a position/rotation/scale triple together with the matrix it
// describes. Rotation holds Euler angles in radians applied in X, Y, Z order.
// Oblique slants the local Y axis towards +X by that angle (radians) before
// the rotation.
type Transform struct {
	Position [3]float64  `json:"position"`
	Rotation [3]float64  `json:"rotation"`
	Scale    [3]float64  `json:"scale"`
	Oblique  float64     `json:"oblique,omitempty"`
	Matrix   [16]float64 `json:"matrix"`
}

// Identity is the transform that leaves points unchanged.
func Identity() Transform {
	return New(r3.Vec{}, 0, r3.Vec{X: 1, Y: 1, Z: 1})
}

// New builds a planar transform: a single rotation about the local Z axis.
func New(position r3.Vec, rotationZ float64, scale r3.Vec) Transform {
	return FromEuler(position, r3.Vec{Z: rotationZ}, scale)
}

// FromEuler builds a transform with a full three-axis rotation.
func FromEuler(position, rotation, scale r3.Vec) Transform {
	return Transform{
		Position: [3]float64{position.X, position.Y, position.Z},
		Rotation: [3]float64{rotation.X, rotation.Y, rotation.Z},
		Scale:    [3]float64{scale.X, scale.Y, scale.Z},
		Matrix:   compose(position, rotation, 0, scale),
	}
}

// NewOblique is New with the local Y axis slanted by oblique radians, as
// used for obliqued text and shapes.
func NewOblique(position r3.Vec, rotationZ, oblique float64, scale r3.Vec) Transform {
	t := New(position, rotationZ, scale)
	if oblique != 0 {
		t.Oblique = oblique
		t.Matrix = compose(position, r3.Vec{Z: rotationZ}, oblique, scale)
	}
	return t
}

// InBasis places a planar transform in the plane spanned by ax and ay:
// rotation about az, oblique and scale are applied in that plane.
// Rotation reports the Euler angles of the combined rotation.
func InBasis(position, ax, ay, az r3.Vec, rotationZ, oblique float64, scale r3.Vec) Transform {
	if ax == (r3.Vec{X: 1}) && ay == (r3.Vec{Y: 1}) && az == (r3.Vec{Z: 1}) {
		return NewOblique(position, rotationZ, oblique, scale)
	}

	basis := mgl64.Mat4FromCols(
		mgl64.Vec4{ax.X, ax.Y, ax.Z, 0},
		mgl64.Vec4{ay.X, ay.Y, ay.Z, 0},
		mgl64.Vec4{az.X, az.Y, az.Z, 0},
		mgl64.Vec4{0, 0, 0, 1},
	)
	rot := basis.Mul4(mgl64.HomogRotate3DZ(rotationZ))
	m := mgl64.Translate3D(position.X, position.Y, position.Z).
		Mul4(rot).
		Mul4(shear(oblique)).
		Mul4(mgl64.Scale3D(scale.X, scale.Y, scale.Z))

	return Transform{
		Position: [3]float64{position.X, position.Y, position.Z},
		Rotation: Decompose([16]float64(rot)).Rotation,
		Scale:    [3]float64{scale.X, scale.Y, scale.Z},
		Oblique:  oblique,
		Matrix:   [16]float64(m),
	}
}

// compose returns T * Rx * Ry * Rz * K * S, K being the oblique shear.
func compose(position, rotation r3.Vec, oblique float64, scale r3.Vec) [16]float64 {
	m := mgl64.Translate3D(position.X, position.Y, position.Z)
	if rotation.X != 0 {
		m = m.Mul4(mgl64.HomogRotate3DX(rotation.X))
	}
	if rotation.Y != 0 {
		m = m.Mul4(mgl64.HomogRotate3DY(rotation.Y))
	}
	if rotation.Z != 0 {
		m = m.Mul4(mgl64.HomogRotate3DZ(rotation.Z))
	}
	if oblique != 0 {
		m = m.Mul4(shear(oblique))
	}
	m = m.Mul4(mgl64.Scale3D(scale.X, scale.Y, scale.Z))
	return [16]float64(m)
}

// shear 把局部 Y 轴向 +X 倾斜 oblique：x' = x + y·tan(oblique)
func shear(oblique float64) mgl64.Mat4 {
	k := mgl64.Ident4()
	k.Set(0, 1, math.Tan(oblique))
	return k
}

// Rebuild recomputes the matrix from the position, rotation, oblique and
// scale fields.
func (t Transform) Rebuild() Transform {
	position := r3.Vec{X: t.Position[0], Y: t.Position[1], Z: t.Position[2]}
	rotation := r3.Vec{X: t.Rotation[0], Y: t.Rotation[1], Z: t.Rotation[2]}
	scale := r3.Vec{X: t.Scale[0], Y: t.Scale[1], Z: t.Scale[2]}
	if t.Oblique == 0 {
		return FromEuler(position, rotation, scale)
	}
	return Transform{
		Position: t.Position,
		Rotation: t.Rotation,
		Scale:    t.Scale,
		Oblique:  t.Oblique,
		Matrix:   compose(position, rotation, t.Oblique, scale),
	}
}

// Apply transforms p by the matrix.
func (t Transform) Apply(p r3.Vec) r3.Vec {
	v := mgl64.Mat4(t.Matrix).Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// Decompose recovers position, rotation and scale from a matrix built by
// FromEuler. A mirrored matrix (negative determinant) comes back with a
// negative X scale. Oblique is not recovered.
func Decompose(matrix [16]float64) Transform {
	m := mgl64.Mat4(matrix)
	sx := m.Col(0).Vec3().Len()
	sy := m.Col(1).Vec3().Len()
	sz := m.Col(2).Vec3().Len()
	if m.Mat3().Det() < 0 {
		// 旋转不改变手性，镜像只能留在缩放里
		sx = -sx
	}

	// 去掉缩放后的纯旋转矩阵
	r := func(row, col int, s float64) float64 {
		if s == 0 {
			return 0
		}
		return m.At(row, col) / s
	}
	r00, r01, r02 := r(0, 0, sx), r(0, 1, sy), r(0, 2, sz)
	r11, r12 := r(1, 1, sy), r(1, 2, sz)
	r21, r22 := r(2, 1, sy), r(2, 2, sz)

	// R = Rx * Ry * Rz
	var rx, ry, rz float64
	ry = math.Asin(clamp(r02, -1, 1))
	if math.Abs(r02) < 0.9999999 {
		rx = math.Atan2(-r12, r22)
		rz = math.Atan2(-r01, r00)
	} else {
		rx = math.Atan2(r21, r11)
		rz = 0
	}

	return Transform{
		Position: [3]float64{m[12], m[13], m[14]},
		Rotation: [3]float64{rx, ry, rz},
		Scale:    [3]float64{sx, sy, sz},
		Matrix:   matrix,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
