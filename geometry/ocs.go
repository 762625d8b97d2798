package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

var (
	worldY = r3.Vec{Y: 1}
	worldZ = r3.Vec{Z: 1}
)

// ArbitraryAxis returns the OCS basis for an extrusion direction using the
// DXF arbitrary axis algorithm. A zero normal is treated as +Z.
func ArbitraryAxis(normal r3.Vec) (ax, ay, az r3.Vec) {
	az = Normalize(normal)
	if az == (r3.Vec{}) {
		az = worldZ
	}
	if math.Abs(az.X) < 1.0/64 && math.Abs(az.Y) < 1.0/64 {
		ax = Normalize(r3.Cross(worldY, az))
	} else {
		ax = Normalize(r3.Cross(worldZ, az))
	}
	ay = Normalize(r3.Cross(az, ax))
	return
}

// IsWorldZ reports whether normal is exactly +Z, in which case OCS and WCS coincide.
func IsWorldZ(normal r3.Vec) bool {
	return normal == worldZ || normal == (r3.Vec{})
}

// OCSToWCS maps a point given in the object coordinate system of normal
// into world coordinates.
func OCSToWCS(p, normal r3.Vec) r3.Vec {
	if IsWorldZ(normal) {
		return p
	}
	ax, ay, az := ArbitraryAxis(normal)
	return r3.Add(r3.Add(r3.Scale(p.X, ax), r3.Scale(p.Y, ay)), r3.Scale(p.Z, az))
}

// OCSToWCSAll maps every point of points.
func OCSToWCSAll(points []r3.Vec, normal r3.Vec) []r3.Vec {
	out := make([]r3.Vec, len(points))
	for i, p := range points {
		out[i] = OCSToWCS(p, normal)
	}
	return out
}

// UnitNormal returns the normalised extrusion direction, +Z for a zero vector.
func UnitNormal(normal r3.Vec) r3.Vec {
	_, _, az := ArbitraryAxis(normal)
	return az
}
