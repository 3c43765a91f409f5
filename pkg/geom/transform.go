package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// Lerp performs standard linear interpolation
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// NormalizeAngle wraps an angle into [-π, π].
func NormalizeAngle(angle float64) float64 {
	return math.Remainder(angle, 2*math.Pi)
}

// EulerXYZ builds a rotation matrix from intrinsic X, then Y, then Z rotations.
func EulerXYZ(rot r3.Vector) mgl64.Mat4 {
	return mgl64.HomogRotate3DX(rot.X).
		Mul4(mgl64.HomogRotate3DY(rot.Y)).
		Mul4(mgl64.HomogRotate3DZ(rot.Z))
}

// Compose returns translate * rotate * scale, the usual object-to-world matrix.
func Compose(pos, rot r3.Vector, scale float64) mgl64.Mat4 {
	return mgl64.Translate3D(pos.X, pos.Y, pos.Z).
		Mul4(EulerXYZ(rot)).
		Mul4(mgl64.Scale3D(scale, scale, scale))
}

// NDC is a pointer position in normalized device coordinates, [-1, 1] on both axes, y up.
type NDC struct {
	X, Y float64
}

// ScreenToNDC maps a pixel position inside a w×h viewport to NDC.
func ScreenToNDC(x, y, w, h float64) NDC {
	if w <= 0 || h <= 0 {
		return NDC{}
	}
	return NDC{
		X: (x/w)*2 - 1,
		Y: -(y/h)*2 + 1,
	}
}
