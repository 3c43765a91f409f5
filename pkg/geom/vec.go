// Package geom holds the small amount of 3D math shared by the scene, the picker
// and the renderers: rays, bounding volumes and transform helpers.
package geom

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// ToMgl converts a position or direction into the mathgl representation.
func ToMgl(v r3.Vector) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// FromMgl converts a mathgl vector back into r3.
func FromMgl(v mgl64.Vec3) r3.Vector {
	return r3.Vector{X: v[0], Y: v[1], Z: v[2]}
}

// TransformPoint applies m to p with w = 1.
func TransformPoint(m mgl64.Mat4, p r3.Vector) r3.Vector {
	return FromMgl(mgl64.TransformCoordinate(ToMgl(p), m))
}

// TransformDirection applies m to d with w = 0, so translation is ignored.
func TransformDirection(m mgl64.Mat4, d r3.Vector) r3.Vector {
	return FromMgl(mgl64.TransformNormal(ToMgl(d), m))
}

// Translation returns the translation column of m.
func Translation(m mgl64.Mat4) r3.Vector {
	return r3.Vector{X: m[12], Y: m[13], Z: m[14]}
}

// UniformScale returns the length of the first basis column of m, the scale of an
// object transform built with a uniform scale.
func UniformScale(m mgl64.Mat4) float64 {
	return mgl64.Vec3{m[0], m[1], m[2]}.Len()
}
