package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// AABB represents an axis-aligned bounding box. The zero value is empty.
type AABB struct {
	Min, Max r3.Vector
	valid    bool
}

// NewAABB creates a box from its two corners.
func NewAABB(min, max r3.Vector) AABB {
	return AABB{Min: min, Max: max, valid: true}
}

// BoxFromSize returns a box of the given full size centred at the origin.
func BoxFromSize(w, h, d float64) AABB {
	half := r3.Vector{X: w / 2, Y: h / 2, Z: d / 2}
	return NewAABB(half.Mul(-1), half)
}

// Empty reports whether the box encloses nothing.
func (b AABB) Empty() bool {
	return !b.valid
}

// Union grows b to enclose o.
func (b AABB) Union(o AABB) AABB {
	if o.Empty() {
		return b
	}
	if b.Empty() {
		return o
	}
	return NewAABB(
		r3.Vector{X: math.Min(b.Min.X, o.Min.X), Y: math.Min(b.Min.Y, o.Min.Y), Z: math.Min(b.Min.Z, o.Min.Z)},
		r3.Vector{X: math.Max(b.Max.X, o.Max.X), Y: math.Max(b.Max.Y, o.Max.Y), Z: math.Max(b.Max.Z, o.Max.Z)},
	)
}

// Contains reports whether p lies inside or on the box.
func (b AABB) Contains(p r3.Vector) bool {
	if b.Empty() {
		return false
	}
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Hit tests the ray against the box with the slab method and returns the entry parameter.
// When the origin is inside the box the exit parameter is returned instead.
func (b AABB) Hit(ray Ray, tMin, tMax float64) (float64, bool) {
	if b.Empty() {
		return 0, false
	}
	near, far := math.Inf(-1), math.Inf(1)
	mins := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	maxs := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}
	origin := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	dir := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}

	for axis := 0; axis < 3; axis++ {
		// Ray parallel to the slab
		if math.Abs(dir[axis]) < 1e-12 {
			if origin[axis] < mins[axis] || origin[axis] > maxs[axis] {
				return 0, false
			}
			continue
		}
		inv := 1.0 / dir[axis]
		t1 := (mins[axis] - origin[axis]) * inv
		t2 := (maxs[axis] - origin[axis]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		near = math.Max(near, t1)
		far = math.Min(far, t2)
		if near > far {
			return 0, false
		}
	}

	t := near
	if t < tMin {
		t = far
	}
	if t < tMin || t > tMax {
		return 0, false
	}
	return t, true
}

// HitTransformed tests the ray against the box placed in the world by m (an oriented box).
// The ray is moved into box space without renormalizing, so the returned parameter is
// measured along the original world ray.
func (b AABB) HitTransformed(ray Ray, m mgl64.Mat4, tMin, tMax float64) (float64, bool) {
	if m.Det() == 0 {
		return 0, false
	}
	inv := m.Inv()
	local := Ray{
		Origin:    TransformPoint(inv, ray.Origin),
		Direction: TransformDirection(inv, ray.Direction),
	}
	return b.Hit(local, tMin, tMax)
}
