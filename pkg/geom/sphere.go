package geom

import (
	"math"

	"github.com/golang/geo/r3"
)

// Sphere is a bounding sphere used for hit tests.
type Sphere struct {
	Center r3.Vector
	Radius float64
}

// Hit returns the nearest ray parameter in [tMin, tMax] at which the ray enters the sphere.
// A sphere with a non-positive radius is never hit.
func (s Sphere) Hit(ray Ray, tMin, tMax float64) (float64, bool) {
	if s.Radius <= 0 {
		return 0, false
	}

	// Quadratic equation coefficients: at² + 2bt + c = 0
	oc := ray.Origin.Sub(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first, then the far one (origin inside the sphere)
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return 0, false
		}
	}
	return root, true
}

// Bounds returns the axis-aligned box enclosing the sphere.
func (s Sphere) Bounds() AABB {
	r := r3.Vector{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return NewAABB(s.Center.Sub(r), s.Center.Add(r))
}
