package render

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// Projector maps world space to viewport pixels for renderers that draw in 2D.
// Segments are clipped against the near plane so lines that pass behind the
// viewer keep their visible half.
type Projector struct {
	view, proj    mgl64.Mat4
	width, height float64
	near, far     float64
}

// Segment is a projected line. Depth is the mean view distance of its ends.
type Segment struct {
	X1, Y1, X2, Y2 float64
	Depth          float64
}

func NewProjector(view, proj mgl64.Mat4, width, height int, near, far float64) Projector {
	return Projector{
		view:   view,
		proj:   proj,
		width:  float64(width),
		height: float64(height),
		near:   near,
		far:    far,
	}
}

func (p Projector) toView(v r3.Vector) mgl64.Vec3 {
	return p.view.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 1}).Vec3()
}

func (p Projector) screen(v mgl64.Vec3) (x, y float64) {
	clip := p.proj.Mul4x1(v.Vec4(1))
	nx, ny := clip[0]/clip[3], clip[1]/clip[3]
	return (nx + 1) / 2 * p.width, (1 - ny) / 2 * p.height
}

// Point projects a world point. ok is false outside the near/far range.
func (p Projector) Point(v r3.Vector) (x, y, depth float64, ok bool) {
	vv := p.toView(v)
	depth = -vv.Z()
	if depth < p.near || depth > p.far {
		return 0, 0, 0, false
	}
	x, y = p.screen(vv)
	return x, y, depth, true
}

// Segment projects a world segment, cutting it at the near plane.
func (p Projector) Segment(a, b r3.Vector) (Segment, bool) {
	va, vb := p.toView(a), p.toView(b)
	da, db := -va.Z(), -vb.Z()
	if da < p.near && db < p.near {
		return Segment{}, false
	}
	if da > p.far && db > p.far {
		return Segment{}, false
	}
	switch {
	case da < p.near:
		va = va.Add(vb.Sub(va).Mul((p.near - da) / (db - da)))
		da = p.near
	case db < p.near:
		vb = vb.Add(va.Sub(vb).Mul((p.near - db) / (da - db)))
		db = p.near
	}
	s := Segment{Depth: (da + db) / 2}
	s.X1, s.Y1 = p.screen(va)
	s.X2, s.Y2 = p.screen(vb)
	return s, true
}

// Scale returns how many pixels one world unit spans at depth.
func (p Projector) Scale(depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return p.proj[5] / depth * p.height / 2
}

// Visible reports whether a circle of radius r at (x, y) touches the viewport.
func (p Projector) Visible(x, y, r float64) bool {
	return x+r >= 0 && y+r >= 0 && x-r <= p.width && y-r <= p.height
}
