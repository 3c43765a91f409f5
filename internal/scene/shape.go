package scene

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"

	"go-neon-scene/internal/config"
	"go-neon-scene/pkg/geom"
)

type ShapeKind int

const (
	ShapeOctahedron ShapeKind = iota
	ShapeTorus
	ShapeIcosahedron
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeOctahedron:
		return "octahedron"
	case ShapeTorus:
		return "torus"
	case ShapeIcosahedron:
		return "icosahedron"
	}
	return "unknown"
}

// EnvironmentShape is a decorative wireframe solid. Index sets its spin rate.
type EnvironmentShape struct {
	Kind     ShapeKind
	Index    int
	Position r3.Vector
	Rotation r3.Vector
	Radius   float64
	Tube     float64 // torus only
	Color    color.RGBA
	Opacity  float64

	verts []r3.Vector
	edges [][2]int
}

// DefaultShapes returns the octahedron, torus and icosahedron at their fixed spots.
func DefaultShapes() []*EnvironmentShape {
	return []*EnvironmentShape{
		{Kind: ShapeOctahedron, Index: 0, Position: r3.Vector{X: 20, Y: 10, Z: -20}, Radius: 3, Color: config.NeonRed, Opacity: 0.3},
		{Kind: ShapeTorus, Index: 1, Position: r3.Vector{X: -20, Y: 5, Z: 15}, Radius: 5, Tube: 1, Color: config.NeonRed, Opacity: 0.2},
		{Kind: ShapeIcosahedron, Index: 2, Position: r3.Vector{X: 15, Y: -5, Z: 10}, Radius: 2, Color: config.NeonRed, Opacity: 0.4},
	}
}

// Spin advances the rotation. Shapes further down the list turn faster.
func (s *EnvironmentShape) Spin() {
	k := float64(s.Index + 1)
	s.Rotation.X += config.ShapeSpinX * k
	s.Rotation.Y += config.ShapeSpinY * k
}

// World returns the shape-to-world matrix.
func (s *EnvironmentShape) World() mgl64.Mat4 {
	return geom.Compose(s.Position, s.Rotation, 1)
}

// Wireframe returns the local-space vertices and edge index pairs. The result is
// built once and shared between calls.
func (s *EnvironmentShape) Wireframe() ([]r3.Vector, [][2]int) {
	if s.verts == nil {
		switch s.Kind {
		case ShapeOctahedron:
			s.verts, s.edges = octahedron(s.Radius)
		case ShapeTorus:
			s.verts, s.edges = torus(s.Radius, s.Tube, 24, 8)
		case ShapeIcosahedron:
			s.verts, s.edges = icosahedron(s.Radius)
		}
	}
	return s.verts, s.edges
}

func octahedron(r float64) ([]r3.Vector, [][2]int) {
	verts := []r3.Vector{
		{X: r}, {X: -r}, {Y: r}, {Y: -r}, {Z: r}, {Z: -r},
	}
	return verts, edgesByLength(verts, r*math.Sqrt2)
}

func icosahedron(r float64) ([]r3.Vector, [][2]int) {
	t := (1 + math.Sqrt(5)) / 2
	raw := []r3.Vector{
		{X: -1, Y: t}, {X: 1, Y: t}, {X: -1, Y: -t}, {X: 1, Y: -t},
		{Y: -1, Z: t}, {Y: 1, Z: t}, {Y: -1, Z: -t}, {Y: 1, Z: -t},
		{X: t, Z: -1}, {X: t, Z: 1}, {X: -t, Z: -1}, {X: -t, Z: 1},
	}
	verts := make([]r3.Vector, len(raw))
	for i, v := range raw {
		verts[i] = v.Normalize().Mul(r)
	}
	return verts, edgesByLength(verts, verts[0].Distance(verts[1]))
}

// edgesByLength connects every vertex pair whose distance matches edge.
func edgesByLength(verts []r3.Vector, edge float64) [][2]int {
	var edges [][2]int
	for i := range verts {
		for j := i + 1; j < len(verts); j++ {
			if math.Abs(verts[i].Distance(verts[j])-edge) < 1e-6*edge {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	return edges
}

func torus(major, minor float64, tubular, radial int) ([]r3.Vector, [][2]int) {
	verts := make([]r3.Vector, 0, tubular*radial)
	for i := 0; i < tubular; i++ {
		u := float64(i) / float64(tubular) * 2 * math.Pi
		for j := 0; j < radial; j++ {
			v := float64(j) / float64(radial) * 2 * math.Pi
			d := major + minor*math.Cos(v)
			verts = append(verts, r3.Vector{X: d * math.Cos(u), Y: d * math.Sin(u), Z: minor * math.Sin(v)})
		}
	}
	edges := make([][2]int, 0, 2*len(verts))
	for i := 0; i < tubular; i++ {
		for j := 0; j < radial; j++ {
			a := i*radial + j
			edges = append(edges,
				[2]int{a, i*radial + (j+1)%radial},
				[2]int{a, ((i+1)%tubular)*radial + j},
			)
		}
	}
	return verts, edges
}
