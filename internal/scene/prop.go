package scene

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"

	"go-neon-scene/internal/config"
	"go-neon-scene/internal/utils"
	"go-neon-scene/pkg/geom"
)

// MeshKind tells renderers which primitive a sub-mesh is.
type MeshKind int

const (
	MeshBox MeshKind = iota
	MeshCylinder
	MeshDisc
)

// Mesh is one part of a camera prop. Local places it inside the prop; Bounds is its
// box in mesh space and is what the picker tests against.
type Mesh struct {
	Name   string
	Kind   MeshKind
	Local  mgl64.Mat4
	Bounds geom.AABB
	Size   r3.Vector // box: width, height, depth; cylinder: top radius, height, bottom radius; disc: radius
	Color  color.RGBA

	// Emissive meshes glow and react to hover. Intensity is meaningless otherwise.
	Emissive          bool
	EmissiveIntensity float64

	Prop *CameraProp
}

// World returns the mesh-to-world matrix.
func (m *Mesh) World() mgl64.Mat4 {
	return m.Prop.World().Mul4(m.Local)
}

// SetHighlight changes the glow of emissive meshes and reports whether it did.
func (m *Mesh) SetHighlight(intensity float64) bool {
	if !m.Emissive {
		return false
	}
	m.EmissiveIntensity = intensity
	return true
}

// CameraProp is a floating, spinning camera model made of four meshes.
type CameraProp struct {
	ID            int
	Position      r3.Vector
	Rotation      r3.Vector
	FloatSpeed    float64
	RotationSpeed float64
	OriginalY     float64
	Parts         []*Mesh
}

// NewCameraProp places a prop at a random spot with random spin parameters.
func NewCameraProp(id int, rng *utils.PRNGService) *CameraProp {
	p := &CameraProp{
		ID: id,
		Position: r3.Vector{
			X: rng.Centered(config.PropSpreadXZ),
			Y: rng.Centered(config.PropSpreadY) + config.PropBaseY,
			Z: rng.Centered(config.PropSpreadXZ),
		},
		Rotation: r3.Vector{
			X: rng.Float64() * math.Pi,
			Y: rng.Float64() * math.Pi,
			Z: rng.Float64() * math.Pi,
		},
		FloatSpeed:    rng.Range(0.5, 1.0),
		RotationSpeed: rng.Range(0.005, 0.015),
	}
	p.OriginalY = p.Position.Y
	p.Parts = []*Mesh{
		{
			Name:              "body",
			Kind:              MeshBox,
			Local:             mgl64.Ident4(),
			Bounds:            geom.BoxFromSize(4, 3, 3),
			Size:              r3.Vector{X: 4, Y: 3, Z: 3},
			Color:             config.PropBodyColor,
			Emissive:          true,
			EmissiveIntensity: config.HighlightBase,
		},
		{
			Name:              "lens",
			Kind:              MeshCylinder,
			Local:             mgl64.Translate3D(0, 0, 2).Mul4(mgl64.HomogRotate3DZ(math.Pi / 2)),
			Bounds:            geom.BoxFromSize(3, 2, 3),
			Size:              r3.Vector{X: 1.5, Y: 2, Z: 1.2},
			Color:             color.RGBA{0, 0, 0, 255},
			Emissive:          true,
			EmissiveIntensity: 0.2,
		},
		{
			Name:   "inner-lens",
			Kind:   MeshDisc,
			Local:  mgl64.Translate3D(0, 0, 3),
			Bounds: geom.BoxFromSize(2, 2, 0.02),
			Size:   r3.Vector{X: 1},
			Color:  color.RGBA{255, 0, 0, 128},
		},
		{
			Name:              "flash",
			Kind:              MeshBox,
			Local:             mgl64.Translate3D(1.8, 1.8, 0),
			Bounds:            geom.BoxFromSize(1, 0.8, 0.5),
			Size:              r3.Vector{X: 1, Y: 0.8, Z: 0.5},
			Color:             config.FlashColor,
			Emissive:          true,
			EmissiveIntensity: 0.3,
		},
	}
	for _, m := range p.Parts {
		m.Prop = p
	}
	return p
}

// World returns the prop-to-world matrix.
func (p *CameraProp) World() mgl64.Mat4 {
	return geom.Compose(p.Position, p.Rotation, 1)
}

// Advance spins the prop and bobs it around its original height. Both are per
// frame, so the speed follows the display refresh rate.
func (p *CameraProp) Advance(frame uint64) {
	p.Rotation.X += p.RotationSpeed
	p.Rotation.Y += p.RotationSpeed * config.PropSpinRatioY
	p.Position.Y = p.OriginalY + math.Sin(float64(frame)*config.PropBobFreq*p.FloatSpeed)*config.PropBobHeight
}

// Wireframe returns the mesh outline in mesh space. Cylinders and discs are
// approximated with the given number of segments.
func (m *Mesh) Wireframe(segments int) ([]r3.Vector, [][2]int) {
	switch m.Kind {
	case MeshCylinder:
		h := m.Size.Y / 2
		top := ring(m.Size.X, h, segments)
		bottom := ring(m.Size.Z, -h, segments)
		verts := append(top, bottom...)
		edges := make([][2]int, 0, 3*segments)
		for i := 0; i < segments; i++ {
			next := (i + 1) % segments
			edges = append(edges, [2]int{i, next}, [2]int{segments + i, segments + next})
			if i%(segments/4+1) == 0 {
				edges = append(edges, [2]int{i, segments + i})
			}
		}
		return verts, edges
	case MeshDisc:
		verts := ring(m.Size.X, 0, segments)
		for i := range verts {
			// discs face +z
			verts[i].Y, verts[i].Z = verts[i].Z, 0
		}
		edges := make([][2]int, segments)
		for i := range edges {
			edges[i] = [2]int{i, (i + 1) % segments}
		}
		return verts, edges
	default:
		return boxWireframe(m.Bounds)
	}
}

func ring(radius, y float64, segments int) []r3.Vector {
	out := make([]r3.Vector, segments)
	for i := range out {
		a := 2 * math.Pi * float64(i) / float64(segments)
		out[i] = r3.Vector{X: radius * math.Cos(a), Y: y, Z: radius * math.Sin(a)}
	}
	return out
}

func boxWireframe(b geom.AABB) ([]r3.Vector, [][2]int) {
	verts := make([]r3.Vector, 8)
	for i := range verts {
		v := b.Min
		if i&1 != 0 {
			v.X = b.Max.X
		}
		if i&2 != 0 {
			v.Y = b.Max.Y
		}
		if i&4 != 0 {
			v.Z = b.Max.Z
		}
		verts[i] = v
	}
	var edges [][2]int
	for i := 0; i < 8; i++ {
		for _, bit := range []int{1, 2, 4} {
			if i&bit == 0 {
				edges = append(edges, [2]int{i, i | bit})
			}
		}
	}
	return verts, edges
}
