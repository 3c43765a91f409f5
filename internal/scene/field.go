package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"

	"go-neon-scene/internal/config"
	"go-neon-scene/internal/utils"
	"go-neon-scene/pkg/geom"
)

// ParticleField is the cloud of drifting points filling the scene.
type ParticleField struct {
	Points   []r3.Vector
	Colors   []color.RGBA
	Rotation r3.Vector
	Size     float64
	Opacity  float64
}

// NewParticleField scatters count points inside a cube of side config.ParticleSpread.
func NewParticleField(count int, rng *utils.PRNGService) *ParticleField {
	f := &ParticleField{
		Points:  make([]r3.Vector, count),
		Colors:  make([]color.RGBA, count),
		Size:    0.15,
		Opacity: 0.6,
	}
	for i := range f.Points {
		f.Points[i] = rng.Jitter(config.ParticleSpread)
		if rng.Chance(0.5) {
			f.Colors[i] = config.NeonRed
		} else {
			f.Colors[i] = config.DarkRed
		}
	}
	return f
}

// World returns the field's rotation matrix.
func (f *ParticleField) World() mgl64.Mat4 {
	return geom.EulerXYZ(f.Rotation)
}

// Spin applies the fixed per-frame rotation.
func (f *ParticleField) Spin() {
	f.Rotation.X += config.ParticleSpinX
	f.Rotation.Y += config.ParticleSpinY
}

// Grid is the floor grid.
type Grid struct {
	Size      float64
	Divisions int
	Y         float64
}

// Lines returns the grid segments. The two centre lines come first; renderers draw
// them in the major colour.
func (g Grid) Lines() [][2]r3.Vector {
	if g.Divisions <= 0 {
		return nil
	}
	half := g.Size / 2
	step := g.Size / float64(g.Divisions)
	lines := [][2]r3.Vector{
		{{X: -half, Y: g.Y}, {X: half, Y: g.Y}},
		{{Y: g.Y, Z: -half}, {Y: g.Y, Z: half}},
	}
	for i := 0; i <= g.Divisions; i++ {
		k := -half + float64(i)*step
		if i*2 == g.Divisions {
			continue
		}
		lines = append(lines,
			[2]r3.Vector{{X: -half, Y: g.Y, Z: k}, {X: half, Y: g.Y, Z: k}},
			[2]r3.Vector{{X: k, Y: g.Y, Z: -half}, {X: k, Y: g.Y, Z: half}},
		)
	}
	return lines
}
