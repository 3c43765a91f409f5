package scene

import (
	"go-neon-scene/internal/config"
	"go-neon-scene/internal/effect"
	"go-neon-scene/internal/swarm"
	"go-neon-scene/internal/utils"
)

// Scene holds everything the renderers draw. The swarm and the effect manager are
// owned by their packages; the scene only references them.
type Scene struct {
	Props     []*CameraProp
	Particles *ParticleField
	Shapes    []*EnvironmentShape
	Grid      Grid
	Swarm     *swarm.Swarm
	Effects   *effect.Manager
	FogNear   float64
	FogFar    float64
}

// Build populates a scene from cfg. The swarm is initialized here; the same seed
// always produces the same scene.
func Build(cfg config.Scene, rng *utils.PRNGService, sw *swarm.Swarm, fx *effect.Manager) *Scene {
	s := &Scene{
		Particles: NewParticleField(cfg.Particles, rng),
		Shapes:    DefaultShapes(),
		Grid:      Grid{Size: cfg.FieldSize, Divisions: config.GridDivisions, Y: cfg.Floor},
		Swarm:     sw,
		Effects:   fx,
		FogNear:   config.FogNear,
		FogFar:    config.FogFar,
	}
	for i := 0; i < cfg.Props; i++ {
		s.Props = append(s.Props, NewCameraProp(i, rng))
	}
	if sw != nil {
		sw.Initialize(cfg.Bubbles, swarm.Bounds{
			FieldSize: cfg.FieldSize,
			Floor:     cfg.Floor,
			Ceiling:   cfg.Ceiling,
		})
	}
	return s
}

// Meshes returns every prop sub-mesh in prop order.
func (s *Scene) Meshes() []*Mesh {
	var out []*Mesh
	for _, p := range s.Props {
		out = append(out, p.Parts...)
	}
	return out
}
