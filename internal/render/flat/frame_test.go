package flat

import (
	"testing"
	"time"

	clk "github.com/benbjohnson/clock"
	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go-neon-scene/internal/clock"
	"go-neon-scene/internal/config"
	"go-neon-scene/internal/effect"
	"go-neon-scene/internal/scene"
	"go-neon-scene/internal/swarm"
	"go-neon-scene/internal/utils"
)

func fullScene() *scene.Scene {
	rng := utils.NewPRNGService(11)
	sw := swarm.New(rng, clock.NewScheduler(clk.NewMock()), 500*time.Millisecond)
	return scene.Build(config.Default(false), rng, sw, effect.NewManager(rng))
}

func TestBuildEmpty(t *testing.T) {
	var b Builder
	test.That(t, b.Build(nil, scene.NewCamera(800, 600)), test.ShouldBeEmpty)
	test.That(t, b.Build(&scene.Scene{}, nil), test.ShouldBeEmpty)
}

func TestBuildSortsBackToFront(t *testing.T) {
	var b Builder
	prims := b.Build(fullScene(), scene.NewCamera(800, 600))
	test.That(t, len(prims), test.ShouldBeGreaterThan, 0)

	for i := 1; i < len(prims); i++ {
		prev, cur := prims[i-1], prims[i]
		test.That(t, prev.Layer, test.ShouldBeLessThanOrEqualTo, cur.Layer)
		if prev.Layer == cur.Layer {
			test.That(t, prev.Depth, test.ShouldBeGreaterThanOrEqualTo, cur.Depth)
		}
	}

	var discs int
	for _, p := range prims {
		if p.Kind == Disc {
			discs++
			test.That(t, p.Layer, test.ShouldEqual, Objects)
			test.That(t, p.Radius, test.ShouldBeGreaterThanOrEqualTo, 1.0)
		}
	}
	test.That(t, discs, test.ShouldBeGreaterThan, 0)
	test.That(t, discs, test.ShouldBeLessThanOrEqualTo, 200)
}

func TestPropOutline(t *testing.T) {
	p := scene.NewCameraProp(0, utils.NewPRNGService(1))
	p.Position = r3.Vector{Y: 5}
	sc := &scene.Scene{Props: []*scene.CameraProp{p}}

	var b Builder
	prims := b.Build(sc, scene.NewCamera(800, 600))
	// box, cylinder, disc and flash outlines
	test.That(t, prims, test.ShouldHaveLength, 12+36+16+12)
	for _, pr := range prims {
		test.That(t, pr.Kind, test.ShouldEqual, Line)
		test.That(t, pr.Depth, test.ShouldBeGreaterThan, 20.0)
		test.That(t, pr.Depth, test.ShouldBeLessThan, 40.0)
	}
}

func TestExplosionDotsFade(t *testing.T) {
	rng := utils.NewPRNGService(3)
	fx := effect.NewManager(rng)
	fx.Spawn(r3.Vector{Y: 5})
	sc := &scene.Scene{Effects: fx}

	var b Builder
	cam := scene.NewCamera(800, 600)
	first := b.Build(sc, cam)
	test.That(t, first, test.ShouldHaveLength, config.ExplosionParticles)
	alpha := first[0].Color.A

	fx.Tick()
	fx.Tick()
	second := b.Build(sc, cam)
	test.That(t, second[0].Color.A, test.ShouldBeLessThan, alpha)
}

func TestGridStaysUnderObjects(t *testing.T) {
	p := scene.NewCameraProp(0, utils.NewPRNGService(1))
	p.Position = r3.Vector{Y: 5, Z: -80}
	sc := &scene.Scene{
		Props: []*scene.CameraProp{p},
		Grid:  scene.Grid{Size: 100, Divisions: 10, Y: -10},
	}
	var b Builder
	prims := b.Build(sc, scene.NewCamera(800, 600))
	last := prims[len(prims)-1]
	test.That(t, last.Layer, test.ShouldEqual, Objects)
	test.That(t, prims[0].Layer, test.ShouldEqual, Backdrop)
}
