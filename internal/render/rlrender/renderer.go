// Package rlrender draws the scene with raylib.
package rlrender

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"

	"go-neon-scene/internal/config"
	"go-neon-scene/internal/director"
	"go-neon-scene/internal/scene"
	"go-neon-scene/internal/ui"
	"go-neon-scene/pkg/geom"
	"go-neon-scene/pkg/render"
)

var _ director.Renderer = (*Renderer)(nil)

const (
	bubbleOpacity  = 0.2
	bubbleGlow     = 0.5
	bubbleRings    = 12
	explosionPoint = 0.12
)

// Renderer is the native 3D renderer. It must be used on the goroutine that
// opened the window.
type Renderer struct {
	overlay    *ui.Overlay
	transforms []mgl64.Mat4
	eye        r3.Vector
}

func New(overlay *ui.Overlay) *Renderer {
	return &Renderer{overlay: overlay}
}

// Submit draws one complete frame.
func (r *Renderer) Submit(sc *scene.Scene, cam *scene.Camera) {
	r.overlay.Update()
	r.eye = cam.Position

	rl.BeginDrawing()
	rl.ClearBackground(toColor(config.BackgroundColor))

	if sc != nil {
		rl.BeginMode3D(Camera3D(cam))
		r.drawGrid(sc)
		r.drawParticles(sc)
		r.drawShapes(sc)
		r.drawProps(sc)
		r.drawBubbles(sc)
		r.drawExplosions(sc)
		rl.EndMode3D()
	}

	drawHUD(r.overlay, cam.Width, cam.Height)
	rl.EndDrawing()
}

// Camera3D converts the scene camera to raylib's look-at form.
func Camera3D(cam *scene.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   toVector3(cam.Position),
		Target:     toVector3(cam.Position.Add(cam.Forward())),
		Up:         toVector3(cam.Up()),
		Fovy:       float32(cam.FovY),
		Projection: rl.CameraPerspective,
	}
}

func (r *Renderer) fogged(c color.RGBA, at r3.Vector) rl.Color {
	return toColor(render.Fog(c, config.BackgroundColor, at.Distance(r.eye), config.FogNear, config.FogFar))
}

func (r *Renderer) drawGrid(sc *scene.Scene) {
	for i, line := range sc.Grid.Lines() {
		c := config.GridMinorColor
		if i < 2 {
			c = config.GridMajorColor
		}
		rl.DrawLine3D(toVector3(line[0]), toVector3(line[1]), toColor(c))
	}
}

func (r *Renderer) drawParticles(sc *scene.Scene) {
	f := sc.Particles
	if f == nil {
		return
	}
	world := f.World()
	for i, p := range f.Points {
		wp := geom.TransformPoint(world, p)
		c := render.WithAlpha(f.Colors[i], f.Opacity)
		rl.DrawPoint3D(toVector3(wp), r.fogged(c, wp))
	}
}

func (r *Renderer) drawShapes(sc *scene.Scene) {
	for _, s := range sc.Shapes {
		world := s.World()
		verts, edges := s.Wireframe()
		c := r.fogged(render.WithAlpha(s.Color, s.Opacity), s.Position)
		for _, e := range edges {
			a := geom.TransformPoint(world, verts[e[0]])
			b := geom.TransformPoint(world, verts[e[1]])
			rl.DrawLine3D(toVector3(a), toVector3(b), c)
		}
	}
}

// drawProps uses the matrix stack the same way for every prop: translate, then
// rotate about X, Y and Z in that order, then the mesh's own placement.
func (r *Renderer) drawProps(sc *scene.Scene) {
	for _, p := range sc.Props {
		rl.PushMatrix()
		rl.Translatef(float32(p.Position.X), float32(p.Position.Y), float32(p.Position.Z))
		rl.Rotatef(float32(p.Rotation.X)*rl.Rad2deg, 1, 0, 0)
		rl.Rotatef(float32(p.Rotation.Y)*rl.Rad2deg, 0, 1, 0)
		rl.Rotatef(float32(p.Rotation.Z)*rl.Rad2deg, 0, 0, 1)
		for _, m := range p.Parts {
			r.drawMesh(m)
		}
		rl.PopMatrix()
	}
}

func (r *Renderer) drawMesh(m *scene.Mesh) {
	c := m.Color
	if m.Emissive {
		c = render.Glow(c, config.NeonRed, m.EmissiveIntensity)
	}
	col := r.fogged(c, m.Prop.Position)
	wire := toColor(render.WithAlpha(config.NeonRed, m.EmissiveIntensity+0.2))

	rl.PushMatrix()
	offset := geom.Translation(m.Local)
	rl.Translatef(float32(offset.X), float32(offset.Y), float32(offset.Z))
	switch m.Kind {
	case scene.MeshBox:
		size := toVector3(m.Size)
		rl.DrawCubeV(rl.Vector3Zero(), size, col)
		rl.DrawCubeWiresV(rl.Vector3Zero(), size, wire)
	case scene.MeshCylinder:
		// the lens lies along x
		rl.Rotatef(90, 0, 0, 1)
		base := rl.NewVector3(0, -float32(m.Size.Y)/2, 0)
		rl.DrawCylinder(base, float32(m.Size.X), float32(m.Size.Z), float32(m.Size.Y), 16, col)
		rl.DrawCylinderWires(base, float32(m.Size.X), float32(m.Size.Z), float32(m.Size.Y), 16, wire)
	case scene.MeshDisc:
		rl.DrawCircle3D(rl.Vector3Zero(), float32(m.Size.X), rl.NewVector3(0, 1, 0), 0, col)
	}
	rl.PopMatrix()
}

func (r *Renderer) drawBubbles(sc *scene.Scene) {
	if sc.Swarm == nil {
		return
	}
	r.transforms = sc.Swarm.AppendTransforms(r.transforms[:0])
	base := render.WithAlpha(render.Glow(config.NeonRed, config.NeonRed, bubbleGlow), bubbleOpacity)
	for _, m := range r.transforms {
		scale := geom.UniformScale(m)
		if scale == 0 {
			continue
		}
		pos := geom.Translation(m)
		rl.DrawSphereEx(toVector3(pos), float32(scale*config.BubbleRadius), bubbleRings, bubbleRings, r.fogged(base, pos))
	}
}

func (r *Renderer) drawExplosions(sc *scene.Scene) {
	if sc.Effects == nil {
		return
	}
	size := rl.NewVector3(explosionPoint, explosionPoint, explosionPoint)
	for _, e := range sc.Effects.Active() {
		c := toColor(render.WithAlpha(config.NeonRed, e.Opacity))
		for _, p := range e.Particles {
			rl.DrawCubeV(toVector3(p), size, c)
		}
	}
}

func toVector3(v r3.Vector) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
