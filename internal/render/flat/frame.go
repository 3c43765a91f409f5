// Package flat turns the scene into depth-sorted 2D primitives for renderers
// without a 3D pipeline.
package flat

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"

	"go-neon-scene/internal/config"
	"go-neon-scene/internal/scene"
	"go-neon-scene/pkg/geom"
	"go-neon-scene/pkg/render"
)

// Kind is the primitive shape.
type Kind int

const (
	Line Kind = iota
	Disc
	Dot
)

// Layer orders primitives before depth does. Backdrop is always under Objects.
type Layer int

const (
	Backdrop Layer = iota
	Objects
)

// Primitive is one projected draw call. Dots and discs use X1, Y1.
type Primitive struct {
	Kind           Kind
	Layer          Layer
	X1, Y1, X2, Y2 float64
	Radius         float64
	Color          color.RGBA
	Depth          float64
}

const (
	curveSegments  = 16
	bubbleOpacity  = 0.35
	bubbleGlow     = 0.5
	particleRadius = 1
	minDiscRadius  = 1
)

// Builder reuses its buffers across frames.
type Builder struct {
	prims      []Primitive
	transforms []mgl64.Mat4
	proj       render.Projector
}

// Build projects every visible part of sc through cam, sorted back to front.
// The returned slice is reused by the next call.
func (b *Builder) Build(sc *scene.Scene, cam *scene.Camera) []Primitive {
	b.prims = b.prims[:0]
	if sc == nil || cam == nil {
		return b.prims
	}
	b.proj = render.NewProjector(cam.View(), cam.Projection(), cam.Width, cam.Height, cam.Near, cam.Far)

	b.grid(sc)
	b.particles(sc)
	b.shapes(sc)
	b.props(sc)
	b.bubbles(sc)
	b.explosions(sc)

	sort.SliceStable(b.prims, func(i, j int) bool {
		pi, pj := b.prims[i], b.prims[j]
		if pi.Layer != pj.Layer {
			return pi.Layer < pj.Layer
		}
		return pi.Depth > pj.Depth
	})
	return b.prims
}

func fog(c color.RGBA, depth float64) color.RGBA {
	return render.Fog(c, config.BackgroundColor, depth, config.FogNear, config.FogFar)
}

func (b *Builder) line(layer Layer, from, to r3.Vector, c color.RGBA, fogged bool) {
	s, ok := b.proj.Segment(from, to)
	if !ok {
		return
	}
	if fogged {
		c = fog(c, s.Depth)
	}
	b.prims = append(b.prims, Primitive{
		Kind: Line, Layer: layer,
		X1: s.X1, Y1: s.Y1, X2: s.X2, Y2: s.Y2,
		Color: c, Depth: s.Depth,
	})
}

func (b *Builder) dot(layer Layer, kind Kind, at r3.Vector, radius float64, c color.RGBA) {
	x, y, depth, ok := b.proj.Point(at)
	if !ok {
		return
	}
	if kind == Disc {
		radius *= b.proj.Scale(depth)
		if radius < minDiscRadius {
			radius = minDiscRadius
		}
	}
	if !b.proj.Visible(x, y, radius) {
		return
	}
	b.prims = append(b.prims, Primitive{
		Kind: kind, Layer: layer,
		X1: x, Y1: y, Radius: radius,
		Color: fog(c, depth), Depth: depth,
	})
}

func (b *Builder) wire(layer Layer, world mgl64.Mat4, verts []r3.Vector, edges [][2]int, c color.RGBA) {
	for _, e := range edges {
		b.line(layer, geom.TransformPoint(world, verts[e[0]]), geom.TransformPoint(world, verts[e[1]]), c, true)
	}
}

func (b *Builder) grid(sc *scene.Scene) {
	for i, l := range sc.Grid.Lines() {
		c := config.GridMinorColor
		if i < 2 {
			c = config.GridMajorColor
		}
		b.line(Backdrop, l[0], l[1], c, false)
	}
}

func (b *Builder) particles(sc *scene.Scene) {
	f := sc.Particles
	if f == nil {
		return
	}
	world := f.World()
	for i, p := range f.Points {
		b.dot(Backdrop, Dot, geom.TransformPoint(world, p), particleRadius, render.WithAlpha(f.Colors[i], f.Opacity))
	}
}

func (b *Builder) shapes(sc *scene.Scene) {
	for _, s := range sc.Shapes {
		verts, edges := s.Wireframe()
		b.wire(Backdrop, s.World(), verts, edges, render.WithAlpha(s.Color, s.Opacity))
	}
}

func (b *Builder) props(sc *scene.Scene) {
	for _, p := range sc.Props {
		for _, m := range p.Parts {
			c := m.Color
			if m.Emissive {
				c = render.Glow(c, config.NeonRed, m.EmissiveIntensity+0.2)
			}
			verts, edges := m.Wireframe(curveSegments)
			b.wire(Objects, m.World(), verts, edges, c)
		}
	}
}

func (b *Builder) bubbles(sc *scene.Scene) {
	if sc.Swarm == nil {
		return
	}
	c := render.WithAlpha(render.Glow(config.NeonRed, config.NeonRed, bubbleGlow), bubbleOpacity)
	b.transforms = sc.Swarm.AppendTransforms(b.transforms[:0])
	for _, m := range b.transforms {
		scale := geom.UniformScale(m)
		if scale == 0 {
			continue
		}
		b.dot(Objects, Disc, geom.Translation(m), scale*config.BubbleRadius, c)
	}
}

func (b *Builder) explosions(sc *scene.Scene) {
	if sc.Effects == nil {
		return
	}
	for _, e := range sc.Effects.Active() {
		c := render.WithAlpha(config.NeonRed, e.Opacity)
		for _, p := range e.Particles {
			b.dot(Objects, Dot, p, particleRadius, c)
		}
	}
}
