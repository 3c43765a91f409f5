// Package termrender draws the scene as coloured glyphs on a tcell screen.
// Terminal cells are about twice as tall as wide, so the camera viewport is
// expected to be cols x 2*rows; every cell covers two viewport rows.
package termrender

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"go-neon-scene/internal/config"
	"go-neon-scene/internal/director"
	"go-neon-scene/internal/render/flat"
	"go-neon-scene/internal/scene"
	"go-neon-scene/internal/ui"
	"go-neon-scene/pkg/render"
)

var _ director.Renderer = (*Renderer)(nil)

// CellAspect is how many viewport rows one terminal row spans.
const CellAspect = 2

// ramp goes from faint to dense.
var ramp = []rune(" .:-=+*#%@")

// Renderer paints onto a tcell screen. It is not safe for concurrent use.
type Renderer struct {
	screen  tcell.Screen
	overlay *ui.Overlay
	builder flat.Builder
	bg      tcell.Style
	viewW   int
	viewH   int
}

func New(screen tcell.Screen, overlay *ui.Overlay) *Renderer {
	return &Renderer{
		screen:  screen,
		overlay: overlay,
		bg:      tcell.StyleDefault.Background(toColor(config.BackgroundColor)),
	}
}

// Glyph picks a character whose density follows the perceived brightness of c
// scaled by its alpha.
func Glyph(c color.RGBA) rune {
	l := render.Luminance(c) * float64(c.A) / 255
	i := int(math.Round(l * float64(len(ramp)-1)))
	if i < 0 {
		i = 0
	}
	if i >= len(ramp) {
		i = len(ramp) - 1
	}
	return ramp[i]
}

// Submit draws one frame and shows it.
func (r *Renderer) Submit(sc *scene.Scene, cam *scene.Camera) {
	r.overlay.Update()
	r.screen.Fill(' ', r.bg)
	cols, rows := r.screen.Size()
	r.viewW, r.viewH = cam.Width, cam.Height
	if cam.Width > 0 && cam.Height > 0 {
		sx := float64(cols) / float64(cam.Width)
		sy := float64(rows) / float64(cam.Height)
		for _, p := range r.builder.Build(sc, cam) {
			r.plot(p, sx, sy, cols, rows)
		}
	}
	r.drawHUD(cols, rows)
	r.screen.Show()
}

func (r *Renderer) plot(p flat.Primitive, sx, sy float64, cols, rows int) {
	style := r.bg.Foreground(toColor(p.Color))
	ch := Glyph(p.Color)
	if ch == ' ' {
		return
	}
	switch p.Kind {
	case flat.Line:
		x1, y1, x2, y2, ok := clipLine(p.X1*sx, p.Y1*sy, p.X2*sx, p.Y2*sy, float64(cols), float64(rows))
		if !ok {
			return
		}
		steps := int(math.Ceil(math.Max(math.Abs(x2-x1), math.Abs(y2-y1))))
		for i := 0; i <= steps; i++ {
			t := 0.0
			if steps > 0 {
				t = float64(i) / float64(steps)
			}
			r.set(int(x1+(x2-x1)*t), int(y1+(y2-y1)*t), ch, style, cols, rows)
		}
	case flat.Disc:
		cx, cy := p.X1*sx, p.Y1*sy
		rx, ry := math.Max(p.Radius*sx, 0.5), math.Max(p.Radius*sy, 0.5)
		for y := int(cy - ry); y <= int(cy+ry); y++ {
			for x := int(cx - rx); x <= int(cx+rx); x++ {
				dx, dy := (float64(x)+0.5-cx)/rx, (float64(y)+0.5-cy)/ry
				if dx*dx+dy*dy <= 1 {
					r.set(x, y, 'o', style, cols, rows)
				}
			}
		}
	case flat.Dot:
		r.set(int(p.X1*sx), int(p.Y1*sy), ch, style, cols, rows)
	}
}

func (r *Renderer) set(x, y int, ch rune, style tcell.Style, cols, rows int) {
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// clipLine is Liang-Barsky against [0, w) x [0, h).
func clipLine(x1, y1, x2, y2, w, h float64) (float64, float64, float64, float64, bool) {
	dx, dy := x2-x1, y2-y1
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x1},
		{dx, w - 1 - x1},
		{-dy, y1},
		{dy, h - 1 - y1},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, t)
		}
	}
	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
