// Package ebitenrender draws the scene with ebiten. The scene is projected in
// software through the flat builder and drawn with the vector package.
package ebitenrender

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"go-neon-scene/internal/config"
	"go-neon-scene/internal/director"
	"go-neon-scene/internal/render/flat"
	"go-neon-scene/internal/scene"
	"go-neon-scene/internal/ui"
	"go-neon-scene/pkg/render"
)

var _ director.Renderer = (*Renderer)(nil)

const (
	lineWidth  = 1
	bubbleRing = 1.5
)

// Renderer keeps the last submitted frame until ebiten asks for it in Draw.
// Submit and Draw both run on ebiten's game goroutine.
type Renderer struct {
	overlay *ui.Overlay
	builder flat.Builder
	frame   []flat.Primitive
	width   int
	height  int

	face  font.Face
	large font.Face
}

// New loads the HUD fonts. It fails only if the embedded font cannot be parsed.
func New(overlay *ui.Overlay) (*Renderer, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse HUD font")
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: 16, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create HUD face")
	}
	large, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: 40, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create banner face")
	}
	return &Renderer{
		overlay: overlay,
		face:    face,
		large:   large,
		width:   config.ScreenWidth,
		height:  config.ScreenHeight,
	}, nil
}

// Submit projects the scene and keeps a copy for the next Draw.
func (r *Renderer) Submit(sc *scene.Scene, cam *scene.Camera) {
	r.overlay.Update()
	r.frame = append(r.frame[:0], r.builder.Build(sc, cam)...)
	r.width, r.height = cam.Width, cam.Height
}

// Frame returns the primitives of the last submitted frame.
func (r *Renderer) Frame() []flat.Primitive {
	return r.frame
}

// Size returns the viewport of the last submitted frame.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Draw paints the last submitted frame and the HUD.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	for _, p := range r.frame {
		c := render.Premultiply(p.Color)
		switch p.Kind {
		case flat.Line:
			vector.StrokeLine(screen, float32(p.X1), float32(p.Y1), float32(p.X2), float32(p.Y2), lineWidth, c, true)
		case flat.Disc:
			vector.DrawFilledCircle(screen, float32(p.X1), float32(p.Y1), float32(p.Radius), c, true)
			rim := render.Premultiply(render.WithAlpha(p.Color, 0.8))
			vector.StrokeCircle(screen, float32(p.X1), float32(p.Y1), float32(p.Radius), bubbleRing, rim, true)
		case flat.Dot:
			vector.DrawFilledRect(screen, float32(p.X1-p.Radius), float32(p.Y1-p.Radius), float32(2*p.Radius), float32(2*p.Radius), c, false)
		}
	}
	r.drawHUD(screen)
}
