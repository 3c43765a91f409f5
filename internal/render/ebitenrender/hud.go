package ebitenrender

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-neon-scene/internal/config"
	"go-neon-scene/internal/ui"
	"go-neon-scene/pkg/render"
)

const (
	barWidth   = 300
	barHeight  = 4
	cardWidth  = 320
	cardHeight = 110
	cardMargin = 20
)

// CardX returns the left edge of the info card for a viewport width. Offset 0
// is fully on screen, 1 is just past the right edge.
func CardX(width int, offset float64) float32 {
	return float32(width-cardMargin-cardWidth) + float32(cardWidth+cardMargin)*float32(offset)
}

func (r *Renderer) drawHUD(screen *ebiten.Image) {
	o := r.overlay
	w, h := float32(r.width), float32(r.height)
	light := config.TextLightColor
	neon := config.NeonRed

	if o.LoaderVisible {
		vector.DrawFilledRect(screen, 0, 0, w, h, config.BackgroundColor, false)
		x := (w - barWidth) / 2
		y := h / 2
		text.Draw(screen, "LOADING", r.face, int(x), int(y)-14, light)
		vector.DrawFilledRect(screen, x, y, barWidth, barHeight, config.DarkRed, false)
		vector.DrawFilledRect(screen, x, y, float32(barWidth*o.Percent/100), barHeight, neon, false)
		return
	}

	if o.FPSValue > 0 {
		text.Draw(screen, fmt.Sprintf("FPS: %d", o.FPSValue), r.face, 10, 24, neon)
	}

	if o.Info.Visible {
		x := CardX(r.width, o.Info.Offset)
		y := h - cardHeight - cardMargin
		vector.DrawFilledRect(screen, x, y, cardWidth, cardHeight, render.Premultiply(render.WithAlpha(config.BackgroundColor, 0.8)), false)
		vector.StrokeRect(screen, x, y, cardWidth, cardHeight, 1, neon, false)
		for i, line := range ui.InfoLines {
			text.Draw(screen, line, r.face, int(x)+12, int(y)+26+i*24, light)
		}
	}

	if o.PausedBanner {
		vector.DrawFilledRect(screen, 0, 0, w, h, color.RGBA{0, 0, 0, 128}, false)
		b := text.BoundString(r.large, "PAUSED")
		text.Draw(screen, "PAUSED", r.large, (r.width-b.Dx())/2, r.height/2+b.Dy()/2, light)
	}

	if o.Pointer.Seen {
		pulse := float32(o.Pointer.Pulse(time.Now()))
		vector.StrokeCircle(screen, float32(o.Pointer.X+config.CursorOffset), float32(o.Pointer.Y+config.CursorOffset), 8*pulse, 1.5, neon, true)
		vector.StrokeCircle(screen, float32(o.Pointer.FollowerX+config.CursorFollowOffset), float32(o.Pointer.FollowerY+config.CursorFollowOffset), 18, 1, render.Premultiply(render.WithAlpha(neon, 0.5)), true)
	}
}
