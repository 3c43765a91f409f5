package termrender

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"go-neon-scene/internal/config"
	"go-neon-scene/internal/ui"
)

const (
	barCells  = 30
	cardCells = 44
)

func (r *Renderer) text(x, y int, s string, style tcell.Style, cols, rows int) {
	for i, ch := range []rune(s) {
		r.set(x+i, y, ch, style, cols, rows)
	}
}

func (r *Renderer) drawHUD(cols, rows int) {
	o := r.overlay
	light := r.bg.Foreground(toColor(config.TextLightColor))
	neon := r.bg.Foreground(toColor(config.NeonRed))

	if o.LoaderVisible {
		r.screen.Fill(' ', r.bg)
		x, y := (cols-barCells)/2, rows/2
		r.text(x, y-1, "LOADING", light, cols, rows)
		filled := int(barCells * o.Percent / 100)
		for i := 0; i < barCells; i++ {
			ch, st := '░', r.bg.Foreground(toColor(config.DarkRed))
			if i < filled {
				ch, st = '█', neon
			}
			r.set(x+i, y, ch, st, cols, rows)
		}
		return
	}

	if o.FPSValue > 0 {
		r.text(1, 0, fmt.Sprintf("FPS: %d", o.FPSValue), neon, cols, rows)
	}

	if o.Info.Visible {
		x := cols - 1 - cardCells + int(float64(cardCells+1)*o.Info.Offset)
		y := rows - len(ui.InfoLines) - 2
		for i, line := range ui.InfoLines {
			st := light
			if i == 0 {
				st = neon
			}
			r.text(x, y+i, line, st, cols, rows)
		}
	}

	if o.PausedBanner {
		r.text((cols-len("PAUSED"))/2, rows/2, "PAUSED", light.Bold(true), cols, rows)
	}

	if o.Pointer.Seen {
		x := int(o.Pointer.X+config.CursorOffset) * cols / max(r.viewW, 1)
		y := int(o.Pointer.Y+config.CursorOffset) * rows / max(r.viewH, 1)
		r.set(x, y, '+', neon, cols, rows)
	}
}
