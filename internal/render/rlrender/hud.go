package rlrender

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-neon-scene/internal/config"
	"go-neon-scene/internal/ui"
	"go-neon-scene/pkg/render"
)

const (
	barWidth   = 300
	barHeight  = 4
	cardWidth  = 320
	cardHeight = 110
	fontSize   = 20
)

func drawHUD(o *ui.Overlay, w, h int) {
	text := toColor(config.TextLightColor)
	neon := toColor(config.NeonRed)

	if o.LoaderVisible {
		rl.DrawRectangle(0, 0, int32(w), int32(h), toColor(config.BackgroundColor))
		x := int32(w-barWidth) / 2
		y := int32(h) / 2
		rl.DrawText("LOADING", x, y-30, fontSize, text)
		rl.DrawRectangle(x, y, barWidth, barHeight, toColor(config.DarkRed))
		rl.DrawRectangle(x, y, int32(barWidth*o.Percent/100), barHeight, neon)
		return
	}

	if o.FPSValue > 0 {
		rl.DrawText(fmt.Sprintf("FPS: %d", o.FPSValue), 10, 10, fontSize, neon)
	}

	if o.Info.Visible {
		// Offset 0 is fully on screen, 1 is just past the right edge
		x := int32(w) - 20 - cardWidth + int32(float64(cardWidth+20)*o.Info.Offset)
		y := int32(h) - cardHeight - 20
		rl.DrawRectangle(x, y, cardWidth, cardHeight, toColor(render.WithAlpha(config.BackgroundColor, 0.8)))
		rl.DrawRectangleLines(x, y, cardWidth, cardHeight, neon)
		for i, line := range ui.InfoLines {
			rl.DrawText(line, x+12, y+12+int32(i)*24, 16, text)
		}
	}

	if o.PausedBanner {
		rl.DrawRectangle(0, 0, int32(w), int32(h), rl.NewColor(0, 0, 0, 128))
		size := int32(40)
		tw := rl.MeasureText("PAUSED", size)
		rl.DrawText("PAUSED", (int32(w)-tw)/2, int32(h)/2-size/2, size, text)
	}

	if o.Pointer.Seen {
		pulse := float32(o.Pointer.Pulse(time.Now()))
		rl.DrawCircleLines(int32(o.Pointer.X+config.CursorOffset), int32(o.Pointer.Y+config.CursorOffset), 8*pulse, neon)
		rl.DrawCircleLines(int32(o.Pointer.FollowerX+config.CursorFollowOffset), int32(o.Pointer.FollowerY+config.CursorFollowOffset), 18, toColor(render.WithAlpha(config.NeonRed, 0.5)))
	}
}
