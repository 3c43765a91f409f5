// cmd/scene/main.go
package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"go-neon-scene/internal/app"
	"go-neon-scene/internal/director"
	"go-neon-scene/internal/render/rlrender"
	"go-neon-scene/internal/ui"
)

const wheelPixels = 100 // one wheel notch in pointer-delta units

func main() {
	app.Main("neon-scene", "animated neon bubble scene (raylib)", run)
}

func run(s app.Settings, logger *zap.SugaredLogger) error {
	cfg := s.Scene
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "Neon Scene")
	if !rl.IsWindowReady() {
		return errors.New("failed to open window")
	}
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.HideCursor()

	overlay := ui.NewOverlay()
	a, err := app.New(cfg, app.Options{
		Logger:   logger,
		Overlay:  overlay,
		Renderer: rlrender.New(overlay),
	})
	if err != nil {
		return err
	}
	defer a.Close()

	for !rl.WindowShouldClose() {
		handleInput(a)
		a.Update()
	}
	logger.Infow("window closed", "frames", a.Director.Frame())
	return nil
}

func handleInput(a *app.App) {
	if rl.IsWindowResized() {
		a.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	mouse := rl.GetMousePosition()
	if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
		a.PointerMoved(float64(mouse.X), float64(mouse.Y))
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.Wheel(-float64(wheel) * wheelPixels)
	}

	var touches []director.Touch
	for i := int32(0); i < rl.GetTouchPointCount(); i++ {
		p := rl.GetTouchPosition(i)
		touches = append(touches, director.Touch{X: float64(p.X), Y: float64(p.Y)})
	}
	a.Touches(touches)

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		a.Click(director.PointerEvent{X: float64(mouse.X), Y: float64(mouse.Y), Touches: touches})
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.ResetCamera()
	}
	if rl.IsKeyPressed(rl.KeyP) {
		a.TogglePause()
	}
}
