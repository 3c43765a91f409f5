// cmd/scene-ebiten/main.go
package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"go-neon-scene/internal/app"
	"go-neon-scene/internal/director"
	"go-neon-scene/internal/render/ebitenrender"
	"go-neon-scene/internal/ui"
)

const wheelPixels = 100

// AppGame adapts the scene to ebiten's Update/Draw/Layout loop.
type AppGame struct {
	app      *app.App
	renderer *ebitenrender.Renderer
	width    int
	height   int
	lastX    int
	lastY    int
	touches  []ebiten.TouchID
}

func (g *AppGame) Update() error {
	g.handleInput()
	g.app.Update()
	return nil
}

func (g *AppGame) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
}

func (g *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.app.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *AppGame) handleInput() {
	x, y := ebiten.CursorPosition()
	if x != g.lastX || y != g.lastY {
		g.lastX, g.lastY = x, y
		g.app.PointerMoved(float64(x), float64(y))
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.app.Wheel(-dy * wheelPixels)
	}

	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	points := make([]director.Touch, 0, len(g.touches))
	for _, id := range g.touches {
		tx, ty := ebiten.TouchPosition(id)
		points = append(points, director.Touch{X: float64(tx), Y: float64(ty)})
	}
	g.app.Touches(points)

	tapped := len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
	if tapped || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.app.Click(director.PointerEvent{X: float64(x), Y: float64(y), Touches: points})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.app.ResetCamera()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.app.TogglePause()
	}
}

func run(s app.Settings, logger *zap.SugaredLogger) error {
	cfg := s.Scene
	overlay := ui.NewOverlay()
	renderer, err := ebitenrender.New(overlay)
	if err != nil {
		return err
	}
	a, err := app.New(cfg, app.Options{Logger: logger, Overlay: overlay, Renderer: renderer})
	if err != nil {
		return err
	}
	defer a.Close()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Neon Scene")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	game := &AppGame{app: a, renderer: renderer, width: cfg.Width, height: cfg.Height}
	if err := ebiten.RunGame(game); err != nil {
		return errors.Wrap(err, "ebiten loop failed")
	}
	return nil
}

func main() {
	app.Main("neon-scene-ebiten", "animated neon bubble scene (ebiten)", run)
}
