// cmd/scene-term/main.go
package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"go-neon-scene/internal/app"
	"go-neon-scene/internal/director"
	"go-neon-scene/internal/render/termrender"
	"go-neon-scene/internal/ui"
)

const (
	frameInterval = time.Second / 30
	wheelPixels   = 100
)

func main() {
	app.Main("neon-scene-term", "animated neon bubble scene in the terminal", run)
}

func run(s app.Settings, logger *zap.SugaredLogger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "failed to create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize terminal screen")
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	cfg := s.Scene
	cols, rows := screen.Size()
	cfg.Width, cfg.Height = cols, rows*termrender.CellAspect

	overlay := ui.NewOverlay()
	a, err := app.New(cfg, app.Options{
		Logger:   logger,
		Overlay:  overlay,
		Renderer: termrender.New(screen, overlay),
	})
	if err != nil {
		return err
	}
	defer a.Close()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	var pressed bool
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				a.Resize(w, h*termrender.CellAspect)
				screen.Sync()
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
					close(quit)
					logger.Infow("terminal closed", "frames", a.Director.Frame())
					return nil
				case ev.Rune() == ' ':
					a.ResetCamera()
				case ev.Rune() == 'p', ev.Rune() == 'P':
					a.TogglePause()
				}
			case *tcell.EventMouse:
				cx, cy := ev.Position()
				x, y := float64(cx), float64(cy*termrender.CellAspect)
				a.PointerMoved(x, y)
				buttons := ev.Buttons()
				switch {
				case buttons&tcell.WheelUp != 0:
					a.Wheel(-wheelPixels)
				case buttons&tcell.WheelDown != 0:
					a.Wheel(wheelPixels)
				}
				down := buttons&tcell.Button1 != 0
				if down && !pressed {
					a.Click(director.PointerEvent{X: x, Y: y})
				}
				pressed = down
			}
		case <-ticker.C:
			a.Update()
		}
	}
}
