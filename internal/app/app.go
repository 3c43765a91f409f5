// internal/app/app.go
package app

import (
	"time"

	clk "github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"go-neon-scene/internal/audio"
	"go-neon-scene/internal/clock"
	"go-neon-scene/internal/config"
	"go-neon-scene/internal/director"
	"go-neon-scene/internal/effect"
	"go-neon-scene/internal/event"
	"go-neon-scene/internal/scene"
	"go-neon-scene/internal/state"
	"go-neon-scene/internal/swarm"
	"go-neon-scene/internal/ui"
	"go-neon-scene/internal/utils"
)

// Options carries what a host supplies. Clock defaults to the wall clock and
// Logger to a no-op logger.
type Options struct {
	Clock    clk.Clock
	Logger   *zap.SugaredLogger
	Overlay  *ui.Overlay
	Renderer director.Renderer
}

// App holds the whole object graph. Hosts call Update once per display refresh
// and forward input between updates, all on one goroutine.
type App struct {
	Config     config.Scene
	Logger     *zap.SugaredLogger
	Rng        *utils.PRNGService
	Scheduler  *clock.Scheduler
	FrameClock *clock.FrameClock
	Dispatcher *event.Dispatcher
	Scene      *scene.Scene
	Camera     *scene.Camera
	Overlay    *ui.Overlay
	Director   *director.Director
	Audio      *audio.Player

	renderer     director.Renderer
	stateMachine *state.StateMachine
	sceneState   *state.SceneState
	pauseState   *state.PauseState
}

// New builds the scene from cfg and enters the loading state.
func New(cfg config.Scene, opts Options) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Renderer == nil {
		return nil, errors.Wrap(director.ErrNoRenderer, "cannot start scene")
	}
	source := opts.Clock
	if source == nil {
		source = clk.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	overlay := opts.Overlay
	if overlay == nil {
		overlay = ui.NewOverlay()
	}

	a := &App{
		Config:     cfg,
		Logger:     logger,
		Rng:        utils.NewPRNGService(cfg.Seed),
		Scheduler:  clock.NewScheduler(source),
		FrameClock: clock.NewFrameClock(source, config.MaxDeltaTime),
		Dispatcher: event.NewDispatcher(),
		Camera:     scene.NewCamera(cfg.Width, cfg.Height),
		Overlay:    overlay,
		renderer:   opts.Renderer,
	}

	sw := swarm.New(a.Rng, a.Scheduler, time.Duration(cfg.RespawnMs)*time.Millisecond)
	a.Scene = scene.Build(cfg, a.Rng, sw, effect.NewManager(a.Rng))
	logger.Infow("scene built",
		"seed", a.Rng.Seed(),
		"mobile", cfg.Mobile,
		"bubbles", sw.Len(),
		"props", len(a.Scene.Props),
		"particles", len(a.Scene.Particles.Points),
	)

	d, err := director.New(a.Scene, a.Camera, a.FrameClock, a.Scheduler, opts.Renderer, director.Options{
		Mobile:     cfg.Mobile,
		Logger:     logger.Named("director"),
		Dispatcher: a.Dispatcher,
		Sink:       overlay,
	})
	if err != nil {
		return nil, errors.Wrap(err, "cannot start scene")
	}
	a.Director = d
	started := source.Now()
	a.Dispatcher.Subscribe(event.ListenerFunc(func(event.Event) {
		logger.Infow("loading complete", "elapsed", source.Since(started))
	}), event.LoadingComplete)

	if cfg.Sound {
		a.Audio = audio.NewPlayer(logger.Named("audio"))
		if err := a.Audio.Init(); err != nil {
			logger.Warnw("sound disabled", "error", err)
		}
		a.Audio.Subscribe(a.Dispatcher)
	}

	a.stateMachine = state.NewStateMachine()
	a.sceneState = state.NewSceneState(a.stateMachine, d, a.Scheduler, overlay, cfg.Mobile)
	loading := state.NewLoadingState(a.stateMachine, state.LoadingDeps{
		Scheduler:  a.Scheduler,
		Rng:        a.Rng,
		Sink:       overlay,
		Renderer:   opts.Renderer,
		Scene:      a.Scene,
		Camera:     a.Camera,
		Dispatcher: a.Dispatcher,
		Skip:       cfg.SkipLoading,
	}, func() state.State { return a.sceneState })
	a.stateMachine.SetState(loading)
	return a, nil
}

// Update runs one frame.
func (a *App) Update() {
	a.stateMachine.Update()
}

// Running reports whether the animation loop has started.
func (a *App) Running() bool {
	return a.stateMachine.Current() == state.State(a.sceneState)
}

// Paused reports whether the scene is frozen.
func (a *App) Paused() bool {
	return a.pauseState != nil && a.stateMachine.Current() == state.State(a.pauseState)
}

// TogglePause freezes or resumes the animation. It does nothing while loading.
func (a *App) TogglePause() {
	switch {
	case a.Paused():
		a.pauseState.Resume()
		a.pauseState = nil
	case a.Running():
		a.pauseState = state.NewPauseState(a.stateMachine, a.sceneState, a.renderer, a.Scene, a.Camera, a.FrameClock, a.Scheduler, a.Overlay)
		a.stateMachine.SetState(a.pauseState)
	}
}

// Click forwards a click or tap. Paused scenes ignore it.
func (a *App) Click(ev director.PointerEvent) {
	if a.Paused() {
		return
	}
	a.Overlay.Pointer.Click(a.FrameClock.Now())
	a.Director.HandlePointer(ev)
}

func (a *App) PointerMoved(x, y float64) { a.Director.PointerMoved(x, y) }

func (a *App) Wheel(dy float64) { a.Director.Wheel(dy) }

func (a *App) Touches(points []director.Touch) { a.Director.Touches(points) }

func (a *App) Orientation(alpha, beta, gamma float64) { a.Director.Orientation(alpha, beta, gamma) }

func (a *App) Resize(w, h int) { a.Director.Resize(w, h) }

func (a *App) ResetCamera() { a.Director.ResetCamera() }

// Close releases the audio device.
func (a *App) Close() {
	if a.Audio != nil {
		a.Audio.Close()
	}
}
