// internal/state/loading_state.go
package state

import (
	"go-neon-scene/internal/clock"
	"go-neon-scene/internal/director"
	"go-neon-scene/internal/event"
	"go-neon-scene/internal/scene"
	"go-neon-scene/internal/ui"
	"go-neon-scene/internal/utils"
)

var _ State = (*LoadingState)(nil)

// LoadingState shows the loading bar over a still scene and switches to next
// once the bar completes.
type LoadingState struct {
	sm         *StateMachine
	scheduler  *clock.Scheduler
	renderer   director.Renderer
	scene      *scene.Scene
	camera     *scene.Camera
	dispatcher *event.Dispatcher
	bar        *ui.LoadingBar
	skip       bool
	next       func() State
}

// LoadingDeps groups what the loading state needs.
type LoadingDeps struct {
	Scheduler  *clock.Scheduler
	Rng        *utils.PRNGService
	Sink       ui.Sink
	Renderer   director.Renderer
	Scene      *scene.Scene
	Camera     *scene.Camera
	Dispatcher *event.Dispatcher
	Skip       bool
}

func NewLoadingState(sm *StateMachine, deps LoadingDeps, next func() State) *LoadingState {
	s := &LoadingState{
		sm:         sm,
		scheduler:  deps.Scheduler,
		renderer:   deps.Renderer,
		scene:      deps.Scene,
		camera:     deps.Camera,
		dispatcher: deps.Dispatcher,
		skip:       deps.Skip,
		next:       next,
	}
	s.bar = ui.NewLoadingBar(deps.Scheduler, deps.Rng, progressSink{deps.Sink, deps.Dispatcher}, s.finish)
	return s
}

func (s *LoadingState) Enter() {
	if s.skip {
		s.bar.Skip()
		return
	}
	s.bar.Start()
}

func (s *LoadingState) Update() {
	s.scheduler.Poll()
	if s.sm.Current() == State(s) {
		s.renderer.Submit(s.scene, s.camera)
	}
}

func (s *LoadingState) Exit() {}

// Progress returns the current bar value.
func (s *LoadingState) Progress() float64 { return s.bar.Progress() }

func (s *LoadingState) finish() {
	s.dispatcher.Publish(event.CompleteData{})
	s.sm.SetState(s.next())
}

// progressSink mirrors loading progress onto the event bus.
type progressSink struct {
	ui.Sink
	dispatcher *event.Dispatcher
}

func (p progressSink) Progress(percent float64) {
	if p.Sink != nil {
		p.Sink.Progress(percent)
	}
	p.dispatcher.Publish(event.ProgressData{Percent: percent})
}

func (p progressSink) LoaderHidden() {
	if p.Sink != nil {
		p.Sink.LoaderHidden()
	}
}
