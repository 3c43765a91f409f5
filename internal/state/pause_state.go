// internal/state/pause_state.go
package state

import (
	"go-neon-scene/internal/clock"
	"go-neon-scene/internal/director"
	"go-neon-scene/internal/scene"
)

var _ State = (*PauseState)(nil)

// Pauser is implemented by sinks that can show a pause banner.
type Pauser interface {
	Paused(on bool)
}

// PauseState freezes the animation. The frozen frame keeps being submitted, timers
// stop counting, and the frame clock is resynced on exit so the first tick after
// it has no jump.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	renderer      director.Renderer
	scene         *scene.Scene
	camera        *scene.Camera
	frameClock    *clock.FrameClock
	scheduler     *clock.Scheduler
	banner        Pauser
}

func NewPauseState(sm *StateMachine, prev State, r director.Renderer, sc *scene.Scene, cam *scene.Camera, fc *clock.FrameClock, scheduler *clock.Scheduler, banner Pauser) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prev,
		renderer:      r,
		scene:         sc,
		camera:        cam,
		frameClock:    fc,
		scheduler:     scheduler,
		banner:        banner,
	}
}

func (s *PauseState) Enter() {
	s.scheduler.Freeze()
	if s.banner != nil {
		s.banner.Paused(true)
	}
}

func (s *PauseState) Update() {
	s.renderer.Submit(s.scene, s.camera)
}

func (s *PauseState) Exit() {
	s.frameClock.Resync()
	s.scheduler.Thaw()
	if s.banner != nil {
		s.banner.Paused(false)
	}
}

// Resume returns to the state that was paused.
func (s *PauseState) Resume() {
	s.stateMachine.SetState(s.previousState)
}
