// internal/state/scene_state.go
package state

import (
	"go-neon-scene/internal/clock"
	"go-neon-scene/internal/director"
	"go-neon-scene/internal/ui"
)

var _ State = (*SceneState)(nil)

// SceneState runs the animation loop.
type SceneState struct {
	sm        *StateMachine
	director  *director.Director
	scheduler *clock.Scheduler
	sink      ui.Sink
	mobile    bool
	entered   bool
}

func NewSceneState(sm *StateMachine, d *director.Director, scheduler *clock.Scheduler, sink ui.Sink, mobile bool) *SceneState {
	return &SceneState{sm: sm, director: d, scheduler: scheduler, sink: sink, mobile: mobile}
}

// Enter schedules the info card the first time the scene starts. Coming back
// from pause does not show it again.
func (s *SceneState) Enter() {
	if s.entered {
		return
	}
	s.entered = true
	if !s.mobile && s.sink != nil {
		ui.ScheduleInfoCard(s.scheduler, s.sink)
	}
}

func (s *SceneState) Update() {
	s.director.Tick()
}

func (s *SceneState) Exit() {}

// Director exposes the director for input routing.
func (s *SceneState) Director() *director.Director { return s.director }
