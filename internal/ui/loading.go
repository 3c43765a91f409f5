// internal/ui/loading.go
package ui

import (
	"time"

	"go-neon-scene/internal/clock"
	"go-neon-scene/internal/config"
	"go-neon-scene/internal/utils"
)

const (
	loadingStepKey clock.Key = "ui/loading/step"
	loadingHoldKey clock.Key = "ui/loading/hold"
)

// LoadingBar simulates asset loading: every step it grows by a random amount up to
// LoadingMaxStep, and after reaching 100 it holds briefly before reporting completion.
type LoadingBar struct {
	scheduler  *clock.Scheduler
	rng        *utils.PRNGService
	sink       Sink
	progress   float64
	done       bool
	onComplete func()
}

func NewLoadingBar(scheduler *clock.Scheduler, rng *utils.PRNGService, sink Sink, onComplete func()) *LoadingBar {
	return &LoadingBar{
		scheduler:  scheduler,
		rng:        rng,
		sink:       sink,
		onComplete: onComplete,
	}
}

// Start schedules the first step.
func (b *LoadingBar) Start() {
	b.progress = 0
	b.done = false
	b.sink.Progress(0)
	b.scheduler.After(loadingStepKey, config.LoadingStepMs*time.Millisecond, b.step)
}

// Skip jumps to completion without the animation.
func (b *LoadingBar) Skip() {
	b.scheduler.Cancel(loadingStepKey)
	b.scheduler.Cancel(loadingHoldKey)
	b.progress = 100
	b.sink.Progress(100)
	b.complete()
}

func (b *LoadingBar) step() {
	b.progress += b.rng.Float64() * config.LoadingMaxStep
	if b.progress >= 100 {
		b.progress = 100
		b.sink.Progress(b.progress)
		b.scheduler.After(loadingHoldKey, config.LoadingHoldMs*time.Millisecond, b.complete)
		return
	}
	b.sink.Progress(b.progress)
	b.scheduler.After(loadingStepKey, config.LoadingStepMs*time.Millisecond, b.step)
}

func (b *LoadingBar) complete() {
	if b.done {
		return
	}
	b.done = true
	b.sink.LoaderHidden()
	if b.onComplete != nil {
		b.onComplete()
	}
}

func (b *LoadingBar) Progress() float64 { return b.progress }

func (b *LoadingBar) Done() bool { return b.done }
