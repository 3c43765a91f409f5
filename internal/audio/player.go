// Package audio plays short synthesized cues for scene events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"go-neon-scene/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// Player turns pop and explosion events into sounds. Until Init succeeds every
// event is ignored, so a machine without an audio device still runs the scene.
type Player struct {
	mu          sync.Mutex
	logger      *zap.SugaredLogger
	play        func(beep.Streamer)
	initialized bool
	played      int
}

func NewPlayer(logger *zap.SugaredLogger) *Player {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Player{logger: logger, play: func(s beep.Streamer) { speaker.Play(s) }}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return errors.Wrap(err, "failed to open audio device")
	}
	p.initialized = true
	return nil
}

// Close stops every sound that is still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}

// Subscribe registers the player for the events it has sounds for.
func (p *Player) Subscribe(d *event.Dispatcher) {
	d.Subscribe(p, event.BubblePopped, event.PropExploded)
}

func (p *Player) OnEvent(e event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	switch data := e.Data.(type) {
	case event.PopData:
		p.play(PopSound(sampleRate, data.Instance))
	case event.ExplodeData:
		p.play(BoomSound(sampleRate, int64(data.Prop)+int64(p.played)))
	default:
		p.logger.Debugw("no sound for event", "type", e.Type)
		return
	}
	p.played++
}

// Played returns how many cues were started.
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}
