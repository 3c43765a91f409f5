// Package swarm owns the bubble instances: a fixed set of slots that rise, drift,
// get popped by the user and are recycled in place.
package swarm

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"

	"go-neon-scene/internal/clock"
	"go-neon-scene/internal/config"
	"go-neon-scene/internal/utils"
	"go-neon-scene/pkg/geom"
)

// State is the lifecycle flag of one slot.
type State int

const (
	Active State = iota
	Popped
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Popped:
		return "popped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Bounds describes the volume bubbles live in: a horizontal square of side
// FieldSize centred at the origin, between Floor and Ceiling.
type Bounds struct {
	FieldSize float64
	Floor     float64
	Ceiling   float64
}

// DefaultBounds returns the scene's standard field.
func DefaultBounds() Bounds {
	return Bounds{FieldSize: config.FieldSize, Floor: config.FloorY, Ceiling: config.CeilingY}
}

// Instance is one bubble slot.
type Instance struct {
	BasePosition r3.Vector
	Scale        float64
	RiseSpeed    float64
	State        State

	rendered r3.Vector
}

// Position returns where the instance was last rendered, drift included.
func (in Instance) Position() r3.Vector {
	return in.rendered
}

// PopOutcome is returned by a successful Pop.
type PopOutcome struct {
	Index    int
	Position r3.Vector // world position just before the pop
}

// Swarm is the instanced bubble set.
type Swarm struct {
	instances []Instance
	bounds    Bounds
	rng       *utils.PRNGService
	scheduler *clock.Scheduler
	respawn   time.Duration
	epoch     uint64
	volume    geom.AABB
}

// New creates an empty swarm. Re-activation of popped slots is deferred through scheduler.
func New(rng *utils.PRNGService, scheduler *clock.Scheduler, respawn time.Duration) *Swarm {
	return &Swarm{
		rng:       rng,
		scheduler: scheduler,
		respawn:   respawn,
		bounds:    DefaultBounds(),
	}
}

// Initialize allocates count active instances at random positions inside bounds.
// Any previous slots are discarded along with their pending re-activations.
func (s *Swarm) Initialize(count int, bounds Bounds) {
	for i := range s.instances {
		s.scheduler.Cancel(respawnKey(i))
	}
	if count < 0 {
		count = 0
	}
	s.epoch++
	s.bounds = bounds
	s.instances = make([]Instance, count)
	for i := range s.instances {
		pos := r3.Vector{
			X: s.rng.Centered(bounds.FieldSize),
			Y: bounds.Floor + s.rng.Float64()*bounds.FieldSize*0.6,
			Z: s.rng.Centered(bounds.FieldSize),
		}
		s.instances[i] = Instance{
			BasePosition: pos,
			Scale:        s.rng.Range(config.BubbleMinScale, config.BubbleMaxScale),
			RiseSpeed:    s.rng.Range(config.BubbleMinSpeed, config.BubbleMaxSpeed),
			State:        Active,
			rendered:     pos,
		}
	}
	s.rebuildVolume()
}

// Advance moves every active instance up by riseSpeed*delta*5 and applies the
// horizontal drift for the given global frame. Instances crossing the ceiling are
// recycled to the floor at a new horizontal position.
func (s *Swarm) Advance(delta float64, frame uint64) {
	phase := float64(frame) * config.BubbleDriftFreq
	for i := range s.instances {
		in := &s.instances[i]
		if in.State == Popped {
			in.rendered = in.BasePosition
			continue
		}

		in.BasePosition.Y += in.RiseSpeed * delta * config.BubbleRiseFactor
		if in.BasePosition.Y > s.bounds.Ceiling {
			in.BasePosition.Y = s.bounds.Floor
			s.scatter(in)
		}

		// Sine on x and cosine on z keep the drift from being radially symmetric
		in.rendered = r3.Vector{
			X: in.BasePosition.X + math.Sin(phase+float64(i))*config.BubbleDriftAmp,
			Y: in.BasePosition.Y,
			Z: in.BasePosition.Z + math.Cos(phase+float64(i))*config.BubbleDriftAmp,
		}
	}
	s.rebuildVolume()
}

// Pop hides an active instance, drops it to the floor and schedules its return.
// Out-of-range indices and already popped instances are ignored.
func (s *Swarm) Pop(index int) (PopOutcome, bool) {
	if index < 0 || index >= len(s.instances) {
		return PopOutcome{}, false
	}
	in := &s.instances[index]
	if in.State == Popped {
		return PopOutcome{}, false
	}

	outcome := PopOutcome{Index: index, Position: in.rendered}
	in.State = Popped
	in.BasePosition.Y = s.bounds.Floor
	in.rendered = in.BasePosition

	epoch := s.epoch
	s.scheduler.After(respawnKey(index), s.respawn, func() {
		s.reactivate(index, epoch)
	})
	s.rebuildVolume()
	return outcome, true
}

// reactivate brings a popped slot back. Slots discarded by a later Initialize are left alone.
func (s *Swarm) reactivate(index int, epoch uint64) {
	if epoch != s.epoch || index >= len(s.instances) {
		return
	}
	in := &s.instances[index]
	if in.State != Popped {
		return
	}
	s.scatter(in)
	in.State = Active
	in.rendered = in.BasePosition
	s.rebuildVolume()
}

// scatter re-randomizes the horizontal position only.
func (s *Swarm) scatter(in *Instance) {
	in.BasePosition.X = s.rng.Centered(s.bounds.FieldSize)
	in.BasePosition.Z = s.rng.Centered(s.bounds.FieldSize)
}

// InstanceTransforms returns one transform per slot in index order.
func (s *Swarm) InstanceTransforms() []mgl64.Mat4 {
	return s.AppendTransforms(make([]mgl64.Mat4, 0, len(s.instances)))
}

// AppendTransforms appends the per-slot transforms to dst, so renderers can reuse a buffer.
func (s *Swarm) AppendTransforms(dst []mgl64.Mat4) []mgl64.Mat4 {
	for i := range s.instances {
		in := &s.instances[i]
		scale := in.Scale
		if in.State == Popped {
			scale = 0
		}
		p := in.rendered
		dst = append(dst, mgl64.Translate3D(p.X, p.Y, p.Z).Mul4(mgl64.Scale3D(scale, scale, scale)))
	}
	return dst
}

// Len returns the number of slots.
func (s *Swarm) Len() int {
	return len(s.instances)
}

// Instance returns a copy of slot i.
func (s *Swarm) Instance(i int) Instance {
	return s.instances[i]
}

// ActiveCount returns the number of visible instances.
func (s *Swarm) ActiveCount() int {
	n := 0
	for i := range s.instances {
		if s.instances[i].State == Active {
			n++
		}
	}
	return n
}

// Bounds returns the field the swarm lives in.
func (s *Swarm) Bounds() Bounds {
	return s.bounds
}

// HitSphere returns the bounding sphere of slot i; popped slots have none.
func (s *Swarm) HitSphere(i int) (geom.Sphere, bool) {
	if i < 0 || i >= len(s.instances) || s.instances[i].State == Popped {
		return geom.Sphere{}, false
	}
	in := s.instances[i]
	return geom.Sphere{Center: in.rendered, Radius: config.BubbleRadius * in.Scale}, true
}

// HitVolume is the box enclosing every active instance's sphere. It is empty when
// nothing is visible.
func (s *Swarm) HitVolume() geom.AABB {
	return s.volume
}

func (s *Swarm) rebuildVolume() {
	var box geom.AABB
	for i := range s.instances {
		if sphere, ok := s.HitSphere(i); ok {
			box = box.Union(sphere.Bounds())
		}
	}
	s.volume = box
}

func respawnKey(i int) clock.Key {
	return clock.Key("swarm/respawn/" + strconv.Itoa(i))
}
