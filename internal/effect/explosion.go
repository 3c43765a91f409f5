// Package effect runs short-lived visual effects that expire on their own.
package effect

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/samber/lo"

	"go-neon-scene/internal/config"
	"go-neon-scene/internal/utils"
)

// Explosion is a burst of point particles that fades out over a fixed number of ticks.
type Explosion struct {
	ID        uint64
	Origin    r3.Vector
	Particles []r3.Vector
	Opacity   float64

	age      int
	lifetime int
	fade     float64
}

// Alive reports whether the explosion still has visible opacity.
func (e *Explosion) Alive() bool {
	return e.age < e.lifetime
}

// Age returns the number of ticks the explosion has run.
func (e *Explosion) Age() int {
	return e.age
}

// step fades the explosion and jitters every particle by a vector scaled with the
// remaining opacity. It returns false once the explosion has expired.
func (e *Explosion) step(rng *utils.PRNGService) bool {
	if !e.Alive() {
		return false
	}
	e.age++
	// Opacity is derived from the tick count so the last tick lands on exactly zero.
	e.Opacity = math.Max(0, 1-float64(e.age)*e.fade)
	if e.age >= e.lifetime {
		e.Opacity = 0
	}
	for i := range e.Particles {
		e.Particles[i] = e.Particles[i].Add(rng.Jitter(config.ExplosionJitter).Mul(e.Opacity))
	}
	return e.Alive()
}

// release drops the particle buffer.
func (e *Explosion) release() {
	e.Particles = nil
}

// Manager owns every active explosion. Explosions share no state: each one is
// advanced independently and removed when it expires.
type Manager struct {
	rng    *utils.PRNGService
	active []*Explosion
	nextID uint64
	count  int
	fade   float64
}

// NewManager creates a manager spawning config.ExplosionParticles particles per burst.
func NewManager(rng *utils.PRNGService) *Manager {
	return &Manager{rng: rng, count: config.ExplosionParticles, fade: config.ExplosionFade}
}

// Spawn starts an explosion around pos.
func (m *Manager) Spawn(pos r3.Vector) *Explosion {
	m.nextID++
	particles := make([]r3.Vector, m.count)
	for i := range particles {
		particles[i] = pos.Add(m.rng.Jitter(config.ExplosionSpread))
	}
	e := &Explosion{
		ID:        m.nextID,
		Origin:    pos,
		Particles: particles,
		Opacity:   1,
		lifetime:  int(math.Ceil(1/m.fade - 1e-9)),
		fade:      m.fade,
	}
	m.active = append(m.active, e)
	return e
}

// Tick advances every explosion by one frame and drops the expired ones.
func (m *Manager) Tick() {
	m.active = lo.Filter(m.active, func(e *Explosion, _ int) bool {
		if e.step(m.rng) {
			return true
		}
		e.release()
		return false
	})
}

// Active returns the live explosions. The slice must not be modified.
func (m *Manager) Active() []*Explosion {
	return m.active
}

// Len returns the number of live explosions.
func (m *Manager) Len() int {
	return len(m.active)
}
