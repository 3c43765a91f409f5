package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// sweep is a sine whose pitch glides from start to end while the amplitude decays
// exponentially. Short downward sweeps sound like a bubble popping.
type sweep struct {
	rate       beep.SampleRate
	start, end float64
	decay      float64
	phase      float64
	position   int
	total      int
}

func newSweep(rate beep.SampleRate, start, end float64, d time.Duration, decay float64) *sweep {
	return &sweep{rate: rate, start: start, end: end, decay: decay, total: rate.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		progress := float64(s.position) / float64(s.total)
		freq := s.start + (s.end-s.start)*progress
		val := math.Sin(2*math.Pi*s.phase) * math.Exp(-s.decay*progress)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noise is a decaying white noise burst.
type noise struct {
	rng      *rand.Rand
	decay    float64
	position int
	total    int
}

func newNoise(rate beep.SampleRate, d time.Duration, decay float64, seed int64) *noise {
	return &noise{rng: rand.New(rand.NewSource(seed)), decay: decay, total: rate.N(d)}
}

func (s *noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		progress := float64(s.position) / float64(s.total)
		val := (s.rng.Float64()*2 - 1) * math.Exp(-s.decay*progress)
		samples[i][0] = val
		samples[i][1] = val
		s.position++
	}
	return len(samples), true
}

func (s *noise) Err() error { return nil }

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// PopSound is the cue for a popped bubble. variant shifts the pitch a little so a
// run of pops does not sound identical.
func PopSound(rate beep.SampleRate, variant int) beep.Streamer {
	base := 700 + float64(variant%7)*45
	return withVolume(newSweep(rate, base, base*0.4, 80*time.Millisecond, 5), 0.35)
}

// BoomSound is the cue for an exploding camera prop: a low thump under a noise burst.
func BoomSound(rate beep.SampleRate, seed int64) beep.Streamer {
	thump := newSweep(rate, 120, 40, 250*time.Millisecond, 4)
	burst := newNoise(rate, 200*time.Millisecond, 6, seed)
	return withVolume(beep.Mix(withVolume(thump, 0.7), withVolume(burst, 0.3)), 0.5)
}
