// internal/ui/fps.go
package ui

import "math"

// FPSCounter reports round(1/delta) once every Every frames.
type FPSCounter struct {
	Every uint64
	value int
}

// Sample returns the new reading when frame is a reporting frame.
func (c *FPSCounter) Sample(frame uint64, delta float64) (int, bool) {
	if c.Every == 0 || frame%c.Every != 0 || delta <= 0 {
		return 0, false
	}
	c.value = int(math.Round(1 / delta))
	return c.value, true
}

func (c *FPSCounter) Value() int { return c.value }
