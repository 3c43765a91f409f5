// internal/ui/cursor.go
package ui

import (
	"math"
	"time"

	"go-neon-scene/internal/config"
)

// Cursor is the custom pointer: a ring at the pointer and a larger follower behind it.
type Cursor struct {
	X, Y                 float64
	FollowerX, FollowerY float64
	Seen                 bool
	lastClick            time.Time
}

// Move places both rings relative to the pointer position.
func (c *Cursor) Move(x, y float64) {
	c.X, c.Y = x-config.CursorOffset, y-config.CursorOffset
	c.FollowerX, c.FollowerY = x-config.CursorFollowOffset, y-config.CursorFollowOffset
	c.Seen = true
}

// Click starts the pulse animation.
func (c *Cursor) Click(now time.Time) {
	c.lastClick = now
}

// Pulse returns the ring scale: 1.3 right after a click, decaying back to 1.
func (c *Cursor) Pulse(now time.Time) float64 {
	if c.lastClick.IsZero() {
		return 1
	}
	elapsed := now.Sub(c.lastClick).Seconds()
	return 1.0 + 0.3*math.Exp(-elapsed*8)
}
