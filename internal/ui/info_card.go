// internal/ui/info_card.go
package ui

import (
	"time"

	"go-neon-scene/internal/clock"
	"go-neon-scene/internal/config"
)

const (
	infoShowKey clock.Key = "ui/info/show"
	infoHideKey clock.Key = "ui/info/hide"

	infoSlideSpeed = 0.08
)

// InfoCard is the controls hint. It slides in and out; Offset is 0 when fully shown
// and 1 when fully hidden.
type InfoCard struct {
	Visible bool
	Offset  float64
	target  float64
}

func NewInfoCard() InfoCard {
	return InfoCard{Offset: 1, target: 1}
}

func (c *InfoCard) Show() {
	c.Visible = true
	c.target = 0
}

func (c *InfoCard) Hide() {
	c.target = 1
}

// Update moves the slide animation one frame towards its target.
func (c *InfoCard) Update() {
	diff := c.target - c.Offset
	switch {
	case diff > -infoSlideSpeed && diff < infoSlideSpeed:
		c.Offset = c.target
	case diff > 0:
		c.Offset += infoSlideSpeed
	default:
		c.Offset -= infoSlideSpeed
	}
	if c.Offset >= 1 {
		c.Visible = false
	}
}

// ScheduleInfoCard shows the card one second after loading and hides it four seconds later.
func ScheduleInfoCard(scheduler *clock.Scheduler, sink Sink) {
	scheduler.After(infoShowKey, config.InfoCardShowMs*time.Millisecond, func() {
		sink.InfoCard(true)
	})
	scheduler.After(infoHideKey, config.InfoCardHideMs*time.Millisecond, func() {
		sink.InfoCard(false)
	})
}

// InfoLines is the text every renderer shows on the info card.
var InfoLines = []string{
	"NEON BUBBLES",
	"move the mouse to look around",
	"click bubbles to pop them",
	"wheel to zoom, space to reset, P to pause",
}
