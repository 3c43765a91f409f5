// Package event carries scene notifications (pops, explosions, HUD counters,
// loading progress) from the director and states to their subscribers.
package event

import "github.com/golang/geo/r3"

// EventType names an event.
type EventType string

const (
	BubblePopped     EventType = "BubblePopped"
	PropExploded     EventType = "PropExploded"
	FPSUpdated       EventType = "FPSUpdated"
	HighlightChanged EventType = "HighlightChanged"
	LoadingProgress  EventType = "LoadingProgress"
	LoadingComplete  EventType = "LoadingComplete"
)

// Payload is the data of one event. Each payload knows the type it is published under.
type Payload interface {
	EventType() EventType
}

// PopData is the payload of BubblePopped.
type PopData struct {
	Instance int
	Position r3.Vector
}

// ExplodeData is the payload of PropExploded.
type ExplodeData struct {
	Prop     int
	Position r3.Vector
}

// FPSData is the payload of FPSUpdated.
type FPSData struct {
	FPS   int
	Frame uint64
}

// HighlightData is the payload of HighlightChanged. Prop is -1 and Mesh empty when nothing is hovered.
type HighlightData struct {
	Prop int
	Mesh string
}

// ProgressData is the payload of LoadingProgress.
type ProgressData struct {
	Percent float64
}

// CompleteData is the empty payload of LoadingComplete.
type CompleteData struct{}

func (PopData) EventType() EventType       { return BubblePopped }
func (ExplodeData) EventType() EventType   { return PropExploded }
func (FPSData) EventType() EventType       { return FPSUpdated }
func (HighlightData) EventType() EventType { return HighlightChanged }
func (ProgressData) EventType() EventType  { return LoadingProgress }
func (CompleteData) EventType() EventType  { return LoadingComplete }

// Event is what listeners receive. Data may be nil for hand-built events.
type Event struct {
	Type EventType
	Data Payload
}

// Listener is implemented by subscribers.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher delivers events synchronously, in subscription order, on the
// caller's goroutine. A nil *Dispatcher drops everything, so headless tests
// can leave it unset.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[EventType][]Listener)}
}

// Subscribe adds a listener for each of the given types.
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Unsubscribe removes the first registration of listener under t. Only
// comparable listeners (pointers, not ListenerFunc) can be removed.
func (d *Dispatcher) Unsubscribe(listener Listener, t EventType) {
	ls := d.listeners[t]
	for i, l := range ls {
		if l == listener {
			d.listeners[t] = append(ls[:i:i], ls[i+1:]...)
			return
		}
	}
}

// Publish wraps p in an Event of its own type and dispatches it.
func (d *Dispatcher) Publish(p Payload) {
	d.Dispatch(Event{Type: p.EventType(), Data: p})
}

// Dispatch sends e to every subscriber of e.Type.
func (d *Dispatcher) Dispatch(e Event) {
	if d == nil {
		return
	}
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
}
