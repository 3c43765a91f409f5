package event

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchByType(t *testing.T) {
	d := NewDispatcher()
	pops, fps := &recorder{}, &recorder{}
	d.Subscribe(pops, BubblePopped)
	d.Subscribe(fps, FPSUpdated)

	d.Dispatch(Event{Type: BubblePopped, Data: PopData{Instance: 4}})
	d.Dispatch(Event{Type: PropExploded})

	test.That(t, pops.got, test.ShouldHaveLength, 1)
	test.That(t, pops.got[0].Data.(PopData).Instance, test.ShouldEqual, 4)
	test.That(t, fps.got, test.ShouldBeEmpty)
}

func TestPublishUsesPayloadType(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(r, BubblePopped, PropExploded, HighlightChanged, LoadingProgress, LoadingComplete, FPSUpdated)

	payloads := []Payload{
		PopData{Instance: 2, Position: r3.Vector{X: 1}},
		ExplodeData{Prop: 3},
		HighlightData{Prop: -1},
		ProgressData{Percent: 50},
		CompleteData{},
		FPSData{FPS: 60, Frame: 120},
	}
	for _, p := range payloads {
		d.Publish(p)
	}

	test.That(t, r.got, test.ShouldHaveLength, len(payloads))
	want := []EventType{BubblePopped, PropExploded, HighlightChanged, LoadingProgress, LoadingComplete, FPSUpdated}
	for i, e := range r.got {
		test.That(t, e.Type, test.ShouldEqual, want[i])
		test.That(t, e.Data, test.ShouldResemble, payloads[i])
	}
}

func TestSubscriptionOrderAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	var order []string
	a := &recorder{}
	d.Subscribe(ListenerFunc(func(Event) { order = append(order, "first") }), FPSUpdated)
	d.Subscribe(a, FPSUpdated, BubblePopped)
	d.Subscribe(ListenerFunc(func(Event) { order = append(order, "last") }), FPSUpdated)

	d.Publish(FPSData{FPS: 30})
	test.That(t, order, test.ShouldResemble, []string{"first", "last"})
	test.That(t, a.got, test.ShouldHaveLength, 1)

	d.Unsubscribe(a, FPSUpdated)
	d.Publish(FPSData{FPS: 30})
	test.That(t, a.got, test.ShouldHaveLength, 1)
	test.That(t, order, test.ShouldHaveLength, 4)

	d.Publish(PopData{Instance: 1})
	test.That(t, a.got, test.ShouldHaveLength, 2)
}

func TestNilDispatcherIsSilent(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Type: BubblePopped})
	d.Publish(CompleteData{})
}
