package director

import (
	"testing"
	"time"

	clk "github.com/benbjohnson/clock"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/zap/zaptest"
	"go.viam.com/test"

	"go-neon-scene/internal/clock"
	"go-neon-scene/internal/config"
	"go-neon-scene/internal/effect"
	"go-neon-scene/internal/event"
	"go-neon-scene/internal/scene"
	"go-neon-scene/internal/swarm"
	"go-neon-scene/internal/utils"
)

const tick = 20 * time.Millisecond

type fakeRenderer struct {
	submits int
	last    *scene.Scene
}

func (r *fakeRenderer) Submit(sc *scene.Scene, cam *scene.Camera) {
	r.submits++
	r.last = sc
}

type fakeSink struct {
	fps    []int
	cursor [][2]float64
}

func (s *fakeSink) Progress(float64)    {}
func (s *fakeSink) LoaderHidden()       {}
func (s *fakeSink) FPS(n int)           { s.fps = append(s.fps, n) }
func (s *fakeSink) InfoCard(bool)       {}
func (s *fakeSink) Cursor(x, y float64) { s.cursor = append(s.cursor, [2]float64{x, y}) }

type fixture struct {
	mock     *clk.Mock
	renderer *fakeRenderer
	sink     *fakeSink
	events   []event.Event
	scene    *scene.Scene
	camera   *scene.Camera
	director *Director
}

func newFixture(t *testing.T, bubbles, props int, mobile bool) *fixture {
	t.Helper()
	mock := clk.NewMock()
	scheduler := clock.NewScheduler(mock)
	rng := utils.NewPRNGService(1)

	cfg := config.Default(mobile)
	cfg.Bubbles = bubbles
	cfg.Props = props
	cfg.Particles = 10
	sw := swarm.New(rng, scheduler, 500*time.Millisecond)
	sc := scene.Build(cfg, rng, sw, effect.NewManager(rng))
	cam := scene.NewCamera(800, 600)

	f := &fixture{mock: mock, renderer: &fakeRenderer{}, sink: &fakeSink{}, scene: sc, camera: cam}
	dispatcher := event.NewDispatcher()
	record := event.ListenerFunc(func(e event.Event) { f.events = append(f.events, e) })
	dispatcher.Subscribe(record, event.BubblePopped, event.PropExploded, event.FPSUpdated, event.HighlightChanged)

	d, err := New(sc, cam, clock.NewFrameClock(mock, config.MaxDeltaTime), scheduler, f.renderer, Options{
		Mobile:     mobile,
		Logger:     zaptest.NewLogger(t).Sugar(),
		Dispatcher: dispatcher,
		Sink:       f.sink,
	})
	test.That(t, err, test.ShouldBeNil)
	f.director = d
	return f
}

func (f *fixture) tick(n int) {
	for i := 0; i < n; i++ {
		f.mock.Add(tick)
		f.director.Tick()
	}
}

func (f *fixture) eventsOf(typ event.EventType) []event.Event {
	var out []event.Event
	for _, e := range f.events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

// aimAt puts the camera 20 units in front of p so that p sits at the viewport centre.
func (f *fixture) aimAt(p r3.Vector) {
	f.camera.Position = p.Add(r3.Vector{Z: 20})
	f.camera.Rotation = r3.Vector{}
}

func TestNewRequiresRenderer(t *testing.T) {
	mock := clk.NewMock()
	cam := scene.NewCamera(800, 600)
	_, err := New(&scene.Scene{}, cam, clock.NewFrameClock(mock, 0), clock.NewScheduler(mock), nil, Options{})
	test.That(t, errors.Is(err, ErrNoRenderer), test.ShouldBeTrue)

	_, err = New(nil, cam, clock.NewFrameClock(mock, 0), clock.NewScheduler(mock), &fakeRenderer{}, Options{})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestTickSubmitsEveryFrame(t *testing.T) {
	f := newFixture(t, 10, 2, false)
	f.tick(5)
	test.That(t, f.director.Frame(), test.ShouldEqual, uint64(5))
	test.That(t, f.renderer.submits, test.ShouldEqual, 5)
	test.That(t, f.renderer.last, test.ShouldEqual, f.scene)
	test.That(t, f.director.LastDelta(), test.ShouldAlmostEqual, tick.Seconds())
}

func TestFirstTickHasZeroDelta(t *testing.T) {
	f := newFixture(t, 1, 0, false)
	before := f.scene.Swarm.Instance(0).BasePosition.Y
	f.director.Tick()
	test.That(t, f.director.LastDelta(), test.ShouldEqual, 0.0)
	test.That(t, f.scene.Swarm.Instance(0).BasePosition.Y, test.ShouldEqual, before)
}

func TestTickAnimatesDecorations(t *testing.T) {
	f := newFixture(t, 0, 1, false)
	prop := f.scene.Props[0]
	rot := prop.Rotation
	f.tick(3)
	test.That(t, prop.Rotation.X, test.ShouldAlmostEqual, rot.X+3*prop.RotationSpeed)
	test.That(t, f.scene.Particles.Rotation.Y, test.ShouldAlmostEqual, 3*0.0002)
	test.That(t, f.scene.Shapes[1].Rotation.X, test.ShouldAlmostEqual, 3*0.01*2*0.3)
}

func TestBubblesRiseWithDelta(t *testing.T) {
	f := newFixture(t, 1, 0, false)
	f.director.Tick()
	in := f.scene.Swarm.Instance(0)
	f.tick(1)
	after := f.scene.Swarm.Instance(0)
	test.That(t, after.BasePosition.Y, test.ShouldAlmostEqual, in.BasePosition.Y+in.RiseSpeed*tick.Seconds()*5)
}

func TestPointerSmoothing(t *testing.T) {
	f := newFixture(t, 0, 0, false)
	f.director.PointerMoved(500, 300) // 100 px right of centre
	test.That(t, f.sink.cursor, test.ShouldResemble, [][2]float64{{500, 300}})

	f.tick(1)
	test.That(t, f.camera.Rotation.Y, test.ShouldAlmostEqual, 0.1*0.05)
	test.That(t, f.camera.Rotation.X, test.ShouldAlmostEqual, 0.0)
	f.tick(1)
	test.That(t, f.camera.Rotation.Y, test.ShouldAlmostEqual, 0.005+(0.1-0.005)*0.05)
}

func TestOrientationOnlyOnMobile(t *testing.T) {
	f := newFixture(t, 0, 0, true)
	f.director.PointerMoved(700, 300)
	f.tick(1)
	test.That(t, f.camera.Rotation.Y, test.ShouldEqual, 0.0)

	f.director.Orientation(90, 90, 0)
	f.tick(1)
	test.That(t, f.camera.Rotation.Y, test.ShouldAlmostEqual, 1.5707963267948966*0.05)
	test.That(t, f.camera.Rotation.X, test.ShouldAlmostEqual, 0.0)
}

func TestClickPopsBubble(t *testing.T) {
	f := newFixture(t, 1, 0, false)
	f.tick(1)
	pos := f.scene.Swarm.Instance(0).Position()
	f.aimAt(pos)

	res, ok := f.director.HandlePointer(PointerEvent{X: 400, Y: 300})
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, res.Instance, test.ShouldEqual, 0)
	test.That(t, f.scene.Swarm.Instance(0).State, test.ShouldEqual, swarm.Popped)

	active := f.scene.Effects.Active()
	test.That(t, active, test.ShouldHaveLength, 1)
	test.That(t, active[0].Origin, test.ShouldResemble, pos)

	pops := f.eventsOf(event.BubblePopped)
	test.That(t, pops, test.ShouldHaveLength, 1)
	test.That(t, pops[0].Data.(event.PopData).Position, test.ShouldResemble, pos)

	// nothing left under the pointer
	_, ok = f.director.HandlePointer(PointerEvent{X: 400, Y: 300})
	test.That(t, ok, test.ShouldBeFalse)
	test.That(t, f.scene.Effects.Len(), test.ShouldEqual, 1)
}

func TestTapUsesFirstTouch(t *testing.T) {
	f := newFixture(t, 1, 0, true)
	f.tick(1)
	f.aimAt(f.scene.Swarm.Instance(0).Position())

	_, ok := f.director.HandlePointer(PointerEvent{X: 0, Y: 0, Touches: []Touch{{X: 400, Y: 300}, {X: 10, Y: 10}}})
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, f.scene.Swarm.ActiveCount(), test.ShouldEqual, 0)
}

func TestClickOnPropExplodesWithoutChangingIt(t *testing.T) {
	f := newFixture(t, 0, 1, false)
	prop := f.scene.Props[0]
	f.aimAt(prop.Position)
	before := *prop

	res, ok := f.director.HandlePointer(PointerEvent{X: 400, Y: 300})
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, res.Prop, test.ShouldEqual, prop)
	test.That(t, prop.Position, test.ShouldResemble, before.Position)
	test.That(t, prop.Rotation, test.ShouldResemble, before.Rotation)
	test.That(t, f.scene.Effects.Active()[0].Origin, test.ShouldResemble, prop.Position)
	test.That(t, f.eventsOf(event.PropExploded), test.ShouldHaveLength, 1)
}

func TestPoppedBubbleReturnsAfterDelay(t *testing.T) {
	f := newFixture(t, 10, 0, false)
	f.tick(1)
	_, popped := f.scene.Swarm.Pop(3)
	test.That(t, popped, test.ShouldBeTrue)
	test.That(t, f.scene.Swarm.InstanceTransforms()[3].At(0, 0), test.ShouldEqual, 0.0)

	f.tick(24)
	test.That(t, f.scene.Swarm.Instance(3).State, test.ShouldEqual, swarm.Popped)
	f.tick(1)
	in := f.scene.Swarm.Instance(3)
	test.That(t, in.State, test.ShouldEqual, swarm.Active)
	test.That(t, in.BasePosition.Y, test.ShouldBeGreaterThan, -10.0)
	test.That(t, in.BasePosition.Y, test.ShouldBeLessThan, -9.9)
}

func TestExplosionsExpireThroughTicks(t *testing.T) {
	f := newFixture(t, 0, 1, false)
	f.aimAt(f.scene.Props[0].Position)
	f.director.HandlePointer(PointerEvent{X: 400, Y: 300})
	f.director.HandlePointer(PointerEvent{X: 400, Y: 300})
	test.That(t, f.scene.Effects.Len(), test.ShouldEqual, 2)
	f.tick(49)
	test.That(t, f.scene.Effects.Len(), test.ShouldEqual, 2)
	f.tick(1)
	test.That(t, f.scene.Effects.Len(), test.ShouldEqual, 0)
}

func TestFPSReportedEveryThirtyFrames(t *testing.T) {
	f := newFixture(t, 0, 0, false)
	f.tick(29)
	test.That(t, f.sink.fps, test.ShouldBeEmpty)
	f.tick(1)
	test.That(t, f.sink.fps, test.ShouldResemble, []int{50})
	f.tick(30)
	test.That(t, f.sink.fps, test.ShouldHaveLength, 2)
	test.That(t, f.eventsOf(event.FPSUpdated), test.ShouldHaveLength, 2)

	m := newFixture(t, 0, 0, true)
	m.tick(60)
	test.That(t, m.sink.fps, test.ShouldBeEmpty)
}

func TestHoverHighlightsProp(t *testing.T) {
	f := newFixture(t, 0, 1, false)
	prop := f.scene.Props[0]
	prop.RotationSpeed = 0
	f.tick(1)
	f.aimAt(prop.Position)
	f.camera.Rotation = r3.Vector{}
	f.director.PointerMoved(400, 300)
	f.director.Tick()

	test.That(t, f.director.Highlighted(), test.ShouldNotBeNil)
	test.That(t, f.director.Highlighted().Prop, test.ShouldEqual, prop)
	changes := f.eventsOf(event.HighlightChanged)
	test.That(t, changes, test.ShouldHaveLength, 1)
	test.That(t, changes[0].Data.(event.HighlightData).Prop, test.ShouldEqual, prop.ID)

	f.director.PointerMoved(5, 5)
	f.camera.Rotation = r3.Vector{}
	f.director.Tick()
	test.That(t, f.director.Highlighted(), test.ShouldBeNil)
	test.That(t, f.eventsOf(event.HighlightChanged), test.ShouldHaveLength, 2)
}

func TestWheelZoomClamps(t *testing.T) {
	f := newFixture(t, 0, 0, false)
	f.director.Wheel(-100)
	test.That(t, f.camera.Position.Z, test.ShouldAlmostEqual, 29.0)
	f.director.Wheel(-10000)
	test.That(t, f.camera.Position.Z, test.ShouldEqual, 10.0)
	f.director.Wheel(10000)
	test.That(t, f.camera.Position.Z, test.ShouldEqual, 50.0)
}

func TestPinchZoom(t *testing.T) {
	f := newFixture(t, 0, 0, true)
	f.director.Touches([]Touch{{X: 100, Y: 100}, {X: 200, Y: 100}})
	test.That(t, f.camera.Position.Z, test.ShouldEqual, 30.0)

	// fingers 40 px further apart zoom in by 2 units
	f.director.Touches([]Touch{{X: 80, Y: 100}, {X: 220, Y: 100}})
	test.That(t, f.camera.Position.Z, test.ShouldAlmostEqual, 28.0)

	f.director.Touches([]Touch{{X: 0, Y: 100}, {X: 800, Y: 100}})
	test.That(t, f.camera.Position.Z, test.ShouldEqual, 10.0)

	// lifting a finger drops the baseline; the next pinch starts from the current z
	f.director.Touches([]Touch{{X: 0, Y: 100}})
	f.director.Touches([]Touch{{X: 100, Y: 100}, {X: 200, Y: 100}})
	test.That(t, f.camera.Position.Z, test.ShouldEqual, 10.0)
	f.director.Touches([]Touch{{X: 120, Y: 100}, {X: 180, Y: 100}})
	test.That(t, f.camera.Position.Z, test.ShouldAlmostEqual, 12.0)
}

func TestResetAndResize(t *testing.T) {
	f := newFixture(t, 0, 0, false)
	f.director.Wheel(500)
	f.director.PointerMoved(800, 0)
	f.tick(10)
	f.director.ResetCamera()
	test.That(t, f.camera.Position, test.ShouldResemble, r3.Vector{Y: 5, Z: 30})
	test.That(t, f.camera.Rotation, test.ShouldResemble, r3.Vector{})

	f.director.Resize(1000, 500)
	test.That(t, f.camera.Aspect(), test.ShouldAlmostEqual, 2.0)
}
