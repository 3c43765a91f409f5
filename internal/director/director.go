// Package director runs the per-frame update of the scene and turns pointer
// input into picks, pops and explosions.
package director

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"go-neon-scene/internal/clock"
	"go-neon-scene/internal/config"
	"go-neon-scene/internal/event"
	"go-neon-scene/internal/picker"
	"go-neon-scene/internal/scene"
	"go-neon-scene/internal/ui"
	"go-neon-scene/pkg/geom"
)

// ErrNoRenderer is returned by New when no renderer is supplied.
var ErrNoRenderer = errors.New("director: renderer is required")

// Renderer draws one frame. It is called once per tick after all updates.
type Renderer interface {
	Submit(sc *scene.Scene, cam *scene.Camera)
}

// Touch is one finger position in pixels.
type Touch struct {
	X, Y float64
}

// PointerEvent is a click or a tap. When Touches is non-empty the first touch
// is used instead of X, Y.
type PointerEvent struct {
	X, Y    float64
	Touches []Touch
}

// Options carries the optional collaborators of a Director.
type Options struct {
	Mobile     bool
	Logger     *zap.SugaredLogger
	Dispatcher *event.Dispatcher
	Sink       ui.Sink
}

type orientation struct {
	yaw, pitch float64
	set        bool
}

type pinch struct {
	distance, z float64
	active      bool
}

// Director owns the tick loop state. It references the scene, the camera and the
// swarm without owning them. All methods must be called from one goroutine.
type Director struct {
	scene      *scene.Scene
	camera     *scene.Camera
	frameClock *clock.FrameClock
	scheduler  *clock.Scheduler
	renderer   Renderer
	dispatcher *event.Dispatcher
	sink       ui.Sink
	logger     *zap.SugaredLogger
	mobile     bool

	frame     uint64
	lastDelta float64

	// pointer offset from the viewport centre in pixels, and its NDC
	lookX, lookY float64
	pointer      geom.NDC
	pointerSeen  bool

	orientation orientation
	pinch       pinch
	hover       picker.Hover
	fps         ui.FPSCounter
}

// New wires a director. The scene must already be built.
func New(sc *scene.Scene, cam *scene.Camera, fc *clock.FrameClock, scheduler *clock.Scheduler, r Renderer, opts Options) (*Director, error) {
	if r == nil {
		return nil, ErrNoRenderer
	}
	if sc == nil || cam == nil || fc == nil || scheduler == nil {
		return nil, errors.New("director: scene, camera, frame clock and scheduler are required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Director{
		scene:      sc,
		camera:     cam,
		frameClock: fc,
		scheduler:  scheduler,
		renderer:   r,
		dispatcher: opts.Dispatcher,
		sink:       opts.Sink,
		logger:     logger,
		mobile:     opts.Mobile,
		fps:        ui.FPSCounter{Every: config.FPSReportEvery},
	}, nil
}

// Tick advances the whole scene by one frame and submits it to the renderer.
func (d *Director) Tick() {
	d.frame++
	delta := d.frameClock.Delta()
	d.lastDelta = delta

	d.scheduler.Poll()

	d.reportFPS(delta)
	d.updateCamera()

	for _, p := range d.scene.Props {
		p.Advance(d.frame)
	}
	if d.scene.Particles != nil {
		d.scene.Particles.Spin()
	}
	for _, s := range d.scene.Shapes {
		s.Spin()
	}
	if d.scene.Swarm != nil {
		d.scene.Swarm.Advance(delta, d.frame)
	}
	if d.scene.Effects != nil {
		d.scene.Effects.Tick()
	}

	d.updateHover()
	d.renderer.Submit(d.scene, d.camera)
}

func (d *Director) reportFPS(delta float64) {
	if d.mobile {
		return
	}
	n, ok := d.fps.Sample(d.frame, delta)
	if !ok {
		return
	}
	if d.sink != nil {
		d.sink.FPS(n)
	}
	d.dispatcher.Publish(event.FPSData{FPS: n, Frame: d.frame})
}

// updateCamera eases the camera rotation towards the look target. The factor is
// applied per tick, so the easing speed follows the refresh rate.
func (d *Director) updateCamera() {
	var yaw, pitch float64
	if d.mobile {
		if !d.orientation.set {
			return
		}
		yaw, pitch = d.orientation.yaw, d.orientation.pitch
	} else {
		yaw = d.lookX * config.LookSensitivity
		pitch = d.lookY * config.LookSensitivity
	}
	rot := &d.camera.Rotation
	rot.Y += geom.NormalizeAngle(yaw-rot.Y) * config.LookSmoothing
	rot.X += geom.NormalizeAngle(pitch-rot.X) * config.LookSmoothing
}

func (d *Director) updateHover() {
	if d.mobile || !d.pointerSeen {
		return
	}
	res, ok := picker.Resolve(d.pointer, d.camera, d.candidates())
	if !d.hover.Update(res, ok) {
		return
	}
	data := event.HighlightData{Prop: -1}
	if m := d.hover.Current(); m != nil {
		data = event.HighlightData{Prop: m.Prop.ID, Mesh: m.Name}
	}
	d.dispatcher.Publish(data)
}

func (d *Director) candidates() picker.CandidateSet {
	return picker.CandidateSet{Props: d.scene.Props, Swarm: d.scene.Swarm}
}

// HandlePointer resolves a click or tap. A bubble under the pointer is popped and
// explodes where it was drawn; a camera prop explodes at its position and is left
// as it is. The pick result is returned for the host's benefit.
func (d *Director) HandlePointer(ev PointerEvent) (picker.PickResult, bool) {
	x, y := ev.X, ev.Y
	if len(ev.Touches) > 0 {
		x, y = ev.Touches[0].X, ev.Touches[0].Y
	}
	ndc := geom.ScreenToNDC(x, y, float64(d.camera.Width), float64(d.camera.Height))

	res, ok := picker.Resolve(ndc, d.camera, d.candidates())
	if !ok {
		return res, false
	}

	switch res.Kind {
	case picker.HitSwarm:
		out, popped := d.scene.Swarm.Pop(res.Instance)
		if !popped {
			return res, true
		}
		d.explode(out.Position)
		d.logger.Debugw("bubble popped", "instance", out.Index, "frame", d.frame)
		d.dispatcher.Publish(event.PopData{Instance: out.Index, Position: out.Position})
	case picker.HitProp:
		d.explode(res.Prop.Position)
		d.logger.Debugw("prop exploded", "prop", res.Prop.ID, "mesh", res.Mesh.Name)
		d.dispatcher.Publish(event.ExplodeData{Prop: res.Prop.ID, Position: res.Prop.Position})
	}
	return res, true
}

func (d *Director) explode(pos r3.Vector) {
	if d.scene.Effects != nil {
		d.scene.Effects.Spawn(pos)
	}
}

// PointerMoved records the pointer position used for camera look and hover.
func (d *Director) PointerMoved(x, y float64) {
	w, h := float64(d.camera.Width), float64(d.camera.Height)
	d.lookX = x - w/2
	d.lookY = y - h/2
	d.pointer = geom.ScreenToNDC(x, y, w, h)
	d.pointerSeen = true
	if d.sink != nil {
		d.sink.Cursor(x, y)
	}
}

// Orientation feeds device orientation angles in degrees. Alpha turns the camera
// around the vertical axis and beta tilts it, with an upright device looking straight ahead.
func (d *Director) Orientation(alpha, beta, gamma float64) {
	d.orientation = orientation{
		yaw:   geom.NormalizeAngle(mgl64.DegToRad(alpha)),
		pitch: geom.Clamp(mgl64.DegToRad(beta-90), -math.Pi/2, math.Pi/2),
		set:   true,
	}
}

// Wheel zooms by moving the camera along z.
func (d *Director) Wheel(deltaY float64) {
	d.camera.SetDistance(d.camera.Position.Z + deltaY*config.WheelZoomScale)
}

// Touches handles the current set of touch points. Two fingers pinch-zoom
// relative to the distance and camera z seen when the pinch started.
func (d *Director) Touches(points []Touch) {
	if len(points) != 2 {
		d.pinch = pinch{}
		return
	}
	dist := math.Hypot(points[0].X-points[1].X, points[0].Y-points[1].Y)
	if !d.pinch.active {
		d.pinch = pinch{distance: dist, z: d.camera.Position.Z, active: true}
	}
	d.camera.SetDistance(d.pinch.z - (dist-d.pinch.distance)*config.PinchZoomScale)
}

// Resize updates the viewport of the camera.
func (d *Director) Resize(w, h int) {
	d.camera.Resize(w, h)
	d.logger.Debugw("viewport resized", "width", w, "height", h)
}

// ResetCamera returns the camera to its home position and orientation.
func (d *Director) ResetCamera() {
	d.camera.Reset()
}

// Frame returns the number of ticks so far.
func (d *Director) Frame() uint64 { return d.frame }

// LastDelta returns the delta used by the latest tick.
func (d *Director) LastDelta() float64 { return d.lastDelta }

// Camera returns the camera the director drives.
func (d *Director) Camera() *scene.Camera { return d.camera }

// Highlighted returns the hovered prop mesh, or nil.
func (d *Director) Highlighted() *scene.Mesh { return d.hover.Current() }
