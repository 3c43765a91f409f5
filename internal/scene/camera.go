package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"

	"go-neon-scene/internal/config"
	"go-neon-scene/pkg/geom"
)

// Camera is the perspective viewer. Rotation is an XYZ Euler triple in radians:
// X is pitch, Y is yaw.
type Camera struct {
	Position r3.Vector
	Rotation r3.Vector
	FovY     float64 // degrees
	Near     float64
	Far      float64
	Width    int
	Height   int
}

// NewCamera creates the camera at its home position for a w×h viewport.
func NewCamera(w, h int) *Camera {
	c := &Camera{
		FovY: config.CameraFovY,
		Near: config.CameraNear,
		Far:  config.CameraFar,
	}
	c.Resize(w, h)
	c.Reset()
	return c
}

// Reset puts the camera back at (0, 5, 30) looking down -z.
func (c *Camera) Reset() {
	c.Position = r3.Vector{X: 0, Y: config.CameraStartY, Z: config.CameraStartZ}
	c.Rotation = r3.Vector{}
}

// Resize updates the viewport. Degenerate sizes are ignored.
func (c *Camera) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.Width, c.Height = w, h
}

// Aspect returns width / height.
func (c *Camera) Aspect() float64 {
	if c.Height == 0 {
		return 1
	}
	return float64(c.Width) / float64(c.Height)
}

// SetDistance moves the camera along z, clamped to the zoom range.
func (c *Camera) SetDistance(z float64) {
	c.Position.Z = geom.Clamp(z, config.CameraMinZ, config.CameraMaxZ)
}

// World returns the camera-to-world matrix.
func (c *Camera) World() mgl64.Mat4 {
	return geom.Compose(c.Position, c.Rotation, 1)
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl64.Mat4 {
	return c.World().Inv()
}

// Projection returns the perspective projection matrix.
func (c *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FovY), c.Aspect(), c.Near, c.Far)
}

// ViewProjection returns Projection * View.
func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.Projection().Mul4(c.View())
}

// Forward returns the unit viewing direction.
func (c *Camera) Forward() r3.Vector {
	return geom.TransformDirection(c.World(), r3.Vector{Z: -1}).Normalize()
}

// Up returns the unit up direction of the camera.
func (c *Camera) Up() r3.Vector {
	return geom.TransformDirection(c.World(), r3.Vector{Y: 1}).Normalize()
}

// Ray builds the ray from the camera position through the given NDC point.
func (c *Camera) Ray(ndc geom.NDC) geom.Ray {
	inv := c.ViewProjection().Inv()
	target := geom.FromMgl(mgl64.TransformCoordinate(mgl64.Vec3{ndc.X, ndc.Y, 0.5}, inv))
	return geom.NewRay(c.Position, target.Sub(c.Position))
}

// Project maps a world point to viewport pixels. depth is the distance along the
// view direction; ok is false for points behind the camera or outside the clip range.
func (c *Camera) Project(p r3.Vector) (x, y, depth float64, ok bool) {
	clip := c.ViewProjection().Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	w := clip[3]
	if w <= c.Near {
		return 0, 0, 0, false
	}
	nx, ny, nz := clip[0]/w, clip[1]/w, clip[2]/w
	if nz < -1 || nz > 1 {
		return 0, 0, 0, false
	}
	x = (nx + 1) / 2 * float64(c.Width)
	y = (1 - ny) / 2 * float64(c.Height)
	return x, y, w, true
}

// PixelScale returns how many pixels one world unit spans at the given depth.
func (c *Camera) PixelScale(depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	f := c.Projection()[5]
	return f / depth * float64(c.Height) / 2
}
