package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func testProjector() Projector {
	return NewProjector(mgl64.Ident4(), mgl64.Perspective(mgl64.DegToRad(90), 1, 0.1, 100), 200, 200, 0.1, 100)
}

func TestProjectorPoint(t *testing.T) {
	p := testProjector()
	x, y, depth, ok := p.Point(r3.Vector{Z: -10})
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, x, test.ShouldAlmostEqual, 100.0)
	test.That(t, y, test.ShouldAlmostEqual, 100.0)
	test.That(t, depth, test.ShouldAlmostEqual, 10.0)

	// up and right in the world is up and right on screen
	x, y, _, ok = p.Point(r3.Vector{X: 5, Y: 5, Z: -10})
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, x, test.ShouldAlmostEqual, 150.0)
	test.That(t, y, test.ShouldAlmostEqual, 50.0)

	_, _, _, ok = p.Point(r3.Vector{Z: 5})
	test.That(t, ok, test.ShouldBeFalse)
	_, _, _, ok = p.Point(r3.Vector{Z: -500})
	test.That(t, ok, test.ShouldBeFalse)
}

func TestProjectorSegmentClipsNearPlane(t *testing.T) {
	p := testProjector()

	_, ok := p.Segment(r3.Vector{Z: 5}, r3.Vector{X: 1, Z: 2})
	test.That(t, ok, test.ShouldBeFalse)

	s, ok := p.Segment(r3.Vector{X: 10, Z: 5}, r3.Vector{Z: -10})
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, s.Depth, test.ShouldAlmostEqual, (0.1+10)/2)
	test.That(t, s.X2, test.ShouldAlmostEqual, 100.0)

	s, ok = p.Segment(r3.Vector{X: -5, Z: -10}, r3.Vector{X: 5, Z: -10})
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, s.X1, test.ShouldAlmostEqual, 50.0)
	test.That(t, s.X2, test.ShouldAlmostEqual, 150.0)
	test.That(t, s.Depth, test.ShouldAlmostEqual, 10.0)
}

func TestProjectorScaleAndVisible(t *testing.T) {
	p := testProjector()
	test.That(t, p.Scale(10), test.ShouldAlmostEqual, 10.0)
	test.That(t, p.Scale(0), test.ShouldEqual, 0.0)
	test.That(t, p.Visible(-5, 100, 10), test.ShouldBeTrue)
	test.That(t, p.Visible(-20, 100, 10), test.ShouldBeFalse)
	test.That(t, p.Visible(100, 205, 10), test.ShouldBeTrue)
}
