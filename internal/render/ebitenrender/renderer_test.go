package ebitenrender

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go-neon-scene/internal/render/flat"
	"go-neon-scene/internal/scene"
	"go-neon-scene/internal/ui"
	"go-neon-scene/internal/utils"
)

func TestSubmitKeepsFrame(t *testing.T) {
	overlay := ui.NewOverlay()
	r, err := New(overlay)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, r.Frame(), test.ShouldBeEmpty)

	p := scene.NewCameraProp(0, utils.NewPRNGService(1))
	p.Position = r3.Vector{Y: 5}
	sc := &scene.Scene{Props: []*scene.CameraProp{p}}
	cam := scene.NewCamera(640, 480)

	r.Submit(sc, cam)
	first := append([]flat.Primitive(nil), r.Frame()...)
	test.That(t, first, test.ShouldNotBeEmpty)
	w, h := r.Size()
	test.That(t, w, test.ShouldEqual, 640)
	test.That(t, h, test.ShouldEqual, 480)

	cam.Resize(800, 600)
	r.Submit(&scene.Scene{}, cam)
	test.That(t, r.Frame(), test.ShouldBeEmpty)
	w, _ = r.Size()
	test.That(t, w, test.ShouldEqual, 800)
}

func TestSubmitAdvancesOverlay(t *testing.T) {
	overlay := ui.NewOverlay()
	r, err := New(overlay)
	test.That(t, err, test.ShouldBeNil)

	overlay.InfoCard(true)
	before := overlay.Info.Offset
	r.Submit(nil, scene.NewCamera(640, 480))
	test.That(t, overlay.Info.Offset, test.ShouldBeLessThan, before)
}

func TestCardX(t *testing.T) {
	test.That(t, CardX(1280, 0), test.ShouldEqual, float32(1280-20-320))
	test.That(t, CardX(1280, 1), test.ShouldEqual, float32(1280))
}
