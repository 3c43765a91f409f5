package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/multierr"
	"go.viam.com/test"
)

func TestDefaultProfiles(t *testing.T) {
	desktop := Default(false)
	test.That(t, desktop.Bubbles, test.ShouldEqual, 200)
	test.That(t, desktop.Props, test.ShouldEqual, 5)
	test.That(t, desktop.Particles, test.ShouldEqual, 2000)
	test.That(t, desktop.Validate(), test.ShouldBeNil)

	mobile := Default(true)
	test.That(t, mobile.Bubbles, test.ShouldEqual, 50)
	test.That(t, mobile.Props, test.ShouldEqual, 3)
	test.That(t, mobile.Particles, test.ShouldEqual, 1000)
	test.That(t, mobile.Validate(), test.ShouldBeNil)
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("SCENE_BUBBLES", "42")
	path := filepath.Join(t.TempDir(), "scene.json")
	err := os.WriteFile(path, []byte(`{"bubbles": ${SCENE_BUBBLES}, "seed": 7}`), 0o600)
	test.That(t, err, test.ShouldBeNil)

	s, err := Load(path, false)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, s.Bubbles, test.ShouldEqual, 42)
	test.That(t, s.Seed, test.ShouldEqual, int64(7))
	test.That(t, s.Props, test.ShouldEqual, PropCountDesktop)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"), false)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "failed to read scene config")
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	s := Default(false)
	s.Bubbles = -1
	s.FieldSize = 0
	s.Ceiling = s.Floor

	err := s.Validate()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, multierr.Errors(err), test.ShouldHaveLength, 3)
	test.That(t, err.Error(), test.ShouldContainSubstring, "bubbles must be >= 0")
	test.That(t, err.Error(), test.ShouldContainSubstring, "ceiling")
}
