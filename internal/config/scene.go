package config

import (
	"encoding/json"
	"os"

	"github.com/a8m/envsubst"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Scene holds the runtime knobs of the scene. Zero values are filled from the
// compile-time defaults above.
type Scene struct {
	Mobile      bool    `json:"mobile"`
	Seed        int64   `json:"seed"`
	Bubbles     int     `json:"bubbles"`
	Props       int     `json:"props"`
	Particles   int     `json:"particles"`
	FieldSize   float64 `json:"field_size"`
	Floor       float64 `json:"floor"`
	Ceiling     float64 `json:"ceiling"`
	RespawnMs   int     `json:"respawn_ms"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Sound       bool    `json:"sound"`
	SkipLoading bool    `json:"skip_loading"`
}

// Default returns the desktop or mobile profile.
func Default(mobile bool) Scene {
	s := Scene{
		Mobile:    mobile,
		Bubbles:   BubbleCountDesktop,
		Props:     PropCountDesktop,
		Particles: ParticleCountDesktop,
		FieldSize: FieldSize,
		Floor:     FloorY,
		Ceiling:   CeilingY,
		RespawnMs: BubbleRespawnMs,
		Width:     ScreenWidth,
		Height:    ScreenHeight,
		Sound:     true,
	}
	if mobile {
		s.Bubbles = BubbleCountMobile
		s.Props = PropCountMobile
		s.Particles = ParticleCountMobile
		s.Width = MobileWidth / 2
		s.Height = MobileWidth
	}
	return s
}

// Load reads a JSON scene file. ${VAR} references are expanded from the environment
// before parsing; fields missing from the file keep the profile defaults.
func Load(path string, mobile bool) (Scene, error) {
	s := Default(mobile)
	raw, err := os.ReadFile(path)
	if err != nil {
		return s, errors.Wrap(err, "failed to read scene config")
	}
	expanded, err := envsubst.Bytes(raw)
	if err != nil {
		return s, errors.Wrapf(err, "failed to expand variables in %s", path)
	}
	if err := json.Unmarshal(expanded, &s); err != nil {
		return s, errors.Wrapf(err, "failed to unmarshal scene config %s", path)
	}
	if err := s.Validate(); err != nil {
		return s, errors.Wrapf(err, "invalid scene config %s", path)
	}
	return s, nil
}

// Validate reports every out-of-range field at once.
func (s Scene) Validate() error {
	var err error
	if s.Bubbles < 0 {
		err = multierr.Append(err, errors.Errorf("bubbles must be >= 0, got %d", s.Bubbles))
	}
	if s.Props < 0 {
		err = multierr.Append(err, errors.Errorf("props must be >= 0, got %d", s.Props))
	}
	if s.Particles < 0 {
		err = multierr.Append(err, errors.Errorf("particles must be >= 0, got %d", s.Particles))
	}
	if s.FieldSize <= 0 {
		err = multierr.Append(err, errors.Errorf("field_size must be > 0, got %v", s.FieldSize))
	}
	if s.Ceiling <= s.Floor {
		err = multierr.Append(err, errors.Errorf("ceiling %v must be above floor %v", s.Ceiling, s.Floor))
	}
	if s.RespawnMs < 0 {
		err = multierr.Append(err, errors.Errorf("respawn_ms must be >= 0, got %d", s.RespawnMs))
	}
	if s.Width <= 0 || s.Height <= 0 {
		err = multierr.Append(err, errors.Errorf("viewport must be positive, got %dx%d", s.Width, s.Height))
	}
	return err
}
