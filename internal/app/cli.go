// internal/app/cli.go
package app

import (
	"net/http"
	_ "net/http/pprof" // registers the profiling handlers
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"go-neon-scene/internal/config"
)

const (
	flagConfig      = "config"
	flagMobile      = "mobile"
	flagSeed        = "seed"
	flagBubbles     = "bubbles"
	flagDebug       = "debug"
	flagPprof       = "pprof"
	flagNoSound     = "no-sound"
	flagSkipLoading = "skip-loading"
	flagWidth       = "width"
	flagHeight      = "height"
)

// Settings is the resolved command line.
type Settings struct {
	Scene config.Scene
	Debug bool
	Pprof string
}

// Flags are shared by every host binary.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			Usage:   "load scene configuration from `FILE`",
		},
		&cli.BoolFlag{
			Name:  flagMobile,
			Usage: "use the mobile profile: fewer objects, touch and orientation input",
		},
		&cli.Int64Flag{
			Name:  flagSeed,
			Usage: "random seed, 0 picks one from the clock",
		},
		&cli.IntFlag{
			Name:  flagBubbles,
			Usage: "override the bubble count",
		},
		&cli.IntFlag{
			Name:  flagWidth,
			Usage: "window width in pixels",
		},
		&cli.IntFlag{
			Name:  flagHeight,
			Usage: "window height in pixels",
		},
		&cli.BoolFlag{
			Name:  flagNoSound,
			Usage: "disable sound cues",
		},
		&cli.BoolFlag{
			Name:  flagSkipLoading,
			Usage: "start the scene without the loading screen",
		},
		&cli.BoolFlag{
			Name:    flagDebug,
			Aliases: []string{"vvv"},
			Usage:   "enable debug logging",
		},
		&cli.StringFlag{
			Name:  flagPprof,
			Usage: "serve pprof on `ADDR`, e.g. localhost:6060",
		},
	}
}

// SettingsFromContext resolves the profile, the optional config file and the
// flag overrides, in that order.
func SettingsFromContext(c *cli.Context) (Settings, error) {
	mobile := c.Bool(flagMobile)
	scene := config.Default(mobile)
	if path := c.String(flagConfig); path != "" {
		loaded, err := config.Load(path, mobile)
		if err != nil {
			return Settings{}, err
		}
		scene = loaded
	}
	if c.IsSet(flagSeed) {
		scene.Seed = c.Int64(flagSeed)
	}
	if c.IsSet(flagBubbles) {
		scene.Bubbles = c.Int(flagBubbles)
	}
	if c.IsSet(flagWidth) {
		scene.Width = c.Int(flagWidth)
	}
	if c.IsSet(flagHeight) {
		scene.Height = c.Int(flagHeight)
	}
	if c.Bool(flagNoSound) {
		scene.Sound = false
	}
	if c.Bool(flagSkipLoading) {
		scene.SkipLoading = true
	}
	if err := scene.Validate(); err != nil {
		return Settings{}, errors.Wrap(err, "invalid flags")
	}
	return Settings{
		Scene: scene,
		Debug: c.Bool(flagDebug),
		Pprof: c.String(flagPprof),
	}, nil
}

// RunFunc starts a host with resolved settings.
type RunFunc func(s Settings, logger *zap.SugaredLogger) error

// NewCLI builds the command line of a host binary.
func NewCLI(name, usage string, run RunFunc) *cli.App {
	return &cli.App{
		Name:  name,
		Usage: usage,
		Flags: Flags(),
		Action: func(c *cli.Context) error {
			settings, err := SettingsFromContext(c)
			if err != nil {
				return err
			}
			logger, err := NewLogger(name, settings.Debug)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if settings.Pprof != "" {
				StartProfiler(settings.Pprof, logger)
			}
			if err := run(settings, logger); err != nil {
				logger.Errorw("scene stopped", "error", err)
				return err
			}
			return nil
		},
	}
}

// StartProfiler serves net/http/pprof in the background.
func StartProfiler(addr string, logger *zap.SugaredLogger) {
	go func() {
		logger.Infow("pprof listening", "addr", addr)
		if err := http.ListenAndServe(addr, nil); err != nil {
			logger.Warnw("pprof stopped", "error", err)
		}
	}()
}

// Main runs a host CLI and exits non-zero on failure.
func Main(name, usage string, run RunFunc) {
	if err := NewCLI(name, usage, run).Run(os.Args); err != nil {
		os.Exit(1)
	}
}
