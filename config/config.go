// Package config loads runtime settings from GREETING_* environment variables,
// with command-line flags taking precedence
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

// Color modes accepted by Config.Color
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// Config is the full runtime configuration
type Config struct {
	// Page is the document opened at startup
	Page string `env:"GREETING_PAGE" envDefault:"index.html"`

	ReducedMotion   bool          `env:"GREETING_REDUCED_MOTION"   envDefault:"false"`
	FeatherInterval time.Duration `env:"GREETING_FEATHER_INTERVAL" envDefault:"860ms"`
	NavigateDelay   time.Duration `env:"GREETING_NAVIGATE_DELAY"   envDefault:"420ms"`

	CellWidth  int    `env:"GREETING_CELL_WIDTH"  envDefault:"8"`
	CellHeight int    `env:"GREETING_CELL_HEIGHT" envDefault:"16"`
	Color      string `env:"GREETING_COLOR"       envDefault:"auto"`

	// SessionDB is the sqlite file holding the navigation flag; empty keeps it in memory
	SessionDB string `env:"GREETING_SESSION_DB"`
	SessionID string `env:"GREETING_SESSION_ID" envDefault:"default"`

	// Track is a WAV file for the gift page; empty plays the built-in chime
	Track string `env:"GREETING_TRACK"`
	Mute  bool   `env:"GREETING_MUTE" envDefault:"false"`

	LogFile  string `env:"GREETING_LOG_FILE"`
	LogLevel string `env:"GREETING_LOG_LEVEL" envDefault:"info"`

	// Snapshot writes a PNG of the page shown at exit, particles included, when set
	Snapshot string `env:"GREETING_SNAPSHOT"`
}

// Load parses the environment into a Config
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// BindFlags registers flags defaulting to the current values, so parsed flags override env
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Page, "page", c.Page, "Page to open: index.html or gift-card.html")
	fs.BoolVar(&c.ReducedMotion, "reduced-motion", c.ReducedMotion, "Disable all particle effects")
	fs.DurationVar(&c.FeatherInterval, "feather-interval", c.FeatherInterval, "Feather release interval")
	fs.DurationVar(&c.NavigateDelay, "navigate-delay", c.NavigateDelay, "Delay between link click and navigation")
	fs.IntVar(&c.CellWidth, "cell-width", c.CellWidth, "Cell width in pixels")
	fs.IntVar(&c.CellHeight, "cell-height", c.CellHeight, "Cell height in pixels")
	fs.StringVar(&c.Color, "color", c.Color, "Color mode: auto, truecolor, 256")
	fs.StringVar(&c.SessionDB, "session-db", c.SessionDB, "SQLite file for session flags")
	fs.StringVar(&c.SessionID, "session", c.SessionID, "Session scope for stored flags")
	fs.StringVar(&c.Track, "track", c.Track, "WAV file played on the gift page")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "Never open the audio device")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "Log file path, empty disables logging")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level")
	fs.StringVar(&c.Snapshot, "snapshot", c.Snapshot, "Write a PNG snapshot of the last frame to this path")
}

// Validate rejects settings the engine cannot run with
func (c Config) Validate() error {
	var errs []error
	if c.FeatherInterval <= 0 {
		errs = append(errs, fmt.Errorf("feather interval must be positive, got %s", c.FeatherInterval))
	}
	if c.NavigateDelay < 0 {
		errs = append(errs, fmt.Errorf("navigate delay must not be negative, got %s", c.NavigateDelay))
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %dx%d", c.CellWidth, c.CellHeight))
	}
	switch c.Color {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		errs = append(errs, fmt.Errorf("unknown color mode %q", c.Color))
	}
	if c.SessionID == "" {
		errs = append(errs, errors.New("session id must not be empty"))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level returns the parsed log level, info when invalid
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
