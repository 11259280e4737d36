package ppmv

import (
	"os"
	"strconv"
	"time"

	"github.com/chocolatkey/ppmv/pkg/pixmap"
	"github.com/chocolatkey/ppmv/pkg/protocol"
	"github.com/chocolatkey/ppmv/pkg/surface"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Environment variables read by LoadConfig.
const (
	EnvSurface       = "PPMV_SURFACE"
	EnvSnapshot      = "PPMV_SNAPSHOT"
	EnvStrict        = "PPMV_STRICT"
	EnvFrameInterval = "PPMV_FRAME_INTERVAL"
	EnvMaxPixels     = "PPMV_MAX_PIXELS"
	EnvLogLevel      = "PPMV_LOG_LEVEL"
)

type Config struct {
	Surface       string        // Registered surface driver
	SnapshotPath  string        // Output of the bmp driver
	Strict        bool          // Reject short payloads
	FrameInterval time.Duration // Pause between redraws
	MaxPixels     uint
	LogLevel      logrus.Level
}

func DefaultConfig() Config {
	return Config{
		Surface:       protocol.DefaultSurface,
		SnapshotPath:  protocol.DefaultSnapshotPath,
		FrameInterval: protocol.DefaultFrameInterval,
		MaxPixels:     protocol.DefaultMaxPixels,
		LogLevel:      logrus.InfoLevel,
	}
}

// LoadConfig reads the configuration from the process environment.
func LoadConfig() (Config, error) {
	return ConfigFromEnv(os.LookupEnv)
}

// ConfigFromEnv builds a Config from lookup, starting from DefaultConfig.
func ConfigFromEnv(lookup func(string) (string, bool)) (cfg Config, err error) {
	cfg = DefaultConfig()

	if v, ok := lookup(EnvSurface); ok && v != "" {
		cfg.Surface = v
	}
	if v, ok := lookup(EnvSnapshot); ok && v != "" {
		cfg.SnapshotPath = v
	}
	if v, ok := lookup(EnvStrict); ok && v != "" {
		cfg.Strict, err = strconv.ParseBool(v)
		if err != nil {
			err = errors.Wrapf(err, "failed parsing %s", EnvStrict)
			return
		}
	}
	if v, ok := lookup(EnvFrameInterval); ok && v != "" {
		cfg.FrameInterval, err = time.ParseDuration(v)
		if err != nil {
			err = errors.Wrapf(err, "failed parsing %s", EnvFrameInterval)
			return
		}
		if cfg.FrameInterval < 0 {
			err = errors.Errorf("%s must not be negative", EnvFrameInterval)
			return
		}
	}
	if v, ok := lookup(EnvMaxPixels); ok && v != "" {
		var n uint64
		n, err = strconv.ParseUint(v, 10, 64)
		if err != nil {
			err = errors.Wrapf(err, "failed parsing %s", EnvMaxPixels)
			return
		}
		cfg.MaxPixels = uint(n)
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel, err = logrus.ParseLevel(v)
		if err != nil {
			err = errors.Wrapf(err, "failed parsing %s", EnvLogLevel)
			return
		}
	}
	return
}

// Decoder returns the pixel map decoder this configuration asks for.
func (c Config) Decoder() pixmap.Decoder {
	return pixmap.Decoder{
		Strict:    c.Strict,
		MaxPixels: c.MaxPixels,
	}
}

// SurfaceFactory resolves the configured driver.
func (c Config) SurfaceFactory() (surface.Factory, error) {
	if c.Surface == "bmp" {
		return surface.NewBMPFactory(c.SnapshotPath), nil
	}
	return surface.Lookup(c.Surface)
}
