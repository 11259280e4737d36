package ppmv

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := ConfigFromEnv(env(nil))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("got %+v, want defaults", cfg)
	}
	if cfg.Surface != "terminal" || cfg.Strict {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestConfigFromEnv(t *testing.T) {
	cfg, err := ConfigFromEnv(env(map[string]string{
		EnvSurface:       "bmp",
		EnvSnapshot:      "/tmp/out.bmp",
		EnvStrict:        "true",
		EnvFrameInterval: "16ms",
		EnvMaxPixels:     "1000",
		EnvLogLevel:      "debug",
	}))
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		Surface:       "bmp",
		SnapshotPath:  "/tmp/out.bmp",
		Strict:        true,
		FrameInterval: 16 * time.Millisecond,
		MaxPixels:     1000,
		LogLevel:      logrus.DebugLevel,
	}
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
	if d := cfg.Decoder(); !d.Strict || d.MaxPixels != 1000 {
		t.Errorf("decoder %+v", d)
	}
	if _, err := cfg.SurfaceFactory(); err != nil {
		t.Error(err)
	}
}

func TestConfigMalformed(t *testing.T) {
	tests := map[string]string{
		EnvStrict:        "maybe",
		EnvFrameInterval: "soon",
		EnvMaxPixels:     "-1",
		EnvLogLevel:      "loud",
	}
	for key, value := range tests {
		if _, err := ConfigFromEnv(env(map[string]string{key: value})); err == nil {
			t.Errorf("%s=%s: expected error", key, value)
		}
	}
	if _, err := ConfigFromEnv(env(map[string]string{EnvFrameInterval: "-1s"})); err == nil {
		t.Error("negative interval accepted")
	}
}

func TestConfigUnknownSurface(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Surface = "x11"
	if _, err := cfg.SurfaceFactory(); err == nil {
		t.Error("expected error for unknown driver")
	}
}
