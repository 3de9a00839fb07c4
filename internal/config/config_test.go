package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/vparth/truepole/internal/nutation"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Method != "iau2006" {
		t.Errorf("expected method iau2006, got %s", cfg.Method)
	}
	if cfg.CorrectEOP {
		t.Error("EOP correction should default to off")
	}
	if cfg.Series.StepDays <= 0 {
		t.Error("step_days should be positive")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truepole.yaml")

	in := DefaultConfig()
	in.Method = "iau2000"
	in.CorrectEOP = true
	in.EOPFile = "/var/lib/truepole/eop.txt"
	in.Series.StepDays = 0.25

	if err := Save(path, in); err != nil {
		t.Fatal(err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *out != *in {
		t.Errorf("round trip changed config: %+v vs %+v", out, in)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRuntime(t *testing.T) {
	cfg := DefaultConfig()
	rc, err := cfg.Runtime()
	if err != nil {
		t.Fatal(err)
	}
	if rc.Method != nutation.IAU2006 {
		t.Errorf("expected IAU2006, got %v", rc.Method)
	}
	if rc.EOP != nil {
		t.Error("no provider expected when correction is off")
	}

	cfg.CorrectEOP = true
	cfg.EOPFile = "eop.txt"
	rc, err = cfg.Runtime()
	if err != nil {
		t.Fatal(err)
	}
	if rc.EOP == nil {
		t.Error("expected provider when correction is on")
	}
}

func TestRuntimeBadMethod(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Method = "iau1842"
	if _, err := cfg.Runtime(); !errors.Is(err, nutation.ErrUnknownMethod) {
		t.Errorf("expected ErrUnknownMethod, got %v", err)
	}
}
