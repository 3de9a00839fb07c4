package eop

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "eop.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleTable = `# MJD    dPsi      dEps      UT1-UTC
55010.0  -0.0520   -0.0060   0.1600
55012.0  -0.0530   -0.0064   0.1590
55014.0  -0.0550   -0.0070   0.1570
`

func TestLookupExact(t *testing.T) {
	p := NewProvider(writeTable(t, sampleTable))
	v, err := p.Lookup(55012.0 + MJDOffset)
	if err != nil {
		t.Fatal(err)
	}
	if v.DPsi != -0.0530 || v.DEps != -0.0064 {
		t.Errorf("exact row lookup returned %+v", v)
	}
	if v.Method != 0 {
		t.Errorf("exact row should report method 0, got %d", v.Method)
	}
}

func TestLookupInterpolated(t *testing.T) {
	p := NewProvider(writeTable(t, sampleTable))
	v, err := p.Lookup(55013.0 + MJDOffset)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(v.DPsi-(-0.0540)) > 1e-12 {
		t.Errorf("expected dPsi -0.0540 at midpoint, got %f", v.DPsi)
	}
	if math.Abs(v.DUT1-0.1580) > 1e-12 {
		t.Errorf("expected dUT1 0.1580 at midpoint, got %f", v.DUT1)
	}
	if v.Method != 1 {
		t.Errorf("midpoint should report interpolated method, got %d", v.Method)
	}
}

func TestLookupOutOfRange(t *testing.T) {
	p := NewProvider(writeTable(t, sampleTable))
	if _, err := p.Lookup(54000.0 + MJDOffset); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData below range, got %v", err)
	}
	if _, err := p.Lookup(56000.0 + MJDOffset); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData above range, got %v", err)
	}
}

func TestMissingFile(t *testing.T) {
	p := NewProvider(filepath.Join(t.TempDir(), "nope.txt"))
	if _, err := p.Lookup(55012.0 + MJDOffset); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData for missing file, got %v", err)
	}
}

func TestUnconfigured(t *testing.T) {
	p := NewProvider("")
	if _, err := p.Lookup(55012.0 + MJDOffset); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData for unconfigured provider, got %v", err)
	}
}

func TestMalformedTable(t *testing.T) {
	p := NewProvider(writeTable(t, "55010.0 -0.05\n"))
	if _, err := p.Lookup(55010.0 + MJDOffset); err == nil {
		t.Error("expected parse error for short row")
	}
}

func TestNonAscending(t *testing.T) {
	p := NewProvider(writeTable(t, "55012.0 0 0 0\n55010.0 0 0 0\n"))
	if _, err := p.Lookup(55012.0 + MJDOffset); err == nil {
		t.Error("expected error for non-ascending MJD")
	}
}

func TestRange(t *testing.T) {
	p := NewProvider(writeTable(t, sampleTable))
	first, last, err := p.Range()
	if err != nil {
		t.Fatal(err)
	}
	if first != 55010.0 || last != 55014.0 {
		t.Errorf("range = [%f, %f]", first, last)
	}
}
