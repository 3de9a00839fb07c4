package nutation

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/vparth/truepole/internal/astrotime"
	"github.com/vparth/truepole/internal/eop"
)

// tJul2009 is 2009 July 1, 0h TT in Julian centuries from J2000.0.
var tJul2009 = astrotime.CenturiesJ2000(2455013.5)

func TestReferenceScenario1980(t *testing.T) {
	ClearCache()
	a, err := Calc(tJul2009, Config{Method: IAU1976})
	if err != nil {
		t.Fatal(err)
	}
	dpsi, deps := a.Arcsec()
	if math.Abs(dpsi-14.7774) > 1e-3 {
		t.Errorf("IAU1976 dPsi = %.4f arcsec, want 14.7774", dpsi)
	}
	if math.Abs(deps-4.3386) > 1e-3 {
		t.Errorf("IAU1976 dEps = %.4f arcsec, want 4.3386", deps)
	}
}

func TestReferenceScenario2000(t *testing.T) {
	ClearCache()
	a, err := Calc(tJul2009, Config{Method: IAU2000})
	if err != nil {
		t.Fatal(err)
	}
	dpsi, deps := a.Arcsec()
	if math.Abs(dpsi-14.7823) > 1e-3 {
		t.Errorf("IAU2000 dPsi = %.4f arcsec, want 14.7823", dpsi)
	}
	if math.Abs(deps-4.3391) > 1e-3 {
		t.Errorf("IAU2000 dEps = %.4f arcsec, want 4.3391", deps)
	}
}

func TestCacheTransparency(t *testing.T) {
	ClearCache()
	first, err := Calc(tJul2009, Config{Method: IAU2000})
	if err != nil {
		t.Fatal(err)
	}
	second, err := Calc(tJul2009, Config{Method: IAU2000})
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("repeat query differs: %+v vs %+v", first, second)
	}

	ClearCache()
	third, err := Calc(tJul2009, Config{Method: IAU2000})
	if err != nil {
		t.Fatal(err)
	}
	if first != third {
		t.Errorf("recomputation after clear differs: %+v vs %+v", first, third)
	}
}

func TestCacheKeyedByMethod(t *testing.T) {
	ClearCache()
	a80, err := Calc(tJul2009, Config{Method: IAU1976})
	if err != nil {
		t.Fatal(err)
	}
	a00, err := Calc(tJul2009, Config{Method: IAU2000})
	if err != nil {
		t.Fatal(err)
	}
	if a80 == a00 {
		t.Error("different methods at the same T must not share a cache slot")
	}
	// And switching back recomputes the 1980 result correctly.
	again, err := Calc(tJul2009, Config{Method: IAU1976})
	if err != nil {
		t.Fatal(err)
	}
	if again != a80 {
		t.Errorf("recomputed 1980 result differs: %+v vs %+v", again, a80)
	}
}

func TestModelFamilySharesSeries(t *testing.T) {
	family := []Method{IAU1976, Laskar1986, Simon1994, Williams1994, JPLDE4xx}
	ClearCache()
	base, err := Calc(tJul2009, Config{Method: family[0]})
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range family[1:] {
		ClearCache()
		a, err := Calc(tJul2009, Config{Method: m})
		if err != nil {
			t.Fatal(err)
		}
		if a != base {
			t.Errorf("%v disagrees with %v: %+v vs %+v", m, family[0], a, base)
		}
	}
}

func TestPrecessionRateScaling(t *testing.T) {
	for _, T := range []float64{0, tJul2009, -0.5, 1.2} {
		ClearCache()
		base, err := Calc(T, Config{Method: IAU2000})
		if err != nil {
			t.Fatal(err)
		}
		for _, m := range []Method{IAU2006, IAU2009} {
			ClearCache()
			got, err := Calc(T, Config{Method: m})
			if err != nil {
				t.Fatal(err)
			}
			wantLng := base.Longitude * (1 + j2Factor - fjFactor*T)
			wantObl := base.Obliquity * (1 - fjFactor*T)
			if got.Longitude != wantLng {
				t.Errorf("%v T=%g longitude %g, want %g", m, T, got.Longitude, wantLng)
			}
			if got.Obliquity != wantObl {
				t.Errorf("%v T=%g obliquity %g, want %g", m, T, got.Obliquity, wantObl)
			}
		}
	}
}

func TestUnknownMethod(t *testing.T) {
	ClearCache()
	if _, err := Calc(0, Config{Method: Method(99)}); !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("expected ErrUnknownMethod, got %v", err)
	}
}

func TestParseMethod(t *testing.T) {
	for _, m := range Methods() {
		got, err := ParseMethod(m.String())
		if err != nil {
			t.Fatalf("ParseMethod(%q): %v", m.String(), err)
		}
		if got != m {
			t.Errorf("ParseMethod(%q) = %v, want %v", m.String(), got, m)
		}
	}
	if _, err := ParseMethod("iau9999"); !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("expected ErrUnknownMethod for bad name, got %v", err)
	}
}

func TestEOPCorrection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eop.txt")
	// The 2009-07-01 instant sits at MJD 55013 (UT); bracket it.
	table := "55010.0 -0.0520 -0.0060 0.1600\n55016.0 -0.0520 -0.0060 0.1600\n"
	if err := os.WriteFile(path, []byte(table), 0644); err != nil {
		t.Fatal(err)
	}

	ClearCache()
	raw, err := Calc(tJul2009, Config{Method: IAU2000})
	if err != nil {
		t.Fatal(err)
	}
	ClearCache()
	corr, err := Calc(tJul2009, Config{Method: IAU2000, CorrectEOP: true, EOP: eop.NewProvider(path)})
	if err != nil {
		t.Fatal(err)
	}

	if d := (corr.Longitude - raw.Longitude) / arcsecRad; math.Abs(d-(-0.0520)) > 1e-9 {
		t.Errorf("longitude offset %.6f arcsec, want -0.0520", d)
	}
	if d := (corr.Obliquity - raw.Obliquity) / arcsecRad; math.Abs(d-(-0.0060)) > 1e-9 {
		t.Errorf("obliquity offset %.6f arcsec, want -0.0060", d)
	}
}

func TestEOPFailureSurfaces(t *testing.T) {
	ClearCache()
	cfg := Config{Method: IAU2000, CorrectEOP: true, EOP: eop.NewProvider(filepath.Join(t.TempDir(), "missing.txt"))}
	if _, err := Calc(tJul2009, cfg); !errors.Is(err, eop.ErrNoData) {
		t.Errorf("expected eop.ErrNoData, got %v", err)
	}

	ClearCache()
	if _, err := Calc(tJul2009, Config{Method: IAU2000, CorrectEOP: true}); !errors.Is(err, eop.ErrNoData) {
		t.Errorf("expected eop.ErrNoData with nil provider, got %v", err)
	}
}

func TestDirectEvaluationMatchesCachedPath(t *testing.T) {
	// The cache must change timing only, never values.
	ts := []float64{-1, -0.25, 0, tJul2009, 0.5, 2}
	for _, T := range ts {
		for _, m := range []Method{IAU1976, IAU2000, IAU2006} {
			ClearCache()
			cached, err := Calc(T, Config{Method: m})
			if err != nil {
				t.Fatal(err)
			}
			direct, err := calc(T, Config{Method: m})
			if err != nil {
				t.Fatal(err)
			}
			if cached != direct {
				t.Errorf("T=%g %v: cached %+v != direct %+v", T, m, cached, direct)
			}
		}
	}
}

func TestLargeTStaysFinite(t *testing.T) {
	for _, T := range []float64{-2000, -30, 30, 2000} {
		for _, m := range []Method{IAU1976, IAU2000} {
			ClearCache()
			a, err := Calc(T, Config{Method: m})
			if err != nil {
				t.Fatal(err)
			}
			if math.IsNaN(a.Longitude) || math.IsInf(a.Longitude, 0) ||
				math.IsNaN(a.Obliquity) || math.IsInf(a.Obliquity, 0) {
				t.Errorf("T=%g %v produced non-finite angles %+v", T, m, a)
			}
		}
	}
}
