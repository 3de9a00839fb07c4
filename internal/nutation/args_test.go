package nutation

import (
	"math"
	"testing"
)

func TestFundArgs1980AtEpoch(t *testing.T) {
	// At T=0 each argument reduces to its constant term.
	want := [5]float64{485866.733, 1287099.804, 335778.877, 1072261.307, 450160.280}
	got := fundArgs1980(0)
	for i := range got {
		if math.Abs(got[i]/arcsecRad-want[i]) > 1e-9 {
			t.Errorf("arg[%d] = %.6f arcsec, want %.6f", i, got[i]/arcsecRad, want[i])
		}
	}
}

func TestFundArgs1980LinearReduction(t *testing.T) {
	// The linear term is reduced modulo a full turn before the quadratic
	// correction, so the argument magnitude stays bounded by roughly one
	// turn plus the small polynomial correction even at large |T|.
	for _, T := range []float64{-20, -1, 1, 5, 20} {
		args := fundArgs1980(T)
		for i, a := range args {
			if math.Abs(a/arcsecRad) > 2*turnArcsec {
				t.Errorf("T=%g arg[%d] = %g arcsec, not reduced", T, i, a/arcsecRad)
			}
		}
	}
}

func TestFundArgs2000AtEpoch(t *testing.T) {
	got := fundArgs2000(0)
	wantLS := [5]float64{485868.249036, 1287104.79305, 335779.526232, 1072260.70369, 450160.398036}
	for i := range wantLS {
		if math.Abs(got[i]/arcsecRad-wantLS[i]) > 1e-9 {
			t.Errorf("luni-solar arg[%d] = %.6f arcsec, want %.6f", i, got[i]/arcsecRad, wantLS[i])
		}
	}
	// Planetary longitudes are already radians; Earth at J2000.0.
	if math.Abs(got[7]-1.753470314) > 1e-12 {
		t.Errorf("Earth longitude = %.9f, want 1.753470314", got[7])
	}
	if got[13] != 0 {
		t.Errorf("precession term at T=0 should be 0, got %g", got[13])
	}
}

func TestFundArgs2000NoReduction(t *testing.T) {
	// Unlike the 1980 set, the 2000A luni-solar polynomials carry their
	// full accumulated value; at T=1 the lunar anomaly exceeds a turn
	// many times over.
	got := fundArgs2000(1)
	if got[0]/arcsecRad < turnArcsec {
		t.Errorf("expected unreduced argument at T=1, got %g arcsec", got[0]/arcsecRad)
	}
}

func TestTableShapes(t *testing.T) {
	if len(table80)%termLen80 != 0 {
		t.Fatalf("table80 length %d not a multiple of %d", len(table80), termLen80)
	}
	if got := len(table80) / termLen80; got != 105 {
		t.Errorf("table80 has %d terms, want 105", got)
	}
	if len(mult00LS) != lsCount00*5 {
		t.Errorf("mult00LS length %d, want %d", len(mult00LS), lsCount00*5)
	}
	if len(amp00LS) != lsCount00*6 {
		t.Errorf("amp00LS length %d, want %d", len(amp00LS), lsCount00*6)
	}
	if len(mult00PL) != plCount00*14 {
		t.Errorf("mult00PL length %d, want %d", len(mult00PL), plCount00*14)
	}
	if len(amp00PL) != plCount00*4 {
		t.Errorf("amp00PL length %d, want %d", len(amp00PL), plCount00*4)
	}
}

func TestMaxMult80(t *testing.T) {
	for i, n := range maxMult80 {
		if n < 1 || n > 4 {
			t.Errorf("maxMult80[%d] = %d, outside the expected 1..4", i, n)
		}
	}
	// The node argument never appears with a multiplier above 2.
	if maxMult80[4] > 2 {
		t.Errorf("node multiplier %d, want <= 2", maxMult80[4])
	}
}
