package nutation

import (
	"math"
	"testing"
)

// nut1980Direct recomputes the 1980 series calling the trig primitives
// once per term, with no recurrence tables. Used to validate that the
// recurrence optimization is numerically transparent.
func nut1980Direct(T float64) Angles {
	args := fundArgs1980(T)
	var dpsi, deps float64
	for r := 0; r < len(table80); r += termLen80 {
		row := table80[r : r+termLen80]
		arg := 0.0
		for i := 0; i < 5; i++ {
			arg += float64(row[i]) * args[i]
		}
		a := float64(row[5]) + T/10*float64(row[6])
		b := float64(row[7]) + T/10*float64(row[8])
		dpsi += a * math.Sin(arg)
		deps += b * math.Cos(arg)
	}
	dpsi += (psiOmegaAmp + T/10*psiOmegaRate) * math.Sin(args[4])
	deps += (epsOmegaAmp + T/10*epsOmegaRate) * math.Cos(args[4])
	return Angles{dpsi * 1e-4 * arcsecRad, deps * 1e-4 * arcsecRad}
}

func TestRecurrenceMatchesDirectTrig(t *testing.T) {
	for _, T := range []float64{-1.5, -0.1, 0, 0.0947, 0.5, 3} {
		fast := nut1980(T)
		slow := nut1980Direct(T)
		// The recurrence changes rounding in the last bits only; the
		// agreement bound is far tighter than any physical tolerance.
		if math.Abs(fast.Longitude-slow.Longitude) > 1e-14 {
			t.Errorf("T=%g dPsi recurrence %.18g vs direct %.18g", T, fast.Longitude, slow.Longitude)
		}
		if math.Abs(fast.Obliquity-slow.Obliquity) > 1e-14 {
			t.Errorf("T=%g dEps recurrence %.18g vs direct %.18g", T, fast.Obliquity, slow.Obliquity)
		}
	}
}

func TestSeries1980Magnitude(t *testing.T) {
	// Nutation in longitude stays within about +/-20 arcsec and
	// obliquity within about +/-10 arcsec over the model's validity.
	for _, T := range []float64{-10, -1, 0, 1, 10} {
		a := nut1980(T)
		if dpsi := math.Abs(a.Longitude / arcsecRad); dpsi > 25 {
			t.Errorf("T=%g |dPsi| = %.3f arcsec, implausibly large", T, dpsi)
		}
		if deps := math.Abs(a.Obliquity / arcsecRad); deps > 15 {
			t.Errorf("T=%g |dEps| = %.3f arcsec, implausibly large", T, deps)
		}
	}
}

func TestSeries2000AMagnitude(t *testing.T) {
	for _, T := range []float64{-10, -1, 0, 1, 10} {
		a := nut2000A(T)
		if dpsi := math.Abs(a.Longitude / arcsecRad); dpsi > 25 {
			t.Errorf("T=%g |dPsi| = %.3f arcsec, implausibly large", T, dpsi)
		}
		if deps := math.Abs(a.Obliquity / arcsecRad); deps > 15 {
			t.Errorf("T=%g |dEps| = %.3f arcsec, implausibly large", T, deps)
		}
	}
}

func TestSeriesAgreeAtEpoch(t *testing.T) {
	// The 1980 and 2000A theories agree to a few milliarcseconds near
	// J2000; a gross mismatch would mean a broken table or argument set.
	a80 := nut1980(0)
	a00 := nut2000A(0)
	if d := math.Abs(a80.Longitude-a00.Longitude) / arcsecRad; d > 0.05 {
		t.Errorf("dPsi theories differ by %.4f arcsec at J2000", d)
	}
	if d := math.Abs(a80.Obliquity-a00.Obliquity) / arcsecRad; d > 0.05 {
		t.Errorf("dEps theories differ by %.4f arcsec at J2000", d)
	}
}

func TestSeriesDeterminism(t *testing.T) {
	// Bit-reproducibility: same T, same bits, every time.
	for i := 0; i < 3; i++ {
		a := nut2000A(0.0947)
		b := nut2000A(0.0947)
		if a != b {
			t.Fatalf("evaluation not deterministic: %+v vs %+v", a, b)
		}
	}
}
