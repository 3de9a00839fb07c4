package astrotime

import (
	"math"
	"testing"
	"time"
)

func TestCalendarToJD(t *testing.T) {
	tests := []struct {
		year, month, day int
		frac             float64
		want             float64
	}{
		{2000, 1, 1, 0.5, 2451545.0},  // J2000.0
		{2009, 7, 1, 0.0, 2455013.5},  // reference scenario epoch
		{1987, 4, 10, 0.0, 2446895.5}, // Meeus example 7.b
		{1957, 10, 4, 0.81, 2436116.31},
	}
	for _, tt := range tests {
		got := CalendarToJD(tt.year, tt.month, tt.day, tt.frac)
		if math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("CalendarToJD(%d-%d-%d + %f) = %f, want %f",
				tt.year, tt.month, tt.day, tt.frac, got, tt.want)
		}
	}
}

func TestJulianDateRoundTrip(t *testing.T) {
	in := time.Date(2009, 7, 1, 0, 0, 0, 0, time.UTC)
	jd := JulianDate(in)
	out := JDToTime(jd)
	if d := out.Sub(in); d > time.Millisecond || d < -time.Millisecond {
		t.Errorf("round trip drifted by %v (jd=%f, out=%v)", d, jd, out)
	}
}

func TestCenturiesJ2000(t *testing.T) {
	if got := CenturiesJ2000(J2000); got != 0 {
		t.Errorf("expected 0 centuries at J2000, got %g", got)
	}
	got := CenturiesJ2000(2455013.5)
	want := (2455013.5 - J2000) / DaysPerCentury
	if got != want {
		t.Errorf("expected %g, got %g", want, got)
	}
	if back := JDFromCenturies(got); math.Abs(back-2455013.5) > 1e-9 {
		t.Errorf("JDFromCenturies not inverse: %f", back)
	}
}

func TestDeltaT(t *testing.T) {
	// Published estimates: ~63.8s in 2000, ~66.1s in 2009.
	tests := []struct {
		jd, want, tol float64
	}{
		{J2000, 63.8, 1.0},
		{2455013.5, 66.1, 1.5},
		{CalendarToJD(1900, 1, 1, 0), -2.7, 2.0},
	}
	for _, tt := range tests {
		got := DeltaT(tt.jd)
		if math.Abs(got-tt.want) > tt.tol {
			t.Errorf("DeltaT(%f) = %f, want %f +/- %f", tt.jd, got, tt.want, tt.tol)
		}
	}
}

func TestTTToUT1(t *testing.T) {
	jd := 2455013.5
	ut1 := TTToUT1(jd)
	if ut1 >= jd {
		t.Error("UT1 should lag TT in the modern era")
	}
	if diff := (jd - ut1) * SecondsPerDay; diff < 50 || diff > 80 {
		t.Errorf("TT-UT1 = %fs, outside plausible modern range", diff)
	}
}
