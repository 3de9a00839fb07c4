package frames

import (
	"errors"
	"math"
	"testing"

	"github.com/vparth/truepole/internal/nutation"
)

func TestMeanObliquityAtEpoch(t *testing.T) {
	tests := []struct {
		method nutation.Method
		want   float64 // arcsec
	}{
		{nutation.IAU1976, 84381.448},
		{nutation.JPLDE4xx, 84381.448},
		{nutation.IAU2000, 84381.406},
		{nutation.IAU2006, 84381.406},
	}
	for _, tt := range tests {
		got := MeanObliquity(0, tt.method) / arcsecRad
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%v: obliquity %.6f arcsec, want %.6f", tt.method, got, tt.want)
		}
	}
}

func TestMeanObliquityDecreases(t *testing.T) {
	// The obliquity currently shrinks by about 47 arcsec per century.
	e0 := MeanObliquity(0, nutation.IAU2000)
	e1 := MeanObliquity(1, nutation.IAU2000)
	if d := (e0 - e1) / arcsecRad; d < 40 || d > 55 {
		t.Errorf("obliquity change over one century = %.3f arcsec", d)
	}
}

func TestTrueObliquity(t *testing.T) {
	nutation.ClearCache()
	cfg := nutation.Config{Method: nutation.IAU2000}
	eps, err := TrueObliquity(0.0947, cfg)
	if err != nil {
		t.Fatal(err)
	}
	a, err := nutation.Calc(0.0947, cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := MeanObliquity(0.0947, cfg.Method) + a.Obliquity
	if eps != want {
		t.Errorf("true obliquity %g, want mean+dEps %g", eps, want)
	}
}

func TestMatrixOrthogonality(t *testing.T) {
	cases := []struct{ meanEps, trueEps, dpsi float64 }{
		{0.40909, 0.40910, 7e-5},
		{0.40909, 0.40905, -9e-5},
		{0.4, 0.4, 0},
		{0.41, 0.39, 0.01},
	}
	for _, c := range cases {
		m := NutationMatrix(c.meanEps, c.trueEps, c.dpsi)
		p := m.Transpose().mul(m)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				want := 0.0
				if i == j {
					want = 1.0
				}
				if math.Abs(p[i][j]-want) > 1e-12 {
					t.Errorf("MtM[%d][%d] = %.15f, want %g", i, j, p[i][j], want)
				}
			}
		}
	}
}

func TestIdentityAtZeroNutation(t *testing.T) {
	eps := 0.40909
	m := NutationMatrix(eps, eps, 0)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(m[i][j]-want) > 1e-15 {
				t.Errorf("expected identity, m[%d][%d] = %.18f", i, j, m[i][j])
			}
		}
	}
}

func TestNutateRoundTrip(t *testing.T) {
	nutation.ClearCache()
	cfg := nutation.Config{Method: nutation.IAU2000}
	jd := 2455013.5

	vectors := [][]float64{
		{1, 0, 0},
		{0.4, -0.7, 0.59},
		{1.1, 2.2, -3.3, 0.01, -0.02, 0.003},
	}
	for _, v := range vectors {
		fwd, err := Nutate(jd, cfg, v, true)
		if err != nil {
			t.Fatal(err)
		}
		back, err := Nutate(jd, cfg, fwd, false)
		if err != nil {
			t.Fatal(err)
		}
		for i := range v {
			if math.Abs(back[i]-v[i]) > 1e-10 {
				t.Errorf("component %d: %g -> %g after round trip", i, v[i], back[i])
			}
		}
	}
}

func TestNutatePreservesNorm(t *testing.T) {
	nutation.ClearCache()
	cfg := nutation.Config{Method: nutation.IAU1976}
	v := []float64{0.3, -1.2, 2.5}
	out, err := Nutate(2455013.5, cfg, v, true)
	if err != nil {
		t.Fatal(err)
	}
	norm := func(x []float64) float64 {
		return math.Sqrt(x[0]*x[0] + x[1]*x[1] + x[2]*x[2])
	}
	if math.Abs(norm(out)-norm(v)) > 1e-12 {
		t.Errorf("rotation changed vector norm: %.15f vs %.15f", norm(out), norm(v))
	}
}

func TestNutateSixVectorHalvesIndependent(t *testing.T) {
	nutation.ClearCache()
	cfg := nutation.Config{Method: nutation.IAU2000}
	jd := 2455013.5

	pos := []float64{1.5, -0.5, 0.25}
	vel := []float64{-0.01, 0.02, 0.005}
	both := append(append([]float64{}, pos...), vel...)

	p3, err := Nutate(jd, cfg, pos, true)
	if err != nil {
		t.Fatal(err)
	}
	v3, err := Nutate(jd, cfg, vel, true)
	if err != nil {
		t.Fatal(err)
	}
	b6, err := Nutate(jd, cfg, both, true)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if b6[i] != p3[i] {
			t.Errorf("position half differs at %d: %g vs %g", i, b6[i], p3[i])
		}
		if b6[3+i] != v3[i] {
			t.Errorf("velocity half differs at %d: %g vs %g", i, b6[3+i], v3[i])
		}
	}
}

func TestNutateBadLength(t *testing.T) {
	cfg := nutation.Config{Method: nutation.IAU2000}
	for _, n := range []int{0, 1, 2, 4, 5, 7} {
		if _, err := Nutate(2455013.5, cfg, make([]float64, n), true); !errors.Is(err, ErrVectorLength) {
			t.Errorf("len %d: expected ErrVectorLength, got %v", n, err)
		}
	}
}
