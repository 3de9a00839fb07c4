package nutation

import "math"

// nut2000A evaluates the IAU 2000A nutation series (MHB2000 luni-solar
// plus planetary parts) at T Julian centuries TT from J2000.0 and returns
// delta psi / delta epsilon in radians.
//
// Both passes sum in reverse table order so the smallest terms accumulate
// first; the summation order is part of the reference behavior and must
// not be changed.
func nut2000A(T float64) Angles {
	a := fundArgs2000(T)

	var dpsi, deps float64

	// Luni-solar terms: 5 multipliers, 6 amplitudes
	// (sin, t*sin, cos for longitude; cos, t*cos, sin for obliquity).
	for i := lsCount00 - 1; i >= 0; i-- {
		arg := 0.0
		for j := 0; j < 5; j++ {
			if m := mult00LS[i*5+j]; m != 0 {
				arg += float64(m) * a[j]
			}
		}
		s, c := math.Sincos(arg)
		amp := amp00LS[i*6 : i*6+6]
		dpsi += (amp[0]+amp[1]*T)*s + amp[2]*c
		deps += (amp[3]+amp[4]*T)*c + amp[5]*s
	}

	// Planetary terms: 14 multipliers, 4 amplitudes, no secular rates.
	for i := plCount00 - 1; i >= 0; i-- {
		arg := 0.0
		for j := 0; j < 14; j++ {
			if m := mult00PL[i*14+j]; m != 0 {
				arg += float64(m) * a[j]
			}
		}
		s, c := math.Sincos(arg)
		amp := amp00PL[i*4 : i*4+4]
		dpsi += amp[0]*s + amp[1]*c
		deps += amp[2]*s + amp[3]*c
	}

	return Angles{
		Longitude: dpsi * 1e-7 * arcsecRad,
		Obliquity: deps * 1e-7 * arcsecRad,
	}
}
