package nutation

import "math"

// Amplitudes of the dominant Omega term of the 1980 series. They exceed
// the int16 encoding of the packed table and are applied outside the
// term loop. Units: 1e-4 arcsec and 1e-4 arcsec per 10 Julian centuries.
const (
	psiOmegaAmp  = -171996.0
	psiOmegaRate = -1742.0
	epsOmegaAmp  = 92025.0
	epsOmegaRate = 89.0
)

// maxMult80 holds, per fundamental argument, the largest |multiplier|
// appearing in table80. Filled once at init from the table itself.
var maxMult80 [5]int

func init() {
	for r := 0; r < len(table80); r += termLen80 {
		for i := 0; i < 5; i++ {
			m := int(table80[r+i])
			if m < 0 {
				m = -m
			}
			if m > maxMult80[i] {
				maxMult80[i] = m
			}
		}
	}
}

// nut1980 evaluates the IAU 1980 nutation series at T Julian centuries TT
// from J2000.0 and returns delta psi / delta epsilon in radians.
//
// Rather than calling the trig primitives once per term, sin(k*arg) and
// cos(k*arg) are tabulated per argument: the double-angle identity covers
// k=2 and the angle-addition recurrence extends to the largest multiplier
// the table uses. Each row then combines its up-to-five (argument,
// multiplier) pairs into the sin/cos of the total argument by repeated
// angle addition.
func nut1980(T float64) Angles {
	args := fundArgs1980(T)

	var ss, cc [5][4]float64
	for i := range args {
		s, c := math.Sincos(args[i])
		ss[i][0], cc[i][0] = s, c
		n := maxMult80[i]
		if n >= 2 {
			ss[i][1] = 2 * s * c
			cc[i][1] = c*c - s*s
		}
		for k := 2; k < n; k++ {
			// sin((k+1)x) = sin(x)cos(kx) + cos(x)sin(kx)
			ss[i][k] = s*cc[i][k-1] + c*ss[i][k-1]
			cc[i][k] = c*cc[i][k-1] - s*ss[i][k-1]
		}
	}

	var dpsi, deps float64
	for r := 0; r < len(table80); r += termLen80 {
		row := table80[r : r+termLen80]

		// Combined sin/cos of the row's total argument. A negative
		// multiplier flips the sign of the sine factor only.
		sv, cv := 0.0, 1.0
		started := false
		for i := 0; i < 5; i++ {
			m := int(row[i])
			if m == 0 {
				continue
			}
			k := m
			if k < 0 {
				k = -k
			}
			su, cu := ss[i][k-1], cc[i][k-1]
			if m < 0 {
				su = -su
			}
			if !started {
				sv, cv = su, cu
				started = true
				continue
			}
			sv, cv = sv*cu+cv*su, cv*cu-sv*su
		}

		a := float64(row[5])
		if row[6] != 0 {
			a += T / 10 * float64(row[6])
		}
		b := float64(row[7])
		if row[8] != 0 {
			b += T / 10 * float64(row[8])
		}
		dpsi += a * sv
		deps += b * cv
	}

	// Dominant term on the node argument, outside the packed table.
	dpsi += (psiOmegaAmp + T/10*psiOmegaRate) * ss[4][0]
	deps += (epsOmegaAmp + T/10*epsOmegaRate) * cc[4][0]

	return Angles{
		Longitude: dpsi * 1e-4 * arcsecRad,
		Obliquity: deps * 1e-4 * arcsecRad,
	}
}
