// Package frames transforms equatorial coordinate vectors between the
// mean and true frames of date: it supplies the obliquity of the
// ecliptic and builds and applies the nutation rotation matrix.
package frames

import (
	"math"

	"github.com/vparth/truepole/internal/nutation"
)

const arcsecRad = math.Pi / 648000

// MeanObliquity returns the mean obliquity of the ecliptic in radians at
// T Julian centuries TT from J2000.0. The 1980-family reduction methods
// use the IAU 1980 polynomial; the 2000-family methods use the IAU 2006
// polynomial.
func MeanObliquity(T float64, m nutation.Method) float64 {
	switch m {
	case nutation.IAU2000, nutation.IAU2006, nutation.IAU2009:
		return (84381.406 +
			(-46.836769+
				(-0.0001831+
					(0.00200340+
						(-5.76e-7-4.34e-8*T)*T)*T)*T)*T) * arcsecRad
	default:
		return (84381.448 +
			(-46.8150+
				(-0.00059+0.001813*T)*T)*T) * arcsecRad
	}
}

// TrueObliquity returns the true obliquity in radians: the mean obliquity
// plus the nutation in obliquity under the given configuration.
func TrueObliquity(T float64, cfg nutation.Config) (float64, error) {
	a, err := nutation.Calc(T, cfg)
	if err != nil {
		return 0, err
	}
	return MeanObliquity(T, cfg.Method) + a.Obliquity, nil
}
