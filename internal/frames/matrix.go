package frames

import (
	"errors"
	"fmt"
	"math"

	"github.com/vparth/truepole/internal/astrotime"
	"github.com/vparth/truepole/internal/nutation"
)

// ErrVectorLength is returned when a coordinate vector is neither a
// 3-vector (position) nor a 6-vector (position and velocity).
var ErrVectorLength = errors.New("frames: vector must have 3 or 6 components")

// Matrix3 is a 3x3 rotation matrix in row-major order.
type Matrix3 [3][3]float64

// MulVec applies the matrix to a 3-vector.
func (m Matrix3) MulVec(v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Transpose returns the transposed matrix. For a rotation this is the
// inverse.
func (m Matrix3) Transpose() Matrix3 {
	var t Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[i][j] = m[j][i]
		}
	}
	return t
}

func (m Matrix3) mul(o Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				r[i][j] += m[i][k] * o[k][j]
			}
		}
	}
	return r
}

// rotX is the rotation matrix about the x axis by angle a.
func rotX(a float64) Matrix3 {
	s, c := math.Sincos(a)
	return Matrix3{
		{1, 0, 0},
		{0, c, s},
		{0, -s, c},
	}
}

// rotZ is the rotation matrix about the z axis by angle a.
func rotZ(a float64) Matrix3 {
	s, c := math.Sincos(a)
	return Matrix3{
		{c, s, 0},
		{-s, c, 0},
		{0, 0, 1},
	}
}

// NutationMatrix builds the mean-to-true nutation rotation matrix from
// the mean obliquity, the true obliquity and the nutation in longitude:
// N = R1(-trueEps) R3(-dPsi) R1(meanEps).
func NutationMatrix(meanEps, trueEps, dPsi float64) Matrix3 {
	return rotX(-trueEps).mul(rotZ(-dPsi)).mul(rotX(meanEps))
}

// Nutate transforms an equatorial coordinate vector between the mean and
// true frames of date at jdTT (Julian Date, TT). The vector has 3
// components (position) or 6 (position then velocity); the two halves of
// a 6-vector rotate independently. meanToTrue applies the nutation
// matrix; the reverse direction applies its transpose. The matrix is
// rebuilt on every call from the (possibly memoized) nutation angles.
func Nutate(jdTT float64, cfg nutation.Config, vec []float64, meanToTrue bool) ([]float64, error) {
	if len(vec) != 3 && len(vec) != 6 {
		return nil, fmt.Errorf("%w: got %d", ErrVectorLength, len(vec))
	}

	T := astrotime.CenturiesJ2000(jdTT)
	a, err := nutation.Calc(T, cfg)
	if err != nil {
		return nil, err
	}
	meanEps := MeanObliquity(T, cfg.Method)
	m := NutationMatrix(meanEps, meanEps+a.Obliquity, a.Longitude)
	if !meanToTrue {
		m = m.Transpose()
	}

	out := make([]float64, len(vec))
	for off := 0; off < len(vec); off += 3 {
		r := m.MulVec([3]float64{vec[off], vec[off+1], vec[off+2]})
		copy(out[off:off+3], r[:])
	}
	return out, nil
}
