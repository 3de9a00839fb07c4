package nutation

import "math"

// arcsecRad converts arcseconds to radians.
const arcsecRad = math.Pi / 648000

// turnArcsec is a full turn in arcseconds.
const turnArcsec = 1296000.0

// Delaunay argument polynomials of the IAU 1980 theory, arcseconds.
// Columns: constant, linear, quadratic, cubic. Order: mean anomaly of the
// Moon (l), mean anomaly of the Sun (l'), mean argument of latitude of the
// Moon (F), mean elongation of the Moon from the Sun (D), longitude of the
// ascending node of the lunar orbit (Omega).
var delaunay1980 = [5][4]float64{
	{485866.733, 1717915922.633, 31.310, 0.064},
	{1287099.804, 129596581.224, -0.577, -0.012},
	{335778.877, 1739527263.137, -13.257, 0.011},
	{1072261.307, 1602961601.328, -6.891, 0.019},
	{450160.280, -6962890.539, 7.455, 0.008},
}

// fundArgs1980 evaluates the five 1980-theory fundamental arguments in
// radians for T Julian centuries TT from J2000.0. The linear part is
// reduced modulo a full turn before the quadratic and cubic corrections
// are added; the ordering preserves precision at large |T|.
func fundArgs1980(T float64) [5]float64 {
	var a [5]float64
	for i, c := range delaunay1980 {
		lin := math.Mod(c[1]*T+c[0], turnArcsec)
		a[i] = (lin + (c[3]*T+c[2])*T*T) * arcsecRad
	}
	return a
}

// Luni-solar argument polynomials of the IAU 2000A theory (MHB2000),
// arcseconds. Columns: constant through quartic. Same argument order as
// delaunay1980.
var delaunay2000 = [5][5]float64{
	{485868.249036, 1717915923.2178, 31.8792, 0.051635, -0.00024470},
	{1287104.79305, 129596581.0481, -0.5532, 0.000136, -0.00001149},
	{335779.526232, 1739527262.8478, -12.7512, -0.001037, 0.00000417},
	{1072260.70369, 1602961601.2090, -6.3706, 0.006593, -0.00003169},
	{450160.398036, -6962890.5431, 7.4722, 0.007702, -0.00005939},
}

// Planetary mean longitudes (radians, linear in T) and the general
// precession term, IERS Conventions 2003. Order: Mercury through Neptune,
// then accumulated precession.
var planetary2000 = [8][2]float64{
	{4.402608842, 2608.7903141574},
	{3.176146697, 1021.3285546211},
	{1.753470314, 628.3075849991},
	{6.203480913, 334.0612426700},
	{0.599546497, 52.9690962641},
	{0.874016757, 21.3299104960},
	{5.481293872, 7.4781598567},
	{5.311886287, 3.8133035638},
}

// fundArgs2000 evaluates the fourteen arguments of the 2000A theory in
// radians: the five luni-solar arguments (quartic polynomials, evaluated
// directly with no explicit turn reduction; range reduction is left to
// the trigonometric primitives), the eight planetary mean longitudes, and
// the general precession in longitude.
func fundArgs2000(T float64) [14]float64 {
	var a [14]float64
	for i, c := range delaunay2000 {
		a[i] = (c[0] + (c[1]+(c[2]+(c[3]+c[4]*T)*T)*T)*T) * arcsecRad
	}
	for i, c := range planetary2000 {
		a[5+i] = c[0] + c[1]*T
	}
	a[13] = (0.024381750 + 0.00000538691*T) * T
	return a
}
