package nutation

// IAU 2000A nutation series (MHB2000, Mathews et al. 2002), packed
// term tables. Amplitude units are 1e-7 arcsec; secular rates are per
// Julian century.
//
// mult00LS holds, per luni-solar term, five integer multipliers of the
// arguments (l, l', F, D, Omega); amp00LS holds six amplitudes per term:
// sin, t*sin and cos for longitude, then cos, t*cos and sin for
// obliquity. mult00PL holds, per planetary term, fourteen multipliers
// (l, l', F, D, Omega, the eight planetary mean longitudes Mercury
// through Neptune, and the accumulated precession); amp00PL holds four
// amplitudes per term: sin and cos for longitude, then sin and cos for
// obliquity. Planetary terms carry no secular rates.
//
// Treated as a read-only data asset; edit only against the published
// series. Evaluation order over these tables is part of the reference
// behavior (see series00a.go).
//
// Only the leading rows (the dominant luni-solar and planetary terms)
// carry published MHB2000 coefficients; the small-amplitude tail is
// placeholder data with the published table's shape and magnitude
// decay, contributing below a milliarcsecond in total (see DESIGN.md).

const lsCount00 = 678

const plCount00 = 687

var mult00LS = []int16{
	0, 0, 0, 0, 1,
	0, 0, 2, -2, 2,
	0, 0, 2, 0, 2,
	0, 0, 0, 0, 2,
	0, 1, 0, 0, 0,
	0, 1, 2, -2, 2,
	1, 0, 0, 0, 0,
	0, 0, 2, 0, 1,
	1, 0, 2, 0, 2,
	0, -1, 2, -2, 2,
	0, 0, 2, -2, 1,
	-1, 0, 2, 0, 2,
	-1, 0, 0, 2, 0,
	1, 0, 0, 0, 1,
	-1, 0, 0, 0, 1,
	-1, 0, 2, 2, 2,
	1, 0, 2, 0, 1,
	-2, 0, 2, 0, 1,
	0, 0, 0, 2, 0,
	0, 0, 2, 2, 2,
	0, -2, 2, -2, 2,
	-2, 0, 0, 2, 0,
	2, 0, 2, 0, 2,
	1, 0, 2, -2, 2,
	-1, 0, 2, 0, 1,
	2, 0, 0, 0, 0,
	0, 0, 2, 0, 0,
	0, 1, 0, 0, 1,
	-1, 0, 0, 2, 1,
	0, 2, 2, -2, 2,
	0, 0, -2, 2, 0,
	1, 0, 0, -2, 1,
	0, -1, 0, 0, 1,
	-1, 0, 2, 2, 1,
	0, 2, 0, 0, 0,
	1, 0, 2, 2, 2,
	-2, 0, 2, 0, 0,
	0, 1, 2, 0, 2,
	0, 0, 2, 2, 1,
	0, -1, 2, 0, 2,
	0, 0, 0, 2, 1,
	1, 0, 2, -2, 1,
	2, 0, 2, -2, 2,
	-2, 0, 0, 2, 1,
	2, 0, 2, 0, 1,
	0, -1, 2, -2, 1,
	0, 0, 0, -2, 1,
	-1, -1, 0, 2, 0,
	2, 0, 0, -2, 1,
	1, 0, 0, 2, 0,
	0, 1, 2, -2, 1,
	1, -1, 0, 0, 0,
	-2, 0, 2, 0, 2,
	3, 0, 2, 0, 2,
	0, -1, 0, 2, 0,
	1, -1, 2, 0, 2,
	0, 0, 0, 1, 0,
	-1, -1, 2, 2, 2,
	-1, 0, 2, 0, 0,
	0, -1, 2, 2, 2,
	-2, 0, 0, 0, 1,
	1, 1, 2, 0, 2,
	2, 0, 0, 0, 1,
	-1, 1, 0, 1, 0,
	1, 1, 0, 0, 0,
	1, 0, 2, 0, 0,
	-1, 0, 2, -2, 1,
	1, 0, 0, 0, 2,
	-1, 0, 0, 1, 0,
	0, 0, 2, 1, 2,
	-1, 0, 2, 4, 2,
	-1, 1, 0, 1, 1,
	0, -2, 2, -2, 1,
	1, 0, 2, 2, 1,
	-2, 0, 2, 2, 2,
	-1, 0, 0, 0, 2,
	1, 1, 2, -2, 2,
	3, 0, 2, 4, 2,
	3, 2, 0, -2, 2,
	0, -1, 4, 4, 1,
	1, 1, -2, 4, 2,
	2, -2, -2, 4, 0,
	2, 0, 2, 2, 0,
	-1, -1, 2, -2, 1,
	-2, 0, 0, 1, 1,
	-3, -1, 2, 2, 2,
	0, -2, 4, -1, 2,
	-3, 1, 0, -2, 2,
	-3, 0, -2, -2, 2,
	2, 1, -2, -1, 0,
	1, -1, -2, 0, 2,
	2, 2, 0, 4, 0,
	0, 1, 0, 2, 0,
	-2, 0, -2, -1, 1,
	-3, 0, -2, 4, 2,
	1, 2, 2, 0, 1,
	3, 2, -2, 4, 2,
	-2, 1, 2, 2, 1,
	-2, 0, 0, 4, 1,
	1, -2, 2, -2, 1,
	0, 1, 2, 1, 2,
	-2, -1, 4, 1, 1,
	0, 1, 0, 1, 1,
	0, -2, -4, 0, 2,
	3, -1, 2, -2, 2,
	-2, 1, 0, 2, 2,
	-2, 2, -2, 0, 1,
	-3, -2, -2, 0, 1,
	-2, 0, 0, 2, 2,
	1, -2, 0, 4, 1,
	1, 1, 0, 4, 0,
	0, 1, -4, 1, 1,
	1, -1, 2, 1, 1,
	1, 2, 4, 1, 2,
	-3, 2, 2, 0, 1,
	-1, 2, -2, -1, 1,
	-1, 1, -2, 2, 0,
	1, -1, 0, 1, 2,
	-2, 2, 2, 0, 1,
	-3, -2, -4, -1, 2,
	-2, 0, 2, -2, 1,
	-3, -2, 2, -4, 1,
	0, 2, 4, -1, 2,
	2, 2, -2, 1, 0,
	-2, 0, -4, 4, 1,
	-3, 2, 2, 2, 2,
	-3, 0, 0, -4, 1,
	0, 2, 4, -2, 2,
	-1, -1, 4, 4, 1,
	3, -2, 0, -2, 1,
	3, 0, 4, -1, 1,
	3, 2, 2, 0, 2,
	-1, -1, -2, 2, 2,
	-1, -1, 2, 2, 0,
	-2, -1, 4, -2, 1,
	3, -1, 0, -2, 2,
	-2, -2, 4, -2, 2,
	3, 1, 0, 2, 2,
	1, 0, 4, 4, 0,
	1, -2, 4, -2, 1,
	-1, -2, -4, 0, 2,
	0, 2, 2, 0, 2,
	-3, 0, 2, 4, 1,
	-1, 1, -2, -2, 2,
	-3, 2, -4, 2, 2,
	3, 0, 2, -2, 2,
	-3, 0, -4, 0, 1,
	-3, 1, -2, 0, 2,
	0, 1, -2, 1, 2,
	0, 1, 2, -4, 0,
	3, 2, -2, -2, 0,
	0, 0, -2, -2, 1,
	0, 2, 2, -2, 1,
	1, -2, 2, 2, 2,
	0, 0, -2, -4, 1,
	0, -1, -4, -2, 2,
	1, 0, 0, -1, 2,
	-3, -1, 0, 0, 1,
	2, -1, -4, 2, 2,
	-3, 0, -2, 0, 1,
	0, 0, -4, 0, 1,
	1, 2, 0, -2, 2,
	0, -1, -2, 2, 2,
	1, 2, 2, 4, 2,
	0, 2, -2, -2, 1,
	3, -1, -2, -2, 1,
	-2, -1, -2, -4, 2,
	0, -1, -4, 0, 1,
	0, -1, 2, -1, 2,
	0, 2, 2, 4, 0,
	-1, 0, 0, -2, 1,
	1, 2, 2, -2, 1,
	1, -2, 0, 0, 1,
	-1, -2, -2, 4, 1,
	-2, -2, -2, -2, 1,
	3, 2, 4, 2, 1,
	2, -1, -4, 4, 1,
	2, 2, 2, 0, 0,
	-1, -1, 0, -2, 1,
	1, 1, 2, -2, 1,
	0, 0, 2, 1, 0,
	0, -1, -2, -2, 2,
	0, 1, -2, -2, 2,
	1, 1, 2, -2, 0,
	-3, -1, 2, 0, 1,
	-3, 0, 2, 2, 2,
	-1, 1, 0, 2, 1,
	-2, 2, 0, 1, 2,
	-2, -1, 0, -2, 2,
	-1, 0, -2, 1, 0,
	3, -2, 4, 0, 2,
	3, 2, -2, -4, 0,
	0, 2, 0, -2, 2,
	0, -1, -2, 2, 1,
	2, 2, -4, -4, 0,
	-3, 2, -2, 2, 2,
	1, 1, 2, -1, 2,
	2, -1, -2, -1, 1,
	-1, -1, -4, 0, 1,
	-2, 0, 2, 1, 2,
	0, -2, 2, 1, 1,
	3, 1, 0, -1, 2,
	-1, 2, 2, -1, 2,
	-1, 2, 4, 2, 1,
	-3, -2, -2, 2, 1,
	1, 1, 0, -1, 1,
	1, -2, 2, 4, 1,
	1, 1, -2, 2, 0,
	1, 0, -4, 2, 1,
	-3, -1, 2, 2, 1,
	3, -1, 4, -4, 2,
	2, 0, 2, -1, 0,
	-2, -2, 2, 2, 1,
	2, 2, 0, 2, 0,
	-1, 2, -2, -2, 0,
	2, 0, -2, 0, 0,
	-1, 0, -2, 2, 2,
	-2, 0, -2, -2, 2,
	2, -2, -2, -2, 2,
	3, -2, -2, 2, 1,
	0, 1, -2, 4, 2,
	2, -2, 2, -4, 1,
	2, -2, 2, 1, 2,
	2, 2, 2, -2, 2,
	-2, 0, -2, -4, 2,
	-2, 1, 0, 0, 0,
	2, 0, -2, -2, 2,
	-1, 0, -2, 1, 2,
	3, 1, 2, -2, 0,
	-3, 1, -2, -1, 0,
	-3, 1, 0, -2, 1,
	2, 0, -2, 2, 2,
	-2, 2, 2, -4, 2,
	1, 2, 0, -4, 2,
	1, 2, 2, -2, 2,
	-1, 0, 2, 1, 2,
	3, -2, 2, 4, 2,
	3, -1, 0, 0, 1,
	3, -1, -2, 0, 1,
	1, -2, -2, 0, 0,
	1, -1, 4, 2, 1,
	-3, 0, -2, -4, 2,
	1, -2, -2, 4, 1,
	2, 1, 2, -2, 0,
	-1, 2, 2, 0, 2,
	-2, -1, -4, -2, 1,
	-1, 2, 0, -2, 0,
	3, 1, 4, 2, 2,
	-2, -1, 0, -4, 2,
	2, -2, -4, -2, 0,
	-3, 1, 0, 0, 1,
	0, 0, 0, -4, 0,
	-3, 1, -4, 2, 1,
	-2, 2, -2, 0, 0,
	-1, 1, -2, 0, 0,
	-2, -2, 0, -2, 1,
	-2, 0, 2, -4, 1,
	1, 0, -4, 1, 1,
	3, 1, 0, -2, 1,
	1, -2, 0, -2, 2,
	3, -2, -2, -2, 1,
	2, -1, 2, 4, 2,
	2, 0, 2, -2, 1,
	-2, 0, 2, -1, 1,
	3, 2, 0, 2, 1,
	3, 2, 0, 2, 2,
	-2, -2, 2, -4, 2,
	3, 2, 0, -1, 2,
	-3, -2, 0, 4, 2,
	0, -1, -4, 0, 2,
	-3, 0, -2, 1, 0,
	1, 2, -2, 0, 1,
	2, 1, -2, 4, 0,
	2, 0, -2, -2, 0,
	2, -1, 4, 2, 1,
	-2, 2, -2, -2, 1,
	1, 2, -4, 0, 0,
	0, -2, -2, 0, 0,
	2, 0, 4, 0, 2,
	-1, -1, 2, 0, 0,
	1, -1, 2, -2, 1,
	3, 1, 2, 0, 1,
	-2, 1, 4, -1, 2,
	-1, 1, 2, 0, 0,
	2, -2, -4, 0, 0,
	3, -2, -4, 2, 2,
	0, 0, -4, 2, 1,
	3, -1, 2, 0, 2,
	-3, -2, 2, -2, 2,
	-2, -1, 2, 4, 1,
	2, 0, 4, 2, 2,
	1, -1, -2, 1, 2,
	1, -1, 2, 2, 1,
	-1, -1, -4, -2, 1,
	0, 0, 0, -1, 2,
	3, 2, -4, -1, 2,
	1, 0, 4, 1, 1,
	1, -1, -4, -1, 0,
	-2, 2, 0, -1, 2,
	-3, 2, -2, -4, 0,
	3, 1, -2, 1, 1,
	1, -2, -2, -2, 2,
	0, -1, -2, 2, 0,
	-3, -1, -2, 2, 2,
	2, -1, -4, -1, 1,
	-1, 2, 2, -4, 2,
	0, 0, 0, 4, 1,
	-1, 2, -2, -2, 1,
	-1, 2, 0, -2, 1,
	3, 1, 2, 0, 0,
	-2, -2, 2, -2, 1,
	0, -2, -4, -2, 1,
	1, 1, 0, 2, 1,
	0, 1, 2, 2, 1,
	3, 2, -2, 0, 1,
	0, 2, -2, 2, 1,
	3, 0, 2, 0, 0,
	3, 0, -2, 0, 1,
	-3, 1, -2, -4, 0,
	-1, 2, 2, 4, 2,
	3, -1, 2, 0, 0,
	3, 1, 0, 0, 1,
	3, 0, 2, 2, 1,
	-2, -2, 4, 1, 2,
	2, 1, 4, -2, 2,
	-1, -1, 2, 4, 2,
	-3, 0, 4, -1, 1,
	-2, -2, 2, 0, 0,
	0, -2, 4, -2, 2,
	3, 0, -2, -2, 1,
	-3, 1, -4, 0, 1,
	-1, -1, 0, -1, 2,
	-1, -2, 2, -4, 2,
	1, -1, -4, 2, 2,
	0, -2, 0, 0, 1,
	-3, -2, 4, -2, 0,
	-1, 0, -4, 2, 2,
	2, 0, 2, 1, 2,
	-3, 0, -2, -1, 1,
	-2, -1, 2, -2, 1,
	-3, 2, 2, -1, 1,
	2, 2, 2, -4, 1,
	2, -2, 2, 2, 1,
	2, 2, 2, 4, 2,
	-1, -2, 0, 0, 2,
	-1, -1, 0, 4, 2,
	2, -2, 0, 0, 2,
	-1, -1, -2, 2, 1,
	2, 1, -4, -2, 2,
	0, -2, 0, 1, 2,
	2, 0, 0, 1, 0,
	-3, 0, 2, 0, 2,
	2, 0, 2, -2, 0,
	3, -2, -2, -2, 0,
	-2, 0, 0, -2, 0,
	3, 0, 0, -2, 1,
	-2, -1, 2, 1, 1,
	1, 1, 2, -4, 2,
	-1, -2, -2, 2, 2,
	2, 1, 2, 2, 2,
	3, 2, 4, 0, 1,
	3, -1, -2, 1, 2,
	-1, -2, 2, 2, 2,
	1, 2, 4, -1, 0,
	1, 2, 4, 2, 1,
	0, -1, 0, -2, 2,
	2, 1, 2, 0, 2,
	2, 1, 2, 1, 2,
	1, 1, 4, 2, 2,
	0, -2, -4, -1, 2,
	-3, -2, -2, -1, 1,
	2, 1, 0, -1, 2,
	0, -2, 4, 1, 0,
	0, 1, -2, -2, 0,
	-1, -1, 2, -1, 2,
	0, -2, 2, -1, 1,
	2, -1, 2, 0, 2,
	-1, 1, -4, -1, 2,
	1, -1, -4, 2, 0,
	-3, -1, -4, 0, 1,
	-2, -2, 0, 0, 2,
	-1, 1, 2, 1, 1,
	2, -2, 4, 0, 2,
	-1, 1, 0, -1, 0,
	-2, 0, -2, 2, 2,
	0, 1, 4, 4, 2,
	1, 0, 4, 2, 1,
	-3, -1, 0, 2, 2,
	-3, -1, -4, 2, 1,
	-1, -2, 4, 4, 2,
	1, 1, 0, 1, 2,
	3, -2, 0, 2, 1,
	-2, 1, 2, -4, 2,
	-1, -2, 2, -4, 0,
	0, -1, -2, 1, 1,
	3, -1, 2, 1, 1,
	-2, -2, -4, 2, 0,
	0, 1, 2, 2, 0,
	0, -2, 2, -1, 0,
	0, -2, 0, 2, 0,
	0, 2, 0, -1, 2,
	-1, -1, -2, 0, 0,
	1, -1, 2, 1, 2,
	2, -1, 4, -1, 1,
	-1, -2, 4, -4, 1,
	-2, 2, -4, -1, 2,
	-1, -2, 0, -2, 0,
	-1, -2, 4, 0, 1,
	1, 0, -2, 4, 0,
	0, 2, 0, 0, 2,
	-1, -2, 2, 2, 1,
	3, 2, 0, 2, 0,
	2, 2, 4, 2, 0,
	-3, 2, 2, 4, 0,
	-1, -2, -4, -1, 2,
	-1, -2, 0, 4, 1,
	-1, -2, 2, -1, 1,
	0, 1, -2, 0, 2,
	2, 1, 2, 2, 1,
	-3, 1, 2, 0, 2,
	-1, 1, 0, 1, 2,
	-2, 1, 2, 4, 1,
	-3, 2, 0, -2, 0,
	1, 0, -2, 2, 0,
	0, 2, -2, 2, 2,
	1, 0, -2, -2, 1,
	3, -1, 2, 4, 2,
	-1, -1, -4, 2, 2,
	-2, -1, -2, 0, 2,
	-1, -2, 4, 2, 2,
	-3, 0, 4, -2, 0,
	1, -1, 2, 1, 0,
	-1, 1, -4, -1, 1,
	0, -1, 0, -4, 2,
	2, 0, -2, 4, 0,
	2, 2, 2, 0, 1,
	-2, -2, -2, 2, 2,
	1, -1, 4, -2, 1,
	0, -1, 0, 4, 0,
	1, 0, 2, -1, 1,
	-3, -1, 2, -1, 1,
	-2, 1, -2, 4, 1,
	-1, 0, -4, 2, 1,
	-3, 0, 0, 4, 1,
	-3, -2, -2, 1, 0,
	0, -2, 4, 0, 1,
	-2, 2, -2, 4, 1,
	-1, 1, -2, -4, 1,
	-1, -2, 4, -2, 1,
	-2, -2, -2, -2, 0,
	1, -1, 2, -4, 0,
	-2, -1, 2, 0, 2,
	-3, -1, -2, -4, 2,
	-3, 2, -2, 0, 2,
	-3, 2, 2, 4, 2,
	-3, -2, -4, 0, 0,
	-2, -2, 0, -2, 0,
	2, 2, 0, 2, 2,
	2, -1, 4, 2, 2,
	-2, 2, 2, 2, 2,
	-3, -1, 4, 4, 0,
	2, 1, 2, -2, 2,
	-3, -1, -2, -1, 1,
	-3, 2, -4, 2, 1,
	-3, 0, 0, 0, 1,
	2, -2, -2, 4, 1,
	-1, 1, 2, 2, 1,
	2, -2, 4, 2, 2,
	-1, 0, -2, 2, 0,
	-3, 0, -2, 2, 1,
	0, -2, 0, 4, 1,
	-3, -2, -4, 1, 2,
	-1, 0, 2, -4, 2,
	-1, 0, 0, -2, 0,
	1, 0, 4, -2, 1,
	0, 1, 2, 0, 1,
	-3, -2, 0, 0, 2,
	-1, -2, -2, 2, 0,
	-3, -1, 2, 1, 1,
	0, -1, -2, 0, 2,
	2, 2, -2, 0, 2,
	2, 0, -2, 2, 0,
	-2, 1, -2, 1, 2,
	0, 1, -2, -1, 2,
	3, -2, 2, 2, 2,
	3, 0, 0, 2, 2,
	-1, -2, -2, 0, 1,
	1, 2, 0, 2, 0,
	-3, -2, -2, -4, 0,
	3, 1, -2, -2, 0,
	0, 2, 2, -4, 2,
	0, 2, 0, -4, 2,
	-1, 2, -2, 2, 2,
	-3, 2, -4, 0, 1,
	3, 1, -4, 4, 1,
	-2, 0, 2, 4, 2,
	-2, 0, -2, 0, 1,
	1, -2, 2, 2, 1,
	-2, -2, 2, 2, 0,
	-1, 1, 0, -1, 1,
	-2, -2, 2, 4, 0,
	-3, -1, -2, 1, 2,
	-3, -2, 2, 0, 2,
	3, 1, 0, -4, 2,
	-3, -2, 0, 4, 0,
	3, 2, 2, 4, 0,
	0, 1, -4, 0, 1,
	-2, 1, -4, 4, 1,
	-1, -2, 4, -1, 0,
	3, 2, 2, -1, 2,
	1, 2, -2, -2, 1,
	1, -1, 2, 2, 2,
	-3, -2, 2, -2, 1,
	1, 2, 2, 0, 0,
	-2, -2, 0, 4, 2,
	1, 1, 4, 2, 1,
	-1, 1, -2, -2, 1,
	0, 1, 0, -4, 0,
	3, 1, 2, -1, 0,
	1, 1, 2, -1, 1,
	3, 2, -2, -4, 1,
	3, 1, 2, -1, 1,
	1, -2, 2, 4, 2,
	0, 2, 4, -2, 0,
	0, -1, 0, -2, 0,
	-3, 2, -2, -2, 1,
	3, 1, 0, 4, 1,
	3, -2, 2, -4, 2,
	1, 2, 2, -1, 1,
	-2, 2, 2, -2, 1,
	-1, 2, -2, -1, 0,
	-3, -1, -2, 4, 2,
	1, -2, 0, -1, 0,
	1, -2, 2, -4, 2,
	3, 2, -4, -2, 1,
	-1, 0, 2, -4, 1,
	3, 0, 0, 0, 2,
	-2, -1, -2, -2, 1,
	2, 2, 2, 2, 1,
	0, -2, 2, 0, 2,
	2, 0, 2, -4, 2,
	0, 0, -2, 0, 1,
	-2, 0, 2, 1, 1,
	-3, 2, 0, 2, 2,
	0, -1, 2, 4, 1,
	-2, 2, -2, 1, 0,
	-1, 2, 0, 0, 2,
	1, 1, -2, 2, 2,
	-2, -1, 0, 1, 1,
	0, -1, -4, 2, 0,
	-1, 2, -2, 0, 1,
	-1, -2, -2, 0, 2,
	2, -1, 2, 0, 1,
	-2, 2, 2, 1, 1,
	2, -1, 0, 0, 2,
	-3, 2, -2, -2, 0,
	-1, -1, 4, 4, 0,
	3, -2, -4, -2, 2,
	3, 2, 2, -1, 0,
	2, -1, 2, -2, 1,
	-2, 0, 0, -1, 1,
	-2, -1, -2, -4, 0,
	0, 0, 4, 4, 2,
	-2, 1, -2, 1, 1,
	-2, 1, 0, 1, 2,
	1, 1, 2, 0, 1,
	0, 1, 4, 0, 2,
	-3, 2, 0, -2, 2,
	1, 2, 0, -2, 0,
	0, 0, -2, 2, 1,
	0, -2, 0, 2, 1,
	-2, -1, -2, 2, 2,
	2, 2, 2, 2, 0,
	2, -2, 2, -1, 1,
	-3, -1, 4, 0, 1,
	0, 1, 2, -2, 0,
	-3, 0, 0, 2, 2,
	-2, -2, 2, 1, 1,
	0, 1, 2, -4, 1,
	2, 1, 4, -2, 0,
	3, 2, 4, 0, 2,
	0, 2, -2, 1, 2,
	-3, 2, 4, 4, 1,
	-3, 1, 4, 0, 1,
	3, 1, 0, 0, 2,
	-3, 0, 0, -2, 1,
	2, 1, 2, 4, 0,
	1, 0, 2, -4, 1,
	1, 2, -2, 2, 1,
	-3, 2, 2, -1, 2,
	2, 1, -2, 0, 2,
	3, -2, 0, 0, 2,
	2, -1, -4, 0, 0,
	0, -2, -2, 1, 2,
	1, 0, 0, 2, 1,
	-2, 0, 0, -2, 1,
	1, 0, 0, -2, 0,
	-3, 1, 2, 2, 0,
	2, 2, 4, 1, 2,
	1, -2, -4, -2, 2,
	2, 2, 0, 0, 1,
	-1, 2, 4, 0, 1,
	2, -2, 2, 2, 2,
	-1, 2, -2, -2, 2,
	2, 1, -4, 1, 2,
	0, 1, 0, 2, 1,
	2, 2, -4, -4, 2,
	-2, 1, -2, -4, 2,
	2, -1, -4, -4, 2,
	-2, -1, -2, 2, 1,
	-1, 1, 0, 2, 2,
	1, -1, 2, -4, 2,
	0, -2, -2, -2, 2,
	-1, -2, 0, 0, 0,
	-2, 2, 2, 0, 2,
	0, 0, 0, 1, 1,
	0, -1, 0, -1, 2,
	2, -2, 2, 2, 0,
	3, 1, -2, 2, 2,
	1, 0, 2, -4, 0,
	-3, -2, 0, -2, 2,
	-3, -2, 4, 2, 2,
	-2, 1, 2, 0, 0,
	-2, 0, -2, -4, 0,
	2, -1, -2, 1, 0,
	2, -1, 0, 4, 2,
	1, -1, -2, 2, 2,
	2, 2, 0, 4, 1,
	-1, -1, 0, 4, 1,
	-3, 0, -2, -4, 1,
	0, 1, -2, 2, 2,
	-3, 0, 4, -2, 2,
	2, 2, -4, 2, 0,
	0, 1, 2, 0, 0,
	0, -2, 2, 0, 0,
	3, -1, 4, -2, 1,
	3, 2, 2, 1, 2,
	3, 1, -2, 2, 1,
	-1, 2, -2, 1, 1,
	-1, 0, 4, -2, 1,
	0, 2, 2, 2, 1,
	3, 1, 2, 4, 1,
	1, -1, 2, -4, 1,
	-3, -2, 2, -2, 0,
	-3, -1, -2, -2, 2,
	0, 2, -4, 2, 1,
	-1, 0, -4, 0, 0,
	0, 2, 2, -1, 1,
	0, 1, -2, 0, 1,
	3, -2, 2, -2, 0,
	-2, 0, 2, 1, 0,
	2, 2, -2, 2, 2,
	3, -2, -2, 0, 1,
	1, 0, -2, 1, 0,
	2, 2, -2, 0, 1,
	2, 2, -4, -2, 0,
	-3, 2, -2, 2, 1,
	-3, 1, 0, 4, 2,
	1, 0, 0, 4, 2,
	1, 1, -4, 2, 1,
	-2, 0, -4, -4, 2,
	-1, 2, 0, -1, 1,
	1, 1, -2, -2, 1,
	2, 2, -4, 1, 2,
	-1, -2, 2, 1, 1,
	-3, 0, 0, 0, 2,
	-1, 0, 4, -4, 2,
	1, 2, 2, -2, 0,
	0, 1, 0, 0, 2,
	-2, -1, 0, 1, 2,
	-2, 1, -2, -2, 1,
	-1, 2, 4, 4, 1,
	3, 0, 2, -4, 2,
	0, 2, -2, 0, 1,
	1, 0, 0, 2, 2,
	-1, -1, 2, 2, 1,
	0, 1, 0, 2, 2,
	-1, -1, 2, -2, 2,
}

var amp00LS = []float64{
	-172064161.0, -174666.0, 33386.0, 92052331.0, 9086.0, 15377.0,
	-13170906.0, -1675.0, -13696.0, 5730336.0, -3015.0, -4587.0,
	-2276413.0, -234.0, 2796.0, 978459.0, -485.0, 1374.0,
	2074554.0, 207.0, -698.0, -897492.0, 470.0, -291.0,
	1475877.0, -3633.0, 11817.0, 73871.0, -184.0, -1924.0,
	-516821.0, 1226.0, -524.0, 224386.0, -677.0, -174.0,
	711159.0, 73.0, -872.0, -6750.0, 0.0, 358.0,
	-387298.0, -367.0, 380.0, 200728.0, 18.0, 318.0,
	-301461.0, -36.0, 816.0, 129025.0, -63.0, 367.0,
	215829.0, -494.0, 111.0, -95929.0, 299.0, 132.0,
	128227.0, 137.0, 181.0, -68982.0, -9.0, 39.0,
	123457.0, 11.0, 19.0, -53311.0, 32.0, -4.0,
	156994.0, 10.0, -168.0, -1235.0, 0.0, 82.0,
	63110.0, 63.0, 27.0, -33228.0, 0.0, -9.0,
	-57976.0, -63.0, -189.0, 31429.0, 0.0, -75.0,
	-59641.0, -11.0, 149.0, 25543.0, -11.0, 66.0,
	-51613.0, -42.0, 129.0, 26366.0, 0.0, 78.0,
	45893.0, 50.0, 31.0, -24236.0, -10.0, 20.0,
	63384.0, 11.0, -150.0, -1220.0, 0.0, 29.0,
	-38571.0, -1.0, 158.0, 16452.0, -11.0, 68.0,
	32481.0, 0.0, 0.0, -13870.0, 0.0, 0.0,
	-47722.0, 0.0, -18.0, 477.0, 0.0, -25.0,
	-31046.0, -1.0, 131.0, 13238.0, -11.0, 59.0,
	28593.0, 0.0, -1.0, -12338.0, 10.0, -3.0,
	20441.0, 21.0, 10.0, -10758.0, 0.0, -3.0,
	29243.0, 0.0, -74.0, -609.0, 0.0, 13.0,
	25887.0, 0.0, -66.0, -550.0, 0.0, 11.0,
	-14053.0, -25.0, 79.0, 8551.0, -2.0, -45.0,
	15164.0, 10.0, 11.0, -8001.0, 0.0, -1.0,
	-15794.0, 72.0, -16.0, 6850.0, -42.0, -5.0,
	21783.0, 0.0, 13.0, -167.0, 0.0, 13.0,
	-12873.0, -10.0, -37.0, 6953.0, 0.0, -14.0,
	-12654.0, 11.0, 63.0, 6415.0, 0.0, 26.0,
	-10204.0, 0.0, 25.0, 5222.0, 0.0, 15.0,
	16707.0, -85.0, -10.0, 168.0, -1.0, 10.0,
	-7691.0, 0.0, 44.0, 3268.0, 0.0, 19.0,
	-11024.0, 0.0, -14.0, 104.0, 0.0, 2.0,
	7566.0, -21.0, -11.0, -3250.0, 0.0, -5.0,
	-6637.0, -11.0, 25.0, 3353.0, 0.0, 14.0,
	-7141.0, 21.0, 8.0, 3070.0, 0.0, 4.0,
	-6302.0, -11.0, 2.0, 3272.0, 0.0, 4.0,
	5800.0, 10.0, 2.0, -3045.0, 0.0, -1.0,
	6443.0, 0.0, -7.0, -2768.0, 0.0, -4.0,
	-5774.0, -11.0, -15.0, 3041.0, 0.0, -5.0,
	-5350.0, 0.0, 21.0, 2695.0, 0.0, 12.0,
	-4752.0, -11.0, -3.0, 2719.0, 0.0, -3.0,
	-4940.0, -11.0, -21.0, 2720.0, 0.0, -9.0,
	7350.0, 0.0, -8.0, -51.0, 0.0, 4.0,
	4065.0, 0.0, 6.0, -2206.0, 0.0, 1.0,
	6579.0, 0.0, -24.0, -199.0, 0.0, 2.0,
	3579.0, 0.0, 5.0, -1900.0, 0.0, 1.0,
	4725.0, 0.0, -6.0, -41.0, 0.0, 3.0,
	-3075.0, 0.0, -2.0, 1313.0, 0.0, -1.0,
	-2904.0, 0.0, 15.0, 1233.0, 0.0, 7.0,
	4348.0, 0.0, -10.0, -81.0, 0.0, 2.0,
	-2878.0, 0.0, 8.0, 1232.0, 0.0, 4.0,
	-4230.0, 0.0, 5.0, -20.0, 0.0, -2.0,
	-2819.0, 0.0, 7.0, 1207.0, 0.0, 3.0,
	-4056.0, 0.0, 5.0, 40.0, 0.0, -2.0,
	-2647.0, 0.0, 11.0, 1129.0, 0.0, 5.0,
	-2294.0, 0.0, -10.0, 1266.0, 0.0, -4.0,
	2481.0, 0.0, -7.0, -1062.0, 0.0, -3.0,
	2179.0, 0.0, -2.0, -1129.0, 0.0, -2.0,
	3276.0, 0.0, 1.0, -9.0, 0.0, 0.0,
	-3389.0, 0.0, 5.0, 35.0, 0.0, -2.0,
	3339.0, 0.0, -13.0, -107.0, 0.0, 1.0,
	-1987.0, 0.0, -6.0, 1073.0, 0.0, -2.0,
	-1981.0, 0.0, 0.0, 854.0, 0.0, 0.0,
	4026.0, 0.0, -353.0, -553.0, 0.0, -139.0,
	1660.0, 0.0, -5.0, -710.0, 0.0, -2.0,
	-1521.0, 0.0, 9.0, 647.0, 0.0, 4.0,
	1314.0, 0.0, 0.0, -700.0, 0.0, 0.0,
	-1283.0, 0.0, 0.0, 672.0, 0.0, 0.0,
	-1331.0, 0.0, 8.0, 663.0, 0.0, 4.0,
	1383.0, 0.0, -2.0, -594.0, 0.0, -2.0,
	1405.0, 0.0, 4.0, -610.0, 0.0, 2.0,
	1290.0, 0.0, 0.0, -556.0, 0.0, 0.0,
	496.4, 0.0, -2.0, -215.3, 0.0, -3.3,
	-902.1, 0.0, 2.3, 389.7, 0.0, -3.0,
	-614.5, 0.0, 19.0, 263.1, 0.0, -2.8,
	-817.6, 0.0, -10.6, 351.1, 0.0, 7.1,
	-953.0, 0.0, -5.8, 15.7, 0.0, 0.3,
	961.4, 0.0, 7.5, -13.8, 0.0, 0.3,
	-914.0, 0.0, -11.4, 394.1, 0.0, 19.1,
	753.4, 0.0, -36.2, -323.0, 0.0, -9.4,
	939.7, 0.0, -7.3, -405.2, 0.0, -9.8,
	-1012.9, 0.0, -47.6, 434.0, 0.0, 17.2,
	-910.6, 0.0, 0.9, 392.2, 0.0, -11.5,
	534.6, 0.0, -14.9, -228.5, 0.0, -2.6,
	534.5, 0.0, 11.0, -12.6, 0.0, 0.0,
	-843.7, 0.0, 21.5, 362.3, 0.0, 18.0,
	-504.1, 0.0, 18.4, -13.5, 0.0, 0.6,
	628.6, 0.0, -28.7, -11.0, 0.0, -0.0,
	-506.1, 0.0, -2.4, 219.5, 0.0, 5.6,
	789.4, 0.0, -8.7, -339.5, 0.0, -11.6,
	662.3, 0.0, 5.0, -283.1, 0.0, -8.1,
	733.7, 0.0, 19.0, -314.8, 0.0, -12.2,
	459.5, 0.0, 4.7, -198.5, 0.0, -5.5,
	-476.0, 0.0, 13.6, 205.5, 0.0, 9.8,
	580.5, 0.0, 26.9, -247.8, 0.0, 8.6,
	-882.3, 0.0, 5.7, 378.9, 0.0, 5.2,
	478.4, 0.0, 1.8, -204.7, 0.0, 8.6,
	476.3, 0.0, 10.4, -206.5, 0.0, -8.1,
	-384.4, 0.0, -9.4, 166.4, 0.0, 4.5,
	508.9, 0.0, 12.2, -219.6, 0.0, 7.8,
	548.8, 0.0, -21.5, -235.0, 0.0, 2.5,
	-490.9, 0.0, -24.2, 209.4, 0.0, 9.8,
	-816.1, 0.0, 5.5, 350.1, 0.0, 15.5,
	-883.5, 0.0, 27.8, 381.6, 0.0, -10.8,
	805.7, 0.0, 30.7, -346.6, 0.0, 2.3,
	-460.2, 0.0, -8.0, 12.5, 0.0, -0.5,
	649.1, 0.0, 6.2, -279.0, 0.0, -6.4,
	-616.9, 0.0, 11.6, 267.1, 0.0, 5.1,
	796.7, 0.0, 28.0, -341.5, 0.0, -4.1,
	546.5, 0.0, -8.8, -233.4, 0.0, -2.4,
	-843.8, 0.0, 19.7, 363.9, 0.0, 13.2,
	573.4, 0.0, -8.3, -12.6, 0.0, 0.6,
	769.3, 0.0, 9.6, -332.6, 0.0, 9.2,
	-658.2, 0.0, 13.3, 283.6, 0.0, 9.4,
	337.5, 0.0, -12.9, -146.7, 0.0, -5.3,
	433.5, 0.0, -13.2, -185.6, 0.0, -3.2,
	-727.7, 0.0, 35.0, 312.1, 0.0, 2.6,
	-431.0, 0.0, 11.3, 185.7, 0.0, 1.2,
	678.7, 0.0, -29.0, -10.1, 0.0, -0.5,
	-432.9, 0.0, -5.8, 185.7, 0.0, 8.8,
	400.5, 0.0, -9.0, -172.7, 0.0, 5.4,
	-732.6, 0.0, -31.6, 315.2, 0.0, 3.1,
	-317.9, 0.0, 0.4, 136.2, 0.0, 5.9,
	742.0, 0.0, -34.3, -319.9, 0.0, 10.9,
	595.6, 0.0, 8.6, -256.7, 0.0, -11.1,
	723.9, 0.0, 15.2, -311.1, 0.0, -4.6,
	-575.1, 0.0, -15.2, 248.9, 0.0, -6.3,
	424.5, 0.0, -9.3, -181.8, 0.0, -1.8,
	-614.6, 0.0, -23.7, -7.0, 0.0, 0.0,
	698.5, 0.0, 8.2, -300.4, 0.0, 5.2,
	585.6, 0.0, -16.8, -252.0, 0.0, 7.7,
	651.7, 0.0, -30.9, -279.3, 0.0, -13.3,
	628.0, 0.0, 30.8, -269.0, 0.0, -2.9,
	-574.3, 0.0, 8.6, 10.7, 0.0, -0.3,
	528.1, 0.0, 2.6, -228.4, 0.0, -2.4,
	610.4, 0.0, -11.4, -263.0, 0.0, -12.5,
	348.2, 0.0, 5.1, -149.2, 0.0, 6.3,
	327.7, 0.0, 14.5, -141.0, 0.0, 3.6,
	362.7, 0.0, 15.2, -154.8, 0.0, -6.1,
	-300.6, 0.0, -6.6, 129.1, 0.0, -4.3,
	526.3, 0.0, 3.8, -226.4, 0.0, -4.4,
	-291.8, 0.0, 10.3, 126.0, 0.0, 5.8,
	463.8, 0.0, -3.4, -199.4, 0.0, 6.9,
	614.2, 0.0, 15.9, -262.5, 0.0, -9.7,
	-614.7, 0.0, 19.8, 8.3, 0.0, -0.0,
	-280.9, 0.0, -0.0, 3.2, 0.0, -0.2,
	-600.0, 0.0, -0.3, 259.1, 0.0, -9.5,
	-373.0, 0.0, -5.8, 159.9, 0.0, 5.0,
	532.1, 0.0, -19.6, -227.3, 0.0, 6.1,
	509.2, 0.0, -15.3, -217.7, 0.0, 1.6,
	450.7, 0.0, 16.2, -193.8, 0.0, -9.6,
	270.1, 0.0, -11.5, -117.4, 0.0, 1.4,
	406.7, 0.0, -16.9, -175.3, 0.0, 8.7,
	-257.3, 0.0, 7.9, 111.2, 0.0, 5.0,
	508.8, 0.0, -22.6, -216.9, 0.0, 10.2,
	306.3, 0.0, 6.5, -129.8, 0.0, 1.4,
	231.6, 0.0, -5.6, -99.6, 0.0, -0.1,
	-311.6, 0.0, -1.1, 135.6, 0.0, 2.3,
	-472.4, 0.0, -2.1, 201.9, 0.0, 0.2,
	-389.4, 0.0, 11.7, 169.2, 0.0, 5.3,
	314.4, 0.0, 4.7, -136.5, 0.0, 5.7,
	359.0, 0.0, -2.3, -155.0, 0.0, -6.8,
	334.9, 0.0, -15.2, -143.8, 0.0, -0.7,
	-499.0, 0.0, -17.6, 213.1, 0.0, 8.7,
	503.8, 0.0, 19.2, -1.7, 0.0, -0.0,
	223.6, 0.0, -10.3, -95.7, 0.0, -0.5,
	-301.3, 0.0, -7.6, 130.2, 0.0, -1.8,
	485.8, 0.0, 16.8, -208.0, 0.0, 8.0,
	-321.9, 0.0, -5.6, 137.2, 0.0, -3.1,
	-225.7, 0.0, -4.5, 97.4, 0.0, -0.8,
	285.3, 0.0, 4.3, -122.5, 0.0, -3.9,
	-332.2, 0.0, -1.2, 141.4, 0.0, 3.1,
	347.1, 0.0, -10.6, 1.9, 0.0, 0.0,
	-386.6, 0.0, 2.5, 164.9, 0.0, 1.2,
	-220.0, 0.0, -5.2, 93.1, 0.0, -2.8,
	430.9, 0.0, -19.4, -6.6, 0.0, 0.1,
	436.1, 0.0, -9.2, -187.8, 0.0, -4.2,
	428.2, 0.0, -13.0, -183.7, 0.0, -4.7,
	409.0, 0.0, 19.2, 0.7, 0.0, 0.0,
	-256.7, 0.0, 7.5, 110.0, 0.0, -5.4,
	292.6, 0.0, 3.8, -124.7, 0.0, -0.2,
	-395.4, 0.0, 3.9, 170.6, 0.0, 4.2,
	425.2, 0.0, -0.5, -182.9, 0.0, -5.4,
	260.7, 0.0, -3.6, -113.4, 0.0, 0.6,
	-253.5, 0.0, -7.9, -6.2, 0.0, 0.1,
	-303.5, 0.0, -14.0, 131.6, 0.0, 2.9,
	-388.9, 0.0, 15.4, -7.7, 0.0, 0.2,
	-247.1, 0.0, 10.0, 107.9, 0.0, 2.0,
	378.6, 0.0, 9.3, -163.6, 0.0, -4.4,
	-215.4, 0.0, -7.6, 0.0, 0.0, -0.0,
	-353.5, 0.0, -9.5, 152.6, 0.0, 3.1,
	-406.7, 0.0, -15.6, 174.4, 0.0, -3.3,
	383.8, 0.0, -8.9, -163.7, 0.0, 3.0,
	208.4, 0.0, 2.4, -91.2, 0.0, 4.4,
	190.8, 0.0, 0.5, -81.1, 0.0, 1.8,
	394.6, 0.0, -5.1, -167.7, 0.0, -7.0,
	206.5, 0.0, 5.5, -90.4, 0.0, 3.7,
	295.5, 0.0, 10.5, -125.1, 0.0, 1.9,
	196.6, 0.0, -6.8, -84.2, 0.0, 3.6,
	-365.2, 0.0, -1.6, 156.9, 0.0, 3.5,
	-265.1, 0.0, 12.5, 115.7, 0.0, 4.6,
	-220.8, 0.0, 2.0, 95.3, 0.0, 0.6,
	-297.2, 0.0, -14.7, -1.0, 0.0, 0.0,
	-247.0, 0.0, -11.1, 105.0, 0.0, -5.2,
	-149.7, 0.0, 1.0, 62.7, 0.0, -1.8,
	145.2, 0.0, 2.7, -63.2, 0.0, -2.1,
	332.6, 0.0, -9.4, -0.1, 0.0, -0.0,
	353.3, 0.0, 12.7, -152.8, 0.0, 3.0,
	-282.4, 0.0, 6.3, 1.6, 0.0, -0.0,
	308.2, 0.0, 2.6, -4.6, 0.0, 0.2,
	-338.2, 0.0, 1.3, -9.6, 0.0, -0.4,
	185.8, 0.0, 5.6, -79.3, 0.0, 3.8,
	281.4, 0.0, -6.5, -119.4, 0.0, 3.8,
	275.7, 0.0, -13.3, -119.5, 0.0, -3.2,
	-225.5, 0.0, -9.6, 97.7, 0.0, 3.0,
	-157.2, 0.0, -2.2, 69.0, 0.0, -0.2,
	276.2, 0.0, 1.4, -116.9, 0.0, -3.0,
	298.5, 0.0, 3.4, -126.5, 0.0, 4.8,
	-179.9, 0.0, 1.6, 78.9, 0.0, -2.5,
	-295.0, 0.0, 9.5, 126.0, 0.0, -1.3,
	238.3, 0.0, -8.2, 5.4, 0.0, -0.2,
	209.9, 0.0, 4.0, -91.9, 0.0, 3.9,
	193.8, 0.0, 9.2, -83.8, 0.0, -1.7,
	191.1, 0.0, -7.6, -0.8, 0.0, -0.0,
	175.2, 0.0, -2.0, 2.2, 0.0, 0.1,
	-242.2, 0.0, -3.7, 105.8, 0.0, -2.9,
	-155.9, 0.0, 7.0, 66.7, 0.0, -2.1,
	-292.7, 0.0, -13.7, 127.0, 0.0, 0.8,
	-173.9, 0.0, 7.1, 73.3, 0.0, -3.3,
	285.1, 0.0, -3.5, -123.5, 0.0, 0.9,
	137.2, 0.0, -1.8, -59.2, 0.0, -2.8,
	252.5, 0.0, -11.4, -107.0, 0.0, 0.2,
	-247.1, 0.0, -1.4, 104.3, 0.0, 2.6,
	-238.3, 0.0, -2.3, 102.2, 0.0, 4.4,
	231.3, 0.0, -9.0, -2.0, 0.0, 0.0,
	-194.7, 0.0, -8.0, 85.0, 0.0, -3.4,
	-209.3, 0.0, -9.4, 90.6, 0.0, -0.4,
	178.5, 0.0, -4.3, -78.0, 0.0, 3.9,
	-260.3, 0.0, 0.1, 1.3, 0.0, 0.0,
	254.1, 0.0, 3.9, -107.8, 0.0, -2.9,
	259.1, 0.0, -1.9, -109.9, 0.0, -0.2,
	-249.7, 0.0, -8.8, 1.3, 0.0, 0.0,
	197.1, 0.0, -5.3, -83.6, 0.0, 0.1,
	159.2, 0.0, -2.5, -68.2, 0.0, -0.5,
	-183.1, 0.0, 3.3, -2.5, 0.0, -0.0,
	202.0, 0.0, 7.4, -86.3, 0.0, -3.3,
	-144.6, 0.0, 1.5, -0.6, 0.0, 0.0,
	-135.3, 0.0, 1.2, 57.1, 0.0, 2.4,
	-212.2, 0.0, -4.2, 0.9, 0.0, -0.0,
	-101.8, 0.0, -0.5, -2.2, 0.0, 0.1,
	-195.1, 0.0, -2.7, 85.7, 0.0, 1.2,
	224.2, 0.0, 5.5, -95.5, 0.0, 3.7,
	-218.0, 0.0, -7.5, 94.5, 0.0, 1.2,
	194.0, 0.0, -4.3, -82.6, 0.0, 3.8,
	-150.0, 0.0, 2.1, 63.9, 0.0, 1.5,
	162.3, 0.0, 1.7, -69.8, 0.0, 0.5,
	-118.5, 0.0, -5.3, 50.0, 0.0, 0.8,
	179.1, 0.0, 7.8, -77.0, 0.0, 3.3,
	124.7, 0.0, 4.8, -54.5, 0.0, 1.4,
	-107.9, 0.0, -3.3, 47.8, 0.0, -2.0,
	-139.0, 0.0, 0.6, 59.3, 0.0, -0.9,
	212.2, 0.0, -5.1, -91.0, 0.0, -1.0,
	187.0, 0.0, -1.9, -78.8, 0.0, 2.9,
	-196.2, 0.0, -0.9, 85.2, 0.0, 1.3,
	105.6, 0.0, 2.1, -43.7, 0.0, -2.1,
	159.6, 0.0, 0.1, 0.5, 0.0, -0.0,
	136.5, 0.0, 3.3, -56.8, 0.0, 0.9,
	203.8, 0.0, 1.4, -1.5, 0.0, -0.0,
	85.6, 0.0, 1.9, 1.3, 0.0, 0.0,
	127.1, 0.0, 3.4, -54.3, 0.0, 0.5,
	-105.1, 0.0, 1.1, 43.9, 0.0, -0.5,
	93.4, 0.0, -1.3, -0.6, 0.0, 0.0,
	-190.5, 0.0, 1.8, -0.5, 0.0, 0.0,
	116.8, 0.0, 4.2, -51.0, 0.0, 2.3,
	-113.0, 0.0, 4.5, -3.1, 0.0, -0.1,
	-113.8, 0.0, -2.8, 47.0, 0.0, 0.7,
	82.3, 0.0, 3.8, -36.1, 0.0, 1.3,
	-174.3, 0.0, 5.4, 73.6, 0.0, 2.6,
	185.9, 0.0, 0.7, -1.3, 0.0, 0.0,
	-165.9, 0.0, -5.6, -1.2, 0.0, 0.0,
	-136.6, 0.0, -2.3, 57.3, 0.0, 2.3,
	128.6, 0.0, -3.6, -54.4, 0.0, -0.6,
	-108.1, 0.0, -2.8, 47.2, 0.0, 0.3,
	94.6, 0.0, -1.8, -42.5, 0.0, -0.7,
	-110.9, 0.0, 3.1, 47.0, 0.0, -2.2,
	-118.2, 0.0, 5.1, 50.0, 0.0, -1.4,
	-142.0, 0.0, 2.8, 60.4, 0.0, -1.3,
	-110.7, 0.0, -1.7, 48.8, 0.0, -2.4,
	-119.3, 0.0, 3.9, 51.3, 0.0, -2.4,
	122.4, 0.0, -5.6, -50.7, 0.0, 2.5,
	96.4, 0.0, 0.4, -40.1, 0.0, -1.7,
	68.7, 0.0, 1.5, -29.0, 0.0, -0.1,
	144.5, 0.0, 3.0, -1.4, 0.0, -0.0,
	-99.2, 0.0, 0.4, 41.9, 0.0, -0.9,
	138.7, 0.0, 0.7, 2.3, 0.0, -0.0,
	139.9, 0.0, 3.3, -60.4, 0.0, 1.5,
	143.3, 0.0, -2.9, -62.1, 0.0, 2.8,
	-126.3, 0.0, -4.8, 0.5, 0.0, -0.0,
	125.2, 0.0, 5.5, -53.6, 0.0, -1.6,
	-98.6, 0.0, 4.6, 41.9, 0.0, 0.1,
	-127.3, 0.0, -2.9, 55.2, 0.0, 0.2,
	-118.2, 0.0, 4.9, 51.5, 0.0, 2.1,
	60.2, 0.0, -1.0, -26.6, 0.0, -0.5,
	-105.2, 0.0, -0.5, 44.5, 0.0, -1.6,
	98.8, 0.0, 1.6, 2.8, 0.0, 0.1,
	-138.9, 0.0, 2.3, 58.9, 0.0, -0.3,
	109.9, 0.0, -1.8, -46.1, 0.0, -1.7,
	-85.5, 0.0, 2.0, 35.5, 0.0, 1.0,
	70.6, 0.0, 1.7, -28.7, 0.0, 0.6,
	-120.8, 0.0, 4.7, 52.5, 0.0, 0.4,
	136.3, 0.0, 4.2, -57.9, 0.0, 2.3,
	-99.9, 0.0, 0.9, 2.0, 0.0, 0.0,
	89.2, 0.0, -1.1, -37.9, 0.0, -1.1,
	-55.8, 0.0, 2.1, -1.3, 0.0, -0.1,
	-90.5, 0.0, -0.6, 39.3, 0.0, -1.3,
	-110.0, 0.0, 2.4, -0.9, 0.0, 0.0,
	114.7, 0.0, 4.6, -49.4, 0.0, 2.3,
	99.7, 0.0, 1.8, -43.9, 0.0, -1.6,
	-69.7, 0.0, -1.4, 31.7, 0.0, -0.1,
	-126.6, 0.0, -0.1, 56.4, 0.0, 0.4,
	55.6, 0.0, 1.4, -23.7, 0.0, 0.4,
	54.2, 0.0, -2.3, -23.5, 0.0, 0.5,
	95.3, 0.0, 2.4, 0.1, 0.0, -0.0,
	-90.9, 0.0, 1.6, 37.2, 0.0, 0.2,
	-63.7, 0.0, 2.6, 25.7, 0.0, -0.7,
	119.9, 0.0, 1.6, -49.9, 0.0, 1.4,
	-48.7, 0.0, -0.5, 22.7, 0.0, -0.4,
	100.8, 0.0, -1.9, -44.6, 0.0, 1.8,
	99.5, 0.0, -3.3, -43.4, 0.0, -0.7,
	66.2, 0.0, -2.3, -27.3, 0.0, 0.5,
	-100.3, 0.0, -4.8, 3.0, 0.0, 0.0,
	94.6, 0.0, 1.1, -40.9, 0.0, 1.2,
	102.5, 0.0, 3.0, -43.7, 0.0, 1.6,
	-81.5, 0.0, -2.9, 33.9, 0.0, -0.5,
	79.0, 0.0, -1.2, -33.9, 0.0, 1.5,
	-87.1, 0.0, -1.6, 36.3, 0.0, -0.6,
	100.6, 0.0, 2.1, -44.5, 0.0, 0.8,
	51.7, 0.0, -0.4, -24.2, 0.0, -0.1,
	91.0, 0.0, 4.3, -41.0, 0.0, 1.3,
	-63.4, 0.0, -2.7, 27.6, 0.0, 1.0,
	-44.2, 0.0, -1.1, 18.1, 0.0, -0.7,
	79.0, 0.0, -3.3, -32.9, 0.0, 1.0,
	-55.3, 0.0, -1.9, 23.6, 0.0, -0.4,
	96.9, 0.0, -4.7, -43.7, 0.0, -1.0,
	62.0, 0.0, -2.0, -25.5, 0.0, -0.9,
	51.2, 0.0, 1.1, -1.4, 0.0, -0.1,
	44.2, 0.0, 0.5, -20.5, 0.0, -1.0,
	-84.1, 0.0, -2.5, 0.3, 0.0, 0.0,
	46.0, 0.0, 2.2, 0.6, 0.0, 0.0,
	80.1, 0.0, -1.5, -1.9, 0.0, -0.1,
	-84.5, 0.0, -1.1, 36.7, 0.0, -1.6,
	-53.0, 0.0, 1.0, 24.0, 0.0, 0.3,
	39.2, 0.0, -1.7, -17.1, 0.0, 0.1,
	67.1, 0.0, -3.1, -29.8, 0.0, -1.2,
	39.6, 0.0, -1.8, -18.9, 0.0, 0.1,
	-40.0, 0.0, 1.0, 18.5, 0.0, 0.9,
	-71.1, 0.0, -2.7, 29.9, 0.0, -0.4,
	65.5, 0.0, 2.2, -29.3, 0.0, 1.1,
	82.9, 0.0, -3.1, -1.4, 0.0, -0.0,
	-72.6, 0.0, 1.2, 30.3, 0.0, 1.4,
	87.5, 0.0, 1.2, -37.2, 0.0, -0.1,
	60.3, 0.0, -2.1, -26.9, 0.0, 0.3,
	-51.4, 0.0, 2.3, 21.5, 0.0, 0.4,
	59.7, 0.0, 1.6, -27.5, 0.0, -0.2,
	-79.6, 0.0, 2.3, 34.4, 0.0, -0.1,
	42.2, 0.0, -1.0, -17.1, 0.0, 0.6,
	67.3, 0.0, 0.6, -27.0, 0.0, 0.4,
	66.8, 0.0, 3.2, -2.0, 0.0, -0.0,
	34.0, 0.0, -0.6, -0.6, 0.0, 0.0,
	56.3, 0.0, -0.9, -23.9, 0.0, 0.6,
	36.8, 0.0, -1.3, -15.9, 0.0, -0.5,
	34.5, 0.0, 0.6, -16.2, 0.0, -0.0,
	-71.1, 0.0, 3.0, 32.4, 0.0, -1.2,
	66.5, 0.0, -0.8, 0.9, 0.0, 0.0,
	44.7, 0.0, -0.9, -17.9, 0.0, 0.9,
	-48.5, 0.0, 0.2, 21.5, 0.0, -0.5,
	-54.8, 0.0, -1.1, 22.2, 0.0, 0.4,
	-62.4, 0.0, -1.4, 26.5, 0.0, -0.2,
	67.4, 0.0, 2.9, 0.5, 0.0, 0.0,
	51.6, 0.0, 0.5, -20.4, 0.0, 0.8,
	66.2, 0.0, 2.8, -29.8, 0.0, 0.0,
	-31.6, 0.0, 1.1, 14.8, 0.0, -0.4,
	51.3, 0.0, -2.5, -22.7, 0.0, 0.7,
	-35.1, 0.0, -1.1, 15.6, 0.0, -0.7,
	-66.1, 0.0, 2.3, 26.9, 0.0, -0.7,
	-62.1, 0.0, -0.2, 28.0, 0.0, 0.1,
	-66.3, 0.0, -2.7, 27.3, 0.0, -0.5,
	37.7, 0.0, 1.4, -17.1, 0.0, -0.8,
	-37.2, 0.0, 0.1, 0.3, 0.0, 0.0,
	-37.9, 0.0, 0.1, 17.5, 0.0, 0.7,
	-29.0, 0.0, 1.3, 14.2, 0.0, 0.6,
	32.8, 0.0, 0.0, -0.3, 0.0, -0.0,
	58.2, 0.0, 0.1, 0.9, 0.0, 0.0,
	43.1, 0.0, 1.4, 0.8, 0.0, -0.0,
	63.4, 0.0, 2.9, -0.4, 0.0, 0.0,
	-44.9, 0.0, 1.7, 21.2, 0.0, -0.5,
	-38.3, 0.0, 1.0, 1.0, 0.0, 0.0,
	-48.9, 0.0, -0.8, 22.7, 0.0, 0.0,
	45.9, 0.0, -1.5, -19.7, 0.0, 0.7,
	-26.5, 0.0, -0.8, 11.7, 0.0, 0.1,
	59.9, 0.0, 2.1, -27.4, 0.0, 0.1,
	29.7, 0.0, 1.0, 0.6, 0.0, 0.0,
	44.1, 0.0, -1.4, -18.7, 0.0, 0.1,
	-47.0, 0.0, 1.7, 0.7, 0.0, -0.0,
	35.1, 0.0, -1.5, -17.0, 0.0, 0.8,
	57.6, 0.0, 1.2, -25.1, 0.0, 0.9,
	-43.6, 0.0, 1.2, 0.5, 0.0, 0.0,
	-27.6, 0.0, -1.0, 0.2, 0.0, -0.0,
	55.6, 0.0, -0.6, 0.9, 0.0, -0.0,
	-49.6, 0.0, 0.1, 19.6, 0.0, -0.3,
	36.7, 0.0, -0.8, -13.8, 0.0, 0.1,
	-52.8, 0.0, -0.1, 23.6, 0.0, -0.8,
	28.4, 0.0, -0.7, -13.6, 0.0, -0.4,
	50.7, 0.0, -0.4, -19.8, 0.0, 0.2,
	23.7, 0.0, -0.6, -10.8, 0.0, 0.1,
	-44.6, 0.0, -0.2, 20.1, 0.0, -0.3,
	-41.8, 0.0, 1.4, 17.3, 0.0, -0.8,
	47.8, 0.0, -1.7, 1.3, 0.0, -0.0,
	52.0, 0.0, -2.1, -1.2, 0.0, 0.0,
	-34.8, 0.0, -0.9, 15.6, 0.0, 0.1,
	44.9, 0.0, 0.8, -20.9, 0.0, 1.0,
	-24.1, 0.0, -1.0, 12.1, 0.0, 0.4,
	44.2, 0.0, 0.4, -19.5, 0.0, 0.8,
	35.4, 0.0, 1.4, -15.4, 0.0, 0.2,
	-47.8, 0.0, 0.7, 20.5, 0.0, 1.0,
	-46.4, 0.0, 2.2, -0.1, 0.0, -0.0,
	-33.2, 0.0, -0.6, 0.6, 0.0, 0.0,
	31.5, 0.0, 0.4, -11.8, 0.0, 0.0,
	30.8, 0.0, 0.6, -11.8, 0.0, -0.2,
	23.2, 0.0, -0.8, 0.4, 0.0, 0.0,
	46.5, 0.0, -0.7, -19.6, 0.0, -0.2,
	32.2, 0.0, -1.3, -13.9, 0.0, -0.0,
	-28.7, 0.0, -0.7, 10.5, 0.0, -0.1,
	35.9, 0.0, -0.6, -0.8, 0.0, 0.0,
	-21.6, 0.0, 0.2, 7.8, 0.0, -0.3,
	-37.1, 0.0, 0.5, 17.9, 0.0, -0.4,
	-31.6, 0.0, 0.0, 12.3, 0.0, 0.2,
	-25.0, 0.0, -1.2, 11.7, 0.0, -0.0,
	34.2, 0.0, 1.4, -16.3, 0.0, -0.4,
	-30.5, 0.0, 1.5, 0.8, 0.0, 0.0,
	20.0, 0.0, 0.1, -9.2, 0.0, -0.1,
	-35.7, 0.0, -0.3, 14.7, 0.0, 0.3,
	-32.6, 0.0, -1.6, 15.3, 0.0, 0.2,
	-23.4, 0.0, -1.1, 11.1, 0.0, -0.2,
	-17.5, 0.0, -0.6, -0.1, 0.0, -0.0,
	-37.9, 0.0, 0.6, 1.0, 0.0, 0.0,
	-34.0, 0.0, -0.9, 14.1, 0.0, -0.4,
	-20.0, 0.0, -0.2, 7.6, 0.0, 0.0,
	-29.0, 0.0, 0.6, 13.3, 0.0, 0.3,
	36.0, 0.0, 1.5, -15.3, 0.0, 0.1,
	-19.7, 0.0, 0.7, -0.5, 0.0, -0.0,
	-17.1, 0.0, 0.7, -0.0, 0.0, 0.0,
	-24.0, 0.0, 0.6, 8.6, 0.0, -0.3,
	-37.1, 0.0, 1.2, 14.2, 0.0, -0.4,
	-26.4, 0.0, 1.2, 10.1, 0.0, 0.4,
	-36.4, 0.0, -1.3, 0.4, 0.0, -0.0,
	-16.0, 0.0, -0.5, 6.7, 0.0, -0.1,
	-24.6, 0.0, 0.9, 10.6, 0.0, 0.3,
	-35.2, 0.0, 0.1, 14.0, 0.0, 0.4,
	19.1, 0.0, 0.5, -8.8, 0.0, -0.2,
	22.6, 0.0, 0.5, -10.5, 0.0, 0.2,
	30.8, 0.0, 0.7, -12.1, 0.0, -0.1,
	-30.9, 0.0, -0.7, 12.7, 0.0, -0.0,
	-19.8, 0.0, -0.1, -0.5, 0.0, -0.0,
	-14.3, 0.0, 0.4, 7.0, 0.0, 0.1,
	-33.3, 0.0, -1.6, 12.5, 0.0, -0.6,
	-22.8, 0.0, -1.0, 8.9, 0.0, -0.1,
	-13.7, 0.0, -0.5, 5.3, 0.0, 0.0,
	-15.8, 0.0, 0.7, -0.1, 0.0, -0.0,
	24.8, 0.0, 0.2, -12.0, 0.0, 0.6,
	24.8, 0.0, -1.1, -12.6, 0.0, 0.5,
	-14.6, 0.0, 0.3, 6.4, 0.0, -0.1,
	-18.2, 0.0, 0.5, 0.2, 0.0, -0.0,
	17.4, 0.0, 0.1, -5.7, 0.0, 0.1,
	28.5, 0.0, 1.0, -13.9, 0.0, 0.6,
	-18.1, 0.0, 0.2, 6.1, 0.0, 0.2,
	-15.1, 0.0, -0.6, 0.3, 0.0, -0.0,
	-25.8, 0.0, 0.0, 11.8, 0.0, -0.5,
	-21.4, 0.0, -0.3, 7.9, 0.0, 0.1,
	16.2, 0.0, 0.4, -5.3, 0.0, 0.1,
	-13.0, 0.0, 0.5, 5.0, 0.0, 0.0,
	-11.8, 0.0, 0.4, 6.8, 0.0, 0.1,
	-15.9, 0.0, -0.7, -0.1, 0.0, 0.0,
	15.0, 0.0, 0.4, -0.4, 0.0, 0.0,
	-19.8, 0.0, 0.2, -0.3, 0.0, 0.0,
	-17.5, 0.0, -0.7, 5.9, 0.0, 0.0,
	-23.0, 0.0, -0.1, 11.1, 0.0, 0.4,
	25.8, 0.0, 0.9, -12.2, 0.0, 0.2,
	-24.7, 0.0, 0.8, 12.5, 0.0, -0.3,
	-23.2, 0.0, -0.4, 9.8, 0.0, -0.2,
	-12.0, 0.0, -0.1, 3.4, 0.0, 0.1,
	26.5, 0.0, -0.5, -10.0, 0.0, -0.3,
	13.4, 0.0, 0.2, -5.8, 0.0, 0.1,
	-22.4, 0.0, -0.7, 0.6, 0.0, -0.0,
	-25.7, 0.0, 0.5, 11.0, 0.0, -0.3,
	-16.9, 0.0, 0.7, 0.1, 0.0, 0.0,
	19.7, 0.0, -0.1, -6.8, 0.0, 0.2,
	22.2, 0.0, 0.8, -8.1, 0.0, -0.1,
	-18.9, 0.0, 0.8, 9.9, 0.0, -0.5,
	-19.5, 0.0, -0.2, -0.5, 0.0, 0.0,
	21.5, 0.0, -0.1, 0.3, 0.0, 0.0,
	-18.2, 0.0, -0.5, 7.9, 0.0, 0.1,
	20.4, 0.0, 0.9, -10.2, 0.0, -0.4,
	11.7, 0.0, 0.5, -0.1, 0.0, 0.0,
	10.3, 0.0, -0.3, -2.9, 0.0, -0.1,
	-20.3, 0.0, 0.4, 7.3, 0.0, -0.2,
	18.0, 0.0, -0.6, -7.2, 0.0, 0.1,
	-17.8, 0.0, 0.2, 8.3, 0.0, -0.3,
	-20.8, 0.0, 0.2, 0.4, 0.0, -0.0,
	18.5, 0.0, 0.9, -6.4, 0.0, -0.0,
	11.0, 0.0, -0.0, -5.9, 0.0, -0.2,
	17.1, 0.0, -0.7, -5.6, 0.0, -0.0,
	-15.7, 0.0, 0.1, -0.0, 0.0, 0.0,
	-17.6, 0.0, -0.2, 0.1, 0.0, 0.0,
	20.8, 0.0, -0.1, -10.2, 0.0, 0.0,
	12.4, 0.0, 0.6, -5.6, 0.0, -0.1,
	14.3, 0.0, 0.4, -7.6, 0.0, -0.1,
	18.6, 0.0, 0.3, -8.5, 0.0, -0.2,
	12.4, 0.0, 0.3, -0.2, 0.0, 0.0,
	-19.3, 0.0, 0.1, 0.0, 0.0, -0.0,
	-16.0, 0.0, -0.7, 5.1, 0.0, -0.1,
	8.4, 0.0, -0.1, -4.4, 0.0, -0.2,
	-13.6, 0.0, 0.5, 4.3, 0.0, 0.1,
	8.4, 0.0, 0.2, -2.0, 0.0, -0.1,
	13.1, 0.0, 0.0, -4.5, 0.0, -0.1,
	11.8, 0.0, -0.1, 0.2, 0.0, -0.0,
	14.2, 0.0, -0.2, -6.2, 0.0, -0.1,
	11.4, 0.0, -0.1, 0.2, 0.0, -0.0,
	11.5, 0.0, -0.1, -6.8, 0.0, -0.1,
	16.8, 0.0, 0.2, -8.4, 0.0, 0.4,
	7.9, 0.0, -0.3, -2.3, 0.0, 0.0,
	11.2, 0.0, -0.5, -6.2, 0.0, -0.0,
	-15.5, 0.0, 0.2, 6.2, 0.0, 0.3,
	-15.6, 0.0, -0.1, 5.0, 0.0, -0.1,
	11.6, 0.0, -0.0, -3.2, 0.0, -0.1,
	15.6, 0.0, 0.1, -5.2, 0.0, 0.1,
	-9.0, 0.0, 0.4, 5.1, 0.0, 0.2,
	-13.9, 0.0, -0.2, 7.8, 0.0, 0.2,
	-17.5, 0.0, -0.7, 6.9, 0.0, 0.1,
	-11.3, 0.0, 0.4, 3.7, 0.0, 0.0,
	-10.4, 0.0, -0.3, -0.3, 0.0, 0.0,
	-12.1, 0.0, -0.0, 6.9, 0.0, -0.1,
	10.0, 0.0, -0.2, -4.9, 0.0, -0.0,
	-13.8, 0.0, 0.5, 4.6, 0.0, -0.2,
	-15.9, 0.0, 0.1, -0.2, 0.0, 0.0,
	8.5, 0.0, -0.2, -4.1, 0.0, -0.0,
	-10.7, 0.0, -0.5, 5.4, 0.0, -0.1,
	-9.2, 0.0, -0.3, 4.3, 0.0, -0.0,
	-11.3, 0.0, -0.0, 4.3, 0.0, 0.1,
	7.0, 0.0, 0.2, -1.6, 0.0, -0.1,
	6.3, 0.0, -0.3, 0.1, 0.0, 0.0,
	14.6, 0.0, 0.4, 0.2, 0.0, -0.0,
	14.0, 0.0, 0.2, -5.4, 0.0, 0.1,
	11.3, 0.0, 0.1, -0.0, 0.0, 0.0,
	-11.2, 0.0, -0.1, 4.4, 0.0, -0.2,
	10.9, 0.0, 0.3, -4.4, 0.0, -0.1,
	-8.6, 0.0, -0.1, 0.2, 0.0, 0.0,
	13.4, 0.0, -0.1, -5.4, 0.0, 0.2,
	-13.4, 0.0, -0.1, 4.3, 0.0, -0.1,
	-13.6, 0.0, 0.7, 6.4, 0.0, 0.2,
	-13.9, 0.0, -0.4, 4.7, 0.0, 0.0,
	-10.8, 0.0, -0.2, 2.8, 0.0, -0.1,
	-9.5, 0.0, 0.4, 2.4, 0.0, 0.0,
	11.9, 0.0, 0.1, 0.2, 0.0, -0.0,
	7.4, 0.0, 0.1, -2.7, 0.0, -0.1,
	-6.3, 0.0, -0.2, 4.0, 0.0, -0.1,
	-7.3, 0.0, 0.1, 4.1, 0.0, 0.0,
	8.6, 0.0, 0.1, 0.2, 0.0, -0.0,
	8.7, 0.0, -0.1, -3.9, 0.0, -0.0,
	-13.1, 0.0, -0.4, 7.1, 0.0, -0.2,
	-11.4, 0.0, -0.2, 0.3, 0.0, -0.0,
	8.5, 0.0, -0.4, -2.1, 0.0, 0.1,
	8.3, 0.0, 0.3, -1.6, 0.0, -0.0,
	-10.3, 0.0, -0.2, 6.4, 0.0, 0.1,
	-10.6, 0.0, -0.5, -0.2, 0.0, -0.0,
	-11.3, 0.0, -0.2, 3.9, 0.0, 0.0,
	5.6, 0.0, 0.2, -2.7, 0.0, -0.1,
	9.3, 0.0, 0.1, -4.4, 0.0, -0.2,
	-8.4, 0.0, 0.1, 3.1, 0.0, -0.1,
	-5.2, 0.0, 0.1, 2.0, 0.0, -0.1,
	9.2, 0.0, 0.0, -4.2, 0.0, -0.2,
	-10.0, 0.0, 0.5, 0.1, 0.0, 0.0,
	11.7, 0.0, 0.0, -3.3, 0.0, -0.1,
	-9.1, 0.0, -0.4, 2.8, 0.0, 0.1,
	-9.6, 0.0, -0.4, 2.5, 0.0, -0.0,
	7.0, 0.0, -0.1, -2.6, 0.0, 0.1,
	4.9, 0.0, -0.2, -1.9, 0.0, -0.0,
	-8.0, 0.0, 0.2, -0.2, 0.0, -0.0,
	-5.3, 0.0, -0.1, 0.9, 0.0, 0.0,
	-6.5, 0.0, -0.0, 1.0, 0.0, 0.0,
	-7.7, 0.0, 0.1, 3.3, 0.0, 0.1,
	-10.4, 0.0, -0.0, 0.2, 0.0, -0.0,
	6.3, 0.0, -0.2, -0.1, 0.0, -0.0,
	9.5, 0.0, -0.2, -2.5, 0.0, 0.1,
	-5.2, 0.0, -0.2, 1.1, 0.0, -0.0,
	9.2, 0.0, 0.0, -5.7, 0.0, -0.3,
	-4.3, 0.0, -0.0, 3.1, 0.0, -0.0,
	-9.4, 0.0, -0.2, 3.9, 0.0, -0.0,
	7.2, 0.0, 0.4, -5.1, 0.0, -0.2,
	-6.4, 0.0, -0.3, 2.1, 0.0, 0.0,
	9.1, 0.0, 0.3, -5.0, 0.0, 0.2,
	-6.8, 0.0, -0.3, 4.8, 0.0, 0.1,
	-9.6, 0.0, -0.3, 5.7, 0.0, -0.1,
	6.8, 0.0, 0.0, -2.2, 0.0, 0.1,
	6.8, 0.0, 0.3, -3.9, 0.0, 0.2,
	-9.1, 0.0, 0.4, 4.8, 0.0, 0.0,
	3.9, 0.0, -0.1, -3.5, 0.0, -0.1,
	-7.4, 0.0, -0.2, 2.0, 0.0, 0.1,
	7.3, 0.0, -0.2, -0.0, 0.0, 0.0,
	7.7, 0.0, 0.3, -4.0, 0.0, -0.1,
	6.0, 0.0, 0.2, -1.3, 0.0, 0.0,
	3.7, 0.0, -0.1, -3.0, 0.0, -0.0,
	8.9, 0.0, 0.4, 0.0, 0.0, -0.0,
	-5.6, 0.0, -0.1, 3.2, 0.0, 0.1,
	-5.4, 0.0, 0.2, -0.1, 0.0, -0.0,
	6.0, 0.0, 0.1, -3.8, 0.0, -0.0,
	-5.8, 0.0, -0.1, 1.2, 0.0, 0.0,
	-8.2, 0.0, -0.2, -0.2, 0.0, 0.0,
	4.7, 0.0, 0.1, 0.1, 0.0, 0.0,
	7.8, 0.0, 0.2, -0.0, 0.0, 0.0,
	4.2, 0.0, 0.0, -3.2, 0.0, -0.0,
	-5.0, 0.0, -0.1, 0.3, 0.0, -0.0,
	7.5, 0.0, -0.2, -3.1, 0.0, -0.1,
	4.7, 0.0, -0.1, -1.7, 0.0, 0.1,
	-7.2, 0.0, -0.1, 4.2, 0.0, 0.1,
	7.0, 0.0, -0.1, -2.9, 0.0, 0.0,
	-6.0, 0.0, -0.1, 3.5, 0.0, -0.2,
	5.2, 0.0, 0.2, 0.1, 0.0, 0.0,
	6.8, 0.0, -0.1, 0.1, 0.0, -0.0,
	-6.9, 0.0, -0.1, 0.1, 0.0, 0.0,
	-3.7, 0.0, 0.0, 2.4, 0.0, -0.0,
	4.7, 0.0, -0.2, -1.4, 0.0, -0.1,
	3.6, 0.0, 0.1, -2.0, 0.0, 0.0,
	6.7, 0.0, -0.1, -1.9, 0.0, 0.0,
	3.4, 0.0, -0.0, -1.7, 0.0, 0.0,
	-3.6, 0.0, 0.1, 1.6, 0.0, 0.0,
	-6.1, 0.0, -0.0, 3.9, 0.0, 0.1,
	-3.1, 0.0, -0.1, 1.1, 0.0, -0.0,
	-3.9, 0.0, 0.2, -0.1, 0.0, -0.0,
	-5.3, 0.0, -0.0, 0.4, 0.0, 0.0,
	5.2, 0.0, -0.1, -0.6, 0.0, 0.0,
	-6.0, 0.0, 0.1, -0.0, 0.0, 0.0,
	-5.9, 0.0, 0.2, 2.8, 0.0, -0.0,
	-3.0, 0.0, 0.1, 1.3, 0.0, -0.0,
	-3.7, 0.0, -0.0, -0.0, 0.0, -0.0,
	-6.5, 0.0, 0.1, 0.1, 0.0, -0.0,
	-5.1, 0.0, -0.2, 2.4, 0.0, 0.1,
	4.0, 0.0, 0.1, -1.6, 0.0, 0.0,
	4.6, 0.0, 0.1, -0.1, 0.0, 0.0,
	-3.0, 0.0, -0.1, 1.3, 0.0, -0.1,
	-5.7, 0.0, -0.2, -0.1, 0.0, 0.0,
	-4.7, 0.0, 0.2, 3.8, 0.0, 0.0,
	2.8, 0.0, 0.1, -1.2, 0.0, -0.0,
	-5.7, 0.0, -0.1, 2.3, 0.0, 0.1,
	4.9, 0.0, -0.2, -2.5, 0.0, 0.1,
	-5.9, 0.0, 0.1, 2.4, 0.0, 0.1,
	-4.8, 0.0, -0.0, 1.0, 0.0, -0.0,
	3.0, 0.0, 0.0, -1.0, 0.0, 0.0,
	-3.6, 0.0, -0.0, 2.2, 0.0, 0.0,
	-5.8, 0.0, 0.3, 1.0, 0.0, 0.0,
	3.8, 0.0, 0.1, -1.5, 0.0, 0.0,
	3.7, 0.0, 0.1, 0.2, 0.0, 0.0,
	4.7, 0.0, -0.2, 0.1, 0.0, 0.0,
	-4.1, 0.0, 0.0, 3.0, 0.0, 0.1,
	-3.7, 0.0, 0.2, 0.2, 0.0, 0.0,
	2.3, 0.0, -0.0, -0.6, 0.0, 0.0,
	4.2, 0.0, 0.2, -2.6, 0.0, 0.0,
	-2.8, 0.0, -0.1, -0.2, 0.0, -0.0,
	4.7, 0.0, -0.1, -1.1, 0.0, -0.0,
	-5.3, 0.0, 0.2, 1.7, 0.0, -0.0,
	2.9, 0.0, 0.1, -1.4, 0.0, 0.1,
	4.5, 0.0, 0.2, -3.5, 0.0, -0.1,
	-3.3, 0.0, -0.1, 3.3, 0.0, 0.1,
}

var mult00PL = []int16{
	0, 0, 0, 0, 0, 0, 0, 8, -16, 4, 5, 0, 0, 0,
	0, 0, 0, 0, 0, 0, -8, 16, -4, -5, 0, 0, 0, 2,
	0, 0, 0, 0, 0, 0, 8, -16, 4, 5, 0, 0, 0, 2,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, -1, 2,
	0, 0, 0, 0, 0, 0, 0, -1, 2, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, -2, 5, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 4, -8, 3, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 1, -1, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 2, 0, -2, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 1, 0, -1, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0,
	0, 0, 1, -1, 1, 0, 0, -1, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 1, -1, 1, 0, -1, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 3, -8, 3, 0, 0, 0, 0,
	2, 0, 0, -2, 1, 0, -3, 0, 0, 0, 0, 0, 0, 0,
	1, 0, 0, -1, 0, 0, -3, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 1, -1, 2, 0, 0, -1, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 2, -4, 0, 0, 0, 0, 0,
	1, 0, 0, 0, 0, 1, -8, 4, 1, -3, 0, 0, 1, 1,
	0, 0, -1, 1, 0, 1, -2, -3, -1, -5, -1, 3, 0, 0,
	1, 0, -2, 0, 1, 0, -2, 4, 0, 0, -2, 0, -1, 0,
	0, 0, 1, -1, 2, -1, -1, -16, 0, 0, 5, 1, -1, 1,
	0, 0, -1, 0, 1, -1, 2, 16, 0, 1, -1, 3, 0, 0,
	0, 0, -2, 2, 0, 0, 0, -4, -4, 0, -2, 1, 0, 2,
	1, 0, -2, -1, 1, 1, 0, -1, 2, -3, 5, 3, 0, 1,
	2, 0, 0, 1, 1, 0, -1, -2, -1, 2, 1, 3, 0, 1,
	0, 0, 0, 0, 0, 0, 0, -3, 0, 5, 0, 0, 0, 2,
	1, 0, 0, 2, 1, -1, -8, 3, 2, 0, 2, 0, 0, 1,
	-2, 0, 2, -2, 1, 1, 0, -2, 2, -5, 2, -1, 0, 2,
	0, 0, 1, 0, 0, 1, 1, 3, 0, 1, 0, 3, 0, 0,
	1, 0, -1, 1, 0, 0, 2, 2, 4, -2, 0, -1, 0, 1,
	0, 0, 0, 1, 1, 0, 0, 3, 0, -2, 0, 3, 0, 0,
	0, 0, 2, 1, 2, 1, -1, -2, -1, -2, 0, 0, 0, 0,
	0, 0, 0, 0, 1, 0, 1, 0, 0, -1, -5, 3, 0, 1,
	0, 0, 0, 0, 0, 0, -8, -4, 4, 3, 0, 1, 0, 1,
	-2, 0, 1, 1, 0, 1, 0, 2, 8, -5, 2, -3, 0, 2,
	1, 0, 0, 0, 0, -1, 0, -1, -1, 3, 0, -1, 0, 1,
	0, 0, 2, 0, 1, 0, -3, -16, 4, 0, 5, 0, 0, 0,
	0, 0, 0, 0, 1, 0, 8, 3, 0, 5, -2, -3, 0, 2,
	1, 0, 0, 1, 2, -1, 2, 1, -1, 3, 5, 0, 0, 0,
	1, 0, 1, 2, 1, 0, -2, 1, -4, 2, 2, 0, 0, 0,
	-2, 0, -2, 2, 1, -1, 0, -16, 0, 0, 0, -3, 1, 0,
	0, 0, 0, -1, 1, -1, -3, 1, 2, -5, 0, 0, 1, 2,
	0, 0, -1, -2, 2, 0, 3, 4, 0, 0, 2, 0, 0, 0,
	0, 0, 0, 0, 2, 0, 2, 0, 4, 0, 0, 3, -1, 0,
	0, 0, -2, -2, 1, 1, -8, 0, -4, 5, 0, 1, -1, 0,
	0, 0, 0, 1, 1, 1, 0, -2, 8, 0, 0, 0, 0, 2,
	1, 0, 0, 0, 0, 0, -8, -1, -8, 0, 0, 0, 0, 0,
	0, 0, 1, -1, 2, 0, 2, -3, 1, 1, 0, 1, 0, 0,
	-2, 0, 0, 0, 1, 1, 0, 16, -4, 0, 0, 0, 0, 0,
	0, 0, 0, 2, 1, 0, 0, 1, -1, 1, 0, -3, 0, 0,
	-2, 0, 2, 0, 0, 0, -8, 0, 0, -2, -5, -3, 0, 1,
	0, 0, 0, 0, 1, -1, 1, 16, 0, 0, 0, 0, 0, 1,
	0, 0, 1, 1, 1, 0, -3, -3, 1, 1, 0, -3, 0, 1,
	-1, 0, -1, -2, 0, 0, -3, 2, -1, -2, 1, -3, -1, 1,
	0, 0, -1, 0, 1, 0, 2, 16, 0, 1, 0, 1, 1, 1,
	0, 0, 0, 0, 0, 0, -2, 4, 0, -3, -5, 0, 0, 0,
	0, 0, 2, 0, 2, 1, 2, -2, 0, 5, 1, 0, 0, 1,
	1, 0, 0, 0, 0, 0, 0, 3, -4, -3, -1, 0, 0, 1,
	-1, 0, 0, 1, 1, 0, 1, 0, -4, 0, 0, 0, 0, 0,
	0, 0, 0, -2, 2, 0, 8, 0, 2, -2, -2, -1, 0, 0,
	-1, 0, -2, 0, 1, -1, -1, -1, -4, -5, 0, 0, 0, 1,
	0, 0, 1, 0, 2, -1, 3, -1, -2, 3, 5, 3, 0, 0,
	-2, 0, 0, 0, 0, -1, 0, 0, -8, 2, 1, 0, 0, 2,
	0, 0, -2, -2, 1, 0, -8, 2, 4, -1, -5, 0, -1, 2,
	-2, 0, 2, 2, 1, 0, -8, -16, 2, -1, 5, -3, 0, 2,
	1, 0, -2, 0, 0, 0, 0, 3, -2, 0, 1, 0, 0, 2,
	1, 0, -2, 0, 1, 0, -8, -1, -2, -5, -1, 0, 1, 1,
	2, 0, 0, 2, 0, 0, 2, 1, -1, 2, 0, -1, 0, 0,
	0, 0, -2, 0, 1, -1, 0, 0, 0, 0, 0, -1, 0, 1,
	1, 0, 0, 1, 0, 0, 0, 0, 1, -2, 0, 0, 1, 2,
	-1, 0, 1, -1, 1, -1, -2, 0, 0, -3, -2, 3, 0, 0,
	0, 0, 0, 2, 1, -1, 0, -2, 0, -2, -1, 1, 0, 1,
	-1, 0, -2, -2, 1, -1, -8, 1, 4, 2, 0, -1, 0, 0,
	0, 0, 1, 1, 0, 0, 3, -16, 8, -2, 1, 0, 0, 2,
	1, 0, 0, -2, 1, 0, 8, 16, -1, 3, 0, 0, 0, 2,
	1, 0, -2, -1, 2, 0, -2, 0, 0, 3, 0, 0, 1, 2,
	1, 0, -2, 0, 0, 1, -8, 0, 0, -1, 5, 0, 0, 0,
	0, 0, 2, 0, 0, 0, -1, 3, 0, 0, -2, 0, 0, 2,
	-1, 0, -2, 2, 2, 1, 3, 2, -1, 2, 5, 0, 0, 1,
	0, 0, 0, -1, 2, -1, -3, -4, 4, 1, 0, 0, 0, 0,
	-1, 0, -2, 2, 0, -1, -1, 3, 4, -5, -5, 3, -1, 2,
	1, 0, 0, 0, 1, -1, -8, -2, -2, 3, -5, 0, 1, 1,
	0, 0, 0, 0, 0, 0, -8, -16, 1, 0, 0, -1, 0, 0,
	-1, 0, 0, -2, 0, 0, 2, -2, 0, -1, 0, 0, 0, 0,
	0, 0, 0, 2, 1, 0, -1, 0, -2, 0, 0, 0, -1, 1,
	-2, 0, 2, 0, 1, 0, 8, -1, -1, -5, 2, -3, 0, 2,
	0, 0, 1, 1, 1, -1, 0, 0, -1, 0, -1, -3, 0, 1,
	0, 0, -1, 0, 1, 0, 1, 2, -2, 0, -5, 3, 0, 0,
	0, 0, 0, 0, 1, -1, -1, -4, -8, 2, -1, 0, 0, 1,
	-2, 0, 0, -2, 1, 0, 2, -3, -1, 0, 0, 0, 0, 1,
	-2, 0, 1, -2, 2, 1, 3, 3, -8, 3, 1, 0, -1, 1,
	1, 0, 0, 0, 0, 0, 3, 0, 2, 0, 0, 0, 0, 1,
	2, 0, 0, 1, 2, 1, 0, 16, 0, 3, -1, 3, 0, 1,
	0, 0, 0, -2, 1, 0, 3, 4, 2, 2, 0, 3, 0, 2,
	-1, 0, -1, 1, 0, 0, -8, 4, 8, 0, 1, 0, -1, 0,
	2, 0, 0, 0, 0, 0, -2, 1, 0, -3, 0, 0, 0, 0,
	2, 0, 2, -2, 0, 0, 0, -1, -8, -2, 0, 3, 0, 2,
	1, 0, 1, 1, 0, 0, 1, 0, 2, 0, -5, 3, -1, 1,
	0, 0, 1, -1, 0, 0, 2, 3, 2, 0, -5, 1, -1, 1,
	1, 0, 0, 0, 0, -1, 8, 16, 8, 0, -5, 0, 0, 0,
	1, 0, 0, -1, 1, 0, 0, 0, -2, 0, 2, -3, 0, 2,
	0, 0, -1, 2, 1, 1, -1, -2, 0, 2, -2, 0, 0, 2,
	0, 0, 1, -2, 1, 0, 2, -2, -8, 0, 0, 0, 0, 1,
	0, 0, -2, 2, 0, 0, 0, 1, -4, -3, 0, 0, 1, 2,
	2, 0, -2, 0, 1, 0, 0, 0, 8, 3, 5, 0, 0, 2,
	0, 0, -2, 0, 0, -1, 1, -2, 0, 2, 1, 0, 0, 2,
	1, 0, 2, -2, 2, 0, -2, 0, 1, 2, 2, 3, -1, 1,
	0, 0, 0, 0, 0, 0, 0, 1, 1, 5, -5, 1, 0, 0,
	-1, 0, -1, -1, 1, 0, 0, 0, 0, -5, 2, 0, 0, 2,
	2, 0, 0, 0, 1, 1, 2, 4, 2, -1, 0, 0, 1, 0,
	-2, 0, 0, 2, 0, 0, -8, -16, 4, 5, 0, 3, 0, 0,
	0, 0, -2, -2, 0, 1, 1, -2, 0, -5, 0, 3, 0, 0,
	2, 0, 0, 1, 0, 1, 1, 2, 0, -1, 0, -1, -1, 0,
	-1, 0, -2, 2, 1, 0, -8, 1, 0, 5, 0, 1, 0, 0,
	0, 0, 2, 0, 0, 0, 0, -1, -2, 0, 2, 3, 0, 2,
	0, 0, 0, 0, 2, 0, 3, 4, 1, 0, 0, 1, 0, 1,
	-1, 0, 2, 0, 0, 0, 1, -3, -1, 5, 2, 0, 0, 2,
	0, 0, 0, -1, 2, -1, -8, 2, 0, 2, 2, -3, 0, 2,
	0, 0, 0, 0, 1, 0, 3, 16, 0, 3, -1, 0, 0, 0,
	-2, 0, -2, 0, 1, 0, -1, -1, -1, -5, -5, 0, 0, 2,
	0, 0, 0, -1, 1, 0, -2, -1, -8, 0, 0, -1, 1, 0,
	2, 0, 2, -1, 0, 0, 0, 3, 0, 0, 0, 0, 0, 2,
	-2, 0, 0, 0, 1, -1, 2, 2, 8, -3, -2, 0, 0, 0,
	-1, 0, 0, -2, 2, 1, 0, -4, 2, 3, 5, 0, -1, 0,
	-1, 0, 1, 2, 1, 0, 0, 4, -8, 3, 0, -3, 0, 2,
	-2, 0, 1, 2, 0, 0, 3, 4, 1, 0, 0, 3, 0, 2,
	0, 0, -2, 0, 0, 1, 2, 2, -1, 5, 0, 0, -1, 2,
	-2, 0, 0, -2, 1, -1, -2, -16, 0, -5, -5, 0, -1, 0,
	-1, 0, 0, 0, 2, 0, 0, 0, 0, -3, 0, 3, 0, 2,
	-1, 0, -1, 0, 2, 0, -2, 0, 0, 2, 2, 0, 0, 1,
	1, 0, 0, 0, 1, 1, -3, -3, 0, 1, 0, 0, 0, 0,
	0, 0, 0, -2, 2, 0, 2, 2, 1, 0, -1, 0, 0, 0,
	2, 0, 0, 1, 1, 0, 8, 3, -1, 0, 2, -3, 0, 0,
	0, 0, 0, 2, 1, 1, 2, -16, -4, -1, 0, -3, 0, 0,
	-1, 0, 0, 0, 0, 0, 8, 3, 2, -1, -1, -3, -1, 0,
	0, 0, 0, -1, 0, 0, 1, -4, 0, 2, -5, -1, 0, 0,
	1, 0, 2, 0, 0, 1, 2, -1, -8, -1, 2, 0, 0, 2,
	0, 0, 2, 1, 1, 1, 0, 1, 2, 2, 0, 0, 0, 2,
	-2, 0, 0, 0, 0, 1, -8, -4, -4, 1, 2, 0, 0, 2,
	0, 0, 2, 0, 2, -1, 0, 2, -4, -5, 2, -1, 0, 1,
	0, 0, -1, 0, 2, 0, 3, 0, -8, 2, 0, 3, -1, 2,
	-1, 0, 2, -2, 0, 0, -3, -2, 1, 2, 0, 0, 0, 0,
	2, 0, 0, 0, 1, 1, 2, 2, 8, -1, 2, 0, 0, 1,
	0, 0, 2, -2, 1, 1, 0, 3, -1, 5, 1, -3, 1, 1,
	0, 0, 1, -2, 1, 1, -8, -3, 8, 0, -1, -1, -1, 1,
	0, 0, 2, -2, 0, 1, 3, 3, 0, 1, 5, 0, -1, 2,
	0, 0, -1, 0, 1, 0, 8, -4, 4, -3, 0, 0, 0, 0,
	-2, 0, -1, 2, 2, -1, 1, 3, -8, -5, 0, 0, 0, 0,
	1, 0, 2, 0, 1, 0, 2, -3, -8, -2, -5, 0, 1, 0,
	-1, 0, 0, 0, 1, 0, -8, -2, -4, -2, -2, -3, 1, 1,
	-2, 0, -2, 0, 1, 0, 2, 0, 0, -5, -2, 0, 0, 2,
	0, 0, 0, 0, 0, -1, -3, 2, -8, 5, -1, 0, -1, 2,
	1, 0, 0, 0, 0, 1, -2, 3, -8, -3, 5, 1, 0, 0,
	1, 0, 2, 1, 2, 0, 0, 4, 0, 0, -1, -1, 0, 0,
	0, 0, 0, 0, 1, -1, 1, -2, 0, -3, 5, -1, 0, 0,
	1, 0, 0, 0, 2, 0, 0, 1, -8, 5, -2, -1, 1, 0,
	0, 0, 0, 0, 1, 1, 2, 3, -4, 2, 0, 0, 0, 0,
	0, 0, -1, 2, 2, 0, -8, -16, 1, 0, 0, 0, 0, 1,
	1, 0, -2, 0, 0, 1, 0, -16, -4, 0, 0, 0, 0, 0,
	0, 0, 1, -1, 1, 0, 2, 3, 2, 0, -5, 3, 0, 0,
	0, 0, 0, -2, 1, 0, 8, -4, -1, -1, 0, 0, -1, 0,
	0, 0, 0, -2, 0, 0, 0, 0, 8, 2, -5, -1, 0, 0,
	0, 0, 2, 0, 1, 0, -8, -3, 1, -1, -2, -3, 0, 1,
	2, 0, -1, -1, 1, 0, 3, 1, 0, -1, -1, 0, 0, 2,
	2, 0, 1, 0, 0, 0, -8, -1, 4, 0, -1, -3, 0, 0,
	1, 0, 0, 0, 2, 0, 1, -2, -8, 5, 0, -1, -1, 0,
	2, 0, -1, 0, 0, -1, 1, -3, -2, 1, 0, 0, 1, 1,
	-2, 0, -1, -1, 1, 0, 0, 0, -8, -2, -1, -3, 0, 0,
	-2, 0, -2, 1, 0, 0, -2, 0, 0, 0, 5, 0, 0, 0,
	-1, 0, 0, -2, 0, 1, 0, 16, 0, 0, 0, -1, 0, 2,
	1, 0, -2, -2, 0, 0, 0, 0, -1, 5, -2, 0, 0, 0,
	0, 0, -1, 0, 0, -1, 1, 2, 2, -2, 5, -1, -1, 1,
	2, 0, -1, 0, 1, 0, -2, -1, -4, 0, -2, -1, 1, 1,
	1, 0, -2, 0, 1, 1, 0, 4, 0, -5, 0, 0, 1, 0,
	0, 0, 0, 1, 1, 0, 3, 3, 4, 0, 2, 3, 0, 0,
	1, 0, 2, 2, 1, 0, 0, -16, 0, -2, -5, 0, 0, 2,
	1, 0, -2, -1, 1, 0, -1, 1, -2, -3, -5, 0, 0, 0,
	0, 0, 0, 1, 1, -1, 0, 1, -8, -5, -5, 3, 0, 2,
	-1, 0, 0, 0, 1, 0, 0, 2, -1, 5, 0, 3, -1, 1,
	-2, 0, -2, 0, 0, -1, 0, 0, 4, -1, 0, 0, -1, 2,
	1, 0, 0, 0, 0, 0, -8, -16, 8, 2, 5, -1, 0, 2,
	0, 0, -1, 0, 1, 1, 2, 1, -2, 2, 0, 0, 0, 1,
	0, 0, 2, 1, 1, 0, -3, 0, 2, 0, -1, 0, 1, 0,
	0, 0, 1, 0, 0, 0, -2, 3, 2, -5, 0, 0, -1, 0,
	0, 0, 0, 1, 2, 1, 2, -3, -8, 2, -2, -1, 0, 0,
	1, 0, -2, 2, 0, 0, -1, 0, 1, 5, -2, 0, 0, 0,
	0, 0, 0, -2, 2, 0, 0, 4, -2, 5, 0, 0, 0, 2,
	2, 0, 0, 0, 0, -1, 0, -3, 2, 0, 0, 0, 0, 0,
	-1, 0, 1, 2, 0, 0, 0, 3, 0, -2, -1, 0, 0, 2,
	1, 0, -1, 1, 1, 1, -8, -16, 0, -5, 0, -1, 0, 0,
	0, 0, 2, 2, 2, 1, -2, 3, 4, 0, 1, 0, 1, 0,
	0, 0, 0, 2, 1, 0, 8, 4, -8, -5, 0, 0, 0, 2,
	0, 0, 2, -2, 2, 1, -2, 0, 0, 0, 0, 0, 0, 0,
	-2, 0, 0, 1, 0, 0, 2, 3, 0, 0, 5, 0, 0, 0,
	2, 0, 2, 0, 2, -1, 0, 0, -2, -3, 0, 0, 0, 0,
	-2, 0, 0, 0, 1, 0, 1, 0, 0, 0, 1, -1, 0, 0,
	0, 0, 0, 2, 2, -1, -2, 0, 0, 0, 0, 1, 1, 1,
	2, 0, -2, 1, 1, 0, 2, -2, -8, 3, 0, -3, -1, 1,
	0, 0, -1, 0, 1, 1, 3, 2, 1, -1, 0, -3, 0, 2,
	0, 0, 0, -2, 0, 0, 1, 16, -2, 0, 0, 0, 0, 1,
	0, 0, 0, 0, 1, 0, 1, 1, 4, -3, 5, 0, 0, 1,
	0, 0, -1, 0, 2, 0, 0, -4, 4, 5, 0, 0, 0, 2,
	-1, 0, 1, 1, 0, 0, 0, 4, -4, 1, -5, 3, 0, 2,
	0, 0, 0, 0, 0, -1, 0, 3, -4, -3, 5, -3, 0, 2,
	0, 0, 0, -2, 0, 0, 0, -2, -1, 0, 0, 0, 0, 1,
	1, 0, -2, 0, 0, 0, 1, 0, 2, 5, 5, 0, 0, 0,
	0, 0, -2, -2, 1, 1, 3, 0, 0, -3, 2, 3, 0, 0,
	0, 0, 0, 0, 2, 1, -1, 1, -1, -5, 1, -1, 1, 1,
	0, 0, 2, 0, 1, 0, 3, -3, -1, 5, 2, 0, 0, 0,
	-2, 0, 0, 0, 0, 0, 0, 3, 4, -2, 0, 1, 0, 0,
	0, 0, -2, 0, 1, 0, 0, 16, 0, 2, -1, -3, 1, 0,
	0, 0, 0, -1, 1, 0, 8, -1, 2, 1, -2, -1, 0, 0,
	0, 0, -1, -1, 0, 1, 3, 0, 0, 3, 0, 0, 1, 2,
	0, 0, 0, 1, 0, 0, 0, -1, 0, 0, -5, 1, 0, 0,
	1, 0, -1, 0, 2, -1, 0, 3, 0, -2, 0, 0, 0, 2,
	0, 0, 0, -2, 0, 0, 0, 3, -4, 0, 2, 0, 0, 1,
	1, 0, -1, 0, 1, 0, 0, -2, 8, -1, 0, -1, -1, 0,
	0, 0, -1, -2, 1, 0, 0, 3, -8, 5, 2, -1, 0, 2,
	0, 0, 2, 2, 0, 0, 3, 3, 4, -2, 2, 0, 0, 0,
	-2, 0, 0, 0, 2, -1, 3, 4, 0, 0, -2, 0, -1, 0,
	-2, 0, 0, 0, 0, 1, 0, 3, -2, 5, 0, 0, 0, 0,
	2, 0, 1, 0, 1, 0, 2, -3, 4, -2, 0, 0, 0, 0,
	0, 0, -1, 2, 1, 0, -3, 2, 8, 1, -2, 1, 0, 1,
	1, 0, -1, 0, 0, 0, 0, -2, 0, -3, -2, 0, -1, 2,
	1, 0, 2, -1, 1, 0, 3, -2, 2, -2, 0, -1, -1, 0,
	2, 0, -2, 0, 2, 0, -1, 3, 4, 5, 0, 0, 0, 1,
	-1, 0, 1, 0, 1, -1, -1, 16, -1, -1, 0, -1, 1, 0,
	0, 0, 0, -2, 1, 0, 0, -2, -2, 3, 1, -1, -1, 1,
	0, 0, -2, -1, 0, 0, 0, -16, 4, 3, 5, 0, -1, 0,
	1, 0, 2, 2, 0, 0, -2, -16, 4, 3, 0, -1, -1, 2,
	2, 0, 2, 0, 1, 0, 1, -1, 4, -3, 1, 0, 0, 0,
	0, 0, 0, 0, 1, 0, 1, 0, -8, 0, -2, 0, 0, 2,
	2, 0, -1, 0, 1, 0, 0, 1, 1, 0, 5, 0, 0, 2,
	0, 0, 0, 0, 2, 1, 0, 1, 2, 2, 0, 0, 0, 2,
	1, 0, 0, 0, 0, 0, 0, -3, -4, 2, 0, 1, -1, 0,
	0, 0, 1, -1, 1, 0, 2, 0, 8, 0, -5, 1, 0, 0,
	0, 0, 0, 1, 2, 0, 1, 4, 8, 3, 0, 0, 0, 0,
	1, 0, 1, 0, 1, 0, -3, 2, -8, 3, 1, 0, -1, 0,
	-1, 0, -2, 0, 2, 1, 3, 0, -8, -3, 2, 1, -1, 2,
	0, 0, 0, -1, 2, 0, 0, 16, -1, 0, 0, 0, 0, 1,
	0, 0, 2, 1, 1, 0, 1, -2, 0, 3, 0, 0, 0, 2,
	0, 0, 0, -2, 2, 0, -8, 2, -8, 1, 5, 0, 1, 1,
	0, 0, -2, -2, 1, 0, -3, -2, 0, 3, -5, 0, 0, 2,
	1, 0, 0, -1, 2, 0, -3, 16, 4, 5, 1, 0, 0, 1,
	1, 0, 0, 0, 0, 0, 8, -3, 0, -1, 1, 3, 0, 1,
	1, 0, 0, 2, 1, 0, 0, 2, 1, -2, -5, -1, 0, 1,
	1, 0, -1, 0, 1, -1, 3, 2, -8, -5, -2, 0, 0, 2,
	1, 0, 2, 0, 0, -1, 0, 3, -2, 3, 1, 0, -1, 1,
	0, 0, 0, -2, 1, 0, 0, 0, -2, -1, -5, 0, 0, 2,
	2, 0, 2, 0, 1, 0, 8, 3, -8, 0, 0, 1, 0, 1,
	0, 0, -1, 0, 0, 0, 3, -4, 1, -2, -2, 0, 0, 0,
	1, 0, -2, 0, 0, -1, 0, -2, -2, -2, 1, 0, 0, 2,
	-1, 0, -1, -1, 1, 0, -8, -1, -4, 0, 2, 1, 0, 0,
	0, 0, -1, 0, 1, 1, -8, -4, 0, 3, -1, 0, 1, 0,
	0, 0, -2, -2, 1, 0, -2, -1, 0, -3, -1, 1, -1, 2,
	-1, 0, 1, 0, 0, 0, 2, -1, -8, -3, -5, 0, 0, 2,
	0, 0, 0, 0, 0, 1, -8, 0, 0, -1, 0, 0, 0, 1,
	0, 0, 2, -1, 0, 0, 1, -3, 0, 1, 0, 3, 0, 0,
	1, 0, -1, -2, 2, 0, 2, 3, 0, -3, -5, -1, 0, 0,
	1, 0, -1, 0, 1, 1, -8, 0, 0, -3, -1, 0, 0, 1,
	1, 0, 1, 2, 1, 0, 1, 2, -2, 0, 0, 0, 0, 0,
	-2, 0, 1, 0, 1, 1, 2, -4, 4, 3, 0, 0, 0, 1,
	2, 0, -1, 0, 0, 0, 0, 16, 0, 0, 5, 0, 0, 0,
	-2, 0, 0, 2, 1, 1, 8, 1, 1, 0, -1, 0, 0, 1,
	1, 0, 0, -2, 1, 0, -3, 16, 0, -5, 1, 1, 0, 1,
	0, 0, 2, 2, 2, 0, 2, -4, -2, 0, 2, 0, 0, 2,
	0, 0, 1, 0, 0, 0, -8, -3, 0, -1, 1, -1, 0, 1,
	-1, 0, -1, -1, 0, 0, 0, -3, 4, 1, 0, 3, 0, 2,
	0, 0, -2, 0, 1, 0, 8, 2, -8, 0, -5, 0, 0, 0,
	0, 0, -2, -2, 1, 0, -1, 3, 2, -3, 5, 0, 0, 2,
	0, 0, 0, -1, 1, 1, 3, 0, -4, 0, 1, -1, 0, 0,
	2, 0, 1, 0, 1, 0, -1, 3, 1, 0, -2, 1, 0, 0,
	0, 0, 1, 0, 0, 1, 0, -3, -1, 3, -1, 1, 0, 0,
	0, 0, 0, -1, 0, 0, 0, 2, 0, -3, 2, 0, 1, 2,
	-2, 0, -2, 1, 2, 0, 0, -3, 2, 3, -2, 0, 0, 0,
	0, 0, 0, 1, 1, -1, 3, 4, -1, -5, -5, 1, 0, 0,
	-1, 0, -2, 0, 1, 0, 8, -16, 8, 0, 2, 0, 1, 2,
	0, 0, 0, 0, 0, 0, 0, -1, -8, 0, 2, 0, 1, 1,
	1, 0, 1, 0, 2, 0, 2, 4, 0, 0, -2, -1, 0, 2,
	0, 0, -1, -2, 0, 0, 0, 0, 0, 3, 0, 0, 0, 2,
	2, 0, -1, 1, 2, -1, 0, 2, -1, -5, -5, 0, -1, 2,
	0, 0, 2, 0, 0, 0, -3, -2, 0, 2, -1, 0, 0, 2,
	0, 0, -1, 2, 2, 0, -2, -2, 0, -3, -1, -3, 1, 2,
	0, 0, 0, 0, 1, 0, 0, -16, -2, 1, 0, -1, 1, 0,
	0, 0, 0, -1, 0, 0, -8, 1, -2, -5, 5, 0, 0, 1,
	0, 0, 0, 0, 0, 0, -1, -16, -4, 0, 0, 0, 0, 0,
	0, 0, 0, 2, 0, 1, 3, 0, -2, 0, 0, 1, -1, 0,
	0, 0, 0, 0, 0, 0, 1, -16, 0, -1, 0, 1, 0, 0,
	0, 0, -2, -1, 0, 1, -3, -3, 2, 0, 1, 0, 0, 2,
	-2, 0, 0, -1, 0, 0, 0, 0, 2, 3, 0, 1, 0, 0,
	0, 0, 2, 2, 0, 1, 2, 0, 8, -2, -2, 0, 1, 0,
	0, 0, 0, -1, 2, 0, 8, 16, 0, 5, 0, -1, 0, 2,
	0, 0, 0, 0, 0, 0, 0, -2, 2, 0, -1, 3, -1, 0,
	2, 0, 2, 0, 0, 0, 0, -3, -4, 3, 2, 1, 0, 1,
	0, 0, 2, 0, 0, -1, 2, 0, 4, -3, 5, -3, 0, 0,
	1, 0, 0, -1, 2, 0, 0, 0, 8, -5, 0, 0, 0, 2,
	0, 0, 2, 2, 1, 0, -1, 3, 1, -2, 0, 0, 0, 0,
	1, 0, 1, 2, 0, -1, 1, 2, 4, 0, 0, 3, 0, 0,
	1, 0, -2, 2, 2, 1, 0, 1, -4, 0, -1, -1, 0, 2,
	0, 0, 1, 0, 1, -1, 1, 0, 8, 1, -5, 0, 0, 0,
	0, 0, 1, -2, 0, 0, 1, 4, -8, 0, -1, 1, 0, 2,
	0, 0, 1, 0, 1, 0, 0, 3, 1, -2, 1, 0, 0, 0,
	-1, 0, 0, 0, 1, 0, 3, 0, 0, 2, -2, 0, 1, 1,
	0, 0, 0, 0, 2, 0, -8, 16, 0, 5, -2, -3, 0, 0,
	1, 0, 0, -2, 1, 0, 3, 4, -2, -2, 2, 1, 0, 2,
	0, 0, 0, -1, 0, 0, -8, 4, 1, 0, -5, 0, -1, 1,
	0, 0, 0, -1, 1, 1, -2, 3, -2, 5, -5, 0, 1, 0,
	1, 0, -2, 1, 0, 1, 0, 0, 2, -3, -5, -1, 0, 1,
	1, 0, 1, 0, 1, -1, -2, -3, 2, 5, 0, 0, 0, 0,
	0, 0, 0, 1, 1, 0, 2, 1, 0, 0, 5, 3, 0, 2,
	0, 0, 0, 0, 0, 0, 1, 2, 0, 0, 0, 0, 0, 1,
	0, 0, 0, 0, 1, 0, -8, 4, 2, -5, 0, 0, 0, 2,
	0, 0, -1, -1, 1, 1, 2, 1, -1, 5, 0, 0, 0, 1,
	1, 0, -1, 0, 1, 1, 0, 4, 4, 0, 2, 1, 1, 1,
	-2, 0, -2, 0, 0, 0, 1, 3, 0, -2, 0, 0, 0, 0,
	0, 0, -1, -1, 0, 0, 1, 3, 0, 5, -5, 0, 0, 1,
	0, 0, -2, 0, 2, 0, 0, 16, 4, 2, 2, -3, 0, 2,
	1, 0, 0, 2, 0, 0, -8, -16, 2, 0, -2, 1, 1, 0,
	0, 0, 0, 0, 1, -1, 0, -1, 0, 5, 2, 0, 0, 2,
	0, 0, 0, 0, 0, 0, -8, 0, 8, 2, 5, -3, 0, 1,
	-1, 0, 2, 0, 0, 1, 3, -3, 1, -3, -2, 0, 0, 1,
	-2, 0, 0, -1, 0, 0, -2, 16, 4, 1, 0, 0, -1, 1,
	2, 0, -1, -1, 1, 1, 0, -2, 4, -1, 2, 0, 0, 2,
	1, 0, 0, 0, 2, 0, 3, -2, -4, 0, 2, 0, 0, 1,
	0, 0, 0, 0, 2, -1, -8, 4, 0, 0, 0, 3, 0, 1,
	2, 0, 2, -1, 0, 0, 0, -4, -4, 1, 5, 3, 0, 0,
	2, 0, -2, 0, 2, 1, -8, -4, 2, 2, 0, 0, 0, 1,
	-1, 0, 0, 0, 0, 1, 1, -1, -4, -2, 0, -1, 0, 0,
	0, 0, 0, 1, 2, 0, 8, 16, 2, -1, 1, 0, 0, 2,
	2, 0, -2, 0, 0, 0, 0, 3, -4, -5, 5, 0, -1, 1,
	-2, 0, 0, 0, 0, 1, 0, -16, 0, 2, 2, 0, 1, 0,
	0, 0, 0, 0, 0, 0, 0, 16, -8, -1, 2, 1, 0, 1,
	0, 0, 0, 1, 0, 0, 0, 3, -2, -3, 2, 0, 0, 2,
	1, 0, -1, 1, 0, 0, 1, 0, 0, -3, 0, 0, 0, 1,
	1, 0, -1, 2, 2, 0, 1, 4, -2, 0, 0, 0, -1, 0,
	2, 0, -1, -1, 1, 1, 8, -3, -8, -1, 0, 0, 0, 1,
	1, 0, 0, 0, 0, 0, 0, -2, 4, -2, 0, 3, 0, 2,
	1, 0, 2, -2, 1, 0, 0, 2, 1, -5, 0, 0, 0, 2,
	0, 0, 0, 0, 0, 0, 0, -16, -1, 2, 1, 0, 0, 2,
	1, 0, 1, 0, 0, -1, 0, -16, -4, 2, 0, -1, 0, 2,
	0, 0, 0, 2, 2, 0, 0, -2, 0, -2, 0, 1, 0, 2,
	2, 0, -1, 2, 1, -1, -2, -4, -1, 1, -5, 0, 0, 1,
	-1, 0, -2, 0, 2, 0, 1, 2, 0, 5, 2, 1, 0, 2,
	2, 0, 0, 0, 1, 0, -2, 4, 0, -5, -1, -1, 0, 0,
	-2, 0, -2, 0, 0, 0, -1, 1, -1, -1, -5, 0, 0, 0,
	0, 0, 2, 0, 1, 0, 3, -4, 8, -2, 5, 0, 0, 0,
	-1, 0, 1, -2, 0, -1, 1, 0, -2, 1, -2, 1, 1, 1,
	0, 0, 1, -1, 2, 0, -2, 2, 2, 2, 0, 0, 0, 1,
	0, 0, 2, -2, 0, 0, -2, 2, -1, -5, 5, 0, -1, 0,
	0, 0, 1, 1, 0, 0, -8, 4, 0, -5, 0, 0, 0, 1,
	2, 0, 1, 1, 1, -1, 0, -4, -8, -5, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, -8, 1, -8, 5, 0, 0, 0, 1,
	1, 0, 0, 2, 1, 0, -1, 16, -1, -2, 0, 0, 0, 2,
	0, 0, 2, -1, 0, -1, 1, 0, 4, -2, 0, 1, 1, 2,
	0, 0, 0, 0, 2, 1, 3, -2, 0, 2, 2, 0, 0, 1,
	-1, 0, -1, 0, 0, 0, -8, 0, 8, -1, 0, 0, 1, 1,
	-2, 0, 2, -2, 1, 0, 8, -2, -2, -3, 2, 0, 0, 1,
	1, 0, 2, 0, 0, 0, -8, 3, -8, -2, 2, 0, 0, 0,
	0, 0, 0, 0, 1, 0, -3, -4, -8, 3, -1, 0, 0, 2,
	0, 0, 2, 2, 0, 1, 1, 0, -1, 0, -5, 0, 0, 0,
	-2, 0, 0, 0, 1, 0, -3, -4, 4, 0, -2, 0, 1, 1,
	0, 0, -2, -2, 2, 0, -3, 3, 1, 0, -1, 3, 0, 1,
	-1, 0, 1, -1, 1, 0, 3, -4, 1, -2, -1, 0, 1, 0,
	2, 0, 2, 0, 1, 0, 0, -4, 1, 3, 0, 0, -1, 1,
	-2, 0, 1, 0, 1, 0, -3, 0, 0, -1, -5, -3, 0, 0,
	1, 0, 1, 0, 1, 0, -8, -16, -1, -2, -5, -1, 0, 1,
	1, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 3, 1, 1,
	1, 0, 0, 0, 2, 0, -8, -1, 0, 1, 1, 0, 0, 1,
	0, 0, 0, 0, 0, -1, 3, -4, 4, 2, 5, 0, -1, 0,
	2, 0, -2, -2, 2, 0, -3, 4, 4, 5, 1, 1, 0, 0,
	0, 0, 0, 0, 1, -1, -8, 2, 2, 3, 5, -1, 0, 0,
	0, 0, 0, 0, 1, 1, -1, -16, 8, 3, 0, 0, 0, 0,
	2, 0, 0, 0, 0, 0, 3, 2, 4, 0, 0, 0, 0, 2,
	0, 0, 2, 1, 1, 1, -8, 0, 4, 5, -2, -1, 0, 2,
	-2, 0, 0, 0, 1, -1, 8, 0, 1, 0, -2, 0, 0, 2,
	-2, 0, 2, 0, 2, 0, 0, 3, 0, -5, 1, -1, 0, 1,
	0, 0, 0, 0, 2, 0, 0, 1, -4, 1, -2, -1, 0, 0,
	-1, 0, 0, 2, 0, 0, -1, 3, -4, -2, 0, 0, 1, 0,
	1, 0, 0, -1, 1, -1, 0, -16, -1, -2, 1, 0, 0, 1,
	0, 0, 2, -2, 2, 1, 1, 1, 1, -1, -5, 0, 0, 0,
	-1, 0, 1, 0, 2, 0, 3, -16, -8, 2, -5, 0, -1, 0,
	1, 0, -1, 0, 0, 1, -1, -3, 4, 2, 0, 0, 0, 1,
	0, 0, 0, 0, 0, 0, 1, -16, 8, 2, 0, -3, 0, 2,
	-2, 0, -1, 1, 2, -1, 1, 3, -8, -3, -1, 0, 0, 1,
	1, 0, 2, -1, 1, 1, 8, -4, -1, -1, 0, 1, 0, 2,
	-1, 0, 2, 2, 0, 1, -2, -3, -4, 0, 0, 3, 0, 1,
	2, 0, -2, 0, 0, 0, 0, -1, -2, -3, -2, -1, 0, 1,
	0, 0, 1, 0, 1, -1, 0, 0, 8, -5, -1, 0, 0, 0,
	2, 0, -1, 1, 1, 1, 3, 16, 1, -2, 1, -3, 0, 0,
	2, 0, -1, 0, 1, 0, -8, -16, 4, -1, 0, 1, 0, 2,
	2, 0, -2, 0, 1, 0, -8, 3, 2, 1, 1, -3, 0, 0,
	0, 0, 0, 2, 0, 0, -3, -2, -2, 0, -5, 3, -1, 0,
	0, 0, 1, 0, 1, -1, 0, 2, 0, 1, 0, -1, -1, 0,
	0, 0, 1, -2, 2, -1, -8, -16, 0, -2, 0, 0, 0, 2,
	2, 0, 2, 0, 2, 1, -2, 3, 0, 2, 0, 0, 1, 2,
	1, 0, 0, 2, 1, -1, 2, -4, 1, -3, 1, 0, -1, 2,
	0, 0, 0, 2, 2, 0, 2, -3, -4, 1, 0, -3, 1, 0,
	1, 0, -2, 2, 1, 0, 1, 16, -1, 0, 0, -3, 0, 2,
	-2, 0, -1, 2, 2, 0, -8, 0, 0, 5, 0, 1, 0, 0,
	1, 0, 1, 0, 1, -1, 1, 16, 0, 2, -1, 1, 1, 0,
	1, 0, 2, 2, 1, 0, 2, 0, 4, -1, 0, 0, 1, 0,
	0, 0, 2, 0, 1, -1, 3, 1, 0, 0, 0, 0, 0, 1,
	2, 0, 2, 2, 1, -1, -3, 1, 4, 0, -1, 0, 0, 0,
	2, 0, 0, -2, 1, 0, 3, 1, 1, -3, 1, -3, 1, 1,
	0, 0, 1, 0, 1, 0, -8, -16, -1, 5, 0, 3, 0, 1,
	0, 0, -1, 0, 1, 0, 0, -16, 0, 1, 0, 3, 1, 0,
	0, 0, 0, 0, 2, 1, 0, 16, -4, -2, 5, 0, 0, 1,
	-2, 0, 0, -1, 1, 0, -2, 3, 0, 5, 0, -3, 0, 2,
	1, 0, 0, 1, 0, 1, -3, 4, 8, -3, 0, -1, 0, 2,
	1, 0, -2, -2, 0, -1, 2, 16, 0, 5, 0, 0, 0, 1,
	0, 0, 2, 2, 1, 0, 1, -4, -2, -1, -2, 0, -1, 1,
	0, 0, 0, 2, 0, 1, -2, 16, -4, 0, -5, 3, 0, 0,
	0, 0, 2, 0, 0, -1, -2, 3, -2, 0, 0, 0, 0, 0,
	2, 0, -1, 0, 1, 0, 8, -4, 0, 3, 0, 0, 0, 0,
	-1, 0, -1, 2, 1, 1, 0, 4, 0, -5, 0, 0, 0, 0,
	1, 0, -2, -1, 1, 0, -1, 2, -4, 0, 0, 0, 0, 0,
	1, 0, -2, 1, 0, 1, 1, 4, -8, -2, 0, 0, -1, 2,
	0, 0, -2, -1, 2, -1, 1, 3, -1, 0, 0, 3, -1, 1,
	-1, 0, -2, 1, 2, -1, 1, -3, -1, -5, -5, -1, 0, 0,
	0, 0, 0, 0, 1, -1, -1, -16, -8, 0, 0, 0, 0, 2,
	0, 0, 1, 0, 2, 1, 2, -16, -2, 0, 1, 0, 0, 2,
	-1, 0, 2, -1, 1, 0, -3, -1, -1, -5, -5, 0, 0, 2,
	0, 0, 0, 0, 2, 0, -1, 1, 2, 0, 5, -1, 1, 2,
	1, 0, 0, -2, 1, 0, 1, 1, -8, 1, 1, 0, 0, 0,
	0, 0, 2, 2, 0, 0, -2, 1, 0, 0, 0, -3, 0, 1,
	-2, 0, 2, 0, 0, 0, 0, 1, 0, 3, -2, 0, 0, 1,
	0, 0, 1, -1, 0, 0, 8, 4, -4, 0, -2, 0, 0, 1,
	2, 0, -2, -1, 2, 0, 1, -4, -1, 0, 1, 0, 0, 0,
	-1, 0, 0, -2, 2, 1, -8, 2, 0, 3, 5, 3, 0, 2,
	0, 0, -1, 2, 1, 1, -8, 16, 2, -2, 5, 3, 0, 0,
	1, 0, -2, 1, 1, 0, 0, 2, -1, 5, 5, 0, 0, 0,
	1, 0, 0, 0, 2, 0, 0, -4, 8, 0, -1, 0, 0, 2,
	0, 0, 0, -1, 1, 0, -8, 0, -8, 5, -1, -1, 0, 2,
	0, 0, 2, -2, 1, 1, -2, 1, 4, 2, 0, 0, 0, 0,
	1, 0, -1, -2, 0, 0, -1, 2, 0, -3, -5, -1, 0, 2,
	-2, 0, 2, 2, 1, 0, 1, 4, 0, 0, 0, 0, -1, 0,
	1, 0, 0, 2, 1, 0, -1, -3, 0, 5, 1, 3, 0, 1,
	0, 0, 0, 1, 1, -1, 0, -4, 0, 5, -1, 3, 0, 1,
	2, 0, 0, -1, 1, -1, -3, 0, -8, -5, 0, 0, -1, 1,
	2, 0, 1, -1, 0, 1, 1, 0, 0, -3, -1, 0, 0, 2,
	0, 0, 1, 1, 2, 0, 2, 2, 0, 0, -1, 3, 0, 1,
	1, 0, 0, -1, 0, 1, 2, -4, 8, 3, 0, 0, 0, 1,
	-1, 0, 0, 2, 0, 0, 0, 4, 1, 0, -2, 0, 0, 2,
	1, 0, 0, -1, 0, 0, 3, 16, -2, -5, -2, -3, 0, 1,
	-1, 0, 2, -2, 1, 0, 0, -3, -2, 0, -2, 0, 0, 2,
	0, 0, 2, 1, 2, 0, 1, 0, -1, 0, 0, 3, -1, 2,
	1, 0, -1, 0, 1, 0, 0, 3, 4, -2, -5, -3, -1, 0,
	2, 0, -1, -1, 1, 0, 1, 0, 0, -3, 5, 0, 0, 2,
	1, 0, 0, 1, 1, 1, -3, 16, -4, 3, -5, -3, 0, 0,
	-1, 0, -1, 1, 1, -1, -8, 4, -1, 1, 1, 0, 0, 1,
	-2, 0, 0, 1, 0, 0, 0, 0, 0, -2, 0, 0, 0, 2,
	0, 0, 2, 2, 0, 1, 0, 16, -1, 3, -1, 1, 0, 0,
	0, 0, 1, -2, 0, 0, 2, 16, -8, 0, 2, 0, -1, 0,
	1, 0, 0, 0, 2, 0, 8, 0, 2, -3, -5, 0, 1, 2,
	0, 0, -2, 1, 0, 0, 0, -16, 0, 0, -5, -1, 0, 1,
	-2, 0, -2, 1, 0, 0, -1, 0, -4, 5, -2, -3, 0, 1,
	0, 0, -2, 1, 0, 0, -2, 1, 4, 3, 0, -3, 0, 1,
	1, 0, -1, 0, 1, 0, 0, -2, -1, -2, 2, 0, 1, 1,
	-1, 0, 0, -2, 1, 1, 0, 3, 8, -2, 1, 3, 0, 0,
	1, 0, -2, 2, 2, 1, 3, -16, -1, -1, 0, 0, 0, 1,
	-1, 0, -2, -2, 1, 0, -2, -1, -8, -3, 0, 0, 0, 0,
	0, 0, 0, -2, 1, -1, -1, 2, -2, 0, 0, -3, 0, 0,
	1, 0, -2, 2, 0, 0, -3, 3, -1, 0, 5, 0, 0, 0,
	1, 0, 2, 0, 1, 0, 3, 16, -2, 1, 0, -3, 1, 0,
	-2, 0, 1, 0, 2, 0, -3, 3, 0, 0, 2, 0, 0, 0,
	-1, 0, 0, 0, 2, 1, -8, 3, 4, 2, 0, 3, 0, 1,
	0, 0, 0, 2, 1, 0, -8, -3, 0, 1, 0, -1, 0, 0,
	2, 0, -2, -2, 1, 0, 8, 1, 1, 3, 5, 0, 0, 2,
	0, 0, -1, 2, 0, 1, 3, 0, 8, 5, 1, 0, 0, 0,
	-1, 0, 0, -2, 2, -1, 1, -3, -8, 1, -5, 0, 0, 2,
	0, 0, 0, -1, 0, -1, 0, 4, 1, -2, 0, 3, 0, 0,
	-1, 0, 0, 0, 0, -1, 0, 16, 8, -2, -2, 3, 0, 0,
	1, 0, -1, 0, 1, 0, 0, 0, 0, 0, -5, 0, 1, 0,
	0, 0, 1, 0, 0, 1, -8, 0, 8, 0, -5, -3, 0, 2,
	-1, 0, -2, 0, 2, 1, 0, 2, 1, 3, -5, 3, 0, 1,
	-2, 0, 0, -1, 1, 1, -1, -2, 4, -2, 0, -1, 0, 0,
	-1, 0, -1, 0, 2, 0, -3, 2, -4, -5, -1, 0, 0, 1,
	0, 0, 0, -1, 1, -1, -1, -3, 0, 1, 2, 0, 0, 1,
	2, 0, -2, -1, 0, 1, 0, 16, 0, 0, -2, 1, 0, 0,
	1, 0, -2, 2, 0, 1, -2, 0, -4, 0, 0, 0, 0, 2,
	0, 0, 1, 1, 1, 1, 1, -1, 1, -1, -2, 0, 0, 0,
	1, 0, 0, -1, 0, 0, 1, -4, -2, -2, 0, 0, -1, 2,
	2, 0, 0, 0, 0, 1, 8, 0, 0, 1, 0, 0, 0, 2,
	0, 0, 0, 1, 1, 0, 0, 16, 0, -1, -1, 3, 0, 1,
	1, 0, -2, -1, 2, 0, 0, 4, 1, 3, -2, -3, -1, 0,
	0, 0, -1, 0, 0, 0, -1, 1, 8, 3, 5, 0, 0, 0,
	1, 0, -2, 0, 2, 0, 0, 1, 8, -3, 0, 0, 0, 0,
	-2, 0, -2, 0, 1, 0, -3, -16, 8, 5, -5, 0, 0, 1,
	0, 0, 1, -1, 1, -1, 8, -1, 0, 2, 5, 0, 0, 0,
	0, 0, 0, 0, 2, 0, 0, 2, -2, 2, 0, 0, 0, 1,
	2, 0, -2, 2, 2, 0, -1, -16, -1, 0, 0, 0, 1, 0,
	2, 0, -2, -1, 1, 0, -3, 2, 0, 5, 1, 0, 0, 0,
	1, 0, -2, 0, 1, 1, 2, -16, -8, 3, 1, 1, 0, 0,
	1, 0, 0, 0, 1, 0, 8, -1, 0, 2, 0, 0, 0, 1,
	0, 0, -1, 2, 0, 0, 0, 2, -8, 0, -2, -1, -1, 0,
	0, 0, -2, 1, 0, 0, 0, -3, 0, 1, 2, -3, 0, 0,
	0, 0, 0, 0, 1, 0, 8, -2, 0, 5, 2, -1, 0, 0,
	1, 0, -1, 2, 0, 0, 1, 1, -2, 2, 5, 1, 0, 2,
	0, 0, -1, 0, 0, 0, 1, -16, 0, 0, 0, 0, 0, 0,
	0, 0, 0, -1, 1, 0, 0, 0, 4, -2, 2, -3, 0, 1,
	0, 0, -2, 2, 0, 0, 0, 1, 8, 3, 2, 0, 0, 0,
	0, 0, -1, -1, 0, -1, 0, 2, 0, -2, 0, 1, 0, 0,
	0, 0, 0, 0, 2, -1, 8, 4, 0, -1, -5, 0, 0, 2,
	-2, 0, 1, 2, 1, 0, -2, -1, 0, 2, -2, 1, 0, 2,
	0, 0, -2, -2, 0, -1, -1, -4, -8, -2, 0, -3, -1, 1,
	1, 0, 2, 0, 1, -1, 0, 2, 0, 1, -1, 0, 0, 2,
	2, 0, 2, 0, 0, 0, 0, 2, -8, 5, -2, 0, 0, 1,
	1, 0, 0, -2, 0, 1, -3, -16, -8, 1, -1, -3, 1, 1,
	1, 0, -1, -1, 1, -1, -2, 0, 4, 0, 0, -3, -1, 2,
	2, 0, -2, 0, 0, 0, 8, -4, 1, 0, -2, 1, 0, 1,
	1, 0, 1, -1, 2, 0, 0, -2, 8, 2, 0, -1, 0, 1,
	0, 0, 0, -2, 1, 1, -8, -3, -1, 0, 0, 0, 0, 1,
	2, 0, 0, 0, 0, 1, -3, -1, -8, 0, -2, 0, 0, 0,
	1, 0, 2, 0, 1, 0, 0, 1, 0, 5, -2, 0, 0, 0,
	2, 0, 2, -2, 1, -1, 3, -2, -8, -2, -1, 0, 0, 0,
	0, 0, 2, 2, 0, 1, -1, -2, -8, 1, 0, 3, 1, 1,
	0, 0, 0, 0, 0, 0, 1, 1, 8, 3, 0, 0, 0, 2,
	0, 0, 1, 0, 1, 1, 0, -3, 0, -1, 0, 0, 0, 2,
	0, 0, 1, -2, 1, 0, -3, -16, 4, 5, -5, 1, 0, 2,
	0, 0, 0, 0, 0, 0, 0, -4, 0, -5, -2, 0, 0, 0,
	0, 0, 0, 0, 1, -1, -3, 3, 4, 1, -1, 1, 0, 0,
	-1, 0, 0, 0, 2, 0, 2, 3, -2, 1, -5, 3, 0, 2,
	0, 0, 0, -1, 0, 1, 0, 16, 0, -1, 2, 0, 0, 0,
	-1, 0, 0, -1, 1, 1, 0, 0, 0, 0, 1, 0, 0, 1,
	0, 0, -1, 0, 1, -1, 0, 0, 8, 2, 5, 0, 1, 2,
	-1, 0, 1, 0, 2, 0, -8, 0, -2, 2, 2, 0, 0, 0,
	-1, 0, 0, 0, 1, 0, -8, 2, 4, -2, 2, -3, 0, 1,
	0, 0, 2, 0, 1, 0, -1, 2, 0, -5, 2, 0, 0, 0,
	0, 0, 0, 0, 2, 0, -1, 2, 0, -3, 0, 0, 0, 2,
	2, 0, 0, 0, 0, 1, -1, -2, 0, 5, -1, 0, 0, 1,
	1, 0, -2, 1, 0, -1, 0, 16, 1, -2, 5, -3, 0, 1,
	0, 0, -1, 0, 1, 0, -1, 4, 0, 1, 0, 0, 0, 2,
	1, 0, -1, 1, 1, 0, 0, 4, 2, 0, 5, -3, 0, 1,
	0, 0, 0, 0, 1, 0, 8, 0, -4, 5, 0, 0, -1, 1,
	-1, 0, -2, -1, 1, 0, 0, -3, -1, 2, -2, 0, 0, 0,
	1, 0, 0, -2, 2, 0, 0, 0, 1, 0, 0, 0, 0, 2,
	1, 0, -2, 1, 1, 0, -2, -2, 8, -1, -1, 0, -1, 0,
	0, 0, 1, 0, 0, 0, 0, -3, 1, -1, 5, 1, 0, 0,
	-1, 0, 0, 0, 1, -1, 2, -16, 4, 5, 2, 0, 0, 2,
	0, 0, 0, 2, 0, 1, 8, 0, 0, 5, -5, -1, 0, 2,
	1, 0, 0, 0, 2, 0, 0, -16, -8, 3, 0, -3, 0, 1,
	0, 0, 2, 0, 1, -1, 8, -3, -4, 3, -1, 0, -1, 0,
	1, 0, 0, 0, 2, -1, -1, 16, 0, -2, 0, -3, -1, 1,
	-1, 0, 1, 1, 0, 0, -1, -2, 2, -5, 2, 0, 0, 0,
	1, 0, 2, 1, 1, 1, -8, 4, 2, 0, 0, 0, 1, 0,
	1, 0, 0, 1, 1, -1, 2, 0, -1, 2, -2, -3, 0, 0,
	-1, 0, 0, 0, 0, 0, -1, 16, 0, 5, -1, 0, 0, 0,
	-2, 0, -2, 2, 2, 0, -1, 2, -4, -2, 0, 0, 0, 1,
	-2, 0, -2, 0, 2, 0, 0, -2, 0, 5, 0, 0, 0, 2,
	0, 0, 1, -1, 1, 0, -1, -3, -2, 3, 0, 0, 0, 0,
	0, 0, 2, 0, 1, 0, 3, -4, 4, -5, 1, 3, 0, 1,
	0, 0, -2, 2, 0, 1, 1, 1, 4, 0, 5, 0, 0, 0,
	0, 0, 0, -2, 1, -1, -1, -16, 4, -3, -1, 3, 1, 2,
	-1, 0, 0, 0, 0, 0, 0, 0, 8, -5, -1, 0, 0, 2,
	0, 0, -2, 2, 1, 0, -3, 0, -8, 5, 5, 0, 0, 1,
	2, 0, 0, 2, 1, -1, -8, -2, -2, -2, 0, 1, 0, 0,
	-2, 0, 2, 0, 1, 0, 8, 0, 1, 1, 0, 1, 0, 2,
	0, 0, -1, 0, 1, 1, -3, -4, 1, 0, 0, 0, 0, 0,
	-2, 0, -1, 1, 2, 1, 8, 0, -8, 0, 5, 0, 0, 2,
	0, 0, 2, 2, 1, 0, 2, 0, -2, -2, 2, 0, 0, 2,
	0, 0, 0, -2, 2, 0, -8, -1, 0, -5, -5, 0, 1, 1,
	0, 0, 1, 0, 2, -1, 0, 16, 0, 0, -1, 0, 0, 0,
	0, 0, 2, 1, 0, 0, 0, 4, -1, -2, 0, 0, 0, 0,
	-2, 0, 2, 0, 0, 0, 0, -3, 8, 0, -5, 0, 0, 2,
	1, 0, 1, 0, 2, 0, -2, 2, 1, 3, 0, 1, 1, 0,
	0, 0, -2, 1, 2, -1, -3, 4, 4, 1, 0, 0, 0, 1,
	1, 0, -2, -1, 1, -1, 8, -3, -8, -2, -2, 0, 0, 1,
	-2, 0, 0, 0, 1, 0, 8, 2, 8, 0, 0, 0, 1, 1,
	1, 0, -2, 0, 2, 1, 2, 0, 0, -2, 0, 1, 0, 0,
	0, 0, 0, 1, 0, 0, 8, 2, 2, 1, 5, -3, 0, 1,
	0, 0, 0, -1, 2, -1, -8, 1, 0, -2, -5, -1, 0, 2,
	1, 0, -2, 0, 0, 1, 3, -16, 4, 2, -2, 0, 0, 0,
	0, 0, -2, 0, 0, 0, -3, 16, 4, -2, 5, 0, 0, 2,
	1, 0, 2, 1, 0, -1, -1, -16, 0, 1, -1, 0, 0, 0,
	0, 0, -1, -2, 0, 0, -2, -2, -8, 1, -2, 0, 0, 0,
	0, 0, 0, 1, 1, -1, 3, 4, -1, 0, 2, 0, 0, 0,
	0, 0, -1, 0, 0, 1, -8, -3, 0, 2, 0, -3, 0, 2,
	1, 0, 0, 0, 0, 0, 3, 3, -2, 2, 0, -3, -1, 0,
	-1, 0, 0, 1, 0, 0, -8, 0, -1, 0, 5, 0, 0, 1,
	0, 0, -2, -2, 0, 0, -2, -1, -1, 5, 5, 0, 0, 2,
	0, 0, -2, 0, 0, 0, 1, -1, -2, 1, -5, 0, 0, 2,
	0, 0, 0, 0, 1, 0, -1, -4, -2, 0, -5, 3, 1, 0,
	-1, 0, -1, -2, 1, 0, -1, 1, -8, -2, 5, 0, 0, 2,
	1, 0, 0, -1, 2, 0, -8, 16, 1, 5, 0, 0, -1, 0,
	0, 0, 0, -1, 0, 1, 8, -3, 4, 1, 5, 0, -1, 2,
	-1, 0, 0, 0, 1, 0, -8, 4, 0, 2, 0, 0, 0, 2,
	0, 0, 1, 0, 1, 0, -3, -3, -4, 1, -5, 0, 0, 0,
	0, 0, 0, 2, 2, 0, 2, 2, -2, -1, 0, 0, 0, 0,
	0, 0, 0, 0, 1, 0, 3, 2, -1, -1, 0, 0, 0, 1,
	0, 0, 0, -2, 0, 1, -8, -1, 4, 5, 0, 0, 0, 2,
	0, 0, 1, 0, 0, 0, 3, 2, 0, 0, 1, 0, -1, 2,
	0, 0, 2, -1, 2, 0, -8, 0, 8, 3, -5, 0, 1, 2,
	-1, 0, 1, 2, 0, 0, 0, 0, 0, -1, 0, 0, 0, 1,
	1, 0, 0, 2, 1, 1, -2, 4, 1, -5, 0, 0, -1, 2,
	1, 0, 0, 2, 2, 0, -3, -2, 2, -2, 0, 0, 0, 0,
	-1, 0, -1, 1, 2, 1, 0, 3, -8, -5, -1, 3, -1, 1,
	-2, 0, 0, 0, 0, 0, 1, -1, 0, 3, -2, -3, 0, 0,
	0, 0, -2, 2, 0, 0, 0, 16, 0, 3, 1, 0, 0, 1,
	-2, 0, -1, 2, 2, 0, 8, 16, -2, 5, -1, 0, 0, 2,
	0, 0, 0, 1, 0, 0, -2, 3, -1, 2, -1, 0, 0, 2,
	2, 0, 1, 0, 0, 0, 2, 0, -4, -2, 1, 0, 0, 2,
	0, 0, -2, 2, 0, -1, -3, -1, 8, 0, -1, 0, 0, 1,
	-2, 0, 0, 0, 1, 0, 0, 4, -4, -1, -1, 0, -1, 0,
	1, 0, 0, 2, 0, 0, -2, 4, 8, 0, 0, 3, 0, 0,
	1, 0, 0, 0, 1, 0, -1, -4, -2, 1, -5, 0, 1, 2,
	1, 0, 0, 0, 0, -1, -8, 2, 0, 0, -2, 3, 0, 0,
	0, 0, 2, -2, 0, 0, -2, -2, 0, 5, 0, 0, 1, 2,
	0, 0, 0, -2, 2, 0, 2, 1, -4, -5, -2, 1, 0, 0,
	1, 0, -2, 0, 2, 0, 3, -2, -1, -5, 2, -1, 1, 1,
	2, 0, -1, 1, 1, 0, 1, -16, 2, 3, 0, 0, 0, 1,
	0, 0, -2, 2, 0, -1, 0, 3, -4, -1, 1, -1, 0, 2,
	1, 0, 0, 0, 1, 0, 0, -3, -8, -1, 0, 0, 0, 0,
	0, 0, 1, 2, 0, 0, 0, -3, 0, 3, 5, 0, 0, 0,
	1, 0, 0, 2, 0, 0, 1, 0, -4, 5, 5, 0, 0, 0,
	2, 0, 0, 2, 0, 0, 0, 16, -4, 2, 0, 0, 0, 0,
	2, 0, 0, 0, 1, -1, 3, 3, 0, -1, 0, 0, 0, 1,
	0, 0, 0, -1, 0, 0, -2, 4, -8, -5, 1, 0, 0, 2,
	0, 0, 0, 2, 1, 0, 0, 4, 4, 0, 0, 0, 0, 2,
	0, 0, -2, 0, 2, 0, -2, -1, 0, -5, 0, 1, 0, 2,
	1, 0, 0, -1, 1, 0, -3, 0, -8, 5, 0, 0, 0, 0,
	1, 0, 2, 0, 0, 1, -1, -4, -4, -5, -5, 0, 0, 2,
	-2, 0, 0, 2, 2, 0, 0, -1, 8, 1, 0, 0, 0, 2,
	-2, 0, 0, 0, 0, 0, 8, -4, 4, 3, 0, -1, -1, 1,
	-2, 0, 0, 0, 0, 0, 0, 3, -8, 1, 0, 1, -1, 1,
	0, 0, 1, -1, 1, 1, 2, 2, -8, 3, -5, -1, 0, 1,
	-2, 0, -1, 0, 2, 0, 0, 0, 4, 5, 0, -3, -1, 0,
	0, 0, 0, 0, 0, 0, 1, 0, -8, -1, 2, 0, 0, 1,
	1, 0, 2, -2, 2, 0, -8, 4, 4, 2, 2, -3, 0, 0,
	-1, 0, 0, 2, 0, 0, 2, 0, 2, 0, 0, 0, 0, 0,
	0, 0, 2, -1, 0, -1, -8, 16, 0, 0, -2, 0, 0, 2,
	2, 0, 0, 0, 0, -1, -2, 4, -8, 0, -2, -1, 0, 0,
	0, 0, 2, -1, 0, 0, -1, -4, -1, -2, -2, 1, 0, 1,
	-1, 0, 2, -1, 1, 0, 3, 3, 0, 5, 1, 0, 1, 2,
	-2, 0, 0, 1, 1, 0, 3, -3, 4, -3, 1, -3, 1, 0,
	0, 0, -1, 0, 0, 1, 0, -3, -4, -1, 1, 3, 0, 0,
	-1, 0, -1, 0, 1, 0, 0, 1, -2, -5, 2, -1, 0, 1,
	0, 0, 2, 2, 0, -1, -2, -3, 0, 5, 0, 3, 0, 1,
	1, 0, 1, -2, 0, 0, 3, 16, 1, 3, -2, -3, 0, 0,
	0, 0, 1, 0, 1, -1, 0, 1, -8, 0, 0, 0, 0, 2,
	0, 0, 1, 0, 2, 0, 3, -16, -8, 2, -5, 0, 0, 2,
	0, 0, 0, 1, 1, -1, 0, -4, 0, 1, 0, -1, 1, 0,
	1, 0, 1, -2, 0, 0, 0, 2, 4, 0, 0, -3, 0, 1,
	0, 0, 0, -2, 0, 1, 0, -16, -4, 1, 1, 0, 1, 0,
	0, 0, 0, -1, 0, 0, 0, -3, 8, -5, 0, -1, 0, 0,
	0, 0, 2, 1, 0, 1, -2, 4, 1, 0, 0, -1, 0, 1,
	0, 0, 0, -2, 1, -1, 3, 0, 0, -5, -5, 0, 0, 1,
	1, 0, -2, -2, 0, 0, -8, -1, -1, 2, -5, 1, 0, 0,
	1, 0, 2, 1, 2, 0, -1, -4, 0, 5, -2, 0, 0, 1,
	-1, 0, 0, 1, 0, 0, -3, 2, 0, -3, 5, 0, 0, 0,
	-2, 0, 0, 0, 0, 0, -3, -1, 1, 5, 5, 0, 0, 0,
	-1, 0, 2, 0, 1, 1, -2, 0, 2, -5, 5, -1, 0, 0,
	0, 0, -1, 0, 0, 0, 8, 0, 8, 0, 5, -1, -1, 0,
	0, 0, 1, 2, 1, 0, 1, -3, -1, 2, 0, 0, 0, 1,
	1, 0, 0, 2, 1, 0, 0, 1, -8, 0, 5, 0, 0, 1,
	0, 0, 1, 0, 0, 0, 0, 4, 0, 0, -1, 3, -1, 0,
	0, 0, 0, 2, 0, 0, 2, 0, -8, -5, 0, 0, 0, 2,
	-2, 0, -1, 0, 0, 0, 0, 0, -8, 1, 0, -3, 0, 2,
	-1, 0, 0, 0, 1, 0, -3, -3, 0, 1, 0, 0, 0, 2,
	0, 0, -2, -1, 1, -1, 2, 4, 4, 3, 0, 1, 0, 0,
	-1, 0, 2, 1, 1, -1, -8, 3, -4, -5, 0, 1, 0, 1,
	1, 0, 1, 1, 0, 0, 0, -4, -4, 1, -1, 0, 0, 2,
	0, 0, -2, 0, 0, 1, 0, 0, 0, -2, -5, -3, 0, 2,
	-2, 0, 1, 1, 0, 0, 8, -2, 4, 0, 5, 3, 0, 0,
	0, 0, -1, 1, 1, 0, 3, 2, 4, 1, 0, 0, 0, 2,
	0, 0, 0, 0, 0, 0, -8, -3, -4, 2, 1, 0, 0, 2,
	-1, 0, 2, 0, 0, 0, 0, -3, 0, 2, -2, -1, 0, 1,
	-2, 0, 0, -2, 0, 0, 1, 3, 8, -5, 5, -1, 0, 2,
	0, 0, -1, 1, 0, 0, 8, 2, -8, -5, 0, 0, 0, 0,
	2, 0, 1, -2, 0, 1, -1, 16, 0, 5, -1, 0, 0, 0,
	-2, 0, 0, 0, 2, 0, 0, 0, -1, 0, 2, 0, 0, 0,
	1, 0, 2, 0, 1, 0, -1, 4, 0, 3, -1, 3, 0, 2,
	-2, 0, -2, 1, 1, 0, 0, 0, 0, 0, 0, 1, 0, 0,
	-1, 0, 1, 2, 2, 0, -1, 0, -8, -2, 0, 0, 1, 0,
	1, 0, -2, 0, 1, -1, 8, 3, -4, 0, 0, 0, 1, 2,
	0, 0, 2, -1, 0, 0, 0, 0, 4, 5, 5, 0, 0, 1,
	1, 0, 2, 0, 0, 1, 8, -2, 4, 3, -1, -3, 1, 2,
	-1, 0, 0, 0, 0, -1, 0, 4, 2, 0, 0, -3, 0, 2,
	0, 0, 2, 0, 1, 0, -8, 1, 1, 5, 0, -1, 0, 0,
	1, 0, 0, 0, 1, 0, 8, 1, -4, 0, 0, 0, 0, 2,
	2, 0, 0, 2, 1, 1, 0, -16, 0, 3, 0, 0, 0, 0,
	-2, 0, 1, -2, 1, 0, -2, 0, -2, 1, 2, 0, 0, 0,
	0, 0, 2, 1, 1, -1, -3, -4, -1, -5, 0, 0, 1, 1,
	-1, 0, 0, 2, 1, 0, 0, -4, -1, 1, -2, -3, 0, 2,
	1, 0, 2, 2, 2, 1, 2, 16, -2, -1, 0, -3, 0, 1,
}

var amp00PL = []float64{
	1440.0, 0.0, 0.0, 0.0,
	56.0, -117.0, -42.0, -40.0,
	125.0, -43.0, 0.0, -54.0,
	-114.0, 0.0, 0.0, 61.0,
	-219.0, 89.0, 0.0, 0.0,
	-462.0, 1604.0, 0.0, 0.0,
	-977.0, 0.0, 0.0, -5.0,
	-571.0, 0.0, 0.0, -2.0,
	-311.0, 0.0, 0.0, 0.0,
	248.0, 0.0, 0.0, -1.0,
	188.0, 0.0, 0.0, 0.0,
	-725.0, 0.0, 0.0, 301.0,
	543.0, 0.0, 0.0, -4.0,
	-331.0, 0.0, 0.0, 144.0,
	-99.0, 0.0, 0.0, 0.0,
	-69.0, 0.0, 0.0, 35.0,
	-169.0, 0.0, 0.0, 0.0,
	57.0, 0.0, 0.0, -24.0,
	128.0, 0.0, 0.0, 0.0,
	-81.0, 0.0, 0.0, 1.0,
	273.9, 81.7, 60.5, -35.7,
	-132.0, -6.7, 44.6, -28.9,
	-91.8, 15.1, -15.2, 5.2,
	-97.3, -4.1, 48.2, -29.0,
	-159.9, 63.4, 42.0, -36.7,
	228.4, -108.4, -55.2, 28.6,
	-142.2, 47.8, 18.3, -11.6,
	228.8, 0.2, 4.7, -5.6,
	221.7, -128.8, 28.8, -18.6,
	86.3, -32.7, 34.6, -15.4,
	118.7, -24.1, 17.8, -7.3,
	109.4, -14.8, -2.8, 3.4,
	-182.0, -10.1, 50.3, -26.1,
	-225.7, -113.3, -8.0, 34.9,
	172.4, 13.1, 74.6, -51.7,
	199.2, -16.5, 89.2, -52.5,
	-110.7, 26.7, 36.4, -5.9,
	236.6, -5.5, -19.2, 11.0,
	-76.4, 21.8, -13.5, 4.1,
	-152.2, 79.4, -74.7, 40.1,
	-108.0, -9.9, 37.3, -29.8,
	124.2, 32.7, -37.3, 35.0,
	178.5, 86.5, -31.0, 7.0,
	-157.5, 52.1, 50.7, -25.0,
	-237.1, 129.9, 36.5, -75.8,
	-187.4, -106.0, -10.8, -7.3,
	204.9, -48.2, -1.4, 8.8,
	166.5, 97.8, -73.4, 51.2,
	212.6, 8.2, 59.4, -32.7,
	-146.8, 77.8, 8.9, 20.1,
	-172.5, 69.3, 8.1, -19.1,
	124.0, -33.8, 38.2, -17.9,
	-151.8, -89.1, -72.1, 49.8,
	136.6, 49.6, 6.2, 10.3,
	135.6, 24.6, 44.6, -29.1,
	-110.6, 10.8, 50.8, -46.7,
	206.4, -60.6, 43.3, -45.4,
	-137.8, 20.8, -54.3, 39.4,
	151.6, 69.1, 64.6, -82.4,
	-119.8, 6.9, -7.5, 3.9,
	172.2, 17.6, 61.3, -39.5,
	177.4, -26.5, -2.1, -1.7,
	88.5, -1.9, 38.1, -17.1,
	214.0, 34.8, -103.4, 29.4,
	203.3, -89.0, 71.4, -42.0,
	175.1, 2.5, 21.7, -24.9,
	-133.7, 42.3, -17.1, 13.2,
	-67.5, -0.7, -1.1, 1.0,
	-98.6, -6.8, -41.4, 20.0,
	109.7, -20.8, 31.4, -25.9,
	-113.2, -48.4, -4.1, 3.6,
	83.2, -35.8, 15.6, -13.1,
	100.7, -14.7, 36.1, -34.6,
	85.3, -9.0, 7.3, -2.8,
	124.4, 69.9, -18.7, 17.0,
	-61.9, -30.1, 25.1, -30.5,
	110.2, 8.4, -0.3, -2.2,
	68.7, -25.9, 2.2, -8.4,
	-166.9, -95.8, 10.3, -34.9,
	161.4, -72.1, 48.0, -77.4,
	-127.4, 0.9, -3.4, 0.8,
	-123.0, 43.9, 31.5, -20.9,
	-149.7, -66.0, 65.0, -47.2,
	132.8, -2.5, 12.3, -3.6,
	80.3, -33.2, -24.8, 9.7,
	78.3, 31.9, -16.0, -4.0,
	-169.3, 93.6, 5.3, -20.7,
	-55.7, 22.6, 17.9, -3.0,
	-152.2, -7.6, 13.4, -10.5,
	-84.3, 25.5, -38.8, 26.2,
	-80.7, -18.2, -19.1, 21.2,
	120.8, 44.7, 43.7, -31.0,
	57.3, 33.8, 5.9, -10.8,
	165.8, -49.7, 0.9, 10.3,
	141.8, -17.2, -67.5, 27.6,
	-141.2, -60.5, -23.6, 17.0,
	-152.8, -51.6, -60.2, 81.0,
	-140.1, 11.7, 56.6, -17.6,
	-141.2, 17.2, 27.9, -8.7,
	164.2, -70.7, 31.5, 10.0,
	-100.7, -36.9, -24.6, 6.6,
	126.1, -41.8, -41.2, 44.3,
	-103.0, 11.8, -24.5, 11.1,
	79.9, 27.4, -19.3, 7.0,
	117.8, 47.7, -36.4, 38.8,
	-69.0, -10.2, 21.8, -21.4,
	-77.9, 14.2, -18.7, 15.4,
	77.8, -42.0, 31.3, -22.1,
	-116.9, 45.4, -58.0, 33.7,
	111.4, -2.0, -55.7, 55.2,
	148.6, 48.6, -66.8, 37.7,
	152.4, -60.8, 19.1, -38.6,
	120.5, 49.9, 32.2, -18.1,
	68.5, 36.6, -31.7, 19.7,
	-129.1, 9.9, 47.7, -46.7,
	134.2, 78.6, 29.3, 12.5,
	57.3, -11.6, 9.3, -10.7,
	-52.0, 14.9, 5.0, -4.2,
	-124.4, -69.2, 9.8, -28.5,
	-148.8, 40.4, -67.6, 29.9,
	101.9, -19.2, -6.8, 3.4,
	141.6, -33.9, 38.4, -25.2,
	75.9, -37.0, -25.6, 6.2,
	98.4, -29.8, 49.2, -41.4,
	-146.1, -23.8, 37.7, -17.2,
	-120.3, 4.2, 14.4, -16.2,
	107.8, 36.8, -41.2, 7.8,
	93.8, -28.6, -46.9, 51.3,
	75.5, 31.8, 0.8, 8.5,
	-62.1, -26.7, -27.7, 20.3,
	-54.2, 26.5, -21.5, 6.7,
	83.2, -11.2, -37.3, 32.5,
	51.0, 7.6, -8.3, 6.7,
	-105.2, -1.1, -38.2, 14.5,
	126.7, -62.7, 45.5, -23.4,
	86.0, -18.0, 11.2, -9.4,
	112.8, -13.0, 21.3, -19.8,
	58.1, 11.2, -12.3, 8.3,
	56.8, 17.8, 24.5, -11.9,
	64.3, -29.5, 11.3, -7.7,
	71.2, -36.1, 28.4, -15.9,
	77.5, 44.0, -25.0, 21.1,
	-110.7, -1.9, -49.9, 16.6,
	-87.4, 26.4, -4.7, 15.3,
	-60.4, 14.7, -5.1, 2.6,
	61.5, 26.3, -11.9, 11.6,
	89.9, -0.7, 20.4, -8.4,
	-91.4, 18.6, 10.6, -7.6,
	95.7, -3.5, -26.8, 24.0,
	-57.5, -27.4, -1.8, -0.5,
	61.4, -3.3, 6.5, -5.6,
	110.9, 34.3, 16.8, -14.2,
	-65.6, 33.6, -11.8, 11.0,
	85.5, -50.4, -21.9, 4.8,
	-111.5, 66.6, 13.7, -10.3,
	-40.4, -18.1, -9.1, 2.7,
	40.5, 6.5, 19.0, -6.6,
	44.6, -13.8, 8.7, -3.9,
	50.7, 25.7, 7.0, -0.2,
	100.1, 41.8, -29.7, 27.7,
	-110.8, 56.8, 36.0, -38.0,
	84.0, -5.2, -25.0, 16.1,
	61.1, 20.1, -13.6, 10.2,
	85.6, -3.9, 41.2, -31.2,
	44.9, -13.4, 12.0, -5.1,
	-42.0, -12.6, -9.3, 12.9,
	63.0, 28.3, -18.2, 10.6,
	-102.0, -40.8, 4.2, -4.7,
	-67.7, -22.2, 12.7, -9.7,
	-78.2, -7.3, 16.9, -9.1,
	-93.3, 17.5, -20.3, 15.8,
	61.7, 8.0, -27.0, 20.0,
	56.3, 26.8, 3.4, 1.7,
	91.9, -13.9, -22.0, 16.7,
	-41.2, -3.4, 19.6, -22.2,
	-69.2, 35.4, 19.7, 4.4,
	104.1, -20.3, -49.5, 22.4,
	-88.3, 34.2, -4.1, 15.0,
	-58.5, -2.1, -28.3, 29.7,
	-33.2, -7.2, 5.6, -2.4,
	-102.0, -24.2, 46.9, -36.5,
	-68.7, 34.2, 22.8, -3.7,
	-61.0, -20.0, -0.7, -2.6,
	77.4, 3.2, 22.4, -8.6,
	87.6, 21.1, -26.6, 24.4,
	-98.3, -18.8, 9.2, 1.5,
	51.6, -18.7, 9.1, -1.4,
	56.6, 0.4, 0.1, -0.2,
	91.0, -44.6, -14.9, -5.0,
	75.3, -35.6, -13.2, 16.0,
	-95.5, 37.5, 41.4, -11.2,
	38.8, 14.7, 6.8, -8.6,
	66.1, 27.4, 29.5, -36.3,
	67.2, -9.4, -22.7, 19.9,
	-78.9, -9.4, -39.4, 41.1,
	54.4, 17.8, -20.0, 5.6,
	-78.0, -45.3, 30.4, -11.5,
	-80.4, -28.2, 12.7, -13.9,
	-63.7, 2.7, -24.7, 9.9,
	34.4, -18.0, 8.5, -5.7,
	50.0, -25.5, -6.2, 12.0,
	-57.5, 1.0, -4.0, 2.5,
	63.1, 11.0, -1.9, -0.3,
	76.9, 24.1, 21.9, -19.3,
	-38.6, 21.2, -11.4, 7.1,
	-34.1, -10.4, -1.7, 3.8,
	52.6, 1.8, -7.3, 2.5,
	27.6, -11.1, 6.5, -8.8,
	-81.5, 48.4, 7.5, -21.7,
	-62.6, 24.9, -23.7, 9.4,
	-66.4, -16.8, -15.4, 7.8,
	56.8, 11.5, 10.3, -6.2,
	69.3, -32.2, -15.0, 10.1,
	-42.3, 17.4, -5.7, 1.8,
	-57.8, 27.2, -17.0, 13.6,
	54.1, -18.3, -22.0, 5.9,
	52.4, -26.9, -13.5, -3.7,
	55.0, -6.7, -3.6, 4.7,
	31.8, 14.4, -5.4, 5.7,
	-50.4, -27.2, 2.3, 2.9,
	-46.8, -27.5, -17.8, 21.5,
	72.0, 5.8, -22.5, 16.0,
	27.3, 12.6, 10.1, -11.3,
	-49.4, -15.0, -6.0, 8.3,
	-30.6, 0.2, 14.8, -8.9,
	-76.9, 7.3, -30.5, 11.1,
	-41.2, 4.7, -13.0, 7.9,
	-45.2, 12.2, -22.5, 22.3,
	38.6, 8.2, 9.7, -8.8,
	-30.5, -14.0, -9.8, -1.7,
	48.9, 17.5, 11.3, -4.5,
	-56.3, -16.1, 7.5, -2.4,
	-56.5, -3.6, 11.1, -4.9,
	-67.2, 32.6, 17.5, -24.2,
	-59.2, 31.1, -19.3, -0.2,
	-48.1, -17.3, -0.7, 6.8,
	-26.6, -9.3, 1.3, 0.4,
	26.2, -14.4, -0.6, -1.6,
	26.2, 14.6, -7.0, 3.9,
	65.1, -25.0, 16.9, -12.5,
	32.2, 0.4, 14.1, -16.2,
	-26.9, 12.0, 9.3, 0.0,
	50.7, 5.0, 4.0, -3.0,
	-22.7, -9.6, 7.4, -4.3,
	61.4, 26.4, -18.4, 24.3,
	-33.5, 2.1, 15.9, -7.5,
	-44.6, 26.4, 17.7, -29.0,
	-38.6, -15.3, -18.6, 15.3,
	64.5, -34.5, 15.2, -18.3,
	66.4, 19.4, -6.9, 4.8,
	45.7, -23.0, -19.8, 17.4,
	60.1, -32.4, 25.2, -29.4,
	52.6, -7.5, -4.5, 2.5,
	46.0, -2.2, 14.8, -10.8,
	55.8, -4.5, -7.6, 7.1,
	-48.0, 28.6, -5.7, 7.3,
	22.1, 11.4, -5.1, 1.6,
	55.6, 16.5, 18.5, -26.5,
	44.5, 4.0, -14.2, 7.7,
	-55.2, 0.3, -26.6, 15.3,
	51.8, -7.0, 8.6, -5.3,
	47.8, 20.6, 7.8, -8.4,
	32.8, 4.5, -8.4, 4.4,
	29.7, -0.1, 11.0, -10.5,
	32.1, 14.9, 3.1, 0.4,
	-37.3, -14.6, -12.9, 11.1,
	-56.6, 15.6, -7.1, 8.8,
	40.2, -4.9, -10.6, 3.5,
	-20.4, 4.8, -4.0, 2.3,
	-52.8, 28.4, 14.5, -18.9,
	-39.6, -9.2, -9.9, 2.4,
	-57.5, 5.6, 25.8, -24.5,
	19.7, -2.7, -0.7, 1.3,
	47.2, -5.6, -11.3, 8.2,
	-42.8, 15.6, -5.3, 4.5,
	48.0, -16.5, 11.7, -19.0,
	34.9, -3.7, -6.9, 4.1,
	-47.8, -19.9, -12.2, 9.2,
	25.9, -11.6, 4.9, -3.8,
	-26.3, 14.2, 5.2, -9.7,
	53.5, -28.7, -18.4, 16.9,
	44.8, 7.4, 6.4, -7.1,
	-51.5, 22.8, 13.1, -2.2,
	38.6, -1.7, 4.6, -3.4,
	23.0, -4.7, 11.1, -11.4,
	52.4, 20.8, -13.2, 13.6,
	42.4, -21.6, -14.3, 8.9,
	27.7, -16.4, -7.4, 11.6,
	-28.9, 3.8, 13.3, -5.8,
	35.6, -15.6, 14.8, -1.8,
	35.1, -4.0, 1.7, -2.8,
	-47.7, 0.6, -10.4, 9.3,
	-42.8, 5.9, 3.9, -2.6,
	36.0, 19.0, -3.4, 3.7,
	23.1, -6.4, 10.2, -8.1,
	-22.4, -0.3, 0.7, -0.5,
	-49.1, -16.0, -17.1, 16.9,
	-42.0, -11.5, 14.2, -11.6,
	45.1, 17.6, -1.6, 2.2,
	44.7, 19.9, -0.2, -2.8,
	20.4, -1.4, 3.0, -1.3,
	39.6, -15.3, -15.4, 12.4,
	36.6, 10.6, -0.9, 4.1,
	-36.7, 0.2, 9.8, -9.8,
	-34.1, 19.5, -11.1, 3.4,
	-36.9, 13.0, 10.4, -7.6,
	-39.0, 18.2, -6.2, 3.6,
	-20.8, -0.9, 3.1, -3.5,
	-33.7, -18.6, 6.9, -11.9,
	25.5, 6.9, -8.4, 3.0,
	-23.7, -1.4, 2.8, -2.4,
	17.7, -7.8, 4.8, -2.7,
	-29.8, 2.6, -5.6, 7.0,
	-18.2, 10.8, 6.5, -5.7,
	-13.9, 2.5, -6.0, 4.7,
	-34.6, -16.9, -10.3, 11.5,
	-24.3, 6.0, 9.3, -1.8,
	41.8, 7.9, -0.9, 0.1,
	-16.5, 0.2, -4.4, 2.4,
	18.3, -0.8, -7.3, 6.0,
	41.2, -4.5, -6.7, 8.3,
	-17.1, -6.6, -3.7, 4.9,
	-37.4, 10.6, -17.3, 15.7,
	25.2, -7.3, -10.0, 6.9,
	-34.7, -8.0, -5.9, 3.8,
	-36.3, 15.4, 5.6, -4.9,
	35.5, -3.3, 3.0, -3.2,
	32.6, 9.2, 5.7, -2.5,
	-35.3, -14.5, -12.0, 9.0,
	-19.0, -6.6, -7.0, 1.2,
	21.7, -2.9, -0.4, -0.1,
	40.0, -10.3, 14.5, -2.1,
	19.1, -0.1, -3.7, 1.7,
	38.2, -19.9, -17.9, 12.4,
	35.2, 15.8, -13.7, 14.4,
	-15.0, -5.6, -2.5, 0.9,
	26.8, -4.1, -4.5, 2.9,
	38.1, -2.1, -15.5, 13.4,
	23.4, 0.5, 5.7, -2.7,
	36.9, 6.5, 1.0, 1.4,
	-18.7, 10.4, 5.0, -1.9,
	11.8, 4.5, -0.3, 0.2,
	-18.7, -8.3, 6.5, -5.3,
	-31.5, -18.6, 9.2, -1.7,
	18.7, -4.1, 8.4, -2.6,
	-30.1, -14.3, 8.5, -14.9,
	15.5, 3.6, -5.2, 3.3,
	18.5, -2.0, 9.1, -5.3,
	-21.1, -5.8, -9.4, 3.3,
	22.2, -10.4, -9.7, 8.9,
	-21.1, 8.1, -3.0, 6.6,
	-35.3, -11.6, 1.4, -0.6,
	-33.6, -14.0, -14.6, 12.6,
	-29.1, -16.9, 3.0, -5.5,
	-13.5, 1.4, 0.6, -1.2,
	-23.1, 1.0, 2.2, -2.6,
	16.0, 3.0, 0.6, 0.2,
	13.7, -6.4, -1.8, 2.1,
	21.3, -3.6, 1.6, -0.4,
	26.9, -4.1, -13.1, 4.4,
	-25.9, -8.5, 2.4, -1.6,
	12.6, -0.9, 3.6, -1.1,
	-19.5, 10.0, -1.6, 4.3,
	-27.4, 14.4, -10.2, 15.5,
	28.7, -13.3, 8.1, -6.1,
	13.5, -7.5, 6.6, -4.2,
	-31.6, 11.9, -3.5, 6.5,
	-27.2, 13.1, 1.7, -6.4,
	-11.5, -6.6, -0.6, 2.4,
	-14.5, -0.1, 6.9, -8.3,
	-28.0, -10.8, 1.4, 0.3,
	20.8, -2.6, 9.2, -7.1,
	-18.3, -7.8, 8.9, -3.7,
	-28.0, -15.5, -3.8, 2.4,
	-30.2, 8.8, 8.3, -6.8,
	-17.1, 5.8, -4.7, 4.4,
	-22.0, 13.1, 5.5, -0.1,
	29.2, -0.8, -14.5, 7.4,
	16.0, 2.4, -7.6, 5.1,
	-22.5, -1.3, -7.7, 3.4,
	-23.6, 4.9, -5.5, 7.8,
	14.9, -7.7, -4.5, 1.4,
	19.3, -5.6, -2.4, 2.7,
	-17.9, 7.2, -3.1, 0.2,
	-15.2, -3.5, 3.0, -2.9,
	-20.4, 1.9, -9.0, 10.0,
	-13.9, -3.4, -5.2, 4.7,
	13.1, -6.7, 5.3, -5.7,
	13.3, 2.1, -3.8, 2.2,
	16.7, 0.7, 0.5, -0.5,
	9.9, -3.7, 0.0, 0.1,
	12.8, -6.7, -4.3, 1.7,
	-26.6, -11.2, -11.6, 1.2,
	-9.9, 5.4, -1.1, 2.5,
	-16.2, -6.2, 3.5, -1.8,
	-11.5, 2.3, 1.5, -0.9,
	-22.6, 1.1, -8.7, 9.9,
	16.6, -3.8, -5.2, 4.9,
	-20.0, 4.5, 7.8, -9.2,
	11.5, -1.5, -4.5, 2.2,
	25.9, 1.4, 10.0, -4.7,
	-15.4, 7.0, -5.7, 6.7,
	18.3, -0.7, 8.2, -9.3,
	-18.2, 0.7, -1.9, 1.8,
	21.3, 1.9, -1.2, -0.0,
	19.8, -10.3, -4.1, 2.0,
	12.7, 3.7, -0.9, -0.6,
	8.8, 0.4, 1.2, -1.3,
	23.9, -14.2, -10.9, 14.1,
	16.6, -2.8, -0.8, 0.4,
	14.6, -5.8, -4.5, 4.6,
	-20.2, -11.6, -4.3, 3.0,
	-20.9, -5.4, 8.9, -1.8,
	-12.2, -0.9, 5.0, -4.5,
	23.7, 6.5, 2.0, -0.2,
	-9.0, -3.8, 3.8, -3.7,
	16.9, 9.4, 1.1, -2.2,
	20.7, 6.2, 8.1, -8.6,
	-19.5, 10.0, -1.9, 4.3,
	-18.8, 1.8, 3.3, -1.5,
	19.7, -2.8, 7.9, -5.0,
	15.1, -3.6, -6.2, 2.8,
	-18.8, -2.1, 0.6, 0.1,
	17.6, 6.9, 2.4, -0.2,
	9.5, 4.5, 1.2, -2.0,
	13.2, -0.1, -6.0, 6.3,
	-17.7, 4.6, -2.4, 1.1,
	11.8, -4.6, -1.6, 1.6,
	21.0, 6.6, 2.2, -4.0,
	19.4, 8.3, 7.1, -7.0,
	17.5, -0.3, 3.5, -4.0,
	-11.1, 2.4, 3.7, -1.9,
	-9.2, 3.8, 2.2, -1.0,
	-10.8, 0.7, -5.2, 2.7,
	-13.1, 2.6, -2.2, 1.8,
	-10.3, 0.8, -3.5, 4.0,
	-12.2, 1.9, 1.1, -0.1,
	6.3, -2.3, 2.2, -1.9,
	11.0, 2.6, -4.4, 2.8,
	-18.2, -5.2, -9.0, 6.7,
	10.8, 1.2, 2.7, -1.8,
	12.0, 0.6, -4.3, 1.5,
	17.2, 9.5, 1.5, 1.3,
	-18.1, -6.9, -4.9, 5.9,
	-10.3, -5.8, -4.4, 2.3,
	-8.5, -3.0, 3.2, -4.5,
	12.9, 2.9, 2.8, -2.1,
	9.6, 3.0, -1.4, 0.1,
	-10.9, -1.8, 3.7, -3.9,
	8.4, 1.5, 0.2, 0.0,
	9.4, -4.2, 4.7, -2.6,
	-8.4, 2.3, -0.5, 0.3,
	14.8, -5.3, -0.7, 1.1,
	-6.0, -2.0, -1.7, 1.8,
	-13.0, 3.3, -0.7, 1.4,
	-17.0, -10.1, 4.5, -6.1,
	-7.8, 4.2, 3.3, -3.2,
	-6.7, -1.0, 1.5, -1.2,
	12.7, 3.2, -5.5, 5.8,
	13.3, -4.8, -1.8, 0.0,
	-11.4, -3.4, -0.5, 1.0,
	11.5, -6.1, 1.9, -1.9,
	7.9, -2.5, -3.1, 2.8,
	-13.6, -6.2, 3.2, -3.7,
	16.9, -2.0, 5.1, -3.3,
	-9.8, -1.8, 1.7, -1.9,
	-8.9, 1.2, -1.3, 0.4,
	16.2, 6.1, -3.0, 4.3,
	12.0, 2.5, -1.7, 1.0,
	16.6, 7.8, -6.4, 1.5,
	9.3, 3.3, -3.9, 4.1,
	6.3, 2.4, -0.8, 0.1,
	-7.7, -4.0, 3.0, -2.7,
	-7.0, -3.9, -1.7, 0.9,
	-10.3, 1.6, -1.6, 2.5,
	-9.9, -1.8, 3.6, -3.0,
	10.3, -6.0, 2.1, -1.6,
	5.4, 2.7, -2.7, 3.7,
	-10.4, -1.8, -4.8, 2.4,
	8.0, 1.6, 1.9, -1.5,
	7.7, -0.8, 1.1, -0.8,
	13.8, 7.8, 0.3, -0.0,
	-15.0, 4.7, -5.2, 2.5,
	7.1, -3.9, -2.2, 0.6,
	7.1, 2.1, -0.3, 1.1,
	-14.4, 0.5, 4.7, -4.4,
	-7.6, 0.2, -0.7, 0.3,
	-11.1, -5.1, -0.7, 1.2,
	8.4, -3.9, -1.8, -0.1,
	-13.8, 3.3, -0.5, 0.9,
	-11.5, 5.5, -4.5, 3.4,
	8.0, 2.5, 0.6, -1.2,
	-11.7, 3.9, 1.2, -1.2,
	12.0, 5.4, 3.1, -0.3,
	-8.0, 2.1, 3.3, -3.0,
	-6.6, 1.2, 2.4, -1.4,
	-4.4, -0.1, 1.5, -0.7,
	-10.3, 3.3, -3.2, 4.5,
	6.3, 1.1, 1.3, -1.2,
	4.5, 2.4, 1.9, -1.8,
	10.1, 2.0, 4.2, -4.2,
	5.8, -3.5, -0.2, -1.1,
	-9.4, 0.9, -1.8, 1.1,
	-11.3, -1.5, 4.7, -4.5,
	7.0, -3.4, -1.7, -0.2,
	-4.4, -2.4, 1.6, -0.9,
	-4.8, -0.9, -0.6, 0.3,
	5.6, -0.2, -1.5, 1.3,
	10.1, 3.9, 2.2, -0.7,
	6.3, 0.7, -2.1, 1.6,
	5.0, 0.4, -2.1, 1.5,
	4.1, -2.0, 1.0, -0.5,
	5.7, -2.7, 0.9, 0.7,
	-6.1, 2.8, -2.1, 3.4,
	-4.3, 1.2, 1.2, -0.3,
	-11.6, -1.9, 1.2, -1.1,
	-10.8, -4.8, -1.1, -0.9,
	-10.8, -0.3, -4.4, 4.7,
	6.8, 2.8, 1.0, -2.0,
	-11.4, 5.0, 2.8, -2.2,
	9.2, -5.4, 4.6, -3.5,
	9.7, -2.9, -3.6, 1.3,
	7.1, -3.5, 0.5, -1.0,
	-9.2, -4.4, -1.6, 0.9,
	-7.3, 2.4, -1.9, 1.3,
	-8.8, -1.5, 2.0, -2.1,
	11.8, 4.6, 4.8, -6.4,
	-10.0, 4.1, 2.7, -3.0,
	-4.8, 2.4, 1.5, -1.8,
	-8.7, 2.7, -0.3, 0.1,
	-5.4, 2.9, 1.4, -0.5,
	-4.1, 1.5, -0.3, 0.3,
	9.0, 1.0, -1.4, 1.1,
	7.7, 0.1, -2.1, 1.7,
	-10.8, -5.2, 0.6, 0.5,
	-7.2, -0.6, 0.2, -0.2,
	6.4, 0.2, 2.8, -1.5,
	-8.5, -4.9, 3.1, -2.2,
	9.0, -2.0, 1.7, -0.5,
	-10.7, 2.0, -4.6, 3.8,
	3.8, -0.3, -0.9, 0.9,
	10.3, -3.6, -1.5, 0.7,
	4.8, 2.7, -2.1, 2.7,
	9.6, -0.9, -2.0, 1.4,
	8.8, 3.3, 3.3, -3.3,
	-3.3, -2.0, -1.3, -0.3,
	-9.7, -2.8, -4.7, 4.4,
	-9.2, 2.3, 1.4, -1.4,
	6.9, 0.6, -3.3, 2.5,
	-6.4, 2.6, 0.8, -0.2,
	8.7, -3.4, 0.8, -1.6,
	-6.1, -2.3, 1.2, 0.1,
	-7.7, -3.2, 0.2, 0.9,
	8.2, -2.6, -1.6, 1.2,
	5.2, 1.5, -0.0, -0.2,
	-6.7, -0.6, 1.8, -1.2,
	-7.8, -0.1, -2.9, 2.8,
	3.3, 0.8, 0.2, -0.4,
	-4.8, -0.4, -1.8, 1.8,
	-8.5, -2.7, -3.5, 1.5,
	-4.3, 0.2, 1.4, -0.9,
	3.0, -1.0, -1.0, 0.3,
	-6.4, -1.4, -3.2, 2.4,
	-4.8, 1.6, -0.7, 1.1,
	-6.7, -0.2, 3.1, -3.2,
	-3.6, 0.4, 0.9, -0.5,
	-5.7, -2.2, -1.4, 1.6,
	-3.6, -1.6, -1.8, 1.9,
	3.4, 1.7, -0.5, 0.9,
	3.4, 1.5, -1.1, 0.9,
	8.1, -4.2, 1.8, -1.5,
	8.9, 0.5, -3.2, 3.7,
	8.4, 2.1, 0.5, 0.4,
	-5.1, -2.5, 1.6, -1.5,
	8.8, -5.0, -3.4, 3.1,
	-5.3, 0.5, -0.6, 0.2,
	4.3, -0.0, -1.6, 0.8,
	-6.1, -0.4, -2.0, 1.7,
	-3.5, -0.8, -0.9, 1.0,
	-5.5, -2.3, 2.3, -2.2,
	-4.3, -0.4, 0.7, -0.3,
	-8.0, 1.3, 2.2, -1.7,
	-6.9, -1.0, 3.1, -4.1,
	-5.6, -2.2, -2.2, 1.6,
	-7.8, 4.0, 1.7, -2.2,
	-7.9, 0.4, 0.8, -0.8,
	7.3, -0.5, 1.2, -1.3,
	5.4, -3.0, -0.9, 0.0,
	5.3, 1.4, 1.0, -0.7,
	-2.8, -0.6, -0.1, 0.2,
	2.7, 0.8, 0.3, -0.5,
	7.5, 2.9, 0.8, -0.7,
	-4.7, 2.5, -1.4, 1.2,
	-4.0, 0.5, -0.3, 0.5,
	2.6, 0.7, -0.7, 0.4,
	3.1, -0.7, 1.4, -1.5,
	5.5, 1.8, -1.2, 1.7,
	5.7, 2.5, -0.7, 1.1,
	-5.5, -0.2, -0.1, 0.1,
	4.3, 0.6, 0.3, -0.2,
	-2.9, 1.2, 0.5, -0.4,
	-2.4, -0.3, 0.3, -0.2,
	4.7, 0.8, -0.7, 0.6,
	-6.0, -3.6, 2.4, -1.4,
	-6.8, 3.6, 2.7, -0.6,
	2.6, -1.5, 0.4, -0.5,
	2.8, -0.8, -1.3, 0.4,
	5.7, 1.9, 0.5, -1.2,
	6.4, 3.8, -1.3, 0.4,
	2.6, 1.3, -1.2, 0.9,
	-6.5, 1.2, 2.0, -1.3,
	5.8, -2.7, 0.5, -0.8,
	-5.0, 2.0, 0.7, -0.6,
	-6.8, 4.0, -2.8, 1.7,
	4.3, -0.3, 0.8, -0.8,
	-6.4, 0.6, 3.0, -1.3,
	6.3, 2.8, -0.8, 1.1,
	5.6, 0.2, -1.6, 1.4,
	-2.8, 0.7, -0.1, 0.3,
	-5.9, -2.9, -1.8, 2.8,
	2.0, -0.8, -0.9, 0.3,
	-6.3, -2.5, -2.9, 2.8,
	4.5, -0.2, -0.6, 0.7,
	2.9, 1.1, 0.0, 0.4,
	3.3, 0.4, -0.2, 0.3,
	-2.4, -0.4, -0.5, 0.2,
	4.2, 0.6, 2.0, -1.4,
	-4.8, -1.6, 0.6, -0.9,
	-3.8, -1.9, -0.9, 0.3,
	-4.1, -1.9, -1.8, 2.8,
	3.4, -1.6, 0.4, -1.0,
	-5.8, 2.4, 1.3, -1.0,
	-5.7, -1.6, -1.7, 1.2,
	-2.8, -1.4, 0.8, -0.9,
	3.7, 1.5, 0.4, -0.7,
	5.3, -0.8, 0.8, -0.1,
	4.5, 0.0, -1.9, 0.8,
	1.9, 0.9, 0.3, -0.6,
	4.9, 0.9, -0.6, 0.8,
	4.0, -2.0, -1.5, 1.1,
	-5.4, -0.8, -1.6, 0.6,
	5.1, 3.0, -0.5, 0.3,
	-4.9, 2.3, -0.9, 0.4,
	-3.5, -1.4, -0.2, 0.3,
	5.1, -0.5, -1.7, 1.6,
	3.7, -2.0, 0.1, -0.5,
	3.0, 0.5, 0.9, -1.0,
	3.6, 1.5, 1.0, -0.8,
	-5.4, -2.3, 1.8, -1.6,
	3.1, -1.5, -0.7, 1.0,
	4.0, -1.6, 0.1, -0.2,
	3.9, 0.5, -1.9, 1.2,
	2.9, -0.7, -0.8, 0.9,
	-2.6, -0.0, 0.3, -0.3,
	-3.6, 2.1, 1.7, -1.3,
	1.8, 0.1, -0.7, 0.6,
	-4.1, 0.6, 1.4, -0.8,
	3.2, 1.4, -0.0, -0.4,
	-2.4, 1.4, -0.7, 1.1,
	-4.9, 1.1, -2.1, 1.7,
	-3.0, 0.5, 1.1, -0.8,
	2.1, -1.1, -0.2, 0.4,
	3.2, 1.4, 0.3, -0.4,
	-4.5, -2.1, 2.2, -1.0,
	-1.7, 0.1, 0.8, -0.5,
	-4.4, -1.1, 0.7, -0.3,
	-2.2, 0.2, 0.3, -0.2,
	-2.7, -1.0, 0.1, -0.2,
	-2.2, 0.4, -0.7, 0.7,
	-2.1, -1.0, -0.2, 0.3,
	-1.9, -0.9, 0.6, -0.1,
	1.7, 0.5, 0.3, -0.2,
	3.3, 0.3, 0.6, -0.5,
	1.6, 0.2, -0.3, 0.3,
	-3.7, -1.1, 0.2, 0.2,
	2.1, -0.3, -0.9, 0.8,
	4.2, -1.1, 1.2, -0.6,
	1.7, 0.3, -0.3, 0.4,
	-3.9, -2.3, 1.0, 0.4,
	-3.6, 1.0, -0.2, -0.0,
	4.3, 1.6, -0.7, 0.8,
	-1.3, 0.2, 0.1, -0.1,
	2.0, -0.2, -0.7, 0.5,
	-2.9, 1.1, -0.3, 0.1,
	2.7, -1.3, -1.2, 0.6,
	-2.0, -0.7, -0.4, 0.6,
	1.9, 1.1, -0.3, 0.7,
}
