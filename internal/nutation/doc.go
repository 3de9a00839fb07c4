// Package nutation evaluates the nutation of Earth's rotation axis, the
// forced short-period wobble of the true pole about the mean pole, as two
// angles: nutation in longitude (delta psi) and nutation in obliquity
// (delta epsilon).
//
// Two trigonometric-series theories are implemented:
//
//   - the IAU 1980 luni-solar series (106 terms), used by the IAU 1976,
//     Laskar 1986, Simon 1994, Williams 1994 and JPL DE4xx reduction
//     methods, which differ in precession theory but share this nutation
//     theory;
//   - the IAU 2000A luni-solar plus planetary series (678 + 687 terms),
//     used by IAU 2000, and by IAU 2006/2009 after a precession-rate
//     consistency rescaling (Wallace & Capitaine 2006).
//
// Measured celestial pole offsets (the free-core-nutation signal) can be
// added from an Earth-orientation table via [Config].
//
// # Thread Safety
//
// [Calc] memoizes the most recent (T, method) result in a single
// process-wide slot guarded by a mutex. Calls are safe from multiple
// goroutines, but interleaved queries for different instants defeat the
// memo; callers needing throughput should partition work by instant.
package nutation
