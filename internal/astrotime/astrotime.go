// Package astrotime provides Julian date conversions and the time-scale
// offsets needed to reduce observations: calendar to Julian date, Julian
// centuries from J2000.0, and an estimate of delta-T (TT minus UT1).
package astrotime

import (
	"math"
	"time"
)

const (
	// J2000 is the Julian Date of the J2000.0 epoch (2000 January 1, 12:00 TT).
	J2000 = 2451545.0

	// DaysPerCentury is the length of a Julian century in days.
	DaysPerCentury = 36525.0

	// SecondsPerDay is the number of SI seconds in a day.
	SecondsPerDay = 86400.0
)

// JulianDate converts a time.Time to a Julian Date on the UTC scale.
// Uses the standard astronomical algorithm valid for dates after 4800 BC.
func JulianDate(t time.Time) float64 {
	t = t.UTC()
	frac := (float64(t.Hour()) +
		float64(t.Minute())/60.0 +
		(float64(t.Second())+float64(t.Nanosecond())/1e9)/3600.0) / 24.0
	return CalendarToJD(t.Year(), int(t.Month()), t.Day(), frac)
}

// CalendarToJD converts a Gregorian calendar date plus a day fraction
// (0 = 0h UT) to a Julian Date.
func CalendarToJD(year, month, day int, dayFrac float64) float64 {
	y := float64(year)
	m := float64(month)

	// January and February count as months 13 and 14 of the previous year.
	if m <= 2 {
		y--
		m += 12
	}

	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	jd := math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + float64(day) + b - 1524.5
	return jd + dayFrac
}

// JDToTime converts a Julian Date to a time.Time in UTC. Sub-second
// precision is limited by float64 resolution at modern dates (~10 µs).
func JDToTime(jd float64) time.Time {
	z, f := math.Modf(jd + 0.5)

	a := z
	if z >= 2299161 {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day := b - d - math.Floor(30.6001*e)
	month := e - 1
	if e >= 14 {
		month = e - 13
	}
	year := c - 4716
	if month <= 2 {
		year = c - 4715
	}

	secs := f * SecondsPerDay
	h := int(secs / 3600)
	secs -= float64(h) * 3600
	min := int(secs / 60)
	secs -= float64(min) * 60
	s := int(secs)
	ns := int((secs - float64(s)) * 1e9)

	return time.Date(int(year), time.Month(month), int(day), h, min, s, ns, time.UTC)
}

// CenturiesJ2000 returns Julian centuries elapsed since J2000.0 for the
// given Julian Date. The caller decides which time scale jd carries.
func CenturiesJ2000(jd float64) float64 {
	return (jd - J2000) / DaysPerCentury
}

// JDFromCenturies is the inverse of CenturiesJ2000.
func JDFromCenturies(t float64) float64 {
	return J2000 + t*DaysPerCentury
}
