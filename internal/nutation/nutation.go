package nutation

import (
	"errors"
	"fmt"

	"github.com/vparth/truepole/internal/astrotime"
	"github.com/vparth/truepole/internal/eop"
)

// ErrUnknownMethod is returned when a Method value outside the closed
// enumeration reaches the dispatcher. Computing with a silently chosen
// default series would produce plausible but wrong angles, so this fails
// loudly instead.
var ErrUnknownMethod = errors.New("nutation: unknown reduction method")

// Method selects the combination of precession/nutation theories used to
// reduce coordinates. The first five methods differ in precession theory
// but share the IAU 1980 nutation series; IAU2000 uses the 2000A series
// unmodified; IAU2006 and IAU2009 rescale the 2000A result for
// consistency with the adjusted precession rates.
type Method int

const (
	IAU1976 Method = iota
	Laskar1986
	Simon1994
	Williams1994
	JPLDE4xx
	IAU2000
	IAU2006
	IAU2009
)

var methodNames = map[Method]string{
	IAU1976:      "iau1976",
	Laskar1986:   "laskar1986",
	Simon1994:    "simon1994",
	Williams1994: "williams1994",
	JPLDE4xx:     "jplde4xx",
	IAU2000:      "iau2000",
	IAU2006:      "iau2006",
	IAU2009:      "iau2009",
}

func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}
	return fmt.Sprintf("method(%d)", int(m))
}

// ParseMethod converts a configuration string to a Method.
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Methods lists the closed enumeration in declaration order.
func Methods() []Method {
	return []Method{IAU1976, Laskar1986, Simon1994, Williams1994, JPLDE4xx, IAU2000, IAU2006, IAU2009}
}

// Angles is a nutation result: delta psi and delta epsilon in radians.
type Angles struct {
	Longitude float64 // delta psi, radians
	Obliquity float64 // delta epsilon, radians
}

// Arcsec returns both angles converted to arcseconds.
func (a Angles) Arcsec() (dpsi, deps float64) {
	return a.Longitude / arcsecRad, a.Obliquity / arcsecRad
}

// Config selects the reduction method and whether measured celestial pole
// offsets are added from an Earth-orientation table.
type Config struct {
	Method     Method
	CorrectEOP bool
	EOP        *eop.Provider
}

// Precession-rate consistency factors applied to 2000A results for the
// IAU 2006/2009 methods (Wallace & Capitaine 2006).
const (
	j2Factor = 4.697e-7
	fjFactor = 2.7774e-6
)

// Calc returns the nutation angles at T Julian centuries TT from J2000.0
// under the given configuration.
//
// The most recent (T, method) result is memoized in a process-wide slot;
// a repeat query with exactly equal arguments is served from it without
// recomputation. When cfg.CorrectEOP is set and the Earth-orientation
// provider has no data for the instant, the lookup error is surfaced
// rather than silently substituting zero offsets; offline callers must
// disable the correction explicitly.
func Calc(T float64, cfg Config) (Angles, error) {
	if a, ok := lastCalc.get(T, cfg.Method); ok {
		return a, nil
	}

	a, err := calc(T, cfg)
	if err != nil {
		return Angles{}, err
	}

	lastCalc.put(T, cfg.Method, a)
	return a, nil
}

func calc(T float64, cfg Config) (Angles, error) {
	var a Angles
	switch cfg.Method {
	case IAU1976, Laskar1986, Simon1994, Williams1994, JPLDE4xx:
		a = nut1980(T)
	case IAU2000:
		a = nut2000A(T)
	case IAU2006, IAU2009:
		a = nut2000A(T)
		a.Longitude *= 1 + j2Factor - fjFactor*T
		a.Obliquity *= 1 - fjFactor*T
	default:
		return Angles{}, fmt.Errorf("%w: %d", ErrUnknownMethod, int(cfg.Method))
	}

	if cfg.CorrectEOP {
		if err := addPoleOffsets(T, cfg, &a); err != nil {
			return Angles{}, err
		}
	}
	return a, nil
}

// addPoleOffsets adds the measured dPsi/dEps celestial pole offsets. The
// Earth-orientation table is keyed by UT; the instant is derived from T
// via the delta-T estimate, treating UT1 as UTC. The mismatch is below a
// second and far inside the table's daily sampling.
func addPoleOffsets(T float64, cfg Config, a *Angles) error {
	if cfg.EOP == nil {
		return fmt.Errorf("%w: no provider configured", eop.ErrNoData)
	}
	jdUT := astrotime.TTToUT1(astrotime.JDFromCenturies(T))
	v, err := cfg.EOP.Lookup(jdUT)
	if err != nil {
		return fmt.Errorf("nutation: pole offset lookup: %w", err)
	}
	a.Longitude += v.DPsi * arcsecRad
	a.Obliquity += v.DEps * arcsecRad
	return nil
}
