// Package eop supplies measured Earth-orientation parameters (celestial
// pole offsets dPsi/dEps and UT1-UTC) from a local table file. The values
// capture the free-core-nutation signal and other effects that no
// closed-form nutation theory predicts.
//
// The table format is a plain-text excerpt of the IERS finals series, one
// record per line:
//
//	# MJD    dPsi["]   dEps["]   UT1-UTC[s]
//	55012.0  -0.052847  -0.006234  0.159580
//
// Lines starting with '#' and blank lines are ignored. Records must be in
// ascending MJD order. Lookups between tabulated epochs are linearly
// interpolated.
package eop

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// ErrNoData is returned when no Earth-orientation data covers the
// requested instant, the table file is missing, or no file is configured.
var ErrNoData = errors.New("eop: no Earth orientation data for requested instant")

// MJDOffset converts between Julian Date and Modified Julian Date.
const MJDOffset = 2400000.5

// Record is one tabulated Earth-orientation entry.
type Record struct {
	MJD  float64 // epoch, Modified Julian Date (UTC)
	DPsi float64 // celestial pole offset in longitude, arcsec
	DEps float64 // celestial pole offset in obliquity, arcsec
	DUT1 float64 // UT1-UTC, seconds
}

// Values is the result of a lookup: interpolated offsets plus the epoch
// and method bookkeeping callers use to audit what was applied.
type Values struct {
	DPsi    float64 // arcsec
	DEps    float64 // arcsec
	DUT1    float64 // seconds
	LastMJD float64 // epoch the values refer to
	Method  int     // interpolation method: 0 = exact row, 1 = linear
}

// Provider reads and caches an EOP table file. The file is loaded once,
// on first lookup; a cold lookup therefore performs file I/O.
type Provider struct {
	path string

	mu     sync.Mutex
	loaded bool
	table  []Record
}

// NewProvider returns a provider for the given table file. The file is
// not opened until the first Lookup.
func NewProvider(path string) *Provider {
	return &Provider{path: path}
}

// Lookup returns the Earth-orientation values for a UT Julian Date.
// Returns ErrNoData when the instant is outside the tabulated range or
// when no usable table exists.
func (p *Provider) Lookup(jdUT float64) (Values, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.loaded {
		if err := p.load(); err != nil {
			return Values{}, err
		}
	}
	if len(p.table) == 0 {
		return Values{}, fmt.Errorf("%w: empty table %s", ErrNoData, p.path)
	}

	mjd := jdUT - MJDOffset
	first, last := p.table[0].MJD, p.table[len(p.table)-1].MJD
	if mjd < first || mjd > last {
		return Values{}, fmt.Errorf("%w: MJD %.4f outside table range [%.1f, %.1f]",
			ErrNoData, mjd, first, last)
	}

	// Binary search for the first record at or after mjd.
	lo, hi := 0, len(p.table)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if p.table[mid].MJD < mjd {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	r1 := p.table[lo]
	if r1.MJD == mjd || lo == 0 {
		return Values{DPsi: r1.DPsi, DEps: r1.DEps, DUT1: r1.DUT1, LastMJD: r1.MJD}, nil
	}

	r0 := p.table[lo-1]
	f := (mjd - r0.MJD) / (r1.MJD - r0.MJD)
	return Values{
		DPsi:    r0.DPsi + f*(r1.DPsi-r0.DPsi),
		DEps:    r0.DEps + f*(r1.DEps-r0.DEps),
		DUT1:    r0.DUT1 + f*(r1.DUT1-r0.DUT1),
		LastMJD: mjd,
		Method:  1,
	}, nil
}

// Range returns the first and last tabulated MJD, loading the table if
// necessary.
func (p *Provider) Range() (first, last float64, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.loaded {
		if err := p.load(); err != nil {
			return 0, 0, err
		}
	}
	if len(p.table) == 0 {
		return 0, 0, fmt.Errorf("%w: empty table %s", ErrNoData, p.path)
	}
	return p.table[0].MJD, p.table[len(p.table)-1].MJD, nil
}

func (p *Provider) load() error {
	if p.path == "" {
		return fmt.Errorf("%w: no table file configured", ErrNoData)
	}
	f, err := os.Open(p.path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoData, err)
	}
	defer f.Close()

	var table []Record
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return fmt.Errorf("eop: %s:%d: expected 4 columns, got %d", p.path, lineNo, len(fields))
		}
		var rec Record
		for i, dst := range []*float64{&rec.MJD, &rec.DPsi, &rec.DEps, &rec.DUT1} {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return fmt.Errorf("eop: %s:%d: column %d: %w", p.path, lineNo, i+1, err)
			}
			*dst = v
		}
		if n := len(table); n > 0 && rec.MJD <= table[n-1].MJD {
			return fmt.Errorf("eop: %s:%d: MJD not ascending", p.path, lineNo)
		}
		table = append(table, rec)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("eop: reading %s: %w", p.path, err)
	}

	p.table = table
	p.loaded = true
	return nil
}
