package nutation

import "sync"

// tSentinel sits far outside any valid Julian-century range; storing it
// guarantees the next query misses, since hits require exact equality.
const tSentinel = -1e100

// resultCache is a single-slot memo of the last computed (T, method)
// pair. The mutex makes the four-field slot update atomic with respect
// to readers; a reader can never observe a half-written (T, result)
// pairing.
type resultCache struct {
	mu     sync.Mutex
	t      float64
	method Method
	angles Angles
}

var lastCalc = resultCache{t: tSentinel, method: -1}

// get reports a hit only when the stored T and method equal the query
// exactly. Exact float equality is deliberate: a tolerance would let one
// instant masquerade as a nearby one.
func (c *resultCache) get(t float64, m Method) (Angles, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.t == t && c.method == m {
		return c.angles, true
	}
	return Angles{}, false
}

func (c *resultCache) put(t float64, m Method, a Angles) {
	c.mu.Lock()
	c.t = t
	c.method = m
	c.angles = a
	c.mu.Unlock()
}

func (c *resultCache) clear() {
	c.mu.Lock()
	c.t = tSentinel
	c.method = -1
	c.angles = Angles{}
	c.mu.Unlock()
}

// ClearCache invalidates the memoized result, forcing the next Calc to
// recompute regardless of its arguments.
func ClearCache() {
	lastCalc.clear()
}
