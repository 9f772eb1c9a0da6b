package mocksmith

import (
	"time"

	"github.com/mocksmith/mocksmith/schema"
)

// Constraint descriptors are derived fresh per call from the node's
// declared bounds; nothing here is cached or mutated on the node.

type stringConstraints struct {
	min, max       int // sampling range, swapped when declared inverted
	hasMin, hasMax bool
	cap            int // declared maximum; truncation target
	hasCap         bool
	pattern        string
}

// stringConstraintsOf normalizes string bounds. An exact length pins both
// ends. Inverted declared bounds are swapped for target-length sampling,
// but the declared maximum is kept as the truncation cap: the maximum is
// the safety-critical end, and exceeding it is avoided in preference to
// satisfying the minimum. Padding and truncation apply only to declared
// bounds; the [0,10] default governs target-length derivation alone.
func stringConstraintsOf(n *schema.Node) stringConstraints {
	var c stringConstraints
	if v, ok := n.MinLength(); ok {
		c.min, c.hasMin = v, true
	}
	if v, ok := n.MaxLength(); ok {
		c.max, c.hasMax = v, true
	}
	if v, ok := n.ExactLength(); ok {
		c.min, c.hasMin = v, true
		c.max, c.hasMax = v, true
	}
	if c.hasMax {
		c.cap, c.hasCap = c.max, true
	}
	if c.hasMin && c.hasMax && c.min > c.max {
		c.min, c.max = c.max, c.min
	}
	if p, ok := n.Pattern(); ok {
		c.pattern = p
	}
	return c
}

// targetRange is the interval target lengths are drawn from: declared
// bounds where present, otherwise [0,10] anchored at the declared minimum.
func (c stringConstraints) targetRange() (lo, hi int) {
	lo = 0
	if c.hasMin {
		lo = c.min
	}
	hi = lo + 10
	if c.hasMax {
		hi = c.max
	}
	return lo, hi
}

type sizeConstraints struct {
	min, max int
}

// sizeConstraintsOf normalizes composite cardinality bounds. A min above
// max clamps down to max.
func sizeConstraintsOf(n *schema.Node, defMin, defMax int) sizeConstraints {
	c := sizeConstraints{min: defMin, max: defMax}
	if v, ok := n.MinLength(); ok {
		c.min = v
	}
	if v, ok := n.MaxLength(); ok {
		c.max = v
	}
	if v, ok := n.ExactLength(); ok {
		c.min, c.max = v, v
	}
	if c.min < 0 {
		c.min = 0
	}
	if c.max < 0 {
		c.max = 0
	}
	if c.min > c.max {
		c.min = c.max
	}
	return c
}

type numberConstraints struct {
	min, max float64
	integer  bool
}

func numberConstraintsOf(n *schema.Node) numberConstraints {
	c := numberConstraints{min: 0, max: 1000, integer: n.IsInteger()}
	if v, ok := n.NumberMin(); ok {
		c.min = v
	}
	if v, ok := n.NumberMax(); ok {
		c.max = v
	}
	if c.min > c.max {
		c.min, c.max = c.max, c.min
	}
	return c
}

type dateConstraints struct {
	min, max *time.Time
}

func dateConstraintsOf(n *schema.Node) dateConstraints {
	var c dateConstraints
	if v, ok := n.DateMin(); ok {
		t := v
		c.min = &t
	}
	if v, ok := n.DateMax(); ok {
		t := v
		c.max = &t
	}
	return c
}
