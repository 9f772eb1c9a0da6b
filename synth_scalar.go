package mocksmith

import (
	"math"
	"time"

	"github.com/mocksmith/mocksmith/schema"
)

func synthNumber(n *schema.Node, g *Context) (any, error) {
	c := numberConstraintsOf(n)
	if c.integer {
		lo, hi := int(math.Ceil(c.min)), int(math.Floor(c.max))
		if lo > hi {
			// No integer fits between the bounds.
			return Absent, nil
		}
		return g.src.IntBetween(lo, hi), nil
	}
	return g.src.Float64Between(c.min, c.max), nil
}

func synthBool(_ *schema.Node, g *Context) (any, error) {
	return g.src.Bool(), nil
}

// Date windows relative to the anchor, in days.
const (
	recentWindowDays = 30
	soonWindowDays   = 30
)

func (g *Context) recentDate(days int) time.Time {
	return g.src.DateBetween(g.anchor.AddDate(0, 0, -days), g.anchor)
}

// synthDate applies the bound policy table: both bounds → uniform within
// them, inverted bounds → Absent (unsatisfiable, a soft failure), one bound
// → a short window on its open side, none → a recent date.
func synthDate(n *schema.Node, g *Context) (any, error) {
	c := dateConstraintsOf(n)
	switch {
	case c.min != nil && c.max != nil:
		if c.min.After(*c.max) {
			return Absent, nil
		}
		return g.src.DateBetween(*c.min, *c.max), nil
	case c.min != nil:
		return g.src.DateBetween(*c.min, c.min.AddDate(0, 0, soonWindowDays)), nil
	case c.max != nil:
		return g.src.DateBetween(c.max.AddDate(0, 0, -recentWindowDays), *c.max), nil
	default:
		return g.recentDate(recentWindowDays), nil
	}
}

// synthEnum serves both enum and native-enum nodes: uniform selection over
// the declared members.
func synthEnum(n *schema.Node, g *Context) (any, error) {
	members := n.Members()
	if len(members) == 0 {
		return Absent, nil
	}
	return members[g.src.IntBetween(0, len(members)-1)], nil
}

func synthLiteral(n *schema.Node, _ *Context) (any, error) {
	return n.LiteralValue(), nil
}

func synthAbsent(_ *schema.Node, _ *Context) (any, error) {
	return Absent, nil
}

func synthNull(_ *schema.Node, _ *Context) (any, error) {
	return nil, nil
}

func synthNaN(_ *schema.Node, _ *Context) (any, error) {
	return math.NaN(), nil
}
