package mocksmith

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/mocksmith/mocksmith/schema"
)

// synthString implements the string precedence chain: pattern constraint,
// verbatim StringMap override, semantic field-name category, catalog
// heuristic, generic word, then min-padding and max-truncation, with the
// declared maximum always winning last.
func synthString(n *schema.Node, g *Context) (any, error) {
	c := stringConstraintsOf(n)

	if c.pattern != "" {
		if _, err := regexp.Compile(c.pattern); err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", c.pattern, err)
		}
		out := g.src.Regex(c.pattern)
		if c.hasCap {
			out = truncate(out, c.cap)
		}
		return out, nil
	}

	if g.fieldName != "" && g.stringMap != nil {
		if gen, ok := g.stringMap[g.fieldName]; ok {
			// Verbatim by contract: StringMap output bypasses length bounds.
			return gen(), nil
		}
	}

	lo, hi := c.targetRange()
	target := g.src.IntBetween(lo, hi)

	var out string
	var matched bool
	if g.fieldName != "" {
		if out, matched = semanticString(g, g.fieldName); !matched {
			if v, ok := resolveFieldValue(g, g.fieldName); ok {
				out, matched = stringify(v), true
			}
		}
	}
	if !matched {
		if target > 10 {
			out = g.src.Word()
		} else {
			out = g.src.WordOfLength(target)
		}
	}

	if c.hasMin && len(out) < c.min {
		out += g.src.Letters(c.min - len(out))
	}
	if c.hasCap {
		out = truncate(out, c.cap)
	}
	return out, nil
}

// truncate cuts s to at most max bytes without splitting a multi-byte
// rune: the cut backs up to the nearest rune boundary.
func truncate(s string, max int) string {
	if max < 0 {
		max = 0
	}
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}
