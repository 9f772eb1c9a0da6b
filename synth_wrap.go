package mocksmith

import (
	"fmt"

	"github.com/mocksmith/mocksmith/schema"
)

// synthUnion serves plain and discriminated unions alike: one alternative
// is picked uniformly and descended into. For discriminated unions the
// discriminator value falls out of the chosen alternative's own schema.
func synthUnion(n *schema.Node, g *Context) (any, error) {
	alts := n.Items()
	if len(alts) == 0 {
		return Absent, nil
	}
	return g.Generate(alts[g.src.IntBetween(0, len(alts)-1)])
}

// synthIntersection synthesizes every operand and merges the results; on
// key collision the later operand wins.
func synthIntersection(n *schema.Node, g *Context) (any, error) {
	ops := n.Items()
	if len(ops) == 0 {
		return Absent, nil
	}
	var out any = Absent
	for _, op := range ops {
		v, err := g.Generate(op)
		if err != nil {
			return nil, err
		}
		out = mergeValues(out, v)
	}
	return out, nil
}

func mergeValues(base, next any) any {
	bm, bok := base.(map[string]any)
	nm, nok := next.(map[string]any)
	if !bok || !nok {
		if IsAbsent(next) {
			return base
		}
		return next
	}
	out := make(map[string]any, len(bm)+len(nm))
	for k, v := range bm {
		out[k] = v
	}
	for k, v := range nm {
		out[k] = v
	}
	return out
}

// synthUnwrap handles optional, nullable, and branded nodes: the wrapper
// exists only at the schema level, so the produced value is always the
// inner one, never the missing/null variant.
func synthUnwrap(n *schema.Node, g *Context) (any, error) {
	return g.Generate(n.Inner())
}

// synthDefault returns the declared default or a synthesized inner value
// with even odds.
func synthDefault(n *schema.Node, g *Context) (any, error) {
	if g.src.Bool() {
		return n.DefaultValue(), nil
	}
	return g.Generate(n.Inner())
}

func synthEffect(n *schema.Node, g *Context) (any, error) {
	v, err := g.Generate(n.Inner())
	if err != nil {
		return nil, err
	}
	fn := n.Transform()
	if fn == nil {
		return v, nil
	}
	out, err := fn(v)
	if err != nil {
		return nil, fmt.Errorf("transform failed: %w", err)
	}
	return out, nil
}

// synthFunction produces a zero-argument stub whose every invocation
// synthesizes a fresh return value; the declared argument schema, if any,
// is ignored. Draws happen at call time, against the shared source, so in
// strict mode unknown tags in the return schema are rejected up front
// rather than swallowed inside the stub.
func synthFunction(n *schema.Node, g *Context) (any, error) {
	ret := n.Inner()
	if g.errorOnUnknown {
		if e := g.unknownTag(ret, map[*schema.Node]bool{}); e != nil {
			return nil, e
		}
	}
	return func() any {
		v, err := g.Generate(ret)
		if err != nil {
			return Absent
		}
		return v
	}, nil
}

func synthPromise(n *schema.Node, g *Context) (any, error) {
	v, err := g.Generate(n.Inner())
	if err != nil {
		return nil, err
	}
	return Resolve(v), nil
}

// synthLazy resolves the deferred reference and descends. The depth guard
// wrapping this synthesizer is what bounds self-referential schemas.
func synthLazy(n *schema.Node, g *Context) (any, error) {
	resolved := n.Resolve()
	if resolved == nil {
		return Absent, nil
	}
	return g.Generate(resolved)
}
