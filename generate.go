package mocksmith

import (
	"errors"
	"fmt"

	"github.com/mocksmith/mocksmith/schema"
)

// Generate synthesizes a value conforming to the given schema. At most one
// Options value is honored; omitting it runs with the documented defaults.
//
// The returned error is always *UnknownTypeError (and only when
// Options.ErrorOnUnknown is set). Any other fault inside a synthesizer,
// including panics out of caller-supplied overrides and transforms, is
// logged through Options.Logger and degrades the affected subtree to
// Absent.
func Generate(s schema.Schema, opt ...Options) (any, error) {
	var o Options
	if len(opt) > 0 {
		o = opt[0]
	}
	return newContext(o).Generate(s)
}

// Generate is the recursive entry point. Every synthesizer funnels child
// schemas back through here, so override pre-emption, unknown-tag handling,
// and fault containment apply uniformly at every level of the tree.
func (g *Context) Generate(s schema.Schema) (any, error) {
	if s == nil {
		return Absent, nil
	}
	n := s.Node()
	if n == nil {
		return Absent, nil
	}
	kind := n.Kind()
	if ov, ok := g.tagOverrides[kind]; ok {
		return g.invoke(ov, n)
	}
	if fn, ok := builtins[kind]; ok {
		return g.invoke(fn, n)
	}
	if g.errorOnUnknown {
		return nil, &UnknownTypeError{Tag: kind}
	}
	g.logger.Debug("mocksmith: unknown type tag, yielding absent", "kind", string(kind), "field", g.fieldName)
	return Absent, nil
}

// unknownTag walks a schema subtree and reports the first type tag no
// synthesizer serves, or nil. Used in strict mode before building deferred
// stubs, whose draws happen only after Generate has already returned. The
// seen set breaks cycles through lazy nodes.
func (g *Context) unknownTag(n *schema.Node, seen map[*schema.Node]bool) *UnknownTypeError {
	if n == nil || seen[n] {
		return nil
	}
	seen[n] = true
	kind := n.Kind()
	if _, ok := g.tagOverrides[kind]; !ok {
		if _, ok := builtins[kind]; !ok {
			return &UnknownTypeError{Tag: kind}
		}
	}
	for _, f := range n.Fields() {
		if e := g.unknownTag(f.Schema, seen); e != nil {
			return e
		}
	}
	for _, it := range n.Items() {
		if e := g.unknownTag(it, seen); e != nil {
			return e
		}
	}
	for _, child := range []*schema.Node{n.Elem(), n.Key(), n.Value(), n.Rest(), n.Inner(), n.Resolve()} {
		if e := g.unknownTag(child, seen); e != nil {
			return e
		}
	}
	return nil
}

func (g *Context) invoke(fn Synthesizer, n *schema.Node) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Warn("mocksmith: synthesizer panicked, yielding absent",
				"kind", string(n.Kind()), "field", g.fieldName, "panic", fmt.Sprint(r))
			v, err = Absent, nil
		}
	}()
	v, err = fn(n, g)
	if err != nil {
		var unknown *UnknownTypeError
		if errors.As(err, &unknown) {
			return nil, err
		}
		g.logger.Warn("mocksmith: synthesis fault, yielding absent",
			"kind", string(n.Kind()), "field", g.fieldName, "error", err)
		return Absent, nil
	}
	return v, nil
}
