package mocksmith

import (
	"fmt"
	"reflect"

	"github.com/mocksmith/mocksmith/schema"
)

func synthObject(n *schema.Node, g *Context) (any, error) {
	out := make(map[string]any, len(n.Fields()))
	for _, f := range n.Fields() {
		v, err := g.withField(f.Name).Generate(f.Schema)
		if err != nil {
			return nil, err
		}
		if IsAbsent(v) {
			continue
		}
		out[f.Name] = v
	}
	return out, nil
}

func synthArray(n *schema.Node, g *Context) (any, error) {
	c := sizeConstraintsOf(n, 0, 10)
	target := g.src.IntBetween(c.min, c.max)
	out := make([]any, 0, target)
	for i := 0; i < target; i++ {
		v, err := g.Generate(n.Elem())
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// synthSet rejection-samples distinct elements. Attempts are bounded so a
// small element domain (say, booleans asked for five distinct members)
// returns short instead of spinning forever.
func synthSet(n *schema.Node, g *Context) (any, error) {
	c := sizeConstraintsOf(n, 1, 5)
	target := g.src.IntBetween(c.min, c.max)
	out := make([]any, 0, target)
	seen := make(map[string]bool, target)
	for attempts := 10*target + 10; len(out) < target && attempts > 0; attempts-- {
		v, err := g.Generate(n.Elem())
		if err != nil {
			return nil, err
		}
		k := identityKey(v)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, v)
	}
	return out, nil
}

// synthMap keys entries by identity; a duplicate key overwrites. Keys the
// Go runtime cannot hash (generated objects, sequences, stubs) are stored
// under their printed identity instead.
func synthMap(n *schema.Node, g *Context) (any, error) {
	target := g.mapEntries
	out := make(map[any]any, target)
	for attempts := 10*target + 10; len(out) < target && attempts > 0; attempts-- {
		k, err := g.Generate(n.Key())
		if err != nil {
			return nil, err
		}
		v, err := g.Generate(n.Value())
		if err != nil {
			return nil, err
		}
		out[mapKey(k)] = v
	}
	return out, nil
}

func mapKey(k any) any {
	if t := reflect.TypeOf(k); t == nil || t.Comparable() {
		return k
	}
	return identityKey(k)
}

func synthRecord(n *schema.Node, g *Context) (any, error) {
	target := g.recordEntries
	out := make(map[string]any, target)
	for attempts := 10*target + 10; len(out) < target && attempts > 0; attempts-- {
		k, err := g.Generate(n.Key())
		if err != nil {
			return nil, err
		}
		v, err := g.Generate(n.Value())
		if err != nil {
			return nil, err
		}
		out[stringify(k)] = v
	}
	return out, nil
}

func synthTuple(n *schema.Node, g *Context) (any, error) {
	out := make([]any, 0, len(n.Items()))
	for _, it := range n.Items() {
		v, err := g.Generate(it)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if rest := n.Rest(); rest != nil {
		tail, err := g.Generate(schema.Array(rest))
		if err != nil {
			return nil, err
		}
		if items, ok := tail.([]any); ok {
			out = append(out, items...)
		}
	}
	return out, nil
}

// identityKey flattens a value into a comparable representation for
// duplicate rejection. %#v is stable for the value shapes the engine emits.
func identityKey(v any) string {
	return fmt.Sprintf("%#v", v)
}
