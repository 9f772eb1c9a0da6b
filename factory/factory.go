// Package factory is the convenience layer over the generation engine:
// each create takes one base generated value, shallow-merges caller
// overrides on top, and re-validates the result against the schema.
package factory

import (
	"fmt"

	"github.com/mocksmith/mocksmith"
	"github.com/mocksmith/mocksmith/schema"
)

// InvalidInputError reports that a merged value no longer conforms to the
// factory's schema. It carries the full validation diagnostics.
type InvalidInputError struct {
	Issues schema.Issues
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("factory: invalid input: %s", e.Issues.Error())
}

// Factory builds object values for one schema. A Factory is immutable;
// WithOverrides returns a derived Factory rather than mutating the
// receiver, so base factories can be shared and specialized per test.
type Factory struct {
	s         schema.Schema
	opts      mocksmith.Options
	overrides []map[string]any
}

// New returns a Factory for the given schema. At most one Options value is
// honored and is passed to every Generate call.
func New(s schema.Schema, opt ...mocksmith.Options) *Factory {
	f := &Factory{s: s}
	if len(opt) > 0 {
		f.opts = opt[0]
	}
	return f
}

// WithOverrides returns a Factory that applies the given overrides to
// every created value, after any overrides already composed in. Later
// tables win on key collision.
func (f *Factory) WithOverrides(ov map[string]any) *Factory {
	c := *f
	c.overrides = append(append([]map[string]any{}, f.overrides...), ov)
	return &c
}

// Create generates one value, merges the composed and per-call overrides
// on top (shallow, at the top level), and re-validates the result.
func (f *Factory) Create(ov ...map[string]any) (map[string]any, error) {
	base, err := mocksmith.Generate(f.s, f.opts)
	if err != nil {
		return nil, err
	}
	m, ok := base.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("factory: schema generates %T, want an object", base)
	}
	for _, table := range f.overrides {
		merge(m, table)
	}
	for _, table := range ov {
		merge(m, table)
	}
	if iss := schema.Validate(f.s, m); len(iss) > 0 {
		return nil, &InvalidInputError{Issues: iss}
	}
	return m, nil
}

// CreateMany calls Create n times and collects the results.
func (f *Factory) CreateMany(n int, ov ...map[string]any) ([]map[string]any, error) {
	out := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		v, err := f.Create(ov...)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func merge(dst map[string]any, src map[string]any) {
	for k, v := range src {
		dst[k] = v
	}
}
