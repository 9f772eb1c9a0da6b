// Package schemafile loads schema.Node graphs from declarative YAML or
// JSON documents, so mock shapes can live next to fixtures instead of in
// code. Named definitions may reference each other, even cyclically, through
// `ref` entries, which resolve via schema.Lazy and are bounded at
// generation time by the engine's depth guard.
package schemafile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/mocksmith/mocksmith/schema"
)

// Document is the top-level shape of a schema file: the root schema plus
// an optional table of named definitions for ref targets.
type Document struct {
	Definitions map[string]*nodeDoc `yaml:"definitions" json:"definitions"`
	Schema      *nodeDoc            `yaml:"schema" json:"schema"`
}

type fieldDoc struct {
	Name   string   `yaml:"name" json:"name"`
	Schema *nodeDoc `yaml:"schema" json:"schema"`
}

type memberDoc struct {
	Name  string `yaml:"name" json:"name"`
	Value any    `yaml:"value" json:"value"`
}

type nodeDoc struct {
	Type string `yaml:"type" json:"type"`

	Min     *float64 `yaml:"min" json:"min"`
	Max     *float64 `yaml:"max" json:"max"`
	Length  *int     `yaml:"length" json:"length"`
	Pattern string   `yaml:"pattern" json:"pattern"`
	After   string   `yaml:"after" json:"after"`   // date lower bound, RFC 3339
	Before  string   `yaml:"before" json:"before"` // date upper bound, RFC 3339

	Of            *nodeDoc    `yaml:"of" json:"of"` // element / inner schema
	Key           *nodeDoc    `yaml:"key" json:"key"`
	Value         *nodeDoc    `yaml:"value" json:"value"`
	Fields        []fieldDoc  `yaml:"fields" json:"fields"`
	Items         []*nodeDoc  `yaml:"items" json:"items"`
	Rest          *nodeDoc    `yaml:"rest" json:"rest"`
	Variants      []*nodeDoc  `yaml:"variants" json:"variants"`
	Discriminator string      `yaml:"discriminator" json:"discriminator"`
	Options       []any       `yaml:"options" json:"options"` // enum members
	Members       []memberDoc `yaml:"members" json:"members"` // native-enum members
	Literal       any         `yaml:"literal" json:"literal"`
	Default       any         `yaml:"default" json:"default"`
	Brand         string      `yaml:"brand" json:"brand"`
	Ref           string      `yaml:"ref" json:"ref"`
}

// Load reads a schema document from disk, picking the codec by extension
// (.json is JSON, everything else YAML).
func Load(path string) (schema.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schemafile: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseJSON(data)
	}
	return ParseYAML(data)
}

// ParseYAML builds a schema from a YAML document.
func ParseYAML(data []byte) (schema.Schema, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schemafile: parse yaml: %w", err)
	}
	return build(&doc)
}

// ParseJSON builds a schema from a JSON document.
func ParseJSON(data []byte) (schema.Schema, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schemafile: parse json: %w", err)
	}
	return build(&doc)
}

type builder struct {
	lazies   map[string]*schema.Node
	resolved map[string]*schema.Node
}

func build(doc *Document) (schema.Schema, error) {
	if doc.Schema == nil {
		return nil, fmt.Errorf("schemafile: document has no schema")
	}
	b := &builder{
		lazies:   make(map[string]*schema.Node, len(doc.Definitions)),
		resolved: make(map[string]*schema.Node, len(doc.Definitions)),
	}
	// Placeholders first so definitions can reference each other and
	// themselves; bodies are built after, filling what the placeholders
	// resolve to.
	for name := range doc.Definitions {
		n := name
		b.lazies[n] = schema.Lazy(func() *schema.Node { return b.resolved[n] })
	}
	for name, d := range doc.Definitions {
		node, err := b.node(d)
		if err != nil {
			return nil, fmt.Errorf("schemafile: definition %q: %w", name, err)
		}
		b.resolved[name] = node
	}
	root, err := b.node(doc.Schema)
	if err != nil {
		return nil, fmt.Errorf("schemafile: %w", err)
	}
	return root, nil
}

func (b *builder) node(d *nodeDoc) (*schema.Node, error) {
	if d == nil {
		return nil, fmt.Errorf("missing schema entry")
	}
	switch d.Type {
	case "string":
		s := schema.String()
		if d.Min != nil {
			s = s.Min(int(*d.Min))
		}
		if d.Max != nil {
			s = s.Max(int(*d.Max))
		}
		if d.Length != nil {
			s = s.Length(*d.Length)
		}
		if d.Pattern != "" {
			s = s.Pattern(d.Pattern)
		}
		return s.Node(), nil
	case "number", "integer":
		s := schema.Number()
		if d.Type == "integer" {
			s = s.Int()
		}
		if d.Min != nil {
			s = s.Min(*d.Min)
		}
		if d.Max != nil {
			s = s.Max(*d.Max)
		}
		return s.Node(), nil
	case "boolean", "bool":
		return schema.Bool(), nil
	case "date":
		s := schema.Date()
		if d.After != "" {
			t, err := time.Parse(time.RFC3339, d.After)
			if err != nil {
				return nil, fmt.Errorf("bad after bound: %w", err)
			}
			s = s.Min(t)
		}
		if d.Before != "" {
			t, err := time.Parse(time.RFC3339, d.Before)
			if err != nil {
				return nil, fmt.Errorf("bad before bound: %w", err)
			}
			s = s.Max(t)
		}
		return s.Node(), nil
	case "array":
		elem, err := b.node(d.Of)
		if err != nil {
			return nil, err
		}
		s := schema.Array(elem)
		if d.Min != nil {
			s = s.Min(int(*d.Min))
		}
		if d.Max != nil {
			s = s.Max(int(*d.Max))
		}
		if d.Length != nil {
			s = s.Length(*d.Length)
		}
		return s.Node(), nil
	case "set":
		elem, err := b.node(d.Of)
		if err != nil {
			return nil, err
		}
		s := schema.Set(elem)
		if d.Min != nil {
			s = s.Min(int(*d.Min))
		}
		if d.Max != nil {
			s = s.Max(int(*d.Max))
		}
		if d.Length != nil {
			s = s.Size(*d.Length)
		}
		return s.Node(), nil
	case "map", "record":
		key, err := b.node(d.Key)
		if err != nil {
			return nil, err
		}
		value, err := b.node(d.Value)
		if err != nil {
			return nil, err
		}
		if d.Type == "map" {
			return schema.Map(key, value), nil
		}
		return schema.Record(key, value), nil
	case "object":
		fields := make([]schema.Field, 0, len(d.Fields))
		for _, f := range d.Fields {
			fn, err := b.node(f.Schema)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Name, err)
			}
			fields = append(fields, schema.F(f.Name, fn))
		}
		return schema.Object(fields...), nil
	case "tuple":
		items, err := b.nodes(d.Items)
		if err != nil {
			return nil, err
		}
		s := schema.Tuple(items...)
		if d.Rest != nil {
			rest, err := b.node(d.Rest)
			if err != nil {
				return nil, err
			}
			s = s.Rest(rest)
		}
		return s.Node(), nil
	case "union":
		alts, err := b.nodes(d.Variants)
		if err != nil {
			return nil, err
		}
		return schema.Union(alts...), nil
	case "discriminatedUnion":
		alts, err := b.nodes(d.Variants)
		if err != nil {
			return nil, err
		}
		return schema.DiscriminatedUnion(d.Discriminator, alts...), nil
	case "intersection":
		ops, err := b.nodes(d.Items)
		if err != nil {
			return nil, err
		}
		return schema.Intersection(ops...), nil
	case "enum":
		return schema.Enum(d.Options...), nil
	case "nativeEnum":
		pairs := make([]schema.EnumPair, 0, len(d.Members))
		for _, m := range d.Members {
			pairs = append(pairs, schema.EnumPair{Name: m.Name, Value: m.Value})
		}
		return schema.NativeEnum(pairs...), nil
	case "literal":
		return schema.Literal(d.Literal), nil
	case "optional", "nullable", "branded", "default", "promise", "function":
		inner, err := b.node(d.Of)
		if err != nil {
			return nil, err
		}
		switch d.Type {
		case "optional":
			return schema.Optional(inner), nil
		case "nullable":
			return schema.Nullable(inner), nil
		case "branded":
			return schema.Brand(inner, d.Brand), nil
		case "default":
			return schema.Default(inner, d.Default), nil
		case "promise":
			return schema.Promise(inner), nil
		default:
			return schema.Function(inner), nil
		}
	case "null":
		return schema.Null(), nil
	case "void":
		return schema.Void(), nil
	case "undefined":
		return schema.Undefined(), nil
	case "nan":
		return schema.NaN(), nil
	case "ref":
		target, ok := b.lazies[d.Ref]
		if !ok {
			return nil, fmt.Errorf("unknown ref %q", d.Ref)
		}
		return target, nil
	case "":
		return nil, fmt.Errorf("schema entry has no type")
	default:
		return nil, fmt.Errorf("unknown schema type %q", d.Type)
	}
}

func (b *builder) nodes(docs []*nodeDoc) ([]schema.Schema, error) {
	out := make([]schema.Schema, 0, len(docs))
	for i, d := range docs {
		n, err := b.node(d)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, n)
	}
	return out, nil
}
