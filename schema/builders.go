package schema

import "time"

// The builders below are copy-on-write: every chained call clones the
// underlying node, so a partially built schema can be reused as a prefix
// for several variants without aliasing surprises.

// StringSchema builds a string node.
type StringSchema struct{ n *Node }

// String returns a new string schema.
func String() StringSchema { return StringSchema{&Node{kind: KindString}} }

// Min sets the minimum length.
func (s StringSchema) Min(v int) StringSchema {
	c := s.n.clone()
	c.minLen = intPtr(v)
	return StringSchema{c}
}

// Max sets the maximum length.
func (s StringSchema) Max(v int) StringSchema {
	c := s.n.clone()
	c.maxLen = intPtr(v)
	return StringSchema{c}
}

// Length pins the string to an exact length.
func (s StringSchema) Length(v int) StringSchema {
	c := s.n.clone()
	c.exactLen = intPtr(v)
	return StringSchema{c}
}

// Pattern constrains the string to match a regular expression.
func (s StringSchema) Pattern(expr string) StringSchema {
	c := s.n.clone()
	c.pattern = expr
	return StringSchema{c}
}

// Node implements Schema.
func (s StringSchema) Node() *Node { return s.n }

// NumberSchema builds a number node.
type NumberSchema struct{ n *Node }

// Number returns a new number schema.
func Number() NumberSchema { return NumberSchema{&Node{kind: KindNumber}} }

// Min sets the numeric lower bound (inclusive).
func (s NumberSchema) Min(v float64) NumberSchema {
	c := s.n.clone()
	c.minNum = floatPtr(v)
	return NumberSchema{c}
}

// Max sets the numeric upper bound (inclusive).
func (s NumberSchema) Max(v float64) NumberSchema {
	c := s.n.clone()
	c.maxNum = floatPtr(v)
	return NumberSchema{c}
}

// Int constrains the number to integer values.
func (s NumberSchema) Int() NumberSchema {
	c := s.n.clone()
	c.integer = true
	return NumberSchema{c}
}

// Node implements Schema.
func (s NumberSchema) Node() *Node { return s.n }

// Bool returns a new boolean schema.
func Bool() *Node { return &Node{kind: KindBoolean} }

// DateSchema builds a date node.
type DateSchema struct{ n *Node }

// Date returns a new date schema.
func Date() DateSchema { return DateSchema{&Node{kind: KindDate}} }

// Min sets the earliest admissible date.
func (s DateSchema) Min(v time.Time) DateSchema {
	c := s.n.clone()
	c.minDate = timePtr(v)
	return DateSchema{c}
}

// Max sets the latest admissible date.
func (s DateSchema) Max(v time.Time) DateSchema {
	c := s.n.clone()
	c.maxDate = timePtr(v)
	return DateSchema{c}
}

// Node implements Schema.
func (s DateSchema) Node() *Node { return s.n }

// ArraySchema builds an array node.
type ArraySchema struct{ n *Node }

// Array returns a schema for a variable-length sequence of elem values.
func Array(elem Schema) ArraySchema {
	return ArraySchema{&Node{kind: KindArray, elem: elem.Node()}}
}

// Min sets the minimum element count.
func (s ArraySchema) Min(v int) ArraySchema {
	c := s.n.clone()
	c.minLen = intPtr(v)
	return ArraySchema{c}
}

// Max sets the maximum element count.
func (s ArraySchema) Max(v int) ArraySchema {
	c := s.n.clone()
	c.maxLen = intPtr(v)
	return ArraySchema{c}
}

// Length pins the array to an exact element count.
func (s ArraySchema) Length(v int) ArraySchema {
	c := s.n.clone()
	c.exactLen = intPtr(v)
	return ArraySchema{c}
}

// Node implements Schema.
func (s ArraySchema) Node() *Node { return s.n }

// SetSchema builds a set node.
type SetSchema struct{ n *Node }

// Set returns a schema for a collection of distinct elem values.
func Set(elem Schema) SetSchema {
	return SetSchema{&Node{kind: KindSet, elem: elem.Node()}}
}

// Min sets the minimum cardinality.
func (s SetSchema) Min(v int) SetSchema {
	c := s.n.clone()
	c.minLen = intPtr(v)
	return SetSchema{c}
}

// Max sets the maximum cardinality.
func (s SetSchema) Max(v int) SetSchema {
	c := s.n.clone()
	c.maxLen = intPtr(v)
	return SetSchema{c}
}

// Size pins the set to an exact cardinality.
func (s SetSchema) Size(v int) SetSchema {
	c := s.n.clone()
	c.exactLen = intPtr(v)
	return SetSchema{c}
}

// Node implements Schema.
func (s SetSchema) Node() *Node { return s.n }

// Map returns a schema for a key→value mapping keyed by generated key
// identity. Entry count is an engine-side configuration, not a schema bound.
func Map(key, value Schema) *Node {
	return &Node{kind: KindMap, key: key.Node(), value: value.Node()}
}

// Record returns a schema for a string-keyed record of value entries.
func Record(key, value Schema) *Node {
	return &Node{kind: KindRecord, key: key.Node(), value: value.Node()}
}

// F declares one object field.
func F(name string, s Schema) Field { return Field{Name: name, Schema: s.Node()} }

// Object returns a schema whose members are exactly the given fields, in
// the given order.
func Object(fields ...Field) *Node {
	return &Node{kind: KindObject, fields: fields}
}

// TupleSchema builds a tuple node.
type TupleSchema struct{ n *Node }

// Tuple returns a schema for a fixed sequence of positional items.
func Tuple(items ...Schema) TupleSchema {
	return TupleSchema{&Node{kind: KindTuple, items: nodesOf(items)}}
}

// Rest appends a variable-length tail of rest-typed elements after the
// positional items.
func (s TupleSchema) Rest(rest Schema) TupleSchema {
	c := s.n.clone()
	c.rest = rest.Node()
	return TupleSchema{c}
}

// Node implements Schema.
func (s TupleSchema) Node() *Node { return s.n }

// Union returns a schema matched by any one of the alternatives.
func Union(alts ...Schema) *Node {
	return &Node{kind: KindUnion, items: nodesOf(alts)}
}

// DiscriminatedUnion returns a union whose alternatives are told apart by
// the named discriminator field.
func DiscriminatedUnion(discriminator string, alts ...Schema) *Node {
	return &Node{kind: KindDiscriminatedUnion, discriminator: discriminator, items: nodesOf(alts)}
}

// Intersection returns a schema that is the merge of all operands. On key
// collision the later operand wins.
func Intersection(operands ...Schema) *Node {
	return &Node{kind: KindIntersection, items: nodesOf(operands)}
}

// Enum returns a schema whose value is one of the listed members.
func Enum(members ...any) *Node {
	return &Node{kind: KindEnum, members: members}
}

// NativeEnum returns an enum declared as name→value pairs. Order of the
// pairs is the member order.
func NativeEnum(pairs ...EnumPair) *Node {
	n := &Node{kind: KindNativeEnum}
	for _, p := range pairs {
		n.memberNames = append(n.memberNames, p.Name)
		n.members = append(n.members, p.Value)
	}
	return n
}

// EnumPair is one named member of a native enum.
type EnumPair struct {
	Name  string
	Value any
}

// Literal returns a schema matched only by the exact value v.
func Literal(v any) *Node { return &Node{kind: KindLiteral, literal: v} }

// Optional wraps s so the value may be missing.
func Optional(s Schema) *Node { return &Node{kind: KindOptional, inner: s.Node()} }

// Nullable wraps s so the value may be null.
func Nullable(s Schema) *Node { return &Node{kind: KindNullable, inner: s.Node()} }

// Brand wraps s with a nominal brand label. Brands exist only at the
// schema level; values are plain inner values.
func Brand(s Schema, name string) *Node {
	return &Node{kind: KindBranded, inner: s.Node(), brand: name}
}

// Default wraps s with a declared fallback value.
func Default(s Schema, v any) *Node {
	return &Node{kind: KindDefault, inner: s.Node(), defaultValue: v}
}

// Transform wraps s with a post-synthesis transform.
func Transform(s Schema, fn TransformFunc) *Node {
	return &Node{kind: KindEffect, inner: s.Node(), transform: fn}
}

// Function returns a schema for a zero-argument callable producing ret
// values.
func Function(ret Schema) *Node { return &Node{kind: KindFunction, inner: ret.Node()} }

// Promise returns a schema for an already-settled asynchronous wrapper
// around an inner value.
func Promise(inner Schema) *Node { return &Node{kind: KindPromise, inner: inner.Node()} }

// Lazy defers schema construction until first use, which is how a schema
// refers to itself.
func Lazy(fn func() *Node) *Node { return lazyNode(fn) }

// Void returns a schema with no representable value.
func Void() *Node { return &Node{kind: KindVoid} }

// Null returns a schema whose only value is null.
func Null() *Node { return &Node{kind: KindNull} }

// Undefined returns a schema with no representable value. It is kept
// distinct from Void so schema documents written against the full tag set
// load unchanged.
func Undefined() *Node { return &Node{kind: KindUndefined} }

// NaN returns a schema whose only value is the not-a-number sentinel.
func NaN() *Node { return &Node{kind: KindNaN} }

// Custom returns a bare node carrying a caller-defined type tag. The
// engine has no built-in synthesizer for such tags; they are served by
// caller-supplied overrides or resolve to Absent (or an unknown-type
// error in strict mode).
func Custom(kind Kind) *Node { return &Node{kind: kind} }

func nodesOf(ss []Schema) []*Node {
	out := make([]*Node, 0, len(ss))
	for _, s := range ss {
		out = append(out, s.Node())
	}
	return out
}
