package schema

import (
	"sync"
	"time"
)

// Kind discriminates which sort of value a Node describes.
type Kind string

const (
	KindString             Kind = "string"
	KindNumber             Kind = "number"
	KindBoolean            Kind = "boolean"
	KindDate               Kind = "date"
	KindArray              Kind = "array"
	KindSet                Kind = "set"
	KindMap                Kind = "map"
	KindRecord             Kind = "record"
	KindObject             Kind = "object"
	KindTuple              Kind = "tuple"
	KindEnum               Kind = "enum"
	KindNativeEnum         Kind = "nativeEnum"
	KindLiteral            Kind = "literal"
	KindUnion              Kind = "union"
	KindDiscriminatedUnion Kind = "discriminatedUnion"
	KindIntersection       Kind = "intersection"
	KindOptional           Kind = "optional"
	KindNullable           Kind = "nullable"
	KindBranded            Kind = "branded"
	KindDefault            Kind = "default"
	KindEffect             Kind = "effect"
	KindFunction           Kind = "function"
	KindPromise            Kind = "promise"
	KindLazy               Kind = "lazy"
	KindVoid               Kind = "void"
	KindNull               Kind = "null"
	KindUndefined          Kind = "undefined"
	KindNaN                Kind = "nan"
)

// Schema is anything that can yield a Node. Builders implement it so call
// sites can pass a half-built chain anywhere a schema is expected.
type Schema interface {
	Node() *Node
}

// Field is one named member of an object schema. Field order is
// significant: it is the order members are emitted and synthesized in.
type Field struct {
	Name   string
	Schema *Node
}

// TransformFunc converts a value synthesized for the pre-transform schema
// into the effect's output value.
type TransformFunc func(v any) (any, error)

// Node is a read-only description of an expected value's shape and
// constraints. Nodes are built through the package constructors and never
// mutated afterwards; consumers hold them by pointer and may share them
// freely across goroutines.
type Node struct {
	kind Kind

	// string / sequence length bounds
	minLen, maxLen, exactLen *int
	pattern                  string

	// numeric bounds
	minNum, maxNum *float64
	integer        bool

	// date bounds
	minDate, maxDate *time.Time

	fields        []Field // object
	elem          *Node   // array / set element
	key, value    *Node   // map / record
	items         []*Node // tuple positions, union alternatives, intersection operands
	rest          *Node   // tuple rest element
	discriminator string
	members       []any    // enum / native-enum values
	memberNames   []string // native-enum names, parallel to members
	literal       any

	inner        *Node // optional / nullable / branded / default / effect / promise / function return
	brand        string
	defaultValue any
	transform    TransformFunc
	resolve      func() *Node // lazy
}

// Node returns the node itself so *Node satisfies Schema.
func (n *Node) Node() *Node { return n }

// Kind returns the node's type tag.
func (n *Node) Kind() Kind { return n.kind }

// MinLength reports the declared minimum length (string) or size (array/set).
func (n *Node) MinLength() (int, bool) {
	if n.minLen == nil {
		return 0, false
	}
	return *n.minLen, true
}

// MaxLength reports the declared maximum length (string) or size (array/set).
func (n *Node) MaxLength() (int, bool) {
	if n.maxLen == nil {
		return 0, false
	}
	return *n.maxLen, true
}

// ExactLength reports the declared exact length or size.
func (n *Node) ExactLength() (int, bool) {
	if n.exactLen == nil {
		return 0, false
	}
	return *n.exactLen, true
}

// Pattern reports the declared regular-expression constraint.
func (n *Node) Pattern() (string, bool) { return n.pattern, n.pattern != "" }

// NumberMin reports the declared numeric lower bound.
func (n *Node) NumberMin() (float64, bool) {
	if n.minNum == nil {
		return 0, false
	}
	return *n.minNum, true
}

// NumberMax reports the declared numeric upper bound.
func (n *Node) NumberMax() (float64, bool) {
	if n.maxNum == nil {
		return 0, false
	}
	return *n.maxNum, true
}

// IsInteger reports whether a number node is constrained to integers.
func (n *Node) IsInteger() bool { return n.integer }

// DateMin reports the declared earliest date.
func (n *Node) DateMin() (time.Time, bool) {
	if n.minDate == nil {
		return time.Time{}, false
	}
	return *n.minDate, true
}

// DateMax reports the declared latest date.
func (n *Node) DateMax() (time.Time, bool) {
	if n.maxDate == nil {
		return time.Time{}, false
	}
	return *n.maxDate, true
}

// Fields returns the object's members in declaration order.
func (n *Node) Fields() []Field { return n.fields }

// Elem returns the element schema of an array or set node.
func (n *Node) Elem() *Node { return n.elem }

// Key returns the key schema of a map or record node.
func (n *Node) Key() *Node { return n.key }

// Value returns the value schema of a map or record node.
func (n *Node) Value() *Node { return n.value }

// Items returns tuple positions, union alternatives, or intersection
// operands depending on the node kind.
func (n *Node) Items() []*Node { return n.items }

// Rest returns the tuple's rest-element schema, or nil.
func (n *Node) Rest() *Node { return n.rest }

// Discriminator returns the discriminator field name of a discriminated
// union node.
func (n *Node) Discriminator() string { return n.discriminator }

// Members returns the declared enum or native-enum values.
func (n *Node) Members() []any { return n.members }

// MemberNames returns the native-enum member names, parallel to Members.
func (n *Node) MemberNames() []string { return n.memberNames }

// LiteralValue returns the value of a literal node.
func (n *Node) LiteralValue() any { return n.literal }

// Inner returns the wrapped schema of an optional, nullable, branded,
// default, effect, or promise node, or the return schema of a function node.
func (n *Node) Inner() *Node { return n.inner }

// BrandName returns the brand label of a branded node.
func (n *Node) BrandName() string { return n.brand }

// DefaultValue returns the declared default of a default node.
func (n *Node) DefaultValue() any { return n.defaultValue }

// Transform returns the effect node's transform function.
func (n *Node) Transform() TransformFunc { return n.transform }

// Resolve resolves a lazy node to its target schema. The thunk runs once;
// subsequent calls return the memoized result, which is what lets a lazy
// node participate in a cycle without re-entering its own construction.
func (n *Node) Resolve() *Node {
	if n.resolve == nil {
		return nil
	}
	return n.resolve()
}

func (n *Node) clone() *Node {
	c := *n
	return &c
}

func lazyNode(fn func() *Node) *Node {
	var once sync.Once
	var resolved *Node
	return &Node{kind: KindLazy, resolve: func() *Node {
		once.Do(func() { resolved = fn() })
		return resolved
	}}
}

func intPtr(v int) *int              { return &v }
func floatPtr(v float64) *float64    { return &v }
func timePtr(v time.Time) *time.Time { return &v }
