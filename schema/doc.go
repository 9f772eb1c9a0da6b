// Package schema describes expected value shapes and constraints.
//
// A schema is an immutable *Node tree built through copy-on-write
// constructors (String, Number, Object, Array, Union, ...). Nodes carry a
// Kind tag plus kind-specific children and bounds, and are read by the
// mocksmith engine and by Validate; nothing in this package mutates a
// node after construction.
//
// Self-reference goes through Lazy, which memoizes its thunk so cyclic
// definitions resolve without re-entering their own construction.
package schema
