package mocksmith

// AbsentValue is the sentinel type for "no representable value". It is
// produced for void and undefined nodes, for unresolved unknown type tags,
// for provably unsatisfiable constraints, and whenever a synthesis fault
// is downgraded. An absent object field is omitted from the emitted
// object; inside sequences and mappings the sentinel is kept in place so
// emitted cardinalities still honor the extracted bounds.
type AbsentValue struct{}

// Absent is the singleton sentinel value.
var Absent = AbsentValue{}

func (AbsentValue) String() string { return "<absent>" }

// MarshalJSON renders the sentinel as null so generated trees stay
// serializable.
func (AbsentValue) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// IsAbsent reports whether v is the Absent sentinel.
func IsAbsent(v any) bool {
	_, ok := v.(AbsentValue)
	return ok
}

// Promise is an already-settled asynchronous value. Await never blocks;
// the wrapped value was synthesized before the Promise was built.
type Promise struct{ v any }

// Resolve wraps a value in a settled Promise.
func Resolve(v any) Promise { return Promise{v: v} }

// Await returns the settled value.
func (p Promise) Await() any { return p.v }
