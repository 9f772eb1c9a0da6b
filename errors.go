package mocksmith

import (
	"fmt"

	"github.com/mocksmith/mocksmith/schema"
)

// UnknownTypeError reports a type tag for which no synthesizer exists,
// neither built-in nor caller-supplied. It is raised only when
// Options.ErrorOnUnknown is set and is the one error Generate ever
// propagates; every other synthesis fault is logged and downgraded to
// Absent.
type UnknownTypeError struct {
	Tag schema.Kind
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("mocksmith: no synthesizer for type %q", string(e.Tag))
}
