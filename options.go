package mocksmith

import (
	"log/slog"
	"time"

	"github.com/mocksmith/mocksmith/schema"
)

// Defaults applied when the corresponding option is zero.
const (
	DefaultMaxDepth      = 10
	DefaultRecordEntries = 1
	DefaultMapEntries    = 1
)

// Synthesizer produces a value for one schema node. Caller-supplied
// synthesizers registered in Options.TagOverrides receive the node and the
// live generation context; they may recurse through Context.Generate.
type Synthesizer func(n *schema.Node, g *Context) (any, error)

// FieldMapper resolves a field name directly to a value, pre-empting the
// built-in name catalog. Returning ok=false falls through to the catalog.
type FieldMapper func(field string) (value any, ok bool)

// Options configures one top-level Generate call. The zero value is valid:
// a fresh randomly seeded Source, depth limit 10, one record/map entry,
// unknown tags resolving to Absent, diagnostics discarded.
type Options struct {
	// KeyName seeds the current-field context, as if the root node were a
	// member of an enclosing object.
	KeyName string

	// StringMap maps field names to string generators used verbatim,
	// bypassing length constraints.
	StringMap map[string]func() string

	// FieldMapper is consulted before the name catalog when resolving a
	// field name to a semantically fitting value.
	FieldMapper FieldMapper

	// TagOverrides maps type tags to caller-supplied synthesizers. An
	// override always pre-empts the built-in synthesizer for its tag.
	TagOverrides map[schema.Kind]Synthesizer

	// RecordEntries and MapEntries set the number of distinct entries
	// synthesized for record and map nodes.
	RecordEntries int
	MapEntries    int

	// ErrorOnUnknown makes Generate fail with *UnknownTypeError instead of
	// yielding Absent when a tag has no synthesizer.
	ErrorOnUnknown bool

	// Seed reseeds the Source before generation. Multiple words fold into
	// one state; order matters. Empty means keep the Source's stream.
	Seed []uint64

	// Source supplies all randomness. Nil means a fresh default Source.
	Source Source

	// Depth and MaxDepth bound recursive descent.
	Depth    int
	MaxDepth int

	// Now anchors date windows that are relative to the present (recent /
	// soon). Zero means the current wall clock truncated to the hour.
	Now time.Time

	// Logger receives diagnostics for downgraded synthesis faults. Nil
	// discards them.
	Logger *slog.Logger
}

// Context is the generation state threaded through every recursive call of
// one top-level Generate. It is shared by reference across the traversal so
// a single seed governs the whole value tree; depth and field name vary per
// branch via copies.
type Context struct {
	depth     int
	maxDepth  int
	fieldName string
	anchor    time.Time

	src            Source
	stringMap      map[string]func() string
	fieldMapper    FieldMapper
	tagOverrides   map[schema.Kind]Synthesizer
	recordEntries  int
	mapEntries     int
	errorOnUnknown bool
	logger         *slog.Logger
}

func newContext(o Options) *Context {
	src := o.Source
	if src == nil {
		src = NewSource(o.Seed...)
	} else if len(o.Seed) > 0 {
		src.Seed(o.Seed...)
	}
	maxDepth := o.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	recordEntries := o.RecordEntries
	if recordEntries <= 0 {
		recordEntries = DefaultRecordEntries
	}
	mapEntries := o.MapEntries
	if mapEntries <= 0 {
		mapEntries = DefaultMapEntries
	}
	anchor := o.Now
	if anchor.IsZero() {
		anchor = time.Now().UTC().Truncate(time.Hour)
	}
	logger := o.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Context{
		depth:          o.Depth,
		maxDepth:       maxDepth,
		fieldName:      o.KeyName,
		anchor:         anchor,
		src:            src,
		stringMap:      o.StringMap,
		fieldMapper:    o.FieldMapper,
		tagOverrides:   o.TagOverrides,
		recordEntries:  recordEntries,
		mapEntries:     mapEntries,
		errorOnUnknown: o.ErrorOnUnknown,
		logger:         logger,
	}
}

// Source returns the shared random source.
func (g *Context) Source() Source { return g.src }

// FieldName returns the name of the object field currently being
// synthesized, or "" at the top level.
func (g *Context) FieldName() string { return g.fieldName }

// Depth returns the current recursion depth.
func (g *Context) Depth() int { return g.depth }

// MaxDepth returns the configured recursion ceiling.
func (g *Context) MaxDepth() int { return g.maxDepth }

// descend returns a copy one level deeper. Shared state (source, tables,
// logger) stays shared.
func (g *Context) descend() *Context {
	c := *g
	c.depth++
	return &c
}

// withField returns a copy carrying the given field-name context.
func (g *Context) withField(name string) *Context {
	c := *g
	c.fieldName = name
	return &c
}
