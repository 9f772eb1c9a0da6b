package mocksmith

import "github.com/mocksmith/mocksmith/schema"

// builtins maps every built-in type tag to its synthesizer. The map is
// built once and never mutated; caller overrides live in the per-call
// Options instead of here. Populated in init because the synthesizers
// recurse through Generate, which reads this map.
var builtins map[schema.Kind]Synthesizer

func init() {
	builtins = map[schema.Kind]Synthesizer{
		schema.KindString:  synthString,
		schema.KindNumber:  synthNumber,
		schema.KindBoolean: synthBool,
		schema.KindDate:    synthDate,

		schema.KindArray:  guarded(synthArray, emptySequence),
		schema.KindSet:    guarded(synthSet, emptySequence),
		schema.KindMap:    guarded(synthMap, emptyMap),
		schema.KindRecord: guarded(synthRecord, emptyRecord),
		schema.KindObject: guarded(synthObject, emptyRecord),
		schema.KindLazy:   guarded(synthLazy, absentDefault),

		schema.KindTuple:              synthTuple,
		schema.KindEnum:               synthEnum,
		schema.KindNativeEnum:         synthEnum,
		schema.KindLiteral:            synthLiteral,
		schema.KindUnion:              synthUnion,
		schema.KindDiscriminatedUnion: synthUnion,
		schema.KindIntersection:       synthIntersection,
		schema.KindOptional:           synthUnwrap,
		schema.KindNullable:           synthUnwrap,
		schema.KindBranded:            synthUnwrap,
		schema.KindDefault:            synthDefault,
		schema.KindEffect:             synthEffect,
		schema.KindFunction:           synthFunction,
		schema.KindPromise:            synthPromise,
		schema.KindVoid:               synthAbsent,
		schema.KindUndefined:          synthAbsent,
		schema.KindNull:               synthNull,
		schema.KindNaN:                synthNaN,
	}
}

// guarded bounds recursion: once the current depth reaches the ceiling the
// wrapped synthesizer is skipped and the kind's empty default is returned;
// otherwise the synthesizer runs one level deeper.
func guarded(fn Synthesizer, empty func() any) Synthesizer {
	return func(n *schema.Node, g *Context) (any, error) {
		if g.depth >= g.maxDepth {
			return empty(), nil
		}
		return fn(n, g.descend())
	}
}

func emptySequence() any { return []any{} }
func emptyMap() any      { return map[any]any{} }
func emptyRecord() any   { return map[string]any{} }
func absentDefault() any { return Absent }
