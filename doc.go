// Package mocksmith synthesizes values that conform to a schema, for use
// as test and mock data.
//
// Generation is a single-threaded, depth-first recursive descent over a
// read-only schema.Node tree: the entry point dispatches on the node's
// type tag through an immutable registry, per-kind synthesizers draw from
// a shared seedable Source, and a depth guard caps descent into
// self-referential schemas. Identical seeds yield byte-identical values.
//
// Design policy:
//   - Keep only public APIs in the root package; schema authoring lives in
//     schema/, declarative documents in schemafile/, the convenience layer
//     in factory/, and the CLI under cmd/mocksmith.
//   - The engine never throws for malformed or unsatisfiable constraints;
//     it degrades to the Absent sentinel and logs a diagnostic. Strictness
//     for unknown type tags is opt-in via Options.ErrorOnUnknown.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := schema.Object(
//		schema.F("uid", schema.String().Min(1)),
//		schema.F("age", schema.Number().Min(18).Max(120)),
//	)
//	v, err := mocksmith.Generate(s, mocksmith.Options{Seed: []uint64{123}})
package mocksmith
