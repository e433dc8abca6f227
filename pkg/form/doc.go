// Package form derives renderable field configurations from collection
// schemas. It is the public face of the deriver: callers hand it an ordered
// list of schema fields plus optional per-field overrides and receive the
// ordered list of inputs an admin form should render.
//
// Derivation is a pure, deterministic transformation. Nothing is cached or
// mutated; recompute whenever the schema or the overrides change.
package form
