// Package scene assembles a positioned graph into an ordered list of draw
// primitives.
//
// The output of [Assemble] is renderer agnostic. A presentation layer walks the
// list in order and turns each [Primitive] into concrete markup: an
// [EdgeSegment] into a line with optional arrowhead markers, a [Circle] into a
// filled node, a [Label] into centered text.
//
// # Ordering
//
// All edge segments come first so they render beneath the nodes. Within each
// group the order follows the graph: edges in insertion order, then for each
// node in insertion order its circle followed by its label.
//
// # Inconsistent Input
//
// Edges whose endpoints have no position are skipped rather than failing the
// whole assembly. Skips are reported at debug level when a logger is supplied
// with [WithLogger].
package scene
