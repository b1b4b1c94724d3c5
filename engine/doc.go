// Package engine owns computed references.
//
// Ownership boundary:
// - request-graph construction
//
// - request-graph serialization
//
// - the shared element-wise mapping primitive
//
// An Expression is immutable once built. The engine never evaluates
// anything locally; evaluation belongs to the remote service reached
// through the transport package.
package engine
