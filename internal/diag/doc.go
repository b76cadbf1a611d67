// Package diag defines the diagnostic model produced by the scanner and the
// tooling built on top of it.
//
// # Data model
//
// Diagnostic is a plain value: a byte position, a width, a Code and optional
// string arguments. Codes map to message templates with {0}-style
// placeholders (see codes.go); Message substitutes the arguments.
//
// A Diagnostic carries no reference to tokens or nodes. It describes a region
// of the source text only, so diagnostics stay valid when trees are rewritten
// or shared.
//
// # Emitting diagnostics
//
// Producers append to a Sink. Sinks are append-only: a producer never reads
// back or removes what it reported, and lexical problems never stop the
// producer. Bag is the default Sink; it bounds the number of stored items and
// offers Sort and Dedup for deterministic output. DedupSink filters repeats
// before forwarding to another Sink.
//
// Package diag does no rendering; see internal/diagfmt.
package diag
