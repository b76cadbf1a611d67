// Package syntax defines the immutable syntax tree: trivia, tokens, nodes and
// lists, together with the node factory, rewriting and position-based
// navigation.
//
// The tree stores widths, never absolute positions, so any subtree can be
// shared between trees. Parents and positions are rebuilt on demand by the
// Positioned* wrappers.
package syntax
