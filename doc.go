// Package zzfa implements finite automata: deterministic (DFA) and
// non-deterministic with epsilon transitions (NFA), built transition by
// transition, with acceptance checks, NFA determinization by subset
// construction, and DFA transposition.
//
// States are Values: chars, strings, ints, opaque references, or nested sets
// of Values. Nested sets compare and hash structurally, which lets a set of
// NFA states serve as a single DFA state.
package zzfa
