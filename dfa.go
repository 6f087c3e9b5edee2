package zzfa

import (
	"errors"
	"fmt"
)

// ErrEpsilonInDFA is returned when an epsilon transition is added to a DFA.
var ErrEpsilonInDFA = errors.New("epsilon transition in a DFA")

// DFA is a deterministic finite automaton. The transition function is
// partial: a missing transition means the automaton is stuck, and the word
// being read is rejected.
//
// A DFA must not be modified concurrently. Concurrent calls to Delta and
// Accept on a DFA that is no longer being modified are fine.
type DFA struct {
	// Alphabet is the input alphabet, used by WriteTable and by Determinize
	// when they are not given one. It is informational: transitions on
	// other symbols are still allowed.
	Alphabet string

	initial     Value
	final       *Set
	transitions *Table

	// owned holds the composite states created by Determinize.
	owned []*Set
}

// NewDFA returns a DFA with the given initial state, no final states, and no
// transitions.
func NewDFA(initial Value) (*DFA, error) {
	if _, err := initial.Hash(); err != nil {
		return nil, fmt.Errorf("initial state %v: %w", initial, err)
	}
	final, _ := NewSet()
	return &DFA{
		initial:     initial,
		final:       final,
		transitions: NewTable(),
	}, nil
}

// Initial returns the initial state.
func (d *DFA) Initial() Value { return d.initial }

// Final returns the set of final states. Modifying it changes the DFA.
func (d *DFA) Final() *Set { return d.final }

// AddFinal marks states as final.
func (d *DFA) AddFinal(states ...Value) error {
	for _, s := range states {
		if err := d.final.Add(s); err != nil {
			return fmt.Errorf("final state %v: %w", s, err)
		}
	}
	return nil
}

// SetTransition sets the target of (state, symbol), replacing any previous
// target.
func (d *DFA) SetTransition(state Value, symbol byte, target Value) error {
	if symbol == Epsilon {
		return fmt.Errorf("from state %v: %w", state, ErrEpsilonInDFA)
	}
	if _, err := target.Hash(); err != nil {
		return fmt.Errorf("target state %v: %w", target, err)
	}
	if err := d.transitions.Set(state, symbol, target); err != nil {
		return fmt.Errorf("state %v: %w", state, err)
	}
	return nil
}

// Delta returns the target of (state, symbol), or Null if there is no such
// transition.
func (d *DFA) Delta(state Value, symbol byte) (Value, error) {
	return d.transitions.Get(state, symbol)
}

// Accept reports whether the DFA accepts word. Reading stops early as soon
// as the automaton is stuck.
func (d *DFA) Accept(word string) bool {
	current := d.initial
	for i := 0; i < len(word); i++ {
		next, err := d.Delta(current, word[i])
		if err != nil {
			// States are validated as they are inserted.
			panic(fmt.Sprintf("zzfa: DFA lookup failed: %v", err))
		}
		if next.IsNull() {
			return false
		}
		current = next
	}
	ok, err := d.final.Contains(current)
	if err != nil {
		panic(fmt.Sprintf("zzfa: DFA final lookup failed: %v", err))
	}
	return ok
}

// Range calls f for every transition until f returns false.
func (d *DFA) Range(f func(state Value, symbol byte, target Value) bool) {
	d.transitions.Range(f)
}

// Len returns the number of transitions.
func (d *DFA) Len() int { return d.transitions.Len() }

// Free releases the transitions and the final set. If deep is set, the final
// set is also emptied in place, and the DFA drops the composite states it
// owns (those created by Determinize). Composite states are never modified,
// so automata built from this one, such as its Transpose, keep working.
// Calling Free more than once is harmless.
func (d *DFA) Free(deep bool) {
	d.transitions.Clear()
	if deep {
		d.final.Clear()
		d.owned = nil
	}
	d.final, _ = NewSet()
}
