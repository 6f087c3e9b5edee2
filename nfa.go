package zzfa

import "fmt"

// NFA is a non-deterministic finite automaton with epsilon transitions. Each
// (state, symbol) pair maps to a set of targets.
//
// As with DFA, an NFA must not be modified concurrently with any other use.
type NFA struct {
	// Alphabet is the input alphabet, as for DFA.
	Alphabet string

	initial     *Set
	final       *Set
	transitions *Table // state -> symbol -> Nested(set of targets)
}

// NewNFA returns an NFA with no initial states, no final states, and no
// transitions.
func NewNFA() *NFA {
	initial, _ := NewSet()
	final, _ := NewSet()
	return &NFA{
		initial:     initial,
		final:       final,
		transitions: NewTable(),
	}
}

// Initial returns the set of initial states. Modifying it changes the NFA.
func (n *NFA) Initial() *Set { return n.initial }

// Final returns the set of final states. Modifying it changes the NFA.
func (n *NFA) Final() *Set { return n.final }

// AddInitial marks states as initial.
func (n *NFA) AddInitial(states ...Value) error {
	for _, s := range states {
		if err := n.initial.Add(s); err != nil {
			return fmt.Errorf("initial state %v: %w", s, err)
		}
	}
	return nil
}

// AddFinal marks states as final.
func (n *NFA) AddFinal(states ...Value) error {
	for _, s := range states {
		if err := n.final.Add(s); err != nil {
			return fmt.Errorf("final state %v: %w", s, err)
		}
	}
	return nil
}

// SetTransition adds target to the targets of (state, symbol). Unlike
// DFA.SetTransition, earlier targets are kept. symbol may be Epsilon.
func (n *NFA) SetTransition(state Value, symbol byte, target Value) error {
	targets, err := n.transitions.Get(state, symbol)
	if err != nil {
		return fmt.Errorf("state %v: %w", state, err)
	}
	if targets.IsNull() {
		set, err := NewSet(target)
		if err != nil {
			return fmt.Errorf("target state %v: %w", target, err)
		}
		return n.transitions.Set(state, symbol, Nested(set))
	}
	if err := targets.AsSet().Add(target); err != nil {
		return fmt.Errorf("target state %v: %w", target, err)
	}
	return nil
}

// Delta returns the targets of (state, symbol). The result is a fresh set
// owned by the caller, empty if there are no such transitions.
func (n *NFA) Delta(state Value, symbol byte) (*Set, error) {
	targets, err := n.transitions.Get(state, symbol)
	if err != nil {
		return nil, err
	}
	return targets.AsSet().Clone(), nil
}

// step returns the union of the targets of (s, symbol) over every s in
// states, without taking the epsilon closure.
func (n *NFA) step(states *Set, symbol byte) (*Set, error) {
	out, _ := NewSet()
	var err error
	states.Range(func(s Value) bool {
		var targets Value
		targets, err = n.transitions.Get(s, symbol)
		if err != nil {
			return false
		}
		err = out.AddAll(targets.AsSet())
		return err == nil
	})
	return out, err
}

// epsilonClosure returns the states reachable from states using only epsilon
// transitions (including states themselves). states is not modified.
func (n *NFA) epsilonClosure(states *Set) (*Set, error) {
	closure := states.Clone()
	q := closure.Members()
	for len(q) > 0 {
		s := q[0]
		q = q[1:]

		targets, err := n.transitions.Get(s, Epsilon)
		if err != nil {
			return nil, err
		}
		targets.AsSet().Range(func(t Value) bool {
			var seen bool
			seen, err = closure.Contains(t)
			if err != nil || seen {
				return err == nil
			}
			if err = closure.Add(t); err != nil {
				return false
			}
			q = append(q, t)
			return true
		})
		if err != nil {
			return nil, err
		}
	}
	return closure, nil
}

// Accept reports whether the NFA accepts word: whether some path labelled
// with word (plus any epsilon transitions) leads from an initial state to a
// final state.
func (n *NFA) Accept(word string) bool {
	current, err := n.epsilonClosure(n.initial)
	if err != nil {
		panic(fmt.Sprintf("zzfa: NFA closure failed: %v", err))
	}
	for i := 0; i < len(word); i++ {
		if current.Len() == 0 {
			return false
		}
		next, err := n.step(current, word[i])
		if err != nil {
			panic(fmt.Sprintf("zzfa: NFA lookup failed: %v", err))
		}
		if current, err = n.epsilonClosure(next); err != nil {
			panic(fmt.Sprintf("zzfa: NFA closure failed: %v", err))
		}
	}
	ok, err := current.Intersects(n.final)
	if err != nil {
		panic(fmt.Sprintf("zzfa: NFA final lookup failed: %v", err))
	}
	return ok
}

// Range calls f for every (state, symbol, target) triple until f returns
// false. Each target of a non-deterministic transition is reported
// separately.
func (n *NFA) Range(f func(state Value, symbol byte, target Value) bool) {
	n.transitions.Range(func(state Value, symbol byte, targets Value) bool {
		more := true
		targets.AsSet().Range(func(t Value) bool {
			more = f(state, symbol, t)
			return more
		})
		return more
	})
}

// Free releases the transitions, initial set, and final set. If deep is set,
// the initial and final sets are emptied rather than just dropped. Calling
// Free more than once is harmless.
func (n *NFA) Free(deep bool) {
	n.transitions.Range(func(_ Value, _ byte, targets Value) bool {
		targets.AsSet().Clear()
		return true
	})
	n.transitions.Clear()
	if deep {
		n.initial.Clear()
		n.final.Clear()
	}
	n.initial, _ = NewSet()
	n.final, _ = NewSet()
}
