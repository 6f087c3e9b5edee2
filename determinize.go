package zzfa

import "fmt"

// Determinize converts an NFA into a DFA recognising the same language, by
// subset construction over the given alphabet (Epsilon in alphabet is
// ignored). If alphabet is empty, nfa.Alphabet is used instead; either way
// it is recorded as the DFA's Alphabet. Each DFA state is a Nested value
// holding an epsilon-closed set of NFA states; the DFA owns these and drops
// them on Free(true).
//
// The result is partial: when no NFA state in a subset has a transition on a
// symbol, no DFA transition is recorded. In the worst case the number of DFA
// states is exponential in the number of NFA states.
func Determinize(nfa *NFA, alphabet string, opts ...Option) (*DFA, error) {
	cfg := newConfig(opts)
	if alphabet == "" {
		alphabet = nfa.Alphabet
	}

	start, err := nfa.epsilonClosure(nfa.initial)
	if err != nil {
		return nil, fmt.Errorf("closure of initial states: %w", err)
	}
	dfa, err := NewDFA(Nested(start))
	if err != nil {
		return nil, err
	}
	dfa.Alphabet = alphabet

	// discovered maps each subset to itself, so that an equal subset found
	// later is replaced by the one already in the DFA.
	discovered := NewMap()
	materialize := func(subset *Set) (Value, bool, error) {
		v := Nested(subset)
		prev, err := discovered.Get(v)
		if err != nil {
			return Null, false, err
		}
		if !prev.IsNull() {
			return prev, false, nil
		}
		if err := discovered.Set(v, v); err != nil {
			return Null, false, err
		}
		dfa.owned = append(dfa.owned, subset)
		final, err := subset.Intersects(nfa.final)
		if err != nil {
			return Null, false, err
		}
		if final {
			if err := dfa.AddFinal(v); err != nil {
				return Null, false, err
			}
		}
		cfg.logf("discovered state %v (final: %t)\n", v, final)
		return v, true, nil
	}

	if _, _, err := materialize(start); err != nil {
		return nil, err
	}
	q := []Value{dfa.initial}
	for len(q) > 0 {
		from := q[0]
		q = q[1:]

		for i := 0; i < len(alphabet); i++ {
			a := alphabet[i]
			if a == Epsilon {
				continue
			}
			moved, err := nfa.step(from.AsSet(), a)
			if err != nil {
				return nil, fmt.Errorf("step from %v on %q: %w", from, a, err)
			}
			if moved.Len() == 0 {
				cfg.logf("%v stuck on %q\n", from, a)
				continue
			}
			closed, err := nfa.epsilonClosure(moved)
			if err != nil {
				return nil, fmt.Errorf("closure of %v: %w", moved, err)
			}
			to, isNew, err := materialize(closed)
			if err != nil {
				return nil, err
			}
			if err := dfa.SetTransition(from, a, to); err != nil {
				return nil, err
			}
			cfg.logf("%v --%c--> %v\n", from, a, to)
			if isNew {
				q = append(q, to)
			}
		}
	}
	cfg.logf("determinized into %d states, %d transitions\n", len(dfa.owned), dfa.Len())
	return dfa, nil
}
