package zzfa

// Transpose returns an NFA recognising the reverse of the DFA's language:
// every transition is reversed, the final states become initial, and the
// initial state becomes the only final state. The NFA shares state values
// with the DFA but none of its tables or sets, and it outlives a Free of the
// DFA.
func Transpose(dfa *DFA) (*NFA, error) {
	nfa := NewNFA()
	nfa.Alphabet = dfa.Alphabet
	if err := nfa.initial.AddAll(dfa.final); err != nil {
		return nil, err
	}
	if err := nfa.AddFinal(dfa.initial); err != nil {
		return nil, err
	}
	var err error
	dfa.Range(func(state Value, symbol byte, target Value) bool {
		err = nfa.SetTransition(target, symbol, state)
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return nfa, nil
}
