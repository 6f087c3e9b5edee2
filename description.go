package zzfa

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrNoInitial is returned when a description has the wrong number of
// initial states for the requested automaton.
var ErrNoInitial = errors.New("wrong number of initial states")

// Description is a textual description of an automaton, usually loaded from
// YAML:
//
//	kind: nfa
//	alphabet: ab
//	initial: [q0]
//	final: [q2]
//	transitions:
//	  - {from: q0, symbol: "", to: q1}
//	  - {from: q1, symbol: a, to: q2}
//
// States are String values. An empty symbol denotes an epsilon transition.
type Description struct {
	Kind        string           `yaml:"kind"`
	Alphabet    string           `yaml:"alphabet"`
	Initial     []string         `yaml:"initial"`
	Final       []string         `yaml:"final"`
	Transitions []TransitionDesc `yaml:"transitions"`
}

// TransitionDesc describes a single transition.
type TransitionDesc struct {
	From   string `yaml:"from"`
	Symbol string `yaml:"symbol"`
	To     string `yaml:"to"`
}

// LoadDescription decodes a YAML description. Unknown fields are errors.
func LoadDescription(r io.Reader) (*Description, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var desc Description
	if err := dec.Decode(&desc); err != nil {
		return nil, fmt.Errorf("decoding description: %w", err)
	}
	switch desc.Kind {
	case "", "dfa", "nfa":
	default:
		return nil, fmt.Errorf("unknown automaton kind %q", desc.Kind)
	}
	for i, t := range desc.Transitions {
		if len(t.Symbol) > 1 {
			return nil, fmt.Errorf("transition %d: symbol %q is not a single byte", i, t.Symbol)
		}
	}
	return &desc, nil
}

func (t TransitionDesc) symbol() byte {
	if t.Symbol == "" {
		return Epsilon
	}
	return t.Symbol[0]
}

// DFA builds the described DFA. The description must have exactly one
// initial state and no epsilon transitions.
func (desc *Description) DFA() (*DFA, error) {
	if len(desc.Initial) != 1 {
		return nil, fmt.Errorf("DFA with %d initial states: %w", len(desc.Initial), ErrNoInitial)
	}
	d, err := NewDFA(Str(desc.Initial[0]))
	if err != nil {
		return nil, err
	}
	d.Alphabet = desc.Alphabet
	for _, f := range desc.Final {
		if err := d.AddFinal(Str(f)); err != nil {
			return nil, err
		}
	}
	for i, t := range desc.Transitions {
		if err := d.SetTransition(Str(t.From), t.symbol(), Str(t.To)); err != nil {
			return nil, fmt.Errorf("transition %d: %w", i, err)
		}
	}
	return d, nil
}

// NFA builds the described NFA.
func (desc *Description) NFA() (*NFA, error) {
	if len(desc.Initial) == 0 {
		return nil, fmt.Errorf("NFA with no initial states: %w", ErrNoInitial)
	}
	n := NewNFA()
	n.Alphabet = desc.Alphabet
	for _, s := range desc.Initial {
		if err := n.AddInitial(Str(s)); err != nil {
			return nil, err
		}
	}
	for _, f := range desc.Final {
		if err := n.AddFinal(Str(f)); err != nil {
			return nil, err
		}
	}
	for i, t := range desc.Transitions {
		if err := n.SetTransition(Str(t.From), t.symbol(), Str(t.To)); err != nil {
			return nil, fmt.Errorf("transition %d: %w", i, err)
		}
	}
	return n, nil
}
