package zzfa

import (
	"fmt"
	"io"
	"strconv"
)

// WriteDot writes a digraph representing the DFA to the writer (in GraphViz
// syntax).
func (d *DFA) WriteDot(w io.Writer) error {
	return writeDot(w, []Value{d.initial}, d.final, d.Range)
}

// WriteDot writes a digraph representing the NFA to the writer (in GraphViz
// syntax). Epsilon transitions are labelled ε.
func (n *NFA) WriteDot(w io.Writer) error {
	return writeDot(w, n.initial.Members(), n.final, n.Range)
}

func writeDot(w io.Writer, initial []Value, final *Set, each func(func(Value, byte, Value) bool)) error {
	if _, err := fmt.Fprintln(w, "digraph {\n\trankdir=LR;"); err != nil {
		return err
	}

	// Number the states in the order they are first seen.
	ids := NewMap()
	var states []Value
	id := func(s Value) (string, error) {
		n, err := ids.Get(s)
		if err != nil {
			return "", fmt.Errorf("state %v: %w", s, err)
		}
		if n.IsNull() {
			n = Int(len(states))
			if err := ids.Set(s, n); err != nil {
				return "", fmt.Errorf("state %v: %w", s, err)
			}
			states = append(states, s)
		}
		return "state_" + strconv.Itoa(n.AsInt()), nil
	}

	type edge struct {
		from, to string
		label    Value
	}
	var edges []edge
	initialIDs := make([]string, 0, len(initial))
	for _, s := range initial {
		sid, err := id(s)
		if err != nil {
			return err
		}
		initialIDs = append(initialIDs, sid)
	}
	var err error
	each(func(from Value, symbol byte, to Value) bool {
		e := edge{label: Char(symbol)}
		if e.from, err = id(from); err != nil {
			return false
		}
		if e.to, err = id(to); err != nil {
			return false
		}
		edges = append(edges, e)
		return true
	})
	if err != nil {
		return err
	}
	final.Range(func(s Value) bool {
		_, err = id(s)
		return err == nil
	})
	if err != nil {
		return err
	}

	for i, s := range states {
		ok, err := final.Contains(s)
		if err != nil {
			return err
		}
		shape := "circle"
		if ok {
			shape = "doublecircle"
		}
		if _, err := fmt.Fprintf(w, "\tstate_%d [label=%q, shape=%s];\n", i, s, shape); err != nil {
			return err
		}
	}
	for i, sid := range initialIDs {
		if _, err := fmt.Fprintf(w, "\tinitial_%d [label=\"\", style=invis];\n\tinitial_%d -> %s;\n", i, i, sid); err != nil {
			return err
		}
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "\t%s -> %s [label=%q];\n", e.from, e.to, e.label); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return err
	}
	return nil
}
