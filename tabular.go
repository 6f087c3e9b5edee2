package zzfa

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/exp/slices"
)

// WriteTable writes the DFA's transition table, one row per state and one
// column per symbol of alphabet. The initial state is marked with "->" and
// final states with "*". Missing transitions are left blank. An empty
// alphabet means d.Alphabet.
func (d *DFA) WriteTable(w io.Writer, alphabet string) error {
	if alphabet == "" {
		alphabet = d.Alphabet
	}
	return writeTable(w, alphabet, []Value{d.initial}, d.final, d.Range)
}

// WriteTable writes the NFA's transition table like DFA.WriteTable. Each cell
// holds a set of targets, and a column for ε is added when the NFA has
// epsilon transitions.
func (n *NFA) WriteTable(w io.Writer, alphabet string) error {
	if alphabet == "" {
		alphabet = n.Alphabet
	}
	return writeTable(w, alphabet, n.initial.Members(), n.final, n.Range)
}

func writeTable(w io.Writer, alphabet string, initial []Value, final *Set, each func(func(Value, byte, Value) bool)) error {
	// Collect the targets of each (state, symbol), and every state.
	cells := NewTable()
	states, _ := NewSet(initial...)
	_ = states.AddAll(final)
	hasEpsilon := false
	var err error
	each(func(from Value, symbol byte, to Value) bool {
		if symbol == Epsilon {
			hasEpsilon = true
		}
		if err = states.Add(from); err != nil {
			return false
		}
		if err = states.Add(to); err != nil {
			return false
		}
		var targets Value
		if targets, err = cells.Get(from, symbol); err != nil {
			return false
		}
		if targets.IsNull() {
			set, _ := NewSet()
			targets = Nested(set)
			if err = cells.Set(from, symbol, targets); err != nil {
				return false
			}
		}
		err = targets.AsSet().Add(to)
		return err == nil
	})
	if err != nil {
		return err
	}

	symbols := []byte(strings.ReplaceAll(alphabet, string(Epsilon), ""))
	if hasEpsilon {
		symbols = append(symbols, Epsilon)
	}

	header := []any{"state"}
	for _, a := range symbols {
		header = append(header, Char(a).String())
	}
	table := tablewriter.NewWriter(w)
	table.Header(header...)

	rows := states.Members()
	slices.SortStableFunc(rows, func(a, b Value) int {
		return strings.Compare(a.String(), b.String())
	})
	for _, s := range rows {
		label := s.String()
		if ok, _ := final.Contains(s); ok {
			label = "*" + label
		}
		for _, i := range initial {
			if eq, _ := i.Equal(s); eq {
				label = "->" + label
				break
			}
		}
		row := []string{label}
		for _, a := range symbols {
			targets, err := cells.Get(s, a)
			if err != nil {
				return err
			}
			switch set := targets.AsSet(); {
			case set == nil:
				row = append(row, "")
			case set.Len() == 1:
				row = append(row, set.Members()[0].String())
			default:
				row = append(row, set.String())
			}
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
