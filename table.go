package zzfa

// Epsilon is the reserved symbol for transitions that consume no input. It
// may only label NFA transitions.
const Epsilon byte = 0

// Table is a two-level transition table, state -> symbol -> target, stored as
// a Map from state to an inner Map from symbol (a Char value) to target.
type Table struct {
	rows *Map
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{rows: NewMap()}
}

// row returns the inner map for state, or nil if state has no transitions.
func (t *Table) row(state Value) (*Map, error) {
	r, err := t.rows.Get(state)
	if err != nil || r.IsNull() {
		return nil, err
	}
	return r.AsOpaque().(*Map), nil
}

// Get returns the target under (state, symbol), or Null.
func (t *Table) Get(state Value, symbol byte) (Value, error) {
	r, err := t.row(state)
	if err != nil || r == nil {
		return Null, err
	}
	return r.Get(Char(symbol))
}

// Set stores target under (state, symbol), replacing any previous target.
func (t *Table) Set(state Value, symbol byte, target Value) error {
	r, err := t.row(state)
	if err != nil {
		return err
	}
	if r == nil {
		r = NewMap()
		if err := t.rows.Set(state, Opaque(r)); err != nil {
			return err
		}
	}
	return r.Set(Char(symbol), target)
}

// Len returns the number of (state, symbol) pairs with a target.
func (t *Table) Len() int {
	n := 0
	t.rows.Range(func(_, r Value) bool {
		n += r.AsOpaque().(*Map).Len()
		return true
	})
	return n
}

// Range calls f for every (state, symbol, target) triple until f returns
// false.
func (t *Table) Range(f func(state Value, symbol byte, target Value) bool) {
	t.rows.Range(func(state, r Value) bool {
		more := true
		r.AsOpaque().(*Map).Range(func(sym, target Value) bool {
			more = f(state, sym.AsChar(), target)
			return more
		})
		return more
	})
}

// Clear removes every transition.
func (t *Table) Clear() {
	t.rows.Range(func(_, r Value) bool {
		r.AsOpaque().(*Map).Clear()
		return true
	})
	t.rows.Clear()
}
