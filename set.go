package zzfa

// Set is an unordered collection of distinct values, backed by a Map with
// presence-only entries.
type Set struct {
	m *Map
}

// NewSet returns a set containing the given values.
func NewSet(vs ...Value) (*Set, error) {
	s := &Set{m: NewMap()}
	for _, v := range vs {
		if err := s.Add(v); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Len returns the number of members. A nil set is empty.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.m.Len()
}

// Add inserts v.
func (s *Set) Add(v Value) error { return s.m.Set(v, Null) }

// Remove deletes v, if present.
func (s *Set) Remove(v Value) error { return s.m.Remove(v) }

// Contains reports whether v is a member.
func (s *Set) Contains(v Value) (bool, error) {
	if s == nil {
		// Still reject values that could never be members.
		_, err := v.Hash()
		return false, err
	}
	return s.m.Contains(v)
}

// Range calls f for each member until f returns false.
func (s *Set) Range(f func(Value) bool) {
	if s == nil {
		return
	}
	s.m.Range(func(k, _ Value) bool { return f(k) })
}

// Members returns the members in iteration order.
func (s *Set) Members() []Value {
	out := make([]Value, 0, s.Len())
	s.Range(func(v Value) bool {
		out = append(out, v)
		return true
	})
	return out
}

// AddAll inserts every member of t.
func (s *Set) AddAll(t *Set) error {
	var err error
	t.Range(func(v Value) bool {
		err = s.Add(v)
		return err == nil
	})
	return err
}

// Clone returns a shallow copy of s. Nested member sets are shared.
func (s *Set) Clone() *Set {
	c := &Set{m: NewMap()}
	s.Range(func(v Value) bool {
		// Members are already known to be hashable.
		_ = c.Add(v)
		return true
	})
	return c
}

// Intersects reports whether s and t have a member in common.
func (s *Set) Intersects(t *Set) (bool, error) {
	small, big := s, t
	if small.Len() > big.Len() {
		small, big = big, small
	}
	found := false
	var err error
	small.Range(func(v Value) bool {
		found, err = big.Contains(v)
		return err == nil && !found
	})
	return found, err
}

// Equal reports whether s and t have the same members.
func (s *Set) Equal(t *Set) (bool, error) {
	if s.Len() != t.Len() {
		return false, nil
	}
	eq := true
	var err error
	s.Range(func(v Value) bool {
		eq, err = t.Contains(v)
		return err == nil && eq
	})
	return eq, err
}

// Clear removes every member.
func (s *Set) Clear() {
	if s != nil {
		s.m.Clear()
	}
}

// hash combines member hashes with a commutative sum so that the result is
// independent of iteration order.
func (s *Set) hash() (uint64, error) {
	k := uint64(KindSet)
	h := k * golden
	var err error
	s.Range(func(v Value) bool {
		var mh uint64
		mh, err = v.Hash()
		if err != nil {
			return false
		}
		h += mix(mh + golden)
		return true
	})
	return h, err
}

// mix scrambles a member hash before it is summed, so that sets with
// different members rarely sum to the same total. mix(0) is 0, so callers
// offset the input first.
func mix(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	return h
}

// String returns a display form of the set, with members sorted.
func (s *Set) String() string { return Nested(s).String() }
