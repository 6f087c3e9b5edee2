package zzfa

import (
	"errors"
	"fmt"
)

// ErrCapacity is returned when a Map is resized below its occupancy or below
// the minimum capacity.
var ErrCapacity = errors.New("invalid map capacity")

// Map sizing parameters.
const (
	minCapacity  = 8
	maxLoad      = 0.75
	minLoad      = 0.25
	growthFactor = 2
)

// Map is a hash map from Value to Value, resolving collisions by separate
// chaining. The zero Map is not ready for use; call NewMap.
//
// Map is not safe for concurrent mutation. Concurrent reads of a Map that
// is not being written are fine.
type Map struct {
	buckets []*entry
	size    int
}

// entry is a node in a bucket's chain.
type entry struct {
	key, value Value
	next       *entry
}

// NewMap returns an empty map with the minimum capacity.
func NewMap() *Map {
	return &Map{buckets: make([]*entry, minCapacity)}
}

// Len returns the number of entries in the map.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return m.size
}

// Capacity returns the current number of buckets.
func (m *Map) Capacity() int { return len(m.buckets) }

func (m *Map) bucket(capacity int, key Value) (int, error) {
	h, err := key.Hash()
	if err != nil {
		return 0, err
	}
	return int(h % uint64(capacity)), nil
}

// find scans a chain for key. It returns the entry, or nil if absent.
func find(e *entry, key Value) (*entry, error) {
	for ; e != nil; e = e.next {
		eq, err := e.key.Equal(key)
		if err != nil {
			return nil, err
		}
		if eq {
			return e, nil
		}
	}
	return nil, nil
}

// Get returns the value stored under key, or Null if there is none.
func (m *Map) Get(key Value) (Value, error) {
	b, err := m.bucket(len(m.buckets), key)
	if err != nil {
		return Null, err
	}
	e, err := find(m.buckets[b], key)
	if err != nil || e == nil {
		return Null, err
	}
	return e.value, nil
}

// Contains reports whether the map has an entry for key.
func (m *Map) Contains(key Value) (bool, error) {
	b, err := m.bucket(len(m.buckets), key)
	if err != nil {
		return false, err
	}
	e, err := find(m.buckets[b], key)
	return e != nil, err
}

// Set inserts or overwrites the entry for key. The map grows when the load
// factor exceeds 0.75.
func (m *Map) Set(key, value Value) error {
	b, err := m.bucket(len(m.buckets), key)
	if err != nil {
		return err
	}
	e, err := find(m.buckets[b], key)
	if err != nil {
		return err
	}
	if e != nil {
		e.value = value
		return nil
	}
	m.buckets[b] = &entry{key: key, value: value, next: m.buckets[b]}
	m.size++

	if float64(m.size) > maxLoad*float64(len(m.buckets)) {
		return m.resize(len(m.buckets) * growthFactor)
	}
	return nil
}

// Remove deletes the entry for key, if present. The map shrinks when the load
// factor falls below 0.25, but never below the minimum capacity.
func (m *Map) Remove(key Value) error {
	b, err := m.bucket(len(m.buckets), key)
	if err != nil {
		return err
	}
	for p := &m.buckets[b]; *p != nil; p = &(*p).next {
		eq, err := (*p).key.Equal(key)
		if err != nil {
			return err
		}
		if !eq {
			continue
		}
		*p = (*p).next
		m.size--
		break
	}

	if float64(m.size) < minLoad*float64(len(m.buckets)) && len(m.buckets) > minCapacity {
		return m.resize(len(m.buckets) / growthFactor)
	}
	return nil
}

// resize rehashes every entry into a fresh bucket array.
func (m *Map) resize(capacity int) error {
	if capacity < m.size || capacity < minCapacity {
		return fmt.Errorf("resize to %d with %d entries: %w", capacity, m.size, ErrCapacity)
	}
	buckets := make([]*entry, capacity)
	for _, e := range m.buckets {
		for e != nil {
			next := e.next
			b, err := m.bucket(capacity, e.key)
			if err != nil {
				// Every stored key was hashed on the way in.
				return err
			}
			e.next = buckets[b]
			buckets[b] = e
			e = next
		}
	}
	m.buckets = buckets
	return nil
}

// Range calls f for each entry until f returns false. The order is
// unspecified but stable while the map is not modified. f must not modify
// the map.
func (m *Map) Range(f func(key, value Value) bool) {
	if m == nil {
		return
	}
	for _, e := range m.buckets {
		for ; e != nil; e = e.next {
			if !f(e.key, e.value) {
				return
			}
		}
	}
}

// Clear removes every entry and restores the minimum capacity.
func (m *Map) Clear() {
	m.buckets = make([]*entry, minCapacity)
	m.size = 0
}
