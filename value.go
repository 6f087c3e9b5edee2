package zzfa

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// ErrUnhashable is returned when a value cannot be hashed or compared: the
// Null value, or an Opaque value whose payload is not a pointer, map, or
// channel.
var ErrUnhashable = errors.New("value cannot be hashed")

// Kind is the variant of a Value.
type Kind uint8

// Value variants.
const (
	KindNull Kind = iota
	KindChar
	KindString
	KindInt
	KindOpaque
	KindSet
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindChar:
		return "char"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindOpaque:
		return "opaque"
	case KindSet:
		return "set"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a tagged value: a char, string, int, opaque reference, or a nested
// set of values. The zero Value is Null, which is returned by lookups that
// miss and is never a valid key or state.
type Value struct {
	kind Kind
	c    byte
	i    int
	s    string
	p    any
	set  *Set
}

// Null is the absent value.
var Null Value

// Char returns a char value.
func Char(c byte) Value { return Value{kind: KindChar, c: c} }

// Str returns a string value.
func Str(s string) Value { return Value{kind: KindString, s: s} }

// Int returns an int value.
func Int(i int) Value { return Value{kind: KindInt, i: i} }

// Opaque returns a value holding a reference. Opaque values compare and hash
// by identity, so p must be a pointer, map, or channel (or nil); any other
// payload is ErrUnhashable.
func Opaque(p any) Value { return Value{kind: KindOpaque, p: p} }

// Nested wraps a set as a value. Equality and hashing of the result follow
// set semantics, so the set must not be modified while the value is in use
// as a key.
func Nested(s *Set) Value { return Value{kind: KindSet, set: s} }

func (v Value) Kind() Kind       { return v.kind }
func (v Value) IsNull() bool     { return v.kind == KindNull }
func (v Value) AsChar() byte     { return v.c }
func (v Value) AsString() string { return v.s }
func (v Value) AsInt() int       { return v.i }
func (v Value) AsOpaque() any    { return v.p }
func (v Value) AsSet() *Set      { return v.set }

// Equal reports whether v and w are structurally equal. Values of different
// kinds are unequal. Sets are equal when they have the same members.
func (v Value) Equal(w Value) (bool, error) {
	if v.kind == KindNull || w.kind == KindNull {
		return false, fmt.Errorf("comparing %v with %v: %w", v.kind, w.kind, ErrUnhashable)
	}
	if v.kind != w.kind {
		return false, nil
	}
	switch v.kind {
	case KindChar:
		return v.c == w.c, nil
	case KindString:
		return v.s == w.s, nil
	case KindInt:
		return v.i == w.i, nil
	case KindOpaque:
		a, err := identity(v.p)
		if err != nil {
			return false, err
		}
		b, err := identity(w.p)
		if err != nil {
			return false, err
		}
		return a == b && reflect.TypeOf(v.p) == reflect.TypeOf(w.p), nil
	case KindSet:
		return v.set.Equal(w.set)
	}
	return false, fmt.Errorf("comparing kind %v: %w", v.kind, ErrUnhashable)
}

// Multiplier for scalar hashes (2^64 / golden ratio).
const golden = 0x9E3779B97F4A7C15

// Hash returns a hash of v. Equal values have equal hashes; the hash of a set
// does not depend on the order of its members.
func (v Value) Hash() (uint64, error) {
	switch v.kind {
	case KindChar:
		return uint64(v.c) * golden, nil
	case KindInt:
		return uint64(v.i) * golden, nil
	case KindString:
		var h uint64
		for i := 0; i < len(v.s); i++ {
			h = h*31 + uint64(v.s[i])
		}
		return h, nil
	case KindOpaque:
		p, err := identity(v.p)
		if err != nil {
			return 0, err
		}
		return uint64(p) * golden, nil
	case KindSet:
		return v.set.hash()
	}
	return 0, fmt.Errorf("hashing kind %v: %w", v.kind, ErrUnhashable)
}

// identity returns the address held by a pointer, map, or channel payload.
// Slices and funcs are refused: different slices of one array share an
// address, and func addresses are not unique.
func identity(p any) (uintptr, error) {
	if p == nil {
		return 0, nil
	}
	switch rv := reflect.ValueOf(p); rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan:
		return rv.Pointer(), nil
	default:
		return 0, fmt.Errorf("opaque payload of type %T: %w", p, ErrUnhashable)
	}
}

// String returns a display form of the value.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "<null>"
	case KindChar:
		if v.c == Epsilon {
			return "ε"
		}
		return string(rune(v.c))
	case KindString:
		return v.s
	case KindInt:
		return strconv.Itoa(v.i)
	case KindOpaque:
		return fmt.Sprintf("%p", v.p)
	case KindSet:
		if v.set == nil {
			return "{}"
		}
		parts := make([]string, 0, v.set.Len())
		v.set.Range(func(m Value) bool {
			parts = append(parts, m.String())
			return true
		})
		slices.Sort(parts)
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return v.kind.String()
}
