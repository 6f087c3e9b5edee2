package zzfa

import (
	"errors"
	"testing"
)

func mustSet(t *testing.T, vs ...Value) *Set {
	t.Helper()
	s, err := NewSet(vs...)
	if err != nil {
		t.Fatalf("NewSet(%v) error = %v", vs, err)
	}
	return s
}

func TestValueEqualAndHash(t *testing.T) {
	x, y := new(int), new(int)
	values := []Value{
		Char('a'),
		Char('b'),
		Str("a"),
		Str("abc"),
		Str(""),
		Int(97),
		Int(0),
		Int(-3),
		Opaque(x),
		Opaque(y),
		Nested(mustSet(t)),
		Nested(mustSet(t, Int(1), Int(2))),
		Nested(mustSet(t, Int(1), Str("2"))),
		Nested(mustSet(t, Nested(mustSet(t, Char('q'))))),
	}

	for i, a := range values {
		for j, b := range values {
			ab, err := a.Equal(b)
			if err != nil {
				t.Fatalf("(%v).Equal(%v) error = %v", a, b, err)
			}
			ba, err := b.Equal(a)
			if err != nil {
				t.Fatalf("(%v).Equal(%v) error = %v", b, a, err)
			}
			if ab != ba {
				t.Errorf("(%v).Equal(%v) = %t but (%v).Equal(%v) = %t", a, b, ab, b, a, ba)
			}
			if want := i == j; ab != want {
				t.Errorf("(%v).Equal(%v) = %t, want %t", a, b, ab, want)
			}
		}
	}
}

func TestValueEqualSameHash(t *testing.T) {
	p := new(struct{ n int })
	tests := []struct {
		a, b Value
	}{
		{Char('z'), Char('z')},
		{Str("hello"), Str("hel" + "lo")},
		{Int(42), Int(42)},
		{Opaque(p), Opaque(p)},
		{
			Nested(mustSet(t, Int(1), Int(2), Int(3))),
			Nested(mustSet(t, Int(3), Int(1), Int(2))),
		},
		{
			Nested(mustSet(t, Nested(mustSet(t, Str("q0"), Str("q1"))), Int(7))),
			Nested(mustSet(t, Int(7), Nested(mustSet(t, Str("q1"), Str("q0"))))),
		},
	}

	for _, test := range tests {
		eq, err := test.a.Equal(test.b)
		if err != nil || !eq {
			t.Errorf("(%v).Equal(%v) = %t, %v; want true, nil", test.a, test.b, eq, err)
		}
		ha, err := test.a.Hash()
		if err != nil {
			t.Fatalf("(%v).Hash() error = %v", test.a, err)
		}
		hb, err := test.b.Hash()
		if err != nil {
			t.Fatalf("(%v).Hash() error = %v", test.b, err)
		}
		if ha != hb {
			t.Errorf("(%v).Hash() = %x but (%v).Hash() = %x", test.a, ha, test.b, hb)
		}
	}
}

func TestValueUnhashable(t *testing.T) {
	backing := []int{1, 2, 3}
	tests := []Value{
		Null,
		Opaque(42),
		Opaque("not a pointer"),
		Opaque(backing[:1]),
		Opaque(func() {}),
	}

	for _, v := range tests {
		if _, err := v.Hash(); !errors.Is(err, ErrUnhashable) {
			t.Errorf("(%v).Hash() error = %v, want %v", v, err, ErrUnhashable)
		}
	}

	if _, err := Null.Equal(Int(1)); !errors.Is(err, ErrUnhashable) {
		t.Errorf("Null.Equal(Int(1)) error = %v, want %v", err, ErrUnhashable)
	}
	if _, err := Opaque(1).Equal(Opaque(1)); !errors.Is(err, ErrUnhashable) {
		t.Errorf("Opaque(1).Equal(Opaque(1)) error = %v, want %v", err, ErrUnhashable)
	}
	// Two slices of one array share an address but are different values.
	if eq, err := Opaque(backing[:1]).Equal(Opaque(backing[:3])); !errors.Is(err, ErrUnhashable) {
		t.Errorf("Opaque(s[:1]).Equal(Opaque(s[:3])) = %t, %v; want false, %v", eq, err, ErrUnhashable)
	}
}

func TestSetHashZeroMembers(t *testing.T) {
	tests := []struct {
		name string
		set  *Set
	}{
		{"{}", mustSet(t)},
		{"{0}", mustSet(t, Int(0))},
		{"{ε, 0}", mustSet(t, Char(Epsilon), Int(0))},
		{"{{}}", mustSet(t, Nested(mustSet(t)))},
	}

	seen := make(map[uint64]string)
	for _, test := range tests {
		h, err := Nested(test.set).Hash()
		if err != nil {
			t.Fatalf("Nested(%s).Hash() error = %v", test.name, err)
		}
		if prev, ok := seen[h]; ok {
			t.Errorf("Nested(%s).Hash() = Nested(%s).Hash() = %x", test.name, prev, h)
		}
		seen[h] = test.name
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Null, "<null>"},
		{Char('x'), "x"},
		{Char(Epsilon), "ε"},
		{Str("q0"), "q0"},
		{Int(-12), "-12"},
		{Nested(mustSet(t)), "{}"},
		{Nested(mustSet(t, Str("q2"), Str("q0"), Str("q1"))), "{q0, q1, q2}"},
	}

	for _, test := range tests {
		if got := test.v.String(); got != test.want {
			t.Errorf("String() of %v value = %q, want %q", test.v.Kind(), got, test.want)
		}
	}
}
