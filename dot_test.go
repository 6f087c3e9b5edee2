package zzfa

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestWriteDotSmoke(t *testing.T) {
	d, err := Determinize(endsInAB(t), "abc")
	if err != nil {
		t.Fatalf("Determinize() error = %v", err)
	}
	tr, err := Transpose(div3(t))
	if err != nil {
		t.Fatalf("Transpose() error = %v", err)
	}

	tests := []struct {
		name string
		dot  func(io.Writer) error
	}{
		{"div3", div3(t).WriteDot},
		{"epsilonNFA", epsilonNFA(t).WriteDot},
		{"determinized", d.WriteDot},
		{"transposed", tr.WriteDot},
	}
	for _, test := range tests {
		if err := test.dot(io.Discard); err != nil {
			t.Errorf("%s.WriteDot(io.Discard) = %v", test.name, err)
		}
	}
}

func TestWriteDot(t *testing.T) {
	var buf bytes.Buffer
	if err := epsilonNFA(t).WriteDot(&buf); err != nil {
		t.Fatalf("WriteDot() = %v", err)
	}
	got := buf.String()
	for _, want := range []string{
		"digraph {",
		`state_0 [label="q0", shape=circle];`,
		`[label="q2", shape=doublecircle];`,
		"initial_0 -> state_0;",
		`[label="ε"];`,
		`[label="a"];`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("WriteDot() output does not contain %q:\n%s", want, got)
		}
	}
}

func TestWriteDotBadState(t *testing.T) {
	final := mustSet(t, Int(1))
	noEdges := func(func(Value, byte, Value) bool) {}
	edgeTo := func(target Value) func(func(Value, byte, Value) bool) {
		return func(f func(Value, byte, Value) bool) { f(Int(0), 'a', target) }
	}

	tests := []struct {
		name    string
		initial []Value
		each    func(func(Value, byte, Value) bool)
	}{
		{"null initial state", []Value{Null}, noEdges},
		{"unhashable target", []Value{Int(0)}, edgeTo(Opaque(3))},
		{"null target", []Value{Int(0)}, edgeTo(Null)},
	}
	for _, test := range tests {
		if err := writeDot(io.Discard, test.initial, final, test.each); !errors.Is(err, ErrUnhashable) {
			t.Errorf("writeDot(%s) = %v, want %v", test.name, err, ErrUnhashable)
		}
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := div3(t).WriteTable(&buf, "01"); err != nil {
		t.Fatalf("WriteTable() = %v", err)
	}
	if got := buf.String(); !strings.Contains(got, "->*0") {
		t.Errorf("WriteTable() output does not mark the initial final state:\n%s", got)
	}

	buf.Reset()
	if err := endsInAB(t).WriteTable(&buf, "abc"); err != nil {
		t.Fatalf("WriteTable() = %v", err)
	}
	got := buf.String()
	for _, want := range []string{"->0", "*2", "{0, 1}"} {
		if !strings.Contains(got, want) {
			t.Errorf("NFA WriteTable() output does not contain %q:\n%s", want, got)
		}
	}
}
