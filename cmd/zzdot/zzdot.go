// The zzdot command writes an automaton description as a GraphViz digraph.
//
// Example:
//
//	$ zzdot -determinize nfa.yaml | dot -Tsvg > dfa.svg
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/DrJosh9000/zzfa"
)

var (
	determinize = flag.Bool("determinize", false, "Determinize an NFA before writing it")
	transpose   = flag.Bool("transpose", false, "Transpose a DFA before writing it")
	trace       = flag.Bool("trace", false, "Write trace logs to stderr")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] description.yaml\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't open description: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	desc, err := zzfa.LoadDescription(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't load description %q: %v\n", flag.Arg(0), err)
		os.Exit(1)
	}

	if err := checkFlags(desc.Kind, *determinize, *transpose); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid flags for %q: %v\n", flag.Arg(0), err)
		os.Exit(1)
	}

	var opts []zzfa.Option
	if *trace {
		opts = append(opts, zzfa.WithTraceLogs(os.Stderr))
	}

	if err := writeDot(os.Stdout, desc, *determinize, *transpose, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't write Dot output: %v\n", err)
		os.Exit(1)
	}
}

var (
	errDeterminizeDFA = errors.New("-determinize applies only to NFA descriptions")
	errTransposeNFA   = errors.New("-transpose applies only to DFA descriptions")
)

// checkFlags rejects flags that do not apply to the kind of automaton
// described.
func checkFlags(kind string, determinize, transpose bool) error {
	if kind == "nfa" {
		if transpose {
			return errTransposeNFA
		}
		return nil
	}
	if determinize {
		return errDeterminizeDFA
	}
	return nil
}

func writeDot(w io.Writer, desc *zzfa.Description, determinize, transpose bool, opts []zzfa.Option) error {
	if err := checkFlags(desc.Kind, determinize, transpose); err != nil {
		return err
	}
	if desc.Kind == "nfa" {
		n, err := desc.NFA()
		if err != nil {
			return err
		}
		if !determinize {
			return n.WriteDot(w)
		}
		d, err := zzfa.Determinize(n, "", opts...)
		if err != nil {
			return err
		}
		return d.WriteDot(w)
	}

	d, err := desc.DFA()
	if err != nil {
		return err
	}
	if !transpose {
		return d.WriteDot(w)
	}
	n, err := zzfa.Transpose(d)
	if err != nil {
		return err
	}
	return n.WriteDot(w)
}
