// The zztable command prints the transition table of an automaton
// description.
//
// Example:
//
//	$ zztable -determinize nfa.yaml
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/DrJosh9000/zzfa"
)

var determinize = flag.Bool("determinize", false, "Determinize an NFA before printing it")

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-determinize] description.yaml\n", os.Args[0])
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

	if desc.Kind != "nfa" {
		d, err := desc.DFA()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Couldn't build DFA: %v\n", err)
			os.Exit(1)
		}
		if err := d.WriteTable(os.Stdout, ""); err != nil {
			fmt.Fprintf(os.Stderr, "Couldn't write table: %v\n", err)
			os.Exit(1)
		}
		return
	}

	n, err := desc.NFA()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't build NFA: %v\n", err)
		os.Exit(1)
	}
	if *determinize {
		d, err := zzfa.Determinize(n, "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Couldn't determinize NFA: %v\n", err)
			os.Exit(1)
		}
		err = d.WriteTable(os.Stdout, "")
	} else {
		err = n.WriteTable(os.Stdout, "")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't write table: %v\n", err)
		os.Exit(1)
	}
}
