// The zzrun command interactively checks words against an automaton
// description. Enter "exit" (or interrupt) to quit.
//
// Example:
//
//	$ zzrun div3.yaml
//	Word: 110
//	accepted
package main

import (
	"fmt"
	"os"

	"github.com/DrJosh9000/zzfa"
	"github.com/manifoldco/promptui"
)

// acceptor is satisfied by both *zzfa.DFA and *zzfa.NFA.
type acceptor interface {
	Accept(word string) bool
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s description.yaml\n", os.Args[0])
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't open description: %v\n", err)
		os.Exit(1)
	}
	desc, err := zzfa.LoadDescription(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't load description %q: %v\n", os.Args[1], err)
		os.Exit(1)
	}

	var a acceptor
	if desc.Kind == "nfa" {
		a, err = desc.NFA()
	} else {
		a, err = desc.DFA()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't build automaton: %v\n", err)
		os.Exit(1)
	}

	accepted := promptui.Styler(promptui.FGGreen)
	rejected := promptui.Styler(promptui.FGRed)
	for {
		prompt := promptui.Prompt{Label: "Word"}
		word, err := prompt.Run()
		if err != nil {
			// ^C or ^D
			return
		}
		if word == "exit" {
			return
		}
		if a.Accept(word) {
			fmt.Println(accepted("accepted"))
		} else {
			fmt.Println(rejected("rejected"))
		}
	}
}
