// cminus is the command-line driver for the C-minus front end. It is mainly
// intended for inspecting what the lexer, parser and analyzer make of a
// program.
package main

import (
	"fmt"
	"os"
)

func fatal(f string, va ...interface{}) {
	fmt.Fprintf(os.Stderr, "fatal: "+f+"\n", va...)
	os.Exit(1)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fatal("%s", err)
	}
}
