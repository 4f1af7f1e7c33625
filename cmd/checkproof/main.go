// Command checkproof checks an Alethe/veriT proof certificate against
// a problem declaration and prints the overall verdict.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
