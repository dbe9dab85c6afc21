// Command bootc is the driver of the bootstrap compiler front end.
//
// Usage:
//
//	bootc tokens FILE          print the token stream
//	bootc parse FILE...        print the syntax tree of every file
//	bootc watch FILE...        re-parse files whenever they change
//	bootc version              print the compiler version
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hassan/bootc/cmd/bootc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Diagnostics have already been printed.
		if !errors.Is(err, cmd.ErrFailed) {
			fmt.Fprintf(os.Stderr, "bootc: %v\n", err)
		}
		os.Exit(1)
	}
}
