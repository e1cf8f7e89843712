// Command lvpath generates a grid map, finds a path across it and draws the
// result in the terminal.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvpath:", err)
		os.Exit(1)
	}
}
