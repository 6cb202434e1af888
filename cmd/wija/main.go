// Command wija transliterates Latin text into Lontara script and computes
// generations in family trees.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
