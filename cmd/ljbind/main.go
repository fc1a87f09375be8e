// SPDX-License-Identifier: MIT

// Command ljbind estimates the total Lennard-Jones binding energy of a set of
// objects from a file of pairwise distances (metres, one per line).
//
//	ljbind                     # reads ./distances.txt
//	ljbind data/argon.txt
//	ljbind --config neon.yaml --format yaml data/neon.txt
//
// Exit status is 1 when the file cannot be loaded or its distance count does
// not correspond to a whole number of objects, 0 otherwise.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
