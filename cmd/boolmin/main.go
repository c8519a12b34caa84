// Command boolmin reads a boolean expression, prints its canonical form,
// its minterm summary, and its Quine-McCluskey-minimized equivalent.
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
