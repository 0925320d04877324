// Command lazyl starts and stops a registered set of programs and launches
// notebook servers against pinned or recent folders.
package main

import (
	"fmt"
	"os"
)

func main() {
	root := NewRootCmd()

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lazyl:", err)
		os.Exit(1)
	}
}
