// bb84sim runs BB84 key-exchange rounds from the command line, either one at
// a time with a full transcript or in bulk with aggregate statistics.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
