// Command memlock inspects the locked-memory ceiling, pins memory against it,
// and maps files with the memlock library.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
