// Command tinycat is the line-numbered BASIC interpreter's entry point.
package main

import (
	"os"

	"github.com/cwbudde/tinycat-basic/cmd/tinycat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
