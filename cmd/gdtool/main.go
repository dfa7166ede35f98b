package main

import (
	"os"

	"github.com/cshum/gdgen/cmd/gdtool/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
