package main

import (
	"os"

	"github.com/apaliavy/golangcodestyle/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
