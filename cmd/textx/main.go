package main

import (
	"os"

	"github.com/msto63/textkit/cmd/textx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
