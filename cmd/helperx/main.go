package main

import (
	"os"

	"github.com/msto63/helperx/cmd/helperx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
