package main

import (
	"os"

	"blakesum/cmd/blakesum/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
