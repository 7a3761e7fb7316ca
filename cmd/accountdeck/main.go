package main

import (
	"os"

	"accountdeck/cmd/accountdeck/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
