package main

import (
	"os"

	"github.com/whisper/compose/cmd/compose/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
