package main

import (
	"os"

	"github.com/branched-services/go-greeter/cmd/greeter/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
