package main

import (
	"os"

	"github.com/jhoicas/weinrechner/cmd/weinrechner/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
