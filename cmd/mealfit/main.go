package main

import (
	"os"

	"github.com/mealfit/mealfit/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
