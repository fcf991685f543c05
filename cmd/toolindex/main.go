package main

import (
	"fmt"
	"os"

	"github.com/html-tools/toolindex/internal/cli/commands"
	"github.com/joho/godotenv"
)

func main() {
	// Pick up TOOLINDEX_* settings from a local .env if one exists.
	_ = godotenv.Load()

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
