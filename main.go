package main

import (
	"fmt"
	"os"

	"github.com/rocketscienceinc/tictactoe-local/internal/cmd"
)

// main - is the entry point of the application. It builds the command line and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := cmd.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
