package main

import (
	"fmt"
	"os"

	"github.com/c1ph3rc4t/clc/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "clc: %v\n", err)
		os.Exit(1)
	}
}
