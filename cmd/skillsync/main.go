package main

import (
	"fmt"
	"os"

	"github.com/skillstack/skillsync/cmd/skillsync/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !cmd.IsUsage(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
