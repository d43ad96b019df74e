package main

import (
	"os"

	"github.com/ordhook/ordhook/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
