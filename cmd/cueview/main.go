package main

import (
	"os"

	"github.com/cueview/cueview/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
