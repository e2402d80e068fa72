package main

import (
	"os"

	"github.com/Laman1911/AS-Calculation/internal/infrastructure/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
