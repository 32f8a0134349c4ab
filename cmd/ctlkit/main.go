package main

import (
	"os"

	"github.com/dwrenn/ctlkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
