package main

import (
	"os"

	"github.com/brightpath-digital/pagecheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
