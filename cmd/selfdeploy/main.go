package main

import (
	"os"

	"github.com/selfdeploy/selfdeploy/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
