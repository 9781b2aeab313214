package main

import (
	"os"

	"github.com/medbank-labs/medbank-cli/internal/adapters/driving/cli"
)

// version is injected at build time:
// go build -ldflags "-X main.version=v1.2.3"
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
