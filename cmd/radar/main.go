// Command radar scores small-business situations and prints a traffic-light verdict.
package main

import (
	"os"

	"github.com/custodia-labs/radar/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
