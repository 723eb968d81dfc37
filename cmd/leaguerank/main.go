// Package main provides the leaguerank CLI entrypoint.
package main

import (
	"os"

	"github.com/leapstack-labs/leaguerank/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
