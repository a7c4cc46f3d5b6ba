package main

import (
	"os"

	"github.com/carson-networks/budget-planner/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
