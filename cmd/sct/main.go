package main

import (
	"os"

	"github.com/kintelligence/strawberry-cookie-tools/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
