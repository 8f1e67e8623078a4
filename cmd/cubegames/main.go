package main

import (
	"os"

	"github.com/gamely/cubegames/cmd/cubegames/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
