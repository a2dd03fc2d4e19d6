package main

import (
	"os"

	"github.com/suar-net/suar-time/cmd/api/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
