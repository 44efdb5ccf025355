package main

import (
	"os"

	"github.com/evertile/teaset/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
