package main

import (
	"os"

	"github.com/muxable/gsusb/cmd/gsusbctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
