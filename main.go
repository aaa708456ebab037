package main

import (
	"os"

	"github.com/jonjonssons/sacore-ai/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
